package store

import "os"

// OSEnv is an [EnvSource] backed by the process environment.
type OSEnv struct{}

// Lookup calls [os.LookupEnv].
func (OSEnv) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapEnv is an [EnvSource] backed by a plain map.
type MapEnv map[string]string

// Lookup returns m[key].
func (m MapEnv) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
