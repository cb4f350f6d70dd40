package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// FileSource reads the raw text of a configuration source file.
type FileSource interface {
	// ReadFile returns the whole content of the file at path.
	// If ctx is done before the read completes, the read is abandoned
	// and ctx.Err() is returned.
	ReadFile(ctx context.Context, path string) (string, error)
}

// EnvSource looks up override values by exact key name.
type EnvSource interface {
	// Lookup returns the value stored under key and whether it exists.
	// An existing key with an empty value reports ok == true.
	Lookup(key string) (string, bool)
}
