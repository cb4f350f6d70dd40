// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ConfigEntry is a single key/value pair of a [ConfigMap].
type ConfigEntry struct {
	Key   string
	Value ConfigValue
}

// ConfigMap is an insertion-ordered mapping from key to [ConfigValue].
//
// Setting an existing key replaces its value but keeps the key at the
// position where it was first inserted. The zero value is not usable;
// create maps with [NewConfigMap].
type ConfigMap struct {
	keys   []string
	values map[string]ConfigValue
}

// NewConfigMap returns an empty map.
func NewConfigMap() *ConfigMap {
	return &ConfigMap{
		keys:   make([]string, 0),
		values: make(map[string]ConfigValue),
	}
}

// Set stores value under key.
func (m *ConfigMap) Set(key string, value ConfigValue) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key and whether the key exists.
func (m *ConfigMap) Get(key string) (ConfigValue, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Len returns the number of keys.
func (m *ConfigMap) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *ConfigMap) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Entries returns all entries in insertion order.
func (m *ConfigMap) Entries() []ConfigEntry {
	entries := make([]ConfigEntry, 0, len(m.keys))
	for _, k := range m.keys {
		entries = append(entries, ConfigEntry{Key: k, Value: m.values[k]})
	}
	return entries
}

// Clone returns an independent copy of m.
func (m *ConfigMap) Clone() *ConfigMap {
	c := &ConfigMap{
		keys:   make([]string, len(m.keys)),
		values: make(map[string]ConfigValue, len(m.values)),
	}
	copy(c.keys, m.keys)
	for k, v := range m.values {
		c.values[k] = v
	}
	return c
}
