// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ConfigValue is the value of a single configuration entry.
//
// A value is either present (holding a string, which may be empty) or unset.
// Unset marks a key that was declared in the source file without "=" and
// therefore has to be supplied by an environment override before the
// configuration can be served.
type ConfigValue struct {
	value   string
	present bool
}

// Unset returns the marker for a declared key that has no value yet.
func Unset() ConfigValue {
	return ConfigValue{}
}

// Present wraps s as a defined value.
func Present(s string) ConfigValue {
	return ConfigValue{value: s, present: true}
}

// IsSet reports whether the value is defined.
func (v ConfigValue) IsSet() bool {
	return v.present
}

// String returns the underlying string and whether it is defined.
// For an unset value it returns "", false.
func (v ConfigValue) String() (string, bool) {
	return v.value, v.present
}
