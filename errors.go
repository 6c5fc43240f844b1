// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// errors.go — sentinel error variables returned by the public keymap API.
// Codec failures wrap both the sentinel and the codec's own error.

// Package keymap provides an insertion-ordered map whose keys may be
// composite values (slices, structs, maps). Each key is converted to a
// canonical string by a pluggable codec; that string is what is stored and
// compared, and it is decoded back into a key on the paths that yield keys.
package keymap

import "errors"

// Data errors
var (
	ErrNotFound = errors.New("keymap: key not found")
)

// Codec errors
var (
	ErrEncodeFailed = errors.New("keymap: failed to encode key")
	ErrDecodeFailed = errors.New("keymap: failed to decode key")
)

// Serialization errors
var (
	ErrInvalidRecord = errors.New("keymap: invalid serialized record")
)
