// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// errors.go — sentinel error variables returned by the public configfile API,
// covering filesystem access, format resolution, and codec failures.

// Package configfile loads and stores configuration values, selecting the
// serialization format from the file's extension or an explicit Format tag.
package configfile

import "errors"

// Filesystem errors
var (
	// ErrFileAccess wraps every failure to read or write a config file.
	// The underlying os error stays reachable through errors.Is / errors.As.
	ErrFileAccess = errors.New("configfile: couldn't read or write config file")

	// ErrFileExists is returned by StoreWithoutOverwrite when the target
	// file is already present. The existing file is left untouched.
	ErrFileExists = errors.New("configfile: file already exists")
)

// Format resolution errors
var (
	ErrUnknownExtension = errors.New("configfile: don't know how to parse file")
	ErrFormatDisabled   = errors.New("configfile: format not enabled in this build")
)

// Codec errors
var (
	ErrEncode = errors.New("configfile: couldn't encode value")
	ErrDecode = errors.New("configfile: couldn't parse config file")
)
