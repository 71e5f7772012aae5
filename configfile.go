// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// configfile.go — public Load/Store entry points and the per-call
// orchestration: format resolution, overwrite policy, codec dispatch, file
// I/O. Format resolution always precedes I/O, and the existence check always
// precedes encoding.

package configfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Storable is implemented by config values that know their own file path,
// letting Save be called without repeating it.
type Storable interface {
	// ConfigPath returns the file path this value is stored at.
	ConfigPath() string
}

// overwritePolicy controls whether a store call may replace an existing file.
type overwritePolicy int

const (
	overwriteAllow overwritePolicy = iota
	overwriteForbid
)

// Load reads the file at path and decodes it into a value of type T.
// The format is derived from the path's extension; a missing file surfaces
// as ErrFileAccess at read time.
func Load[T any](path string) (T, error) {
	f, err := FormatForPath(path)
	if err != nil {
		var zero T
		return zero, err
	}
	return LoadWithFormat[T](path, f)
}

// LoadWithFormat reads the file at path and decodes it as format f,
// ignoring the path's extension.
func LoadWithFormat[T any](path string, f Format) (T, error) {
	var v T
	c, err := f.codec()
	if err != nil {
		return v, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return v, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	if err := c.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("%w (%s): %w", ErrDecode, c.Name(), err)
	}
	logger.Debug("config loaded", "path", path, "format", c.Name(), "bytes", len(data))
	return v, nil
}

// LoadOrDefault is Load, except a missing file yields the zero value of T
// instead of an error. Unreadable or malformed files still fail, and
// nothing is written to path.
func LoadOrDefault[T any](path string) (T, error) {
	v, err := Load[T](path)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		var zero T
		logger.Debug("config missing, using defaults", "path", path)
		return zero, nil
	}
	return v, err
}

// Store encodes v and writes it to path, creating missing parent
// directories and truncating any existing file. The format is derived from
// the path's extension.
func Store(v any, path string) error {
	f, err := FormatForPath(path)
	if err != nil {
		return err
	}
	return store(v, path, f, overwriteAllow)
}

// StoreWithFormat encodes v as format f and writes it to path, ignoring
// the path's extension.
func StoreWithFormat(v any, path string, f Format) error {
	return store(v, path, f, overwriteAllow)
}

// StoreWithoutOverwrite is Store, except it fails with ErrFileExists when
// path is already present. The existing file's bytes are left untouched.
func StoreWithoutOverwrite(v any, path string) error {
	f, err := FormatForPath(path)
	if err != nil {
		return err
	}
	return store(v, path, f, overwriteForbid)
}

// Save stores v at the path it reports via ConfigPath.
func Save(v Storable) error {
	return Store(v, v.ConfigPath())
}

func store(v any, path string, f Format, policy overwritePolicy) error {
	c, err := f.codec()
	if err != nil {
		return err
	}

	// Reject before encoding so no codec work is wasted on a doomed call.
	if policy == overwriteForbid {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrFileExists, path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %w", ErrFileAccess, err)
		}
	}

	data, err := c.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w (%s): %w", ErrEncode, c.Name(), err)
	}

	if err := writeFile(path, data, policy); err != nil {
		return err
	}
	logger.Debug("config stored", "path", path, "format", c.Name(), "bytes", len(data))
	return nil
}

// writeFile writes data to path, creating missing parent directories. With
// overwriteForbid the file is opened O_EXCL, so a file that appeared after
// the store call's existence check still fails with ErrFileExists.
func writeFile(path string, data []byte, policy overwritePolicy) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %w", ErrFileAccess, err)
		}
	}
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if policy == overwriteForbid {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	file, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrFileExists, path)
		}
		return fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	_, werr := file.Write(data)
	if cerr := file.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return fmt.Errorf("%w: %w", ErrFileAccess, werr)
	}
	return nil
}
