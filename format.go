// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// format.go — the Format enumeration, the extension table, and the codec
// registry populated by the register_*.go files at init time.

package configfile

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/AndrewDonelson/configfile/internal/codec"
)

// Format identifies one supported serialization format.
type Format int

const (
	FormatTOML Format = iota
	FormatJSON
	FormatYAML
	FormatXML
	// FormatRON is recognized by extension for interoperability with
	// Rust-ecosystem config files, but no Go codec exists for it; the tag
	// is never registered and always reports disabled.
	FormatRON
	FormatMsgPack
)

// String returns the lowercase format name, e.g. "toml".
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatXML:
		return "xml"
	case FormatRON:
		return "ron"
	case FormatMsgPack:
		return "msgpack"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// extensions maps a lowercased file extension (without the dot) to its
// Format. Both "yaml" and "yml" map to FormatYAML.
var extensions = map[string]Format{
	"toml":    FormatTOML,
	"json":    FormatJSON,
	"yaml":    FormatYAML,
	"yml":     FormatYAML,
	"xml":     FormatXML,
	"ron":     FormatRON,
	"msgpack": FormatMsgPack,
}

// codecs holds the codec for each format enabled in this build. Entries are
// added by the register_*.go init functions; a format without an entry is
// recognized but disabled. The map is never mutated after init.
var codecs = map[Format]codec.Codec{}

func registerCodec(f Format, c codec.Codec) { codecs[f] = c }

// Enabled reports whether a codec for f is compiled into this build.
// Formats are excluded with the configfile_no_<format> build tags.
func (f Format) Enabled() bool {
	_, ok := codecs[f]
	return ok
}

// codec returns the codec backing f, or ErrFormatDisabled when the format
// was excluded from this build (or, as with FormatRON, never had one).
func (f Format) codec() (codec.Codec, error) {
	c, ok := codecs[f]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFormatDisabled, f)
	}
	return c, nil
}

// FormatForPath resolves the Format for path from its file extension.
// Matching is case-insensitive ("CONFIG.TOML" resolves like "config.toml").
// A missing or unrecognized extension yields ErrUnknownExtension.
func FormatForPath(path string) (Format, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	f, ok := extensions[ext]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownExtension, path)
	}
	return f, nil
}
