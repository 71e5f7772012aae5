//go:build !configfile_no_toml

package configfile

import "github.com/AndrewDonelson/configfile/internal/codec"

func init() { registerCodec(FormatTOML, codec.TOML{}) }
