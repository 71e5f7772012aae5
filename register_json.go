//go:build !configfile_no_json

package configfile

import "github.com/AndrewDonelson/configfile/internal/codec"

func init() { registerCodec(FormatJSON, codec.JSON{}) }
