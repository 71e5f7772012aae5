//go:build !configfile_no_yaml

package configfile

import "github.com/AndrewDonelson/configfile/internal/codec"

func init() { registerCodec(FormatYAML, codec.YAML{}) }
