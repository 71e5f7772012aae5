//go:build !configfile_no_xml

package configfile

import "github.com/AndrewDonelson/configfile/internal/codec"

func init() { registerCodec(FormatXML, codec.XML{}) }
