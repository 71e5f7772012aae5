//go:build !configfile_no_msgpack

package configfile

import "github.com/AndrewDonelson/configfile/internal/codec"

func init() { registerCodec(FormatMsgPack, codec.MsgPack{}) }
