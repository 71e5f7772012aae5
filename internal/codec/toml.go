package codec

import "github.com/pelletier/go-toml/v2"

// TOML is a codec using github.com/pelletier/go-toml/v2.
type TOML struct{}

// Marshal serializes v to TOML bytes.
func (TOML) Marshal(v any) ([]byte, error) {
	return toml.Marshal(v)
}

// Unmarshal deserializes TOML bytes into v.
func (TOML) Unmarshal(data []byte, v any) error {
	return toml.Unmarshal(data, v)
}

// Name returns "toml".
func (TOML) Name() string { return "toml" }
