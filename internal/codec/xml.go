// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// xml.go — XML codec implementation wrapping encoding/xml. Payloads must be
// structs (encoding/xml cannot marshal maps); the root element name follows
// the payload's struct name or XMLName field.

package codec

import "encoding/xml"

// XML is a codec using standard library encoding/xml.
type XML struct{}

// Marshal serializes v to indented XML bytes.
func (XML) Marshal(v any) ([]byte, error) {
	return xml.MarshalIndent(v, "", "  ")
}

// Unmarshal deserializes XML bytes into v.
func (XML) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}

// Name returns "xml".
func (XML) Name() string { return "xml" }
