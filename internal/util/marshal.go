// Package util has small helpers shared by the CLI and server hosts.
package util

import (
	"bytes"
	"encoding/json"
)

// MarshalIndent renders v as indented JSON without HTML escaping, so
// compared texts containing <, > or & round-trip verbatim.
func MarshalIndent(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil // drop trailing newline
}
