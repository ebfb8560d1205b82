package resume

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Decode reads a YAML resume document.
func Decode(r io.Reader) (Resume, error) {
	if r == nil {
		return Resume{}, fmt.Errorf("resume: missing reader")
	}
	var out Resume
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&out); err != nil {
		if errors.Is(err, io.EOF) {
			return Resume{}, nil
		}
		return Resume{}, fmt.Errorf("resume: decode yaml: %w", err)
	}
	return out, nil
}

// LoadFile reads a YAML resume document from path.
func LoadFile(path string) (Resume, error) {
	f, err := os.Open(path)
	if err != nil {
		return Resume{}, fmt.Errorf("resume: open seed: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Decode(f)
}

// Encode writes r as YAML.
func Encode(w io.Writer, r Resume) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("resume: encode yaml: %w", err)
	}
	return enc.Close()
}
