package manifest

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
)

// Parse decodes package.json bytes.
func Parse(data []byte) (*Package, error) {
	var p Package
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing package.json: %w", err)
	}
	return &p, nil
}

// ParseFile reads and decodes the package.json at path.
func ParseFile(fs afero.Fs, path string) (*Package, error) {
	data, err := readFile(fs, path)
	if err != nil {
		return nil, err
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func readFile(fs afero.Fs, path string) ([]byte, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
