package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/dataclassic/dataclassic/ndarray"
)

// loadArray decodes a YAML or JSON nested sequence from file ("-" for in).
func loadArray(file string, in io.Reader) (*ndarray.Array, error) {
	r := in
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	return decodeArray(buf)
}

func decodeArray(buf []byte) (*ndarray.Array, error) {
	var data any
	if err := yaml.Unmarshal(buf, &data); err != nil {
		return nil, fmt.Errorf("error decoding: %w", err)
	}
	a, err := ndarray.New(data)
	if err != nil {
		return nil, fmt.Errorf("error building array: %w", err)
	}
	return a, nil
}
