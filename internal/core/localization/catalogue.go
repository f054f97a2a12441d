// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package localization

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalogue.yaml
var builtinCatalogue []byte

// DefaultCatalogue returns the built-in seed entries in file order.
func DefaultCatalogue() ([]Entry, error) {
	entries, err := parseCatalogue(builtinCatalogue)
	if err != nil {
		return nil, fmt.Errorf("localization: built-in catalogue: %w", err)
	}
	return entries, nil
}

// LoadCatalogue reads a YAML sequence of {source, target} pairs.
func LoadCatalogue(reader io.Reader) ([]Entry, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("localization: read catalogue: %w", err)
	}
	return parseCatalogue(data)
}

// LoadCatalogueFile is [LoadCatalogue] over a file on disk.
func LoadCatalogueFile(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("localization: open catalogue %s: %w", path, err)
	}
	defer file.Close()

	return LoadCatalogue(file)
}

func parseCatalogue(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("localization: parse catalogue: %w", err)
	}

	for position, entry := range entries {
		if entry.Source == "" {
			return nil, fmt.Errorf("localization: catalogue entry %d: %w", position, ErrEmptyPhrase)
		}
		if entry.Target == "" {
			return nil, fmt.Errorf("localization: catalogue entry %d (%q): %w", position, entry.Source, errEmptyTarget)
		}
	}
	return entries, nil
}

var errEmptyTarget = errors.New("empty target phrase")
