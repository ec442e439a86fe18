package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"twerr/internal/model"
)

// ErrSchema means an upstream record lacks a required field.
var ErrSchema = errors.New("schema error")

// Build converts upstream records into the code -> message lookup table.
// Duplicate codes keep the last message seen, matching upstream behavior.
func Build(records []model.ErrorRecord) (map[string]string, error) {
	mapping := make(map[string]string, len(records))
	for i, rec := range records {
		if rec.Code == nil {
			return nil, fmt.Errorf("%w: record %d has no code", ErrSchema, i)
		}
		if rec.Message == nil {
			return nil, fmt.Errorf("%w: record %d has no message", ErrSchema, i)
		}
		mapping[string(*rec.Code)] = *rec.Message
	}
	return mapping, nil
}

// Write serializes the mapping as compact JSON and replaces the file at path.
// The data goes through a temp file in the same directory plus a rename, so
// a failed run never leaves a truncated file where a valid one was.
func Write(path string, mapping map[string]string) error {
	data, err := json.Marshal(mapping)
	if err != nil {
		return fmt.Errorf("failed to marshal mapping: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// Load reads back a mapping file previously produced by Write.
func Load(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var mapping map[string]string
	if err := json.Unmarshal(data, &mapping); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return mapping, nil
}
