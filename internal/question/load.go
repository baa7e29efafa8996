package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadSet reads, parses, and validates a question set file.
func LoadSet(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("read question set: %w", err)
	}
	set, err := parseSet(data, path)
	if err != nil {
		return Set{}, err
	}
	normalized, err := NormalizeSet(set)
	if err != nil {
		return Set{}, err
	}
	return normalized, nil
}

// WriteSet writes a question set as JSON or YAML depending on the extension.
func WriteSet(path string, set Set) error {
	var data []byte
	var err error
	if isJSONPath(path) {
		data, err = json.MarshalIndent(set, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	} else {
		data, err = yaml.Marshal(set)
	}
	if err != nil {
		return fmt.Errorf("encode question set: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create question set dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write question set: %w", err)
	}
	return nil
}

func isJSONPath(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".json"
}

func parseSet(data []byte, path string) (Set, error) {
	if isJSONPath(path) {
		return parseJSONSet(data)
	}
	return parseYAMLSet(data)
}

func parseJSONSet(data []byte) (Set, error) {
	var set Set
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&set); err != nil {
		return Set{}, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Set{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return Set{}, fmt.Errorf("parse json: %w", err)
	}
	return set, nil
}

func parseYAMLSet(data []byte) (Set, error) {
	var set Set
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&set); err != nil {
		return Set{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Set{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return Set{}, fmt.Errorf("parse yaml: %w", err)
	}
	return set, nil
}
