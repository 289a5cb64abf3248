// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/MKhiriev/go-form-guard/models"
	"gopkg.in/yaml.v3"
)

//go:embed definitions/*.yaml
var builtin embed.FS

// DefaultDefinition is the name of the built-in form used when no
// definition file is configured.
const DefaultDefinition = "signup"

// LoadDefinition reads a form definition from path. An empty path loads the
// built-in signup form.
func LoadDefinition(path string) (models.FormDefinition, error) {
	if path == "" {
		return Builtin(DefaultDefinition)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.FormDefinition{}, fmt.Errorf("form: read %s: %w", path, err)
	}

	return ParseDefinition(data, path)
}

// Builtin returns one of the definitions embedded in the binary.
func Builtin(name string) (models.FormDefinition, error) {
	path := "definitions/" + name + ".yaml"
	data, err := fs.ReadFile(builtin, path)
	if err != nil {
		return models.FormDefinition{}, fmt.Errorf("form: builtin %q: %w", name, ErrUnknownDefinition)
	}

	return ParseDefinition(data, path)
}

// ParseDefinition decodes a JSON or YAML document and checks its structure.
// source is only used in error messages.
func ParseDefinition(data []byte, source string) (models.FormDefinition, error) {
	var def models.FormDefinition
	if len(strings.TrimSpace(string(data))) == 0 {
		return def, fmt.Errorf("form: file %s: %w", source, ErrEmptyDefinition)
	}

	if err := json.Unmarshal(data, &def); err != nil {
		def = models.FormDefinition{}
		if err := yaml.Unmarshal(data, &def); err != nil {
			return models.FormDefinition{}, fmt.Errorf("form: parse %s: invalid JSON or YAML: %w", source, err)
		}
	}

	if err := checkDefinition(def); err != nil {
		return models.FormDefinition{}, fmt.Errorf("form: file %s: %w", source, err)
	}

	return def, nil
}

func checkDefinition(def models.FormDefinition) error {
	if strings.TrimSpace(def.Name) == "" {
		return ErrEmptyFormName
	}
	if len(def.Fields) == 0 {
		return ErrNoFields
	}

	seen := make(map[string]struct{}, len(def.Fields))
	for i, field := range def.Fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			return fmt.Errorf("field #%d: %w", i+1, ErrEmptyFieldName)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("field %q: %w", name, ErrDuplicateField)
		}
		seen[name] = struct{}{}
	}

	return nil
}
