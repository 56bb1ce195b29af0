package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/goccy/go-yaml"

	"storages.dev/storages/storage/locations"
)

// Load reads a YAML config from a local path or an s3:// URI.
func Load(path string, params *Params) (*Config, error) {
	data, err := locations.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Unmarshal(data, params)
}

// Unmarshal parses a YAML config on top of the defaults and resolves ${name}
// placeholders in string values from params.
func Unmarshal(data []byte, params *Params) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("invalid config document format: %w", err)
	}

	if err := ResolveVars(reflect.ValueOf(c), params); err != nil {
		return nil, fmt.Errorf("failed to resolve variables: %w", err)
	}
	return c, nil
}

// ResolveVars walks v and expands ${name} placeholders in every settable
// string. Unknown params are an error.
func ResolveVars(v reflect.Value, params *Params) error {
	if !v.IsValid() {
		return nil
	}

	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return ResolveVars(v.Elem(), params)

	case reflect.Struct:
		for i := range v.NumField() {
			if err := ResolveVars(v.Field(i), params); err != nil {
				return err
			}
		}

	case reflect.String:
		if !v.CanSet() {
			return nil
		}
		resolved, err := expand(v.String(), params)
		if err != nil {
			return err
		}
		v.SetString(resolved)
	}

	return nil
}

func expand(s string, params *Params) (string, error) {
	var missing []error
	resolved := os.Expand(s, func(name string) string {
		value, found := params.Get(name)
		if !found {
			missing = append(missing, fmt.Errorf("parameter %q not found", name))
		}
		return value
	})
	return resolved, errors.Join(missing...)
}
