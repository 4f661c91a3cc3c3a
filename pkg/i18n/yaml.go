package i18n

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML parses YAML catalog content into the flat shape New expects. The
// top level maps language codes to translation trees; nested mappings are
// flattened into dot-notation keys, so
//
//	en:
//	  validation:
//	    required: "This field is required."
//
// yields {"en": {"validation.required": "This field is required."}}.
func ParseYAML(content []byte) (map[string]map[string]string, error) {
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no languages found", ErrFailedToParseYAML)
	}

	result := make(map[string]map[string]string, len(data))
	for lang, val := range data {
		tree, ok := stringKeyed(val)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected mapping, got %T", ErrFailedToParseYAML, lang, val)
		}

		flat := make(map[string]string)
		if err := flatten("", tree, flat); err != nil {
			return nil, fmt.Errorf("%w: language %q: %w", ErrFailedToParseYAML, lang, err)
		}
		result[lang] = flat
	}

	return result, nil
}

// flatten walks a translation tree depth-first, joining mapping keys with
// dots and stringifying scalar leaves. Nil leaves (empty YAML values) are
// skipped.
func flatten(prefix string, tree map[string]any, out map[string]string) error {
	for key, val := range tree {
		if key == "" {
			return fmt.Errorf("empty key under %q", prefix)
		}

		full := key
		if prefix != "" {
			full = prefix + "." + key
		}

		if sub, ok := stringKeyed(val); ok {
			if err := flatten(full, sub, out); err != nil {
				return err
			}
			continue
		}

		switch v := val.(type) {
		case nil:
		case string:
			out[full] = v
		default:
			out[full] = fmt.Sprint(v)
		}
	}
	return nil
}

// stringKeyed normalizes a decoded mapping to string keys, converting the
// map[any]any form some YAML shapes decode to.
func stringKeyed(val any) (map[string]any, bool) {
	switch m := val.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		converted := make(map[string]any, len(m))
		for k, v := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			converted[ks] = v
		}
		return converted, true
	}
	return nil, false
}
