package lint

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// ErrInvalidOptions is returned when rule configuration is malformed.
var ErrInvalidOptions = errors.New("invalid lint options")

// OptionExceptions is the option key holding path-substring exceptions.
const OptionExceptions = "exceptions"

// GetOption extracts a typed option with a default value.
func GetOption[T any](opts map[string]any, key string, defaultVal T) T {
	if opts == nil {
		return defaultVal
	}
	v, ok := opts[key]
	if !ok {
		return defaultVal
	}
	// Handle type conversion
	if typed, ok := v.(T); ok {
		return typed
	}
	return defaultVal
}

// GetIntOption extracts an int option, handling float64 from JSON.
func GetIntOption(opts map[string]any, key string, defaultVal int) int {
	if opts == nil {
		return defaultVal
	}
	v, ok := opts[key]
	if !ok {
		return defaultVal
	}
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	case int64:
		return int(n)
	default:
		return defaultVal
	}
}

// GetFloatOption extracts a float option, accepting any numeric type.
func GetFloatOption(opts map[string]any, key string, defaultVal float64) float64 {
	if opts == nil {
		return defaultVal
	}
	v, ok := opts[key]
	if !ok {
		return defaultVal
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return defaultVal
	}
}

// GetStringOption extracts a string option.
func GetStringOption(opts map[string]any, key string, defaultVal string) string {
	if opts == nil {
		return defaultVal
	}
	v, ok := opts[key]
	if !ok {
		return defaultVal
	}
	if s, ok := v.(string); ok {
		return s
	}
	return defaultVal
}

// GetBoolOption extracts a bool option.
func GetBoolOption(opts map[string]any, key string, defaultVal bool) bool {
	if opts == nil {
		return defaultVal
	}
	v, ok := opts[key]
	if !ok {
		return defaultVal
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return defaultVal
}

// GetStringSliceOption extracts a string slice option.
func GetStringSliceOption(opts map[string]any, key string, defaultVal []string) []string {
	if opts == nil {
		return defaultVal
	}
	v, ok := opts[key]
	if !ok {
		return defaultVal
	}
	switch s := v.(type) {
	case []string:
		return s
	case []any:
		result := make([]string, 0, len(s))
		for _, item := range s {
			if str, ok := item.(string); ok {
				result = append(result, str)
			}
		}
		return result
	default:
		return defaultVal
	}
}

// DecodeOptions decodes rule options into a struct tagged with
// `mapstructure`. Unknown keys and mismatched types are errors.
func DecodeOptions(opts map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: true,
		TagName:     "mapstructure",
	})
	if err != nil {
		return fmt.Errorf("creating option decoder: %w", err)
	}
	if err := dec.Decode(opts); err != nil {
		return err
	}
	return nil
}

// ValidateExceptions checks that every exception is a non-empty string.
func ValidateExceptions(exceptions []string) error {
	for i, e := range exceptions {
		if strings.TrimSpace(e) == "" {
			return fmt.Errorf("%s[%d]: must be a non-empty path substring", OptionExceptions, i)
		}
	}
	return nil
}

// PathExcepted reports whether path contains any of the exceptions.
func PathExcepted(path string, exceptions []string) bool {
	for _, e := range exceptions {
		if e != "" && strings.Contains(path, e) {
			return true
		}
	}
	return false
}
