package partner

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// EnumCodec converts an integer-backed enum to and from its wire form.
// Codecs are declared next to each enum type so the set of converted types
// is fixed at compile time.
type EnumCodec[T ~int] struct {
	names  map[T]string
	values map[string]T
	folded map[string]T
}

// NewEnumCodec builds a codec from the PascalCase name of every value.
func NewEnumCodec[T ~int](names map[T]string) *EnumCodec[T] {
	codec := &EnumCodec[T]{
		names:  make(map[T]string, len(names)),
		values: make(map[string]T, len(names)),
		folded: make(map[string]T, len(names)),
	}

	for value, name := range names {
		codec.names[value] = name
		codec.values[name] = value
		codec.folded[strings.ToLower(name)] = value
	}

	return codec
}

// Name returns the declared name, or the integer form for undeclared values.
func (c *EnumCodec[T]) Name(value T) string {
	if name, ok := c.names[value]; ok {
		return name
	}

	return strconv.Itoa(int(value))
}

// Parse resolves a wire string. snake_case and camelCase input is
// normalized to PascalCase before matching.
func (c *EnumCodec[T]) Parse(raw string) (T, error) {
	var zero T

	if raw == "" {
		return zero, fmt.Errorf("%w: empty string", ErrInvalidEnumValue)
	}

	normalized := toPascalCase(raw)
	if value, ok := c.values[normalized]; ok {
		return value, nil
	}

	if value, ok := c.folded[strings.ToLower(normalized)]; ok {
		return value, nil
	}

	return zero, fmt.Errorf("%w: %q", ErrInvalidEnumValue, raw)
}

// Marshal writes the value as its name.
func (c *EnumCodec[T]) Marshal(value T) ([]byte, error) {
	data, err := json.Marshal(c.Name(value))
	if err != nil {
		return nil, fmt.Errorf("marshaling enum value: %w", err)
	}

	return data, nil
}

// Unmarshal accepts a JSON string or a raw integer. null leaves the target
// unchanged.
func (c *EnumCodec[T]) Unmarshal(data []byte, target *T) error {
	trimmed := bytes.TrimSpace(data)

	switch {
	case bytes.Equal(trimmed, []byte("null")):
		return nil
	case len(trimmed) > 0 && trimmed[0] == '"':
		var raw string
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return fmt.Errorf("parsing enum string: %w", err)
		}

		value, err := c.Parse(raw)
		if err != nil {
			return err
		}

		*target = value

		return nil
	default:
		number, err := strconv.Atoi(string(trimmed))
		if err != nil {
			return fmt.Errorf("%w: cannot deserialize %s", ErrInvalidEnumValue, string(trimmed))
		}

		*target = T(number)

		return nil
	}
}

func toPascalCase(raw string) string {
	segments := strings.Split(raw, "_")

	// A Caser keeps state, so each call gets its own.
	caser := cases.Title(language.Und, cases.NoLower)

	var builder strings.Builder
	for _, segment := range segments {
		if segment == "" {
			continue
		}

		builder.WriteString(caser.String(segment))
	}

	return builder.String()
}
