package locale

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"locale-manager/core/utils"

	"github.com/goccy/go-yaml"
	"github.com/tidwall/gjson"
)

// Format identifies the on-disk encoding of a locale file.
type Format string

const (
	// FormatJSON is a flat JSON object of strings.
	FormatJSON Format = "json"
	// FormatYAML is a flat YAML mapping of scalars.
	FormatYAML Format = "yaml"
)

var (
	// ErrInvalidDocument is returned when the input is not a flat key→string document.
	ErrInvalidDocument = errors.New("invalid locale document")
	// ErrUnsupportedFormat is returned for unknown format names.
	ErrUnsupportedFormat = errors.New("unsupported locale format")
)

// ParseFormat resolves a format name such as "json", "yaml" or "yml".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// Extension returns the file extension (with dot) used for the format.
func (f Format) Extension() string {
	return "." + string(f)
}

// ContentType returns the MIME type used when serving or uploading the format.
func (f Format) ContentType() string {
	if f == FormatYAML {
		return "application/yaml"
	}
	return "application/json"
}

// Decode parses data in the given format.
func Decode(data []byte, format Format) (*Mapping, error) {
	switch format {
	case FormatJSON:
		return DecodeJSON(data)
	case FormatYAML:
		return DecodeYAML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Encode serializes the mapping in the given format.
func Encode(m *Mapping, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return EncodeJSON(m)
	case FormatYAML:
		return EncodeYAML(m)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// DecodeJSON parses a flat JSON object of strings, preserving key order.
// null values decode to the empty string; duplicate keys keep their first position and last value.
func DecodeJSON(data []byte) (*Mapping, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidDocument)
	}

	dec := json.NewDecoder(bytes.NewReader(data))

	t, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if delim, ok := t.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: expected object, got %v", ErrInvalidDocument, t)
	}

	m := New()
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		key, ok := kt.(string)
		if !ok {
			return nil, fmt.Errorf("%w: expected string key, got %T", ErrInvalidDocument, kt)
		}

		vt, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		switch v := vt.(type) {
		case string:
			m.Set(key, v)
		case nil:
			m.Set(key, "")
		default:
			return nil, fmt.Errorf("%w: value for key %q is not a string", ErrInvalidDocument, key)
		}
	}

	return m, nil
}

// EncodeJSON serializes the mapping as JSON with 2-space indentation and a trailing newline.
// Keys are written in mapping order and HTML characters are not escaped.
func EncodeJSON(m *Mapping) ([]byte, error) {
	out, err := encodeJSON(m, "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

func encodeJSON(m *Mapping, indent string) ([]byte, error) {
	if m.Len() == 0 {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')

	var err error
	i := 0
	m.Range(func(k, v string) bool {
		if i > 0 {
			buf.WriteByte(',')
		}
		if indent != "" {
			buf.WriteByte('\n')
			buf.WriteString(indent)
		}
		if err = writeJSONString(&buf, k); err != nil {
			return false
		}
		buf.WriteByte(':')
		if indent != "" {
			buf.WriteByte(' ')
		}
		if err = writeJSONString(&buf, v); err != nil {
			return false
		}
		i++
		return true
	})
	if err != nil {
		return nil, err
	}

	if indent != "" {
		buf.WriteByte('\n')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeJSONString quotes s without the HTML and U+2028/U+2029 escapes that
// encoding/json adds. Exported files keep those characters raw.
func writeJSONString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	out := bytes.TrimSuffix(tmp.Bytes(), []byte("\n"))
	for i := 0; i < len(out); i++ {
		if out[i] != '\\' || i+1 >= len(out) {
			buf.WriteByte(out[i])
			continue
		}
		if seq := out[i:]; len(seq) >= 6 && (bytes.HasPrefix(seq, []byte(`\u2028`)) || bytes.HasPrefix(seq, []byte(`\u2029`))) {
			if seq[5] == '8' {
				buf.WriteRune('\u2028')
			} else {
				buf.WriteRune('\u2029')
			}
			i += 5
			continue
		}
		buf.Write(out[i : i+2])
		i++
	}
	return nil
}

// DecodeYAML parses a flat YAML mapping, preserving key order.
// Scalar values are converted to their string form; null becomes the empty string.
func DecodeYAML(data []byte) (*Mapping, error) {
	var doc yaml.MapSlice
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	m := New()
	for _, item := range doc {
		key, ok := utils.ScalarString(item.Key)
		if !ok || item.Key == nil {
			return nil, fmt.Errorf("%w: key %v is not a scalar", ErrInvalidDocument, item.Key)
		}
		value, ok := utils.ScalarString(item.Value)
		if !ok {
			return nil, fmt.Errorf("%w: value for key %q is not a scalar", ErrInvalidDocument, key)
		}
		m.Set(key, value)
	}
	return m, nil
}

// EncodeYAML serializes the mapping as a YAML document in mapping order.
func EncodeYAML(m *Mapping) ([]byte, error) {
	doc := make(yaml.MapSlice, 0, m.Len())
	m.Range(func(k, v string) bool {
		doc = append(doc, yaml.MapItem{Key: k, Value: v})
		return true
	})
	if len(doc) == 0 {
		return []byte("{}\n"), nil
	}
	return yaml.Marshal(doc)
}
