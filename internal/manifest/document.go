package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vnite-labs/create-vnite-plugin/internal/plugin"
)

// FileName is the manifest file every template must contain.
const FileName = "package.json"

// utf8BOM is dropped from the start of a manifest, as editors on Windows
// tend to write one.
var utf8BOM = []byte("\xef\xbb\xbf")

// Document is a JSON object that remembers the order of its keys.
// Values are kept as raw JSON until they are replaced.
type Document struct {
	keys   []string
	fields map[string]json.RawMessage
}

// Parse decodes a JSON object, ignoring a leading UTF-8 byte order mark.
// Duplicate keys keep their first position and their last value.
func Parse(data []byte) (*Document, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("manifest must be a JSON object")
	}

	d := &Document{fields: make(map[string]json.RawMessage)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("reading manifest key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected manifest token %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("reading manifest field %q: %w", key, err)
		}
		d.setRaw(key, raw)
	}

	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after manifest object")
	}

	return d, nil
}

// Load reads and parses the manifest at path. A missing file is reported
// with an error that matches fs.ErrNotExist.
func Load(path string) (*Document, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return d, nil
}

// Keys returns the top-level keys in document order.
func (d *Document) Keys() []string {
	keys := make([]string, len(d.keys))
	copy(keys, d.keys)
	return keys
}

// Has reports whether key is present.
func (d *Document) Has(key string) bool {
	_, ok := d.fields[key]
	return ok
}

// Lookup decodes the value stored under key into v. It returns false when the
// key is absent.
func (d *Document) Lookup(key string, v any) (bool, error) {
	raw, ok := d.fields[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return true, fmt.Errorf("decoding manifest field %q: %w", key, err)
	}
	return true, nil
}

// Set replaces the value under key, or appends the key when it is new.
func (d *Document) Set(key string, v any) error {
	raw, err := encode(v)
	if err != nil {
		return fmt.Errorf("encoding manifest field %q: %w", key, err)
	}
	d.setRaw(key, raw)
	return nil
}

func (d *Document) setRaw(key string, raw json.RawMessage) {
	if d.fields == nil {
		d.fields = make(map[string]json.RawMessage)
	}
	if _, ok := d.fields[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.fields[key] = raw
}

// Marshal renders the document with two-space indentation and a trailing
// newline.
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := encode(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(d.fields[k])
	}
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("formatting manifest: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// Save writes the document to path.
func (d *Document) Save(path string) error {
	data, err := d.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}

// Apply overwrites the fields owned by the generator with the answers.
// The id is the slugified plugin name.
func Apply(d *Document, a *plugin.Answers) error {
	keywords := a.Keywords
	if keywords == nil {
		keywords = plugin.Keywords(a.Category, a.Name)
	}

	fields := []struct {
		key   string
		value any
	}{
		{"id", a.ID()},
		{"name", a.Name},
		{"description", a.Description},
		{"author", a.Author},
		{"license", a.License},
		{"category", string(a.Category)},
		{"keywords", keywords},
	}
	for _, f := range fields {
		if err := d.Set(f.key, f.value); err != nil {
			return err
		}
	}
	return nil
}

// encode marshals v without escaping HTML characters, matching what
// JavaScript tooling writes for package.json.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
