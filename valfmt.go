package valfmt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidRoot       = errors.New("invalid root value")
	ErrDepthExceeded     = errors.New("maximum nesting depth exceeded")
	ErrInvalidJSON       = errors.New("invalid json")
	ErrUnsupportedType   = errors.New("unsupported type")
)

// Format represents an output format.
type Format string

const (
	JSON  Format = "json"
	YAML  Format = "yaml"
	XML   Format = "xml"
	CSV   Format = "csv"
	Table Format = "table"
)

var formats = []Format{JSON, YAML, XML, CSV, Table}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Supports reports whether v has the shape format f requires. JSON and YAML
// accept any value; XML needs an object; CSV and Table need an object or an
// array whose first element is an object.
func (f Format) Supports(v Value) bool {
	switch f {
	case JSON, YAML:
		return true
	case XML:
		return v.kind == KindObject
	case CSV, Table:
		if v.kind == KindArray {
			return len(v.items) == 0 || v.items[0].kind == KindObject
		}
		return v.kind == KindObject
	default:
		return false
	}
}

// Options bundles the per-encoder options used by [Write] and [Marshal].
type Options struct {
	YAML      YAMLOptions
	XMLIndent int
	Table     TableOptions
}

// DefaultOptions returns the defaults of every encoder.
func DefaultOptions() Options {
	return Options{
		YAML:  DefaultYAMLOptions(),
		Table: DefaultTableOptions(),
	}
}

// Write encodes v in format f and writes it to w. Non-empty output always
// ends with a newline.
func Write(w io.Writer, f Format, v Value, opts Options) error {
	var (
		out string
		err error
	)
	switch f {
	case JSON:
		out, err = encodeJSONIndent(v)
	case YAML:
		out, err = EncodeYAML(v, opts.YAML)
	case XML:
		out, err = EncodeXML(v, opts.XMLIndent)
	case CSV:
		out, err = EncodeCSV(v)
	case Table:
		var text string
		text, err = EncodeCSV(v)
		out = RenderTable(text, opts.Table)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return err
	}
	if out == "" {
		return nil
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err = io.WriteString(w, out)
	return err
}

// Marshal encodes v in format f and returns the bytes.
func Marshal(f Format, v Value, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, v, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeJSONIndent(v Value) (string, error) {
	raw, err := v.MarshalJSON()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return "", err
	}
	return buf.String(), nil
}
