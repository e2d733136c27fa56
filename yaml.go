package valfmt

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// QuoteMode controls when the YAML encoder single-quotes strings and keys.
type QuoteMode int

const (
	QuoteAuto   QuoteMode = iota // quote only strings that would read as another type
	QuoteAlways                  // quote every string
	QuoteNever                   // never quote
)

var quoteModeNames = map[string]QuoteMode{
	"auto":   QuoteAuto,
	"always": QuoteAlways,
	"never":  QuoteNever,
}

// String returns the mode name.
func (q QuoteMode) String() string {
	switch q {
	case QuoteAlways:
		return "always"
	case QuoteNever:
		return "never"
	default:
		return "auto"
	}
}

// ParseQuoteMode returns the mode named s. Unknown names yield [QuoteAuto].
func ParseQuoteMode(s string) QuoteMode {
	if q, ok := quoteModeNames[s]; ok {
		return q
	}
	return QuoteAuto
}

// YAMLOptions configures [EncodeYAML].
type YAMLOptions struct {
	Indent   int // spaces per nesting level; values <= 0 mean 2
	Quote    QuoteMode
	SortKeys bool // emit object keys in lexicographic order
}

// DefaultYAMLOptions returns two-space indentation, automatic quoting and
// insertion-ordered keys.
func DefaultYAMLOptions() YAMLOptions {
	return YAMLOptions{Indent: 2, Quote: QuoteAuto}
}

var (
	yamlNumeric = regexp.MustCompile(`^[0-9+\-.eE]+$`)
	yamlKeyword = regexp.MustCompile(`(?i)^(true|false|null|yes|no|on|off)$`)
)

type yamlEncoder struct {
	indent   string
	quote    QuoteMode
	sortKeys bool
}

// EncodeYAML renders v as a YAML document. The result starts with a "---"
// line and has no trailing newline.
func EncodeYAML(v Value, opts YAMLOptions) (string, error) {
	width := opts.Indent
	if width <= 0 {
		width = 2
	}
	e := &yamlEncoder{
		indent:   strings.Repeat(" ", width),
		quote:    opts.Quote,
		sortKeys: opts.SortKeys,
	}
	lines, err := e.node(v, 0)
	if err != nil {
		return "", err
	}
	return "---\n" + strings.Join(lines, "\n"), nil
}

// node returns the lines of v relative to column zero. Callers indent them.
func (e *yamlEncoder) node(v Value, depth int) ([]string, error) {
	if depth > MaxDepth {
		return nil, fmt.Errorf("%w: yaml nesting deeper than %d", ErrDepthExceeded, MaxDepth)
	}
	switch v.kind {
	case KindNull:
		return []string{"null"}, nil
	case KindBool, KindNumber:
		return []string{v.Text()}, nil
	case KindString:
		return []string{e.str(v.s)}, nil
	case KindArray:
		if len(v.items) == 0 {
			return []string{"[]"}, nil
		}
		return e.sequence(v, depth)
	case KindObject:
		if len(v.members) == 0 {
			return []string{"{}"}, nil
		}
		return e.mapping(v, depth)
	default:
		return nil, fmt.Errorf("yaml: unhandled value kind %s", v.kind)
	}
}

func (e *yamlEncoder) sequence(v Value, depth int) ([]string, error) {
	var lines []string
	for _, item := range v.items {
		sub, err := e.node(item, depth+1)
		if err != nil {
			return nil, err
		}
		lines = append(lines, "- "+sub[0])
		for _, line := range sub[1:] {
			lines = append(lines, e.indent+line)
		}
	}
	return lines, nil
}

func (e *yamlEncoder) mapping(v Value, depth int) ([]string, error) {
	var lines []string
	for _, m := range e.ordered(v.members) {
		key := e.str(m.Key)
		sub, err := e.node(m.Value, depth+1)
		if err != nil {
			return nil, err
		}
		if m.Value.isContainer() && m.Value.Len() > 0 {
			lines = append(lines, key+":")
			for _, line := range sub {
				lines = append(lines, e.indent+line)
			}
			continue
		}
		lines = append(lines, key+": "+sub[0])
	}
	return lines, nil
}

func (e *yamlEncoder) ordered(members []Member) []Member {
	if !e.sortKeys {
		return members
	}
	sorted := slices.Clone(members)
	slices.SortStableFunc(sorted, func(a, b Member) int {
		return strings.Compare(a.Key, b.Key)
	})
	return sorted
}

func (e *yamlEncoder) str(s string) string {
	if !needsQuotes(s, e.quote) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func needsQuotes(s string, mode QuoteMode) bool {
	switch mode {
	case QuoteAlways:
		return true
	case QuoteNever:
		return false
	}
	if s == "" {
		return true
	}
	if yamlNumeric.MatchString(s) || yamlKeyword.MatchString(s) {
		return true
	}
	if strings.ContainsAny(s, "\n\r\t#:") {
		return true
	}
	first, _ := utf8.DecodeRuneInString(s)
	last, _ := utf8.DecodeLastRuneInString(s)
	return unicode.IsSpace(first) || unicode.IsSpace(last)
}

// MarshalYAML implements [yaml.Marshaler] so a Value can be embedded in
// documents written by gopkg.in/yaml.v3. Object key order is preserved.
func (v Value) MarshalYAML() (any, error) {
	return v.yamlNode(0)
}

func (v Value) yamlNode(depth int) (*yaml.Node, error) {
	if depth > MaxDepth {
		return nil, fmt.Errorf("%w: yaml nesting deeper than %d", ErrDepthExceeded, MaxDepth)
	}
	switch v.kind {
	case KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: v.Text()}, nil
	case KindNumber:
		return numberNode(v.n), nil
	case KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.s}, nil
	case KindArray:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v.items {
			child, err := item.yamlNode(depth + 1)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case KindObject:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, m := range v.members {
			child, err := m.Value.yamlNode(depth + 1)
			if err != nil {
				return nil, err
			}
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: m.Key}
			node.Content = append(node.Content, key, child)
		}
		return node, nil
	default:
		return nil, fmt.Errorf("yaml: unhandled value kind %s", v.kind)
	}
}

func numberNode(n float64) *yaml.Node {
	node := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float"}
	switch {
	case math.IsNaN(n):
		node.Value = ".nan"
	case math.IsInf(n, 1):
		node.Value = ".inf"
	case math.IsInf(n, -1):
		node.Value = "-.inf"
	case n == math.Trunc(n) && math.Abs(n) < 1e21:
		node.Tag = "!!int"
		node.Value = formatNumber(n)
	default:
		node.Value = formatNumber(n)
	}
	return node
}
