package valfmt_test

import (
	"strings"
	"testing"

	"github.com/bjaus/valfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEncodeYAML(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		v    valfmt.Value
		want string
	}{
		"flat object": {
			v:    eve(),
			want: "---\nname: Eve\nage: 22\nhuman: true\nhobbies:\n  - painting\n  - cycling",
		},
		"scalar root": {
			v:    valfmt.String("hello"),
			want: "---\nhello",
		},
		"null root": {
			v:    valfmt.Null(),
			want: "---\nnull",
		},
		"empty array": {
			v:    valfmt.Array(),
			want: "---\n[]",
		},
		"empty object": {
			v:    valfmt.Object(),
			want: "---\n{}",
		},
		"empty nested containers inline": {
			v: valfmt.Object(
				valfmt.Field("tags", valfmt.Array()),
				valfmt.Field("meta", valfmt.Object()),
			),
			want: "---\ntags: []\nmeta: {}",
		},
		"array of objects": {
			v: valfmt.Array(
				valfmt.Object(
					valfmt.Field("a", valfmt.Number(1)),
					valfmt.Field("b", valfmt.String("x")),
				),
				valfmt.Object(),
			),
			want: "---\n- a: 1\n  b: x\n- {}",
		},
		"nested arrays": {
			v: valfmt.Array(
				valfmt.Array(valfmt.Number(1), valfmt.Number(2)),
				valfmt.Array(),
			),
			want: "---\n- - 1\n  - 2\n- []",
		},
		"nested object": {
			v: valfmt.Object(
				valfmt.Field("address", valfmt.Object(
					valfmt.Field("city", valfmt.String("Wonderland")),
					valfmt.Field("zip", valfmt.String("12345")),
				)),
			),
			want: "---\naddress:\n  city: Wonderland\n  zip: '12345'",
		},
		"object inside array inside object": {
			v: valfmt.Object(
				valfmt.Field("users", valfmt.Array(
					valfmt.Object(
						valfmt.Field("name", valfmt.String("Alice")),
						valfmt.Field("address", valfmt.Object(
							valfmt.Field("city", valfmt.String("W")),
						)),
					),
				)),
			),
			want: "---\nusers:\n  - name: Alice\n    address:\n      city: W",
		},
		"scalars": {
			v: valfmt.Array(
				valfmt.Null(),
				valfmt.Bool(false),
				valfmt.Number(-1.5),
				valfmt.Number(1e21),
			),
			want: "---\n- null\n- false\n- -1.5\n- 1e+21",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := valfmt.EncodeYAML(tt.v, valfmt.DefaultYAMLOptions())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeYAMLIndent(t *testing.T) {
	t.Parallel()
	v := valfmt.Object(
		valfmt.Field("a", valfmt.Object(valfmt.Field("b", valfmt.Number(1)))),
		valfmt.Field("c", valfmt.Array(valfmt.Object(
			valfmt.Field("d", valfmt.Number(2)),
			valfmt.Field("f", valfmt.Number(3)),
		))),
	)
	tests := map[string]struct {
		indent int
		want   string
	}{
		"four": {
			indent: 4,
			want:   "---\na:\n    b: 1\nc:\n    - d: 2\n        f: 3",
		},
		"zero means two": {
			indent: 0,
			want:   "---\na:\n  b: 1\nc:\n  - d: 2\n    f: 3",
		},
		"negative means two": {
			indent: -3,
			want:   "---\na:\n  b: 1\nc:\n  - d: 2\n    f: 3",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := valfmt.EncodeYAML(v, valfmt.YAMLOptions{Indent: tt.indent})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeYAMLAutoQuoting(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   string
		want string
	}{
		"plain":            {in: "hello", want: "hello"},
		"empty":            {in: "", want: "''"},
		"integer":          {in: "123", want: "'123'"},
		"float":            {in: "1.5e3", want: "'1.5e3'"},
		"signed":           {in: "-42", want: "'-42'"},
		"lone dash":        {in: "-", want: "'-'"},
		"true":             {in: "true", want: "'true'"},
		"mixed case yes":   {in: "Yes", want: "'Yes'"},
		"null":             {in: "NULL", want: "'NULL'"},
		"off":              {in: "off", want: "'off'"},
		"colon":            {in: "a:b", want: "'a:b'"},
		"hash":             {in: "a#b", want: "'a#b'"},
		"tab":              {in: "a\tb", want: "'a\tb'"},
		"leading space":    {in: " x", want: "' x'"},
		"trailing space":   {in: "x ", want: "'x '"},
		"quote only":       {in: "it's", want: "it's"},
		"quote doubled":    {in: "it's: here", want: "'it''s: here'"},
		"alphanumeric":     {in: "12a", want: "12a"},
		"keyword in words": {in: "yes please", want: "yes please"},
		"exponent marker":  {in: "e", want: "'e'"},
		"upper exponent":   {in: "E", want: "'E'"},
		"lone dot":         {in: ".", want: "'.'"},
		"lone plus":        {in: "+", want: "'+'"},
		"carriage return":  {in: "a\rb", want: "'a\rb'"},
		"word with e":      {in: "eel", want: "eel"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := valfmt.EncodeYAML(valfmt.String(tt.in), valfmt.DefaultYAMLOptions())
			require.NoError(t, err)
			assert.Equal(t, "---\n"+tt.want, got)
		})
	}
}

func TestEncodeYAMLQuoteModes(t *testing.T) {
	t.Parallel()
	v := valfmt.Object(
		valfmt.Field("on", valfmt.String("123")),
		valfmt.Field("name", valfmt.String("it's")),
	)
	tests := map[string]struct {
		mode valfmt.QuoteMode
		want string
	}{
		"auto":   {mode: valfmt.QuoteAuto, want: "---\n'on': '123'\nname: it's"},
		"always": {mode: valfmt.QuoteAlways, want: "---\n'on': '123'\n'name': 'it''s'"},
		"never":  {mode: valfmt.QuoteNever, want: "---\non: 123\nname: it's"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := valfmt.EncodeYAML(v, valfmt.YAMLOptions{Quote: tt.mode})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeYAMLNeverQuotesAnything(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"", "1", "true", "a: b", " pad "} {
		got, err := valfmt.EncodeYAML(valfmt.String(s), valfmt.YAMLOptions{Quote: valfmt.QuoteNever})
		require.NoError(t, err)
		assert.Equal(t, "---\n"+s, got)
	}
}

func TestEncodeYAMLSortKeys(t *testing.T) {
	t.Parallel()
	v := valfmt.Object(
		valfmt.Field("b", valfmt.Number(1)),
		valfmt.Field("a", valfmt.Number(2)),
		valfmt.Field("c", valfmt.Object(
			valfmt.Field("z", valfmt.Number(1)),
			valfmt.Field("y", valfmt.Number(2)),
		)),
	)

	sorted, err := valfmt.EncodeYAML(v, valfmt.YAMLOptions{SortKeys: true})
	require.NoError(t, err)
	assert.Equal(t, "---\na: 2\nb: 1\nc:\n  y: 2\n  z: 1", sorted)

	unsorted, err := valfmt.EncodeYAML(v, valfmt.DefaultYAMLOptions())
	require.NoError(t, err)
	assert.Equal(t, "---\nb: 1\na: 2\nc:\n  z: 1\n  y: 2", unsorted)

	// Sorting never reorders the value itself.
	assert.Equal(t, []string{"b", "a", "c"}, v.Keys())
}

func TestEncodeYAMLIsValidYAML(t *testing.T) {
	t.Parallel()
	v := valfmt.Object(
		valfmt.Field("users", valfmt.Array(
			valfmt.Object(
				valfmt.Field("name", valfmt.String("Alice")),
				valfmt.Field("age", valfmt.Number(30)),
				valfmt.Field("hobbies", valfmt.Array(valfmt.String("reading"), valfmt.String("gaming"))),
				valfmt.Field("address", valfmt.Object(
					valfmt.Field("city", valfmt.String("Wonderland")),
					valfmt.Field("zip", valfmt.String("12345")),
				)),
			),
		)),
		valfmt.Field("flag", valfmt.String("no")),
		valfmt.Field("empty", valfmt.Array()),
	)
	out, err := valfmt.EncodeYAML(v, valfmt.DefaultYAMLOptions())
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got), out)
	assert.Equal(t, map[string]any{
		"users": []any{
			map[string]any{
				"name":    "Alice",
				"age":     30,
				"hobbies": []any{"reading", "gaming"},
				"address": map[string]any{"city": "Wonderland", "zip": "12345"},
			},
		},
		"flag":  "no",
		"empty": []any{},
	}, got)
}

func TestEncodeYAMLIdempotent(t *testing.T) {
	t.Parallel()
	opts := valfmt.YAMLOptions{Indent: 2, SortKeys: true}
	first, err := valfmt.EncodeYAML(eve(), opts)
	require.NoError(t, err)
	second, err := valfmt.EncodeYAML(eve(), opts)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEncodeYAMLDepthExceeded(t *testing.T) {
	t.Parallel()
	v := valfmt.Null()
	for range valfmt.MaxDepth + 2 {
		v = valfmt.Array(v)
	}
	_, err := valfmt.EncodeYAML(v, valfmt.DefaultYAMLOptions())
	require.ErrorIs(t, err, valfmt.ErrDepthExceeded)
}

func TestParseQuoteMode(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   string
		want valfmt.QuoteMode
	}{
		"auto":    {in: "auto", want: valfmt.QuoteAuto},
		"always":  {in: "always", want: valfmt.QuoteAlways},
		"never":   {in: "never", want: valfmt.QuoteNever},
		"unknown": {in: "sometimes", want: valfmt.QuoteAuto},
		"empty":   {in: "", want: valfmt.QuoteAuto},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, valfmt.ParseQuoteMode(tt.in))
		})
	}
}

func TestQuoteModeString(t *testing.T) {
	t.Parallel()
	for _, name := range []string{"auto", "always", "never"} {
		assert.Equal(t, name, valfmt.ParseQuoteMode(name).String())
	}
}

func TestMarshalYAMLPreservesOrder(t *testing.T) {
	t.Parallel()
	v := valfmt.Object(
		valfmt.Field("zeta", valfmt.Number(1)),
		valfmt.Field("alpha", valfmt.String("123")),
		valfmt.Field("list", valfmt.Array(valfmt.Bool(true), valfmt.Null(), valfmt.Number(2.5))),
	)
	out, err := yaml.Marshal(v)
	require.NoError(t, err)
	text := string(out)
	assert.Less(t, strings.Index(text, "zeta"), strings.Index(text, "alpha"))
	assert.Less(t, strings.Index(text, "alpha"), strings.Index(text, "list"))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(out, &got))
	assert.Equal(t, map[string]any{
		"zeta":  1,
		"alpha": "123",
		"list":  []any{true, nil, 2.5},
	}, got)
}

func TestMarshalYAMLEmbedded(t *testing.T) {
	t.Parallel()
	doc := struct {
		Kind string       `yaml:"kind"`
		Data valfmt.Value `yaml:"data"`
	}{Kind: "sample", Data: eve()}
	out, err := yaml.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(out), "kind: sample")
	assert.Contains(t, string(out), "name: Eve")
}
