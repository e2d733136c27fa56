// Package valfmt encodes JSON-like data as YAML, XML and CSV text and draws
// CSV text as bordered tables.
//
// Data is held in a [Value], an immutable tagged union of null, bool, number,
// string, array and object. Objects keep their keys in insertion order. Build
// values with the constructors or parse them from JSON:
//
//	v, err := valfmt.ParseJSON(data)
//	v := valfmt.Object(
//	    valfmt.Field("name", valfmt.String("Eve")),
//	    valfmt.Field("hobbies", valfmt.Array(valfmt.String("painting"))),
//	)
//
// Every encoder is a pure function of its input and options:
//
//   - [EncodeYAML] — YAML document, see [YAMLOptions]
//   - [EncodeXML] — indented XML elements, root must be an object
//   - [EncodeCSV] — header plus one line per row, columns from the first row
//   - [RenderTable] — fixed-width text table from CSV text, see [TableOptions]
//
// # Format Selection
//
// [Write] and [Marshal] dispatch on a [Format]. Use [ParseFormat] to turn a
// CLI flag into a Format:
//
//	f, err := valfmt.ParseFormat(flagValue)
//	valfmt.Write(os.Stdout, f, v, valfmt.DefaultOptions())
//
// The Table format runs [EncodeCSV] then [RenderTable].
//
// # Limitations
//
// XML keys and text are not escaped and CSV cells are not quoted. Values
// containing markup characters, commas or newlines produce malformed output.
// Nested containers in CSV cells are written in textual form: arrays as their
// element texts joined by commas and objects as compact JSON. Run [Flatten]
// on each row first to spread them over path-named columns.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedFormat] — unknown format string
//   - [ErrInvalidRoot] — XML root or first CSV row is not an object
//   - [ErrDepthExceeded] — nesting deeper than [MaxDepth]
//   - [ErrInvalidJSON] — malformed JSON input to [ParseJSON]
//   - [ErrUnsupportedType] — Go value [FromAny] cannot convert
package valfmt
