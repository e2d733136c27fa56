package valfmt

import (
	"fmt"
	"strings"
)

// EncodeCSV flattens an object, or an array of objects, into comma-separated
// text: a header line followed by one line per row, with no trailing newline.
//
// Columns are the keys of the first row. Later rows are looked up by those
// keys; a missing key yields an empty cell and keys the first row lacks are
// dropped. Cells are not quoted, so values containing commas or newlines
// corrupt the layout. Nested arrays and objects are written in their textual
// form rather than flattened; see [Flatten].
func EncodeCSV(v Value) (string, error) {
	rows := []Value{v}
	if v.kind == KindArray {
		rows = v.items
	}
	if len(rows) == 0 {
		return "", nil
	}
	if rows[0].kind != KindObject {
		return "", fmt.Errorf("%w: csv rows must be objects, got %s", ErrInvalidRoot, rows[0].kind)
	}

	keys := rows[0].Keys()
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(keys, ","))
	for _, row := range rows {
		cells := make([]string, len(keys))
		for i, key := range keys {
			cell, ok := row.Get(key)
			if !ok {
				continue
			}
			text, err := csvCell(cell, 0)
			if err != nil {
				return "", err
			}
			cells[i] = text
		}
		lines = append(lines, strings.Join(cells, ","))
	}
	return strings.Join(lines, "\n"), nil
}

// csvCell returns the text of a cell. Arrays join their elements with
// commas; objects are written as compact JSON.
func csvCell(v Value, depth int) (string, error) {
	if depth > MaxDepth {
		return "", fmt.Errorf("%w: csv cell nesting deeper than %d", ErrDepthExceeded, MaxDepth)
	}
	switch v.kind {
	case KindNull, KindBool, KindNumber, KindString:
		return v.Text(), nil
	case KindArray:
		parts := make([]string, len(v.items))
		for i, item := range v.items {
			text, err := csvCell(item, depth+1)
			if err != nil {
				return "", err
			}
			parts[i] = text
		}
		return strings.Join(parts, ","), nil
	case KindObject:
		b, err := v.MarshalJSON()
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return "", fmt.Errorf("csv: unhandled value kind %s", v.kind)
	}
}
