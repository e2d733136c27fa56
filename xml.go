package valfmt

import (
	"fmt"
	"strings"
)

// EncodeXML renders the members of an object as nested XML elements, one
// element per key, indented two spaces per level starting at indentLevel.
// Array elements are wrapped in <item> elements.
//
// Keys and text are written verbatim: characters such as '<' and '&' are
// not escaped, so the output is only well-formed for plain keys and values.
func EncodeXML(v Value, indentLevel int) (string, error) {
	if v.kind != KindObject {
		return "", fmt.Errorf("%w: xml root must be an object, got %s", ErrInvalidRoot, v.kind)
	}
	if indentLevel < 0 {
		indentLevel = 0
	}
	var sb strings.Builder
	if err := writeXMLFields(&sb, v, indentLevel, 0); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func writeXMLFields(sb *strings.Builder, obj Value, level, depth int) error {
	if depth > MaxDepth {
		return fmt.Errorf("%w: xml nesting deeper than %d", ErrDepthExceeded, MaxDepth)
	}
	pad := strings.Repeat("  ", level)
	for _, m := range obj.members {
		switch m.Value.kind {
		case KindNull, KindBool, KindNumber, KindString:
			fmt.Fprintf(sb, "%s<%s>%s</%s>\n", pad, m.Key, m.Value.Text(), m.Key)
		case KindArray:
			fmt.Fprintf(sb, "%s<%s>\n", pad, m.Key)
			if err := writeXMLItems(sb, m.Value, level, depth+1); err != nil {
				return err
			}
			fmt.Fprintf(sb, "%s</%s>\n", pad, m.Key)
		case KindObject:
			fmt.Fprintf(sb, "%s<%s>\n", pad, m.Key)
			if err := writeXMLFields(sb, m.Value, level+1, depth+1); err != nil {
				return err
			}
			fmt.Fprintf(sb, "%s</%s>\n", pad, m.Key)
		default:
			return fmt.Errorf("xml: unhandled value kind %s", m.Value.kind)
		}
	}
	return nil
}

// writeXMLItems emits one <item> per array element, one level below level.
// Element content sits two levels below level.
func writeXMLItems(sb *strings.Builder, arr Value, level, depth int) error {
	if depth > MaxDepth {
		return fmt.Errorf("%w: xml nesting deeper than %d", ErrDepthExceeded, MaxDepth)
	}
	pad := strings.Repeat("  ", level)
	for _, item := range arr.items {
		sb.WriteString(pad + "  <item>\n")
		switch item.kind {
		case KindNull:
		case KindBool, KindNumber, KindString:
			sb.WriteString(pad + "    " + item.Text() + "\n")
		case KindArray:
			if err := writeXMLItems(sb, item, level+1, depth+1); err != nil {
				return err
			}
		case KindObject:
			if err := writeXMLFields(sb, item, level+2, depth+1); err != nil {
				return err
			}
		default:
			return fmt.Errorf("xml: unhandled value kind %s", item.kind)
		}
		sb.WriteString(pad + "  </item>\n")
	}
	return nil
}
