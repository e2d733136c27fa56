package valfmt

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Alignment controls cell text alignment in [RenderTable].
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

var alignmentNames = map[string]Alignment{
	"left":   AlignLeft,
	"center": AlignCenter,
	"right":  AlignRight,
}

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// ParseAlignment returns the alignment named s. Unknown names yield
// [AlignLeft].
func ParseAlignment(s string) Alignment {
	if a, ok := alignmentNames[s]; ok {
		return a
	}
	return AlignLeft
}

// TableStyle selects the border glyphs of a table.
type TableStyle int

const (
	StyleDefault TableStyle = iota // ┌─┐└┘│┬┴├┤┼
	StyleBox                       // +-|
	StyleRounded                   // ╭─╮╰╯│┬┴├┤┼
	StyleDouble                    // ╔═╗╚╝║╦╩╠╣╬
	StyleMinimal                   // no borders, regardless of TableOptions.Border
	StyleColored                   // default glyphs with a colored header
)

var styleNames = map[string]TableStyle{
	"default": StyleDefault,
	"box":     StyleBox,
	"rounded": StyleRounded,
	"double":  StyleDouble,
	"minimal": StyleMinimal,
	"colored": StyleColored,
}

// String returns the style name.
func (s TableStyle) String() string {
	switch s {
	case StyleBox:
		return "box"
	case StyleRounded:
		return "rounded"
	case StyleDouble:
		return "double"
	case StyleMinimal:
		return "minimal"
	case StyleColored:
		return "colored"
	default:
		return "default"
	}
}

// ParseTableStyle returns the style named s. Unknown names yield
// [StyleDefault].
func ParseTableStyle(s string) TableStyle {
	if style, ok := styleNames[s]; ok {
		return style
	}
	return StyleDefault
}

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[TableStyle]borderChars{
	StyleDefault: {
		topLeft: "┌", topRight: "┐", bottomLeft: "└", bottomRight: "┘",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	StyleBox: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	StyleRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	StyleDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

func glyphsFor(style TableStyle) borderChars {
	if bc, ok := borderSets[style]; ok {
		return bc
	}
	return borderSets[StyleDefault]
}

const (
	headerColor = "\x1b[1m\x1b[36m"
	colorReset  = "\x1b[0m"
)

// TableOptions configures [RenderTable].
type TableOptions struct {
	Border          bool
	HeaderSeparator bool // separate the first row from the rest
	Align           Alignment
	Padding         int // spaces on each side of a cell; negative means 0
	Style           TableStyle
	Colors          bool // bold cyan header row
}

// DefaultTableOptions returns a bordered, left-aligned table with a header
// separator and one space of padding.
func DefaultTableOptions() TableOptions {
	return TableOptions{
		Border:          true,
		HeaderSeparator: true,
		Align:           AlignLeft,
		Padding:         1,
		Style:           StyleDefault,
	}
}

// RenderTable parses comma-separated text and draws it as a fixed-width text
// table. The first non-blank line is the header. Lines are split on every
// comma; quoting is not recognized. Every output line ends with a newline.
// Text with no non-blank lines renders as "".
func RenderTable(csvText string, opts TableOptions) string {
	rows := parseTableRows(csvText)
	if len(rows) == 0 {
		return ""
	}

	pad := strings.Repeat(" ", max(opts.Padding, 0))
	colored := opts.Colors || opts.Style == StyleColored
	widths := computeWidths(rows)

	spans := make([]int, len(widths))
	for i, w := range widths {
		spans[i] = w + 2*len(pad)
	}

	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = make([]string, len(widths))
		for j, width := range widths {
			cell := ""
			if j < len(row) {
				cell = row[j]
			}
			formatted := pad + alignCell(cell, width, opts.Align) + pad
			if colored && i == 0 {
				formatted = headerColor + formatted + colorReset
			}
			cells[i][j] = formatted
		}
	}

	var sb strings.Builder
	if opts.Border && opts.Style != StyleMinimal {
		renderBorderedTable(&sb, cells, spans, glyphsFor(opts.Style), opts.HeaderSeparator)
	} else {
		renderPlainTable(&sb, cells, spans, opts.HeaderSeparator)
	}
	return sb.String()
}

func parseTableRows(text string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, strings.Split(line, ","))
	}
	return rows
}

// computeWidths sizes every column of the header row to its widest cell.
// Cells past the header's column count are ignored.
func computeWidths(rows [][]string) []int {
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// --- Plain table (no border) ---

func renderPlainTable(sb *strings.Builder, cells [][]string, spans []int, headerSep bool) {
	for i, row := range cells {
		sb.WriteString(strings.Join(row, " | "))
		sb.WriteString("\n")
		if headerSep && i == 0 && len(cells) > 1 {
			dashes := make([]string, len(spans))
			for j, span := range spans {
				dashes[j] = strings.Repeat("-", span)
			}
			sb.WriteString(strings.Join(dashes, "-+-"))
			sb.WriteString("\n")
		}
	}
}

// --- Bordered table ---

func renderBorderedTable(sb *strings.Builder, cells [][]string, spans []int, bc borderChars, headerSep bool) {
	drawHLine(sb, spans, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight)
	for i, row := range cells {
		sb.WriteString(bc.vertical)
		sb.WriteString(strings.Join(row, bc.vertical))
		sb.WriteString(bc.vertical)
		sb.WriteString("\n")
		if headerSep && i == 0 && len(cells) > 1 {
			drawHLine(sb, spans, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee)
		}
	}
	drawHLine(sb, spans, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

func drawHLine(sb *strings.Builder, spans []int, left, fill, mid, right string) {
	sb.WriteString(left)
	for i, span := range spans {
		sb.WriteString(strings.Repeat(fill, span))
		if i < len(spans)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	sb.WriteString("\n")
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
