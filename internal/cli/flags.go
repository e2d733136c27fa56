package cli

import (
	"github.com/spf13/cobra"

	"github.com/bjaus/valfmt"
)

// encodeFlags holds the encoder flags shared by convert and table.
type encodeFlags struct {
	indent      int    // YAML spaces per level
	quote       string // YAML quote mode: auto, always, never
	sortKeys    bool   // sort YAML object keys
	xmlIndent   int    // starting XML indent level
	style       string // table style name
	align       string // table cell alignment
	padding     int    // table cell padding
	noBorder    bool   // draw tables without borders
	noHeaderSep bool   // omit the table header separator
	colors      bool   // color the table header
}

func (f *encodeFlags) registerYAML(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.indent, "indent", 2, "YAML spaces per nesting level")
	cmd.Flags().StringVar(&f.quote, "quote", "auto", "YAML string quoting: auto, always, never")
	cmd.Flags().BoolVar(&f.sortKeys, "sort-keys", false, "emit YAML object keys in lexicographic order")
	cmd.Flags().IntVar(&f.xmlIndent, "xml-indent", 0, "starting XML indent level")
}

func (f *encodeFlags) registerTable(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.style, "style", "default", "table style: default, box, rounded, double, minimal, colored")
	cmd.Flags().StringVar(&f.align, "align", "left", "table cell alignment: left, center, right")
	cmd.Flags().IntVar(&f.padding, "padding", 1, "spaces on each side of a table cell")
	cmd.Flags().BoolVar(&f.noBorder, "no-border", false, "draw tables without borders")
	cmd.Flags().BoolVar(&f.noHeaderSep, "no-header-separator", false, "omit the line below the table header")
	cmd.Flags().BoolVar(&f.colors, "colors", false, "color the table header")
}

// apply overlays the flags the user set explicitly onto opts, so config file
// values survive unless overridden.
func (f *encodeFlags) apply(cmd *cobra.Command, opts *valfmt.Options) {
	changed := cmd.Flags().Changed
	if changed("indent") {
		opts.YAML.Indent = f.indent
	}
	if changed("quote") {
		opts.YAML.Quote = valfmt.ParseQuoteMode(f.quote)
	}
	if changed("sort-keys") {
		opts.YAML.SortKeys = f.sortKeys
	}
	if changed("xml-indent") {
		opts.XMLIndent = f.xmlIndent
	}
	if changed("style") {
		opts.Table.Style = valfmt.ParseTableStyle(f.style)
	}
	if changed("align") {
		opts.Table.Align = valfmt.ParseAlignment(f.align)
	}
	if changed("padding") {
		opts.Table.Padding = f.padding
	}
	if changed("no-border") {
		opts.Table.Border = !f.noBorder
	}
	if changed("no-header-separator") {
		opts.Table.HeaderSeparator = !f.noHeaderSep
	}
	if changed("colors") {
		opts.Table.Colors = f.colors
	}
}
