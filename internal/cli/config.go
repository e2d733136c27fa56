package cli

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/bjaus/valfmt"
)

// Config is the on-disk TOML configuration. Every field is optional; unset
// fields keep the library defaults.
//
//	[yaml]
//	indent = 4
//	quote = "always"
//	sort_keys = true
//
//	[xml]
//	indent = 1
//
//	[table]
//	style = "rounded"
//	align = "right"
//	padding = 2
//	border = true
//	header_separator = false
//	colors = true
type Config struct {
	YAML  YAMLConfig  `toml:"yaml"`
	XML   XMLConfig   `toml:"xml"`
	Table TableConfig `toml:"table"`
}

// YAMLConfig holds the [yaml] section.
type YAMLConfig struct {
	Indent   *int    `toml:"indent"`
	Quote    *string `toml:"quote"`
	SortKeys *bool   `toml:"sort_keys"`
}

// XMLConfig holds the [xml] section.
type XMLConfig struct {
	Indent *int `toml:"indent"`
}

// TableConfig holds the [table] section.
type TableConfig struct {
	Border          *bool   `toml:"border"`
	HeaderSeparator *bool   `toml:"header_separator"`
	Align           *string `toml:"align"`
	Padding         *int    `toml:"padding"`
	Style           *string `toml:"style"`
	Colors          *bool   `toml:"colors"`
}

// loadConfig decodes the TOML file at path. Keys the file sets but Config
// does not know are logged as warnings.
func loadConfig(path string, logger *log.Logger) (Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		logger.Warn("ignoring unknown config keys", "path", path, "keys", strings.Join(keys, ","))
	}
	logger.Debug("loaded config", "path", path)
	return cfg, nil
}

// apply overlays the fields set in c onto opts.
func (c Config) apply(opts *valfmt.Options) {
	if c.YAML.Indent != nil {
		opts.YAML.Indent = *c.YAML.Indent
	}
	if c.YAML.Quote != nil {
		opts.YAML.Quote = valfmt.ParseQuoteMode(*c.YAML.Quote)
	}
	if c.YAML.SortKeys != nil {
		opts.YAML.SortKeys = *c.YAML.SortKeys
	}
	if c.XML.Indent != nil {
		opts.XMLIndent = *c.XML.Indent
	}
	if c.Table.Border != nil {
		opts.Table.Border = *c.Table.Border
	}
	if c.Table.HeaderSeparator != nil {
		opts.Table.HeaderSeparator = *c.Table.HeaderSeparator
	}
	if c.Table.Align != nil {
		opts.Table.Align = valfmt.ParseAlignment(*c.Table.Align)
	}
	if c.Table.Padding != nil {
		opts.Table.Padding = *c.Table.Padding
	}
	if c.Table.Style != nil {
		opts.Table.Style = valfmt.ParseTableStyle(*c.Table.Style)
	}
	if c.Table.Colors != nil {
		opts.Table.Colors = *c.Table.Colors
	}
}
