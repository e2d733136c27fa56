// Package cli implements the valfmt command-line interface.
//
// The CLI reads JSON (or, for the table command, CSV text) from a file or
// stdin and prints it in another format. Encoder defaults can be set in a
// TOML file passed with --config; flags override the file.
//
// # Commands
//
//   - convert: JSON to json, yaml, xml, csv or table
//   - table: CSV text to a bordered table
//   - formats: list the output formats
//
// All commands support --verbose (-v) for debug-level logging on stderr.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bjaus/valfmt"
)

var version = "dev" // set via -ldflags "-X github.com/bjaus/valfmt/internal/cli.version=..."

// rootOpts holds the persistent flags.
type rootOpts struct {
	verbose    bool
	configPath string
}

// Execute runs the valfmt CLI with ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOpts{}
	root := &cobra.Command{
		Use:           "valfmt",
		Short:         "Convert JSON to YAML, XML, CSV and text tables",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "TOML file with encoder defaults")

	root.AddCommand(newConvertCmd(opts))
	root.AddCommand(newTableCmd(opts))
	root.AddCommand(newFormatsCmd())
	return root
}

func newConvertCmd(root *rootOpts) *cobra.Command {
	var (
		flags   encodeFlags
		format  string
		flatten bool
	)
	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert a JSON document to another format",
		Long: `Convert reads a JSON document from file, or stdin when file is omitted or
"-", and writes it in the format chosen with --format.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			f, err := valfmt.ParseFormat(format)
			if err != nil {
				return err
			}
			opts, err := resolveOptions(cmd, root, &flags)
			if err != nil {
				return err
			}
			data, source, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			logger.Debug("read input", "source", source, "bytes", len(data))

			v, err := valfmt.ParseJSON(data)
			if err != nil {
				return fmt.Errorf("%s: %w", source, err)
			}
			if flatten {
				v = flattenRows(v)
			}
			if !f.Supports(v) {
				logger.Warn("input shape does not fit format", "format", f, "kind", v.Kind())
			}
			logger.Debug("encoding", "format", f, "kind", v.Kind(), "flatten", flatten)
			return valfmt.Write(cmd.OutOrStdout(), f, v, opts)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(valfmt.YAML), "output format: json, yaml, xml, csv, table")
	cmd.Flags().BoolVar(&flatten, "flatten", false, "flatten nested rows into path-named columns before csv/table output")
	flags.registerYAML(cmd)
	flags.registerTable(cmd)
	return cmd
}

func newTableCmd(root *rootOpts) *cobra.Command {
	var flags encodeFlags
	cmd := &cobra.Command{
		Use:   "table [file]",
		Short: "Render CSV text as a table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			opts, err := resolveOptions(cmd, root, &flags)
			if err != nil {
				return err
			}
			data, source, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			out := valfmt.RenderTable(string(data), opts.Table)
			if out == "" {
				logger.Warn("no rows to render", "source", source)
				return nil
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}
	flags.registerTable(cmd)
	return cmd
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the supported output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range valfmt.Formats() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), f); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// resolveOptions layers library defaults, the config file and explicit flags.
func resolveOptions(cmd *cobra.Command, root *rootOpts, flags *encodeFlags) (valfmt.Options, error) {
	opts := valfmt.DefaultOptions()
	if root.configPath != "" {
		cfg, err := loadConfig(root.configPath, loggerFromContext(cmd.Context()))
		if err != nil {
			return valfmt.Options{}, err
		}
		cfg.apply(&opts)
	}
	flags.apply(cmd, &opts)
	return opts, nil
}

// readInput reads the file named by args[0], or stdin when it is absent or
// "-". It also returns a name for the source to use in messages.
func readInput(cmd *cobra.Command, args []string) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return data, "stdin", nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("read input: %w", err)
	}
	return data, args[0], nil
}

// flattenRows flattens each element of an array, or v itself.
func flattenRows(v valfmt.Value) valfmt.Value {
	if v.Kind() != valfmt.KindArray {
		return valfmt.Flatten(v, "")
	}
	items := v.Items()
	for i, item := range items {
		items[i] = valfmt.Flatten(item, "")
	}
	return valfmt.Array(items...)
}
