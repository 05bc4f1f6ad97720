package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/shapestone/shape-dsv/pkg/dsv"
)

var (
	cfgFile   string
	delimiter string
	quote     string
	newline   string
	output    string
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Tokenize a file (or stdin) and re-render it",
	Long: `Parse reads delimiter-separated input, tokenizes it with the configured
dialect, and writes the rows back out in the output dialect (csv or tsv).

Reads from stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVar(&cfgFile, "config", "", "YAML dialect file")
	parseCmd.Flags().StringVarP(&delimiter, "delimiter", "d", "", "delimiter token (overrides config)")
	parseCmd.Flags().StringVarP(&quote, "quote", "q", "", "quote token (overrides config)")
	parseCmd.Flags().StringVarP(&newline, "newline", "n", "", "line terminator token (overrides config)")
	parseCmd.Flags().StringVarP(&output, "output", "o", "csv", "output dialect: csv or tsv")
}

// dialectConfig is the YAML shape of a --config file. Empty fields fall back
// to the default CSV dialect.
type dialectConfig struct {
	Delimiter string `yaml:"delimiter"`
	Quote     string `yaml:"quote"`
	NewLine   string `yaml:"newline"`
}

func runParse(cmd *cobra.Command, args []string) error {
	opts, err := loadDialect()
	if err != nil {
		printError("loading dialect", err)
		return err
	}

	outOpts, err := outputDialect()
	if err != nil {
		printError("output dialect", err)
		return err
	}

	in, closeIn, err := openInput(args)
	if err != nil {
		printError("opening input", err)
		return err
	}
	defer closeIn()

	scanner := dsv.NewScanner(in, opts)
	for scanner.Scan() {
		line, err := dsv.EncodeRow(scanner.Row(), outOpts)
		if err != nil {
			printError("encoding row", err)
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), line, outOpts.NewLine)
	}
	if err := scanner.Err(); err != nil {
		printError("parsing", err)
		return err
	}
	return nil
}

func loadDialect() (dsv.Options, error) {
	opts := dsv.DefaultOptions()

	if cfgFile != "" {
		content, err := os.ReadFile(cfgFile)
		if err != nil {
			return dsv.Options{}, err
		}
		var cfg dialectConfig
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return dsv.Options{}, fmt.Errorf("parsing %s: %w", cfgFile, err)
		}
		if cfg.Delimiter != "" {
			opts.Delimiter = cfg.Delimiter
		}
		if cfg.Quote != "" {
			opts.Quote = cfg.Quote
		}
		if cfg.NewLine != "" {
			opts.NewLine = cfg.NewLine
		}
	}

	if delimiter != "" {
		opts.Delimiter = delimiter
	}
	if quote != "" {
		opts.Quote = quote
	}
	if newline != "" {
		opts.NewLine = newline
	}

	return opts, opts.Validate()
}

func outputDialect() (dsv.Options, error) {
	switch output {
	case "csv":
		return dsv.DefaultOptions(), nil
	case "tsv":
		opts := dsv.DefaultOptions()
		opts.Delimiter = "\t"
		return opts, nil
	default:
		return dsv.Options{}, fmt.Errorf("unknown output dialect %q", output)
	}
}

func openInput(args []string) (io.Reader, func(), error) {
	if len(args) == 0 {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
