package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jacoelho/xsdgen"
	"github.com/jacoelho/xsdgen/pkg/doctree"
)

// optionsFile is the YAML shape of --options: per-path choice selections,
// repetition overrides, and literal value overrides.
type optionsFile struct {
	Mode          string            `yaml:"mode"`
	MaxDepth      int               `yaml:"maxDepth"`
	DefaultRepeat int               `yaml:"defaultRepeat"`
	MaxRepeat     int               `yaml:"maxRepeat"`
	Choices       map[string]string `yaml:"choices"`
	Repetitions   map[string]int    `yaml:"repetitions"`
	Values        map[string]string `yaml:"values"`
}

func generateCmd() *cobra.Command {
	var (
		schemaPath  string
		rootElement string
		optionsPath string
		mode        string
		outputPath  string
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a sample document from a schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zap.NewNop()
			if verbose {
				var err error
				if logger, err = zap.NewDevelopment(); err != nil {
					return fmt.Errorf("create logger: %w", err)
				}
				defer func() { _ = logger.Sync() }()
			}

			options, err := loadOptions(optionsPath, mode, rootElement)
			if err != nil {
				return err
			}
			options = options.WithLogger(logger)

			schema, err := xsdgen.LoadFile(schemaPath)
			if err != nil {
				return err
			}
			logger.Info("schema loaded",
				zap.String("path", schemaPath),
				zap.Strings("global_elements", schema.GlobalElements()))

			node, diag, err := schema.Generate(options)
			if err != nil {
				return err
			}
			logger.Info("document generated",
				zap.Int("elements", diag.ElementsGenerated),
				zap.Int("cycle_guard_hits", diag.CycleGuardHits),
				zap.Int("depth_guard_hits", diag.DepthGuardHits))

			out := cmd.OutOrStdout()
			if outputPath != "" {
				f, err := os.Create(outputPath)
				if err != nil {
					return fmt.Errorf("create output %s: %w", outputPath, err)
				}
				defer func() { _ = f.Close() }()
				out = f
			}
			return doctree.RenderXML(out, node)
		},
	}

	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "path to the XSD schema file")
	cmd.Flags().StringVarP(&rootElement, "root", "r", "", "root element name (required for schemas with several globals)")
	cmd.Flags().StringVarP(&optionsPath, "options", "c", "", "path to a YAML generation options file")
	cmd.Flags().StringVarP(&mode, "mode", "m", "", "generation mode: minimal, complete, or custom")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log generation diagnostics")
	_ = cmd.MarkFlagRequired("schema")

	return cmd
}

// loadOptions builds generation options from the YAML file (when given)
// with command line mode and root overriding the file.
func loadOptions(path, mode, rootElement string) (xsdgen.GenerateOptions, error) {
	options := xsdgen.NewGenerateOptions()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return options, fmt.Errorf("open options %s: %w", path, err)
		}
		defer func() { _ = f.Close() }()

		var file optionsFile
		dec := yaml.NewDecoder(f, yaml.Strict())
		if err := dec.Decode(&file); err != nil {
			return options, fmt.Errorf("parse options %s: %w", path, err)
		}
		if mode == "" {
			mode = file.Mode
		}
		options = options.
			WithMaxDepth(file.MaxDepth).
			WithDefaultRepeat(file.DefaultRepeat).
			WithMaxRepeat(file.MaxRepeat)
		for p, alternative := range file.Choices {
			options = options.WithChoice(p, alternative)
		}
		for p, count := range file.Repetitions {
			options = options.WithRepetition(p, count)
		}
		for p, value := range file.Values {
			options = options.WithValue(p, value)
		}
	}

	parsed, err := parseMode(mode)
	if err != nil {
		return options, err
	}
	return options.WithMode(parsed).WithRootElement(rootElement), nil
}

func parseMode(mode string) (xsdgen.Mode, error) {
	switch mode {
	case "", "complete":
		return xsdgen.ModeComplete, nil
	case "minimal":
		return xsdgen.ModeMinimal, nil
	case "custom":
		return xsdgen.ModeCustom, nil
	default:
		return xsdgen.ModeComplete, fmt.Errorf("unknown mode %q", mode)
	}
}
