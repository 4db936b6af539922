package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-bmecat/internal/prompt"
	"github.com/goliatone/go-bmecat/pkg/builder"
	bmeerrors "github.com/goliatone/go-bmecat/pkg/errors"
	"github.com/goliatone/go-bmecat/pkg/schema"
	"github.com/goliatone/go-bmecat/pkg/validation"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "bmecat-cli",
		Short: "Build and validate BMEcat catalog documents",
		Long: `bmecat-cli renders catalog documents from YAML or JSON configuration
and checks them against the bundled format schemas.

Example:
  bmecat-cli build --config catalog.yaml --validate
  bmecat-cli validate --format-version 2005.1 catalog.xml`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug events to stderr")

	logger := func() *zap.Logger {
		build := zap.NewProduction
		if verbose {
			build = zap.NewDevelopment
		}
		l, err := build()
		if err != nil {
			return zap.NewNop()
		}
		return l
	}

	rootCmd.AddCommand(buildCmd(logger))
	rootCmd.AddCommand(validateCmd(logger))
	rootCmd.AddCommand(initCmd(nil))
	rootCmd.AddCommand(versionsCmd())
	return rootCmd
}

func buildCmd(logger func() *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render a catalog document from configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			output, _ := cmd.Flags().GetString("output")
			formatVersion, _ := cmd.Flags().GetString("format-version")
			serializeNull, _ := cmd.Flags().GetBool("null")
			strict, _ := cmd.Flags().GetBool("strict")
			sanitize, _ := cmd.Flags().GetBool("sanitize")
			check, _ := cmd.Flags().GetBool("validate")

			if configPath == "" {
				return fmt.Errorf("--config flag is required")
			}
			log := logger()
			defer func() { _ = log.Sync() }()

			f, err := os.Open(configPath)
			if err != nil {
				return fmt.Errorf("open config: %w", err)
			}
			defer f.Close()

			b := builder.New(
				builder.WithLogger(log),
				builder.WithVersion(formatVersion),
				builder.WithSerializeNull(serializeNull),
				builder.WithStrictKeys(strict),
				builder.WithSanitizedDescriptions(sanitize),
			)
			if err := b.LoadYAML(f); err != nil {
				return err
			}
			// An explicit flag wins over document.format_version.
			if cmd.Flags().Changed("format-version") {
				b.SetVersion(formatVersion)
			}
			out, err := b.Serialize()
			if err != nil {
				return err
			}

			if check {
				v := validation.New(validation.WithLogger(log))
				if err := v.Validate(out, b.Version()); err != nil {
					printViolations(cmd.ErrOrStderr(), err)
					return fmt.Errorf("rendered document failed validation")
				}
			}

			if output == "" {
				_, err = io.WriteString(cmd.OutOrStdout(), out)
				return err
			}
			if err := os.WriteFile(output, []byte(out), 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Catalog written to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringP("config", "c", "", "YAML or JSON configuration file")
	cmd.Flags().StringP("output", "o", "", "output file (stdout if empty)")
	cmd.Flags().String("format-version", schema.DefaultVersion, "format version to write (overrides document.format_version)")
	cmd.Flags().Bool("null", false, "write unset fields as empty elements")
	cmd.Flags().Bool("strict", false, "reject unknown configuration keys")
	cmd.Flags().Bool("sanitize", false, "strip unsupported markup from long descriptions")
	cmd.Flags().Bool("validate", false, "validate the rendered document before writing it")
	return cmd
}

func validateCmd(logger func() *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file.xml>",
		Short: "Validate a catalog document against a format schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatVersion, _ := cmd.Flags().GetString("format-version")
			log := logger()
			defer func() { _ = log.Sync() }()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read document: %w", err)
			}
			v := validation.New(validation.WithLogger(log))
			if err := v.Validate(string(data), formatVersion); err != nil {
				if _, ok := bmeerrors.AsValidation(err); !ok {
					return err
				}
				printViolations(cmd.ErrOrStderr(), err)
				return fmt.Errorf("%s is not valid against schema %s", args[0], formatVersion)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid against schema %s\n", args[0], formatVersion)
			return nil
		},
	}
	cmd.Flags().String("format-version", schema.DefaultVersion, "format version to validate against")
	return cmd
}

// initCmd writes a starter configuration from interactive answers. A nil
// driver means the survey terminal driver.
func initCmd(driver prompt.Driver) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter configuration interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")

			d := driver
			if d == nil {
				d = prompt.NewSurveyDriver(cmd.ErrOrStderr())
			}
			answers, err := prompt.Questionnaire{
				Driver:   d,
				Versions: schema.Default().List(),
			}.Run(contextOf(cmd))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer f.Close()
				w = f
			}
			enc := yaml.NewEncoder(w)
			enc.SetIndent(2)
			if err := enc.Encode(answers.Config); err != nil {
				return fmt.Errorf("encode configuration: %w", err)
			}
			if err := enc.Close(); err != nil {
				return fmt.Errorf("encode configuration: %w", err)
			}
			if output != "" {
				return d.Info(contextOf(cmd), fmt.Sprintf("Configuration written to %s (format version %s)", output, answers.Version))
			}
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "output file (stdout if empty)")
	return cmd
}

func versionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "versions",
		Short: "List the bundled format versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, v := range schema.Default().List() {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}
}

func printViolations(w io.Writer, err error) {
	verr, ok := bmeerrors.AsValidation(err)
	if !ok {
		fmt.Fprintln(w, err)
		return
	}
	for _, msg := range verr.Messages() {
		fmt.Fprintf(w, "  - %s\n", msg)
	}
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
