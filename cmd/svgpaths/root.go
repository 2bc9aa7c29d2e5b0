package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dgallion1/svgpaths"
	"github.com/dgallion1/svgpaths/internal/config"
	"github.com/dgallion1/svgpaths/internal/source"
)

var rootCmd = &cobra.Command{
	Use:   "svgpaths",
	Short: "Convert SVG shapes to path data",
	Long: "svgpaths rewrites rect, circle, ellipse, line, polyline and polygon elements as <path> data.\n" +
		"Input may be an .svg file, a Markdown file with ```svg blocks, an HTML page with inline <svg>, or - for stdin.",
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("output", "o", "", "Write output to a file instead of stdout")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Int("max-line-bytes", 0, "Longest accepted input line (default 1MiB)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("max_line_bytes", rootCmd.PersistentFlags().Lookup("max-line-bytes"))
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	viper.SetEnvPrefix(config.EnvPrefix)
	viper.AutomaticEnv()
}

// runEnv holds what every subcommand needs, resolved from flags and env.
type runEnv struct {
	cfg  config.Config
	log  *slog.Logger
	opts svgpaths.Options
}

func newRunEnv(cmd *cobra.Command) *runEnv {
	cfg := config.FromViper(viper.GetViper())
	level, err := cfg.Level()
	if err != nil {
		level = slog.LevelInfo
	}
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return &runEnv{
		cfg:  cfg,
		log:  log,
		opts: svgpaths.Options{MaxLineBytes: cfg.MaxLineBytes},
	}
}

// loadDocuments reads the SVG documents held in path, or stdin for "-".
func loadDocuments(cmd *cobra.Command, path string) ([]source.Document, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		text, err := source.DecodeText(data, "")
		if err != nil {
			return nil, err
		}
		return []source.Document{{Name: "stdin", Text: text}}, nil
	}

	ex, err := source.ForFile(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	defer f.Close()

	docs, err := ex.Extract(f, path)
	if err != nil {
		return nil, fmt.Errorf("extracting svg from %s: %w", path, err)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("no svg content found in %s", path)
	}
	return docs, nil
}

// writeOutput sends out to the --output file, or the command's stdout.
func writeOutput(cmd *cobra.Command, out []byte) error {
	if path := viper.GetString("output"); path != "" {
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}
	_, err := cmd.OutOrStdout().Write(out)
	return err
}
