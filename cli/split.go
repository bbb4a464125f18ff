package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/compozy/textchunk/engine/chunker"
	"github.com/compozy/textchunk/pkg/config"
	"github.com/compozy/textchunk/pkg/logger"
)

// chunkDivider separates chunks in plain-text output.
const chunkDivider = "---"

func WordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words [file]",
		Short: "Split text into chunks of N words",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd, args, "words")
		},
	}
	addSplitFlags(cmd)
	cmd.Flags().Int("max-size", 0, "Per-chunk word cap overriding --size")
	return cmd
}

func CharsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chars [file]",
		Short: "Split text into chunks of N characters",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd, args, "chars")
		},
	}
	addSplitFlags(cmd)
	return cmd
}

func LinesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lines [file]",
		Short: "Split text into chunks of N lines",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd, args, "lines")
		},
	}
	cmd.Flags().IntP("size", "n", 0, "Lines per chunk (default from config)")
	cmd.Flags().Bool("keep-empty-lines", false, "Keep blank lines in output")
	cmd.Flags().Bool("json", false, "Output chunks as a JSON array")
	return cmd
}

func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Report word-mode chunking statistics as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runStats,
	}
	addSplitFlags(cmd)
	cmd.Flags().Int("max-size", 0, "Per-chunk word cap overriding --size")
	return cmd
}

func addSplitFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("size", "n", 0, "Target chunk size (default from config)")
	cmd.Flags().String("strategy", "", "Boundary policy: soft or hard")
	cmd.Flags().Int("min-size", -1, "Drop chunks smaller than this")
	cmd.Flags().Bool("collapse-whitespace", false, "Collapse internal whitespace runs to single spaces")
	cmd.Flags().Bool("no-boundaries", false, "Disable sentence-boundary detection")
	cmd.Flags().Bool("json", false, "Output chunks as a JSON array")
}

// loadConfig layers the YAML file, environment, and any explicitly set
// flags on top of the defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var sources []config.Source
	if path, err := cmd.Flags().GetString("config"); err == nil && path != "" {
		sources = append(sources, config.NewYAMLProvider(path))
	}
	if overrides := flagOverrides(cmd.Flags()); len(overrides) > 0 {
		sources = append(sources, config.NewCLIProvider(overrides))
	}
	return config.NewService().Load(cmd.Context(), sources...)
}

func flagOverrides(flags *pflag.FlagSet) map[string]any {
	overrides := make(map[string]any)
	chunk := make(map[string]any)
	if flags.Changed("locale") {
		locale, _ := flags.GetString("locale")
		overrides["locale"] = locale
	}
	if flags.Changed("size") {
		size, _ := flags.GetInt("size")
		chunk["size"] = size
	}
	if flags.Changed("strategy") {
		strategy, _ := flags.GetString("strategy")
		chunk["strategy"] = strategy
	}
	if flags.Changed("min-size") {
		minSize, _ := flags.GetInt("min-size")
		chunk["min_size"] = minSize
	}
	if flags.Changed("max-size") {
		maxSize, _ := flags.GetInt("max-size")
		chunk["max_size"] = maxSize
	}
	if flags.Changed("collapse-whitespace") {
		collapse, _ := flags.GetBool("collapse-whitespace")
		chunk["preserve_whitespace"] = !collapse
	}
	if flags.Changed("no-boundaries") {
		off, _ := flags.GetBool("no-boundaries")
		chunk["sentence_boundaries"] = !off
	}
	if flags.Changed("keep-empty-lines") {
		keep, _ := flags.GetBool("keep-empty-lines")
		chunk["preserve_empty_lines"] = keep
	}
	if len(chunk) > 0 {
		overrides["chunk"] = chunk
	}
	return overrides
}

// readInput reads the file argument, or stdin when no argument is given.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read input file %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func splitOptionsFrom(cfg *config.Config) []chunker.SplitOption {
	opts := []chunker.SplitOption{
		chunker.WithStrategy(chunker.ParseStrategy(cfg.Chunk.Strategy)),
		chunker.WithPreserveWhitespace(cfg.Chunk.PreserveWhitespace),
		chunker.WithMinChunkSize(cfg.Chunk.MinSize),
		chunker.WithSentenceBoundaries(cfg.Chunk.SentenceBoundaries),
		chunker.WithPreserveEmptyLines(cfg.Chunk.PreserveEmptyLines),
	}
	if cfg.Chunk.MaxSize > 0 {
		opts = append(opts, chunker.WithMaxChunkSize(cfg.Chunk.MaxSize))
	}
	return opts
}

func runSplit(cmd *cobra.Command, args []string, mode string) error {
	start := time.Now()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	c := chunker.New(chunker.WithLocale(cfg.Locale))
	opts := splitOptionsFrom(cfg)
	var chunks []string
	switch mode {
	case "words":
		chunks = c.SplitByWords(text, cfg.Chunk.Size, opts...)
	case "chars":
		chunks = c.SplitByCharacters(text, cfg.Chunk.Size, opts...)
	case "lines":
		chunks = c.SplitByLines(text, cfg.Chunk.Size, opts...)
	}
	log := logger.FromContext(cmd.Context())
	log.Debug("split complete",
		"mode", mode,
		"locale", cfg.Locale,
		"size", cfg.Chunk.Size,
		"chunks", len(chunks),
		"duration", time.Since(start),
	)
	return writeChunks(cmd, chunks)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	c := chunker.New(chunker.WithLocale(cfg.Locale))
	stats := c.ChunkingStats(text, cfg.Chunk.Size, splitOptionsFrom(cfg)...)
	out, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func writeChunks(cmd *cobra.Command, chunks []string) error {
	out := cmd.OutOrStdout()
	if shouldUseJSON(cmd) {
		if chunks == nil {
			chunks = []string{}
		}
		data, err := json.MarshalIndent(chunks, "", "  ")
		if err != nil {
			return fmt.Errorf("encode chunks: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}
	for i, chunk := range chunks {
		if i > 0 {
			fmt.Fprintln(out, chunkDivider)
		}
		fmt.Fprintln(out, strings.TrimRight(chunk, "\n"))
	}
	return nil
}
