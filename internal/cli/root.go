// Package cli implements the inksight command set.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"InkSight/internal/app"
	"InkSight/internal/config"
	"InkSight/internal/domain"
	"InkSight/internal/logging"
)

var useMemoryStore bool

var rootCmd = &cobra.Command{
	Use:   "inksight",
	Short: "inksight — content intelligence for blog posts",
	Long: `inksight derives structural and quality metadata for blog articles:
reading time, readability, heading outlines, SEO metadata, title
alternatives, and performance insights.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&useMemoryStore, "memory", false,
		"use the in-memory store instead of Postgres")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildApp() (*app.Application, error) {
	cfg := config.Load()
	logger := logging.New(cfg.Logging)
	return app.New(cfg, logger, app.Options{InMemory: useMemoryStore})
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// generationError pairs the user-facing message with the underlying cause.
func generationError(err error) error {
	return fmt.Errorf("%s (%v)", domain.UserMessage(err), err)
}

func readContentArg(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read content file: %w", err)
	}
	return string(raw), nil
}
