package cli

import (
	"github.com/spf13/cobra"

	"InkSight/internal/domain"
	"InkSight/internal/outline"
	"InkSight/internal/readability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <html-file>",
	Short: "Compute readability metrics and the heading outline for an HTML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		html, err := readContentArg(args[0])
		if err != nil {
			return err
		}

		metrics, err := readability.Analyze(html)
		if err != nil {
			return err
		}

		return printJSON(struct {
			Metrics domain.ReadabilityMetrics `json:"metrics"`
			Outline []domain.OutlineEntry     `json:"outline"`
		}{
			Metrics: metrics,
			Outline: outline.Extract(html),
		})
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
