package cli

import (
	"github.com/spf13/cobra"

	"InkSight/internal/domain"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh <post-id>",
	Short: "Recompute readability metrics and outline for a stored post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := buildApp()
		if err != nil {
			return err
		}
		defer application.Close()

		metrics, toc, err := application.Pipeline.RefreshPostIntelligence(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		return printJSON(struct {
			Metrics domain.ReadabilityMetrics `json:"metrics"`
			Outline []domain.OutlineEntry     `json:"outline"`
		}{Metrics: metrics, Outline: toc})
	},
}

var optimizeCmd = &cobra.Command{
	Use:   "optimize <post-id>",
	Short: "Generate and persist SEO metadata and title alternatives for a stored post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := buildApp()
		if err != nil {
			return err
		}
		defer application.Close()

		meta, titles, err := application.Pipeline.OptimizePost(cmd.Context(), args[0])
		if err != nil {
			return generationError(err)
		}

		return printJSON(struct {
			Seo    domain.SeoMetadata `json:"seo"`
			Titles []string           `json:"titles"`
		}{Seo: meta, Titles: titles})
	},
}

var postInsightsCmd = &cobra.Command{
	Use:   "post-insights <post-id>",
	Short: "Generate performance insights for a stored post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := buildApp()
		if err != nil {
			return err
		}
		defer application.Close()

		insights, err := application.Pipeline.PostInsights(cmd.Context(), args[0])
		if err != nil {
			return generationError(err)
		}

		return printJSON(insights)
	},
}

var recordCmd = &cobra.Command{
	Use:   "record <post-id>",
	Short: "Show the persisted intelligence record for a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := buildApp()
		if err != nil {
			return err
		}
		defer application.Close()

		record, err := application.Seo.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if record == nil {
			cmd.Printf("no intelligence record for post %s\n", args[0])
			return nil
		}
		return printJSON(record)
	},
}

func init() {
	rootCmd.AddCommand(refreshCmd, optimizeCmd, postInsightsCmd, recordCmd)
}
