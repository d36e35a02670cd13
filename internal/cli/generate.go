package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"InkSight/internal/domain"
	"InkSight/internal/prompt"
)

var (
	draftTitle    string
	draftCategory string
	draftTags     []string

	improveMode string

	seoTitle      string
	titlesTitle   string
	insightsTitle string
	insightsViews int
	insightsLikes int
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Generate HTML body content for a new post",
	RunE: func(cmd *cobra.Command, _ []string) error {
		application, err := buildApp()
		if err != nil {
			return err
		}
		defer application.Close()

		content, err := application.Assistant.GenerateDraft(cmd.Context(), draftTitle, draftCategory, draftTags)
		if err != nil {
			return generationError(err)
		}

		fmt.Println(content)
		return nil
	},
}

var improveCmd = &cobra.Command{
	Use:   "improve <html-file>",
	Short: "Revise existing post content (modes: expand, simplify, enhance)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := readContentArg(args[0])
		if err != nil {
			return err
		}

		application, err := buildApp()
		if err != nil {
			return err
		}
		defer application.Close()

		improved, err := application.Assistant.ImproveDraft(cmd.Context(), content, improveMode)
		if err != nil {
			return generationError(err)
		}

		fmt.Println(improved)
		return nil
	},
}

var seoCmd = &cobra.Command{
	Use:   "seo <html-file>",
	Short: "Generate SEO metadata for a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := readContentArg(args[0])
		if err != nil {
			return err
		}

		application, err := buildApp()
		if err != nil {
			return err
		}
		defer application.Close()

		meta, err := application.Assistant.GenerateSeoMetadata(cmd.Context(), seoTitle, content)
		if err != nil {
			return generationError(err)
		}

		return printJSON(meta)
	},
}

var titlesCmd = &cobra.Command{
	Use:   "titles [html-file]",
	Short: "Generate alternative titles for a post",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content := ""
		if len(args) == 1 {
			var err error
			if content, err = readContentArg(args[0]); err != nil {
				return err
			}
		}

		application, err := buildApp()
		if err != nil {
			return err
		}
		defer application.Close()

		titles, err := application.Assistant.GenerateTitleVariants(cmd.Context(), titlesTitle, content)
		if err != nil {
			return generationError(err)
		}

		return printJSON(titles)
	},
}

var insightsCmd = &cobra.Command{
	Use:   "insights <html-file>",
	Short: "Generate performance insights for a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := readContentArg(args[0])
		if err != nil {
			return err
		}

		application, err := buildApp()
		if err != nil {
			return err
		}
		defer application.Close()

		var metrics *domain.EngagementMetrics
		if insightsViews > 0 || insightsLikes > 0 {
			metrics = &domain.EngagementMetrics{Views: insightsViews, Likes: insightsLikes}
		}

		insights, err := application.Assistant.GenerateContentInsights(cmd.Context(), insightsTitle, content, metrics)
		if err != nil {
			return generationError(err)
		}

		return printJSON(insights)
	},
}

func init() {
	draftCmd.Flags().StringVar(&draftTitle, "title", "", "post title (required)")
	draftCmd.Flags().StringVar(&draftCategory, "category", "", "post category")
	draftCmd.Flags().StringSliceVar(&draftTags, "tags", nil, "post tags")

	improveCmd.Flags().StringVar(&improveMode, "mode", prompt.ModeEnhance,
		"improvement mode: expand, simplify or enhance")

	seoCmd.Flags().StringVar(&seoTitle, "title", "", "post title (required)")
	titlesCmd.Flags().StringVar(&titlesTitle, "title", "", "current post title (required)")
	insightsCmd.Flags().StringVar(&insightsTitle, "title", "", "post title (required)")
	insightsCmd.Flags().IntVar(&insightsViews, "views", 0, "current view count")
	insightsCmd.Flags().IntVar(&insightsLikes, "likes", 0, "current like count")

	rootCmd.AddCommand(draftCmd, improveCmd, seoCmd, titlesCmd, insightsCmd)
}
