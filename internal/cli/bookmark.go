package cli

import (
	"github.com/spf13/cobra"
)

var bookmarkLimit int

var bookmarkCmd = &cobra.Command{
	Use:   "bookmark",
	Short: "Manage saved posts",
}

var bookmarkToggleCmd = &cobra.Command{
	Use:   "toggle <user-id> <post-id>",
	Short: "Save a post for a user, or remove it if already saved",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := buildApp()
		if err != nil {
			return err
		}
		defer application.Close()

		bookmarked, err := application.Bookmarks.Toggle(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		return printJSON(struct {
			Bookmarked bool `json:"bookmarked"`
		}{Bookmarked: bookmarked})
	},
}

var bookmarkListCmd = &cobra.Command{
	Use:   "list <user-id>",
	Short: "List a user's saved posts, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := buildApp()
		if err != nil {
			return err
		}
		defer application.Close()

		page, err := application.Bookmarks.ListForUser(cmd.Context(), args[0], bookmarkLimit)
		if err != nil {
			return err
		}

		type item struct {
			PostID string `json:"postId"`
			Title  string `json:"title"`
		}
		out := struct {
			Bookmarks []item `json:"bookmarks"`
			HasMore   bool   `json:"hasMore"`
		}{Bookmarks: make([]item, 0, len(page.Entries)), HasMore: page.HasMore}
		for _, entry := range page.Entries {
			out.Bookmarks = append(out.Bookmarks, item{PostID: entry.Post.ID, Title: entry.Post.Title})
		}
		return printJSON(out)
	},
}

var bookmarkCountCmd = &cobra.Command{
	Use:   "count <post-id>",
	Short: "Count how many users saved a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := buildApp()
		if err != nil {
			return err
		}
		defer application.Close()

		count, err := application.Bookmarks.CountForPost(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		return printJSON(struct {
			Count int `json:"count"`
		}{Count: count})
	},
}

func init() {
	bookmarkListCmd.Flags().IntVar(&bookmarkLimit, "limit", 20, "page size")
	bookmarkCmd.AddCommand(bookmarkToggleCmd, bookmarkListCmd, bookmarkCountCmd)
	rootCmd.AddCommand(bookmarkCmd)
}
