package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avinash/preptrack/internal/leaderboard"
	"github.com/avinash/preptrack/internal/taxonomy"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show a ranked leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		board, _ := cmd.Flags().GetString("board")
		category, _ := cmd.Flags().GetString("category")
		page, _ := cmd.Flags().GetInt("page")
		limit, _ := cmd.Flags().GetInt("limit")
		user, _ := cmd.Flags().GetString("user")

		if limit == 0 && cfg != nil {
			limit = cfg.Leaderboard.PageSize
		}

		st, svc, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		q := leaderboard.Query{
			Board:    leaderboard.Board(board),
			Category: taxonomy.Skill(category),
			Page:     page,
			Limit:    limit,
		}
		view, err := svc.GetLeaderboard(cmd.Context(), q, user)
		if err != nil {
			return err
		}

		fmt.Printf("%-5s  %-24s  %s\n", "Rank", "User", "Score")
		fmt.Println(strings.Repeat("─", 42))
		for _, e := range view.Entries {
			fmt.Printf("%-5d  %-24s  %.1f\n", e.Rank, e.UserID, e.Score)
		}
		fmt.Printf("\n%d user(s) ranked\n", view.Total)

		if user != "" {
			if view.CurrentUserRank > 0 {
				fmt.Printf("%s: rank %d (top %.1f%%)\n",
					user, view.CurrentUserRank, 100-view.Percentile)
			} else {
				fmt.Printf("%s is not ranked on this board\n", user)
			}
		}
		return nil
	},
}

func init() {
	leaderboardCmd.Flags().String("board", "overall", "Board: overall, weekly, monthly or category")
	leaderboardCmd.Flags().String("category", "", "Skill category (required for the category board)")
	leaderboardCmd.Flags().Int("page", 1, "Page number")
	leaderboardCmd.Flags().Int("limit", 0, "Page size (config default when omitted)")
}
