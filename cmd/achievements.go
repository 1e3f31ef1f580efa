package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show a user's achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := requireUser(cmd)
		if err != nil {
			return err
		}

		st, svc, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		summary, err := svc.GetProgressSummary(cmd.Context(), user)
		if err != nil {
			return err
		}

		if len(summary.Achievements) == 0 {
			fmt.Println("No achievements yet")
			return nil
		}

		fmt.Printf("%-24s  %-10s  %6s  %s\n", "Achievement", "Rarity", "Points", "Status")
		fmt.Println(strings.Repeat("─", 60))
		for _, a := range summary.Achievements {
			status := fmt.Sprintf("%.0f%%", a.Progress)
			if a.EarnedAt != nil {
				status = "earned " + a.EarnedAt.Format("2006-01-02")
			}
			fmt.Printf("%-24s  %-10s  %6d  %s\n",
				a.Name, a.Rarity.DisplayName(), a.Points, status)
		}
		return nil
	},
}

var achievementsEvaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Re-run achievement evaluation for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := requireUser(cmd)
		if err != nil {
			return err
		}

		st, svc, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		awards, err := svc.EvaluateAchievements(cmd.Context(), user)
		if err != nil {
			return err
		}
		if len(awards) == 0 {
			fmt.Println("No new achievements")
			return nil
		}
		for _, a := range awards {
			fmt.Printf("Unlocked: %s [%s] +%d pts\n", a.Name, a.Rarity.DisplayName(), a.Points)
		}
		return nil
	},
}

func init() {
	achievementsCmd.AddCommand(achievementsEvaluateCmd)
}
