package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avinash/preptrack/internal/career"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a user's progress summary",
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
		rec := summary.Record
		a := rec.Analytics

		fmt.Printf("Progress for %s\n", user)
		fmt.Println(strings.Repeat("─", 40))
		fmt.Printf("Streak:          %d day(s) (best %d)\n", rec.CurrentStreak, rec.LongestStreak)
		fmt.Printf("Total points:    %d\n", rec.TotalPoints)
		fmt.Printf("Problems solved: %d\n", rec.ProblemsSolved)
		fmt.Printf("Tests taken:     %d (%d questions)\n", a.TotalTestsTaken, a.TotalQuestionsAttempted)
		fmt.Printf("Avg accuracy:    %.1f%%\n", a.AverageAccuracy)
		fmt.Printf("Consistency:     %.1f\n", a.ConsistencyScore)
		fmt.Printf("Readiness level: %d/5\n", a.EstimatedReadiness)

		if len(a.WeakAreas) > 0 {
			names := make([]string, len(a.WeakAreas))
			for i, s := range a.WeakAreas {
				names[i] = s.DisplayName()
			}
			fmt.Printf("Weak areas:      %s\n", strings.Join(names, ", "))
		}
		if len(a.StrongAreas) > 0 {
			names := make([]string, len(a.StrongAreas))
			for i, s := range a.StrongAreas {
				names[i] = s.DisplayName()
			}
			fmt.Printf("Strong areas:    %s\n", strings.Join(names, ", "))
		}

		if len(rec.Career) > 0 {
			fmt.Println("\nCareer projection")
			fmt.Println(strings.Repeat("─", 40))
			for _, track := range career.AllTracks() {
				est, ok := rec.Career[track]
				if !ok {
					continue
				}
				fmt.Printf("%-18s  %5.1f%% match, level %d, ~%d month(s)\n",
					track, est.MatchPercentage, est.ReadinessLevel, est.EstimatedMonths)
			}
		}

		if len(summary.RecentTests) > 0 {
			fmt.Println("\nRecent tests")
			fmt.Println(strings.Repeat("─", 40))
			for _, t := range summary.RecentTests {
				fmt.Printf("%s  %-24s  %s  %d/%d (%.1f%%)\n",
					t.Timestamp.Format("2006-01-02"), t.Result.TestName,
					t.Result.Category, t.Result.Score, t.Result.TotalScore, t.Result.Accuracy)
			}
		}
		return nil
	},
}
