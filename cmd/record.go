package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/avinash/preptrack/internal/ingest"
	"github.com/avinash/preptrack/internal/scoring"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a completed test",
	Long: `Record a completed test result for a user. Flags describe the test
directly, or pass --json to read a raw payload from stdin.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := requireUser(cmd)
		if err != nil {
			return err
		}

		var input scoring.TestInput
		if fromJSON, _ := cmd.Flags().GetBool("json"); fromJSON {
			raw, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			if err := ingest.Validate(ingest.TestResultSchema(), raw); err != nil {
				return err
			}
			if err := json.Unmarshal(raw, &input); err != nil {
				return fmt.Errorf("decode payload: %w", err)
			}
		} else {
			input.TestName, _ = cmd.Flags().GetString("name")
			input.Category, _ = cmd.Flags().GetString("category")
			input.Difficulty, _ = cmd.Flags().GetString("difficulty")
			input.Score, _ = cmd.Flags().GetInt("score")
			input.TotalScore, _ = cmd.Flags().GetInt("total")
			input.Accuracy, _ = cmd.Flags().GetFloat64("accuracy")
			input.DurationSecs, _ = cmd.Flags().GetInt("duration")
			input.Topics, _ = cmd.Flags().GetStringSlice("topics")
		}

		st, svc, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		outcome, err := svc.RecordTestResult(cmd.Context(), user, input)
		if err != nil {
			return err
		}

		r := outcome.Result
		fmt.Printf("Recorded %q (%s): %d/%d, %.1f%% accuracy\n",
			r.TestName, r.Category, r.Score, r.TotalScore, r.Accuracy)
		fmt.Printf("Streak: %d day(s) (best %d)\n", outcome.CurrentStreak, outcome.LongestStreak)
		for _, a := range outcome.NewAchievements {
			fmt.Printf("Achievement unlocked: %s [%s] +%d pts\n", a.Name, a.Rarity, a.Points)
		}
		return nil
	},
}

func init() {
	recordCmd.Flags().Bool("json", false, "Read a JSON payload from stdin instead of flags")
	recordCmd.Flags().String("name", "", "Test name")
	recordCmd.Flags().String("category", "", "Skill category (e.g. algorithms)")
	recordCmd.Flags().String("difficulty", "", "Difficulty (easy, medium, hard)")
	recordCmd.Flags().Int("score", 0, "Questions answered correctly")
	recordCmd.Flags().Int("total", 0, "Total questions on the test")
	recordCmd.Flags().Float64("accuracy", 0, "Accuracy override (derived from score/total when omitted)")
	recordCmd.Flags().Int("duration", 0, "Time taken in seconds")
	recordCmd.Flags().StringSlice("topics", nil, "Topics covered")
}
