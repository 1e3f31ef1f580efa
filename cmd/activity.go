package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avinash/preptrack/internal/ingest"
	"github.com/avinash/preptrack/internal/progress"
	"github.com/avinash/preptrack/internal/taxonomy"
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Record a practice activity",
	Long: `Record a raw activity event (problem solved, login, mock interview,
discussion reply, ...). Pass --json to read a raw payload from stdin.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var in progress.ActivityInput

		if fromJSON, _ := cmd.Flags().GetBool("json"); fromJSON {
			raw, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			if err := ingest.Validate(ingest.ActivitySchema(), raw); err != nil {
				return err
			}
			var payload struct {
				ActivityID string                `json:"activity_id"`
				UserID     string                `json:"user_id"`
				Type       taxonomy.ActivityType `json:"activity_type"`
				Metadata   map[string]any        `json:"metadata"`
			}
			if err := json.Unmarshal(raw, &payload); err != nil {
				return fmt.Errorf("decode payload: %w", err)
			}
			in = progress.ActivityInput{
				ActivityID: payload.ActivityID,
				UserID:     payload.UserID,
				Type:       payload.Type,
				Metadata:   payload.Metadata,
			}
		} else {
			user, err := requireUser(cmd)
			if err != nil {
				return err
			}
			typ, _ := cmd.Flags().GetString("type")
			id, _ := cmd.Flags().GetString("id")
			meta, _ := cmd.Flags().GetStringSlice("meta")

			in = progress.ActivityInput{
				ActivityID: id,
				UserID:     user,
				Type:       taxonomy.ActivityType(typ),
				Metadata:   parseMeta(meta),
			}
		}

		st, svc, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		act, err := svc.RecordActivity(cmd.Context(), in)
		if err != nil {
			return err
		}
		fmt.Printf("Recorded %s activity %s\n", act.Type, act.ActivityID)
		if act.PointsEarned > 0 {
			fmt.Printf("Earned %d point(s)\n", act.PointsEarned)
		}
		return nil
	},
}

// parseMeta turns key=value pairs into a metadata map.
func parseMeta(pairs []string) map[string]any {
	if len(pairs) == 0 {
		return nil
	}
	meta := make(map[string]any, len(pairs))
	for _, p := range pairs {
		k, v, found := strings.Cut(p, "=")
		if !found || k == "" {
			continue
		}
		meta[k] = v
	}
	return meta
}

func init() {
	activityCmd.Flags().Bool("json", false, "Read a JSON payload from stdin instead of flags")
	activityCmd.Flags().String("type", "", "Activity type (e.g. problem_solved, login)")
	activityCmd.Flags().String("id", "", "Idempotency ID (generated when omitted)")
	activityCmd.Flags().StringSlice("meta", nil, "Metadata as key=value pairs")
}
