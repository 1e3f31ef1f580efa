package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avinash/preptrack/internal/taxonomy"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Manage skill proficiency",
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a user's skill proficiencies",
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

		skills := make([]taxonomy.Skill, 0, len(summary.Record.Skills))
		for s := range summary.Record.Skills {
			skills = append(skills, s)
		}
		sort.Slice(skills, func(i, j int) bool { return skills[i] < skills[j] })

		fmt.Printf("%-22s  %11s  %s\n", "Skill", "Proficiency", "Updated")
		fmt.Println(strings.Repeat("─", 55))
		for _, s := range skills {
			e := summary.Record.Skills[s]
			fmt.Printf("%-22s  %10.1f%%  %s\n",
				s.DisplayName(), e.Proficiency, e.LastUpdated.Format("2006-01-02"))
		}
		return nil
	},
}

var skillSetCmd = &cobra.Command{
	Use:   "set <skill> <value>",
	Short: "Set a skill proficiency (0-100)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := requireUser(cmd)
		if err != nil {
			return err
		}

		var value float64
		if _, err := fmt.Sscanf(args[1], "%f", &value); err != nil {
			return fmt.Errorf("invalid proficiency value %q", args[1])
		}

		st, svc, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		skill := taxonomy.Skill(args[0])
		if err := svc.UpdateSkillProficiency(cmd.Context(), user, skill, value); err != nil {
			return err
		}
		fmt.Printf("Set %s to %.1f%%\n", skill.DisplayName(), value)
		return nil
	},
}

func init() {
	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillSetCmd)
}
