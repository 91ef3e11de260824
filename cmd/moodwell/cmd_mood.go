package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/ewilliams-labs/moodwell/internal/adapters/sqlite"
	"github.com/ewilliams-labs/moodwell/internal/core/domain"
)

func init() {
	rootCmd.AddCommand(moodCmd)
	moodCmd.AddCommand(moodRecordCmd, moodHistoryCmd)
	moodCmd.PersistentFlags().String("user", "anonymous", "user id")
	moodRecordCmd.Flags().Int("value", 0, "mood score from 1 to 10 (required)")
	_ = moodRecordCmd.MarkFlagRequired("value")
	moodHistoryCmd.Flags().Int("limit", 10, "number of readings to show")
}

var moodCmd = &cobra.Command{
	Use:   "mood",
	Short: "Record and inspect mood readings",
}

var moodRecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a mood reading; a running API picks it up on its next poll",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")
		value, _ := cmd.Flags().GetInt("value")

		reading, err := domain.NewMoodReading(uuid.NewString(), user, value, time.Now())
		if err != nil {
			return err
		}
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.RecordMood(cmd.Context(), reading); err != nil {
			return err
		}
		d := domain.Describe(value)
		fmt.Fprintf(cmd.OutOrStdout(), "Recorded %d %s %s for %s\n", value, d.Emoji, d.Label, user)
		return nil
	},
}

var moodHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent mood readings, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")
		limit, _ := cmd.Flags().GetInt("limit")

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		history, err := store.MoodHistory(cmd.Context(), user, limit)
		if err != nil {
			return err
		}

		tw := table.NewWriter()
		tw.SetOutputMirror(cmd.OutOrStdout())
		tw.AppendHeader(table.Row{"Recorded", "Mood", "Band"})
		for _, r := range history {
			d := domain.Describe(r.Value)
			tw.AppendRow(table.Row{r.RecordedAt.Local().Format(time.DateTime), fmt.Sprintf("%d %s", r.Value, d.Emoji), domain.BandFor(r.Value)})
		}
		tw.Render()
		return nil
	},
}

func openStore() (*sqlite.Adapter, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	store, err := sqlite.NewAdapter(cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("open mood store: %w", err)
	}
	return store, nil
}
