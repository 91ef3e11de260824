package main

import (
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/ewilliams-labs/moodwell/internal/core/domain"
	"github.com/ewilliams-labs/moodwell/internal/core/services"
)

func init() {
	rootCmd.AddCommand(recommendCmd, classifyCmd)
	recommendCmd.Flags().Int("mood", domain.DefaultMood, "mood score from 1 to 10")
	recommendCmd.Flags().Bool("json", false, "output JSON")
	classifyCmd.Flags().Int("mood", domain.DefaultMood, "mood score from 1 to 10")
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Fetch one round of recommendations for a mood",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mood, _ := cmd.Flags().GetInt("mood")
		asJSON, _ := cmd.Flags().GetBool("json")
		if err := domain.ValidateMood(mood); err != nil {
			return err
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		inbox := services.NewInbox(0)
		orch := services.NewOrchestrator(newProviders(cmd.Context(), cfg), inbox)
		batch := orch.Refresh(cmd.Context(), mood)
		notes := inbox.Drain()

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{"batch": batch, "notifications": notes})
		}
		renderBatch(out, batch, orch.StreamURL)
		for _, n := range notes {
			fmt.Fprintf(out, "! %s\n", n.Message)
		}
		return nil
	},
}

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Show the search queries a mood maps to",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mood, _ := cmd.Flags().GetInt("mood")
		if err := domain.ValidateMood(mood); err != nil {
			return err
		}
		q := domain.Classify(mood)
		d := domain.Describe(mood)

		tw := table.NewWriter()
		tw.SetOutputMirror(cmd.OutOrStdout())
		tw.SetTitle(fmt.Sprintf("%d %s %s", mood, d.Emoji, d.Label))
		tw.AppendHeader(table.Row{"Section", "Query"})
		tw.AppendRow(table.Row{"music", q.MusicQuery})
		tw.AppendRow(table.Row{"podcasts", q.PodcastQuery})
		tw.AppendRow(table.Row{"books", q.BookQuery})
		tw.Render()
		return nil
	},
}

func renderBatch(out io.Writer, batch domain.RecommendationBatch, streamURL func(string) string) {
	d := domain.Describe(batch.Mood)
	fmt.Fprintf(out, "Mood %d %s %s\n", batch.Mood, d.Emoji, d.Label)

	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.SetTitle("Music: " + batch.Query.MusicQuery)
	tw.AppendHeader(table.Row{"Title", "Artist", "Length", "Stream"})
	for _, t := range batch.Tracks {
		tw.AppendRow(table.Row{t.Title, t.ArtistName, formatDuration(t.DurationSeconds), streamURL(t.ID)})
	}
	tw.Render()

	tw = table.NewWriter()
	tw.SetOutputMirror(out)
	tw.SetTitle("Podcasts: " + batch.Query.PodcastQuery)
	tw.AppendHeader(table.Row{"Title", "Channel", "Video"})
	for _, v := range batch.Videos {
		tw.AppendRow(table.Row{v.Title, v.ChannelName, "https://www.youtube.com/watch?v=" + v.ID})
	}
	tw.Render()

	tw = table.NewWriter()
	tw.SetOutputMirror(out)
	tw.SetTitle("Books: " + batch.Query.BookQuery)
	tw.AppendHeader(table.Row{"Title", "Authors", "Published"})
	for _, b := range batch.Books {
		tw.AppendRow(table.Row{b.Title, strings.Join(b.Authors, ", "), b.PublishedDate})
	}
	tw.Render()
}

func formatDuration(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

