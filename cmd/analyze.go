package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/pable/go-snooker-metrics/internal/model"
	"github.com/pable/go-snooker-metrics/internal/stats"
	"github.com/pable/go-snooker-metrics/internal/view"
)

const analyzeSystemPrompt = `You are a snooker statistics analyst. You are given structured data computed
from a historical results database and a question from the user.

Rules:
- Answer ONLY from the data provided. Never invent or estimate statistics.
- Always cite specific numbers when making a claim.
- If the data is insufficient to answer confidently, say so explicitly.
- Be concise.

Glossary:
- Frame: one game within a match; matches are decided by frames won.
- Break: points scored in one visit; century = 100+, maximum = 147.
- Whitewash: winning a match without conceding a frame.
- Triple Crown: World Championship, Masters and UK Championship.
- Decider: a match settled by a single frame.
- Win percentages are over all matches including draws; draws are never
  counted as wins.`

var (
	analyzeModel  string
	analyzeAPIKey string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "AI-powered grounded analysis (requires ANTHROPIC_API_KEY)",
}

var analyzePlayerCmd = &cobra.Command{
	Use:   "player <name> <question>",
	Short: "Analyze one player's record with AI",
	Args:  cobra.ExactArgs(2),
	RunE:  runAnalyzePlayer,
}

var analyzeDatasetCmd = &cobra.Command{
	Use:   "dataset <question>",
	Short: "Analyze dataset-wide leaderboards with AI",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyzeDataset,
}

func init() {
	analyzeCmd.PersistentFlags().StringVar(&analyzeModel, "model", "claude-haiku-4-5-20251001", "Anthropic model to use")
	analyzeCmd.PersistentFlags().StringVar(&analyzeAPIKey, "api-key", "", "Anthropic API key (falls back to $ANTHROPIC_API_KEY)")

	analyzeCmd.AddCommand(analyzePlayerCmd)
	analyzeCmd.AddCommand(analyzeDatasetCmd)
}

func runAnalyzePlayer(cmd *cobra.Command, args []string) error {
	name, question := args[0], args[1]

	views, rel, err := loadSnapshot()
	if err != nil {
		return err
	}

	contextJSON, err := buildPlayerContext(views, rel, name)
	if err != nil {
		return err
	}
	return callAnthropic(cmd.Context(), analyzeAPIKey, analyzeModel, contextJSON, question)
}

func runAnalyzeDataset(cmd *cobra.Command, args []string) error {
	question := args[0]

	views, rel, err := loadSnapshot()
	if err != nil {
		return err
	}

	contextJSON, err := buildDatasetContext(views, rel)
	if err != nil {
		return err
	}
	return callAnthropic(cmd.Context(), analyzeAPIKey, analyzeModel, contextJSON, question)
}

// buildPlayerContext serialises one player's record into compact JSON.
func buildPlayerContext(views []model.MatchView, rel model.Relations, name string) (string, error) {
	rates, err := stats.WinRates(views, 1)
	if err != nil {
		return "", fmt.Errorf("win rates: %w", err)
	}
	var career *model.WinRateRow
	for i := range rates {
		if rates[i].Player == name {
			career = &rates[i]
			break
		}
	}
	if career == nil {
		return "", fmt.Errorf("no matches found for player %q", name)
	}

	doc := map[string]any{
		"subject": "player",
		"player":  name,
		"career": map[string]any{
			"matches": career.Matches,
			"wins":    career.Wins,
			"losses":  career.Losses,
			"draws":   career.Draws,
			"win_pct": career.WinPct,
		},
	}

	for _, t := range stats.Titles(views) {
		if t.Player == name {
			doc["titles"] = map[string]any{
				"total":      t.Titles,
				"last_year":  t.LastYear,
				"last_event": t.LastTournament,
			}
			break
		}
	}

	for _, tc := range stats.TripleCrownTitles(views) {
		if tc.Player == name {
			byEvent := make(map[string]int, len(model.TripleCrown))
			for i, event := range model.TripleCrown {
				byEvent[event] = tc.Counts[i]
			}
			doc["triple_crown_titles"] = byEvent
			break
		}
	}

	opponents, err := stats.BestWorstOpponents(views, stats.DefaultMinMeetings)
	if err != nil {
		return "", fmt.Errorf("opponents: %w", err)
	}
	var pairs []map[string]any
	for _, o := range opponents {
		if o.Player != name {
			continue
		}
		pairs = append(pairs, map[string]any{
			"kind":     o.Kind,
			"opponent": o.Opponent,
			"meetings": o.Meetings,
			"wins":     o.Wins,
			"win_pct":  o.WinPct,
		})
	}
	doc["opponents"] = pairs

	idx := view.Index(views)
	for _, m := range stats.MaximumBreaks(rel.Scores, idx) {
		if m.Player == name {
			doc["maximum_breaks"] = map[string]any{
				"count":      m.Count,
				"first_year": m.FirstYear,
				"last_year":  m.LastYear,
			}
			break
		}
	}

	b, err := json.Marshal(doc)
	return string(b), err
}

// buildDatasetContext serialises the top of each leaderboard.
func buildDatasetContext(views []model.MatchView, rel model.Relations) (string, error) {
	const top = 10

	rates, err := stats.WinRates(views, stats.DefaultMinMatches)
	if err != nil {
		return "", fmt.Errorf("win rates: %w", err)
	}

	idx := view.Index(views)
	doc := map[string]any{
		"subject":             "dataset",
		"top_win_pct":         head(rates, top),
		"top_titles":          head(stats.Titles(views), top),
		"triple_crown_titles": head(stats.TripleCrownTitles(views), top),
		"maximum_breaks":      head(stats.MaximumBreaks(rel.Scores, idx), top),
		"centuries_by_year":   stats.CenturiesByYear(rel.Scores, idx),
	}

	b, err := json.Marshal(doc)
	return string(b), err
}

func head[T any](rows []T, n int) []T {
	if len(rows) > n {
		return rows[:n]
	}
	return rows
}

func callAnthropic(ctx context.Context, apiKey, modelID, dataJSON, question string) error {
	// A .env next to the binary is the easiest place to keep the key.
	_ = godotenv.Load()

	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("no API key: set ANTHROPIC_API_KEY or use --api-key")
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	userMsg := fmt.Sprintf("DATA:\n%s\n\nQUESTION: %s", dataJSON, question)

	fmt.Fprintln(os.Stdout, "\n─── AI Analysis ─────────────────────────────────────")

	stream := client.Messages.NewStreaming(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(modelID),
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: analyzeSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userMsg)),
		},
	})

	for stream.Next() {
		evt := stream.Current()
		if evt.Type == "content_block_delta" {
			delta := evt.AsContentBlockDelta()
			if delta.Delta.Type == "text_delta" {
				fmt.Fprint(os.Stdout, delta.Delta.AsTextDelta().Text)
			}
		}
	}
	fmt.Fprintln(os.Stdout, "\n─────────────────────────────────────────────────────")

	if err := stream.Err(); err != nil {
		if strings.Contains(err.Error(), "401") || strings.Contains(err.Error(), "authentication") {
			return fmt.Errorf("API authentication failed — check your API key")
		}
		return fmt.Errorf("streaming error: %w", err)
	}
	return nil
}
