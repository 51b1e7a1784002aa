package view

import (
	"errors"
	"strings"
	"testing"

	"github.com/pable/go-snooker-metrics/internal/model"
)

func baseRelations() model.Relations {
	return model.Relations{
		Players: []model.Player{
			{Name: "Ann", Country: "England"},
			{Name: "Bob", Country: "Scotland"},
		},
		Tournaments: []model.Tournament{
			{ID: 1, Name: "World Championship", Year: 1999, Status: "Professional", Category: "Ranking", Country: "England"},
		},
		Matches: []model.Match{
			{ID: 10, TournamentID: 1, Stage: "Final", Player1: "Ann", Player2: "Bob", Score1: 18, Score2: 12},
		},
	}
}

func TestBuildResolvesWinner(t *testing.T) {
	views, err := Build(baseRelations())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 view, got %d", len(views))
	}

	v := views[0]
	if v.Winner != "Ann" || v.Loser != "Bob" {
		t.Errorf("expected Ann over Bob, got %s over %s", v.Winner, v.Loser)
	}
	if v.WinnerScore != 18 || v.LoserScore != 12 {
		t.Errorf("wrong scores: %d-%d", v.WinnerScore, v.LoserScore)
	}
	if v.WinnerCountry != "England" || v.LoserCountry != "Scotland" {
		t.Errorf("wrong countries: %s / %s", v.WinnerCountry, v.LoserCountry)
	}
	if v.Draw {
		t.Error("decided match flagged as draw")
	}
	if v.Margin() != 6 {
		t.Errorf("expected margin 6, got %d", v.Margin())
	}
}

func TestBuildResolvesWinnerFromSlot2(t *testing.T) {
	rel := baseRelations()
	rel.Matches[0].Score1, rel.Matches[0].Score2 = 3, 9

	views, err := Build(rel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v := views[0]; v.Winner != "Bob" || v.Loser != "Ann" {
		t.Errorf("expected Bob over Ann, got %s over %s", v.Winner, v.Loser)
	}
}

// Equal scores are a draw: nobody wins, and the winner/loser fields fall
// back to slot order so frame scores still resolve.
func TestBuildDraw(t *testing.T) {
	rel := baseRelations()
	rel.Matches[0].Score1, rel.Matches[0].Score2 = 4, 4

	views, err := Build(rel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v := views[0]
	if !v.Draw {
		t.Fatal("expected Draw=true for equal scores")
	}
	if v.Winner != "Ann" || v.Loser != "Bob" {
		t.Errorf("expected slot order Ann/Bob, got %s/%s", v.Winner, v.Loser)
	}
	if v.Margin() != 0 {
		t.Errorf("expected margin 0 for draw, got %d", v.Margin())
	}
}

// Every violation must be reported, not just the first one, and no views
// may come back alongside an integrity error.
func TestBuildCollectsAllViolations(t *testing.T) {
	rel := baseRelations()
	rel.Matches = append(rel.Matches,
		model.Match{ID: 11, TournamentID: 99, Stage: "Final", Player1: "Ann", Player2: "Bob", Score1: 1, Score2: 0},
		model.Match{ID: 12, TournamentID: 1, Stage: "Final", Player1: "Zed", Player2: "Bob", Score1: 1, Score2: 0},
		model.Match{ID: 13, TournamentID: 1, Stage: "Final", Player1: "Ann", Player2: "Ann", Score1: 1, Score2: 0},
		model.Match{ID: 14, TournamentID: 1, Stage: "Final", Player1: "Ann", Player2: "Bob", Score1: -1, Score2: 0},
	)

	views, err := Build(rel)
	if err == nil {
		t.Fatal("expected integrity error")
	}
	if views != nil {
		t.Errorf("expected no views alongside error, got %d", len(views))
	}

	var ie *IntegrityError
	if !errors.As(err, &ie) {
		t.Fatalf("expected *IntegrityError, got %T", err)
	}
	if len(ie.Violations) != 4 {
		t.Fatalf("expected 4 violations, got %d: %v", len(ie.Violations), ie.Violations)
	}
	for _, want := range []string{"unknown tournament id 99", `unknown player "Zed"`, "both sides", "negative score"} {
		found := false
		for _, v := range ie.Violations {
			if strings.Contains(v, want) {
				found = true
			}
		}
		if !found {
			t.Errorf("no violation mentioning %q in %v", want, ie.Violations)
		}
	}
}

func TestIndex(t *testing.T) {
	views, err := Build(baseRelations())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	idx := Index(views)
	if _, ok := idx[10]; !ok {
		t.Error("expected match 10 in index")
	}
	if len(idx) != 1 {
		t.Errorf("expected 1 entry, got %d", len(idx))
	}
}
