package model

// Tournament status and category labels as they appear in the source data.
// Stage labels are case-sensitive: the dataset contains both "Final" and
// lower-case variants that denote different things, so they must never be
// compared case-insensitively.
const (
	StatusProfessional = "Professional"
	CategoryRanking    = "Ranking"
	StageFinal         = "Final"
)

// TripleCrown lists the three most prestigious tournaments, in the column
// order used by the titles pivot.
var TripleCrown = []string{"World Championship", "Masters", "UK Championship"}

// IsFinal reports whether a stage label is exactly the Final stage.
func IsFinal(stage string) bool {
	return stage == StageFinal
}

// ---- Base relations, loaded once and read-only thereafter ----

// Player is identified by full name.
type Player struct {
	Name    string
	Country string
}

// Tournament recurs across years; (Name, Year) is the logical identity,
// ID is the surrogate key matches reference.
type Tournament struct {
	ID       int
	Name     string
	Year     int
	Status   string
	Category string
	City     string
	Country  string
}

type Match struct {
	ID           int
	TournamentID int
	Stage        string
	Player1      string
	Player2      string
	Score1       int
	Score2       int
}

// FrameScore is one per-frame score entry for one player slot of a match.
// Break is the highest break (>=50) achieved in that frame; HasBreak is
// false when no such break occurred.
type FrameScore struct {
	MatchID  int
	Frame    int
	Slot     int // 1 or 2
	Points   int
	Break    int
	HasBreak bool
}

// Relations holds the four base relations of a loaded snapshot.
type Relations struct {
	Players     []Player
	Tournaments []Tournament
	Matches     []Match
	Scores      []FrameScore
}

// ---- Derived ----

// MatchView is the denormalized per-match record every report reads from.
// Winner/Loser are resolved by score comparison. When Draw is true the
// scores are equal and Winner/Loser hold Player1/Player2 in slot order;
// neither side is credited with a win.
type MatchView struct {
	MatchID      int
	TournamentID int
	Tournament   string
	Year         int
	Status       string
	Category     string
	Stage        string

	Player1 string
	Player2 string

	Winner        string
	Loser         string
	WinnerCountry string
	LoserCountry  string
	WinnerScore   int
	LoserScore    int
	Draw          bool
}

// Margin is the frame difference between winner and loser (0 for draws).
func (v MatchView) Margin() int {
	return v.WinnerScore - v.LoserScore
}

// Professional reports whether the match belongs to a professional tournament.
func (v MatchView) Professional() bool {
	return v.Status == StatusProfessional
}

// PlayerBySlot resolves a frame-score slot to a player name.
func (v MatchView) PlayerBySlot(slot int) string {
	if slot == 1 {
		return v.Player1
	}
	return v.Player2
}

// ---- Report rows ----

type WinRateRow struct {
	Player  string
	Matches int
	Wins    int
	Losses  int
	Draws   int
	WinPct  float64
}

type StageWinRateRow struct {
	Player  string
	Stage   string
	Matches int
	Wins    int
	WinPct  float64
}

type WhitewashRow struct {
	Player      string
	Wins        int // wins with winner score >= 6
	Whitewashes int
	Pct         float64
}

type TitleRow struct {
	Player         string
	Titles         int
	LastYear       int
	LastTournament string
}

// TripleCrownRow pivots a player's Triple Crown titles: Counts is aligned
// with model.TripleCrown, zero-filled for events never won.
type TripleCrownRow struct {
	Player string
	Counts []int
	Total  int
}

type WorstDefeatRow struct {
	Player      string
	Tournament  string
	Year        int
	Opponent    string
	WinnerScore int
	LoserScore  int
	Margin      int
}

type OpponentRow struct {
	Player   string
	Opponent string
	Meetings int
	Wins     int
	WinPct   float64
	Kind     string // "Best" or "Worst"
}

type BreakRow struct {
	Rank       int
	Player     string
	Tournament string
	Year       int
	Break      int
}

type CenturyYearRow struct {
	Year       int
	Centuries  int
	Rolling5   float64 // trailing average over the last 5 years including this one
	RunningMax int     // highest yearly count seen so far
}

type MaximumBreakRow struct {
	Player    string
	Count     int
	FirstYear int
	LastYear  int
}

type EnteredRow struct {
	Player    string
	Entered   int
	FirstYear int
	LastYear  int
}

type DeciderRow struct {
	Player   string
	Deciders int
	Won      int
	WinPct   float64
}

// DatasetOverview summarises a stored snapshot for the summary command.
type DatasetOverview struct {
	Players     int
	Tournaments int
	Matches     int
	Frames      int
	Breaks      int
	FirstYear   int
	LastYear    int
}
