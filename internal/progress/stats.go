package progress

import (
	"time"

	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/generate"
)

// Scoring and progression constants.
const (
	// PointsPerCorrect is earned for each correctly answered question.
	PointsPerCorrect = 25

	// LevelThreshold is the point cost of one level.
	LevelThreshold = 300

	// MaxEvolution caps the cosmetic monster evolution stage.
	MaxEvolution = 3

	// MaxHistory bounds the stored attempt history, newest first.
	MaxHistory = 50
)

// HistoryItem is an immutable snapshot of one completed attempt.
type HistoryItem struct {
	ID         string              `json:"id"`
	Date       time.Time           `json:"date"`
	Subject    string              `json:"subject"`
	UnitName   string              `json:"unitName"`
	Topics     []string            `json:"topics"`
	Score      int                 `json:"score"`
	Total      int                 `json:"total"`
	Difficulty generate.Difficulty `json:"difficulty"`
	Questions  []generate.Question `json:"questions"`
	Answers    map[string]int      `json:"answers"`
}

// UserStats is the durable progress aggregate. The only writer is the
// submission step of a quiz attempt.
type UserStats struct {
	Points         int           `json:"points"`
	Level          int           `json:"level"`
	CorrectAnswers int           `json:"correctAnswers"`
	TotalQuestions int           `json:"totalQuestions"`
	Evolution      int           `json:"evolution"`
	History        []HistoryItem `json:"history"`

	// Streak counts consecutive calendar days with at least one
	// completed attempt. LastPlayed anchors the computation.
	Streak     int       `json:"streak"`
	LastPlayed time.Time `json:"lastPlayed"`
}

// DefaultStats is the zeroed aggregate used when nothing is persisted
// yet, or when the persisted record cannot be read.
func DefaultStats() *UserStats {
	return &UserStats{Level: 1, History: []HistoryItem{}}
}

// LevelFor derives the level from cumulative points.
func LevelFor(points int) int {
	return points/LevelThreshold + 1
}

// EvolutionFor derives the saturating evolution stage from the level.
func EvolutionFor(level int) int {
	stage := level / 4
	if stage > MaxEvolution {
		stage = MaxEvolution
	}
	return stage
}

// Apply folds one submitted attempt into the aggregate. Pure
// read-modify-write over the given stats; persistence happens in the
// caller.
func Apply(stats *UserStats, item HistoryItem) {
	stats.Points += PointsPerCorrect * item.Score
	stats.Level = LevelFor(stats.Points)
	stats.Evolution = EvolutionFor(stats.Level)
	stats.CorrectAnswers += item.Score
	stats.TotalQuestions += item.Total

	stats.History = append([]HistoryItem{item}, stats.History...)
	if len(stats.History) > MaxHistory {
		stats.History = stats.History[:MaxHistory]
	}

	stats.Streak = nextStreak(stats.Streak, stats.LastPlayed, item.Date)
	stats.LastPlayed = item.Date
}

// nextStreak extends the daily streak when the previous play was
// yesterday, keeps it on a same-day attempt, and restarts at one after
// a gap.
func nextStreak(streak int, last, now time.Time) int {
	if last.IsZero() {
		return 1
	}
	if sameDay(last, now) {
		if streak == 0 {
			return 1
		}
		return streak
	}
	if sameDay(last, now.AddDate(0, 0, -1)) {
		return streak + 1
	}
	return 1
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
