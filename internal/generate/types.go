package generate

import "context"

// Difficulty influences generation only, never scoring.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Valid reports whether d is one of the three known difficulties.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// Question is one generated multiple-choice question. Options are
// ordered; index 0..3 maps to labels A..D. Question text may carry the
// ** emphasis convention understood by internal/markup.
type Question struct {
	ID            string     `json:"id"`
	Text          string     `json:"text"`
	Options       []string   `json:"options"`
	CorrectAnswer int        `json:"correctAnswer"`
	Explanation   string     `json:"explanation"`
	Difficulty    Difficulty `json:"difficulty"`
}

// BatchRequest carries everything the generator needs for one quiz
// attempt. Topics must be non-empty; an empty user selection is
// expanded to the unit's full topic list before this point.
type BatchRequest struct {
	Subject    string     `json:"subject"`
	UnitName   string     `json:"unitName"`
	Topics     []string   `json:"topics"`
	Difficulty Difficulty `json:"difficulty"`
	Count      int        `json:"count"`
}

// Validate rejects requests the backend could not serve.
func (r BatchRequest) Validate() error {
	switch {
	case r.Subject == "":
		return errMissing("subject")
	case r.UnitName == "":
		return errMissing("unitName")
	case len(r.Topics) == 0:
		return errMissing("topics")
	case r.Count <= 0:
		return errMissing("count")
	}
	if !r.Difficulty.Valid() {
		return errMissing("difficulty")
	}
	return nil
}

// Generator produces a question batch for one quiz attempt. The two
// implementations are Service (direct model call) and Client (HTTP).
type Generator interface {
	GenerateBatch(ctx context.Context, req BatchRequest) ([]Question, error)
}
