package domain

// RevealState controls what a board cell displays
type RevealState string

const (
	RevealHidden   RevealState = "hidden"
	RevealQuestion RevealState = "question"
	RevealAnswer   RevealState = "answer"
)

// Clue is a question/answer pair with its reveal state
type Clue struct {
	Question string
	Answer   string
	Showing  RevealState
}

// Reveal is the outcome of a single reveal event on a clue
type Reveal struct {
	State    RevealState
	Text     string // text the cell should display after the event
	Changed  bool   // false when the clue was already showing its answer
	Answered bool
}

// NextReveal computes the transition for a reveal event without touching the clue.
// Hidden moves to Question, Question moves to Answer, Answer is terminal.
func NextReveal(c Clue) Reveal {
	switch c.Showing {
	case RevealQuestion:
		return Reveal{State: RevealAnswer, Text: c.Answer, Changed: true, Answered: true}
	case RevealAnswer:
		return Reveal{State: RevealAnswer, Text: c.Answer, Changed: false, Answered: true}
	default:
		return Reveal{State: RevealQuestion, Text: c.Question, Changed: true}
	}
}

// Reveal applies NextReveal and stores the new state on the clue
func (c *Clue) Reveal() Reveal {
	r := NextReveal(*c)
	c.Showing = r.State
	return r
}

// DisplayText returns what the cell currently shows, empty while hidden
func (c Clue) DisplayText() string {
	switch c.Showing {
	case RevealQuestion:
		return c.Question
	case RevealAnswer:
		return c.Answer
	default:
		return ""
	}
}
