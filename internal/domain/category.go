package domain

// Category is a titled column of clues
type Category struct {
	ID    int
	Title string
	Clues []Clue
}

// NewCategory builds a category with every clue hidden, keeping the given order
func NewCategory(id int, title string, pairs []ClueData) *Category {
	clues := make([]Clue, 0, len(pairs))
	for _, p := range pairs {
		clues = append(clues, Clue{
			Question: p.Question,
			Answer:   p.Answer,
			Showing:  RevealHidden,
		})
	}
	return &Category{ID: id, Title: title, Clues: clues}
}

// ClueData is a raw question/answer pair as supplied by a category source
type ClueData struct {
	Question string
	Answer   string
}
