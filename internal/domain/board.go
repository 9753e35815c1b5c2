package domain

// Board is the grid of categories (columns) by clues (rows) for one session.
// Its shape is fixed at construction; only the clues' Showing fields change.
type Board struct {
	width      int
	height     int
	categories []Category
}

// NewBoard creates a board of len(categories) columns and height rows.
// The board owns copies of the clues, so later changes to categories do not reach it.
func NewBoard(height int, categories []Category) *Board {
	cats := copyCategories(categories)
	return &Board{
		width:      len(cats),
		height:     height,
		categories: cats,
	}
}

func copyCategories(categories []Category) []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = Category{ID: c.ID, Title: c.Title, Clues: append([]Clue(nil), c.Clues...)}
	}
	return out
}

// Clone returns a deep copy that shares no clue state with b
func (b *Board) Clone() *Board {
	return &Board{
		width:      b.width,
		height:     b.height,
		categories: b.Categories(),
	}
}

// Width returns the number of categories
func (b *Board) Width() int { return b.width }

// Height returns the number of clue rows
func (b *Board) Height() int { return b.height }

// Category returns the category in column col
func (b *Board) Category(col int) (Category, error) {
	if col < 0 || col >= b.width {
		return Category{}, &IndexError{Row: 0, Col: col}
	}
	return b.categories[col], nil
}

// Categories returns a copy of the board's categories in column order
func (b *Board) Categories() []Category {
	return copyCategories(b.categories)
}

// CellAt returns the clue at (row, col).
// Categories shorter than the board height leave the lower cells empty.
func (b *Board) CellAt(row, col int) (*Clue, error) {
	if row < 0 || col < 0 || col >= b.width || row >= b.height {
		return nil, &IndexError{Row: row, Col: col}
	}
	clues := b.categories[col].Clues
	if row >= len(clues) {
		return nil, &IndexError{Row: row, Col: col}
	}
	return &clues[row], nil
}

// CategoryIDs returns the source identifiers in column order
func (b *Board) CategoryIDs() []int {
	ids := make([]int, len(b.categories))
	for i, c := range b.categories {
		ids[i] = c.ID
	}
	return ids
}

// Titles returns the category titles in column order
func (b *Board) Titles() []string {
	titles := make([]string, len(b.categories))
	for i, c := range b.categories {
		titles[i] = c.Title
	}
	return titles
}
