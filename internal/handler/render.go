package handler

import (
	"fmt"
	"strconv"
	"strings"

	"jeopardy/internal/domain"
	"jeopardy/internal/service"

	tele "gopkg.in/telebot.v3"
)

const (
	loadingText = "⏳ Loading categories..."
	titleWidth  = 12
)

// cellLabel is the button text for a clue in the given state
func cellLabel(state domain.RevealState) string {
	switch state {
	case domain.RevealQuestion:
		return "❔"
	case domain.RevealAnswer:
		return "✅"
	default:
		return "❓"
	}
}

// truncate shortens s to at most n runes
func truncate(s string, n int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n-1]) + "…"
}

// boardMarkup renders the board as an inline keyboard:
// a row of category titles, one row per clue, then the Restart button
func boardMarkup(board *domain.Board) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, board.Height()+2)

	header := tele.Row{}
	for col, title := range board.Titles() {
		header = append(header, markup.Data(truncate(title, titleWidth), btnTitle.Unique, strconv.Itoa(col)))
	}
	rows = append(rows, header)

	for row := 0; row < board.Height(); row++ {
		cells := tele.Row{}
		for col := 0; col < board.Width(); col++ {
			clue, err := board.CellAt(row, col)
			if err != nil {
				cells = append(cells, markup.Data("·", btnEmpty.Unique))
				continue
			}
			cells = append(cells, markup.Data(cellLabel(clue.Showing), btnCell.Unique, strconv.Itoa(row), strconv.Itoa(col)))
		}
		rows = append(rows, cells)
	}

	rows = append(rows, markup.Row(btnRestart, btnMainMenu))
	markup.Inline(rows...)
	return markup
}

// boardText is the message above the keyboard; last is the most recent reveal, if any
func boardText(board *domain.Board, last *service.CellReveal) string {
	var b strings.Builder
	b.WriteString("🎯 Jeopardy!\n\n")
	for i, title := range board.Titles() {
		fmt.Fprintf(&b, "%d. %s\n", i+1, title)
	}
	b.WriteString("\nTap a cell to see the question, tap again for the answer.")

	if last != nil {
		fmt.Fprintf(&b, "\n\n📂 %s, row %d\n", last.Title, last.Row+1)
		if last.State == domain.RevealAnswer {
			fmt.Fprintf(&b, "✅ Answer: %s", last.Text)
		} else {
			fmt.Fprintf(&b, "❔ Question: %s", last.Text)
		}
	}
	return b.String()
}

// historyText lists logged boards, newest first
func historyText(games []domain.GameRecord) string {
	if len(games) == 0 {
		return "🕘 You have not played any boards yet."
	}
	var b strings.Builder
	b.WriteString("🕘 Your recent boards:\n\n")
	for i, g := range games {
		fmt.Fprintf(&b, "%d. %s: %s\n", i+1, g.StartedAt.Format("2 Jan 15:04"), strings.Join(g.Titles, ", "))
	}
	return b.String()
}

// parseCellData reads the "row|col" payload of a cell button
func parseCellData(data string) (row, col int, err error) {
	parts := strings.Split(cleanCallbackData(data), "|")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid cell payload %q", data)
	}
	if row, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, fmt.Errorf("invalid row in %q: %w", data, err)
	}
	if col, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, fmt.Errorf("invalid column in %q: %w", data, err)
	}
	return row, col, nil
}
