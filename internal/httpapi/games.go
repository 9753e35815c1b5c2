package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"jeopardy/internal/domain"
	"jeopardy/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type cellView struct {
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	State     string `json:"state"`
	Text      string `json:"text,omitempty"`
	Answered  bool   `json:"answered"`
	Available bool   `json:"available"`
}

type categoryView struct {
	Title string     `json:"title"`
	Cells []cellView `json:"cells"`
}

type gameView struct {
	ID         string         `json:"id"`
	State      string         `json:"state"`
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	Categories []categoryView `json:"categories"`
}

type revealReq struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

type revealRes struct {
	Row      int    `json:"row"`
	Col      int    `json:"col"`
	State    string `json:"state"`
	Text     string `json:"text"`
	Changed  bool   `json:"changed"`
	Answered bool   `json:"answered"`
}

// newGameView renders the session; hidden cells carry no text
func newGameView(id string, session *service.Session) gameView {
	v := gameView{ID: id, State: string(session.State()), Categories: []categoryView{}}

	board := session.Board()
	if board == nil {
		return v
	}

	v.Width, v.Height = board.Width(), board.Height()
	for col, cat := range board.Categories() {
		cv := categoryView{Title: cat.Title, Cells: make([]cellView, 0, board.Height())}
		for row := 0; row < board.Height(); row++ {
			cell := cellView{Row: row, Col: col, State: string(domain.RevealHidden)}
			if clue, err := board.CellAt(row, col); err == nil {
				cell.Available = true
				cell.State = string(clue.Showing)
				cell.Text = clue.DisplayText()
				cell.Answered = clue.Showing == domain.RevealAnswer
			}
			cv.Cells = append(cv.Cells, cell)
		}
		v.Categories = append(v.Categories, cv)
	}
	return v
}

// handleStart creates a session under a new id and deals its first board
func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()

	session, err := s.games.Start(r.Context(), id)
	if err != nil {
		s.logger.Error("Failed to start game", zap.String("game_id", id), zap.Error(err))
		s.games.End(id)
		writeError(w, http.StatusBadGateway, "start_failed")
		return
	}

	writeJSON(w, http.StatusCreated, newGameView(id, session))
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	session, err := s.games.Session(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}

	writeJSON(w, http.StatusOK, newGameView(id, session))
}

func (s *Server) handleEnd(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if !s.games.End(id) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	session, err := s.games.Restart(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, "not_found")
		return
	case err != nil:
		s.logger.Error("Failed to restart game", zap.String("game_id", id), zap.Error(err))
		writeError(w, http.StatusBadGateway, "start_failed")
		return
	}

	writeJSON(w, http.StatusOK, newGameView(id, session))
}

func (s *Server) handleReveal(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req revealReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Row == nil || req.Col == nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	result, err := s.games.Reveal(id, *req.Row, *req.Col)
	if err != nil {
		var idxErr *domain.IndexError
		switch {
		case errors.Is(err, domain.ErrSessionNotFound):
			writeError(w, http.StatusNotFound, "not_found")
		case errors.Is(err, domain.ErrNotReady):
			writeError(w, http.StatusConflict, "not_ready")
		case errors.As(err, &idxErr):
			writeError(w, http.StatusBadRequest, "no_such_cell")
		default:
			s.logger.Error("Failed to reveal clue", zap.String("game_id", id), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "reveal_failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, revealRes{
		Row:      result.Row,
		Col:      result.Col,
		State:    string(result.State),
		Text:     result.Text,
		Changed:  result.Changed,
		Answered: result.Answered,
	})
}
