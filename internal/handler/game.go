package handler

import (
	"context"
	"errors"
	"strconv"

	"jeopardy/internal/domain"
	"jeopardy/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handlePlay deals a new board for the chat
func (h *Handler) handlePlay(c tele.Context) error {
	return h.deal(c, false)
}

// handleRestart discards the chat's board and deals a new one
func (h *Handler) handleRestart(c tele.Context) error {
	return h.deal(c, true)
}

// deal shows the loading message, builds the board, then replaces the
// loading message with either the board or an error
func (h *Handler) deal(c tele.Context, restart bool) error {
	owner := ownerKey(c.Chat().ID)

	msg, err := h.showLoading(c)
	if err != nil {
		h.logger.Error("Failed to show loading message", zap.Error(err), zap.String("owner", owner))
		return err
	}

	ctx := context.Background()
	var session *service.Session
	if restart {
		session, err = h.gameService.Restart(ctx, owner)
		if errors.Is(err, domain.ErrSessionNotFound) {
			// The process restarted since this board was dealt
			session, err = h.gameService.Start(ctx, owner)
		}
	} else {
		session, err = h.gameService.Start(ctx, owner)
	}
	if err != nil {
		return h.showDealError(c, msg, err)
	}

	board := session.Board()
	if board == nil {
		return h.showDealError(c, msg, domain.ErrNotReady)
	}

	if _, err := c.Bot().Edit(msg, boardText(board, nil), boardMarkup(board)); err != nil {
		h.logger.Error("Failed to show board", zap.Error(err), zap.String("owner", owner))
		return c.Send(boardText(board, nil), boardMarkup(board))
	}
	return nil
}

// showLoading edits the pressed message into the loading indicator,
// or sends a new one for commands
func (h *Handler) showLoading(c tele.Context) (tele.Editable, error) {
	if cb := c.Callback(); cb != nil && cb.Message != nil {
		if err := c.Respond(); err != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
		}
		if _, err := c.Bot().Edit(cb.Message, loadingText); err == nil {
			return cb.Message, nil
		}
	}
	return c.Bot().Send(c.Recipient(), loadingText)
}

func (h *Handler) showDealError(c tele.Context, msg tele.Editable, err error) error {
	h.logger.Error("Failed to deal board", zap.Error(err), zap.Int64("chat_id", c.Chat().ID))

	text := "😕 Could not load the categories. Try again?"
	if _, editErr := c.Bot().Edit(msg, text, retryMarkup()); editErr != nil {
		return c.Send(text, retryMarkup())
	}
	return nil
}

// handleCell advances the tapped clue and redraws the board
func (h *Handler) handleCell(c tele.Context) error {
	owner := ownerKey(c.Chat().ID)

	row, col, err := parseCellData(c.Callback().Data)
	if err != nil {
		h.logger.Warn("Bad cell payload", zap.Error(err), zap.String("owner", owner))
		return c.Respond(&tele.CallbackResponse{Text: "Unknown cell"})
	}

	result, err := h.gameService.Reveal(owner, row, col)
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return c.Respond(&tele.CallbackResponse{Text: "This board has expired, tap Restart", ShowAlert: true})
	case errors.Is(err, domain.ErrNotReady):
		return c.Respond(&tele.CallbackResponse{Text: "The board is still loading"})
	case err != nil:
		var idxErr *domain.IndexError
		if errors.As(err, &idxErr) {
			return c.Respond(&tele.CallbackResponse{Text: "No clue here"})
		}
		h.logger.Error("Failed to reveal clue", zap.Error(err), zap.String("owner", owner))
		return c.Respond(&tele.CallbackResponse{Text: genericError})
	}

	if !result.Changed {
		return c.Respond(&tele.CallbackResponse{Text: "Already answered"})
	}

	session, err := h.gameService.Session(owner)
	if err != nil {
		return c.Respond()
	}
	board := session.Board()
	if board == nil {
		return c.Respond()
	}

	if err := c.Edit(boardText(board, result), boardMarkup(board)); err != nil {
		if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
			return nil
		}
		return c.Send(boardText(board, result), boardMarkup(board))
	}
	return c.Respond()
}

// handleTitle shows the full title of a category header
func (h *Handler) handleTitle(c tele.Context) error {
	col, err := strconv.Atoi(cleanCallbackData(c.Callback().Data))
	if err != nil {
		return c.Respond()
	}

	session, err := h.gameService.Session(ownerKey(c.Chat().ID))
	if err != nil {
		return c.Respond()
	}
	board := session.Board()
	if board == nil {
		return c.Respond()
	}

	cat, err := board.Category(col)
	if err != nil {
		return c.Respond()
	}
	return c.Respond(&tele.CallbackResponse{Text: cat.Title, ShowAlert: true})
}

// handleEmpty acknowledges taps on cells without a clue
func (h *Handler) handleEmpty(c tele.Context) error {
	return c.Respond(&tele.CallbackResponse{Text: "No clue here"})
}

// handleHistory lists the chat's recent boards
func (h *Handler) handleHistory(c tele.Context) error {
	games, err := h.gameService.History(ownerKey(c.Chat().ID))
	if err != nil {
		h.logger.Error("Failed to load history", zap.Error(err))
		if c.Callback() != nil {
			return c.Respond(&tele.CallbackResponse{Text: genericError})
		}
		return c.Send(genericError)
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnPlay), markup.Row(btnMainMenu))

	text := historyText(games)
	if c.Callback() != nil {
		if err := c.Edit(text, markup); err != nil {
			if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
				return nil
			}
			return c.Send(text, markup)
		}
		return c.Respond()
	}
	return c.Send(text, markup)
}
