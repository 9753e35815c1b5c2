package handler

import (
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	mainMenuText   = "🏠 Main menu\n\nTap Play to deal a new board."
	passwordPrompt = "Hi! This bot is private. Send the password to continue:"
	genericError   = "Something went wrong. Please try again later."
)

// handleStart handles /start command and the main menu button
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User opened menu",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	// Ensure user exists in database
	if err := h.authService.EnsureUserExists(userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return c.Send(genericError)
	}

	// Check if authorized
	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(genericError)
	}

	if !authorized {
		return c.Send(passwordPrompt)
	}

	if c.Callback() != nil {
		if err := c.Edit(mainMenuText, mainMenuMarkup()); err != nil {
			if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
				return nil
			}
			return c.Send(mainMenuText, mainMenuMarkup())
		}
		return c.Respond()
	}
	return c.Send(mainMenuText, mainMenuMarkup())
}

// handleText treats plain text from unauthorized users as a password attempt
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	if err := h.authService.EnsureUserExists(userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return nil
	}

	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(genericError)
	}

	if authorized {
		return c.Send("Use /play to deal a board.", mainMenuMarkup())
	}

	ok, err := h.authService.Login(userID, text)
	if err != nil {
		h.logger.Error("Failed to authorize user", zap.Error(err))
		return c.Send(genericError)
	}
	if !ok {
		return c.Send("Wrong password")
	}

	h.logger.Info("User authorized", zap.Int64("user_id", userID))
	return c.Send("✅ Access granted!\n\n"+mainMenuText, mainMenuMarkup())
}
