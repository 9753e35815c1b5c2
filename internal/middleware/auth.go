package middleware

import (
	"jeopardy/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	passwordPrompt = "Hi! This bot is private. Send the password to continue:"
	genericError   = "Something went wrong. Please try again later."
)

// AuthMiddleware lets only authorized users reach game handlers
func AuthMiddleware(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			// Ensure user exists
			if err := authService.EnsureUserExists(userID); err != nil {
				logger.Error("Failed to ensure user exists in middleware", zap.Error(err))
				return deny(c, genericError, logger)
			}

			// Check authorization
			authorized, err := authService.IsAuthorized(userID)
			if err != nil {
				logger.Error("Failed to check authorization in middleware", zap.Error(err))
				return deny(c, genericError, logger)
			}

			if !authorized {
				logger.Info("Rejected unauthorized user", zap.Int64("user_id", userID))
				return deny(c, passwordPrompt, logger)
			}

			return next(c)
		}
	}
}

// deny answers a pending callback, if any, and sends text to the chat
func deny(c tele.Context, text string, logger *zap.Logger) error {
	if c.Callback() != nil {
		if err := c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: true}); err != nil {
			logger.Warn("Failed to acknowledge callback", zap.Error(err))
		}
		return nil
	}
	return c.Send(text)
}
