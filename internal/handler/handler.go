package handler

import (
	"fmt"

	"jeopardy/internal/middleware"
	"jeopardy/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot         *tele.Bot
	authService *service.AuthService
	gameService *service.GameService
	logger      *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	gameService *service.GameService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:         bot,
		authService: authService,
		gameService: gameService,
		logger:      logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Open to everyone: menu and password entry
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle(tele.OnText, h.handleText)

	// Game routes require an authorized user
	game := h.bot.Group()
	game.Use(middleware.AuthMiddleware(h.authService, h.logger))

	game.Handle("/play", h.handlePlay)
	game.Handle("/history", h.handleHistory)

	game.Handle(&btnPlay, h.handlePlay)
	game.Handle(&btnRestart, h.handleRestart)
	game.Handle(&btnHistory, h.handleHistory)
	game.Handle(&btnMainMenu, h.handleStart)
	game.Handle(&btnCell, h.handleCell)
	game.Handle(&btnTitle, h.handleTitle)
	game.Handle(&btnEmpty, h.handleEmpty)

	// Anything left over, e.g. buttons from an older bot version
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// ownerKey maps a chat to its game session
func ownerKey(chatID int64) string {
	return fmt.Sprintf("tg:%d", chatID)
}

// Inline keyboard buttons
var (
	btnPlay = tele.Btn{
		Unique: "play",
		Text:   "🎯 Play",
	}
	btnRestart = tele.Btn{
		Unique: "restart",
		Text:   "🔄 Restart",
	}
	btnHistory = tele.Btn{
		Unique: "history",
		Text:   "🕘 History",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Main menu",
	}

	// Board buttons carry their coordinates in Data
	btnCell  = tele.Btn{Unique: "cell"}
	btnTitle = tele.Btn{Unique: "title"}
	btnEmpty = tele.Btn{Unique: "empty"}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnPlay),
		menu.Row(btnHistory),
	)
	return menu
}

// retryMarkup is shown after a board failed to load
func retryMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnPlay),
		menu.Row(btnMainMenu),
	)
	return menu
}
