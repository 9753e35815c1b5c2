package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken      string
	BotPassword   string
	HTTPAddr      string
	RetentionDays int
	SessionIdle   time.Duration
	Database      DatabaseConfig
	Board         BoardConfig
	Trivia        TriviaConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// BoardConfig holds the board dimensions, fixed for the process lifetime
type BoardConfig struct {
	Width  int
	Height int
}

// TriviaConfig holds settings for the remote trivia API
type TriviaConfig struct {
	BaseURL       string
	MaxCategoryID int
}

// Telegram allows at most 8 buttons per inline keyboard row
const (
	maxBoardWidth  = 8
	maxBoardHeight = 10
)

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:    os.Getenv("BOT_TOKEN"),
		BotPassword: os.Getenv("BOT_PASSWORD"),
		HTTPAddr:    os.Getenv("HTTP_ADDR"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "jeopardy"),
			User:     getEnv("DB_USER", "jeopardy"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		Trivia: TriviaConfig{
			BaseURL: getEnv("TRIVIA_API_URL", "https://jservice.io/api"),
		},
	}

	var err error
	if cfg.Board.Width, err = getEnvInt("BOARD_WIDTH", 6); err != nil {
		return nil, err
	}
	if cfg.Board.Height, err = getEnvInt("BOARD_HEIGHT", 5); err != nil {
		return nil, err
	}
	if cfg.Trivia.MaxCategoryID, err = getEnvInt("TRIVIA_MAX_CATEGORY_ID", 10000); err != nil {
		return nil, err
	}
	if cfg.RetentionDays, err = getEnvInt("GAME_RETENTION_DAYS", 60); err != nil {
		return nil, err
	}
	idleMinutes, err := getEnvInt("SESSION_IDLE_MINUTES", 120)
	if err != nil {
		return nil, err
	}
	cfg.SessionIdle = time.Duration(idleMinutes) * time.Minute

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.BotPassword == "" {
		return nil, fmt.Errorf("BOT_PASSWORD is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	if cfg.Board.Width < 1 || cfg.Board.Width > maxBoardWidth {
		return nil, fmt.Errorf("BOARD_WIDTH must be between 1 and %d", maxBoardWidth)
	}
	if cfg.Board.Height < 1 || cfg.Board.Height > maxBoardHeight {
		return nil, fmt.Errorf("BOARD_HEIGHT must be between 1 and %d", maxBoardHeight)
	}
	if cfg.Trivia.MaxCategoryID < 1 {
		return nil, fmt.Errorf("TRIVIA_MAX_CATEGORY_ID must be positive")
	}
	if cfg.RetentionDays < 1 {
		return nil, fmt.Errorf("GAME_RETENTION_DAYS must be positive")
	}
	if cfg.SessionIdle <= 0 {
		return nil, fmt.Errorf("SESSION_IDLE_MINUTES must be positive")
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}
