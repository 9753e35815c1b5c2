package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setRequired sets the variables Load refuses to start without
func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("BOT_PASSWORD", "test_password")
	t.Setenv("DB_PASSWORD", "test_db_password")
}

// clearOptional blanks optional variables so defaults apply
func clearOptional(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HTTP_ADDR", "DB_HOST", "DB_PORT", "DB_NAME", "DB_USER",
		"BOARD_WIDTH", "BOARD_HEIGHT", "TRIVIA_API_URL",
		"TRIVIA_MAX_CATEGORY_ID", "GAME_RETENTION_DAYS", "SESSION_IDLE_MINUTES",
	} {
		t.Setenv(key, "")
	}
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable empty",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			envValue:     "",
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.envValue)
			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name          string
		envValue      string
		expected      int
		expectedError bool
	}{
		{name: "default when empty", envValue: "", expected: 7},
		{name: "parsed value", envValue: "12", expected: 12},
		{name: "not a number", envValue: "six", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT_KEY", tt.envValue)
			result, err := getEnvInt("TEST_INT_KEY", 7)
			if tt.expectedError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "TEST_INT_KEY")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestLoad_WithDefaults(t *testing.T) {
	clearOptional(t)
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, "test_password", cfg.BotPassword)
	assert.Equal(t, "", cfg.HTTPAddr)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "jeopardy", cfg.Database.Name)
	assert.Equal(t, "jeopardy", cfg.Database.User)
	assert.Equal(t, 6, cfg.Board.Width)
	assert.Equal(t, 5, cfg.Board.Height)
	assert.Equal(t, "https://jservice.io/api", cfg.Trivia.BaseURL)
	assert.Equal(t, 10000, cfg.Trivia.MaxCategoryID)
	assert.Equal(t, 60, cfg.RetentionDays)
	assert.Equal(t, 2*time.Hour, cfg.SessionIdle)
}

func TestLoad_Overrides(t *testing.T) {
	clearOptional(t)
	setRequired(t)
	t.Setenv("HTTP_ADDR", ":8080")
	t.Setenv("BOARD_WIDTH", "4")
	t.Setenv("BOARD_HEIGHT", "3")
	t.Setenv("TRIVIA_API_URL", "http://trivia.local/api")
	t.Setenv("TRIVIA_MAX_CATEGORY_ID", "500")
	t.Setenv("SESSION_IDLE_MINUTES", "15")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 4, cfg.Board.Width)
	assert.Equal(t, 3, cfg.Board.Height)
	assert.Equal(t, "http://trivia.local/api", cfg.Trivia.BaseURL)
	assert.Equal(t, 500, cfg.Trivia.MaxCategoryID)
	assert.Equal(t, 15*time.Minute, cfg.SessionIdle)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T)
		contains string
	}{
		{
			name:     "missing bot token",
			setup:    func(t *testing.T) { t.Setenv("BOT_TOKEN", "") },
			contains: "BOT_TOKEN",
		},
		{
			name:     "missing bot password",
			setup:    func(t *testing.T) { t.Setenv("BOT_PASSWORD", "") },
			contains: "BOT_PASSWORD",
		},
		{
			name:     "missing db password",
			setup:    func(t *testing.T) { t.Setenv("DB_PASSWORD", "") },
			contains: "DB_PASSWORD",
		},
		{
			name:     "board too wide",
			setup:    func(t *testing.T) { t.Setenv("BOARD_WIDTH", "9") },
			contains: "BOARD_WIDTH",
		},
		{
			name:     "zero height",
			setup:    func(t *testing.T) { t.Setenv("BOARD_HEIGHT", "0") },
			contains: "BOARD_HEIGHT",
		},
		{
			name:     "non numeric width",
			setup:    func(t *testing.T) { t.Setenv("BOARD_WIDTH", "wide") },
			contains: "BOARD_WIDTH",
		},
		{
			name:     "zero category space",
			setup:    func(t *testing.T) { t.Setenv("TRIVIA_MAX_CATEGORY_ID", "0") },
			contains: "TRIVIA_MAX_CATEGORY_ID",
		},
		{
			name:     "zero session idle",
			setup:    func(t *testing.T) { t.Setenv("SESSION_IDLE_MINUTES", "0") },
			contains: "SESSION_IDLE_MINUTES",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearOptional(t)
			setRequired(t)
			tt.setup(t)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}
