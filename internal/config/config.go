package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"rift-scout/internal/constants"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	RiotAPIKey  string
	RiotBaseURL string
	RiotTimeout time.Duration
	ServerPort  string
	LogLevel    string
	MatchCount  int
	Live        LiveThresholds
}

// LiveThresholds drive the presentation tags attached to live-game participants.
type LiveThresholds struct {
	SmurfWinRate  float64
	SmurfMinGames int
	GodPoints     int
	OTPPoints     int
	NewPoints     int
}

type ClientConfig struct {
	ProxyURL   string
	DDragonURL string
	DBPath     string
	LogLevel   string
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		RiotAPIKey:  getEnv("RIOT_API_KEY", ""),
		RiotBaseURL: getEnv("RIOT_BASE_URL", "https://{host}.api.riotgames.com"),
		RiotTimeout: getEnvDuration("RIOT_TIMEOUT", constants.ExternalAPITimeout),
		ServerPort:  getEnv("PORT", "5000"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		MatchCount:  getEnvInt("MATCH_COUNT", constants.MatchCount),
		Live: LiveThresholds{
			SmurfWinRate:  getEnvFloat("SMURF_WIN_RATE", 70),
			SmurfMinGames: getEnvInt("SMURF_MIN_GAMES", 10),
			GodPoints:     getEnvInt("GOD_POINTS", 1_000_000),
			OTPPoints:     getEnvInt("OTP_POINTS", 500_000),
			NewPoints:     getEnvInt("NEW_POINTS", 5_000),
		},
	}

	if cfg.RiotAPIKey == "" {
		return nil, fmt.Errorf("RIOT_API_KEY is required")
	}
	if cfg.MatchCount <= 0 {
		return nil, fmt.Errorf("MATCH_COUNT must be positive, got %d", cfg.MatchCount)
	}

	logger.Info().
		Str("riot_base_url", cfg.RiotBaseURL).
		Dur("riot_timeout", cfg.RiotTimeout).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Int("match_count", cfg.MatchCount).
		Msg("configuration loaded")

	return cfg, nil
}

func LoadClient(logger zerolog.Logger) *ClientConfig {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	return &ClientConfig{
		ProxyURL:   getEnv("SCOUT_PROXY_URL", "http://localhost:5000"),
		DDragonURL: getEnv("SCOUT_DDRAGON_URL", "https://ddragon.leagueoflegends.com"),
		DBPath:     getEnv("SCOUT_DB_PATH", "scout.db"),
		LogLevel:   getEnv("LOG_LEVEL", "warn"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

var Module = fx.Provide(Load)
