package internal

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvEnvironment = "ENVIRONMENT"
	EnvStartDate   = "START_DATE"
	EnvEndDate     = "END_DATE"
	EnvTestMode    = "TEST"
	EnvLogLevel    = "LOG_LEVEL"

	EnvSquareBaseURL     = "SQUARE_API_BASE_URL"
	EnvSquareAccessToken = "SQUARE_ACCESS_TOKEN"

	// Per-location tokens, e.g. SQUARE_TOKEN_LOCATION_2 for internal id 2.
	// Locations without one fall back to SQUARE_ACCESS_TOKEN.
	locationTokenPrefix = "SQUARE_TOKEN_LOCATION_"
)

const (
	defaultSquareBaseURL = "https://connect.squareup.com/v2"
	defaultLogLevel      = "info"
)

type Config struct {
	Environment    string
	DatabaseDSN    string
	SquareBaseURL  string
	SquareToken    string
	LocationTokens map[int]string
	StartDate      string
	EndDate        string
	TestMode       bool
	LogLevel       string
}

// NewConfig loads .env (if present) and assembles the process configuration.
// Missing database variables or a missing default Square token fail fast,
// before any work starts.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	c := new(Config)

	c.Environment = strings.ToLower(setEnvOrDefault(EnvEnvironment, "development"))
	if c.Environment != "development" && c.Environment != "production" {
		return nil, fmt.Errorf("invalid %s value %q, must be development or production", EnvEnvironment, c.Environment)
	}

	dsn, err := buildDatabaseDSN(c.Environment)
	if err != nil {
		return nil, err
	}
	c.DatabaseDSN = dsn

	c.SquareBaseURL = setEnvOrDefault(EnvSquareBaseURL, defaultSquareBaseURL)
	c.SquareToken = os.Getenv(EnvSquareAccessToken)
	if c.SquareToken == "" {
		return nil, fmt.Errorf("missing %s", EnvSquareAccessToken)
	}
	c.LocationTokens = locationTokensFromEnv()

	c.StartDate = os.Getenv(EnvStartDate)
	c.EndDate = os.Getenv(EnvEndDate)
	c.TestMode = parseBool(os.Getenv(EnvTestMode))

	c.LogLevel = strings.ToLower(setEnvOrDefault(EnvLogLevel, defaultLogLevel))
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid %s value %q", EnvLogLevel, c.LogLevel)
	}

	return c, nil
}

// buildDatabaseDSN selects the variable set for the environment. Production
// reads PROD_DB_* first and falls back to the non-prefixed names so the same
// binary works under CI secrets and local .env files.
func buildDatabaseDSN(environment string) (string, error) {
	var host, port, name, user, password, sslmode string

	if environment == "development" {
		host = os.Getenv("LOCAL_DB_HOST")
		port = setEnvOrDefault("LOCAL_DB_PORT", "5432")
		name = os.Getenv("LOCAL_DB_NAME")
		user = os.Getenv("LOCAL_DB_USER")
		password = os.Getenv("LOCAL_DB_PASSWORD")
		sslmode = "disable"
	} else {
		host = envOr("PROD_DB_HOST", "DB_HOST")
		port = envOr("PROD_DB_PORT", "DB_PORT")
		if port == "" {
			port = "5432"
		}
		name = envOr("PROD_DB_NAME", "DB_NAME")
		user = envOr("PROD_DB_USER", "DB_USER")
		password = envOr("PROD_DB_PASSWORD", "DB_PASSWORD")
		sslmode = "require"
	}

	var missing []string
	if host == "" {
		missing = append(missing, "DB_HOST")
	}
	if name == "" {
		missing = append(missing, "DB_NAME")
	}
	if user == "" {
		missing = append(missing, "DB_USER")
	}
	if password == "" {
		missing = append(missing, "DB_PASSWORD")
	}
	if len(missing) > 0 {
		return "", fmt.Errorf("missing %s database configuration: %s", environment, strings.Join(missing, ", "))
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, name, sslmode), nil
}

func locationTokensFromEnv() map[int]string {
	tokens := make(map[int]string)
	for _, kv := range os.Environ() {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 || !strings.HasPrefix(parts[0], locationTokenPrefix) {
			continue
		}
		id, err := strconv.Atoi(strings.TrimPrefix(parts[0], locationTokenPrefix))
		if err != nil || parts[1] == "" {
			continue
		}
		tokens[id] = parts[1]
	}
	return tokens
}

func setEnvOrDefault(env, def string) string {
	res, e := os.LookupEnv(env)
	if !e {
		res = def
	}
	return res
}

func envOr(primary, fallback string) string {
	if v := os.Getenv(primary); v != "" {
		return v
	}
	return os.Getenv(fallback)
}

func parseBool(v string) bool {
	switch strings.ToLower(v) {
	case "true", "1", "yes":
		return true
	}
	return false
}
