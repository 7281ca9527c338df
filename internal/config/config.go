package config

import (
	"fmt"
	"os"
)

// Config holds the configuration for the application.
type Config struct {
	PlacesAPIKey  string
	GeminiAPIKey  string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	WeatherAPIKey  string
	WeatherBaseURL string

	// AdvisorProvider selects which timing advisor backs classification:
	// "gemini", "openai", or "rules".
	AdvisorProvider string

	DatabasePath string
	PolicyPath   string
	ServerAddr   string
}

// NewFromEnv creates a new Config object from environment variables.
func NewFromEnv() (*Config, error) {
	placesAPIKey := os.Getenv("PLACES_API_KEY")
	if placesAPIKey == "" {
		return nil, fmt.Errorf("PLACES_API_KEY environment variable not set")
	}

	geminiAPIKey := os.Getenv("GEMINI_API_KEY")
	openAIAPIKey := os.Getenv("OPENAI_API_KEY")

	advisorProvider := os.Getenv("ADVISOR_PROVIDER")
	if advisorProvider == "" {
		// Pick a sensible default from whichever key is present
		switch {
		case geminiAPIKey != "":
			advisorProvider = "gemini"
		case openAIAPIKey != "":
			advisorProvider = "openai"
		default:
			advisorProvider = "rules"
		}
	}
	switch advisorProvider {
	case "gemini":
		if geminiAPIKey == "" {
			return nil, fmt.Errorf("ADVISOR_PROVIDER=gemini requires GEMINI_API_KEY")
		}
	case "openai":
		if openAIAPIKey == "" {
			return nil, fmt.Errorf("ADVISOR_PROVIDER=openai requires OPENAI_API_KEY")
		}
	case "rules":
	default:
		return nil, fmt.Errorf("unknown ADVISOR_PROVIDER %q (expected gemini, openai or rules)", advisorProvider)
	}

	databasePath := os.Getenv("TRIP_PLANNER_DB_PATH")
	if databasePath == "" {
		databasePath = "data/trip-planner.db"
	}

	serverAddr := os.Getenv("TRIP_PLANNER_SERVER_ADDR")
	if serverAddr == "" {
		serverAddr = ":8080"
	}

	return &Config{
		PlacesAPIKey:    placesAPIKey,
		GeminiAPIKey:    geminiAPIKey,
		OpenAIAPIKey:    openAIAPIKey,
		OpenAIBaseURL:   os.Getenv("OPENAI_BASE_URL"),
		OpenAIModel:     os.Getenv("OPENAI_MODEL"),
		WeatherAPIKey:   os.Getenv("WEATHER_API_KEY"),
		WeatherBaseURL:  os.Getenv("WEATHER_API_URL"),
		AdvisorProvider: advisorProvider,
		DatabasePath:    databasePath,
		PolicyPath:      os.Getenv("TRIP_PLANNER_POLICY_PATH"),
		ServerAddr:      serverAddr,
	}, nil
}
