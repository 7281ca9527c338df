package app

import (
	"context"
	"fmt"
	"log"

	"ai-trip-planner/internal/advisor"
	"ai-trip-planner/internal/config"
	"ai-trip-planner/internal/database"
	"ai-trip-planner/internal/metrics"
	"ai-trip-planner/internal/places"
	"ai-trip-planner/internal/schedule"
	"ai-trip-planner/internal/shared"
	"ai-trip-planner/internal/storage"
	"ai-trip-planner/internal/weather"
)

// Build wires a fully configured App from environment configuration. The
// returned cleanup releases the database and any advisor client.
func Build(ctx context.Context, cfg *config.Config) (*App, func(), error) {
	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	metricsStore := metrics.NewStore(db.SQL)

	timingAdvisor, advisorCleanup, err := buildAdvisor(ctx, cfg, metricsStore)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	policy := schedule.DefaultPolicy()
	if cfg.PolicyPath != "" {
		policy, err = schedule.LoadPolicy(cfg.PolicyPath)
		if err != nil {
			advisorCleanup()
			db.Close()
			return nil, nil, fmt.Errorf("failed to load policy: %w", err)
		}
	}

	var weatherClient weather.Client
	if cfg.WeatherAPIKey != "" && cfg.WeatherBaseURL != "" {
		weatherClient = weather.NewClient(cfg.WeatherAPIKey, cfg.WeatherBaseURL)
	}

	application := NewApp(
		places.NewClient(cfg.PlacesAPIKey, ""),
		weatherClient,
		schedule.NewBuilder(policy, timingAdvisor),
		storage.NewItineraryRepository(db.SQL),
		metricsStore,
		cfg,
	)

	cleanup := func() {
		advisorCleanup()
		if err := db.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}
	return application, cleanup, nil
}

func buildAdvisor(ctx context.Context, cfg *config.Config, metricsStore *metrics.Store) (advisor.TimingAdvisor, func(), error) {
	noop := func() {}

	switch cfg.AdvisorProvider {
	case "gemini":
		textGen, err := advisor.NewGeminiGenerator(ctx, cfg.GeminiAPIKey)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
		}
		llmAdvisor := advisor.NewLLMAdvisor(textGen)
		llmAdvisor.OnMeta = recordMeta(metricsStore)
		cleanup := noop
		if closer, ok := textGen.(advisor.Closer); ok {
			cleanup = func() {
				if err := closer.Close(); err != nil {
					log.Printf("Failed to close advisor client: %v", err)
				}
			}
		}
		return llmAdvisor, cleanup, nil
	case "openai":
		textGen := advisor.NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
		llmAdvisor := advisor.NewLLMAdvisor(textGen)
		llmAdvisor.OnMeta = recordMeta(metricsStore)
		return llmAdvisor, noop, nil
	case "rules":
		return advisor.RuleAdvisor{}, noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown advisor provider %q", cfg.AdvisorProvider)
	}
}

func recordMeta(store *metrics.Store) func(shared.AdvisorMeta) {
	return func(meta shared.AdvisorMeta) {
		if err := store.RecordMeta(meta); err != nil {
			log.Printf("Failed to record advisor metrics: %v", err)
		}
	}
}
