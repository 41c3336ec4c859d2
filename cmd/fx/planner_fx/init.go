package planner_fx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"tripweaver/internal/repositories"
	"tripweaver/internal/services"
	"tripweaver/pkg/utils"
)

var Module = fx.Provide(
	providePlannerService, provideCompletionClient)

// provideCompletionClient picks the configured AI provider. A missing API key
// is tolerated here so the rest of the API can serve; the client reports it
// per request instead.
func provideCompletionClient() utils.CompletionClientInterface {
	provider := os.Getenv("PLANNER_PROVIDER")
	if provider == "" {
		provider = "openai"
	}

	var apiKey, model string
	switch provider {
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = os.Getenv("GEMINI_MODEL")
	default:
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = os.Getenv("OPENAI_MODEL")
	}

	client, err := utils.NewCompletionClient(provider, apiKey, model)
	if err != nil {
		log.Fatalf("Failed to create completion client: %v", err)
	}
	return client
}

func providePlannerService(
	destinationRepo repositories.DestinationRepository,
	tripRepo repositories.TripRepository,
	aiClient utils.CompletionClientInterface,
) services.PlannerServiceInterface {
	return services.NewPlannerService(destinationRepo, tripRepo, aiClient)
}
