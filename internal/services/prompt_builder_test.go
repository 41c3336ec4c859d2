package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildItineraryPromptDeterministic(t *testing.T) {
	in := PromptInput{
		DestinationName:    "Paris",
		DestinationCountry: "France",
		DurationDays:       5,
		Budget:             1500,
		Interests:          []string{"food", "culture"},
	}

	first := BuildItineraryPrompt(in)
	second := BuildItineraryPrompt(in)
	assert.Equal(t, first, second)

	assert.Contains(t, first, "Destination: Paris, France")
	assert.Contains(t, first, "Trip duration: 5 days")
	assert.Contains(t, first, "Total budget: 1500")
	assert.Contains(t, first, "User interests: food, culture")
}

func TestBuildItineraryPromptDefaultInterests(t *testing.T) {
	prompt := BuildItineraryPrompt(PromptInput{
		DestinationName:    "Lisbon",
		DestinationCountry: "Portugal",
		DurationDays:       3,
		Budget:             800,
	})

	assert.Contains(t, prompt, "User interests: general sightseeing, food, and popular attractions")
}

func TestBuildItineraryPromptDedupesInterests(t *testing.T) {
	prompt := BuildItineraryPrompt(PromptInput{
		DestinationName:    "Rome",
		DestinationCountry: "Italy",
		DurationDays:       4,
		Budget:             1000,
		Interests:          []string{"food", "history", "food", ""},
	})

	assert.Contains(t, prompt, "User interests: food, history")
	assert.Equal(t, 1, strings.Count(prompt, "food, history"))
}

func TestBuildItineraryPromptCoordinates(t *testing.T) {
	lat, lng := 35.0116, 135.7681
	withCoords := BuildItineraryPrompt(PromptInput{
		DestinationName:    "Kyoto",
		DestinationCountry: "Japan",
		Latitude:           &lat,
		Longitude:          &lng,
		DurationDays:       7,
		Budget:             2500,
	})
	assert.Contains(t, withCoords, "Destination: Kyoto, Japan (Coordinates: 35.0116, 135.7681)")

	withoutCoords := BuildItineraryPrompt(PromptInput{
		DestinationName:    "Kyoto",
		DestinationCountry: "Japan",
		DurationDays:       7,
		Budget:             2500,
	})
	assert.NotContains(t, withoutCoords, "Coordinates")
}

func TestBuildItineraryPromptSchemaEnums(t *testing.T) {
	prompt := BuildItineraryPrompt(PromptInput{
		DestinationName:    "Hanoi",
		DestinationCountry: "Vietnam",
		DurationDays:       2,
		Budget:             400,
	})

	assert.Contains(t, prompt, "morning|afternoon|evening")
	assert.Contains(t, prompt, "sightseeing|food|nature|adventure|culture|shopping|other")
	assert.Contains(t, prompt, "budgetBreakdown")
	assert.Contains(t, prompt, "Return strict JSON")
}
