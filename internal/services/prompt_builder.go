package services

import (
	"fmt"
	"strings"
)

const defaultInterests = "general sightseeing, food, and popular attractions"

// planSchemaBlock spells out the exact response shape, including the allowed
// timeOfDay and type values. The model is told to include activity coordinates
// only when it knows them.
const planSchemaBlock = `{
  "itinerary": [
    {
      "day": 1,
      "title": "string",
      "summary": "string",
      "activities": [
        {
          "timeOfDay": "morning|afternoon|evening",
          "name": "string",
          "type": "sightseeing|food|nature|adventure|culture|shopping|other",
          "approxCost": number,
          "notes": "string",
          "latitude": number (optional, approximate latitude of the activity location),
          "longitude": number (optional, approximate longitude of the activity location)
        }
      ]
    }
  ],
  "budgetBreakdown": {
    "currency": "USD",
    "total": number,
    "accommodationPerNight": number,
    "foodPerDay": number,
    "transportPerDay": number,
    "activitiesPerDay": number,
    "notes": "string"
  }
}`

// PromptInput carries everything the instruction depends on. Rendering is
// deterministic: identical inputs produce a byte-identical string.
type PromptInput struct {
	DestinationName    string
	DestinationCountry string
	Latitude           *float64
	Longitude          *float64
	DurationDays       int
	Budget             float64
	Interests          []string
}

func BuildItineraryPrompt(in PromptInput) string {
	destinationLine := fmt.Sprintf("%s, %s", in.DestinationName, in.DestinationCountry)
	if in.Latitude != nil && in.Longitude != nil {
		destinationLine += fmt.Sprintf(" (Coordinates: %v, %v)", *in.Latitude, *in.Longitude)
	}

	return fmt.Sprintf(`You are a smart travel planner API. Given a destination and constraints, return a detailed JSON itinerary and budget.

Return strict JSON (no markdown, no explanation) with this shape:
%s

Destination: %s
Trip duration: %d days
Total budget: %v
User interests: %s

IMPORTANT: For each activity, if you know the approximate location, include latitude and longitude coordinates. These will be used to display the activities on a map. If you're unsure of exact coordinates, you can estimate based on the destination's location or omit them.`,
		planSchemaBlock,
		destinationLine,
		in.DurationDays,
		in.Budget,
		joinInterests(in.Interests))
}

// joinInterests joins distinct interests with ", " preserving input order, or
// substitutes a fixed phrase when the list is empty.
func joinInterests(interests []string) string {
	seen := make(map[string]bool)
	var distinct []string
	for _, interest := range interests {
		if interest == "" || seen[interest] {
			continue
		}
		seen[interest] = true
		distinct = append(distinct, interest)
	}

	if len(distinct) == 0 {
		return defaultInterests
	}
	return strings.Join(distinct, ", ")
}
