package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/lib/pq"
	"tripweaver/internal/models/db_models"
	"tripweaver/internal/models/request_models"
	"tripweaver/internal/models/response_models"
	"tripweaver/internal/repositories"
	"tripweaver/pkg/utils"
)

const tripDateLayout = "2006-01-02"

type PlannerServiceInterface interface {
	// PlanTrip runs the full pipeline: guard, prompt, completion, extraction,
	// assembly and optional persistence. callerId is nil for anonymous
	// requests. Failures are terminal; nothing is retried and a trip is only
	// written after extraction succeeds.
	PlanTrip(ctx context.Context, req request_models.PlanTripRequest, callerId *uint) (*response_models.PlanResult, error)
}

type PlannerService struct {
	destinationRepo repositories.DestinationRepository
	tripRepo        repositories.TripRepository
	aiClient        utils.CompletionClientInterface
}

func NewPlannerService(
	destinationRepo repositories.DestinationRepository,
	tripRepo repositories.TripRepository,
	aiClient utils.CompletionClientInterface,
) PlannerServiceInterface {
	return &PlannerService{
		destinationRepo: destinationRepo,
		tripRepo:        tripRepo,
		aiClient:        aiClient,
	}
}

func (p *PlannerService) PlanTrip(ctx context.Context, req request_models.PlanTripRequest, callerId *uint) (*response_models.PlanResult, error) {
	if DecideAccess(req.SaveTrip, callerId != nil) == RejectUnauthorized {
		return nil, utils.ErrSaveRequiresAuth
	}

	var startDate, endDate time.Time
	if req.SaveTrip {
		if req.StartDate == "" || req.EndDate == "" {
			return nil, utils.ErrMissingTripDates
		}
		var err error
		startDate, err = time.Parse(tripDateLayout, req.StartDate)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		endDate, err = time.Parse(tripDateLayout, req.EndDate)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
	}

	destination, err := p.destinationRepo.FindDestinationById(ctx, req.DestinationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if destination == nil {
		return nil, utils.ErrDestinationNotFound
	}

	prompt := BuildItineraryPrompt(PromptInput{
		DestinationName:    destination.Name,
		DestinationCountry: destination.Country,
		Latitude:           destination.Latitude,
		Longitude:          destination.Longitude,
		DurationDays:       req.DurationDays,
		Budget:             req.Budget,
		Interests:          req.Interests,
	})

	raw, err := p.aiClient.GenerateItinerary(ctx, prompt)
	if err != nil {
		if errors.Is(err, utils.ErrProviderNotConfigured) || errors.Is(err, utils.ErrEmptyCompletion) {
			return nil, err
		}
		log.Printf("AI generation error: %v", err)
		return nil, utils.ErrEmptyCompletion
	}

	extracted, err := utils.ExtractJSONObject(raw)
	if err != nil {
		return nil, err
	}

	var payload response_models.PlanPayload
	if err := json.Unmarshal(extracted, &payload); err != nil {
		log.Printf("Extracted JSON does not match plan shape: %v", err)
		return nil, utils.ErrCompletionNotJSON
	}

	// The response always echoes what the caller asked for; the model's
	// output never overrides stated constraints.
	result := &response_models.PlanResult{
		Destination: response_models.DestinationSummary{
			ID:        destination.ID,
			Name:      destination.Name,
			Country:   destination.Country,
			Latitude:  destination.Latitude,
			Longitude: destination.Longitude,
		},
		DurationDays:    req.DurationDays,
		Budget:          req.Budget,
		Interests:       req.Interests,
		Itinerary:       payload.Itinerary,
		BudgetBreakdown: payload.BudgetBreakdown,
	}

	if req.SaveTrip {
		trip, err := p.saveTrip(ctx, req, destination, &payload, *callerId, startDate, endDate)
		if err != nil {
			return nil, err
		}
		result.Trip = trip
	}

	return result, nil
}

func (p *PlannerService) saveTrip(
	ctx context.Context,
	req request_models.PlanTripRequest,
	destination *db_models.Destination,
	payload *response_models.PlanPayload,
	ownerId uint,
	startDate, endDate time.Time,
) (*response_models.TripResponse, error) {

	title := req.Title
	if title == "" {
		title = fmt.Sprintf("Trip to %s (%d days, budget %v)", destination.Name, req.DurationDays, req.Budget)
	}

	itineraryJSON, err := json.Marshal(payload.Itinerary)
	if err != nil {
		return nil, utils.ErrCompletionNotJSON
	}
	breakdownJSON, err := json.Marshal(payload.BudgetBreakdown)
	if err != nil {
		return nil, utils.ErrCompletionNotJSON
	}

	trip := &db_models.Trip{
		Title:           title,
		StartDate:       startDate,
		EndDate:         endDate,
		DurationDays:    req.DurationDays,
		TotalBudget:     req.Budget,
		Interests:       pq.StringArray(req.Interests),
		Itinerary:       itineraryJSON,
		BudgetBreakdown: breakdownJSON,
		DestinationID:   destination.ID,
		OwnerID:         ownerId,
	}
	if err := p.tripRepo.Insert(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	trip.Destination = destination
	resp := BuildTripResponse(trip)
	return &resp, nil
}
