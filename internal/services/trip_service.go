package services

import (
	"context"
	"time"

	"tripweaver/internal/models/db_models"
	"tripweaver/internal/models/request_models"
	"tripweaver/internal/models/response_models"
	"tripweaver/internal/repositories"
	"tripweaver/pkg/utils"
)

type TripServiceInterface interface {
	GetListOfTripsByOwner(ctx context.Context, page int, pageSize int, ownerId uint) ([]response_models.TripResponse, error)
	GetTripById(ctx context.Context, tripId uint, callerId uint) (*response_models.TripResponse, error)
	UpdateTrip(ctx context.Context, tripId uint, callerId uint, req request_models.UpdateTripRequest) (*response_models.TripResponse, error)
	DeleteTrip(ctx context.Context, tripId uint, callerId uint) error
}

type TripService struct {
	tripRepo repositories.TripRepository
}

func NewTripService(tripRepo repositories.TripRepository) TripServiceInterface {
	return &TripService{tripRepo: tripRepo}
}

// isOwner is the single ownership predicate applied by every record-level
// operation on trips.
func isOwner(trip *db_models.Trip, callerId uint) bool {
	return trip.OwnerID == callerId
}

func (t *TripService) GetListOfTripsByOwner(ctx context.Context, page int, pageSize int, ownerId uint) ([]response_models.TripResponse, error) {
	trips, err := t.tripRepo.ListByOwner(ctx, ownerId, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, BuildTripResponse(&trips[i]))
	}
	return out, nil
}

func (t *TripService) GetTripById(ctx context.Context, tripId uint, callerId uint) (*response_models.TripResponse, error) {
	trip, err := t.fetchOwnedTrip(ctx, tripId, callerId)
	if err != nil {
		return nil, err
	}
	resp := BuildTripResponse(trip)
	return &resp, nil
}

func (t *TripService) UpdateTrip(ctx context.Context, tripId uint, callerId uint, req request_models.UpdateTripRequest) (*response_models.TripResponse, error) {
	trip, err := t.fetchOwnedTrip(ctx, tripId, callerId)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		trip.Title = req.Title
	}
	if req.StartDate != "" {
		start, err := time.Parse(tripDateLayout, req.StartDate)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		trip.StartDate = start
	}
	if req.EndDate != "" {
		end, err := time.Parse(tripDateLayout, req.EndDate)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		trip.EndDate = end
	}
	if trip.EndDate.Before(trip.StartDate) {
		return nil, utils.ErrInvalidInput
	}

	if err := t.tripRepo.Update(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := BuildTripResponse(trip)
	return &resp, nil
}

func (t *TripService) DeleteTrip(ctx context.Context, tripId uint, callerId uint) error {
	trip, err := t.fetchOwnedTrip(ctx, tripId, callerId)
	if err != nil {
		return err
	}
	if err := t.tripRepo.Delete(ctx, trip.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (t *TripService) fetchOwnedTrip(ctx context.Context, tripId uint, callerId uint) (*db_models.Trip, error) {
	trip, err := t.tripRepo.FindById(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	if !isOwner(trip, callerId) {
		return nil, utils.ErrNotTripOwner
	}
	return trip, nil
}

func BuildTripResponse(trip *db_models.Trip) response_models.TripResponse {
	resp := response_models.TripResponse{
		ID:              trip.ID,
		Title:           trip.Title,
		StartDate:       trip.StartDate.Format(tripDateLayout),
		EndDate:         trip.EndDate.Format(tripDateLayout),
		DurationDays:    trip.DurationDays,
		TotalBudget:     trip.TotalBudget,
		Interests:       []string(trip.Interests),
		Itinerary:       trip.Itinerary,
		BudgetBreakdown: trip.BudgetBreakdown,
	}
	if trip.Destination != nil {
		resp.Destination = &response_models.DestinationSummary{
			ID:        trip.Destination.ID,
			Name:      trip.Destination.Name,
			Country:   trip.Destination.Country,
			Latitude:  trip.Destination.Latitude,
			Longitude: trip.Destination.Longitude,
		}
	}
	return resp
}
