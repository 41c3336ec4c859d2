package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripweaver/internal/models/db_models"
	"tripweaver/internal/models/request_models"
	"tripweaver/pkg/utils"
)

type fakeDestinationRepo struct {
	destination *db_models.Destination
	err         error
}

func (f *fakeDestinationRepo) ListDestinations(ctx context.Context, page int, pageSize int) ([]db_models.Destination, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.destination == nil {
		return nil, nil
	}
	return []db_models.Destination{*f.destination}, nil
}

func (f *fakeDestinationRepo) FindDestinationById(ctx context.Context, id uint) (*db_models.Destination, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.destination == nil || f.destination.ID != id {
		return nil, nil
	}
	return f.destination, nil
}

func (f *fakeDestinationRepo) FindDestinationWithContent(ctx context.Context, id uint) (*db_models.Destination, error) {
	return f.FindDestinationById(ctx, id)
}

func (f *fakeDestinationRepo) ListAttractionsByDestination(ctx context.Context, destinationId uint) ([]db_models.Attraction, error) {
	return nil, f.err
}

func (f *fakeDestinationRepo) ListHotelsByDestination(ctx context.Context, destinationId uint) ([]db_models.Hotel, error) {
	return nil, f.err
}

func (f *fakeDestinationRepo) ListRestaurantsByDestination(ctx context.Context, destinationId uint) ([]db_models.Restaurant, error) {
	return nil, f.err
}

type fakeTripRepo struct {
	inserted []*db_models.Trip
	trips    map[uint]*db_models.Trip
	err      error
	deleted  []uint
}

func newFakeTripRepo() *fakeTripRepo {
	return &fakeTripRepo{trips: make(map[uint]*db_models.Trip)}
}

func (f *fakeTripRepo) Insert(ctx context.Context, trip *db_models.Trip) error {
	if f.err != nil {
		return f.err
	}
	trip.ID = uint(len(f.inserted) + 1)
	f.inserted = append(f.inserted, trip)
	f.trips[trip.ID] = trip
	return nil
}

func (f *fakeTripRepo) ListByOwner(ctx context.Context, ownerId uint, page int, pageSize int) ([]db_models.Trip, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.Trip
	for _, trip := range f.inserted {
		if trip.OwnerID == ownerId {
			out = append(out, *trip)
		}
	}
	return out, nil
}

func (f *fakeTripRepo) FindById(ctx context.Context, id uint) (*db_models.Trip, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.trips[id], nil
}

func (f *fakeTripRepo) Update(ctx context.Context, trip *db_models.Trip) error {
	if f.err != nil {
		return f.err
	}
	f.trips[trip.ID] = trip
	return nil
}

func (f *fakeTripRepo) Delete(ctx context.Context, id uint) error {
	if f.err != nil {
		return f.err
	}
	delete(f.trips, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeCompletionClient struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeCompletionClient) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

const validCompletion = `{
  "itinerary": [
    {
      "day": 1,
      "title": "Old town on foot",
      "summary": "Temples and markets",
      "activities": [
        {"timeOfDay": "morning", "name": "Fushimi Inari", "type": "sightseeing", "approxCost": 0, "notes": "go early"}
      ]
    }
  ],
  "budgetBreakdown": {
    "currency": "USD",
    "total": 2500,
    "accommodationPerNight": 120,
    "foodPerDay": 40,
    "transportPerDay": 15,
    "activitiesPerDay": 30,
    "notes": "estimates"
  }
}`

func kyotoDestination() *db_models.Destination {
	lat, lng := 35.0116, 135.7681
	return &db_models.Destination{
		BaseModel: db_models.BaseModel{ID: 7},
		Name:      "Kyoto",
		Country:   "Japan",
		Latitude:  &lat,
		Longitude: &lng,
	}
}

func planRequest() request_models.PlanTripRequest {
	return request_models.PlanTripRequest{
		DestinationID: 7,
		Budget:        2500,
		DurationDays:  7,
		Interests:     []string{"culture", "food"},
	}
}

func TestPlanTripAnonymous(t *testing.T) {
	tripRepo := newFakeTripRepo()
	ai := &fakeCompletionClient{response: validCompletion}
	svc := NewPlannerService(&fakeDestinationRepo{destination: kyotoDestination()}, tripRepo, ai)

	result, err := svc.PlanTrip(context.Background(), planRequest(), nil)
	require.NoError(t, err)

	assert.Equal(t, "Kyoto", result.Destination.Name)
	assert.Equal(t, 7, result.DurationDays)
	assert.Equal(t, 2500.0, result.Budget)
	assert.Equal(t, []string{"culture", "food"}, result.Interests)
	require.Len(t, result.Itinerary, 1)
	assert.Equal(t, "USD", result.BudgetBreakdown.Currency)

	assert.Nil(t, result.Trip)
	assert.Empty(t, tripRepo.inserted)
}

func TestPlanTripPromptCarriesConstraints(t *testing.T) {
	ai := &fakeCompletionClient{response: validCompletion}
	svc := NewPlannerService(&fakeDestinationRepo{destination: kyotoDestination()}, newFakeTripRepo(), ai)

	_, err := svc.PlanTrip(context.Background(), planRequest(), nil)
	require.NoError(t, err)

	require.Len(t, ai.prompts, 1)
	assert.Contains(t, ai.prompts[0], "Kyoto, Japan (Coordinates: 35.0116, 135.7681)")
	assert.Contains(t, ai.prompts[0], "Trip duration: 7 days")
	assert.Contains(t, ai.prompts[0], "Total budget: 2500")
	assert.Contains(t, ai.prompts[0], "User interests: culture, food")
}

func TestPlanTripSaveRequiresAuth(t *testing.T) {
	ai := &fakeCompletionClient{response: validCompletion}
	svc := NewPlannerService(&fakeDestinationRepo{destination: kyotoDestination()}, newFakeTripRepo(), ai)

	req := planRequest()
	req.SaveTrip = true
	req.StartDate = "2026-04-01"
	req.EndDate = "2026-04-08"

	_, err := svc.PlanTrip(context.Background(), req, nil)
	assert.ErrorIs(t, err, utils.ErrSaveRequiresAuth)
	assert.Empty(t, ai.prompts)
}

func TestPlanTripSavePersists(t *testing.T) {
	tripRepo := newFakeTripRepo()
	ai := &fakeCompletionClient{response: validCompletion}
	svc := NewPlannerService(&fakeDestinationRepo{destination: kyotoDestination()}, tripRepo, ai)

	req := planRequest()
	req.SaveTrip = true
	req.StartDate = "2026-04-01"
	req.EndDate = "2026-04-08"
	callerId := uint(42)

	result, err := svc.PlanTrip(context.Background(), req, &callerId)
	require.NoError(t, err)

	require.Len(t, tripRepo.inserted, 1)
	saved := tripRepo.inserted[0]
	assert.Equal(t, uint(42), saved.OwnerID)
	assert.Equal(t, uint(7), saved.DestinationID)
	assert.Equal(t, "Trip to Kyoto (7 days, budget 2500)", saved.Title)
	assert.NotEmpty(t, saved.Itinerary)
	assert.NotEmpty(t, saved.BudgetBreakdown)

	require.NotNil(t, result.Trip)
	assert.Equal(t, saved.ID, result.Trip.ID)
	assert.Equal(t, "2026-04-01", result.Trip.StartDate)
	assert.Equal(t, "2026-04-08", result.Trip.EndDate)
	require.NotNil(t, result.Trip.Destination)
	assert.Equal(t, "Kyoto", result.Trip.Destination.Name)
}

func TestPlanTripSaveCustomTitle(t *testing.T) {
	tripRepo := newFakeTripRepo()
	svc := NewPlannerService(&fakeDestinationRepo{destination: kyotoDestination()}, tripRepo, &fakeCompletionClient{response: validCompletion})

	req := planRequest()
	req.SaveTrip = true
	req.Title = "Cherry blossom week"
	req.StartDate = "2026-04-01"
	req.EndDate = "2026-04-08"
	callerId := uint(42)

	_, err := svc.PlanTrip(context.Background(), req, &callerId)
	require.NoError(t, err)
	require.Len(t, tripRepo.inserted, 1)
	assert.Equal(t, "Cherry blossom week", tripRepo.inserted[0].Title)
}

func TestPlanTripSaveWithoutDates(t *testing.T) {
	svc := NewPlannerService(&fakeDestinationRepo{destination: kyotoDestination()}, newFakeTripRepo(), &fakeCompletionClient{response: validCompletion})

	req := planRequest()
	req.SaveTrip = true
	callerId := uint(42)

	_, err := svc.PlanTrip(context.Background(), req, &callerId)
	assert.ErrorIs(t, err, utils.ErrMissingTripDates)
}

func TestPlanTripUnknownDestination(t *testing.T) {
	svc := NewPlannerService(&fakeDestinationRepo{}, newFakeTripRepo(), &fakeCompletionClient{response: validCompletion})

	_, err := svc.PlanTrip(context.Background(), planRequest(), nil)
	assert.ErrorIs(t, err, utils.ErrDestinationNotFound)
}

func TestPlanTripUnparseableCompletion(t *testing.T) {
	tripRepo := newFakeTripRepo()
	svc := NewPlannerService(&fakeDestinationRepo{destination: kyotoDestination()}, tripRepo, &fakeCompletionClient{response: "no json here"})

	req := planRequest()
	req.SaveTrip = true
	req.StartDate = "2026-04-01"
	req.EndDate = "2026-04-08"
	callerId := uint(42)

	_, err := svc.PlanTrip(context.Background(), req, &callerId)
	assert.ErrorIs(t, err, utils.ErrCompletionNotJSON)
	assert.Empty(t, tripRepo.inserted)
}

func TestPlanTripFencedCompletionRecovered(t *testing.T) {
	fenced := "Here is the plan:\n```json\n" + validCompletion + "\n```"
	svc := NewPlannerService(&fakeDestinationRepo{destination: kyotoDestination()}, newFakeTripRepo(), &fakeCompletionClient{response: fenced})

	result, err := svc.PlanTrip(context.Background(), planRequest(), nil)
	require.NoError(t, err)
	require.Len(t, result.Itinerary, 1)
	assert.Equal(t, "Old town on foot", result.Itinerary[0].Title)
}

func TestPlanTripProviderNotConfigured(t *testing.T) {
	svc := NewPlannerService(&fakeDestinationRepo{destination: kyotoDestination()}, newFakeTripRepo(), &fakeCompletionClient{err: utils.ErrProviderNotConfigured})

	_, err := svc.PlanTrip(context.Background(), planRequest(), nil)
	assert.ErrorIs(t, err, utils.ErrProviderNotConfigured)
}

func TestPlanTripProviderFailure(t *testing.T) {
	svc := NewPlannerService(&fakeDestinationRepo{destination: kyotoDestination()}, newFakeTripRepo(), &fakeCompletionClient{err: errors.New("rate limited")})

	_, err := svc.PlanTrip(context.Background(), planRequest(), nil)
	assert.ErrorIs(t, err, utils.ErrEmptyCompletion)
}
