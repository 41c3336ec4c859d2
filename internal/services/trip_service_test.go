package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripweaver/internal/models/db_models"
	"tripweaver/internal/models/request_models"
	"tripweaver/pkg/utils"
)

func seededTripRepo(t *testing.T) *fakeTripRepo {
	t.Helper()
	repo := newFakeTripRepo()
	trip := &db_models.Trip{
		Title:         "Week in Kyoto",
		StartDate:     time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 4, 8, 0, 0, 0, 0, time.UTC),
		DurationDays:  7,
		TotalBudget:   2500,
		Interests:     []string{"culture"},
		DestinationID: 7,
		OwnerID:       42,
	}
	require.NoError(t, repo.Insert(context.Background(), trip))
	return repo
}

func TestGetTripByIdOwner(t *testing.T) {
	svc := NewTripService(seededTripRepo(t))

	trip, err := svc.GetTripById(context.Background(), 1, 42)
	require.NoError(t, err)
	assert.Equal(t, "Week in Kyoto", trip.Title)
	assert.Equal(t, "2026-04-01", trip.StartDate)
	assert.Equal(t, []string{"culture"}, trip.Interests)
}

func TestGetTripByIdForeignCaller(t *testing.T) {
	svc := NewTripService(seededTripRepo(t))

	_, err := svc.GetTripById(context.Background(), 1, 99)
	assert.ErrorIs(t, err, utils.ErrNotTripOwner)
}

func TestGetTripByIdNotFound(t *testing.T) {
	svc := NewTripService(newFakeTripRepo())

	_, err := svc.GetTripById(context.Background(), 123, 42)
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestListTripsScopedToOwner(t *testing.T) {
	repo := seededTripRepo(t)
	other := &db_models.Trip{Title: "Someone else's trip", OwnerID: 99, DestinationID: 7}
	require.NoError(t, repo.Insert(context.Background(), other))
	svc := NewTripService(repo)

	trips, err := svc.GetListOfTripsByOwner(context.Background(), 1, 25, 42)
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "Week in Kyoto", trips[0].Title)
}

func TestUpdateTrip(t *testing.T) {
	svc := NewTripService(seededTripRepo(t))

	updated, err := svc.UpdateTrip(context.Background(), 1, 42, request_models.UpdateTripRequest{
		Title:   "Kyoto in bloom",
		EndDate: "2026-04-10",
	})
	require.NoError(t, err)
	assert.Equal(t, "Kyoto in bloom", updated.Title)
	assert.Equal(t, "2026-04-01", updated.StartDate)
	assert.Equal(t, "2026-04-10", updated.EndDate)
}

func TestUpdateTripRejectsInvertedDates(t *testing.T) {
	svc := NewTripService(seededTripRepo(t))

	_, err := svc.UpdateTrip(context.Background(), 1, 42, request_models.UpdateTripRequest{
		EndDate: "2026-03-01",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestUpdateTripForeignCaller(t *testing.T) {
	repo := seededTripRepo(t)
	svc := NewTripService(repo)

	_, err := svc.UpdateTrip(context.Background(), 1, 99, request_models.UpdateTripRequest{Title: "hijacked"})
	assert.ErrorIs(t, err, utils.ErrNotTripOwner)
	assert.Equal(t, "Week in Kyoto", repo.trips[1].Title)
}

func TestDeleteTrip(t *testing.T) {
	repo := seededTripRepo(t)
	svc := NewTripService(repo)

	require.NoError(t, svc.DeleteTrip(context.Background(), 1, 42))
	assert.Equal(t, []uint{1}, repo.deleted)
}

func TestDeleteTripForeignCaller(t *testing.T) {
	repo := seededTripRepo(t)
	svc := NewTripService(repo)

	err := svc.DeleteTrip(context.Background(), 1, 99)
	assert.ErrorIs(t, err, utils.ErrNotTripOwner)
	assert.Empty(t, repo.deleted)
}
