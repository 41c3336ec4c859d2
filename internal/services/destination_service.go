package services

import (
	"context"

	"tripweaver/internal/models/db_models"
	"tripweaver/internal/models/response_models"
	"tripweaver/internal/repositories"
	"tripweaver/pkg/utils"
)

type DestinationServiceInterface interface {
	GetListOfDestinations(ctx context.Context, page int, pageSize int) ([]response_models.DestinationResponse, error)
	GetDestinationById(ctx context.Context, destinationId uint) (*response_models.DestinationResponse, error)
	GetAttractionsByDestination(ctx context.Context, destinationId uint) ([]response_models.AttractionResponse, error)
	GetHotelsByDestination(ctx context.Context, destinationId uint) ([]response_models.HotelResponse, error)
	GetRestaurantsByDestination(ctx context.Context, destinationId uint) ([]response_models.RestaurantResponse, error)
}

type DestinationService struct {
	destinationRepo repositories.DestinationRepository
}

func NewDestinationService(destinationRepo repositories.DestinationRepository) DestinationServiceInterface {
	return &DestinationService{destinationRepo: destinationRepo}
}

func (d *DestinationService) GetListOfDestinations(ctx context.Context, page int, pageSize int) ([]response_models.DestinationResponse, error) {
	destinations, err := d.destinationRepo.ListDestinations(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.DestinationResponse, 0, len(destinations))
	for i := range destinations {
		out = append(out, buildDestinationResponse(&destinations[i]))
	}
	return out, nil
}

func (d *DestinationService) GetDestinationById(ctx context.Context, destinationId uint) (*response_models.DestinationResponse, error) {
	destination, err := d.destinationRepo.FindDestinationWithContent(ctx, destinationId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if destination == nil {
		return nil, utils.ErrDestinationNotFound
	}

	resp := buildDestinationResponse(destination)
	return &resp, nil
}

func (d *DestinationService) GetAttractionsByDestination(ctx context.Context, destinationId uint) ([]response_models.AttractionResponse, error) {
	if err := d.ensureDestinationExists(ctx, destinationId); err != nil {
		return nil, err
	}

	attractions, err := d.destinationRepo.ListAttractionsByDestination(ctx, destinationId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.AttractionResponse, 0, len(attractions))
	for i := range attractions {
		out = append(out, buildAttractionResponse(&attractions[i]))
	}
	return out, nil
}

func (d *DestinationService) GetHotelsByDestination(ctx context.Context, destinationId uint) ([]response_models.HotelResponse, error) {
	if err := d.ensureDestinationExists(ctx, destinationId); err != nil {
		return nil, err
	}

	hotels, err := d.destinationRepo.ListHotelsByDestination(ctx, destinationId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.HotelResponse, 0, len(hotels))
	for i := range hotels {
		out = append(out, buildHotelResponse(&hotels[i]))
	}
	return out, nil
}

func (d *DestinationService) GetRestaurantsByDestination(ctx context.Context, destinationId uint) ([]response_models.RestaurantResponse, error) {
	if err := d.ensureDestinationExists(ctx, destinationId); err != nil {
		return nil, err
	}

	restaurants, err := d.destinationRepo.ListRestaurantsByDestination(ctx, destinationId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.RestaurantResponse, 0, len(restaurants))
	for i := range restaurants {
		out = append(out, buildRestaurantResponse(&restaurants[i]))
	}
	return out, nil
}

func (d *DestinationService) ensureDestinationExists(ctx context.Context, destinationId uint) error {
	destination, err := d.destinationRepo.FindDestinationById(ctx, destinationId)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if destination == nil {
		return utils.ErrDestinationNotFound
	}
	return nil
}

func buildDestinationResponse(destination *db_models.Destination) response_models.DestinationResponse {
	resp := response_models.DestinationResponse{
		ID:                 destination.ID,
		Name:               destination.Name,
		Slug:               destination.Slug,
		Country:            destination.Country,
		Description:        destination.Description,
		Latitude:           destination.Latitude,
		Longitude:          destination.Longitude,
		AverageDailyBudget: destination.AverageDailyBudget,
	}
	for i := range destination.Attractions {
		resp.Attractions = append(resp.Attractions, buildAttractionResponse(&destination.Attractions[i]))
	}
	for i := range destination.Hotels {
		resp.Hotels = append(resp.Hotels, buildHotelResponse(&destination.Hotels[i]))
	}
	for i := range destination.Restaurants {
		resp.Restaurants = append(resp.Restaurants, buildRestaurantResponse(&destination.Restaurants[i]))
	}
	return resp
}

func buildAttractionResponse(a *db_models.Attraction) response_models.AttractionResponse {
	return response_models.AttractionResponse{
		ID:               a.ID,
		Name:             a.Name,
		Slug:             a.Slug,
		Category:         a.Category,
		ShortDescription: a.ShortDescription,
		Latitude:         a.Latitude,
		Longitude:        a.Longitude,
		ApproximateCost:  a.ApproximateCost,
	}
}

func buildHotelResponse(h *db_models.Hotel) response_models.HotelResponse {
	return response_models.HotelResponse{
		ID:               h.ID,
		Name:             h.Name,
		Slug:             h.Slug,
		Stars:            h.Stars,
		PricePerNight:    h.PricePerNight,
		IsBudgetFriendly: h.IsBudgetFriendly,
		ShortDescription: h.ShortDescription,
		Latitude:         h.Latitude,
		Longitude:        h.Longitude,
	}
}

func buildRestaurantResponse(r *db_models.Restaurant) response_models.RestaurantResponse {
	return response_models.RestaurantResponse{
		ID:                    r.ID,
		Name:                  r.Name,
		Slug:                  r.Slug,
		Cuisine:               r.Cuisine,
		PriceLevel:            r.PriceLevel,
		ShortDescription:      r.ShortDescription,
		Latitude:              r.Latitude,
		Longitude:             r.Longitude,
		AveragePricePerPerson: r.AveragePricePerPerson,
	}
}
