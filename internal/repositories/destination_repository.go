package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"tripweaver/internal/models/db_models"
)

type DestinationRepository interface {
	ListDestinations(ctx context.Context, page int, pageSize int) ([]db_models.Destination, error)
	FindDestinationById(ctx context.Context, id uint) (*db_models.Destination, error)
	// FindDestinationWithContent preloads attractions, hotels and restaurants.
	FindDestinationWithContent(ctx context.Context, id uint) (*db_models.Destination, error)
	ListAttractionsByDestination(ctx context.Context, destinationId uint) ([]db_models.Attraction, error)
	ListHotelsByDestination(ctx context.Context, destinationId uint) ([]db_models.Hotel, error)
	ListRestaurantsByDestination(ctx context.Context, destinationId uint) ([]db_models.Restaurant, error)
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func (r *destinationRepository) ListDestinations(ctx context.Context, page int, pageSize int) ([]db_models.Destination, error) {
	var destinations []db_models.Destination
	err := r.db.WithContext(ctx).
		Order("name").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&destinations).Error
	if err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *destinationRepository) FindDestinationById(ctx context.Context, id uint) (*db_models.Destination, error) {
	var destination db_models.Destination
	err := r.db.WithContext(ctx).First(&destination, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &destination, nil
}

func (r *destinationRepository) FindDestinationWithContent(ctx context.Context, id uint) (*db_models.Destination, error) {
	var destination db_models.Destination
	err := r.db.WithContext(ctx).
		Preload("Attractions").
		Preload("Hotels").
		Preload("Restaurants").
		First(&destination, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &destination, nil
}

func (r *destinationRepository) ListAttractionsByDestination(ctx context.Context, destinationId uint) ([]db_models.Attraction, error) {
	var attractions []db_models.Attraction
	err := r.db.WithContext(ctx).
		Where("destination_id = ?", destinationId).
		Order("name").
		Find(&attractions).Error
	if err != nil {
		return nil, err
	}
	return attractions, nil
}

func (r *destinationRepository) ListHotelsByDestination(ctx context.Context, destinationId uint) ([]db_models.Hotel, error) {
	var hotels []db_models.Hotel
	err := r.db.WithContext(ctx).
		Where("destination_id = ?", destinationId).
		Order("price_per_night").
		Find(&hotels).Error
	if err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *destinationRepository) ListRestaurantsByDestination(ctx context.Context, destinationId uint) ([]db_models.Restaurant, error) {
	var restaurants []db_models.Restaurant
	err := r.db.WithContext(ctx).
		Where("destination_id = ?", destinationId).
		Order("name").
		Find(&restaurants).Error
	if err != nil {
		return nil, err
	}
	return restaurants, nil
}
