package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"tripweaver/internal/services"
	"tripweaver/pkg/utils"
)

type DestinationController struct {
	destinationService services.DestinationServiceInterface
}

func NewDestinationController(destinationService services.DestinationServiceInterface) *DestinationController {
	return &DestinationController{
		destinationService: destinationService,
	}
}

func (d *DestinationController) GetDestinations(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "25")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	destinations, err := d.destinationService.GetListOfDestinations(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destinations, "Destinations fetched successfully")
}

// GetDestinationById godoc
// @Summary Get a destination with its attractions, hotels and restaurants
// @Tags Destinations
// @Produce json
// @Param id path int true "Destination ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /destinations/{id} [get]
func (d *DestinationController) GetDestinationById(c *gin.Context) {
	destinationId, ok := idFromParam(c, "id")
	if !ok {
		return
	}

	destination, err := d.destinationService.GetDestinationById(c.Request.Context(), destinationId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destination, "Destination fetched successfully")
}

func (d *DestinationController) GetAttractions(c *gin.Context) {
	destinationId, ok := idFromParam(c, "id")
	if !ok {
		return
	}

	attractions, err := d.destinationService.GetAttractionsByDestination(c.Request.Context(), destinationId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, attractions, "Attractions fetched successfully")
}

func (d *DestinationController) GetHotels(c *gin.Context) {
	destinationId, ok := idFromParam(c, "id")
	if !ok {
		return
	}

	hotels, err := d.destinationService.GetHotelsByDestination(c.Request.Context(), destinationId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, hotels, "Hotels fetched successfully")
}

func (d *DestinationController) GetRestaurants(c *gin.Context) {
	destinationId, ok := idFromParam(c, "id")
	if !ok {
		return
	}

	restaurants, err := d.destinationService.GetRestaurantsByDestination(c.Request.Context(), destinationId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, restaurants, "Restaurants fetched successfully")
}
