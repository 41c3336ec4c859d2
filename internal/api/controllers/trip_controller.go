package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"tripweaver/internal/models/request_models"
	"tripweaver/internal/services"
	"tripweaver/pkg/utils"
)

type TripController struct {
	plannerService services.PlannerServiceInterface
	tripService    services.TripServiceInterface
}

func NewTripController(
	plannerService services.PlannerServiceInterface,
	tripService services.TripServiceInterface,
) *TripController {
	return &TripController{
		plannerService: plannerService,
		tripService:    tripService,
	}
}

// PlanTrip godoc
// @Summary Generate a trip itinerary
// @Description Builds an AI itinerary for a destination. Anonymous callers may
// @Description plan; saving the result requires authentication.
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.PlanTripRequest true "Plan payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/plan [post]
func (t *TripController) PlanTrip(c *gin.Context) {
	var req request_models.PlanTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleServiceError(c, utils.ErrMissingPlanFields)
		return
	}

	var callerId *uint
	if id, ok := callerIdFromContext(c); ok {
		callerId = &id
	}

	result, err := t.plannerService.PlanTrip(c.Request.Context(), req, callerId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Trip planned successfully")
}

func (t *TripController) GetTrips(c *gin.Context) {
	callerId, ok := callerIdFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
		return
	}

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

	trips, err := t.tripService.GetListOfTripsByOwner(c.Request.Context(), page, pageSize, callerId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

func (t *TripController) GetTripById(c *gin.Context) {
	callerId, ok := callerIdFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
		return
	}

	tripId, ok := idFromParam(c, "id")
	if !ok {
		return
	}

	trip, err := t.tripService.GetTripById(c.Request.Context(), tripId, callerId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

func (t *TripController) UpdateTrip(c *gin.Context) {
	callerId, ok := callerIdFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
		return
	}

	tripId, ok := idFromParam(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.UpdateTrip(c.Request.Context(), tripId, callerId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip updated successfully")
}

func (t *TripController) DeleteTrip(c *gin.Context) {
	callerId, ok := callerIdFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
		return
	}

	tripId, ok := idFromParam(c, "id")
	if !ok {
		return
	}

	if err := t.tripService.DeleteTrip(c.Request.Context(), tripId, callerId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}
