package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/paintops/damagecast/internal/features"
	"github.com/paintops/damagecast/internal/models"
	"github.com/paintops/damagecast/internal/services"
)

// PredictionHandler handles prediction endpoints
type PredictionHandler struct {
	predictionSvc *services.PredictionService
}

// NewPredictionHandler creates a new PredictionHandler
func NewPredictionHandler(predictionSvc *services.PredictionService) *PredictionHandler {
	return &PredictionHandler{
		predictionSvc: predictionSvc,
	}
}

// Predict handles POST /api/v1/predictions/predict
// @Summary Predict damage for one planned shipment
// @Description Runs feature engineering, model scoring, and the recommendation rules for one shipment
// @Tags predictions
// @Accept json
// @Produce json
// @Param request body models.PredictionRequest true "shipment to score"
// @Success 200 {object} models.PredictionResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /predictions/predict [post]
func (h *PredictionHandler) Predict(c *gin.Context) {
	var req models.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	shipment, err := req.Normalize()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	result, err := h.predictionSvc.Predict(c.Request.Context(), shipment, req.ModelName())
	if err != nil {
		if errors.Is(err, features.ErrInvalidInput) || errors.Is(err, models.ErrValidation) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "bad_request",
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// PredictBatch handles POST /api/v1/predictions/predict/batch
// @Summary Predict damage for up to 100 shipments
// @Description Scores every shipment; failed items become inline error records instead of failing the batch
// @Tags predictions
// @Accept json
// @Produce json
// @Param request body models.BatchPredictionRequest true "shipments to score"
// @Success 200 {object} models.BatchResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /predictions/predict/batch [post]
func (h *PredictionHandler) PredictBatch(c *gin.Context) {
	var req models.BatchPredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	batch, err := h.predictionSvc.PredictBatch(c.Request.Context(), req.Shipments, req.Model)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "bad_request",
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, batch)
}

// Models handles GET /api/v1/predictions/models
// @Summary List loaded scoring models
// @Tags predictions
// @Produce json
// @Success 200 {object} models.ModelsResponse
// @Router /predictions/models [get]
func (h *PredictionHandler) Models(c *gin.Context) {
	c.JSON(http.StatusOK, h.predictionSvc.Models())
}

// Recent handles GET /api/v1/predictions/recent
// @Summary List recently stored predictions
// @Tags predictions
// @Produce json
// @Param limit query int false "maximum rows" default(20)
// @Success 200 {array} models.StoredPrediction
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /predictions/recent [get]
func (h *PredictionHandler) Recent(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "invalid limit",
		})
		return
	}

	predictions, err := h.predictionSvc.Recent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, predictions)
}
