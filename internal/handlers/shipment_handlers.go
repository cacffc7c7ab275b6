package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/paintops/damagecast/internal/models"
	"github.com/paintops/damagecast/internal/services"
)

// ShipmentHandler handles shipment CRUD and import endpoints
type ShipmentHandler struct {
	shipmentSvc *services.ShipmentService
}

// NewShipmentHandler creates a new ShipmentHandler
func NewShipmentHandler(shipmentSvc *services.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{
		shipmentSvc: shipmentSvc,
	}
}

// Create handles POST /api/v1/shipments
// @Summary Record a shipment
// @Description Records a shipment; when a returned count is included the damage metrics are computed immediately
// @Tags shipments
// @Accept json
// @Produce json
// @Param request body models.CreateShipmentRequest true "shipment to record"
// @Success 201 {object} models.Shipment
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /shipments [post]
func (h *ShipmentHandler) Create(c *gin.Context) {
	var req models.CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	shipment, err := h.shipmentSvc.Create(c.Request.Context(), &req)
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

	c.JSON(http.StatusCreated, shipment)
}

// List handles GET /api/v1/shipments
// @Summary List shipments
// @Tags shipments
// @Produce json
// @Param dealer_code query int false "filter by dealer"
// @Param warehouse query string false "filter by warehouse code"
// @Param start_date query string false "inclusive lower date bound (RFC3339 or YYYY-MM-DD)"
// @Param end_date query string false "inclusive upper date bound (RFC3339 or YYYY-MM-DD)"
// @Param limit query int false "page size" default(100)
// @Param offset query int false "rows to skip"
// @Success 200 {object} models.ShipmentListResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /shipments [get]
func (h *ShipmentHandler) List(c *gin.Context) {
	var filter models.ShipmentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	startDate, err := parseDateQuery(c, "start_date")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}
	endDate, err := parseDateQuery(c, "end_date")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}
	filter.StartDate = startDate
	filter.EndDate = endDate

	shipments, total, err := h.shipmentSvc.List(c.Request.Context(), &filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.ShipmentListResponse{
		Shipments: shipments,
		Total:     total,
		Limit:     filter.Limit,
		Offset:    filter.Offset,
	})
}

// Get handles GET /api/v1/shipments/:id
// @Summary Fetch one shipment
// @Tags shipments
// @Produce json
// @Param id path int true "shipment ID"
// @Success 200 {object} models.Shipment
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /shipments/{id} [get]
func (h *ShipmentHandler) Get(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "invalid shipment ID",
		})
		return
	}

	shipment, err := h.shipmentSvc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrShipmentNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "shipment not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, shipment)
}

// Update handles PATCH /api/v1/shipments/:id
// @Summary Record the returned-tin count for a shipment
// @Description Sets the returned count and recomputes damage rate and loss value
// @Tags shipments
// @Accept json
// @Produce json
// @Param id path int true "shipment ID"
// @Param request body models.UpdateShipmentRequest true "returned count"
// @Success 200 {object} models.Shipment
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /shipments/{id} [patch]
func (h *ShipmentHandler) Update(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "invalid shipment ID",
		})
		return
	}

	var req models.UpdateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	shipment, err := h.shipmentSvc.SetReturned(c.Request.Context(), id, *req.Returned)
	if err != nil {
		if errors.Is(err, models.ErrShipmentNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "shipment not found",
			})
			return
		}
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

	c.JSON(http.StatusOK, shipment)
}

// Delete handles DELETE /api/v1/shipments/:id
// @Summary Delete a shipment
// @Tags shipments
// @Param id path int true "shipment ID"
// @Success 204 "no content"
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /shipments/{id} [delete]
func (h *ShipmentHandler) Delete(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "invalid shipment ID",
		})
		return
	}

	if err := h.shipmentSvc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrShipmentNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "shipment not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// Import handles POST /api/v1/shipments/import
// @Summary Import shipments from a CSV file
// @Description Accepts a multipart "file" part or a raw CSV body; structurally broken files fail whole, invalid rows are reported per row
// @Tags shipments
// @Accept mpfd
// @Produce json
// @Success 200 {object} models.ImportResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /shipments/import [post]
func (h *ShipmentHandler) Import(c *gin.Context) {
	var body io.Reader
	file, _, err := c.Request.FormFile("file")
	if err == nil {
		defer file.Close()
		body = file
	} else {
		// Raw CSV body without multipart framing
		body = c.Request.Body
	}

	requests, err := ParseShipmentsCSV(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	result, err := h.shipmentSvc.ImportShipments(c.Request.Context(), requests)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// parseDateQuery reads an optional date query parameter. Absent or empty
// values return nil without error.
func parseDateQuery(c *gin.Context, name string) (*time.Time, error) {
	value := c.Query(name)
	if value == "" {
		return nil, nil
	}
	t, err := parseDate(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
