package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"rides/internal/domain"
	"rides/internal/middleware"
	"rides/internal/service"
)

// RideHandler handles HTTP requests for rides.
type RideHandler struct {
	rideService  *service.RideService
	strictStatus bool
	logger       *slog.Logger
}

// RideHandlerOption configures a RideHandler.
type RideHandlerOption func(*RideHandler)

// WithStrictStatus makes error responses carry 400/404/500 instead of 200.
func WithStrictStatus(strict bool) RideHandlerOption {
	return func(h *RideHandler) { h.strictStatus = strict }
}

// WithLogger sets the handler's logger.
func WithLogger(logger *slog.Logger) RideHandlerOption {
	return func(h *RideHandler) { h.logger = logger }
}

// NewRideHandler creates a new RideHandler.
func NewRideHandler(rideService *service.RideService, opts ...RideHandlerOption) *RideHandler {
	h := &RideHandler{
		rideService: rideService,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// RideResponse is the HTTP representation of a ride.
type RideResponse struct {
	RideID        int64   `json:"rideID"`
	StartLat      float64 `json:"startLat"`
	StartLong     float64 `json:"startLong"`
	EndLat        float64 `json:"endLat"`
	EndLong       float64 `json:"endLong"`
	RiderName     string  `json:"riderName"`
	DriverName    string  `json:"driverName"`
	DriverVehicle string  `json:"driverVehicle"`
	Created       string  `json:"created"`
}

func toRideResponses(rides []*domain.Ride) []RideResponse {
	response := make([]RideResponse, 0, len(rides))
	for _, r := range rides {
		response = append(response, RideResponse{
			RideID:        r.ID,
			StartLat:      r.StartLat,
			StartLong:     r.StartLong,
			EndLat:        r.EndLat,
			EndLong:       r.EndLong,
			RiderName:     r.RiderName,
			DriverName:    r.DriverName,
			DriverVehicle: r.DriverVehicle,
			Created:       r.Created,
		})
	}
	return response
}

// CreateRide handles POST /rides
func (h *RideHandler) CreateRide(c *gin.Context) {
	// A body that is not a JSON object is validated as an empty submission.
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		body = map[string]any{}
	}

	rides, err := h.rideService.CreateRide(c.Request.Context(), body)
	if err != nil {
		h.fail(c, "create ride", err)
		return
	}

	h.logger.InfoContext(c.Request.Context(), "ride created",
		"ride_id", rides[0].ID,
		"request_id", middleware.RequestID(c),
	)
	respondJSON(c, http.StatusOK, toRideResponses(rides))
}

// GetRide handles GET /rides/:id
func (h *RideHandler) GetRide(c *gin.Context) {
	rides, err := h.rideService.GetRide(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get ride", err)
		return
	}

	respondJSON(c, http.StatusOK, toRideResponses(rides))
}

// ListRides handles GET /rides and GET /rides/:page/:pageSize
//
// gin requires sibling wildcards to share a name, so the page number is read
// from the :id segment.
func (h *RideHandler) ListRides(c *gin.Context) {
	rides, err := h.rideService.ListRides(c.Request.Context(), c.Param("id"), c.Param("pageSize"))
	if err != nil {
		h.fail(c, "list rides", err)
		return
	}

	respondJSON(c, http.StatusOK, toRideResponses(rides))
}

// fail records err on the context and writes the error body. Errors other
// than validation and not-found are logged and marked on the gin context so
// middleware can tell the request failed.
func (h *RideHandler) fail(c *gin.Context, action string, err error) {
	var validationErr *service.ValidationError
	if !errors.As(err, &validationErr) && !errors.Is(err, service.ErrRidesNotFound) {
		_ = c.Error(err)
		h.logger.ErrorContext(c.Request.Context(), action+" failed",
			"error", err,
			"request_id", middleware.RequestID(c),
		)
	}
	respondError(c, err, h.strictStatus)
}
