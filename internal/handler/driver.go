package handler

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tridash/internal/auth"
	"tridash/internal/domain"
	"tridash/internal/service"
)

// DriverHandler handles HTTP requests for driver moderation.
type DriverHandler struct {
	moderationService *service.DriverModerationService
}

// NewDriverHandler creates a new DriverHandler.
func NewDriverHandler(moderationService *service.DriverModerationService) *DriverHandler {
	return &DriverHandler{moderationService: moderationService}
}

// DriverResponse is the HTTP response for driver data.
type DriverResponse struct {
	ID                 string  `json:"id"`
	UserID             string  `json:"user_id"`
	Approved           bool    `json:"approved"`
	Rejected           bool    `json:"rejected"`
	Suspended          bool    `json:"suspended"`
	VerificationStatus string  `json:"verification_status"`
	Online             bool    `json:"online"`
	Rating             float64 `json:"rating"`
	TotalRides         int     `json:"total_rides"`
	CompletedRides     int     `json:"completed_rides"`
	TotalEarnings      float64 `json:"total_earnings"`
}

// VehicleResponse is the HTTP response for a driver vehicle.
type VehicleResponse struct {
	ID       string `json:"id"`
	Plate    string `json:"plate"`
	Model    string `json:"model"`
	Color    string `json:"color"`
	Capacity int    `json:"capacity"`
}

// DriverDetailResponse is the HTTP response for a single driver with vehicles.
type DriverDetailResponse struct {
	Driver   DriverResponse    `json:"driver"`
	Vehicles []VehicleResponse `json:"vehicles"`
}

func toDriverResponse(d *domain.Driver) DriverResponse {
	return DriverResponse{
		ID:                 d.ID,
		UserID:             d.UserID,
		Approved:           d.Approved,
		Rejected:           d.Rejected,
		Suspended:          d.Suspended,
		VerificationStatus: string(d.VerificationStatus),
		Online:             d.Online,
		Rating:             d.Rating,
		TotalRides:         d.TotalRides,
		CompletedRides:     d.CompletedRides,
		TotalEarnings:      d.TotalEarnings,
	}
}

// GetAll handles GET /v1/drivers
func (h *DriverHandler) GetAll(c *gin.Context) {
	drivers, err := h.moderationService.ListDrivers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]DriverResponse, 0, len(drivers))
	for _, d := range drivers {
		response = append(response, toDriverResponse(d))
	}

	respondJSON(c, http.StatusOK, response)
}

// GetDriver handles GET /v1/drivers/:id
func (h *DriverHandler) GetDriver(c *gin.Context) {
	detail, err := h.moderationService.GetDriver(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	vehicles := make([]VehicleResponse, 0, len(detail.Vehicles))
	for _, v := range detail.Vehicles {
		vehicles = append(vehicles, VehicleResponse{
			ID:       v.ID,
			Plate:    v.Plate,
			Model:    v.Model,
			Color:    v.Color,
			Capacity: v.Capacity,
		})
	}

	respondJSON(c, http.StatusOK, DriverDetailResponse{
		Driver:   toDriverResponse(detail.Driver),
		Vehicles: vehicles,
	})
}

// Approve handles POST /v1/drivers/:id/approve
func (h *DriverHandler) Approve(c *gin.Context) {
	h.moderate(c, "approved", h.moderationService.Approve)
}

// Reject handles POST /v1/drivers/:id/reject
func (h *DriverHandler) Reject(c *gin.Context) {
	h.moderate(c, "rejected", h.moderationService.Reject)
}

// Suspend handles POST /v1/drivers/:id/suspend
func (h *DriverHandler) Suspend(c *gin.Context) {
	h.moderate(c, "suspended", h.moderationService.Suspend)
}

// Reinstate handles POST /v1/drivers/:id/reinstate
func (h *DriverHandler) Reinstate(c *gin.Context) {
	h.moderate(c, "reinstated", h.moderationService.Reinstate)
}

// moderate runs a moderation action against the :id driver, records which
// admin performed it, and returns the updated record.
func (h *DriverHandler) moderate(c *gin.Context, verb string, action func(ctx context.Context, id string) error) {
	driverID := c.Param("id")

	if err := action(c.Request.Context(), driverID); err != nil {
		respondError(c, err)
		return
	}

	if claims, ok := auth.ClaimsFrom(c); ok {
		log.Printf("driver %s %s by admin %s", driverID, verb, claims.Subject)
	}

	detail, err := h.moderationService.GetDriver(c.Request.Context(), driverID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toDriverResponse(detail.Driver))
}
