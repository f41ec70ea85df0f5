package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tridash/internal/repository"
)

// RideHandler handles HTTP requests for rides.
type RideHandler struct {
	rideRepo repository.RideRepository
}

// NewRideHandler creates a new RideHandler.
func NewRideHandler(rideRepo repository.RideRepository) *RideHandler {
	return &RideHandler{rideRepo: rideRepo}
}

// RideResponse is the HTTP response for ride data.
type RideResponse struct {
	ID             string  `json:"id"`
	PassengerID    string  `json:"passenger_id"`
	DriverID       string  `json:"driver_id"`
	Status         string  `json:"status"`
	Fare           float64 `json:"fare"`
	ChargedAmount  float64 `json:"charged_amount"`
	PickupAddress  string  `json:"pickup_address"`
	DropoffAddress string  `json:"dropoff_address"`
	DistanceKm     float64 `json:"distance_km"`
	DurationMin    float64 `json:"duration_min"`
	CreatedAt      string  `json:"created_at"`
}

// GetAll handles GET /v1/rides
func (h *RideHandler) GetAll(c *gin.Context) {
	rides, err := h.rideRepo.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]RideResponse, 0, len(rides))
	for _, r := range rides {
		response = append(response, RideResponse{
			ID:             r.ID,
			PassengerID:    r.PassengerID,
			DriverID:       r.DriverID,
			Status:         string(r.Status),
			Fare:           r.Fare,
			ChargedAmount:  r.ChargedAmount(),
			PickupAddress:  r.PickupAddress,
			DropoffAddress: r.DropoffAddress,
			DistanceKm:     r.DistanceKm,
			DurationMin:    r.DurationMin,
			CreatedAt:      r.CreatedAt.Format(time.RFC3339),
		})
	}

	respondJSON(c, http.StatusOK, response)
}

// GetRide handles GET /v1/rides/:id
func (h *RideHandler) GetRide(c *gin.Context) {
	ride, err := h.rideRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, RideResponse{
		ID:             ride.ID,
		PassengerID:    ride.PassengerID,
		DriverID:       ride.DriverID,
		Status:         string(ride.Status),
		Fare:           ride.Fare,
		ChargedAmount:  ride.ChargedAmount(),
		PickupAddress:  ride.PickupAddress,
		DropoffAddress: ride.DropoffAddress,
		DistanceKm:     ride.DistanceKm,
		DurationMin:    ride.DurationMin,
		CreatedAt:      ride.CreatedAt.Format(time.RFC3339),
	})
}
