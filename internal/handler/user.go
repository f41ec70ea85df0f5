package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tridash/internal/auth"
	"tridash/internal/service"
)

// UserHandler handles HTTP requests for user moderation.
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UserResponse is the HTTP response for user data.
type UserResponse struct {
	ID               string  `json:"id"`
	Email            string  `json:"email"`
	FullName         string  `json:"full_name"`
	Phone            string  `json:"phone"`
	Role             string  `json:"role"`
	IsDriverApproved bool    `json:"is_driver_approved"`
	Online           bool    `json:"online"`
	Active           bool    `json:"active"`
	Rating           float64 `json:"rating"`
}

// GetAll handles GET /v1/users
func (h *UserHandler) GetAll(c *gin.Context) {
	profiles, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]UserResponse, 0, len(profiles))
	for _, p := range profiles {
		response = append(response, UserResponse{
			ID:               p.ID,
			Email:            p.Email,
			FullName:         p.FullName,
			Phone:            p.Phone,
			Role:             string(p.Role),
			IsDriverApproved: p.IsDriverApproved,
			Online:           p.Online,
			Active:           p.Active,
			Rating:           p.Rating,
		})
	}

	respondJSON(c, http.StatusOK, response)
}

// Enable handles POST /v1/users/:id/enable
func (h *UserHandler) Enable(c *gin.Context) {
	userID := c.Param("id")
	if err := h.userService.Enable(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	if claims, ok := auth.ClaimsFrom(c); ok {
		log.Printf("user %s enabled by admin %s", userID, claims.Subject)
	}
	c.Status(http.StatusNoContent)
}

// Disable handles POST /v1/users/:id/disable
func (h *UserHandler) Disable(c *gin.Context) {
	userID := c.Param("id")
	if err := h.userService.Disable(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	if claims, ok := auth.ClaimsFrom(c); ok {
		log.Printf("user %s disabled by admin %s", userID, claims.Subject)
	}
	c.Status(http.StatusNoContent)
}
