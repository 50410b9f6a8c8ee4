package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/healthhub/gym-admin/internal/api/metrics"
	"github.com/healthhub/gym-admin/internal/core/domain"
	"github.com/healthhub/gym-admin/internal/core/ports"
)

type GymHandler struct {
	gymService ports.GymService
}

func NewGymHandler(gymService ports.GymService) *GymHandler {
	return &GymHandler{gymService: gymService}
}

type createGymRequest struct {
	Name       string            `json:"name" validate:"required,min=2,max=100"`
	Address    string            `json:"address" validate:"required,min=10"`
	Phone      string            `json:"phone" validate:"required,min=7"`
	Email      string            `json:"email" validate:"required,email"`
	AdminEmail string            `json:"adminEmail" validate:"required,email"`
	Location   createGymLocation `json:"location" validate:"required"`
	Amenities  []string          `json:"amenities" validate:"required,min=1"`
}

type createGymLocation struct {
	City  string `json:"city" validate:"required"`
	State string `json:"state" validate:"required"`
}

type gymListResponse struct {
	Success bool            `json:"success"`
	Data    []domain.Gym    `json:"data"`
	Stats   domain.GymStats `json:"stats"`
}

// Create registers a new gym linked to an existing admin account.
//
// @Summary      Create a gym
// @Tags         gyms
// @Accept       json
// @Produce      json
// @Param        body  body      createGymRequest  true  "Gym details"
// @Success      201   {object}  domain.Gym
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /gyms [post]
func (h *GymHandler) Create(c echo.Context) error {
	var req createGymRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	gym, err := h.gymService.Create(c.Request().Context(), ports.CreateGymInput{
		Name:       req.Name,
		Address:    req.Address,
		Phone:      req.Phone,
		Email:      req.Email,
		AdminEmail: req.AdminEmail,
		Location:   domain.Location{City: req.Location.City, State: req.Location.State},
		Amenities:  req.Amenities,
	})
	if err != nil {
		return err
	}

	metrics.GymsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, map[string]any{"success": true, "gym": gym})
}

// List returns all gyms with listing aggregates.
//
// @Summary      List gyms
// @Tags         gyms
// @Produce      json
// @Success      200  {object}  gymListResponse
// @Router       /gyms [get]
func (h *GymHandler) List(c echo.Context) error {
	gyms, stats, err := h.gymService.List(c.Request().Context())
	if err != nil {
		return err
	}

	if gyms == nil {
		gyms = []domain.Gym{}
	}
	return c.JSON(http.StatusOK, gymListResponse{Success: true, Data: gyms, Stats: stats})
}
