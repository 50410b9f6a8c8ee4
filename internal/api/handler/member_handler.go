package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/healthhub/gym-admin/internal/core/domain"
	"github.com/healthhub/gym-admin/internal/core/ports"
)

type MemberHandler struct {
	memberService ports.MemberService
}

func NewMemberHandler(memberService ports.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

type userListResponse struct {
	Success    bool               `json:"success"`
	Data       []domain.User      `json:"data"`
	Pagination domain.Pagination  `json:"pagination"`
	Stats      domain.MemberStats `json:"stats"`
}

type consultantListResponse struct {
	Success    bool                   `json:"success"`
	Data       []domain.User          `json:"data"`
	Pagination domain.Pagination      `json:"pagination"`
	Stats      domain.ConsultantStats `json:"stats"`
}

func pageFromQuery(c echo.Context) domain.Page {
	number, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return domain.Page{Number: number, Limit: limit}
}

// ListUsers returns one page of platform accounts (users plus admin roles).
//
// @Summary      List users
// @Tags         members
// @Produce      json
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  userListResponse
// @Router       /users [get]
func (h *MemberHandler) ListUsers(c echo.Context) error {
	users, pagination, stats, err := h.memberService.ListUsers(c.Request().Context(), pageFromQuery(c))
	if err != nil {
		return err
	}

	if users == nil {
		users = []domain.User{}
	}
	return c.JSON(http.StatusOK, userListResponse{
		Success:    true,
		Data:       users,
		Pagination: pagination,
		Stats:      stats,
	})
}

// ListConsultants returns one page of consultant accounts.
//
// @Summary      List consultants
// @Tags         members
// @Produce      json
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  consultantListResponse
// @Router       /consultants [get]
func (h *MemberHandler) ListConsultants(c echo.Context) error {
	consultants, pagination, stats, err := h.memberService.ListConsultants(c.Request().Context(), pageFromQuery(c))
	if err != nil {
		return err
	}

	if consultants == nil {
		consultants = []domain.User{}
	}
	return c.JSON(http.StatusOK, consultantListResponse{
		Success:    true,
		Data:       consultants,
		Pagination: pagination,
		Stats:      stats,
	})
}

// PlatformMetrics returns the overview counters for the dashboard page.
//
// @Summary      Platform metrics
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  domain.PlatformMetrics
// @Router       /dashboard/metrics [get]
func (h *MemberHandler) PlatformMetrics(c echo.Context) error {
	metrics, err := h.memberService.PlatformMetrics(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "metrics": metrics})
}
