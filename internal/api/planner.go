package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skinchef/backend/internal/service"
	"github.com/skinchef/backend/internal/types"
)

// PlannerHandler handles menu generation requests.
type PlannerHandler struct {
	planner service.IPlannerService
}

// NewPlannerHandler creates a new PlannerHandler instance.
func NewPlannerHandler(planner service.IPlannerService) *PlannerHandler {
	return &PlannerHandler{planner: planner}
}

// RegisterRoutes registers the generation routes.
func (h *PlannerHandler) RegisterRoutes(router *gin.RouterGroup, limiter gin.HandlerFunc) {
	menu := router.Group("/menu")
	if limiter != nil {
		menu.Use(limiter)
	}
	{
		menu.POST("/generate", h.GenerateMenu)
		menu.POST("/swap", h.SwapMeal)
	}

	if limiter != nil {
		router.POST("/substitutions", limiter, h.GetSubstitutions)
	} else {
		router.POST("/substitutions", h.GetSubstitutions)
	}
}

// GenerateMenu handles POST /menu/generate.
func (h *PlannerHandler) GenerateMenu(c *gin.Context) {
	var req types.GenerateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.planner.GenerateMenu(c.Request.Context(), &req)
	if err != nil {
		writePlannerError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SwapMeal handles POST /menu/swap.
func (h *PlannerHandler) SwapMeal(c *gin.Context) {
	var req types.SwapMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.planner.SwapMeal(c.Request.Context(), &req)
	if err != nil {
		writePlannerError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetSubstitutions handles POST /substitutions.
func (h *PlannerHandler) GetSubstitutions(c *gin.Context) {
	var req types.SubstitutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.planner.GetSubstitutions(c.Request.Context(), &req)
	if err != nil {
		writePlannerError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// writePlannerError maps pipeline errors to responses. Validation failures
// are the caller's fault and carry detail; everything else collapses to a
// generic server error, with the distinction preserved in the audit trail.
func writePlannerError(c *gin.Context, err error) {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
		return
	}

	var mErr *service.MalformedOutputError
	if errors.As(err, &mErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error parsing AI response"})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating response"})
}
