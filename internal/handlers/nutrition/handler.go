package nutrition

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	apperrors "nutriplan-go/internal/errors"
	"nutriplan-go/internal/handlers/common"
	"nutriplan-go/internal/logging"
	nutritionsvc "nutriplan-go/internal/nutrition"
	"nutriplan-go/internal/upstream/gemini"
)

// Generator is the slice of nutrition.Service the handlers need.
type Generator interface {
	GenerateMealPlan(ctx context.Context, p nutritionsvc.Profile) (*nutritionsvc.MealPlan, error)
	AnalyzeMeal(ctx context.Context, description string) (*nutritionsvc.Macros, error)
}

// Handler serves the nutrition API.
type Handler struct {
	svc Generator
}

func New(svc Generator) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the v1 endpoints on rg.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	v1 := rg.Group("/v1")
	v1.POST("/meal-plans", h.MealPlan)
	v1.POST("/meals/analyze", h.AnalyzeMeal)
	v1.POST("/targets", h.Targets)
}

type analyzeRequest struct {
	Description string `json:"description"`
}

// MealPlan handles POST /v1/meal-plans.
func (h *Handler) MealPlan(c *gin.Context) {
	var p nutritionsvc.Profile
	if err := c.ShouldBindJSON(&p); err != nil {
		common.AbortWithAPIError(c, apperrors.BadRequest("request body must be a JSON profile"))
		return
	}
	plan, err := h.svc.GenerateMealPlan(upstreamContext(c), p)
	if err != nil {
		fail(c, "meal plan generation failed", err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// AnalyzeMeal handles POST /v1/meals/analyze.
func (h *Handler) AnalyzeMeal(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.AbortWithAPIError(c, apperrors.BadRequest("request body must be JSON with a description"))
		return
	}
	macros, err := h.svc.AnalyzeMeal(upstreamContext(c), req.Description)
	if err != nil {
		fail(c, "meal analysis failed", err)
		return
	}
	c.JSON(http.StatusOK, macros)
}

// Targets handles POST /v1/targets. It is computed locally and never calls upstream.
func (h *Handler) Targets(c *gin.Context) {
	var p nutritionsvc.Profile
	if err := c.ShouldBindJSON(&p); err != nil {
		common.AbortWithAPIError(c, apperrors.BadRequest("request body must be a JSON profile"))
		return
	}
	p.Normalize()
	if err := p.Validate(); err != nil {
		common.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, nutritionsvc.EstimateTargets(p))
}

func upstreamContext(c *gin.Context) context.Context {
	return gemini.WithRequestID(c.Request.Context(), c.GetString(logging.RequestIDKey))
}

func fail(c *gin.Context, msg string, err error) {
	apiErr := common.ToAPIError(err)
	entry := logging.WithReq(c, log.Fields{"status": apiErr.HTTPStatus, "code": apiErr.Code}).WithError(err)
	if apiErr.HTTPStatus >= http.StatusInternalServerError {
		entry.Error(msg)
	} else {
		entry.Warn(msg)
	}
	common.AbortWithAPIError(c, apiErr)
}
