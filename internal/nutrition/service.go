package nutrition

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
	"github.com/xeipuuv/gojsonschema"

	"nutriplan-go/internal/common"
	"nutriplan-go/internal/config"
	"nutriplan-go/internal/constants"
	apperrors "nutriplan-go/internal/errors"
	"nutriplan-go/internal/monitoring"
	"nutriplan-go/internal/upstream"
	"nutriplan-go/internal/upstream/gemini"
)

const (
	kindMealPlan     = "meal_plan"
	kindMealAnalysis = "meal_analysis"
)

// Service produces AI-backed nutrition content. Every upstream call goes
// through the rotation executor it was built with.
type Service struct {
	exec        *upstream.Executor[*gemini.Client]
	model       string
	temperature float64
}

// NewService binds the executor with model settings.
func NewService(exec *upstream.Executor[*gemini.Client], cfg config.UpstreamConfig) *Service {
	model := cfg.Model
	if model == "" {
		model = constants.DefaultModel
	}
	return &Service{exec: exec, model: model, temperature: cfg.Temperature}
}

// Model is the upstream model name used for generation.
func (s *Service) Model() string { return s.model }

// GenerateMealPlan validates the profile, computes targets and asks the model
// for a plan that meets them.
func (s *Service) GenerateMealPlan(ctx context.Context, p Profile) (*MealPlan, error) {
	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	targets := EstimateTargets(p)

	prompt := common.MealPlanPrompt(common.MealPlanPromptInput{
		Days:          p.Days,
		MealsPerDay:   p.MealsPerDay,
		Calories:      targets.Calories,
		ProteinG:      targets.ProteinG,
		CarbsG:        targets.CarbsG,
		FatG:          targets.FatG,
		Goal:          p.Goal,
		Diet:          p.Diet,
		Allergies:     p.Allergies,
		ActivityLevel: p.ActivityLevel,
	})

	text, err := s.generate(ctx, kindMealPlan, prompt)
	if err != nil {
		return nil, err
	}

	var plan MealPlan
	if err := decodeReply(text, mealPlanSchema, &plan); err != nil {
		monitoring.GenerationsTotal.WithLabelValues(kindMealPlan, "invalid_reply").Inc()
		return nil, err
	}
	plan.Targets = targets
	plan.Model = s.model
	monitoring.GenerationsTotal.WithLabelValues(kindMealPlan, "success").Inc()
	return &plan, nil
}

// AnalyzeMeal estimates the macros of a free-text meal description.
func (s *Service) AnalyzeMeal(ctx context.Context, description string) (*Macros, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, apperrors.BadRequest("description is required")
	}
	if utf8.RuneCountInString(description) > constants.MaxMealDescriptionLength {
		return nil, apperrors.BadRequest("description is too long")
	}

	text, err := s.generate(ctx, kindMealAnalysis, common.MealAnalysisPrompt(description))
	if err != nil {
		return nil, err
	}
	var m Macros
	if err := decodeReply(text, mealAnalysisSchema, &m); err != nil {
		monitoring.GenerationsTotal.WithLabelValues(kindMealAnalysis, "invalid_reply").Inc()
		return nil, err
	}
	monitoring.GenerationsTotal.WithLabelValues(kindMealAnalysis, "success").Inc()
	return &m, nil
}

// generate runs one text generation through the executor and returns the reply text.
func (s *Service) generate(ctx context.Context, kind, prompt string) (string, error) {
	payload, err := gemini.BuildTextRequest(gemini.TextRequest{
		System:      common.NutritionistSystemPrompt,
		Prompt:      prompt,
		JSONMode:    true,
		Temperature: s.temperature,
	})
	if err != nil {
		return "", err
	}

	text, err := upstream.Run[*gemini.Client, string](ctx, s.exec, func(ctx context.Context, c *gemini.Client) (string, error) {
		resp, err := c.GenerateContent(ctx, s.model, payload)
		if err != nil {
			return "", err
		}
		if reason := resp.BlockReason(); reason != "" {
			return "", apperrors.New(http.StatusUnprocessableEntity, "prompt_blocked", "invalid_request_error",
				"request blocked by safety filters: "+reason)
		}
		return resp.Text(), nil
	})
	if err != nil {
		monitoring.GenerationsTotal.WithLabelValues(kind, "upstream_error").Inc()
		log.WithFields(log.Fields{"kind": kind, "model": s.model}).WithError(err).Warn("generation failed")
		return "", err
	}
	return text, nil
}

// decodeReply strips a code fence, validates against schema and unmarshals.
func decodeReply(text string, schema func() (*gojsonschema.Schema, error), out interface{}) error {
	text = common.StripCodeFence(text)
	if text == "" {
		return invalidReply("empty reply")
	}
	if err := validateReply(schema, []byte(text)); err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return invalidReply("reply is not valid JSON")
	}
	return nil
}

func invalidReply(msg string) error {
	return apperrors.New(http.StatusBadGateway, "invalid_generation", "server_error", "model returned an unusable reply: "+msg)
}
