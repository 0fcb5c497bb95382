package nutrition

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	apperrors "nutriplan-go/internal/errors"
	nutritionsvc "nutriplan-go/internal/nutrition"
	"nutriplan-go/internal/upstream"
)

type fakeGenerator struct {
	plan    *nutritionsvc.MealPlan
	macros  *nutritionsvc.Macros
	err     error
	profile nutritionsvc.Profile
	desc    string
}

func (f *fakeGenerator) GenerateMealPlan(_ context.Context, p nutritionsvc.Profile) (*nutritionsvc.MealPlan, error) {
	f.profile = p
	return f.plan, f.err
}

func (f *fakeGenerator) AnalyzeMeal(_ context.Context, d string) (*nutritionsvc.Macros, error) {
	f.desc = d
	return f.macros, f.err
}

func newRouter(g Generator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(g).RegisterRoutes(&r.RouterGroup)
	return r
}

func post(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const profileJSON = `{"age":30,"sex":"male","height_cm":180,"weight_kg":80,"activity_level":"moderate","goal":"maintain","allergies":["nuts"]}`

func TestMealPlanSuccess(t *testing.T) {
	g := &fakeGenerator{plan: &nutritionsvc.MealPlan{Days: []nutritionsvc.DayPlan{{Day: 1}}, Model: "m"}}
	w := post(newRouter(g), "/v1/meal-plans", profileJSON)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "m", gjson.Get(w.Body.String(), "model").String())
	assert.Equal(t, []string{"nuts"}, g.profile.Allergies)
}

func TestMealPlanErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		reason string
	}{
		{"no credentials", upstream.ErrNoCredentialsConfigured, http.StatusServiceUnavailable, "no_credentials"},
		{"all keys limited", apperrors.MapHTTPError(429, []byte(`{"error":{"message":"quota exceeded"}}`)), http.StatusTooManyRequests, "rate_limit_exceeded"},
		{"invalid profile", apperrors.BadRequest("invalid age"), http.StatusBadRequest, "invalid_argument"},
		{"opaque failure", assert.AnError, http.StatusBadGateway, "upstream_error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := post(newRouter(&fakeGenerator{err: tc.err}), "/v1/meal-plans", profileJSON)
			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.reason, gjson.Get(w.Body.String(), "error.reason").String())
		})
	}
}

func TestMealPlanRejectsMalformedBody(t *testing.T) {
	w := post(newRouter(&fakeGenerator{}), "/v1/meal-plans", `{"age":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeMeal(t *testing.T) {
	g := &fakeGenerator{macros: &nutritionsvc.Macros{Calories: 400, ProteinG: 30}}
	w := post(newRouter(g), "/v1/meals/analyze", `{"description":"two eggs and toast"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "two eggs and toast", g.desc)
	assert.InDelta(t, 400, gjson.Get(w.Body.String(), "calories").Float(), 0.001)
}

func TestTargetsIsLocal(t *testing.T) {
	g := &fakeGenerator{err: assert.AnError}
	w := post(newRouter(g), "/v1/targets", profileJSON)

	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2759, gjson.Get(w.Body.String(), "calories").Int())

	w = post(newRouter(g), "/v1/targets", `{"age":200,"sex":"male","height_cm":180,"weight_kg":80}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "age", gjson.Get(w.Body.String(), "error.details.field").String())
}
