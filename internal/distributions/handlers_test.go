package distributions

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPayoutApp(t *testing.T) (*fiber.App, *Service) {
	s, _ := setupDistributionsTest(t)
	h := &Handlers{Service: s}
	app := fiber.New()
	app.Post("/api/v1/distributions/process-payout", h.ProcessPayout)
	app.Post("/api/v1/distributions/preview-payout", h.PreviewPayout)
	app.Get("/api/v1/distributions/view-period/:project_id/:year/:month", h.ViewPeriod)
	app.Get("/api/v1/distributions/view-mine", h.ViewMine)
	return app, s
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestProcessPayoutHandler_InvalidProjectID(t *testing.T) {
	app, _ := newPayoutApp(t)
	resp := postJSON(t, app, "/api/v1/distributions/process-payout", map[string]interface{}{
		"project_id": "not-a-uuid", "year": 2026, "month": 7,
		"total_barrels": 1000, "price_per_barrel": 70,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestProcessPayoutHandler_UnknownProject(t *testing.T) {
	app, _ := newPayoutApp(t)
	resp := postJSON(t, app, "/api/v1/distributions/process-payout", map[string]interface{}{
		"project_id": uuid.New().String(), "year": 2026, "month": 7,
		"total_barrels": 1000, "price_per_barrel": 70,
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestProcessPayoutHandler_NegativeBarrels(t *testing.T) {
	app, s := newPayoutApp(t)
	project, _ := seedProjectWithStakes(t, s.DB, 100)
	resp := postJSON(t, app, "/api/v1/distributions/process-payout", map[string]interface{}{
		"project_id": project.ProjectID.String(), "year": 2026, "month": 7,
		"total_barrels": -5, "price_per_barrel": 70,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestPreviewPayoutHandler_Success(t *testing.T) {
	app, s := newPayoutApp(t)
	project, _ := seedProjectWithStakes(t, s.DB, 60, 40)

	b, _ := json.Marshal(map[string]interface{}{
		"project_id": project.ProjectID.String(), "year": 2026, "month": 7,
		"total_barrels": 1000, "price_per_barrel": 70, "operating_expenses": 800,
	})
	req := httptest.NewRequest("POST", "/api/v1/distributions/preview-payout", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "success", body["status"])
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "49285", data["net_investor_payout"])
}

func TestViewPeriodHandler_NotFound(t *testing.T) {
	app, s := newPayoutApp(t)
	project, _ := seedProjectWithStakes(t, s.DB, 100)

	req := httptest.NewRequest("GET", "/api/v1/distributions/view-period/"+project.ProjectID.String()+"/2026/7", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestViewMineHandler_NoInvestorProfile(t *testing.T) {
	s, _ := setupDistributionsTest(t)
	h := &Handlers{Service: s}
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user", map[string]interface{}{
			"user_id": uuid.New().String(),
			"role":    "admin",
		})
		return c.Next()
	})
	app.Get("/api/v1/distributions/view-mine", h.ViewMine)

	req := httptest.NewRequest("GET", "/api/v1/distributions/view-mine", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestViewMineHandler_ReturnsRows(t *testing.T) {
	s, db := setupDistributionsTest(t)
	project, investors := seedProjectWithStakes(t, db, 100)
	_, err := s.ProcessPayout(context.Background(), project.ProjectID, 2026, 7, monthInput(1000, 70, 800))
	require.NoError(t, err)

	h := &Handlers{Service: s}
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user", map[string]interface{}{
			"user_id":     uuid.New().String(),
			"role":        "investor",
			"investor_id": investors[0].InvestorID.String(),
		})
		return c.Next()
	})
	app.Get("/api/v1/distributions/view-mine", h.ViewMine)

	req := httptest.NewRequest("GET", "/api/v1/distributions/view-mine", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	rows, ok := body["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, rows, 1)
}
