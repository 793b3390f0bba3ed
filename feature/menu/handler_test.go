package menu_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"menu-manager/core/reconcile"
	"menu-manager/core/selector"
	"menu-manager/core/staging"
	"menu-manager/feature/menu"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(t *testing.T, baselineJSON string) *fiber.App {
	t.Helper()
	svc, _ := newFileService(t, sourceConfig, baselineJSON, staging.NewMemoryStore())
	app := fiber.New()
	menu.NewHandler(svc).RegisterRoutes(app)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func decodeView(t *testing.T, data []byte) menu.View {
	t.Helper()
	var view menu.View
	require.NoError(t, json.Unmarshal(data, &view))
	return view
}

func TestHandleGetMenu(t *testing.T) {
	app := setupApp(t, `{"menu": ["Dumplings", "Noodles"], "lastUpdated": "2025-03-01T08:00:00.000Z"}`)

	status, body := doRequest(t, app, "GET", "/menu", "")
	assert.Equal(t, fiber.StatusOK, status)

	view := decodeView(t, body)
	assert.Equal(t, []string{"Dumplings", "Noodles"}, view.Dishes)
	assert.Equal(t, reconcile.StateBaselineActive, view.State)
	assert.Equal(t, 2025, view.BaselineUpdated.Year())
}

func TestHandleAddDish(t *testing.T) {
	app := setupApp(t, `{"menu": ["Dumplings"]}`)

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"added", `{"name": "Hot Pot"}`, fiber.StatusCreated},
		{"duplicate", `{"name": "Hot Pot"}`, fiber.StatusConflict},
		{"empty", `{"name": "   "}`, fiber.StatusBadRequest},
		{"invalid body", `{`, fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := doRequest(t, app, "POST", "/menu", tt.body)
			assert.Equal(t, tt.status, status)
		})
	}

	_, body := doRequest(t, app, "GET", "/menu", "")
	view := decodeView(t, body)
	assert.Equal(t, []string{"Dumplings", "Hot Pot"}, view.Dishes)
	assert.True(t, view.HasStagedChanges)
}

func TestHandleRenameDish(t *testing.T) {
	app := setupApp(t, `{"menu": ["Kung Pao Chicken", "Noodles"]}`)

	status, body := doRequest(t, app, "PUT", "/menu/Kung%20Pao%20Chicken", `{"name": "Gong Bao Chicken"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []string{"Gong Bao Chicken", "Noodles"}, decodeView(t, body).Dishes)

	status, _ = doRequest(t, app, "PUT", "/menu/Missing", `{"name": "Other"}`)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = doRequest(t, app, "PUT", "/menu/Noodles", `{"name": "Gong Bao Chicken"}`)
	assert.Equal(t, fiber.StatusConflict, status)

	status, _ = doRequest(t, app, "PUT", "/menu/Noodles", `{"name": ""}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestHandleDeleteDish(t *testing.T) {
	app := setupApp(t, `{"menu": ["Dumplings", "Noodles"]}`)

	status, body := doRequest(t, app, "DELETE", "/menu/Dumplings", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []string{"Noodles"}, decodeView(t, body).Dishes)

	status, body = doRequest(t, app, "DELETE", "/menu/Dumplings", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []string{"Noodles"}, decodeView(t, body).Dishes)
}

func TestHandleSample(t *testing.T) {
	app := setupApp(t, `{"menu": ["A", "B", "C"]}`)

	status, body := doRequest(t, app, "GET", "/menu/sample?count=2", "")
	assert.Equal(t, fiber.StatusOK, status)

	var result selector.Result
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Len(t, result.Dishes, 2)
	assert.Equal(t, 2, result.Effective)
	assert.False(t, result.Clamped)

	status, body = doRequest(t, app, "GET", "/menu/sample?count=9", "")
	assert.Equal(t, fiber.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, 3, result.Effective)
	assert.True(t, result.Clamped)
}

func TestHandleSample_EmptyMenu(t *testing.T) {
	app := setupApp(t, `{"menu": []}`)

	status, body := doRequest(t, app, "GET", "/menu/sample?count=1", "")
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Contains(t, string(body), "error")
}

func TestHandleSyncAndReset(t *testing.T) {
	app := setupApp(t, `{"menu": ["Dumplings"]}`)

	status, _ := doRequest(t, app, "POST", "/menu/sync", "")
	assert.Equal(t, fiber.StatusConflict, status)
	status, _ = doRequest(t, app, "POST", "/menu/reset", "")
	assert.Equal(t, fiber.StatusConflict, status)

	doRequest(t, app, "POST", "/menu", `{"name": "Noodles"}`)

	status, body := doRequest(t, app, "POST", "/menu/reset", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []string{"Dumplings"}, decodeView(t, body).Dishes)

	doRequest(t, app, "POST", "/menu", `{"name": "Noodles"}`)

	status, body = doRequest(t, app, "POST", "/menu/sync", "")
	assert.Equal(t, fiber.StatusOK, status)

	var result struct {
		Document struct {
			Menu        []string `json:"menu"`
			LastUpdated string   `json:"lastUpdated"`
		} `json:"document"`
		Location string `json:"location"`
	}
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, []string{"Dumplings", "Noodles"}, result.Document.Menu)
	assert.NotEmpty(t, result.Document.LastUpdated)
	assert.True(t, strings.HasSuffix(result.Location, "menu-data.json"))

	status, body = doRequest(t, app, "GET", "/menu/status", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(body), `"state":"baseline_active"`)
}

func TestHandleExport(t *testing.T) {
	app := setupApp(t, `{"menu": ["Dumplings"]}`)

	req := httptest.NewRequest("GET", "/menu/export?download=true", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "menu-data.json")

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"menu\": [")
	assert.Contains(t, string(data), `"Dumplings"`)
}

func TestHandleReload(t *testing.T) {
	app := setupApp(t, `{"menu": ["Dumplings"]}`)

	status, body := doRequest(t, app, "POST", "/menu/reload", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []string{"Dumplings"}, decodeView(t, body).Dishes)
}
