package routes

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createProject(t *testing.T, api *testAPI, name string, token string) int {
	t.Helper()
	rr := api.do(http.MethodPost, "/api/v1/projects/", map[string]string{"name": name}, token)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return idOf(t, decodeObject(t, rr))
}

func createBOMItem(t *testing.T, api *testAPI, projectID int, body map[string]interface{}, token string) map[string]interface{} {
	t.Helper()
	rr := api.do(http.MethodPost, fmt.Sprintf("/api/v1/projects/%d/bom", projectID), body, token)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decodeObject(t, rr)
}

func TestProjectsAPI_CRUD(t *testing.T) {
	api := newTestAPI(t)

	rr := api.do(http.MethodPost, "/api/v1/projects/", map[string]interface{}{
		"name":        "Voron 2.4",
		"description": "<b>Printer</b> build",
		"color":       "#ff0000",
	}, "")
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	created := decodeObject(t, rr)
	assert.Equal(t, "Voron 2.4", created["name"])
	assert.Equal(t, "active", created["status"])
	assert.Equal(t, "Printer build", created["description"])
	path := fmt.Sprintf("/api/v1/projects/%d", idOf(t, created))

	rr = api.do(http.MethodPatch, path, map[string]string{"status": "completed"}, "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "completed", decodeObject(t, rr)["status"])

	rr = api.do(http.MethodPatch, path, map[string]string{"status": "exploded"}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = api.do(http.MethodGet, "/api/v1/projects/?status=completed", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decodeList(t, rr), 1)

	rr = api.do(http.MethodGet, "/api/v1/projects/?status=active", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decodeList(t, rr), 0)

	assert.Equal(t, http.StatusNoContent, api.do(http.MethodDelete, path, nil, "").Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, path, nil, "").Code)
}

func TestProjectsAPI_NameRequired(t *testing.T) {
	api := newTestAPI(t)

	rr := api.do(http.MethodPost, "/api/v1/projects/", map[string]string{"color": "red"}, "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestBOMAPI_CreateDefaults(t *testing.T) {
	api := newTestAPI(t)
	projectID := createProject(t, api, "Enclosure", "")

	first := createBOMItem(t, api, projectID, map[string]interface{}{"name": "M3x8 screws"}, "")
	second := createBOMItem(t, api, projectID, map[string]interface{}{
		"name":            "Hinges",
		"quantity_needed": 2,
		"unit_price":      4.5,
		"sourcing_url":    "https://example.com/hinge",
		"remarks":         "<b>brass</b> preferred",
	}, "")

	assert.Equal(t, float64(1), first["quantity_needed"])
	assert.Equal(t, float64(0), first["quantity_acquired"])
	assert.Nil(t, first["unit_price"])
	assert.Nil(t, first["archive_id"])
	assert.Equal(t, float64(0), first["sort_order"])
	assert.Equal(t, float64(projectID), first["project_id"])

	assert.Equal(t, float64(1), second["sort_order"])
	assert.Equal(t, 4.5, second["unit_price"])
	assert.Equal(t, "brass preferred", second["remarks"])
}

func TestBOMAPI_Validation(t *testing.T) {
	api := newTestAPI(t)
	projectID := createProject(t, api, "Validation", "")
	path := fmt.Sprintf("/api/v1/projects/%d/bom", projectID)

	cases := []struct {
		name string
		body map[string]interface{}
		code int
	}{
		{"missing name", map[string]interface{}{"quantity_needed": 1}, http.StatusBadRequest},
		{"zero needed", map[string]interface{}{"name": "x", "quantity_needed": 0}, http.StatusBadRequest},
		{"negative acquired", map[string]interface{}{"name": "x", "quantity_acquired": -1}, http.StatusBadRequest},
		{"negative price", map[string]interface{}{"name": "x", "unit_price": -2}, http.StatusBadRequest},
		{"bad url", map[string]interface{}{"name": "x", "sourcing_url": "not a url"}, http.StatusBadRequest},
		{"unknown archive", map[string]interface{}{"name": "x", "archive_id": 42}, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := api.do(http.MethodPost, path, tc.body, "")
			assert.Equal(t, tc.code, rr.Code, rr.Body.String())
		})
	}

	rr := api.do(http.MethodPost, "/api/v1/projects/999/bom", map[string]interface{}{"name": "x"}, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestBOMAPI_UpdateAndDelete(t *testing.T) {
	api := newTestAPI(t)
	projectID := createProject(t, api, "Updates", "")
	otherProjectID := createProject(t, api, "Other", "")
	item := createBOMItem(t, api, projectID, map[string]interface{}{"name": "Bearing", "quantity_needed": 4}, "")
	path := fmt.Sprintf("/api/v1/projects/%d/bom/%d", projectID, idOf(t, item))

	rr := api.do(http.MethodPatch, path, map[string]interface{}{"quantity_acquired": 4, "unit_price": 1.25}, "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	updated := decodeObject(t, rr)
	assert.Equal(t, float64(4), updated["quantity_acquired"])
	assert.Equal(t, 1.25, updated["unit_price"])
	assert.Equal(t, "Bearing", updated["name"])

	rr = api.do(http.MethodPatch, fmt.Sprintf("/api/v1/projects/%d/bom/%d", otherProjectID, idOf(t, item)), map[string]interface{}{"name": "moved"}, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	assert.Equal(t, http.StatusNoContent, api.do(http.MethodDelete, path, nil, "").Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodDelete, path, nil, "").Code)
}

func TestBOMAPI_Reorder(t *testing.T) {
	api := newTestAPI(t)
	projectID := createProject(t, api, "Reorder", "")
	a := idOf(t, createBOMItem(t, api, projectID, map[string]interface{}{"name": "a"}, ""))
	b := idOf(t, createBOMItem(t, api, projectID, map[string]interface{}{"name": "b"}, ""))
	c := idOf(t, createBOMItem(t, api, projectID, map[string]interface{}{"name": "c"}, ""))
	path := fmt.Sprintf("/api/v1/projects/%d/bom/reorder", projectID)

	rr := api.do(http.MethodPost, path, map[string]interface{}{"item_ids": []int{c, a, b}}, "")

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	items := decodeList(t, rr)
	require.Len(t, items, 3)
	assert.Equal(t, "c", items[0]["name"])
	assert.Equal(t, "a", items[1]["name"])
	assert.Equal(t, "b", items[2]["name"])

	listed := decodeList(t, api.do(http.MethodGet, fmt.Sprintf("/api/v1/projects/%d/bom", projectID), nil, ""))
	assert.Equal(t, "c", listed[0]["name"])

	rr = api.do(http.MethodPost, path, map[string]interface{}{"item_ids": []int{a, b}}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	rr = api.do(http.MethodPost, path, map[string]interface{}{"item_ids": []int{a, b, 999}}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	rr = api.do(http.MethodPost, path, map[string]interface{}{"item_ids": []int{a, a, b}}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestBOMAPI_Summary(t *testing.T) {
	api := newTestAPI(t)
	projectID := createProject(t, api, "Summary", "")
	createBOMItem(t, api, projectID, map[string]interface{}{
		"name": "Extrusion", "quantity_needed": 4, "quantity_acquired": 1, "unit_price": 2.5,
	}, "")
	createBOMItem(t, api, projectID, map[string]interface{}{
		"name": "PSU", "quantity_needed": 1, "quantity_acquired": 1, "unit_price": 30,
	}, "")
	createBOMItem(t, api, projectID, map[string]interface{}{
		"name": "Zip ties", "quantity_needed": 10,
	}, "")

	rr := api.do(http.MethodGet, fmt.Sprintf("/api/v1/projects/%d/bom/summary", projectID), nil, "")

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	summary := decodeObject(t, rr)
	assert.Equal(t, float64(3), summary["total_items"])
	assert.Equal(t, float64(1), summary["completed_items"])
	assert.Equal(t, float64(15), summary["total_quantity_needed"])
	assert.Equal(t, float64(2), summary["total_quantity_acquired"])
	assert.Equal(t, float64(40), summary["total_cost"])
	assert.Equal(t, 7.5, summary["remaining_cost"])

	rr = api.do(http.MethodGet, "/api/v1/projects/", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	projects := decodeList(t, rr)
	require.Len(t, projects, 1)
	assert.Equal(t, float64(3), projects[0]["bom_total"])
	assert.Equal(t, float64(1), projects[0]["bom_completed"])
}

func TestProjectDelete_CascadesBOMItems(t *testing.T) {
	api := newTestAPI(t)
	projectID := createProject(t, api, "Doomed", "")
	keptID := createProject(t, api, "Kept", "")
	createBOMItem(t, api, projectID, map[string]interface{}{"name": "a"}, "")
	createBOMItem(t, api, projectID, map[string]interface{}{"name": "b"}, "")
	createBOMItem(t, api, keptID, map[string]interface{}{"name": "c"}, "")
	archive := decodeObject(t, api.do(http.MethodPost, "/api/v1/archives/", map[string]interface{}{
		"filename":   "part.3mf",
		"project_id": projectID,
	}, ""))

	rr := api.do(http.MethodDelete, fmt.Sprintf("/api/v1/projects/%d", projectID), nil, "")
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = api.do(http.MethodGet, fmt.Sprintf("/api/v1/projects/%d/bom", projectID), nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	kept := decodeList(t, api.do(http.MethodGet, fmt.Sprintf("/api/v1/projects/%d/bom", keptID), nil, ""))
	assert.Len(t, kept, 1)

	rr = api.do(http.MethodGet, fmt.Sprintf("/api/v1/archives/%d", idOf(t, archive)), nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Nil(t, decodeObject(t, rr)["project_id"])
}

func TestArchiveDelete_NullsBOMReference(t *testing.T) {
	api := newTestAPI(t)
	projectID := createProject(t, api, "Printed parts", "")
	rr := api.do(http.MethodPost, "/api/v1/archives/", map[string]interface{}{
		"filename":   "bracket.3mf",
		"print_name": "Bracket",
		"project_id": projectID,
	}, "")
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	archive := decodeObject(t, rr)
	assert.Equal(t, "completed", archive["status"])
	archiveID := idOf(t, archive)

	item := createBOMItem(t, api, projectID, map[string]interface{}{"name": "Bracket", "archive_id": archiveID}, "")
	assert.Equal(t, float64(archiveID), item["archive_id"])

	filtered := decodeList(t, api.do(http.MethodGet, fmt.Sprintf("/api/v1/archives/?project_id=%d", projectID), nil, ""))
	assert.Len(t, filtered, 1)

	rr = api.do(http.MethodDelete, fmt.Sprintf("/api/v1/archives/%d", archiveID), nil, "")
	require.Equal(t, http.StatusNoContent, rr.Code)

	items := decodeList(t, api.do(http.MethodGet, fmt.Sprintf("/api/v1/projects/%d/bom", projectID), nil, ""))
	require.Len(t, items, 1)
	assert.Equal(t, "Bracket", items[0]["name"])
	assert.Nil(t, items[0]["archive_id"])
}

func TestResourceGate(t *testing.T) {
	api := newTestAPI(t)
	createProject(t, api, "Before auth", "")

	token := api.setupAdmin("gateadmin", "password123")

	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodGet, "/api/v1/projects/", nil, "").Code)
	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodGet, "/api/v1/archives/", nil, "").Code)

	rr := api.do(http.MethodGet, "/api/v1/projects/", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decodeList(t, rr), 1)
	createProject(t, api, "With auth", token)

	require.Equal(t, http.StatusOK, api.do(http.MethodPost, "/api/v1/auth/disable", nil, token).Code)
	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/v1/projects/", nil, "").Code)
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)

	rr := api.do(http.MethodGet, "/health", nil, "")

	require.Equal(t, http.StatusOK, rr.Code)
	result := decodeObject(t, rr)
	assert.Equal(t, "healthy", result["status"])
	assert.Equal(t, "up", result["db"])
	assert.Equal(t, "bomtracker", result["service"])
	assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))
}

func TestMetricsEndpoint(t *testing.T) {
	api := newTestAPI(t)
	api.do(http.MethodGet, "/api/v1/auth/status", nil, "")

	rr := api.do(http.MethodGet, "/metrics", nil, "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "bomtracker_http_requests_total")
}

func TestArchivesAPI_StatusValidation(t *testing.T) {
	api := newTestAPI(t)

	rr := api.do(http.MethodPost, "/api/v1/archives/", map[string]string{"filename": "a.3mf", "status": "exploded"}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "status: failed archivestatus validation", decodeObject(t, rr)["detail"])

	rr = api.do(http.MethodPost, "/api/v1/archives/", map[string]string{"filename": "a.3mf", "status": "failed"}, "")
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Equal(t, "failed", decodeObject(t, rr)["status"])
}
