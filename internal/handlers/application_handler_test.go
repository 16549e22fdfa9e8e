package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type applicationPayload struct {
	ID          string  `json:"id"`
	Company     string  `json:"company"`
	Position    string  `json:"position"`
	Status      string  `json:"status"`
	AppliedDate string  `json:"appliedDate"`
	Resume      *string `json:"resume"`
	CoverLetter *string `json:"coverLetter"`
}

func createApplication(t *testing.T, ts *testServer, company, position string) applicationPayload {
	t.Helper()
	res, body := ts.sendJSON(t, http.MethodPost, "/api/applications", map[string]interface{}{
		"company":        company,
		"position":       position,
		"jobDescription": "Build and maintain backend services.",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var payload struct {
		Application applicationPayload `json:"application"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	return payload.Application
}

func TestCreateApplication_Defaults(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "apps@example.com", "password123", "Apps User")

	app := createApplication(t, ts, "Acme", "Engineer")
	assert.NotEmpty(t, app.ID)
	assert.Equal(t, "Acme", app.Company)
	assert.Equal(t, "Engineer", app.Position)
	assert.Equal(t, "applied", app.Status)
	assert.NotEmpty(t, app.AppliedDate)
	assert.Nil(t, app.Resume)
	assert.Nil(t, app.CoverLetter)
}

func TestCreateApplication_RequiresSession(t *testing.T) {
	ts := newTestServer(t)

	res, _ := ts.sendJSON(t, http.MethodPost, "/api/applications", map[string]interface{}{
		"company":        "Acme",
		"position":       "Engineer",
		"jobDescription": "desc",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestCreateApplication_RejectsBadStatus(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "apps@example.com", "password123", "Apps User")

	res, body := ts.sendJSON(t, http.MethodPost, "/api/applications", map[string]interface{}{
		"company":        "Acme",
		"position":       "Engineer",
		"jobDescription": "desc",
		"status":         "ghosted",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "error")
}

func TestListApplications_EmptyIsArray(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "fresh@example.com", "password123", "Fresh User")

	res, body := ts.sendJSON(t, http.MethodGet, "/api/applications", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	// a fresh account gets [], never null
	assert.JSONEq(t, `{"applications":[]}`, body)
}

func TestListApplications_OwnerScoped(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "owner@example.com", "password123", "Owner")
	createApplication(t, ts, "Acme", "Engineer")
	createApplication(t, ts, "Globex", "Analyst")

	// a second user on a fresh client sees none of them
	other := newTestServer(t)
	other.AppRepo.apps = ts.AppRepo.apps

	res, body := ts.sendJSON(t, http.MethodGet, "/api/applications", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var payload struct {
		Applications []applicationPayload `json:"applications"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	assert.Len(t, payload.Applications, 2)

	other.register(t, "stranger@example.com", "password123", "Stranger")
	res, body = other.sendJSON(t, http.MethodGet, "/api/applications", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	assert.Empty(t, payload.Applications)
}

func TestGetApplication_NotFound(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "apps@example.com", "password123", "Apps User")

	res, body := ts.sendJSON(t, http.MethodGet, "/api/applications/no-such-id", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, body, "Application not found")
}

func TestUpdateApplication_PartialFields(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "apps@example.com", "password123", "Apps User")
	app := createApplication(t, ts, "Acme", "Engineer")

	res, body := ts.sendJSON(t, http.MethodPut, "/api/applications/"+app.ID, map[string]interface{}{
		"status": "interview",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var payload struct {
		Application applicationPayload `json:"application"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	assert.Equal(t, "interview", payload.Application.Status)
	// untouched fields survive
	assert.Equal(t, "Acme", payload.Application.Company)
	assert.Equal(t, "Engineer", payload.Application.Position)
}

func TestUpdateApplication_ForeignRecord(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "owner@example.com", "password123", "Owner")
	app := createApplication(t, ts, "Acme", "Engineer")

	other := newTestServer(t)
	other.AppRepo.apps = ts.AppRepo.apps
	other.register(t, "stranger@example.com", "password123", "Stranger")

	res, body := other.sendJSON(t, http.MethodPut, "/api/applications/"+app.ID, map[string]interface{}{
		"status": "offer",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, body, "Application not found")
}

func TestDeleteApplication(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "apps@example.com", "password123", "Apps User")
	app := createApplication(t, ts, "Acme", "Engineer")

	res, body := ts.sendJSON(t, http.MethodDelete, "/api/applications/"+app.ID, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "\"success\":true")

	res, _ = ts.sendJSON(t, http.MethodGet, "/api/applications/"+app.ID, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// deleting again reports not found
	res, _ = ts.sendJSON(t, http.MethodDelete, "/api/applications/"+app.ID, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
