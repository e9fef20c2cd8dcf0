package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/validately/api/internal/core/domain"
	"github.com/validately/api/internal/core/ports"
)

// TestCardLifecycle covers the PM surface: create a card, list own cards,
// read back metrics once a stakeholder has responded.
func TestCardLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	pmToken := signToken(t, "jane@example.com", ports.RolePM)

	// Create a card.
	payload, _ := json.Marshal(map[string]any{
		"title":       "GraphQL vs REST API Approach",
		"description": "Should we implement GraphQL or stick with REST?",
		"category":    "tech_stack",
		"audience":    []string{"engineering", "architecture"},
		"image_urls":  []string{"/placeholder.svg"},
	})
	resp := app.request(t, "POST", "/api/cards", pmToken, payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created domain.ValidationCard
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "jane@example.com", created.CreatedBy)

	// Invalid cards are rejected.
	badPayload, _ := json.Marshal(map[string]any{
		"title":       "",
		"description": "no title",
		"category":    "problem",
		"audience":    []string{"product-team"},
	})
	resp = app.request(t, "POST", "/api/cards", pmToken, badPayload)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	tooManyImages, _ := json.Marshal(map[string]any{
		"title":       "t",
		"description": "d",
		"category":    "problem",
		"audience":    []string{"product-team"},
		"image_urls":  []string{"/a.svg", "/b.svg", "/c.svg"},
	})
	resp = app.request(t, "POST", "/api/cards", pmToken, tooManyImages)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// PM listing only shows the PM's own cards.
	otherToken := signToken(t, "john@example.com", ports.RolePM)
	resp = app.request(t, "POST", "/api/cards", otherToken, payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = app.request(t, "GET", "/api/cards", pmToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var mine []domain.ValidationCard
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&mine))
	resp.Body.Close()
	require.Len(t, mine, 1)
	assert.Equal(t, created.ID, mine[0].ID)

	// Stakeholders see everything.
	stakeholderToken := signToken(t, "user1@example.com", ports.RoleStakeholder)
	resp = app.request(t, "GET", "/api/cards", stakeholderToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var all []domain.ValidationCard
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&all))
	resp.Body.Close()
	assert.Len(t, all, 2)

	// Direct feedback plus metrics.
	feedbackPayload, _ := json.Marshal(map[string]any{
		"approved": false,
		"comment":  "GraphQL has a steeper learning curve.",
	})
	resp = app.request(t, "POST", "/api/cards/"+created.ID.String()+"/feedback", stakeholderToken, feedbackPayload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	approvePayload, _ := json.Marshal(map[string]any{"approved": true})
	resp = app.request(t, "POST", "/api/cards/"+created.ID.String()+"/feedback", stakeholderToken, approvePayload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = app.request(t, "GET", "/api/cards/"+created.ID.String()+"/metrics", pmToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var metrics domain.CardMetrics
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&metrics))
	resp.Body.Close()
	assert.Equal(t, 1, metrics.ApprovalCount)
	assert.Equal(t, 1, metrics.RejectionCount)
	assert.Equal(t, 0.5, metrics.ApprovalRate)
	assert.Equal(t, []string{"GraphQL has a steeper learning curve."}, metrics.FeedbackComments)

	// Feedback against a nonexistent card 404s.
	resp = app.request(t, "POST", "/api/cards/"+uuid.NewString()+"/feedback", stakeholderToken, approvePayload)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestAuthRequired(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	req, err := http.NewRequest("GET", app.Server.URL+"/api/cards", nil)
	require.NoError(t, err)
	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	req, err = http.NewRequest("GET", app.Server.URL+"/api/cards", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: "garbage"})
	resp, err = app.Client.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}
