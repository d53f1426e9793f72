package handlers

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mottivme/socialfy/internal/entity"
	"github.com/mottivme/socialfy/internal/usecase"
	"github.com/stretchr/testify/assert"
)

func newScoreHandler() *ScoreHandler {
	rng := rand.New(rand.NewSource(42))
	return NewScoreHandler(usecase.NewLeadScorer(), usecase.NewMessageComposer(rng))
}

func TestHandleScoreSuccess(t *testing.T) {
	handler := newScoreHandler()

	body := `{
		"profile": {
			"username": "dra.ana",
			"full_name": "Dra. Ana Costa",
			"bio": "Médica dermatologista | Harmonização | São Paulo",
			"followers_count": 12000,
			"following_count": 900,
			"posts_count": 80,
			"engagement_rate": 3.5
		}
	}`

	req := httptest.NewRequest("POST", "/webhook/score-lead", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.HandleScore(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var score entity.LeadScore
	err := json.Unmarshal(rec.Body.Bytes(), &score)
	assert.Nil(t, err)
	assert.Equal(t, "dra.ana", score.Username)
	assert.Greater(t, score.TotalScore, 0)
	assert.Equal(t, "médico", score.DetectedProfession)
	assert.True(t, score.IsDecisionMaker)
}

func TestHandleScoreRejectsInvalidJSON(t *testing.T) {
	handler := newScoreHandler()

	req := httptest.NewRequest("POST", "/webhook/score-lead", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	handler.HandleScore(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleScoreRequiresUsername(t *testing.T) {
	handler := newScoreHandler()

	req := httptest.NewRequest("POST", "/webhook/score-lead", strings.NewReader(`{"profile":{}}`))
	rec := httptest.NewRecorder()
	handler.HandleScore(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "profile.username")
}

func TestHandleComposePreview(t *testing.T) {
	handler := newScoreHandler()

	body := `{
		"profile": {
			"username": "joao.ceo",
			"full_name": "João Silva",
			"bio": "CEO e fundador da TechCorp | São Paulo",
			"followers_count": 15000,
			"following_count": 8000,
			"posts_count": 120,
			"engagement_rate": 3,
			"is_business": true
		},
		"mode": "hybrid"
	}`

	req := httptest.NewRequest("POST", "/webhook/compose-message", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.HandleCompose(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp ComposeResponse
	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	assert.Nil(t, err)
	assert.NotNil(t, resp.Score)
	assert.NotNil(t, resp.Message)
	assert.True(t, resp.Message.SpintaxUsed)
	assert.NotContains(t, resp.Message.Message, "{")
	assert.Contains(t, resp.Message.Message, "João")
}

func TestHandleComposeRejectsUnknownMode(t *testing.T) {
	handler := newScoreHandler()

	body := `{"profile": {"username": "joao"}, "mode": "smoke_signal"}`
	req := httptest.NewRequest("POST", "/webhook/compose-message", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.HandleCompose(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "mode")
}
