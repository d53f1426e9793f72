package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mottivme/socialfy/internal/entity"
	"github.com/mottivme/socialfy/internal/infra/http/middleware"
	"github.com/mottivme/socialfy/internal/usecase"
)

type ScoreHandler struct {
	Scorer   *usecase.LeadScorer
	Composer *usecase.MessageComposer
}

func NewScoreHandler(scorer *usecase.LeadScorer, composer *usecase.MessageComposer) *ScoreHandler {
	return &ScoreHandler{
		Scorer:   scorer,
		Composer: composer,
	}
}

type ScoreLeadRequest struct {
	Profile entity.LeadProfile `json:"profile"`
}

// HandleScore (POST /webhook/score-lead)
func (h *ScoreHandler) HandleScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	if req.Profile.Username == "" {
		http.Error(w, "profile.username is required", http.StatusBadRequest)
		return
	}

	score := h.Scorer.ComputeScore(&req.Profile)
	middleware.RecordLeadScored(string(score.Priority))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(score)
}

type ComposeRequest struct {
	Profile entity.LeadProfile `json:"profile"`
	Mode    entity.ComposeMode `json:"mode"`
}

type ComposeResponse struct {
	Score   *entity.LeadScore       `json:"score"`
	Message *entity.ComposedMessage `json:"message"`
}

// HandleCompose (POST /webhook/compose-message)
// Pontua e compõe sem gastar quota nenhuma: útil para preview no painel
func (h *ScoreHandler) HandleCompose(w http.ResponseWriter, r *http.Request) {
	var req ComposeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	if req.Profile.Username == "" {
		http.Error(w, "profile.username is required", http.StatusBadRequest)
		return
	}

	mode := req.Mode
	if mode == "" {
		mode = entity.ModeHybrid
	}
	if mode != entity.ModeTemplate && mode != entity.ModeHybrid {
		http.Error(w, "mode must be template or hybrid", http.StatusBadRequest)
		return
	}

	score := h.Scorer.ComputeScore(&req.Profile)
	message := h.Composer.Compose(&req.Profile, score, mode)

	middleware.RecordLeadScored(string(score.Priority))
	middleware.RecordMessageComposed(string(mode), string(message.PersonalizationLevel))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ComposeResponse{
		Score:   score,
		Message: message,
	})
}
