package entity

// Prioridade do lead baseada no score total
type LeadPriority string

const (
	PriorityHot       LeadPriority = "hot"       // >= 70: DM imediato
	PriorityWarm      LeadPriority = "warm"      // 50-69: DM em 24h
	PriorityCold      LeadPriority = "cold"      // 40-49: DM em 48h
	PriorityNurturing LeadPriority = "nurturing" // < 40: não enviar DM
)

// Tier de template recomendado para a mensagem
type TemplateTier string

const (
	TierUltra  TemplateTier = "ultra"
	TierHigh   TemplateTier = "high"
	TierMedium TemplateTier = "medium"
	TierLow    TemplateTier = "low"
)

// LeadScore é o resultado da pontuação de um lead. Derivado, nunca persistido
// como estado mutável: recalcula sob demanda a partir do LeadProfile.
type LeadScore struct {
	Username   string       `json:"username"`
	TotalScore int          `json:"total_score"`
	Priority   LeadPriority `json:"priority"`

	// Breakdown (cada um com teto próprio: 30/30/25/15)
	BioScore        int `json:"bio_score"`
	EngagementScore int `json:"engagement_score"`
	ProfileScore    int `json:"profile_score"`
	RecencyScore    int `json:"recency_score"`

	// Dados extraídos para personalização
	DetectedProfession string   `json:"detected_profession,omitempty"`
	DetectedInterests  []string `json:"detected_interests,omitempty"`
	DetectedLocation   string   `json:"detected_location,omitempty"`
	IsDecisionMaker    bool     `json:"is_decision_maker"`

	// Recomendações
	RecommendedTemplate  TemplateTier `json:"recommended_template"`
	PersonalizationHooks []string     `json:"personalization_hooks,omitempty"`
	ApproachNotes        string       `json:"approach_notes,omitempty"`
}
