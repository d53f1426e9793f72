package entity

// Modo de composição da mensagem
type ComposeMode string

const (
	ModeTemplate ComposeMode = "template" // template fixo por tier
	ModeHybrid   ComposeMode = "hybrid"   // saudação/fechamento spintax + hook de bio
)

// ComposedMessage é a mensagem final de outreach. Imutável depois de gerada.
type ComposedMessage struct {
	Message              string       `json:"message"`
	TemplateUsed         string       `json:"template_used"`
	PersonalizationLevel TemplateTier `json:"personalization_level"`
	HooksUsed            []string     `json:"hooks_used,omitempty"`
	Confidence           float64      `json:"confidence"` // 0-1
	SpintaxUsed          bool         `json:"spintax_used"`
}
