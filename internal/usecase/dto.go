package usecase

import "github.com/mottivme/socialfy/internal/entity"

// ScoredLead é o snapshot do lead pontuado que vai para o CRM
type ScoredLead struct {
	Username           string `json:"username"`
	FullName           string `json:"full_name,omitempty"`
	Bio                string `json:"bio,omitempty"`
	TotalScore         int    `json:"total_score"`
	Priority           string `json:"priority"`
	DetectedProfession string `json:"detected_profession,omitempty"`
	ApproachNotes      string `json:"approach_notes,omitempty"`
	TenantID           string `json:"tenant_id"`
}

type OutreachInput struct {
	TenantID string             `json:"tenant_id"`
	Profile  entity.LeadProfile `json:"profile"`
	Mode     entity.ComposeMode `json:"mode"`
}

type OutreachOutput struct {
	Score           *entity.LeadScore       `json:"score"`
	Message         *entity.ComposedMessage `json:"message"`
	AccountID       string                  `json:"account_id"`
	AccountUsername string                  `json:"account_username"`
	Dispatched      bool                    `json:"dispatched"`
	Msg             string                  `json:"msg,omitempty"`
}

type CreateAccountInput struct {
	TenantID    string `json:"tenant_id"`
	Username    string `json:"username"`
	DailyLimit  int    `json:"daily_limit"`
	HourlyLimit int    `json:"hourly_limit"`
}

// TenantStats agrega capacidade e uso das contas de um tenant
type TenantStats struct {
	TenantID            string         `json:"tenant_id"`
	TotalAccounts       int            `json:"total_accounts"`
	ActiveAccounts      int            `json:"active_accounts"`
	AvailableAccounts   int            `json:"available_accounts"`
	TotalDailyCapacity  int            `json:"total_daily_capacity"`
	TotalSentToday      int            `json:"total_sent_today"`
	TotalRemainingToday int            `json:"total_remaining_today"`
	Accounts            []AccountStats `json:"accounts"`
}

type AccountStats struct {
	Username          string `json:"username"`
	Status            string `json:"status"`
	IsAvailable       bool   `json:"is_available"`
	RemainingToday    int    `json:"remaining_today"`
	RemainingThisHour int    `json:"remaining_this_hour"`
}
