package usecase

import (
	"testing"

	"github.com/mottivme/socialfy/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestValidateCreateAccountInput(t *testing.T) {
	valid := CreateAccountInput{TenantID: "acme", Username: "conta_a", DailyLimit: 50, HourlyLimit: 10}
	assert.Empty(t, ValidateCreateAccountInput(valid))

	// Defaults são resolvidos na entidade, zero aqui é válido
	assert.Empty(t, ValidateCreateAccountInput(CreateAccountInput{TenantID: "acme", Username: "conta_a"}))

	errs := ValidateCreateAccountInput(CreateAccountInput{Username: "conta_a"})
	assert.Len(t, errs, 1)
	assert.Equal(t, "tenant_id", errs[0].Field)

	errs = ValidateCreateAccountInput(CreateAccountInput{TenantID: "acme", Username: "conta com espaço"})
	assert.Len(t, errs, 1)
	assert.Equal(t, "username", errs[0].Field)

	errs = ValidateCreateAccountInput(CreateAccountInput{TenantID: "acme", Username: "conta_a", DailyLimit: 9999})
	assert.Len(t, errs, 1)
	assert.Equal(t, "daily_limit", errs[0].Field)

	errs = ValidateCreateAccountInput(CreateAccountInput{TenantID: "acme", Username: "conta_a", DailyLimit: 10, HourlyLimit: 50})
	assert.Len(t, errs, 1)
	assert.Equal(t, "hourly_limit", errs[0].Field)
}

func TestValidateOutreachInput(t *testing.T) {
	valid := OutreachInput{
		TenantID: "acme",
		Profile:  entity.LeadProfile{Username: "joao.ceo"},
		Mode:     entity.ModeTemplate,
	}
	assert.Empty(t, ValidateOutreachInput(valid))

	// Modo vazio cai no default depois, aqui passa
	valid.Mode = ""
	assert.Empty(t, ValidateOutreachInput(valid))

	errs := ValidateOutreachInput(OutreachInput{Profile: entity.LeadProfile{Username: "joao"}})
	assert.Len(t, errs, 1)
	assert.Equal(t, "tenant_id", errs[0].Field)

	errs = ValidateOutreachInput(OutreachInput{TenantID: "acme"})
	assert.Len(t, errs, 1)
	assert.Equal(t, "profile.username", errs[0].Field)

	errs = ValidateOutreachInput(OutreachInput{
		TenantID: "acme",
		Profile:  entity.LeadProfile{Username: "joao"},
		Mode:     entity.ComposeMode("morse"),
	})
	assert.Len(t, errs, 1)
	assert.Equal(t, "mode", errs[0].Field)
}
