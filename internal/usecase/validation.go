package usecase

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mottivme/socialfy/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Instagram: 1-30 chars, letras/números/ponto/underscore
var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9._]{1,30}$`)

func ValidateCreateAccountInput(input CreateAccountInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.TenantID) == "" {
		errors = append(errors, ValidationError{"tenant_id", "is required"})
	}

	if strings.TrimSpace(input.Username) == "" {
		errors = append(errors, ValidationError{"username", "is required"})
	} else if !usernameRe.MatchString(input.Username) {
		errors = append(errors, ValidationError{"username", "must be a valid instagram handle"})
	}

	if input.DailyLimit < 0 {
		errors = append(errors, ValidationError{"daily_limit", "must not be negative"})
	} else if input.DailyLimit > 500 {
		errors = append(errors, ValidationError{"daily_limit", "must not exceed 500"})
	}

	if input.HourlyLimit < 0 {
		errors = append(errors, ValidationError{"hourly_limit", "must not be negative"})
	} else if input.DailyLimit > 0 && input.HourlyLimit > input.DailyLimit {
		errors = append(errors, ValidationError{"hourly_limit", "must not exceed daily_limit"})
	}

	return errors
}

func ValidateOutreachInput(input OutreachInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.TenantID) == "" {
		errors = append(errors, ValidationError{"tenant_id", "is required"})
	}

	if strings.TrimSpace(input.Profile.Username) == "" {
		errors = append(errors, ValidationError{"profile.username", "is required"})
	} else if !usernameRe.MatchString(input.Profile.Username) {
		errors = append(errors, ValidationError{"profile.username", "must be a valid instagram handle"})
	}

	if input.Mode != "" && input.Mode != entity.ModeTemplate && input.Mode != entity.ModeHybrid {
		errors = append(errors, ValidationError{"mode", "must be template or hybrid"})
	}

	return errors
}
