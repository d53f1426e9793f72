package database

import (
	"context"
	"database/sql"

	"github.com/mottivme/socialfy/internal/usecase"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// Upsert grava o snapshot pontuado do lead; reprocessar o mesmo username do
// mesmo tenant só atualiza o score.
func (r *LeadRepository) Upsert(ctx context.Context, lead *usecase.ScoredLead) error {
	query := `
		INSERT INTO scored_leads
			(tenant_id, username, full_name, bio, total_score, priority, detected_profession, approach_notes, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (tenant_id, username)
		DO UPDATE SET
			full_name = COALESCE(EXCLUDED.full_name, scored_leads.full_name),
			bio = COALESCE(EXCLUDED.bio, scored_leads.bio),
			total_score = EXCLUDED.total_score,
			priority = EXCLUDED.priority,
			detected_profession = EXCLUDED.detected_profession,
			approach_notes = EXCLUDED.approach_notes,
			updated_at = NOW()
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.TenantID,
		lead.Username,
		nullString(lead.FullName),
		nullString(lead.Bio),
		lead.TotalScore,
		lead.Priority,
		nullString(lead.DetectedProfession),
		nullString(lead.ApproachNotes),
	)

	return err
}
