package database

import (
	"context"
	"database/sql"
	"time"
)

// SendLogRepository guarda cada DM despachada. É a fonte da recontagem de
// sent_today/sent_this_hour do QuotaManager.
type SendLogRepository struct {
	DB *sql.DB
}

func NewSendLogRepository(db *sql.DB) *SendLogRepository {
	return &SendLogRepository{DB: db}
}

func (r *SendLogRepository) CountSends(ctx context.Context, accountID string, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM dm_send_log WHERE account_id = $1 AND sent_at >= $2`

	var count int
	err := r.DB.QueryRowContext(ctx, query, accountID, since).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SendLogRepository) LogSend(ctx context.Context, accountID, tenantID, targetUsername, message string) error {
	query := `
		INSERT INTO dm_send_log (account_id, tenant_id, target_username, message, sent_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	_, err := r.DB.ExecContext(ctx, query, accountID, tenantID, targetUsername, message)
	return err
}
