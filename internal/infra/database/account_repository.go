package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/mottivme/socialfy/internal/entity"
)

type SendingAccountRepository struct {
	DB *sql.DB
}

func NewSendingAccountRepository(db *sql.DB) *SendingAccountRepository {
	return &SendingAccountRepository{DB: db}
}

func (r *SendingAccountRepository) Create(ctx context.Context, account *entity.SendingAccount) error {
	query := `
		INSERT INTO sending_accounts
			(id, tenant_id, username, status, daily_limit, hourly_limit, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	`
	_, err := r.DB.ExecContext(ctx, query,
		account.ID,
		account.TenantID,
		account.Username,
		account.Status,
		account.DailyLimit,
		account.HourlyLimit,
		nullString(account.Notes),
	)
	return err
}

func (r *SendingAccountRepository) FindByID(ctx context.Context, id string) (*entity.SendingAccount, error) {
	query := `
		SELECT id, tenant_id, username, status, daily_limit, hourly_limit,
		       last_used_at, blocked_until, COALESCE(notes, ''), created_at, updated_at
		FROM sending_accounts
		WHERE id = $1
	`
	account, err := scanAccount(r.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return account, err
}

func (r *SendingAccountRepository) FindByTenant(ctx context.Context, tenantID string) ([]*entity.SendingAccount, error) {
	query := `
		SELECT id, tenant_id, username, status, daily_limit, hourly_limit,
		       last_used_at, blocked_until, COALESCE(notes, ''), created_at, updated_at
		FROM sending_accounts
		WHERE tenant_id = $1
		ORDER BY created_at
	`
	rows, err := r.DB.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []*entity.SendingAccount
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

func (r *SendingAccountRepository) UpdateLastUsed(ctx context.Context, id string, usedAt time.Time) error {
	query := `UPDATE sending_accounts SET last_used_at = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, id, usedAt)
	return err
}

func (r *SendingAccountRepository) UpdateBlock(ctx context.Context, id, status string, blockedUntil *time.Time, notes string) error {
	query := `
		UPDATE sending_accounts
		SET status = $2, blocked_until = $3, notes = $4, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.DB.ExecContext(ctx, query, id, status, blockedUntil, nullString(notes))
	return err
}

func (r *SendingAccountRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM sending_accounts WHERE id = $1`, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*entity.SendingAccount, error) {
	var a entity.SendingAccount
	var lastUsed, blockedUntil sql.NullTime

	err := row.Scan(
		&a.ID,
		&a.TenantID,
		&a.Username,
		&a.Status,
		&a.DailyLimit,
		&a.HourlyLimit,
		&lastUsed,
		&blockedUntil,
		&a.Notes,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if lastUsed.Valid {
		a.LastUsedAt = &lastUsed.Time
	}
	if blockedUntil.Valid {
		a.BlockedUntil = &blockedUntil.Time
	}
	return &a, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
