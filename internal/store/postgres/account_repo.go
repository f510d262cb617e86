package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sintftl/voyage/internal/model"
)

// AccountRepo handles lobby account database operations.
type AccountRepo struct {
	db *sql.DB
}

// NewAccountRepo creates an AccountRepo.
func NewAccountRepo(db *sql.DB) *AccountRepo {
	return &AccountRepo{db: db}
}

// FindByProviderID looks up an account by OAuth provider and provider-specific ID.
func (r *AccountRepo) FindByProviderID(ctx context.Context, provider, providerID string) (*model.Account, error) {
	var a model.Account
	var avatar sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT id, provider, provider_id, display_name, avatar_url, created_at, updated_at
		 FROM accounts WHERE provider = $1 AND provider_id = $2`,
		provider, providerID,
	).Scan(&a.ID, &a.Provider, &a.ProviderID, &a.DisplayName, &avatar, &a.CreatedAt, &a.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find account by provider: %w", err)
	}
	a.AvatarURL = avatar.String
	return &a, nil
}

// FindByID looks up an account by its UUID.
func (r *AccountRepo) FindByID(ctx context.Context, id string) (*model.Account, error) {
	var a model.Account
	var avatar sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT id, provider, provider_id, display_name, avatar_url, created_at, updated_at
		 FROM accounts WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.Provider, &a.ProviderID, &a.DisplayName, &avatar, &a.CreatedAt, &a.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find account by id: %w", err)
	}
	a.AvatarURL = avatar.String
	return &a, nil
}

// Upsert creates a new account or updates the display name and avatar if one already exists.
func (r *AccountRepo) Upsert(ctx context.Context, provider, providerID, displayName, avatarURL string) (*model.Account, error) {
	var a model.Account
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO accounts (provider, provider_id, display_name, avatar_url)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (provider, provider_id)
		 DO UPDATE SET display_name = EXCLUDED.display_name, avatar_url = EXCLUDED.avatar_url, updated_at = now()
		 RETURNING id, provider, provider_id, display_name, avatar_url, created_at, updated_at`,
		provider, providerID, displayName, avatarURL,
	).Scan(&a.ID, &a.Provider, &a.ProviderID, &a.DisplayName, &a.AvatarURL, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert account: %w", err)
	}
	return &a, nil
}

// UpdateDisplayName updates an account's display name.
func (r *AccountRepo) UpdateDisplayName(ctx context.Context, id, displayName string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE accounts SET display_name = $1, updated_at = now() WHERE id = $2`,
		displayName, id,
	)
	if err != nil {
		return fmt.Errorf("update display name: %w", err)
	}
	return nil
}
