package assets

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RegistryPG registers asset metadata in PostgreSQL.
type RegistryPG struct {
	pool *pgxpool.Pool
}

// NewRegistryPG constructs a PostgreSQL-backed metadata registry.
func NewRegistryPG(pool *pgxpool.Pool) *RegistryPG {
	return &RegistryPG{pool: pool}
}

// Register inserts the metadata row for a stored asset.
func (r *RegistryPG) Register(ctx context.Context, rec Record) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO assets (id, storage_key, mime, bytes, created_at)
VALUES ($1, $2, $3, $4, $5);
`, rec.ID, rec.StorageKey, rec.MIMEType, rec.Bytes, rec.CreatedAt)
	return err
}

var _ Registry = (*RegistryPG)(nil)
