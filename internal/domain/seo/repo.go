package seo

import (
	"context"

	"github.com/google/uuid"
)

type KeywordRepository interface {
	Create(ctx context.Context, k *KeywordSnapshot) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*KeywordSnapshot, int, error)
}

type AuditRepository interface {
	Create(ctx context.Context, a *PageAudit) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*PageAudit, int, error)
}
