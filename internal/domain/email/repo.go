package email

import (
	"context"

	"github.com/google/uuid"
)

type AccountRepository interface {
	Create(ctx context.Context, a *EmailAccount) error
	GetByID(ctx context.Context, id uuid.UUID) (*EmailAccount, error)
	Update(ctx context.Context, a *EmailAccount) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*EmailAccount, int, error)
}

type SignatureRepository interface {
	Create(ctx context.Context, s *Signature) error
	GetByID(ctx context.Context, id uuid.UUID) (*Signature, error)
	Update(ctx context.Context, s *Signature) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Signature, int, error)
}
