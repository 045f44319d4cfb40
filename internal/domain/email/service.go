package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	accounts   AccountRepository
	signatures SignatureRepository
}

func NewService(accounts AccountRepository, signatures SignatureRepository) *Service {
	return &Service{accounts: accounts, signatures: signatures}
}

func (s *Service) CreateAccount(ctx context.Context, a *EmailAccount) error {
	if a.Address == "" || !strings.Contains(a.Address, "@") {
		return fmt.Errorf("valid address is required")
	}
	if a.Provider == "" {
		a.Provider = "imap"
	}
	return s.accounts.Create(ctx, a)
}

func (s *Service) GetAccount(ctx context.Context, id uuid.UUID) (*EmailAccount, error) {
	return s.accounts.GetByID(ctx, id)
}

func (s *Service) UpdateAccount(ctx context.Context, a *EmailAccount) error {
	if a.Address == "" || !strings.Contains(a.Address, "@") {
		return fmt.Errorf("valid address is required")
	}
	return s.accounts.Update(ctx, a)
}

func (s *Service) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	return s.accounts.Delete(ctx, id)
}

func (s *Service) ListAccounts(ctx context.Context, limit, offset int) ([]*EmailAccount, int, error) {
	return s.accounts.List(ctx, limit, offset)
}

func (s *Service) CreateSignature(ctx context.Context, sig *Signature) error {
	if sig.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.signatures.Create(ctx, sig)
}

func (s *Service) GetSignature(ctx context.Context, id uuid.UUID) (*Signature, error) {
	return s.signatures.GetByID(ctx, id)
}

func (s *Service) UpdateSignature(ctx context.Context, sig *Signature) error {
	if sig.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.signatures.Update(ctx, sig)
}

func (s *Service) DeleteSignature(ctx context.Context, id uuid.UUID) error {
	return s.signatures.Delete(ctx, id)
}

func (s *Service) ListSignatures(ctx context.Context, limit, offset int) ([]*Signature, int, error) {
	return s.signatures.List(ctx, limit, offset)
}
