package email

import (
	"time"

	"github.com/google/uuid"
)

// EmailAccount is a practice mailbox configuration. Credentials are
// referenced by secret name, never stored inline.
type EmailAccount struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Address    string    `db:"address" json:"address"`
	Display    string    `db:"display" json:"display"`
	Provider   string    `db:"provider" json:"provider"`
	SecretName string    `db:"secret_name" json:"secret_name"`
	Active     bool      `db:"active" json:"active"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// Signature is an HTML signature block attached to outgoing mail.
type Signature struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	AccountID *uuid.UUID `db:"account_id" json:"account_id,omitempty"`
	Name      string     `db:"name" json:"name"`
	BodyHTML  string     `db:"body_html" json:"body_html"`
	Default   bool       `db:"is_default" json:"is_default"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}
