package ratings

import (
	"time"

	"github.com/google/uuid"
)

// Rating is a patient review collected from an external portal or
// entered manually. Stars range 1..5.
type Rating struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Stars     int       `db:"stars" json:"stars"`
	Comment   *string   `db:"comment" json:"comment,omitempty"`
	Source    string    `db:"source" json:"source"`
	RatedAt   time.Time `db:"rated_at" json:"rated_at"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
