package present

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/trackview/internal/models"
)

// Lookup errors. All of them wrap models.ErrNotFound.
var (
	ErrUnknownStatus         = errors.New("unknown status id")
	ErrUnknownRelation       = errors.New("unknown relation")
	ErrUnknownUserTestOption = errors.New("unknown user test option")
)

func notFound(kind error, value any) error {
	return fmt.Errorf("%w: %v: %w", kind, value, models.ErrNotFound)
}
