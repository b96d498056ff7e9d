package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Registry issues, validates and revokes opaque session tokens.
//
// A token validates only while its expiry instant is in the future; expired
// entries are dropped lazily on their next Verify. Verification never
// extends the expiry, and a user may hold any number of live sessions at
// once. Verify returns an empty user id for unknown or expired tokens —
// an error means the backing store itself failed.
type Registry interface {
	Create(ctx context.Context, userID string) (string, error)
	Verify(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

// newToken builds an unpredictable opaque token. The timestamp prefix keeps
// tokens roughly sortable in debugging dumps; unpredictability comes from
// the UUID.
func newToken() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("session_%d_%s", time.Now().UnixMilli(), suffix[:12])
}
