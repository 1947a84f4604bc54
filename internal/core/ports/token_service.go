package ports

import (
	"time"

	"github.com/eladcrm/crm-api/internal/core/domain"
)

// TokenClaims is the payload carried by a verified session token.
type TokenClaims struct {
	UserID int64
	Role   string
}

// TokenService issues and verifies signed, expiring identity tokens.
// Verification is stateless: signature plus expiry, no server-side session.
type TokenService interface {
	// Issue signs a token for the user. Expiry is a fixed horizon from now.
	Issue(user *domain.User) (token string, expiresAt time.Time, err error)
	// Verify checks signature and expiry, returning domain.ErrInvalidToken on
	// any failure (bad signature, malformed payload, or expired).
	Verify(token string) (TokenClaims, error)
}
