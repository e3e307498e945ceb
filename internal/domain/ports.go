package domain

import (
	"context"
	"time"
)

// FileStorage is the opaque blob store behind image uploads.
type FileStorage interface {
	SaveImage(ctx context.Context, filename string, data []byte) (string, error)
}

// Principal is the identity attached to an authenticated admin request.
type Principal struct {
	Email string
	Role  string
}

// AuthProvider issues and verifies admin credentials. Credential storage and
// federation live outside this service.
type AuthProvider interface {
	IssueToken(email string, ttl time.Duration) (string, time.Time, error)
	Verify(token string) (*Principal, error)
}
