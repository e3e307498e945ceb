package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orientwatch/backend/internal/domain"
)

func TestLoginAndVerify(t *testing.T) {
	p := New([]byte("test-secret"), "Admin@Example.com", "hunter2")

	tok, exp, err := p.Login("admin@example.com", "hunter2", time.Hour)
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	principal, err := p.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", principal.Email)
	assert.Equal(t, "admin", principal.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	p := New([]byte("test-secret"), "admin@example.com", "hunter2")

	_, _, err := p.Login("admin@example.com", "wrong", time.Hour)
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	_, _, err = p.Login("other@example.com", "hunter2", time.Hour)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	p := New([]byte("test-secret"), "admin@example.com", "hunter2")
	tok, _, err := p.IssueToken("admin@example.com", time.Hour)
	require.NoError(t, err)

	_, err = p.Verify(tok + "x")
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	other := New([]byte("different-secret"), "admin@example.com", "hunter2")
	_, err = other.Verify(tok)
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = p.Verify("not-a-token")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	p := New([]byte("test-secret"), "admin@example.com", "hunter2")
	tok, _, err := p.IssueToken("admin@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = p.Verify(tok)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}
