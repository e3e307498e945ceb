package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/orientwatch/backend/internal/domain"
)

// Provider issues and verifies HMAC-SHA256 signed admin tokens. It is the
// whole of the AuthProvider capability this service carries in-process;
// credential storage stays in the environment.
type Provider struct {
	secret []byte
	email  string
	pass   string
}

func New(secret []byte, adminEmail, adminPass string) *Provider {
	return &Provider{secret: secret, email: strings.ToLower(adminEmail), pass: adminPass}
}

// Login checks the configured admin credentials and issues a token.
func (p *Provider) Login(email, password string, ttl time.Duration) (string, time.Time, error) {
	okEmail := subtle.ConstantTimeCompare([]byte(strings.ToLower(email)), []byte(p.email)) == 1
	okPass := subtle.ConstantTimeCompare([]byte(password), []byte(p.pass)) == 1
	if !okEmail || !okPass {
		return "", time.Time{}, fmt.Errorf("%w: bad credentials", domain.ErrUnauthorized)
	}
	return p.IssueToken(p.email, ttl)
}

func (p *Provider) IssueToken(email string, ttl time.Duration) (string, time.Time, error) {
	head := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	exp := time.Now().Add(ttl)
	claims := map[string]any{"sub": email, "email": email, "role": "admin", "exp": exp.Unix(), "iat": time.Now().Unix(), "iss": "orientwatch"}
	b, err := json.Marshal(claims)
	if err != nil {
		return "", time.Time{}, err
	}
	unsigned := head + "." + base64.RawURLEncoding.EncodeToString(b)
	h := hmac.New(sha256.New, p.secret)
	h.Write([]byte(unsigned))
	sig := base64.RawURLEncoding.EncodeToString(h.Sum(nil))
	return unsigned + "." + sig, exp, nil
}

func (p *Provider) Verify(tok string) (*domain.Principal, error) {
	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: token format", domain.ErrUnauthorized)
	}
	unsigned := parts[0] + "." + parts[1]
	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		return nil, fmt.Errorf("%w: signature encoding", domain.ErrUnauthorized)
	}
	h := hmac.New(sha256.New, p.secret)
	h.Write([]byte(unsigned))
	if !hmac.Equal(sig, h.Sum(nil)) {
		return nil, fmt.Errorf("%w: signature mismatch", domain.ErrUnauthorized)
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: payload encoding", domain.ErrUnauthorized)
	}
	var m map[string]any
	if err := json.Unmarshal(payload, &m); err != nil {
		return nil, fmt.Errorf("%w: payload json", domain.ErrUnauthorized)
	}
	role, _ := m["role"].(string)
	email, _ := m["email"].(string)
	expF, _ := m["exp"].(float64)
	if role != "admin" || email == "" {
		return nil, fmt.Errorf("%w: claims", domain.ErrUnauthorized)
	}
	if time.Now().Unix() > int64(expF) {
		return nil, fmt.Errorf("%w: token expired", domain.ErrUnauthorized)
	}
	return &domain.Principal{Email: email, Role: role}, nil
}
