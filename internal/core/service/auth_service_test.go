package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/placementiq/placement-api/internal/core/domain"
	"github.com/placementiq/placement-api/internal/core/ports"
)

type stubAuthRepo struct {
	users     map[string]*domain.User
	createErr error
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	r.users[user.Username] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubAuthRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

// fixedClock returns a clock that can be moved by the test.
func fixedClock(start time.Time) (func() time.Time, func(time.Duration)) {
	now := start
	return func() time.Time { return now }, func(d time.Duration) { now = now.Add(d) }
}

func register(t *testing.T, svc *AuthService, username, email, password string) *ports.AuthResult {
	t.Helper()
	res, err := svc.Register(context.Background(), ports.RegisterInput{Username: username, Email: email, Password: password})
	if err != nil {
		t.Fatalf("Register(%s) returned error: %v", username, err)
	}
	return res
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", TokenTTL, WithBcryptCost(bcrypt.MinCost))

	res := register(t, svc, "alice", "a@b.com", "pw123")
	if res.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	stored := repo.users["alice"]
	if stored == nil {
		t.Fatalf("user not persisted")
	}
	if stored.PasswordHash == "pw123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if stored.ID == "" || stored.CreatedAt.IsZero() {
		t.Fatalf("expected id and created_at to be set: %+v", stored)
	}
}

func TestAuthService_Register_UsesConfiguredCost(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", TokenTTL, WithBcryptCost(bcrypt.MinCost+1))

	register(t, svc, "bob", "bob@example.com", "pass")

	cost, err := bcrypt.Cost([]byte(repo.users["bob"].PasswordHash))
	if err != nil {
		t.Fatalf("bcrypt.Cost: %v", err)
	}
	if cost != bcrypt.MinCost+1 {
		t.Fatalf("expected cost %d, got %d", bcrypt.MinCost+1, cost)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), "secret", TokenTTL, WithBcryptCost(bcrypt.MinCost))

	cases := []ports.RegisterInput{
		{Username: "", Email: "x@example.com", Password: "pass"},
		{Username: "x", Email: "", Password: "pass"},
		{Username: "x", Email: "x@example.com", Password: ""},
	}
	for _, in := range cases {
		if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", in, err)
		}
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", TokenTTL, WithBcryptCost(bcrypt.MinCost))

	register(t, svc, "bob", "bob@example.com", "pass")
	_, err := svc.Register(context.Background(), ports.RegisterInput{Username: "bob", Email: "other@example.com", Password: "pass2"})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected a single user record, got %d", len(repo.users))
	}
}

func TestAuthService_Register_UsernameIsCaseSensitive(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", TokenTTL, WithBcryptCost(bcrypt.MinCost))

	register(t, svc, "bob", "bob@example.com", "pass")
	register(t, svc, "Bob", "bob2@example.com", "pass")

	if len(repo.users) != 2 {
		t.Fatalf("expected two users, got %d", len(repo.users))
	}
}

func TestAuthService_Register_RepositoryConflict(t *testing.T) {
	repo := newStubAuthRepo()
	repo.createErr = domain.ErrUserExists // lost a race with a concurrent registration
	svc := NewAuthService(repo, "secret", TokenTTL, WithBcryptCost(bcrypt.MinCost))

	_, err := svc.Register(context.Background(), ports.RegisterInput{Username: "eve", Email: "e@example.com", Password: "pw"})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", TokenTTL, WithBcryptCost(bcrypt.MinCost))
	register(t, svc, "carol", "carol@example.com", "s3cret")

	res, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if res.User == nil || res.User.Username != "carol" {
		t.Fatalf("unexpected user: %+v", res.User)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(res.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != "carol" {
		t.Fatalf("expected sub carol, got %v", claims["sub"])
	}
	if _, ok := claims["exp"]; !ok {
		t.Fatalf("expected exp claim")
	}
	if len(claims) != 2 {
		t.Fatalf("expected only sub and exp claims, got %v", claims)
	}
	if parsed.Method.Alg() != "HS256" {
		t.Fatalf("expected HS256, got %s", parsed.Method.Alg())
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), "secret", TokenTTL, WithBcryptCost(bcrypt.MinCost))
	register(t, svc, "dave", "dave@example.com", "goodpass")

	if _, err := svc.Login(context.Background(), "dave", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), "secret", TokenTTL)

	if _, err := svc.Login(context.Background(), "ghost", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Authenticate_RoundTrip(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), "secret", TokenTTL, WithBcryptCost(bcrypt.MinCost))

	for _, name := range []string{"alice", "bob", "Ω-user"} {
		res := register(t, svc, name, name+"@example.com", "pw")
		user, err := svc.Authenticate(context.Background(), res.Token)
		if err != nil {
			t.Fatalf("Authenticate(%s): %v", name, err)
		}
		if user.Username != name {
			t.Fatalf("expected %s, got %s", name, user.Username)
		}
	}
}

func TestAuthService_Authenticate_Expiry(t *testing.T) {
	now, advance := fixedClock(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	svc := NewAuthService(newStubAuthRepo(), "secret", TokenTTL, WithBcryptCost(bcrypt.MinCost), WithClock(now))
	res := register(t, svc, "alice", "a@b.com", "pw123")

	advance(TokenTTL - time.Second)
	if _, err := svc.Authenticate(context.Background(), res.Token); err != nil {
		t.Fatalf("token should be valid just before expiry: %v", err)
	}

	advance(time.Second)
	if _, err := svc.Authenticate(context.Background(), res.Token); err != nil {
		t.Fatalf("token should be valid at exactly T+24h: %v", err)
	}

	advance(time.Nanosecond)
	if _, err := svc.Authenticate(context.Background(), res.Token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized just after expiry, got %v", err)
	}

	advance(time.Second)
	if _, err := svc.Authenticate(context.Background(), res.Token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized after expiry, got %v", err)
	}
}

func TestAuthService_Authenticate_Rejections(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", TokenTTL, WithBcryptCost(bcrypt.MinCost))
	register(t, svc, "alice", "a@b.com", "pw")

	sign := func(method jwt.SigningMethod, key any, claims jwt.Claims) string {
		t.Helper()
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		return s
	}
	exp := jwt.NewNumericDate(time.Now().Add(time.Hour))

	cases := map[string]string{
		"empty":           "",
		"garbage":         "not-a-token",
		"wrong secret":    sign(jwt.SigningMethodHS256, []byte("other"), jwt.RegisteredClaims{Subject: "alice", ExpiresAt: exp}),
		"wrong alg":       sign(jwt.SigningMethodHS512, []byte("secret"), jwt.RegisteredClaims{Subject: "alice", ExpiresAt: exp}),
		"missing sub":     sign(jwt.SigningMethodHS256, []byte("secret"), jwt.RegisteredClaims{ExpiresAt: exp}),
		"missing exp":     sign(jwt.SigningMethodHS256, []byte("secret"), jwt.RegisteredClaims{Subject: "alice"}),
		"unknown user":    sign(jwt.SigningMethodHS256, []byte("secret"), jwt.RegisteredClaims{Subject: "mallory", ExpiresAt: exp}),
		"already expired": sign(jwt.SigningMethodHS256, []byte("secret"), jwt.RegisteredClaims{Subject: "alice", ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))}),
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := svc.Authenticate(context.Background(), token); !errors.Is(err, domain.ErrUnauthorized) {
				t.Fatalf("expected ErrUnauthorized, got %v", err)
			}
		})
	}
}

func TestAuthService_Authenticate_DeletedUser(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", TokenTTL, WithBcryptCost(bcrypt.MinCost))
	res := register(t, svc, "frank", "f@example.com", "pw")

	delete(repo.users, "frank")

	if _, err := svc.Authenticate(context.Background(), res.Token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

// Register, login and resolve the identity, as a client would.
func TestAuthService_AliceScenario(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), "secret", TokenTTL, WithBcryptCost(bcrypt.MinCost))
	register(t, svc, "alice", "a@b.com", "pw123")

	res, err := svc.Login(context.Background(), "alice", "pw123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	me, err := svc.Authenticate(context.Background(), res.Token)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if me.Username != "alice" || me.Email != "a@b.com" {
		t.Fatalf("unexpected identity: %+v", me)
	}
}
