package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/blogfolio-api/internal/models"
	"github.com/blogfolio-api/internal/service"
	"golang.org/x/crypto/bcrypt"
)

func signupAndLogin(t *testing.T, env *testEnv, username, password string) *models.LoginResponse {
	t.Helper()
	err := env.services.Auth.Signup(context.Background(), &models.SignupInput{
		Username: username,
		Name:     "Test User",
		Password: password,
	})
	if err != nil {
		t.Fatalf("Signup failed: %v", err)
	}

	resp, err := env.services.Auth.Login(context.Background(), &models.LoginInput{
		Username: username,
		Password: password,
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	return resp
}

func TestAuth_SignupHashesPassword(t *testing.T) {
	env := newTestEnv()

	err := env.services.Auth.Signup(context.Background(), &models.SignupInput{
		Username: "alice",
		Name:     "Alice",
		Password: "s3cret-pw",
	})
	if err != nil {
		t.Fatalf("Signup failed: %v", err)
	}

	stored := env.users.ByUsername["alice"]
	if stored == nil {
		t.Fatal("user not persisted")
	}
	if stored.PasswordHash == "s3cret-pw" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret-pw")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
	if stored.Role != "user" {
		t.Errorf("expected default role user, got %s", stored.Role)
	}
}

func TestAuth_SignupValidation(t *testing.T) {
	env := newTestEnv()

	err := env.services.Auth.Signup(context.Background(), &models.SignupInput{
		Username: "ab",
		Name:     "Short Name",
		Password: "12345",
	})
	if !errors.Is(err, service.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestAuth_LoginTokenRoundTrip(t *testing.T) {
	env := newTestEnv()
	resp := signupAndLogin(t, env, "alice", "s3cret-pw")

	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Fatal("expected both tokens issued")
	}
	if resp.Username != "alice" || resp.Role != "user" {
		t.Errorf("unexpected response identity: %+v", resp)
	}

	user, err := service.ParseAccessToken("test-access-secret", resp.AccessToken)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if user.ID != resp.ID || user.Username != "alice" {
		t.Errorf("token identity mismatch: %+v", user)
	}

	if _, stored := env.users.RefreshTokens[resp.RefreshToken]; !stored {
		t.Error("expected refresh token persisted")
	}
}

func TestAuth_LoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv()
	signupAndLogin(t, env, "alice", "s3cret-pw")

	for _, in := range []*models.LoginInput{
		{Username: "alice", Password: "wrong"},
		{Username: "mallory", Password: "s3cret-pw"},
		{Username: "", Password: ""},
	} {
		if _, err := env.services.Auth.Login(context.Background(), in); !errors.Is(err, service.ErrInvalidArgument) {
			t.Errorf("login %q/%q: expected ErrInvalidArgument, got %v", in.Username, in.Password, err)
		}
	}
}

func TestParseAccessToken_RejectsWrongSecret(t *testing.T) {
	env := newTestEnv()
	resp := signupAndLogin(t, env, "alice", "s3cret-pw")

	if _, err := service.ParseAccessToken("other-secret", resp.AccessToken); err == nil {
		t.Fatal("expected rejection with wrong secret")
	}
	if _, err := service.ParseAccessToken("test-access-secret", "not-a-token"); err == nil {
		t.Fatal("expected rejection of malformed token")
	}
}
