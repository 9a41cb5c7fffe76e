package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid ID token")
)

// IdentityClaims is what a verified ID token tells us about the caller
type IdentityClaims struct {
	UID           string
	Email         string
	EmailVerified bool
}

// TokenVerifier checks an identity provider's ID token
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*IdentityClaims, error)
}

// FirebaseVerifier verifies Firebase Auth ID tokens with the Admin SDK, which
// fetches and rotates Google's signing keys and checks exp, iat and auth_time.
type FirebaseVerifier struct {
	client *auth.Client
}

// NewFirebaseVerifier builds a verifier for projectID. credentialsFile is
// optional; verifying ID tokens only needs the project ID.
func NewFirebaseVerifier(ctx context.Context, projectID, credentialsFile string) (*FirebaseVerifier, error) {
	opts := []option.ClientOption{option.WithoutAuthentication()}
	if credentialsFile != "" {
		opts = []option.ClientOption{option.WithCredentialsFile(credentialsFile)}
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase auth: %w", err)
	}
	return &FirebaseVerifier{client: client}, nil
}

// VerifyIDToken validates the token and returns the caller's identity. The
// token must carry an email and a sign-in time that is not in the future.
func (v *FirebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (*IdentityClaims, error) {
	if idToken == "" {
		return nil, ErrMissingToken
	}

	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if token.AuthTime == 0 || token.AuthTime > time.Now().Unix() {
		return nil, fmt.Errorf("%w: bad auth_time %d", ErrInvalidToken, token.AuthTime)
	}

	email, _ := token.Claims["email"].(string)
	if email == "" {
		return nil, fmt.Errorf("%w: token has no email", ErrInvalidToken)
	}
	verified, _ := token.Claims["email_verified"].(bool)

	LogDebug("Verified ID token for %s via %s", email, token.Firebase.SignInProvider)
	return &IdentityClaims{UID: token.UID, Email: email, EmailVerified: verified}, nil
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header
func BearerToken(header string) (string, error) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", ErrMissingToken
	}
	return strings.TrimSpace(parts[1]), nil
}
