// Package api wraps the account service's REST endpoints behind a single
// Client interface. All transport detail stays here: screens see typed
// operations and typed errors, never raw responses.
package api

import (
	"context"

	"accountcli/internal/models"
)

// Client is the remote account service surface.
//
// Contract:
//   - every authenticated call carries "Authorization: Bearer <token>" when
//     the token source yields one;
//   - failures are reported as *Error: KindTransport when no response was
//     received, KindAPI when the server answered but the body signals an
//     error;
//   - UpdatePassword is part of the remote contract but no screen invokes it.
type Client interface {
	Register(ctx context.Context, name, email string) error
	VerifyOTP(ctx context.Context, otp, email, password string) error
	Login(ctx context.Context, email, password string) (token string, err error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, otp, email, newPassword string) error
	GetProfile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, name string) error
	UpdateEmail(ctx context.Context, newEmail string) error
	UpdatePassword(ctx context.Context, currentPassword, newPassword string) error
}

// TokenSource supplies the bearer token for outbound requests. An empty
// string means "no token": the Authorization header is omitted.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}
