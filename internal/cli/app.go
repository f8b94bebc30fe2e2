// Package cli holds the interactive screens: registration, OTP
// verification, sign-in, password reset and the profile dashboard. Each
// screen validates its form locally, calls the API client or session store,
// and names the screen to show next.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"
	"time"

	"accountcli/internal/api"
	"accountcli/internal/logging"
	"accountcli/internal/output"
	"accountcli/internal/session"
	"accountcli/internal/storage"
	"accountcli/internal/validation"
)

// redirectDelay is how long a success message stays on screen before the
// flows that redirect move on.
const redirectDelay = 2 * time.Second

// getSimpleText, getTextWithDefault, getOTP and getPassword are
// indirections used to facilitate testing. They point to the interactive
// input helpers and can be swapped in tests.
var (
	getSimpleText      = GetSimpleText
	getTextWithDefault = GetTextWithDefault
	getOTP             = GetOTP
	getPassword        = GetPassword
)

type App struct {
	session   *session.Store
	api       api.Client
	db        *sql.DB
	validator *validation.Validator
	printer   *output.Printer
	log       logging.Logger
	reader    *bufio.Reader
	stdout    io.Writer

	navDelay time.Duration

	// per-screen form state, preserved across failed submissions
	regForm    validation.RegisterForm
	otpForm    validation.VerifyOTPForm
	loginForm  validation.LoginForm
	forgotForm validation.ForgotPasswordForm
	setpwForm  validation.SetPasswordForm
}

func NewApp(sess *session.Store, client api.Client, db *sql.DB, printer *output.Printer, log logging.Logger) *App {
	return &App{
		session:   sess,
		api:       client,
		db:        db,
		validator: validation.New(),
		printer:   printer,
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
		stdout:    os.Stdout,
		navDelay:  redirectDelay,
	}
}

func (a *App) out() io.Writer {
	if a.stdout == nil {
		return os.Stdout
	}
	return a.stdout
}

func (a *App) repo() storage.Repository {
	return storage.NewSQLiteRepository(a.db)
}

// pause keeps a success message on screen before a redirect. Context
// teardown cancels the wait, so no navigation fires after shutdown.
func (a *App) pause(ctx context.Context) {
	if a.navDelay <= 0 {
		return
	}
	select {
	case <-time.After(a.navDelay):
	case <-ctx.Done():
	}
}

// pendingEmail reads (without consuming) the transient email stored by the
// register and forgot-password flows.
func (a *App) pendingEmail(ctx context.Context) string {
	v, err := a.repo().Get(ctx, storage.KeyTempEmail)
	if err != nil {
		a.log.Warn(ctx, "reading pending email", "error", err)
		return ""
	}
	return string(v)
}

// clearPendingEmail completes a two-step flow.
func (a *App) clearPendingEmail(ctx context.Context) {
	if err := a.repo().Delete(ctx, storage.KeyTempEmail); err != nil {
		a.log.Warn(ctx, "clearing pending email", "error", err)
	}
}

// storePendingEmail starts a two-step flow.
func (a *App) storePendingEmail(ctx context.Context, email string) {
	if err := a.repo().Set(ctx, storage.KeyTempEmail, []byte(email)); err != nil {
		a.log.Warn(ctx, "storing pending email", "error", err)
	}
}
