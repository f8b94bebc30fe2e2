package cli

import (
	"bufio"
	"bytes"
	"context"
	"database/sql"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"accountcli/internal/api"
	"accountcli/internal/logging"
	"accountcli/internal/models"
	"accountcli/internal/output"
	"accountcli/internal/session"
	"accountcli/internal/storage"
	"accountcli/internal/validation"
)

// ---- scripted input ----

type scriptedInput struct {
	lines     []string
	passwords []string
}

func (s *scriptedInput) popLine() (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func (s *scriptedInput) popPassword() (string, error) {
	if len(s.passwords) == 0 {
		return "", io.EOF
	}
	pw := s.passwords[0]
	s.passwords = s.passwords[1:]
	return pw, nil
}

// stubInput redirects the interactive input seams to a script. Lines feed
// the text prompts in order; an exhausted script reads as EOF.
func stubInput(t *testing.T, s *scriptedInput) {
	t.Helper()
	origST, origTD, origOTP, origPW := getSimpleText, getTextWithDefault, getOTP, getPassword

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		return s.popLine()
	}
	getTextWithDefault = func(_ *bufio.Reader, _ string, def string, _ io.Writer) (string, error) {
		line, err := s.popLine()
		if err != nil {
			return "", err
		}
		if line == "" {
			return def, nil
		}
		return line, nil
	}
	getOTP = func(_ *bufio.Reader, def string, _ io.Writer) (string, error) {
		line, err := s.popLine()
		if err != nil {
			return "", err
		}
		if line == "" {
			return def, nil
		}
		return validation.FilterOTP(line), nil
	}
	getPassword = func(_ string, _ io.Writer) (string, error) {
		return s.popPassword()
	}

	t.Cleanup(func() {
		getSimpleText, getTextWithDefault, getOTP, getPassword = origST, origTD, origOTP, origPW
	})
}

// ---- fake API client ----

type fakeAPI struct {
	registerCalls int
	registerName  string
	registerEmail string
	registerErr   error

	verifyCalls int
	verifyOTP   string
	verifyEmail string
	verifyPass  string
	verifyErr   error

	loginCalls int
	loginEmail string
	loginPass  string
	loginToken string
	loginErr   error

	forgotCalls int
	forgotEmail string
	forgotErr   error

	resetCalls int
	resetOTP   string
	resetEmail string
	resetPass  string
	resetErr   error

	profile      *models.User
	profileCalls int
	profileErr   error

	updateProfileCalls int
	updateProfileName  string
	updateProfileErr   error

	updateEmailCalls int
	updateEmailValue string
	updateEmailErr   error
}

var _ api.Client = (*fakeAPI)(nil)

func (f *fakeAPI) Register(_ context.Context, name, email string) error {
	f.registerCalls++
	f.registerName, f.registerEmail = name, email
	return f.registerErr
}

func (f *fakeAPI) VerifyOTP(_ context.Context, otp, email, password string) error {
	f.verifyCalls++
	f.verifyOTP, f.verifyEmail, f.verifyPass = otp, email, password
	return f.verifyErr
}

func (f *fakeAPI) Login(_ context.Context, email, password string) (string, error) {
	f.loginCalls++
	f.loginEmail, f.loginPass = email, password
	return f.loginToken, f.loginErr
}

func (f *fakeAPI) ForgotPassword(_ context.Context, email string) error {
	f.forgotCalls++
	f.forgotEmail = email
	return f.forgotErr
}

func (f *fakeAPI) ResetPassword(_ context.Context, otp, email, newPassword string) error {
	f.resetCalls++
	f.resetOTP, f.resetEmail, f.resetPass = otp, email, newPassword
	return f.resetErr
}

func (f *fakeAPI) GetProfile(context.Context) (*models.User, error) {
	f.profileCalls++
	return f.profile, f.profileErr
}

func (f *fakeAPI) UpdateProfile(_ context.Context, name string) error {
	f.updateProfileCalls++
	f.updateProfileName = name
	return f.updateProfileErr
}

func (f *fakeAPI) UpdateEmail(_ context.Context, newEmail string) error {
	f.updateEmailCalls++
	f.updateEmailValue = newEmail
	return f.updateEmailErr
}

func (f *fakeAPI) UpdatePassword(context.Context, string, string) error { return nil }

// ---- wiring helpers ----

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:cli_"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS local_store (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func newTestApp(t *testing.T, client api.Client) (*App, *sql.DB, *bytes.Buffer) {
	t.Helper()
	db := setupDB(t)
	logger := logging.NewTextLogger(io.Discard, "error")
	sess := session.NewStore(client, db, logger)

	var buf bytes.Buffer
	app := NewApp(sess, client, db, output.NewPrinterWithWriter(&buf, false), logger)
	app.stdout = io.Discard
	app.navDelay = 0
	return app, db, &buf
}

func getKey(t *testing.T, db *sql.DB, key string) []byte {
	t.Helper()
	v, err := storage.NewSQLiteRepository(db).Get(context.Background(), key)
	require.NoError(t, err)
	return v
}

func setKey(t *testing.T, db *sql.DB, key string, val []byte) {
	t.Helper()
	require.NoError(t, storage.NewSQLiteRepository(db).Set(context.Background(), key, val))
}
