package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterForm(t *testing.T) {
	v := New()

	tests := []struct {
		name string
		form RegisterForm
		want Errors
	}{
		{
			name: "valid",
			form: RegisterForm{Name: "Alice", Email: "a@b.com"},
			want: nil,
		},
		{
			name: "everything empty",
			form: RegisterForm{},
			want: Errors{"Name": "Name is required", "Email": "Email is required"},
		},
		{
			name: "whitespace only name",
			form: RegisterForm{Name: "   ", Email: "a@b.com"},
			want: Errors{"Name": "Name is required"},
		},
		{
			name: "single letter name",
			form: RegisterForm{Name: "A", Email: "a@b.com"},
			want: Errors{"Name": "Name must be at least 2 characters"},
		},
		{
			name: "email without at",
			form: RegisterForm{Name: "Alice", Email: "ab.com"},
			want: Errors{"Email": "Please enter a valid email address"},
		},
		{
			name: "email without dot after at",
			form: RegisterForm{Name: "Alice", Email: "a@bcom"},
			want: Errors{"Email": "Please enter a valid email address"},
		},
		{
			name: "email with spaces",
			form: RegisterForm{Name: "Alice", Email: "a b@c.com"},
			want: Errors{"Email": "Please enter a valid email address"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := v.Validate(tc.form)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, len(tc.want) == 0, got.Empty())
		})
	}
}

func TestVerifyOTPForm(t *testing.T) {
	v := New()

	tests := []struct {
		name string
		form VerifyOTPForm
		want Errors
	}{
		{
			name: "valid",
			form: VerifyOTPForm{OTP: "123456", Email: "a@b.com", Password: "secret1"},
			want: nil,
		},
		{
			name: "otp too short",
			form: VerifyOTPForm{OTP: "12345", Email: "a@b.com", Password: "secret1"},
			want: Errors{"OTP": "OTP must be 6 digits"},
		},
		{
			name: "otp missing",
			form: VerifyOTPForm{Email: "a@b.com", Password: "secret1"},
			want: Errors{"OTP": "OTP is required"},
		},
		{
			name: "password too short",
			form: VerifyOTPForm{OTP: "123456", Email: "a@b.com", Password: "abc"},
			want: Errors{"Password": "Password must be at least 6 characters"},
		},
		{
			// the OTP screen only checks that an email is present, not its shape
			name: "odd email accepted",
			form: VerifyOTPForm{OTP: "123456", Email: "not-an-email", Password: "secret1"},
			want: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, v.Validate(tc.form))
		})
	}
}

func TestLoginForm(t *testing.T) {
	v := New()

	// login does not enforce a minimum password length
	assert.Nil(t, v.Validate(LoginForm{Email: "u@x.com", Password: "abc"}))

	got := v.Validate(LoginForm{Email: "u@x", Password: ""})
	require.Equal(t, Errors{
		"Email":    "Please enter a valid email address",
		"Password": "Password is required",
	}, got)
}

func TestSetPasswordForm(t *testing.T) {
	v := New()

	got := v.Validate(SetPasswordForm{OTP: "12x456", Email: "a@b.com", NewPassword: "short"})
	// the new-password message uses the "Password" wording
	require.Equal(t, Errors{
		"OTP":         "OTP must be 6 digits",
		"NewPassword": "Password must be at least 6 characters",
	}, got)
}

func TestDashboardForms(t *testing.T) {
	v := New()

	assert.Equal(t, Errors{"Name": "Name is required"}, v.Validate(ProfileForm{Name: "  "}))
	// the dashboard name edit has no minimum length
	assert.Nil(t, v.Validate(ProfileForm{Name: "A"}))

	assert.Equal(t, Errors{"NewEmail": "New email is required"}, v.Validate(EmailChangeForm{}))
	assert.Equal(t,
		Errors{"NewEmail": "Please enter a valid email address"},
		v.Validate(EmailChangeForm{NewEmail: "nope"}))
	assert.Nil(t, v.Validate(EmailChangeForm{NewEmail: "n@x.com"}))
}

func TestFilterOTP(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"123456", "123456"},
		{"12a34b56c78", "123456"},
		{"abc", ""},
		{" 1 2 3 ", "123"},
		{"9876543210", "987654"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := FilterOTP(tc.in); got != tc.want {
			t.Errorf("FilterOTP(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
