package validation

// One form struct per screen. The tag chains encode each screen's exact
// rules: some screens check only presence where others also check shape,
// so the structs are deliberately not shared.

type RegisterForm struct {
	Name  string `validate:"notblank,trimmin=2"`
	Email string `validate:"notblank,emailshape"`
}

type VerifyOTPForm struct {
	OTP      string `validate:"notblank,otp"`
	Email    string `validate:"notblank"`
	Password string `validate:"notblank,min=6"`
}

type LoginForm struct {
	Email    string `validate:"notblank,emailshape"`
	Password string `validate:"notblank"`
}

type ForgotPasswordForm struct {
	Email string `validate:"notblank,emailshape"`
}

type SetPasswordForm struct {
	OTP         string `validate:"notblank,otp"`
	Email       string `validate:"notblank"`
	NewPassword string `validate:"notblank,min=6"`
}

type ProfileForm struct {
	Name string `validate:"notblank"`
}

type EmailChangeForm struct {
	NewEmail string `validate:"notblank,emailshape"`
}
