package cli

import (
	"context"

	"accountcli/internal/api"
	"accountcli/internal/validation"
)

// VerifyOTP activates a freshly registered account: OTP from the email,
// the address itself (prefilled from the pending email when present) and
// the password to set. Success clears the pending email and lands on
// sign-in.
func (a *App) VerifyOTP(ctx context.Context) Route {
	a.printer.Info("")
	a.printer.Info("== Verify Account ==")
	a.printer.Info("Enter the OTP sent to your email")
	if next, ok := a.menu(ctx, RouteLogin); ok {
		return next
	}

	if a.otpForm.Email == "" {
		a.otpForm.Email = a.pendingEmail(ctx)
	}

	otp, err := getOTP(a.reader, a.otpForm.OTP, a.out())
	if err != nil {
		return RouteExit
	}
	email, err := getTextWithDefault(a.reader, "Email Address", a.otpForm.Email, a.out())
	if err != nil {
		return RouteExit
	}
	password, err := getPassword("Set Password", a.out())
	if err != nil {
		return RouteExit
	}

	a.otpForm = validation.VerifyOTPForm{OTP: otp, Email: email, Password: password}
	if errs := a.validator.Validate(a.otpForm); !errs.Empty() {
		a.printer.FieldErrors(errs)
		return RouteVerifyOTP
	}

	a.printer.Info("Submitting...")
	if err := a.api.VerifyOTP(ctx, otp, email, password); err != nil {
		a.log.Debug(ctx, "otp verification failed", "error", err)
		a.printer.Error("%s", api.Message(err))
		return RouteVerifyOTP
	}

	a.printer.Success("Account verified successfully!")
	a.clearPendingEmail(ctx)

	a.pause(ctx)
	return RouteLogin
}
