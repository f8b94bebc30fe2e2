package cli

import (
	"context"

	"accountcli/internal/api"
	"accountcli/internal/validation"
)

// SetPassword completes a password reset: OTP from the email, the address
// (prefilled from the pending email when present) and the new password.
// Success clears the pending email and lands on sign-in.
func (a *App) SetPassword(ctx context.Context) Route {
	a.printer.Info("")
	a.printer.Info("== Set New Password ==")
	if next, ok := a.menu(ctx, RouteLogin); ok {
		return next
	}

	if a.setpwForm.Email == "" {
		a.setpwForm.Email = a.pendingEmail(ctx)
	}

	otp, err := getOTP(a.reader, a.setpwForm.OTP, a.out())
	if err != nil {
		return RouteExit
	}
	email, err := getTextWithDefault(a.reader, "Email Address", a.setpwForm.Email, a.out())
	if err != nil {
		return RouteExit
	}
	newPassword, err := getPassword("New Password", a.out())
	if err != nil {
		return RouteExit
	}

	a.setpwForm = validation.SetPasswordForm{OTP: otp, Email: email, NewPassword: newPassword}
	if errs := a.validator.Validate(a.setpwForm); !errs.Empty() {
		a.printer.FieldErrors(errs)
		return RouteSetPassword
	}

	a.printer.Info("Submitting...")
	if err := a.api.ResetPassword(ctx, otp, email, newPassword); err != nil {
		a.log.Debug(ctx, "password reset failed", "error", err)
		a.printer.Error("%s", api.Message(err))
		return RouteSetPassword
	}

	a.printer.Success("Password reset successful!")
	a.clearPendingEmail(ctx)

	a.pause(ctx)
	return RouteLogin
}
