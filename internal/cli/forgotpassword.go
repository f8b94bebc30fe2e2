package cli

import (
	"context"

	"accountcli/internal/api"
	"accountcli/internal/validation"
)

// ForgotPassword requests a reset OTP for an email. Success stores the
// email for the set-password screen and moves there after the message.
func (a *App) ForgotPassword(ctx context.Context) Route {
	a.printer.Info("")
	a.printer.Info("== Reset Password ==")
	if next, ok := a.menu(ctx, RouteLogin); ok {
		return next
	}

	email, err := getTextWithDefault(a.reader, "Enter your email", a.forgotForm.Email, a.out())
	if err != nil {
		return RouteExit
	}

	a.forgotForm = validation.ForgotPasswordForm{Email: email}
	if errs := a.validator.Validate(a.forgotForm); !errs.Empty() {
		a.printer.FieldErrors(errs)
		return RouteForgotPassword
	}

	a.printer.Info("Submitting...")
	if err := a.api.ForgotPassword(ctx, email); err != nil {
		a.log.Debug(ctx, "forgot-password failed", "error", err)
		a.printer.Error("%s", api.Message(err))
		return RouteForgotPassword
	}

	a.printer.Success("Password reset OTP sent to your email!")
	a.storePendingEmail(ctx, email)

	a.pause(ctx)
	return RouteSetPassword
}
