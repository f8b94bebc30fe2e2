package cli

import (
	"context"

	"accountcli/internal/api"
	"accountcli/internal/validation"
)

// Register collects a name and email and creates the account. A successful
// submission stores the email for the OTP screen and moves there after the
// success message.
func (a *App) Register(ctx context.Context) Route {
	a.printer.Info("")
	a.printer.Info("== Create Account ==")
	if next, ok := a.menu(ctx, RouteLogin); ok {
		return next
	}

	name, err := getTextWithDefault(a.reader, "Full Name", a.regForm.Name, a.out())
	if err != nil {
		return RouteExit
	}
	email, err := getTextWithDefault(a.reader, "Email Address", a.regForm.Email, a.out())
	if err != nil {
		return RouteExit
	}

	a.regForm = validation.RegisterForm{Name: name, Email: email}
	if errs := a.validator.Validate(a.regForm); !errs.Empty() {
		a.printer.FieldErrors(errs)
		return RouteRegister
	}

	a.printer.Info("Submitting...")
	if err := a.api.Register(ctx, name, email); err != nil {
		a.log.Debug(ctx, "register failed", "error", err)
		a.printer.Error("%s", api.Message(err))
		return RouteRegister
	}

	a.printer.Success("Registration successful! Please check your email for OTP.")
	a.storePendingEmail(ctx, email)

	a.pause(ctx)
	return RouteVerifyOTP
}
