package cli

import (
	"context"

	"accountcli/internal/api"
	"accountcli/internal/storage"
	"accountcli/internal/validation"
)

// Login signs in: the login call issues a token, the token is persisted so
// the profile fetch can authenticate with it, and the fetched profile plus
// the token become the session. A content-level login failure surfaces the
// body's message and never reaches the profile fetch.
func (a *App) Login(ctx context.Context) Route {
	a.printer.Info("")
	a.printer.Info("== Sign In ==")
	if next, ok := a.menu(ctx, RouteRegister, RouteForgotPassword); ok {
		return next
	}

	email, err := getTextWithDefault(a.reader, "Email Address", a.loginForm.Email, a.out())
	if err != nil {
		return RouteExit
	}
	password, err := getPassword("Password", a.out())
	if err != nil {
		return RouteExit
	}

	a.loginForm = validation.LoginForm{Email: email, Password: password}
	if errs := a.validator.Validate(a.loginForm); !errs.Empty() {
		a.printer.FieldErrors(errs)
		return RouteLogin
	}

	a.printer.Info("Submitting...")
	token, err := a.api.Login(ctx, email, password)
	if err != nil {
		a.log.Debug(ctx, "login failed", "error", err)
		a.printer.Error("%s", api.Message(err))
		return RouteLogin
	}

	// persist the token first: the profile fetch authenticates with it
	if err := storage.NewSQLiteRepository(a.db).Set(ctx, storage.KeyAuthToken, []byte(token)); err != nil {
		a.printer.Error("%s", api.Message(err))
		return RouteLogin
	}

	user, err := a.api.GetProfile(ctx)
	if err != nil {
		a.log.Debug(ctx, "profile fetch after login failed", "error", err)
		a.printer.Error("%s", api.Message(err))
		return RouteLogin
	}

	if err := a.session.Login(ctx, user, token); err != nil {
		a.printer.Error("%s", api.Message(err))
		return RouteLogin
	}

	return RouteDashboard
}
