package cli

import (
	"context"
	"fmt"
	"strings"
)

// Route names a screen. Routes mirror the service's client surface; any
// unknown route lands on the sign-in screen.
type Route string

const (
	RouteRegister       Route = "register"
	RouteVerifyOTP      Route = "verify-otp"
	RouteLogin          Route = "login"
	RouteForgotPassword Route = "forgot-password"
	RouteSetPassword    Route = "set-password"
	RouteDashboard      Route = "dashboard"
	RouteExit           Route = "exit"
)

// Run initializes the session and drives the screen loop until the user
// exits or the context is cancelled. Nothing renders before Initialize
// completes, so the guarded dashboard can never flash for an anonymous
// user.
func (a *App) Run(ctx context.Context) error {
	if err := a.session.Initialize(ctx); err != nil {
		return fmt.Errorf("restoring session: %w", err)
	}

	route := RouteLogin
	if a.session.IsAuthenticated() {
		route = RouteDashboard
	}

	for route != RouteExit {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		route = a.show(ctx, a.guard(route))
	}
	return nil
}

// guard gates the dashboard: it renders only for an authenticated session
// after initialization has completed. Everything else passes through.
func (a *App) guard(route Route) Route {
	if route != RouteDashboard {
		return route
	}
	if a.session.Loading() || !a.session.IsAuthenticated() {
		return RouteLogin
	}
	return route
}

func (a *App) show(ctx context.Context, route Route) Route {
	switch route {
	case RouteRegister:
		return a.Register(ctx)
	case RouteVerifyOTP:
		return a.VerifyOTP(ctx)
	case RouteLogin:
		return a.Login(ctx)
	case RouteForgotPassword:
		return a.ForgotPassword(ctx)
	case RouteSetPassword:
		return a.SetPassword(ctx)
	case RouteDashboard:
		return a.Dashboard(ctx)
	default:
		return a.Login(ctx)
	}
}

// menu shows the screen's navigation links. An empty entry proceeds with
// the form; naming a listed route (or "exit") navigates away.
func (a *App) menu(ctx context.Context, links ...Route) (Route, bool) {
	if len(links) > 0 {
		names := make([]string, len(links))
		for i, l := range links {
			names[i] = string(l)
		}
		a.printer.Info("(press Enter to continue, or type: %s, exit)", strings.Join(names, ", "))
	}

	line, err := getSimpleText(a.reader, "", a.out())
	if err != nil {
		return RouteExit, true
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false
	}
	if line == "exit" || line == "quit" {
		return RouteExit, true
	}
	for _, l := range links {
		if line == string(l) {
			return l, true
		}
	}
	a.printer.Info("Unknown command: %s", line)
	return "", false
}
