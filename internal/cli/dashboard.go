package cli

import (
	"context"

	"accountcli/internal/api"
	"accountcli/internal/models"
	"accountcli/internal/output"
	"accountcli/internal/validation"
)

// Dashboard is the guarded profile screen. It hosts two independent
// sub-forms sharing one alert region (the name edit and the email change
// request), plus logout.
func (a *App) Dashboard(ctx context.Context) Route {
	a.printer.Info("")
	a.printer.Info("== Dashboard ==")
	a.renderProfile()

	for {
		a.printer.Info("Commands: profile, email, logout, exit")
		line, err := getSimpleText(a.reader, "", a.out())
		if err != nil {
			return RouteExit
		}

		switch line {
		case "":
			continue

		case "profile":
			a.updateProfile(ctx)

		case "email":
			a.updateEmail(ctx)

		case "logout":
			if err := a.session.Logout(ctx); err != nil {
				a.printer.Error("%s", api.Message(err))
				continue
			}
			return RouteLogin

		case "exit", "quit":
			return RouteExit

		default:
			a.printer.Info("Unknown command: %s", line)
		}
	}
}

func (a *App) renderProfile() {
	user := a.session.User()
	if user == nil {
		return
	}

	table := output.NewTable(a.out(), []string{"FIELD", "VALUE"})
	table.AddRow([]string{"Initials", models.Initials(user.Name)})
	table.AddRow([]string{"Name", user.Name})
	table.AddRow([]string{"Email", user.Email})
	table.Render()
}

// updateProfile edits the display name. The session record is replaced once
// the server accepts the change; no re-fetch happens.
func (a *App) updateProfile(ctx context.Context) {
	user := a.session.User()
	if user == nil {
		return
	}

	name, err := getTextWithDefault(a.reader, "Name", user.Name, a.out())
	if err != nil {
		return
	}

	if errs := a.validator.Validate(validation.ProfileForm{Name: name}); !errs.Empty() {
		a.printer.FieldErrors(errs)
		return
	}

	a.printer.Info("Submitting...")
	if err := a.api.UpdateProfile(ctx, name); err != nil {
		a.log.Debug(ctx, "profile update failed", "error", err)
		a.printer.Error("%s", api.Message(err))
		return
	}

	updated := *user
	updated.Name = name
	if err := a.session.UpdateUser(ctx, &updated); err != nil {
		a.printer.Error("%s", api.Message(err))
		return
	}

	a.printer.Success("Profile updated successfully!")
	a.renderProfile()
}

// updateEmail requests an email change. The session record switches to the
// new address right away, before the server has verified it.
func (a *App) updateEmail(ctx context.Context) {
	newEmail, err := getSimpleText(a.reader, "New Email Address", a.out())
	if err != nil {
		return
	}

	if errs := a.validator.Validate(validation.EmailChangeForm{NewEmail: newEmail}); !errs.Empty() {
		a.printer.FieldErrors(errs)
		return
	}

	a.printer.Info("Submitting...")
	if err := a.api.UpdateEmail(ctx, newEmail); err != nil {
		a.log.Debug(ctx, "email update failed", "error", err)
		a.printer.Error("%s", api.Message(err))
		return
	}

	user := a.session.User()
	if user != nil {
		updated := *user
		updated.Email = newEmail
		if err := a.session.UpdateUser(ctx, &updated); err != nil {
			a.printer.Error("%s", api.Message(err))
			return
		}
	}

	a.printer.Success("Email update request sent! Check your email for verification.")
	a.renderProfile()
}
