package bot

import (
	"context"
	"regexp"
	"strings"

	"restobot-be/pkg/events"
	"restobot-be/pkg/store"
)

const (
	stepLoginEmail     = "login_email"
	stepLoginPassword  = "login_password"
	stepSignupName     = "signup_name"
	stepSignupEmail    = "signup_email"
	stepSignupPassword = "signup_password"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s looks like an address worth sending to the
// authenticator.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

func (e *Engine) authFlow() *Flow {
	return &Flow{
		Name:    store.IntentAuthentication,
		Initial: store.StepChoosingAuthMode,
		Steps: map[string]StepHandler{
			store.StepChoosingAuthMode: e.authChooseMode,
			stepLoginEmail:             e.authLoginEmail,
			stepLoginPassword:          e.authLoginPassword,
			stepSignupName:             e.authSignupName,
			stepSignupEmail:            e.authSignupEmail,
			stepSignupPassword:         e.authSignupPassword,
		},
	}
}

func (e *Engine) authChooseMode(_ context.Context, t *Turn) StepResult {
	switch t.Lower() {
	case "login":
		return goTo(stepLoginEmail, Text("📧 Please enter your email:"))
	case "signup":
		return goTo(stepSignupName, Text("📝 Please enter your name:"))
	}
	return stay(Text(msgAuthWelcome))
}

func (e *Engine) authLoginEmail(_ context.Context, t *Turn) StepResult {
	email := t.Lower()
	if !ValidEmail(email) {
		return stay(Text("❓ That doesn't look like an email address. Please enter your email:"))
	}
	t.Profile.Context.AuthEmail = email
	return goTo(stepLoginPassword, Text("🔐 Please enter your password:"))
}

func (e *Engine) authLoginPassword(ctx context.Context, t *Turn) StepResult {
	p := t.Profile
	email := p.Context.AuthEmail
	result, err := e.deps.Auth.Authenticate(ctx, email, t.Text)
	if err != nil {
		return e.fail(t, store.IntentAuthentication, err)
	}
	if result == nil {
		return goTo(store.StepChoosingAuthMode, Text("❌ Invalid email or password. Try \"login\" or \"signup\"."))
	}
	e.completeAuth(ctx, p, result)
	return done(
		Text("✅ Welcome, %s! You're now logged in.", email),
		Text(msgOptions),
	)
}

func (e *Engine) authSignupName(_ context.Context, t *Turn) StepResult {
	name := strings.TrimSpace(t.Text)
	if name == "" {
		return stay(Text("❓ Please enter your name:"))
	}
	t.Profile.Context.AuthName = name
	return goTo(stepSignupEmail, Text("📧 Please enter your email:"))
}

func (e *Engine) authSignupEmail(_ context.Context, t *Turn) StepResult {
	email := t.Lower()
	if !ValidEmail(email) {
		return stay(Text("❓ That doesn't look like an email address. Please enter your email:"))
	}
	t.Profile.Context.AuthEmail = email
	return goTo(stepSignupPassword, Text("🔐 Please enter your password:"))
}

func (e *Engine) authSignupPassword(ctx context.Context, t *Turn) StepResult {
	p := t.Profile
	name := p.Context.AuthName
	email := p.Context.AuthEmail
	result, err := e.deps.Auth.Register(ctx, name, email, t.Text)
	if err != nil {
		return e.fail(t, store.IntentAuthentication, err)
	}
	if result == nil {
		return goTo(store.StepChoosingAuthMode, Text("❌ Registration failed. Please try again."))
	}
	e.completeAuth(ctx, p, result)
	return done(
		Text("✅ Welcome %s! You're now registered and logged in.\n\n", name),
		Text(msgOptions),
	)
}

// completeAuth promotes the profile out of the auth gate.
func (e *Engine) completeAuth(ctx context.Context, p *store.ConversationProfile, r *AuthResult) {
	p.IsAuthenticated = true
	p.UserID = r.UserID
	p.Email = r.Email
	p.Name = r.Name
	p.AuthToken = r.Token
	e.emit(ctx, events.TypeUserLogin, map[string]interface{}{
		"user_id":         r.UserID,
		"email":           r.Email,
		"conversation_id": p.ConversationID,
	})
}
