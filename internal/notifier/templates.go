package notifier

import "fmt"

// VerificationEmail builds the account verification message. The link
// embeds the opaque token and expires after 24 hours.
func VerificationEmail(name, email, link string) Message {
	html := fmt.Sprintf(`
		<h2>Welcome, %s!</h2>
		<p>Please confirm your email address to activate your account.</p>
		<p><a href="%s">Verify my email</a></p>
		<p>This link expires in 24 hours. If you did not create an account, ignore this email.</p>
	`, name, link)

	return Message{
		To:      email,
		Subject: "Verify your email",
		HTML:    html,
		Text:    fmt.Sprintf("Welcome, %s! Verify your email: %s (expires in 24 hours)", name, link),
	}
}

// PasswordResetEmail builds the password reset message. The link
// expires after 15 minutes.
func PasswordResetEmail(name, email, link string) Message {
	html := fmt.Sprintf(`
		<h2>Hello, %s</h2>
		<p>We received a request to reset your password.</p>
		<p><a href="%s">Reset my password</a></p>
		<p>This link expires in 15 minutes. If you did not request a reset, ignore this email.</p>
	`, name, link)

	return Message{
		To:      email,
		Subject: "Reset your password",
		HTML:    html,
		Text:    fmt.Sprintf("Hello, %s. Reset your password: %s (expires in 15 minutes)", name, link),
	}
}
