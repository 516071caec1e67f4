package handler

import (
	"html/template"
	"strings"
)

// Verification results are rendered as standalone documents because the
// finalize link is opened directly from the email client.

type pageData struct {
	Email string
}

var (
	invalidLinkPage = mustPage("invalid_link", `<html>
  <head><title>Invalid Verification Link</title></head>
  <body style="font-family: system-ui; text-align: center; padding: 50px;">
    <h1 style="color: #e53e3e;">Invalid Verification Link</h1>
    <p>This verification link is invalid or malformed.</p>
  </body>
</html>`)

	invalidTokenPage = mustPage("invalid_token", `<html>
  <head><title>Invalid Verification Link</title></head>
  <body style="font-family: system-ui; text-align: center; padding: 50px;">
    <h1 style="color: #e53e3e;">Invalid Verification Link</h1>
    <p>This verification link is invalid or has expired.</p>
  </body>
</html>`)

	expiredPage = mustPage("expired", `<html>
  <head><title>Verification Link Expired</title></head>
  <body style="font-family: system-ui; text-align: center; padding: 50px;">
    <h1 style="color: #e53e3e;">Verification Link Expired</h1>
    <p>This verification link has expired. Please sign up again to receive a new verification email.</p>
  </body>
</html>`)

	alreadyVerifiedPage = mustPage("already_verified", `<html>
  <head><title>Already Verified</title></head>
  <body style="font-family: system-ui; text-align: center; padding: 50px;">
    <h1 style="color: #38a169;">Already Verified!</h1>
    <p>Your email <strong>{{.Email}}</strong> has already been verified.</p>
    <p>You're all set for VaultAI early access!</p>
  </body>
</html>`)

	verifiedPage = mustPage("verified", `<html>
  <head><title>Email Verified!</title></head>
  <body style="font-family: system-ui; text-align: center; padding: 50px;">
    <h1 style="color: #38a169;">Email Verified Successfully!</h1>
    <p>Thank you! Your email <strong>{{.Email}}</strong> has been verified.</p>
    <p>You're now on the VaultAI early access waitlist. We'll notify you when we launch!</p>
  </body>
</html>`)

	failurePage = mustPage("failure", `<html>
  <head><title>Verification Failed</title></head>
  <body style="font-family: system-ui; text-align: center; padding: 50px;">
    <h1 style="color: #e53e3e;">Verification Failed</h1>
    <p>Something went wrong while verifying your email. Please try again later.</p>
  </body>
</html>`)
)

func mustPage(name string, text string) *template.Template {
	return template.Must(template.New(name).Parse(text))
}

func renderPage(page *template.Template, data any) string {
	var builder strings.Builder
	if err := page.Execute(&builder, data); err != nil {
		return ""
	}
	return builder.String()
}
