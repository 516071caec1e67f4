package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"
)

type ResendEmailSender struct {
	Client     *resend.Client
	From       string
	AppBaseURL string
	VerifyPath string
}

func NewResendEmailSender(apiKey string, from string, appBaseURL string) *ResendEmailSender {
	if strings.TrimSpace(apiKey) == "" || strings.TrimSpace(from) == "" {
		return &ResendEmailSender{}
	}
	return &ResendEmailSender{
		Client:     resend.NewClient(apiKey),
		From:       from,
		AppBaseURL: strings.TrimRight(appBaseURL, "/"),
		VerifyPath: "/waitlist/verify",
	}
}

func (s *ResendEmailSender) SendVerificationEmail(_ context.Context, email string, token string) error {
	if s.Client == nil {
		return errors.New("email sender not configured")
	}
	link := s.buildURL(s.VerifyPath, token)

	params := &resend.SendEmailRequest{
		From:    s.From,
		To:      []string{email},
		Subject: "Verify your email for VaultAI early access",
		Html:    verificationHTML(link),
		Text:    fmt.Sprintf("Verify your email to join the VaultAI waitlist: %s\n\nThis link expires in 24 hours.", link),
	}
	if _, err := s.Client.Emails.Send(params); err != nil {
		return fmt.Errorf("resend: %w", err)
	}
	return nil
}

func (s *ResendEmailSender) buildURL(path string, token string) string {
	base := strings.TrimRight(s.AppBaseURL, "/")
	if base == "" {
		return token
	}
	if path == "" {
		path = "/"
	}
	return fmt.Sprintf("%s%s?token=%s", base, path, token)
}

func verificationHTML(link string) string {
	return fmt.Sprintf(`<div style="max-width: 600px; margin: 0 auto; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;">
  <h1 style="color: #333; text-align: center;">Welcome to VaultAI!</h1>
  <p style="color: #666; font-size: 16px; line-height: 1.5;">
    Thank you for signing up for early access to VaultAI. To complete your registration and join our waitlist, please verify your email address.
  </p>
  <div style="text-align: center; margin: 30px 0;">
    <a href="%s"
       style="background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%);
              color: white;
              padding: 12px 30px;
              text-decoration: none;
              border-radius: 6px;
              font-weight: 600;
              display: inline-block;">
      Verify Email Address
    </a>
  </div>
  <p style="color: #888; font-size: 14px; text-align: center;">
    This link will expire in 24 hours. If you didn't sign up for VaultAI, you can safely ignore this email.
  </p>
</div>`, link)
}
