package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type Service interface {
	SendResetPasswordEmail(ctx context.Context, to, userName, resetLink string) error
	SendOrderConfirmation(ctx context.Context, to, userName, orderNumber string, total float64) error
}

type resendService struct {
	apiKey    string
	fromEmail string
	baseURL   string
}

func NewResendService(apiKey, fromEmail string) (Service, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, fmt.Errorf("resend api key is not configured")
	}

	from := strings.TrimSpace(fromEmail)
	if from == "" {
		from = "onboarding@resend.dev"
	}

	return &resendService{
		apiKey:    apiKey,
		fromEmail: from,
		baseURL:   "https://api.resend.com",
	}, nil
}

func NewNoopService() Service {
	return &noopService{}
}

func (s *resendService) SendResetPasswordEmail(ctx context.Context, to, userName, resetLink string) error {
	html := fmt.Sprintf(
		"<p>Hi %s,</p><p>Use the link below to reset your password:</p><p><a href=\"%s\">Reset Password</a></p><p>The link is valid for 30 minutes.</p>",
		userName,
		resetLink,
	)
	return s.send(ctx, to, "Reset your password", html)
}

func (s *resendService) SendOrderConfirmation(ctx context.Context, to, userName, orderNumber string, total float64) error {
	html := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your order <strong>%s</strong> has been confirmed.</p><p>Order total: ₹%.2f</p><p>We will notify you when it ships.</p>",
		userName,
		orderNumber,
		total,
	)
	return s.send(ctx, to, fmt.Sprintf("Order %s confirmed", orderNumber), html)
}

func (s *resendService) send(ctx context.Context, to, subject, html string) error {
	payload := map[string]any{
		"from":    s.fromEmail,
		"to":      []string{to},
		"subject": subject,
		"html":    html,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		msg := strings.TrimSpace(string(respBody))
		if len(msg) > 500 {
			msg = msg[:500]
		}
		if msg == "" {
			return fmt.Errorf("resend API returned status %d", resp.StatusCode)
		}
		return fmt.Errorf("resend API returned status %d: %s", resp.StatusCode, msg)
	}

	return nil
}

// noopService is used in local development where no API key is configured.
type noopService struct{}

func (s *noopService) SendResetPasswordEmail(_ context.Context, _, _, _ string) error {
	return nil
}

func (s *noopService) SendOrderConfirmation(_ context.Context, _, _, _ string, _ float64) error {
	return nil
}
