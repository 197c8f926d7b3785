package email

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/mail"

	"github.com/nfrund/ledgerline/internal/config"
	"github.com/nfrund/ledgerline/internal/domain"
)

// NewEmailService creates an email sender based on the configuration. It
// returns a nil sender when EMAIL_PROVIDER is "none".
func NewEmailService(cfg config.Provider, httpClient *http.Client) (domain.EmailSender, error) {
	switch cfg.GetEmailProvider() {
	case "", "none":
		return nil, nil
	case "log":
		return NewLogSender(cfg.GetEmailSender(), slog.Default()), nil
	case "resend":
		if cfg.GetEmailAPIKey() == "" {
			return nil, fmt.Errorf("email provider is 'resend' but EMAIL_API_KEY is not set")
		}
		return NewResendSender(cfg.GetEmailAPIKey(), cfg.GetEmailSender(), httpClient), nil
	case "smtp":
		if cfg.GetSMTPHost() == "" {
			return nil, fmt.Errorf("email provider is 'smtp' but SMTP_HOST is not set")
		}
		from, err := mail.ParseAddress(cfg.GetEmailSender())
		if err != nil {
			return nil, fmt.Errorf("email provider is 'smtp' but EMAIL_SENDER is not a valid address: %w", err)
		}
		return NewSMTPSender(SMTPConfig{
			Host:      cfg.GetSMTPHost(),
			Port:      cfg.GetSMTPPort(),
			Username:  cfg.GetSMTPUsername(),
			Password:  cfg.GetSMTPPassword(),
			FromName:  from.Name,
			FromEmail: from.Address,
		}), nil
	default:
		return nil, fmt.Errorf("unknown email provider: %s", cfg.GetEmailProvider())
	}
}
