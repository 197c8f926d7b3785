package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Provider exposes the application configuration to the rest of the code.
// Components depend on this interface rather than on *Config so tests can
// supply their own values.
type Provider interface {
	GetAppEnv() string
	IsDevelopment() bool
	GetServerAddr() string
	GetSiteOrigin() string
	GetSessionSecret() string
	GetContentDir() string

	GetWeb3FormsEndpoint() string
	GetWeb3FormsAccessKey() string
	GetLeadRecipient() string
	GetLeadFromName() string
	GetLeadSubject() string
	GetLeadSubmitTimeout() time.Duration
	GetLeadWidgetTTL() time.Duration
	GetQuoteURL() string
	GetRateLimitPerMinute() int

	GetGA4MeasurementID() string
	GetGA4APISecret() string

	GetEmailProvider() string
	GetEmailSender() string
	GetEmailAPIKey() string
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPUsername() string
	GetSMTPPassword() string

	GetTracingEnabled() bool
	GetTracingServiceName() string
	GetTracingZipkinURL() string
}

// Default values used when the environment does not set a variable.
const (
	DefaultServerAddr         = ":8080"
	DefaultSiteOrigin         = "http://localhost:8080"
	DefaultWeb3FormsEndpoint  = "https://api.web3forms.com/submit"
	DefaultLeadFromName       = "Website enquiry"
	DefaultLeadSubject        = "New enquiry from the website"
	DefaultLeadSubmitTimeout  = 10 * time.Second
	DefaultLeadWidgetTTL      = 2 * time.Hour
	DefaultRateLimitPerMinute = 10
	DefaultSMTPPort           = 587
	DefaultTracingServiceName = "ledgerline"
	DefaultTracingZipkinURL   = "http://localhost:9411/api/v2/spans"
)

// Config holds all configuration for the application.
type Config struct {
	AppEnv        string
	ServerAddr    string
	SiteOrigin    string
	SessionSecret string
	ContentDir    string

	Web3FormsEndpoint  string
	Web3FormsAccessKey string
	LeadRecipient      string
	LeadFromName       string
	LeadSubject        string
	LeadSubmitTimeout  time.Duration
	LeadWidgetTTL      time.Duration
	QuoteURL           string
	RateLimitPerMinute int

	GA4MeasurementID string
	GA4APISecret     string

	EmailProvider string
	EmailSender   string
	EmailAPIKey   string
	SMTPHost      string
	SMTPPort      int
	SMTPUsername  string
	SMTPPassword  string

	TracingEnabled     bool
	TracingServiceName string
	TracingZipkinURL   string
}

// New loads configuration from a .env file, when present, and the
// environment.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function. Malformed numbers and
// durations fall back to their defaults.
func FromEnv(getenv func(string) string) *Config {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	return &Config{
		AppEnv:        get("APP_ENV", "development"),
		ServerAddr:    get("SERVER_ADDR", DefaultServerAddr),
		SiteOrigin:    strings.TrimRight(get("SITE_ORIGIN", DefaultSiteOrigin), "/"),
		SessionSecret: get("SESSION_SECRET", ""),
		ContentDir:    get("CONTENT_DIR", ""),

		Web3FormsEndpoint:  get("WEB3FORMS_ENDPOINT", DefaultWeb3FormsEndpoint),
		Web3FormsAccessKey: get("WEB3FORMS_ACCESS_KEY", ""),
		LeadRecipient:      get("LEAD_RECIPIENT", ""),
		LeadFromName:       get("LEAD_FROM_NAME", DefaultLeadFromName),
		LeadSubject:        get("LEAD_SUBJECT", DefaultLeadSubject),
		LeadSubmitTimeout:  duration(get("LEAD_SUBMIT_TIMEOUT", ""), DefaultLeadSubmitTimeout),
		LeadWidgetTTL:      duration(get("LEAD_WIDGET_TTL", ""), DefaultLeadWidgetTTL),
		QuoteURL:           get("QUOTE_URL", ""),
		RateLimitPerMinute: integer(get("RATE_LIMIT_PER_MINUTE", ""), DefaultRateLimitPerMinute),

		GA4MeasurementID: get("GA4_MEASUREMENT_ID", ""),
		GA4APISecret:     get("GA4_API_SECRET", ""),

		EmailProvider: strings.ToLower(get("EMAIL_PROVIDER", "none")),
		EmailSender:   get("EMAIL_SENDER", ""),
		EmailAPIKey:   get("EMAIL_API_KEY", ""),
		SMTPHost:      get("SMTP_HOST", ""),
		SMTPPort:      integer(get("SMTP_PORT", ""), DefaultSMTPPort),
		SMTPUsername:  get("SMTP_USERNAME", ""),
		SMTPPassword:  get("SMTP_PASSWORD", ""),

		TracingEnabled:     boolean(get("PUBSUB_TRACING_ENABLED", "")),
		TracingServiceName: get("PUBSUB_TRACING_SERVICE_NAME", DefaultTracingServiceName),
		TracingZipkinURL:   get("PUBSUB_TRACING_ZIPKIN_URL", DefaultTracingZipkinURL),
	}
}

// Validate reports configuration that would stop the site from working.
// Development runs are allowed without a Web3Forms key.
func (c *Config) Validate() error {
	if !c.IsDevelopment() {
		if c.Web3FormsAccessKey == "" {
			return fmt.Errorf("WEB3FORMS_ACCESS_KEY must be set when APP_ENV=%s", c.AppEnv)
		}
		if c.SessionSecret == "" {
			return fmt.Errorf("SESSION_SECRET must be set when APP_ENV=%s", c.AppEnv)
		}
	}
	if !strings.HasPrefix(c.SiteOrigin, "http://") && !strings.HasPrefix(c.SiteOrigin, "https://") {
		return fmt.Errorf("SITE_ORIGIN must be an absolute URL, got %q", c.SiteOrigin)
	}
	switch c.EmailProvider {
	case "none", "log", "resend", "smtp":
	default:
		return fmt.Errorf("unknown EMAIL_PROVIDER: %s", c.EmailProvider)
	}
	return nil
}

func duration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("invalid duration %q, using %s", raw, fallback)
		return fallback
	}
	return d
}

func integer(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("invalid number %q, using %d", raw, fallback)
		return fallback
	}
	return n
}

func boolean(raw string) bool {
	b, err := strconv.ParseBool(raw)
	return err == nil && b
}

func (c *Config) GetAppEnv() string        { return c.AppEnv }
func (c *Config) IsDevelopment() bool      { return c.AppEnv == "development" }
func (c *Config) GetServerAddr() string    { return c.ServerAddr }
func (c *Config) GetSiteOrigin() string    { return c.SiteOrigin }
func (c *Config) GetSessionSecret() string { return c.SessionSecret }
func (c *Config) GetContentDir() string    { return c.ContentDir }

func (c *Config) GetWeb3FormsEndpoint() string        { return c.Web3FormsEndpoint }
func (c *Config) GetWeb3FormsAccessKey() string       { return c.Web3FormsAccessKey }
func (c *Config) GetLeadRecipient() string            { return c.LeadRecipient }
func (c *Config) GetLeadFromName() string             { return c.LeadFromName }
func (c *Config) GetLeadSubject() string              { return c.LeadSubject }
func (c *Config) GetLeadSubmitTimeout() time.Duration { return c.LeadSubmitTimeout }
func (c *Config) GetLeadWidgetTTL() time.Duration     { return c.LeadWidgetTTL }
func (c *Config) GetQuoteURL() string                 { return c.QuoteURL }
func (c *Config) GetRateLimitPerMinute() int          { return c.RateLimitPerMinute }

func (c *Config) GetGA4MeasurementID() string { return c.GA4MeasurementID }
func (c *Config) GetGA4APISecret() string     { return c.GA4APISecret }

func (c *Config) GetEmailProvider() string { return c.EmailProvider }
func (c *Config) GetEmailSender() string   { return c.EmailSender }
func (c *Config) GetEmailAPIKey() string   { return c.EmailAPIKey }
func (c *Config) GetSMTPHost() string      { return c.SMTPHost }
func (c *Config) GetSMTPPort() int         { return c.SMTPPort }
func (c *Config) GetSMTPUsername() string  { return c.SMTPUsername }
func (c *Config) GetSMTPPassword() string  { return c.SMTPPassword }

func (c *Config) GetTracingEnabled() bool       { return c.TracingEnabled }
func (c *Config) GetTracingServiceName() string { return c.TracingServiceName }
func (c *Config) GetTracingZipkinURL() string   { return c.TracingZipkinURL }
