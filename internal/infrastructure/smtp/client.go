package smtp

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/gstippagol/habit/internal/config"
	"github.com/gstippagol/habit/internal/domain/service"
)

// Client sends templated HTML mail over SMTP.
type Client struct {
	cfg       *config.SMTPConfig
	emailCfg  *config.EmailConfig
	templates map[string]*template.Template
}

var _ service.EmailService = (*Client)(nil)

// NewClient creates a new SMTP client.
func NewClient(cfg *config.SMTPConfig, emailCfg *config.EmailConfig) (*Client, error) {
	client := &Client{
		cfg:       cfg,
		emailCfg:  emailCfg,
		templates: make(map[string]*template.Template),
	}

	if err := client.loadTemplates(); err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}

	return client, nil
}

// loadTemplates loads the email templates, falling back to the built-in
// defaults when no file override exists.
func (c *Client) loadTemplates() error {
	defaults := map[string]string{
		"verification":   defaultVerificationTemplate,
		"starter_nudge":  defaultStarterNudgeTemplate,
		"inactivity":     defaultInactivityTemplate,
		"monthly_report": defaultMonthlyReportTemplate,
	}

	for name, fallback := range defaults {
		tmpl, err := template.ParseFiles(filepath.Join(c.emailCfg.TemplatesPath, name+".html"))
		if err != nil {
			tmpl, err = template.New(name).Parse(fallback)
			if err != nil {
				return fmt.Errorf("failed to parse default %s template: %w", name, err)
			}
		}
		c.templates[name] = tmpl
	}

	return nil
}

// SendVerificationEmail sends an email verification email.
func (c *Client) SendVerificationEmail(ctx context.Context, to, username, verificationToken string) error {
	verificationURL := fmt.Sprintf("%s?token=%s", c.emailCfg.VerificationURL, verificationToken)

	body, err := c.renderTemplate("verification", map[string]interface{}{
		"Username":        username,
		"VerificationURL": verificationURL,
	})
	if err != nil {
		return fmt.Errorf("failed to render verification email: %w", err)
	}

	return c.send(to, "Verify Your Email - Habit Tracker", body, nil, "")
}

// SendStarterNudge sends the one-time "create your first habit" email.
func (c *Client) SendStarterNudge(ctx context.Context, to, username string) error {
	body, err := c.renderTemplate("starter_nudge", map[string]interface{}{
		"Username":    username,
		"FrontendURL": c.emailCfg.FrontendURL,
	})
	if err != nil {
		return fmt.Errorf("failed to render starter nudge: %w", err)
	}

	return c.send(to, "Your journey starts today", body, nil, "")
}

// SendInactivityNudge sends the discipline reminder to an inactive user.
func (c *Client) SendInactivityNudge(ctx context.Context, to, username string) error {
	body, err := c.renderTemplate("inactivity", map[string]interface{}{
		"Username":    username,
		"FrontendURL": c.emailCfg.FrontendURL,
	})
	if err != nil {
		return fmt.Errorf("failed to render inactivity nudge: %w", err)
	}

	return c.send(to, "Discipline equals freedom", body, nil, "")
}

// SendMonthlyReport sends the month-end summary with the ledger PDF
// attached.
func (c *Client) SendMonthlyReport(ctx context.Context, to, username, monthLabel string, pdf []byte) error {
	body, err := c.renderTemplate("monthly_report", map[string]interface{}{
		"Username":   username,
		"MonthLabel": monthLabel,
	})
	if err != nil {
		return fmt.Errorf("failed to render monthly report email: %w", err)
	}

	filename := fmt.Sprintf("Habit_Report_%s.pdf", strings.ReplaceAll(monthLabel, " ", "_"))
	subject := "Your Monthly Habit Report: " + monthLabel
	return c.send(to, subject, body, pdf, filename)
}

// send sends an email using gomail, attaching the document when given.
func (c *Client) send(to, subject, body string, attachment []byte, attachmentName string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", c.cfg.FromName, c.cfg.FromEmail))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if len(attachment) > 0 {
		m.Attach(attachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(attachment)
			return err
		}))
	}

	d := gomail.NewDialer(c.cfg.Host, c.cfg.Port, c.cfg.Username, c.cfg.Password)

	// UseTLS = true means STARTTLS (port 587), false means SSL (port 465).
	if c.cfg.UseTLS {
		d.SSL = false
	} else {
		d.SSL = true
	}
	d.TLSConfig = &tls.Config{ServerName: c.cfg.Host}

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// renderTemplate renders an email template with the provided data.
func (c *Client) renderTemplate(templateName string, data interface{}) (string, error) {
	tmpl, exists := c.templates[templateName]
	if !exists {
		return "", fmt.Errorf("template %s not found", templateName)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}
