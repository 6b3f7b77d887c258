// internal/services/notification_service.go
package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/mail"
	"net/smtp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/storefront-backend/internal/config"
	"github.com/javajoker/storefront-backend/internal/models"
)

// MailSender matches smtp.SendMail.
type MailSender func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error

type NotificationService struct {
	config *config.Config
	send   MailSender
}

type EmailTemplate struct {
	Subject string
	Body    string
}

func NewNotificationService(config *config.Config) *NotificationService {
	return &NotificationService{
		config: config,
		send:   smtp.SendMail,
	}
}

// WithSender swaps the SMTP transport.
func (s *NotificationService) WithSender(send MailSender) *NotificationService {
	s.send = send
	return s
}

// OrderCreated sends the confirmation email. It runs detached from the
// request, so failures are logged and never returned.
func (s *NotificationService) OrderCreated(order models.Order) {
	if err := s.SendOrderConfirmation(order); err != nil {
		logrus.WithError(err).WithField("order_id", order.ID).Warn("Failed to send order confirmation")
	}
}

func (s *NotificationService) SendOrderConfirmation(order models.Order) error {
	tmpl := s.getEmailTemplate("order_confirmation")

	data := map[string]interface{}{
		"CustomerName": order.CustomerName,
		"OrderID":      order.ID,
		"Status":       order.Status,
		"DesignType":   order.DesignType,
		"Design":       order.DesignReference(),
		"HasProduct":   order.ProductLine != nil,
		"StoreName":    s.config.Email.FromName,
	}
	if order.ProductLine != nil {
		data["ProductName"] = order.ProductName
		data["Quantity"] = order.Quantity
		data["UnitPrice"] = order.UnitPrice.StringFixed(2)
		data["TotalPrice"] = order.TotalPrice.StringFixed(2)
	}
	if order.Vendor != nil {
		data["VendorName"] = order.Vendor.Name
		data["VendorTimeline"] = order.Vendor.Timeline
	}

	subject, err := s.renderTemplate(tmpl.Subject, data)
	if err != nil {
		return fmt.Errorf("failed to render email subject: %w", err)
	}
	body, err := s.renderTemplate(tmpl.Body, data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	var cc []string
	if order.Vendor != nil && order.Vendor.Email != "" {
		// The vendor address comes from the client; a bad one only loses the copy.
		if addr, err := mail.ParseAddress(order.Vendor.Email); err == nil {
			cc = append(cc, addr.Address)
		} else {
			logrus.WithError(err).WithField("order_id", order.ID).Warn("Skipping vendor copy with invalid address")
		}
	}

	return s.sendEmail(order.CustomerEmail, cc, subject, body)
}

func (s *NotificationService) sendEmail(to string, cc []string, subject, body string) error {
	if s.config.Email.SMTPHost == "" {
		// Email not configured, just log
		logrus.WithFields(logrus.Fields{
			"to":      to,
			"cc":      cc,
			"subject": subject,
		}).Info("Email would be sent")
		return nil
	}

	var auth smtp.Auth
	if s.config.Email.SMTPUsername != "" {
		auth = smtp.PlainAuth("", s.config.Email.SMTPUsername, s.config.Email.SMTPPassword, s.config.Email.SMTPHost)
	}

	from := s.config.Email.FromEmail
	header := from
	if s.config.Email.FromName != "" {
		header = fmt.Sprintf("%s <%s>", s.config.Email.FromName, from)
	}

	var headers strings.Builder
	fmt.Fprintf(&headers, "From: %s\r\nTo: %s\r\n", header, to)
	if len(cc) > 0 {
		fmt.Fprintf(&headers, "Cc: %s\r\n", strings.Join(cc, ", "))
	}
	fmt.Fprintf(&headers, "Subject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n", subject)

	msg := []byte(headers.String() + body)

	addr := fmt.Sprintf("%s:%s", s.config.Email.SMTPHost, s.config.Email.SMTPPort)
	return s.send(addr, auth, from, append([]string{to}, cc...), msg)
}

func (s *NotificationService) renderTemplate(templateStr string, data interface{}) (string, error) {
	tmpl, err := template.New("email").Parse(templateStr)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (s *NotificationService) getEmailTemplate(templateType string) EmailTemplate {
	templates := map[string]EmailTemplate{
		"order_confirmation": {
			Subject: "Order {{.OrderID}} received",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<h2>Thank you, {{.CustomerName}}!</h2>
	<p>We received your order <strong>{{.OrderID}}</strong>. Its status is {{.Status}}.</p>
	{{if .HasProduct}}
	<p>{{.Quantity}} x {{.ProductName}} at {{.UnitPrice}} each, total {{.TotalPrice}}.</p>
	{{end}}
	<p>Design ({{.DesignType}}): {{.Design}}</p>
	{{if .VendorName}}<p>Fulfilled by {{.VendorName}}{{if .VendorTimeline}}, usually within {{.VendorTimeline}}{{end}}.</p>{{end}}
	<p>Best regards,<br>{{.StoreName}}</p>
</body>
</html>`,
		},
	}

	if tmpl, exists := templates[templateType]; exists {
		return tmpl
	}

	return EmailTemplate{
		Subject: "Notification",
		Body:    "<p>{{.OrderID}}</p>",
	}
}
