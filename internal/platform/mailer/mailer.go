// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

/*
Package mailer provides SMTP delivery for curator notifications.

It is deliberately minimal: the catalog sends low-volume, fire-and-forget
notification mail (one message per configured recipient when a visitor
submits a challenge). Delivery failures are logged by the caller and never
affect the triggering request.
*/
package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"
)

// Sender delivers a plain-text message to a single recipient.
//
// # Why an interface?
//
// The challenge service depends on Sender, so tests can record dispatched
// messages without a live SMTP relay.
type Sender interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

// SMTPMailer implements [Sender] over a configured SMTP relay.
type SMTPMailer struct {
	host    string
	port    int
	user    string
	pass    string
	from    string
	timeout time.Duration

	// tlsConfig overrides the STARTTLS client configuration. Tests use it
	// to trust a relay certificate that is not in the system roots.
	tlsConfig *tls.Config
}

// NewSMTP constructs an SMTP mailer. Host may be empty, in which case every
// Send returns an error; callers should skip notification entirely when no
// relay is configured.
func NewSMTP(host string, port int, user, pass, from string) *SMTPMailer {
	return &SMTPMailer{
		host:    host,
		port:    port,
		user:    user,
		pass:    pass,
		from:    from,
		timeout: 30 * time.Second,
	}
}

// Configured reports whether an SMTP relay has been set up.
func (m *SMTPMailer) Configured() bool {
	return m.host != ""
}

// Send delivers one message. The context deadline bounds the whole exchange
// by closing the underlying connection on expiry.
func (m *SMTPMailer) Send(ctx context.Context, recipient, subject, body string) error {
	if !m.Configured() {
		return fmt.Errorf("mailer: no SMTP relay configured")
	}

	addr := net.JoinHostPort(m.host, fmt.Sprintf("%d", m.port))

	dialer := &net.Dialer{Timeout: m.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("mailer: dial %s: %w", addr, err)
	}

	// Close the connection when the context is cancelled so a stuck relay
	// cannot outlive the request that triggered the notification.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		return fmt.Errorf("mailer: smtp handshake: %w", err)
	}
	defer client.Close()

	// Opportunistic STARTTLS; plain submission is still allowed for local relays.
	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(m.starttlsConfig()); err != nil {
			return fmt.Errorf("mailer: starttls: %w", err)
		}
	}

	if m.user != "" {
		auth := smtp.PlainAuth("", m.user, m.pass, m.host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("mailer: auth: %w", err)
		}
	}

	if err := client.Mail(m.from); err != nil {
		return fmt.Errorf("mailer: mail from: %w", err)
	}
	if err := client.Rcpt(recipient); err != nil {
		return fmt.Errorf("mailer: rcpt to: %w", err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("mailer: data: %w", err)
	}

	if _, err := writer.Write([]byte(m.buildMessage(recipient, subject, body))); err != nil {
		return fmt.Errorf("mailer: write body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("mailer: close body: %w", err)
	}

	return client.Quit()
}

// starttlsConfig returns the client configuration for the STARTTLS upgrade.
// The relay certificate is verified against the configured host name.
func (m *SMTPMailer) starttlsConfig() *tls.Config {
	if m.tlsConfig != nil {
		return m.tlsConfig
	}
	return &tls.Config{
		ServerName: m.host,
		MinVersion: tls.VersionTLS12,
	}
}

// buildMessage assembles RFC 5322 headers plus the plain-text body.
func (m *SMTPMailer) buildMessage(recipient, subject, body string) string {
	var msg strings.Builder

	msg.WriteString(fmt.Sprintf("From: Digital Mary <%s>\r\n", m.from))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", recipient))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)
	msg.WriteString("\r\n")

	return msg.String()
}
