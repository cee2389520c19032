// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

/*
Package mailer delivers workflow notification email.

The submission workflow notifies three audiences: the Graduate School
(new submissions to review), candidates (acceptance, rejection, missing
paperwork), and both (deposit completed). Services compose a [Message]
and hand it to a [Sender]; the SMTP implementation talks to a local
relay, and [Noop] stands in for tests and offline development.

Delivery failures never roll back a workflow decision, but failures on
decision mail (submit, accept, reject) are reported to the caller so the
operator learns the relay is down.
*/
package mailer

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"
)

// Message is a single outbound plain-text notification.
type Message struct {
	// From overrides the sender's default envelope address when set.
	From string
	// To lists recipient addresses. Empty addresses are skipped.
	To []string
	// Subject is the message subject line.
	Subject string
	// Body is the plain-text message body.
	Body string
}

// Sender delivers notification messages.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// # SMTP Sender

// SMTP delivers messages through an SMTP relay.
type SMTP struct {
	client *gomail.Client
	from   string
}

/*
NewSMTP creates an SMTP [Sender] talking to the given relay.

Parameters:
  - host: SMTP relay hostname.
  - port: SMTP relay port.
  - from: envelope sender address for all notifications.

Returns:
  - *SMTP: the configured sender.
  - error: if the client cannot be constructed or the from address is invalid.
*/
func NewSMTP(host string, port int, from string) (*SMTP, error) {
	// Campus relays accept unauthenticated mail from inside the network,
	// so no auth option is set. TLS is used when the relay offers it.
	client, err := gomail.NewClient(host,
		gomail.WithPort(port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	)
	if err != nil {
		return nil, fmt.Errorf("mailer_client_init_failed: %w", err)
	}

	return &SMTP{client: client, from: from}, nil
}

// Send delivers msg to every non-empty recipient address.
func (s *SMTP) Send(ctx context.Context, msg Message) error {
	from := msg.From
	if from == "" {
		from = s.from
	}

	m := gomail.NewMsg()
	if err := m.From(from); err != nil {
		return fmt.Errorf("mailer_invalid_from: %w", err)
	}

	var recipients []string
	for _, addr := range msg.To {
		if addr != "" {
			recipients = append(recipients, addr)
		}
	}
	if len(recipients) == 0 {
		return fmt.Errorf("mailer_no_recipients")
	}
	if err := m.To(recipients...); err != nil {
		return fmt.Errorf("mailer_invalid_recipient: %w", err)
	}

	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.Body)

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("mailer_send_failed: %w", err)
	}
	return nil
}

// # Noop Sender

// Noop is a [Sender] that records messages without delivering them.
// Used in tests and local development without an SMTP relay.
type Noop struct {
	// Sent accumulates every message passed to Send, in order.
	Sent []Message
}

// Send records msg and reports success.
func (n *Noop) Send(_ context.Context, msg Message) error {
	n.Sent = append(n.Sent, msg)
	return nil
}
