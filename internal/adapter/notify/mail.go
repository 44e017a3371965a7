// Package notify delivers customer e-mails and operator alerts.
package notify

import (
	"context"
	"fmt"
	"strings"

	"commerce-reconciler/config"
	"commerce-reconciler/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/wneessen/go-mail"
)

// Sender is the part of *mail.Client the notifier needs.
type Sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// MailNotifier sends payment outcome e-mails to the order's customer.
type MailNotifier struct {
	sender   Sender
	from     string
	fromName string
	log      zerolog.Logger
}

// NewSMTPClient builds a go-mail client from config.
func NewSMTPClient(cfg config.SMTPConfig) (*mail.Client, error) {
	c, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("creating smtp client: %w", err)
	}
	return c, nil
}

func NewMailNotifier(sender Sender, cfg config.SMTPConfig, log zerolog.Logger) *MailNotifier {
	return &MailNotifier{
		sender:   sender,
		from:     cfg.From,
		fromName: cfg.FromName,
		log:      log.With().Str("component", "mail_notifier").Logger(),
	}
}

func (n *MailNotifier) PaymentSucceeded(ctx context.Context, order *domain.Order, txn *domain.PaymentTransaction) error {
	subject := fmt.Sprintf("Payment received for order %s", order.OrderNumber)
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", greetingName(order))
	fmt.Fprintf(&b, "We have received your payment of %s %s for order %s.\n", txn.Currency, txn.Amount.StringFixed(2), order.OrderNumber)
	fmt.Fprintf(&b, "Reference: %s\n\n", txn.MerchantTransactionID)
	b.WriteString("We will let you know as soon as it ships.\n")
	return n.send(ctx, order, subject, b.String())
}

func (n *MailNotifier) PaymentFailed(ctx context.Context, order *domain.Order, txn *domain.PaymentTransaction) error {
	subject := fmt.Sprintf("Payment failed for order %s", order.OrderNumber)
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", greetingName(order))
	fmt.Fprintf(&b, "Your payment of %s %s for order %s did not go through.\n", txn.Currency, txn.Amount.StringFixed(2), order.OrderNumber)
	if txn.ErrorMessage != nil && *txn.ErrorMessage != "" {
		fmt.Fprintf(&b, "Reason: %s\n", *txn.ErrorMessage)
	}
	b.WriteString("\nNo money was taken. You can retry from your order page.\n")
	return n.send(ctx, order, subject, b.String())
}

func greetingName(o *domain.Order) string {
	if o.CustomerName != "" {
		return o.CustomerName
	}
	return "there"
}

func (n *MailNotifier) send(ctx context.Context, order *domain.Order, subject, body string) error {
	if order.CustomerEmail == "" {
		n.log.Debug().Str("order", order.OrderNumber).Msg("no customer e-mail, skipping notification")
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(n.fromName, n.from); err != nil {
		return fmt.Errorf("setting from address: %w", err)
	}
	if err := msg.To(order.CustomerEmail); err != nil {
		return fmt.Errorf("setting to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := n.sender.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("sending %q: %w", subject, err)
	}
	n.log.Info().Str("order", order.OrderNumber).Str("subject", subject).Msg("notification sent")
	return nil
}

// LogNotifier stands in when SMTP is not configured.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log.With().Str("component", "log_notifier").Logger()}
}

func (n *LogNotifier) PaymentSucceeded(_ context.Context, order *domain.Order, txn *domain.PaymentTransaction) error {
	n.log.Info().Str("order", order.OrderNumber).Str("merchant_txn_id", txn.MerchantTransactionID).Msg("payment succeeded")
	return nil
}

func (n *LogNotifier) PaymentFailed(_ context.Context, order *domain.Order, txn *domain.PaymentTransaction) error {
	n.log.Info().Str("order", order.OrderNumber).Str("merchant_txn_id", txn.MerchantTransactionID).Msg("payment failed")
	return nil
}
