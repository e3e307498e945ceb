package notify

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/orientwatch/backend/internal/domain"
)

// Mailer sends staff notifications about new bookings and orders. Delivery
// is best-effort: callers log failures and move on.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

// NewFromEnv returns nil when SMTP is not configured, which disables
// notifications entirely.
func NewFromEnv() *Mailer {
	host := os.Getenv("SMTP_HOST")
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")
	to := os.Getenv("NOTIFY_EMAIL")
	if host == "" || port == 0 || user == "" || to == "" {
		return nil
	}
	return &Mailer{dialer: gomail.NewDialer(host, port, user, pass), from: user, to: to}
}

func (m *Mailer) BookingCreated(b *domain.Booking) error {
	var body strings.Builder
	fmt.Fprintf(&body, "Booking %s\n", b.BookingNumber)
	fmt.Fprintf(&body, "Name: %s\nPhone: %s\nEmail: %s\n", b.Name, b.Phone, b.Email)
	fmt.Fprintf(&body, "Requested: %s %s\n", b.Date, b.Time)
	fmt.Fprintf(&body, "Boutique: %s\n", b.Boutique)
	if b.Message != "" {
		fmt.Fprintf(&body, "Message: %s\n", b.Message)
	}
	return m.send("New boutique booking "+b.BookingNumber, body.String())
}

func (m *Mailer) OrderCreated(o *domain.Order) error {
	var body strings.Builder
	fmt.Fprintf(&body, "Order %s\n", o.OrderNumber)
	fmt.Fprintf(&body, "Subtotal: %.2f\nShipping: %.2f\nTotal: %.2f\n", o.Subtotal, o.Shipping, o.Total)
	fmt.Fprintf(&body, "Payment: %s\nDelivery: %s\n", o.PaymentMethod, o.DeliveryMethod)
	if o.Notes != "" {
		fmt.Fprintf(&body, "Notes: %s\n", o.Notes)
	}
	return m.send("New order "+o.OrderNumber, body.String())
}

func (m *Mailer) send(subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}
