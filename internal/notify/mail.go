package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/avc/checkout-gateway/internal/domain"
)

// Dialer отправляет письма (реализуется *gomail.Dialer)
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPConfig параметры SMTP-сервера
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

const rejectionSubject = "Pago rechazado"

var rejectionBody = template.Must(template.New("rejection").Parse(`
<h2>Pago rechazado</h2>
<p>Hola {{.Client.FirstName}} {{.Client.FirstSurname}},</p>
<p>{{.Reason}}</p>
<p>Pedido: {{.OrderID}}</p>
<p>Importe: {{.Amount.StringFixed 2}}</p>
`))

// MailSender доставляет уведомления об отказе по e-mail
type MailSender struct {
	dialer Dialer
	from   string
}

// NewMailSender создает отправителя поверх gomail.Dialer
func NewMailSender(cfg SMTPConfig) *MailSender {
	return NewMailSenderWithDialer(
		gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		cfg.From,
	)
}

// NewMailSenderWithDialer создает отправителя с заданным Dialer
func NewMailSenderWithDialer(dialer Dialer, from string) *MailSender {
	return &MailSender{dialer: dialer, from: from}
}

// SendRejection отправляет клиенту письмо об отклоненном платеже
func (s *MailSender) SendRejection(ctx context.Context, notice domain.RejectionNotice) error {
	if notice.Client.Email == "" {
		return fmt.Errorf("notify: client %s has no email", notice.Client.ID)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m, err := s.buildMessage(notice)
	if err != nil {
		return err
	}

	// gomail не принимает context: ждем отправку не дольше ctx,
	// зависшая SMTP-сессия дорабатывает в своей горутине
	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("notify: failed to send rejection for order %s: %w", notice.OrderID, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("notify: sending rejection for order %s timed out: %w", notice.OrderID, ctx.Err())
	}
}

func (s *MailSender) buildMessage(notice domain.RejectionNotice) (*gomail.Message, error) {
	var body bytes.Buffer
	if err := rejectionBody.Execute(&body, notice); err != nil {
		return nil, fmt.Errorf("notify: failed to render rejection body: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", notice.Client.Email)
	m.SetHeader("Subject", rejectionSubject)
	m.SetBody("text/html", body.String())

	return m, nil
}
