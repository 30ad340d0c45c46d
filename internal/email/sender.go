package email

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"kirieshka/infrastructure"
)

// Sender delivers mail over SMTP. With empty credentials it stays in
// log-only mode: Send reports ErrEmailNotConfigured and the dispatcher falls
// back to logging the code.
type Sender struct {
	dialer     *gomail.Dialer
	from       string
	configured bool
}

func NewSender(host string, port int, username, password string) *Sender {
	configured := username != "" && password != ""
	var dialer *gomail.Dialer
	if configured {
		dialer = gomail.NewDialer(host, port, username, password)
	}
	return &Sender{
		dialer:     dialer,
		from:       fmt.Sprintf("%q <%s>", "Kirieshka.store", username),
		configured: configured,
	}
}

func (s *Sender) Configured() bool {
	return s.configured
}

func (s *Sender) Send(to, subject, body string) error {
	if !s.configured {
		return infrastructure.ErrEmailNotConfigured
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}

var verificationTmpl = template.Must(template.New("verification").Parse(`
<div>
  <h2>Verify Email</h2>
  <p>Hi {{.Name}},</p>
  <p>Your Kirieshka.store verification code: <strong>{{.Code}}</strong></p>
  <p>The code expires in 30 minutes.</p>
</div>`))

var passwordResetTmpl = template.Must(template.New("reset").Parse(`
<div>
  <h2>Password Reset</h2>
  <p>Hi {{.Name}},</p>
  <p>Your Kirieshka.store password reset code: <strong>{{.Code}}</strong></p>
  <p>The code expires in 30 minutes. If you did not request a reset, ignore this email.</p>
</div>`))

func renderTemplate(t *template.Template, name, code string) (string, error) {
	buf := new(bytes.Buffer)
	err := t.Execute(buf, map[string]string{"Name": name, "Code": code})
	if err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return buf.String(), nil
}

// VerificationMessage builds the registration verification email.
func VerificationMessage(to, name, code string) Message {
	body, err := renderTemplate(verificationTmpl, name, code)
	if err != nil {
		body = fmt.Sprintf("Your verification code: %s", code)
	}
	return Message{
		To:      to,
		Subject: "Verify Email - Kirieshka.store",
		Body:    body,
		Code:    code,
	}
}

// PasswordResetMessage builds the password reset email.
func PasswordResetMessage(to, name, code string) Message {
	body, err := renderTemplate(passwordResetTmpl, name, code)
	if err != nil {
		body = fmt.Sprintf("Your password reset code: %s", code)
	}
	return Message{
		To:      to,
		Subject: "Password Reset - Kirieshka.store",
		Body:    body,
		Code:    code,
	}
}
