package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

var reminderTemplate = template.Must(template.New("reminder").Parse(`
<p>Hi,</p>
<p>It's time to follow up with <strong>{{.ContactName}}</strong> ({{.Frequency}} cadence).</p>
{{if .Notes}}<p>Your notes: {{.Notes}}</p>{{end}}
<p>&mdash; Studiously</p>
`))

// SendReminder emails the owner that a follow-up is due.
func (s *EmailSender) SendReminder(to, contactName, frequency, notes string) error {
	data := ReminderEmailData{
		ContactName: contactName,
		Frequency:   frequency,
		Notes:       notes,
	}

	var body bytes.Buffer
	if err := reminderTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render reminder template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Time to follow up with %s", contactName))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send reminder email: %w", err)
	}

	return nil
}
