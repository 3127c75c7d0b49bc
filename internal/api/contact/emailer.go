package contact

import (
	"fmt"
	"net/smtp"

	"trainerhub-app/config"
)

// SendContactEmail forwards a contact-form submission to the trainer's
// inbox over plain SMTP.
func SendContactEmail(to, name, replyTo, body string) error {
	from := config.SMTP_FROM
	password := config.SMTP_PASSWORD
	host := config.SMTP_HOST
	port := config.SMTP_PORT

	if host == "" || from == "" {
		return fmt.Errorf("smtp not configured")
	}

	auth := smtp.PlainAuth("", from, password, host)

	subject := fmt.Sprintf("New contact request from %s", name)
	text := fmt.Sprintf("From: %s <%s>\n\n%s", name, replyTo, body)

	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Reply-To: " + replyTo + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		text + "\r\n")

	err := smtp.SendMail(host+":"+port, auth, from, []string{to}, message)
	if err != nil {
		fmt.Println("❌ SMTP error:", err)
	}
	return err
}
