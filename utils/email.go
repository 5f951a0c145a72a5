package utils

import (
	"courseapi/config"
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// SendEmail sends an HTML mail through SMTP. Does nothing when no sender is
// configured.
func SendEmail(to []string, subject string, htmlBody string) error {
	from := config.AppConfig.EmailSender
	password := config.AppConfig.EmailPassword
	if from == "" {
		return nil
	}

	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Course Booking <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		log.Printf("Error sending email to %v: %v", to, err)
		return err
	}
	return nil
}

// SendWelcomeEmail mails a new user after registration. Intended to be called
// in a goroutine; failures are logged, never surfaced to the request.
func SendWelcomeEmail(firstName, email string) {
	body := fmt.Sprintf(`
	<h2>Welcome, %s!</h2>
	<p>Your account has been created. You can now browse the catalog and enroll in courses.</p>`, firstName)

	_ = SendEmail([]string{email}, "Welcome to Course Booking", body)
}

// SendEnrollmentEmail confirms a new enrollment.
func SendEnrollmentEmail(email string, totalPrice float64) {
	body := fmt.Sprintf(`
	<h2>Enrollment confirmed</h2>
	<p>Your enrollment has been recorded. Total price: %.2f.</p>`, totalPrice)

	_ = SendEmail([]string{email}, "Enrollment confirmation", body)
}
