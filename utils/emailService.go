package utils

import (
	"certiperu/config"
	"fmt"
	"log"
	"net/smtp"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEnrollmentEmail notifies the participant after enrolling in a course
func SendEnrollmentEmail(email, name, courseName string) error {
	subject := "Confirmación de inscripción"
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">¡Inscripción registrada!</h2>
					<p style="font-size: 16px; color: #555555;">Estimado(a) %s,</p>
					<p style="font-size: 16px; color: #555555;">Tu inscripción fue registrada correctamente en:</p>
					<h3 style="text-align: center; color: #1a5276; margin: 20px 0;">%s</h3>
					<p style="font-size: 14px; color: #666666;">Una vez confirmado el pago podrás acceder al curso y, al culminarlo, a tu certificado digital.</p>
				</div>
			</body>
		</html>
	`, name, courseName)

	return sendEmail(email, name, subject, body)
}

// SendCertificateEmail notifies the participant that a certificate was issued
func SendCertificateEmail(email, name, courseName, code, verificationURL string) error {
	subject := "Tu certificado ha sido emitido"
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">🎓 ¡Felicitaciones %s!</h2>
					<p style="font-size: 16px; color: #555555;">Tu certificado del curso ha sido emitido:</p>
					<h3 style="text-align: center; color: #1a5276; margin: 20px 0;">%s</h3>
					<p style="font-size: 16px; color: #555555; text-align: center;">Código de verificación: <b>%s</b></p>
					<p style="font-size: 14px; color: #666666; text-align: center;">Cualquier persona puede validar tu certificado en:<br/><a href="%s">%s</a></p>
				</div>
			</body>
		</html>
	`, name, courseName, code, verificationURL, verificationURL)

	return sendEmail(email, name, subject, body)
}

// sendEmail delivers through SendGrid when an API key is configured, falling
// back to plain SMTP. With neither configured the message is skipped.
func sendEmail(email, name, subject, html string) error {
	cfg := config.AppConfig
	if cfg == nil {
		return nil
	}

	if cfg.SendGridAPIKey != "" {
		from := mail.NewEmail("Certificados", cfg.EmailSender)
		to := mail.NewEmail(name, email)
		message := mail.NewSingleEmail(from, subject, to, "", html)
		client := sendgrid.NewSendClient(cfg.SendGridAPIKey)
		resp, err := client.Send(message)
		if err != nil {
			log.Printf("Error sending email via SendGrid: %v", err)
			return err
		}
		if resp.StatusCode >= 400 {
			log.Printf("SendGrid rejected email: %d %s", resp.StatusCode, resp.Body)
			return fmt.Errorf("sendgrid error: %d", resp.StatusCode)
		}
		return nil
	}

	if cfg.EmailSender == "" {
		log.Printf("Email not configured, skipping notification to %s", email)
		return nil
	}

	smtpHost := "smtp.gmail.com"
	smtpPort := "587"
	headers := fmt.Sprintf("Subject: %s\nMIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n", subject)
	message := []byte(headers + "\n" + html)

	auth := smtp.PlainAuth("", cfg.EmailSender, cfg.EmailPassword, smtpHost)
	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, cfg.EmailSender, []string{email}, message); err != nil {
		log.Printf("Error sending email: %v", err)
		return err
	}
	return nil
}
