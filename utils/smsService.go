package utils

import (
	"certiperu/config"
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// SendCertificateSMS pushes a short notification with the verification code
// through the configured SMS gateway. Without a configured gateway it is a
// no-op.
func SendCertificateSMS(phone, courseName, code string) error {
	cfg := config.AppConfig
	if cfg == nil || cfg.SMSApiURL == "" || cfg.SMSApiKey == "" || phone == "" {
		return nil
	}

	client := resty.New().SetTimeout(10 * time.Second)
	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+cfg.SMSApiKey).
		SetBody(map[string]string{
			"to":      phone,
			"message": fmt.Sprintf("Tu certificado de %s fue emitido. Código de verificación: %s", courseName, code),
		}).
		Post(cfg.SMSApiURL)
	if err != nil {
		log.Printf("Error while sending SMS: %v", err)
		return err
	}

	if resp.StatusCode() >= 400 {
		log.Printf("Failed to send SMS, response code: %d", resp.StatusCode())
		return fmt.Errorf("failed to send SMS, code: %d", resp.StatusCode())
	}

	return nil
}
