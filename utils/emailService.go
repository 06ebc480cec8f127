package utils

import (
	"fmt"
	"log"
	"strings"

	"lms/config"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends an HTML email through SendGrid
func SendEmail(toEmail, toName, subject, htmlBody string) error {
	if config.AppConfig.SendgridApiKey == "" {
		log.Println("SENDGRID_API_KEY not set, skipping email to", toEmail)
		return nil
	}

	from := sgmail.NewEmail(config.AppConfig.EmailFromName, config.AppConfig.EmailSender)
	to := sgmail.NewEmail(toName, toEmail)
	message := sgmail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Println("Error sending email:", err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("Failed to send email, response code: %d", resp.StatusCode)
		return fmt.Errorf("failed to send email, code: %d", resp.StatusCode)
	}

	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333;">%s</h2>
					%s
					<p style="color: #999999; font-size: 12px; margin-top: 30px;">This is an automated message, please do not reply.</p>
				</div>
			</body>
		</html>`, title, bodyContent)
}

// ReceiptLine is one purchased course on a checkout receipt email
type ReceiptLine struct {
	Title      string
	Instructor string
	Price      float64
}

// SendCheckoutReceiptEmail emails the buyer a receipt after checkout.
// Best effort: failures are logged and never fail the request.
func SendCheckoutReceiptEmail(email, name, receiptNo string, lines []ReceiptLine, total float64) {
	var rows strings.Builder
	for _, line := range lines {
		rows.WriteString(fmt.Sprintf(
			`<tr><td style="padding: 6px 0;">%s</td><td style="color: #666666;">%s</td><td align="right">$%.2f</td></tr>`,
			line.Title, line.Instructor, line.Price,
		))
	}

	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Thanks for your purchase! Receipt number: <b>%s</b></p>
		<table width="100%%" style="border-collapse: collapse;">%s</table>
		<p style="margin-top: 16px;"><b>Total: $%.2f</b></p>
		<p>Your courses are ready in your dashboard. Happy learning!</p>`,
		name, receiptNo, rows.String(), total,
	)

	if err := SendEmail(email, name, "Your course purchase receipt", getEmailTemplate("Purchase Confirmed", body)); err != nil {
		log.Printf("Failed to send checkout receipt to %s: %v", email, err)
	}
}
