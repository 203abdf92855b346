package libs

import (
	"fmt"
	"html"

	"handicraft-server/config"
	"handicraft-server/models"

	"gopkg.in/gomail.v2"
)

const shopName = "Handicraft Businesses"

type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(cfg config.SMTP) *Mailer {
	from := cfg.From
	if from == "" {
		from = cfg.User
	}
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass),
		from:   from,
	}
}

func (m *Mailer) SendOrderConfirmation(order models.Order) error {
	if err := m.dialer.DialAndSend(m.orderConfirmation(order)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (m *Mailer) orderConfirmation(order models.Order) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", order.UserEmail)
	msg.SetHeader("Subject", fmt.Sprintf("Order Confirmation #%s - %s", order.ID.Hex(), shopName))

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
    <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px;">
        <h2 style="color: #333;">Order Confirmation</h2>
        <p>Thank you for your order!</p>
        <div style="background-color: #fdf6ec; padding: 20px; margin: 20px 0; border-radius: 8px;">
            <p><strong>Order Number:</strong> %s</p>
            <p><strong>Product:</strong> %s</p>
            <p><strong>Quantity:</strong> %d</p>
        </div>
        <p style="color: #666; font-size: 14px;">%s Team</p>
    </div>
</body>
</html>
	`, order.ID.Hex(), html.EscapeString(order.ProductID), order.Quantity, shopName)

	msg.SetBody("text/html", body)
	return msg
}
