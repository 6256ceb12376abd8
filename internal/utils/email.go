package utils

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"strconv"

	"ecowaste_back_end/internal/models"

	"github.com/wneessen/go-mail"
)

// SendOrderConfirmation emails the receipt for a completed order. The PDF
// attachment is optional; when receipt rendering failed the mail goes out
// without it.
func SendOrderConfirmation(to string, order models.Order, receiptPDF []byte) error {
	msg := mail.NewMsg()

	if err := msg.From("noreply@ecowastehub.org"); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(fmt.Sprintf("Your Eco Waste Hub order %s", order.OrderID))
	msg.SetBodyString(mail.TypeTextHTML, OrderConfirmationHTML(order))

	if receiptPDF != nil {
		msg.AttachReader("ecowaste_receipt.pdf", bytes.NewReader(receiptPDF))
	}

	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil {
		port = p
	}

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Sending order confirmation to", to)
	return client.DialAndSend(msg)
}

// OrderConfirmationHTML builds the confirmation body from the frozen order.
func OrderConfirmationHTML(order models.Order) string {
	itemsHTML := ""
	for _, item := range order.Items {
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td>%s</td>
				<td>%d</td>
				<td>%.2f€</td>
				<td>%.2f€</td>
			</tr>`, item.Name, item.Quantity, item.UnitPrice, item.UnitPrice*float64(item.Quantity))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; color: #1f2e1f;">
	<h2>Thanks for rescuing food! 🌱</h2>
	<p>Your order <strong>%s</strong> is confirmed and ready for pickup soon.</p>
	<table border="0" cellpadding="6" style="border-collapse: collapse;">
		<tr><th align="left">Deal</th><th>Qty</th><th>Unit</th><th>Subtotal</th></tr>
		%s
	</table>
	<p><strong>Total: %.2f€</strong></p>
	<p>Show the attached receipt or the QR code in your order history at pickup.</p>
</body>
</html>`, order.OrderID, itemsHTML, order.Total)
}
