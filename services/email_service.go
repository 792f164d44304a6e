package services

import (
	"fmt"
	"petshop_server/structs"
	"petshop_server/structs/tables"
	"strings"
	"sync"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/resend/resend-go/v3"
)

var (
	client     *resend.Client
	clientOnce = sync.Once{}
)

type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *resend.Client
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config) *EmailService {
	return &EmailService{
		logger: logger,
		cfg:    cfg,
		client: getEmailClient(cfg.Email.ApiKey),
	}
}

func getEmailClient(apiKey string) *resend.Client {
	clientOnce.Do(func() {
		client = resend.NewClient(apiKey)
	})
	return client
}

func (es *EmailService) SendEmail(to []string, subject string, body string) error {
	if !es.cfg.Email.Enabled {
		es.logger.Debug("Email disabled, skipping send", gecho.Field("to", to), gecho.Field("subject", subject))
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    es.cfg.Email.From,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	_, err := es.client.Emails.Send(params)
	if err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}

	return nil
}

// SendOrderConfirmationEmail mails the customer a line-by-line receipt.
// Prices shown are the snapshots taken at checkout.
func (es *EmailService) SendOrderConfirmationEmail(
	customer *tables.Customer,
	order *tables.Order,
	lines []*tables.OrderLine,
	products map[uuid.UUID]*tables.Product,
) error {
	if customer == nil || customer.User == nil {
		// Nothing to address the mail to; the clerk flow loads customers
		// without their account relation
		return nil
	}

	var rows strings.Builder
	var total int64
	for _, line := range lines {
		description := line.ProductId.String()
		if product, ok := products[line.ProductId]; ok {
			description = product.Description
		}
		lineTotal := int64(line.Quantity) * line.UnitPriceCents
		total += lineTotal
		rows.WriteString(fmt.Sprintf(
			`<tr><td>%s</td><td>%d</td><td>%s</td><td>%s</td></tr>`,
			description, line.Quantity, formatCents(line.UnitPriceCents), formatCents(lineTotal)))
	}

	discounted := total * int64(100-order.DiscountPct) / 100

	discountRow := ""
	if order.DiscountPct > 0 {
		discountRow = fmt.Sprintf(`<p>Loyalty discount applied: %d%%</p>`, order.DiscountPct)
	}

	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<style>
				body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
				.container { max-width: 600px; margin: 0 auto; padding: 20px; }
				table { width: 100%%; border-collapse: collapse; }
				th, td { text-align: left; padding: 8px; border-bottom: 1px solid #ddd; }
			</style>
		</head>
		<body>
			<div class="container">
				<h1>Thank you for your order, %s!</h1>
				<p>Order reference: %s</p>
				<table>
					<tr><th>Product</th><th>Qty</th><th>Unit price</th><th>Total</th></tr>
					%s
				</table>
				%s
				<p><strong>Total: %s</strong></p>
			</div>
		</body>
		</html>`,
		customer.FirstName, order.Id.String(), rows.String(), discountRow, formatCents(discounted))

	subject := "Your order confirmation"
	return es.SendEmail([]string{customer.User.Email}, subject, body)
}

func formatCents(cents int64) string {
	return fmt.Sprintf("€%d.%02d", cents/100, cents%100)
}
