package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"

	"thorned-magnolia/config"
	"thorned-magnolia/models"
)

const (
	orderTypeCustom  = "custom_order"
	orderTypeRegular = "regular_order"
)

// OrderEmailData flattens a custom or catalog order into the fields the
// two notification templates substitute.
type OrderEmailData struct {
	OrderType           string
	OrderID             string
	CustomerName        string
	CustomerEmail       string
	CustomerPhone       string
	OrderDate           time.Time
	TotalAmount         float64
	ShirtStyle          string
	ShirtColor          string
	Size                string
	PrintLocation       string
	Quantity            int
	DesignText          string
	SelectedFont        string
	DesignImage         string
	SpecialInstructions string
	Items               []models.OrderItem
}

func EmailDataFromCustomOrder(o *models.CustomOrder) OrderEmailData {
	return OrderEmailData{
		OrderType:           orderTypeCustom,
		OrderID:             o.OrderID,
		CustomerName:        o.CustomerName,
		CustomerEmail:       o.Email,
		CustomerPhone:       o.Phone,
		OrderDate:           o.CreatedAt,
		TotalAmount:         o.TotalPrice,
		ShirtStyle:          o.ShirtStyle,
		ShirtColor:          o.ShirtColor,
		Size:                o.Size,
		PrintLocation:       printLocationLabel(o.PrintLocation),
		Quantity:            o.Quantity,
		DesignText:          o.DesignText,
		SelectedFont:        o.SelectedFont,
		DesignImage:         o.DesignImage,
		SpecialInstructions: o.SpecialInstructions,
	}
}

func EmailDataFromOrder(o *models.Order) OrderEmailData {
	return OrderEmailData{
		OrderType:     orderTypeRegular,
		OrderID:       o.OrderID,
		CustomerName:  "Valued Customer",
		CustomerEmail: o.CustomerEmail,
		OrderDate:     o.CreatedAt,
		TotalAmount:   o.TotalAmount,
		Items:         o.Items,
	}
}

func printLocationLabel(loc string) string {
	if loc == "both" {
		return "Front & Back"
	}
	return loc
}

type EmailService struct {
	dialer        *gomail.Dialer
	from          string
	businessEmail string
}

// NewEmailService builds the SMTP dialer from configuration. Missing
// credentials leave the dialer nil; sends then report failure without
// touching the network.
func NewEmailService() *EmailService {
	cfg := config.AppConfig

	s := &EmailService{
		from:          cfg.SMTPFrom,
		businessEmail: cfg.BusinessEmail,
	}

	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		log.Warn().Msg("SMTP configuration missing, order emails will not be sent")
		return s
	}

	s.dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	return s
}

// SendOrderEmails sends the customer confirmation and the business alert
// for a newly created order. The two sends are independent; the returned
// booleans report which succeeded. Failures are logged, never propagated.
func (s *EmailService) SendOrderEmails(data OrderEmailData) (customerSent, businessSent bool) {
	subject := fmt.Sprintf("Order Confirmation - %s", data.OrderID)
	if err := s.send(data.CustomerEmail, subject, renderCustomerEmail(data), "Thorned Magnolia Collective"); err != nil {
		log.Error().Err(err).Str("order_id", data.OrderID).Msg("Failed to send customer confirmation")
	} else {
		customerSent = true
	}

	subject = fmt.Sprintf("New Order: %s - $%.2f", data.OrderID, data.TotalAmount)
	if err := s.send(s.businessEmail, subject, renderBusinessEmail(data), "Order System"); err != nil {
		log.Error().Err(err).Str("order_id", data.OrderID).Msg("Failed to send business notification")
	} else {
		businessSent = true
	}

	return customerSent, businessSent
}

func (s *EmailService) send(to, subject, htmlBody, fromName string) error {
	if s.dialer == nil {
		return fmt.Errorf("SMTP dialer not configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.from, fromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Info().Str("to", to).Str("subject", subject).Msg("Email sent")
	return nil
}

func renderCustomerEmail(data OrderEmailData) string {
	var details string
	if data.OrderType == orderTypeCustom {
		details = fmt.Sprintf(`
            <p><strong>Type:</strong> Custom Order</p>
            <p><strong>Style:</strong> %s in %s</p>
            <p><strong>Size:</strong> %s</p>
            <p><strong>Print Location:</strong> %s</p>
            <p><strong>Quantity:</strong> %d</p>%s`,
			data.ShirtStyle, data.ShirtColor, data.Size, data.PrintLocation, data.Quantity,
			optionalRow("Special Instructions", data.SpecialInstructions))
	} else {
		details = fmt.Sprintf(`
            <p><strong>Type:</strong> Regular Order</p>
            <p><strong>Items:</strong> %d item(s)</p>`, len(data.Items))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: 'Arial', sans-serif; line-height: 1.6; color: #2C2C2C; }
        .header { background: #C4B5A0; color: #FAF9F7; padding: 20px; text-align: center; }
        .content { padding: 20px; }
        .order-details { background: #F5F3F0; padding: 15px; border-radius: 8px; margin: 20px 0; }
        .total { font-size: 18px; font-weight: bold; color: #6B4E37; }
        .footer { background: #2C2C2C; color: #FAF9F7; padding: 20px; text-align: center; }
    </style>
</head>
<body>
    <div class="header">
        <h1>Thank You for Your Order!</h1>
        <p>Thorned Magnolia Collective</p>
    </div>

    <div class="content">
        <p>Dear %s,</p>

        <p>Thank you for your order! We're excited to create something beautiful for you.</p>

        <div class="order-details">
            <h3>Order Details</h3>
            <p><strong>Order #:</strong> %s</p>
            <p><strong>Date:</strong> %s</p>%s

            <p class="total"><strong>Total: $%.2f</strong></p>
        </div>

        <p><strong>What happens next?</strong></p>
        <ul>
            <li>We'll start working on your order within 1-2 business days</li>
            <li>Production time: 3-5 business days</li>
            <li>Shipping: 2-3 business days</li>
            <li>You'll receive tracking information once shipped</li>
        </ul>

        <p>If you have any questions, reply to this email or call us!</p>

        <p>With love from Mississippi,<br>
        <strong>The Thorned Magnolia Collective Team</strong></p>
    </div>

    <div class="footer">
        <p>Thorned Magnolia Collective | Located in Mississippi | Made with Love</p>
    </div>
</body>
</html>`,
		data.CustomerName, data.OrderID, data.OrderDate.Format("January 2, 2006"), details, data.TotalAmount)
}

func renderBusinessEmail(data OrderEmailData) string {
	var details string
	if data.OrderType == orderTypeCustom {
		designImage := ""
		if data.DesignImage != "" {
			designImage = "\n            <p><strong>Design Image:</strong> Uploaded (check server files)</p>"
		}
		details = fmt.Sprintf(`
            <h4>Custom Order Details:</h4>
            <p><strong>Style:</strong> %s in %s</p>
            <p><strong>Size:</strong> %s</p>
            <p><strong>Print:</strong> %s</p>
            <p><strong>Quantity:</strong> %d</p>%s%s%s%s`,
			data.ShirtStyle, data.ShirtColor, data.Size, data.PrintLocation, data.Quantity,
			optionalRow("Text Design", data.DesignText),
			optionalRow("Font", data.SelectedFont),
			designImage,
			optionalRow("Special Instructions", data.SpecialInstructions))
	} else {
		var lines strings.Builder
		for _, item := range data.Items {
			fmt.Fprintf(&lines, "\n                <li>%s - %s/%s (%s) x%d = $%.2f</li>",
				item.ProductName, item.SelectedColor, item.SelectedSize,
				item.PrintLocation, item.Quantity, item.TotalPrice)
		}
		details = fmt.Sprintf(`
            <h4>Regular Order Items:</h4>
            <ul>%s
            </ul>`, lines.String())
	}

	phone := optionalRow("Phone", data.CustomerPhone)

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .header { background: #C4B5A0; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; }
        .order-details { background: #f9f9f9; padding: 15px; border-radius: 5px; margin: 15px 0; }
        .urgent { color: #6B4E37; font-weight: bold; }
    </style>
</head>
<body>
    <div class="header">
        <h1>New Order Received!</h1>
    </div>

    <div class="content">
        <p class="urgent">You have a new order that needs attention!</p>

        <div class="order-details">
            <h3>Order Information</h3>
            <p><strong>Order #:</strong> %s</p>
            <p><strong>Customer:</strong> %s (%s)</p>%s
            <p><strong>Order Date:</strong> %s</p>
            <p><strong>Payment Status:</strong> PAID ($%.2f)</p>
%s
        </div>

        <p><strong>Next Steps:</strong></p>
        <ol>
            <li>Confirm order details</li>
            <li>Start production</li>
            <li>Update customer on progress</li>
        </ol>
    </div>
</body>
</html>`,
		data.OrderID, data.CustomerName, data.CustomerEmail, phone,
		data.OrderDate.Format("January 2, 2006"), data.TotalAmount, details)
}

func optionalRow(label, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf("\n            <p><strong>%s:</strong> %s</p>", label, value)
}
