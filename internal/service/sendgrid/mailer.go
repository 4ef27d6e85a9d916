package sendgrid

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/luiskerner/finance-newsletter/internal/domain/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer implements repository.Mailer on the SendGrid v3 API. The sender
// address and subject are fixed at construction.
type Mailer struct {
	apiKey  string
	from    string
	subject string
	timeout time.Duration
}

// New creates a new delivery adapter. An empty apiKey is legal here; it
// surfaces as a ConfigError at send time, not at construction.
func New(apiKey, from, subject string, timeout time.Duration) *Mailer {
	return &Mailer{
		apiKey:  apiKey,
		from:    from,
		subject: subject,
		timeout: timeout,
	}
}

// Send converts the document to HTML and submits it. The credential check
// happens before any network call.
func (m *Mailer) Send(ctx context.Context, recipient string, doc *models.Newsletter) (*models.DeliveryReceipt, error) {
	if m.apiKey == "" {
		return nil, &models.ConfigError{Msg: "SENDGRID_API_KEY not set"}
	}
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	msg := m.buildMessage(recipient, doc)
	resp, err := sendgrid.NewSendClient(m.apiKey).SendWithContext(ctx, msg)
	if err != nil {
		return nil, &models.DeliveryError{Err: err}
	}
	if resp.StatusCode >= 300 {
		return nil, &models.DeliveryError{
			StatusCode: resp.StatusCode,
			Err:        errors.New(resp.Body),
		}
	}

	return &models.DeliveryReceipt{
		StatusCode: resp.StatusCode,
		Body:       resp.Body,
		Headers:    resp.Headers,
	}, nil
}

func (m *Mailer) buildMessage(recipient string, doc *models.Newsletter) *mail.SGMailV3 {
	return mail.NewSingleEmail(
		mail.NewEmail("", m.from),
		m.subject,
		mail.NewEmail("", recipient),
		doc.Body,
		htmlBody(doc),
	)
}

// htmlBody renders the document text as HTML (newline to line break) and
// embeds the chart inline when present.
func htmlBody(doc *models.Newsletter) string {
	body := strings.ReplaceAll(doc.Body, "\n", "<br>")
	imgTag := ""
	if b64 := doc.Chart.Base64(); b64 != "" {
		imgTag = fmt.Sprintf(`<img src="data:image/png;base64,%s" width="600">`, b64)
	}
	return fmt.Sprintf("<html><body>%s%s</body></html>", body, imgTag)
}
