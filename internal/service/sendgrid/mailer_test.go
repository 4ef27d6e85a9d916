package sendgrid

import (
    "context"
    "errors"
    "strings"
    "testing"
    "time"

    "github.com/luiskerner/finance-newsletter/internal/domain/models"
)

func TestSendWithoutCredentialFailsBeforeNetwork(t *testing.T) {
    m := New("", "sender@example.com", "Subject", 30*time.Second)

    _, err := m.Send(context.Background(), "reader@example.com", &models.Newsletter{Body: "content"})

    var cfgErr *models.ConfigError
    if !errors.As(err, &cfgErr) {
        t.Fatalf("expected ConfigError, got %v", err)
    }
}

func TestHTMLBodyConvertsNewlines(t *testing.T) {
    doc := &models.Newsletter{Body: "line one\nline two"}

    html := htmlBody(doc)

    if !strings.Contains(html, "line one<br>line two") {
        t.Fatalf("newlines not converted: %q", html)
    }
    if strings.Contains(html, "<img") {
        t.Fatalf("unexpected image tag without chart: %q", html)
    }
    if !strings.HasPrefix(html, "<html><body>") || !strings.HasSuffix(html, "</body></html>") {
        t.Fatalf("missing document wrapper: %q", html)
    }
}

func TestHTMLBodyEmbedsChart(t *testing.T) {
    doc := &models.Newsletter{
        Body:  "content",
        Chart: &models.ChartImage{PNG: []byte{1, 2, 3}},
    }

    html := htmlBody(doc)

    if !strings.Contains(html, `<img src="data:image/png;base64,`) {
        t.Fatalf("chart not embedded: %q", html)
    }
    if !strings.Contains(html, `width="600"`) {
        t.Fatalf("missing fixed width: %q", html)
    }
}

func TestBuildMessageAddressesRecipient(t *testing.T) {
    m := New("key", "sender@example.com", "Your Personalised Financial Newsletter", 0)

    msg := m.buildMessage("reader@example.com", &models.Newsletter{Body: "content"})

    if msg.From.Address != "sender@example.com" {
        t.Fatalf("wrong sender: %q", msg.From.Address)
    }
    if got := msg.Personalizations[0].To[0].Address; got != "reader@example.com" {
        t.Fatalf("wrong recipient: %q", got)
    }
    if msg.Subject != "Your Personalised Financial Newsletter" {
        t.Fatalf("wrong subject: %q", msg.Subject)
    }
}
