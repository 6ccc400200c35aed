package mailer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMIMEMessage(t *testing.T) {
	base := Email{
		FromName: "Bebé Boutique",
		From:     "no-reply@bebeboutique.mx",
		To:       []string{"ana@example.com"},
		Subject:  "Tu pedido está confirmado",
		TextBody: "Gracias por tu compra.",
	}

	t.Run("text only", func(t *testing.T) {
		msg, err := buildMIMEMessage(base, "bebeboutique.mx")
		require.NoError(t, err)

		assert.Contains(t, msg, "To: ana@example.com\r\n")
		assert.Contains(t, msg, "MIME-Version: 1.0\r\n")
		assert.Contains(t, msg, "Content-Type: text/plain; charset=UTF-8\r\n")
		assert.Contains(t, msg, "Gracias por tu compra.")
		// non-ascii headers are RFC2047 encoded
		assert.Contains(t, msg, "=?utf-8?q?")
		assert.NotContains(t, msg, "Subject: Tu pedido está confirmado")
	})

	t.Run("text plus html is multipart alternative", func(t *testing.T) {
		e := base
		e.HTMLBody = "<p>Gracias por tu compra.</p>"
		msg, err := buildMIMEMessage(e, "bebeboutique.mx")
		require.NoError(t, err)

		assert.Contains(t, msg, "Content-Type: multipart/alternative;")
		assert.Contains(t, msg, "Content-Type: text/plain; charset=UTF-8")
		assert.Contains(t, msg, "Content-Type: text/html; charset=UTF-8")
		assert.True(t, strings.HasSuffix(msg, "--\r\n"))
	})

	t.Run("required fields", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*Email)
		}{
			{name: "no recipients", mutate: func(e *Email) { e.To = nil }},
			{name: "no from", mutate: func(e *Email) { e.From = "" }},
			{name: "no subject", mutate: func(e *Email) { e.Subject = "" }},
			{name: "no body", mutate: func(e *Email) { e.TextBody = "" }},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				e := base
				tt.mutate(&e)
				_, err := buildMIMEMessage(e, "bebeboutique.mx")
				assert.Error(t, err)
			})
		}
	})
}

func TestAllRecipients(t *testing.T) {
	e := Email{
		To:  []string{"a@example.com"},
		Cc:  []string{"b@example.com"},
		Bcc: []string{"c@example.com"},
	}
	assert.Equal(t, []string{"a@example.com", "b@example.com", "c@example.com"}, e.AllRecipients())
}
