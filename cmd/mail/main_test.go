package main

import (
	"bytes"
	"encoding/json"
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestione-turni/backend/internal/domain"
)

// Stesso percorso del messaggio reale: l'handler serializza in JSON, il
// worker deserializza e renderizza il template spedito nel repo.
func TestResetPasswordMailBody(t *testing.T) {
	published := domain.MailMessage{
		Type: "reset_password",
		To:   "operatore@example.com",
		Data: domain.ResetPasswordMailData{
			OTP:        "123456",
			Expiration: 15,
		},
	}

	raw, err := json.Marshal(published)
	require.NoError(t, err)

	received := domain.MailMessage{}
	require.NoError(t, json.Unmarshal(raw, &received))

	data, err := decodeResetPasswordData(received.Data)
	require.NoError(t, err)
	assert.Equal(t, "123456", data.OTP)
	assert.Equal(t, 15, data.Expiration)

	tmpl, err := template.ParseFiles("../../templates/reset_password_otp_email.html")
	require.NoError(t, err)

	var body bytes.Buffer
	require.NoError(t, tmpl.Execute(&body, data))

	assert.Contains(t, body.String(), "123456")
	assert.Contains(t, body.String(), "15 minuti")
}

func TestDecodeResetPasswordDataInvalid(t *testing.T) {
	_, err := decodeResetPasswordData(map[string]any{"otp": 42})
	assert.Error(t, err)
}
