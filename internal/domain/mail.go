package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type ResetPasswordMailData struct {
	OTP        string `json:"otp"`
	Expiration int    `json:"expiration"` // minuti
}
