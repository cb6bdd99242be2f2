package mail

import "fmt"

// NewOTPMessage builds the verification email carrying a one-time passcode.
// Both bodies state the 5 minute validity window so the recipient knows how
// long the code lives.
func NewOTPMessage(toEmail, toName, code string) Message {
	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Your HD Notes verification code</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2>Verify your email</h2>
        <p>Hello %s,</p>
        <p>Use this code to sign in to HD Notes:</p>
        <p style="font-size: 32px; letter-spacing: 8px; font-weight: bold; margin: 30px 0;">%s</p>
        <p>The code is valid for 5 minutes.</p>
        <p>If you didn't request this code, you can safely ignore this email.</p>
        <hr style="border: none; border-top: 1px solid #ddd; margin: 30px 0;">
        <p style="font-size: 12px; color: #666;">This is an automated message, please do not reply.</p>
    </div>
</body>
</html>`, toName, code)

	textBody := fmt.Sprintf(`Verify your email

Hello %s,

Use this code to sign in to HD Notes:

%s

The code is valid for 5 minutes.

If you didn't request this code, you can safely ignore this email.

---
This is an automated message, please do not reply.`, toName, code)

	return Message{
		ToEmail: toEmail,
		ToName:  toName,
		Subject: "Your HD Notes verification code",
		HTML:    htmlBody,
		Text:    textBody,
	}
}
