package templates

// message types
const (
	EMAIL_TYPE_REGISTRATION         = "registration"
	EMAIL_TYPE_PASSWORD_RESET       = "password-reset"
	EMAIL_TYPE_PASSWORD_CHANGED     = "password-changed"
	EMAIL_TYPE_BOOKING_CONFIRMATION = "booking-confirmation"
)

type EmailTemplate struct {
	Subject     string
	TemplateDef string
}

var builtinTemplates = map[string]EmailTemplate{
	EMAIL_TYPE_REGISTRATION: {
		Subject: "Verify your email for IM-Hotel Booking",
		TemplateDef: `<h2>Welcome to the platform!</h2>
<p>Dear {{.username}},</p>
<p>Please click the link below to verify your email address:</p>
<a href="{{.verificationURL}}">Verify Email</a>
<p>This link will expire in one hour.</p>`,
	},
	EMAIL_TYPE_PASSWORD_RESET: {
		Subject: "Reset your IM-Hotel Booking password",
		TemplateDef: `<h2>Password Reset</h2>
<p>Dear {{.username}},</p>
<p>We received a request to reset your password. Click the link below to choose a new one:</p>
<a href="{{.resetURL}}">Reset Password</a>
<p>This link will expire in one hour. If you did not request a reset, you can ignore this message.</p>`,
	},
	EMAIL_TYPE_PASSWORD_CHANGED: {
		Subject: "Your IM-Hotel Booking password was changed",
		TemplateDef: `<h2>Password Changed</h2>
<p>Dear {{.username}},</p>
<p>Your password was changed just now. If this was not you, please request a password reset immediately.</p>`,
	},
	EMAIL_TYPE_BOOKING_CONFIRMATION: {
		Subject: "Hotel Booking Details",
		TemplateDef: `<h2>Your Booking Details</h2>
<p>Dear {{.username}},</p>
<p>Thank you for booking!</p>
<ul>
<li>Booking Reference: {{.reference}}</li>
<li>Hotel Name: {{.hotelName}}</li>
<li>Location: {{.hotelAddress}}</li>
<li>Check-In: {{.checkInDate}}</li>
<li>Booking Amount: {{.currency}} {{.totalPrice}}</li>
</ul>`,
	},
}

// GetTemplate returns the built-in template for the message type.
func GetTemplate(messageType string) (EmailTemplate, bool) {
	t, ok := builtinTemplates[messageType]
	return t, ok
}
