package types

// TokenPurpose selects which token field pair on the account an operation
// works on. Tokens of different purposes are stored separately and can never
// redeem each other.
type TokenPurpose string

const (
	TOKEN_PURPOSE_EMAIL_VERIFICATION TokenPurpose = "emailVerification"
	TOKEN_PURPOSE_PASSWORD_RESET     TokenPurpose = "passwordReset"
)

func (p TokenPurpose) IsValid() bool {
	return p == TOKEN_PURPOSE_EMAIL_VERIFICATION || p == TOKEN_PURPOSE_PASSWORD_RESET
}

// TokenFields returns the bson paths of the token value and expiry fields for
// the purpose inside the user document.
func (p TokenPurpose) TokenFields() (tokenField string, expiresField string) {
	switch p {
	case TOKEN_PURPOSE_PASSWORD_RESET:
		return "account.resetToken", "account.resetTokenExpires"
	default:
		return "account.emailVerificationToken", "account.emailVerificationExpires"
	}
}
