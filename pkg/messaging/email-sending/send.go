package emailsending

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/im-hotel/booking-backend/pkg/messaging/templates"
	smtpclient "github.com/im-hotel/booking-backend/pkg/smtp-client"
)

var (
	smtpClients *smtpclient.SmtpClients

	// GlobalTemplateInfos is merged into the payload of every email, for
	// values like the website base url or the currency symbol.
	GlobalTemplateInfos = map[string]string{}
)

func InitMessageSendingVariables(
	clients *smtpclient.SmtpClients,
	globalTemplateInfos map[string]string,
) {
	smtpClients = clients
	if globalTemplateInfos != nil {
		GlobalTemplateInfos = globalTemplateInfos
	}
}

// SendInstantEmailByTemplate resolves the built-in template for the message
// type and hands the result to the smtp pool.
func SendInstantEmailByTemplate(
	to []string,
	messageType string,
	payload map[string]string,
) error {
	if smtpClients == nil {
		return errors.New("smtp clients not initialized")
	}

	tmpl, ok := templates.GetTemplate(messageType)
	if !ok {
		return fmt.Errorf("no template for message type %s", messageType)
	}

	if payload == nil {
		payload = map[string]string{}
	}
	for k, v := range GlobalTemplateInfos {
		if _, set := payload[k]; !set {
			payload[k] = v
		}
	}

	content, err := templates.ResolveTemplate(messageType, tmpl.TemplateDef, payload)
	if err != nil {
		return err
	}

	return smtpClients.SendMail(to, tmpl.Subject, content)
}

// TokenLinkURL builds the frontend link that carries a verification or reset
// token.
func TokenLinkURL(baseURL string, path string, token string) string {
	return fmt.Sprintf("%s%s?token=%s", baseURL, path, url.QueryEscape(token))
}
