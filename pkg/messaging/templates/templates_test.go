package templates

import (
	"strings"
	"testing"
)

func TestResolveTemplate(t *testing.T) {
	t.Run("with placeholders", func(t *testing.T) {
		content, err := ResolveTemplate("test", "<p>Hello {{.name}}</p>", map[string]string{"name": "Alice"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if content != "<p>Hello Alice</p>" {
			t.Errorf("unexpected content: %s", content)
		}
	})

	t.Run("with empty template", func(t *testing.T) {
		if _, err := ResolveTemplate("test", "  ", nil); err == nil {
			t.Error("should return an error")
		}
	})

	t.Run("with broken template", func(t *testing.T) {
		if _, err := ResolveTemplate("test", "{{.name", nil); err == nil {
			t.Error("should return an error")
		}
	})
}

func TestBuiltinTemplatesResolvable(t *testing.T) {
	for _, messageType := range []string{
		EMAIL_TYPE_REGISTRATION,
		EMAIL_TYPE_PASSWORD_RESET,
		EMAIL_TYPE_PASSWORD_CHANGED,
		EMAIL_TYPE_BOOKING_CONFIRMATION,
	} {
		tmpl, ok := GetTemplate(messageType)
		if !ok {
			t.Fatalf("missing template for %s", messageType)
		}
		if tmpl.Subject == "" {
			t.Errorf("template %s has no subject", messageType)
		}
		if _, err := ResolveTemplate(messageType, tmpl.TemplateDef, map[string]string{}); err != nil {
			t.Errorf("template %s not resolvable: %v", messageType, err)
		}
	}
}

func TestVerificationTemplateContainsLink(t *testing.T) {
	tmpl, _ := GetTemplate(EMAIL_TYPE_REGISTRATION)
	content, err := ResolveTemplate(EMAIL_TYPE_REGISTRATION, tmpl.TemplateDef, map[string]string{
		"username":        "Alice",
		"verificationURL": "https://example.com/verify-email?token=abc",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(content, "https://example.com/verify-email?token=abc") {
		t.Errorf("verification link missing from content: %s", content)
	}
}
