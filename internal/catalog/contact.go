package catalog

import (
	"net/url"
	"strings"
	"unicode"
)

// Handle returns the Instagram handle without the leading "@". When only a profile URL is
// configured, the last path segment of the URL is used.
func (c ContactInfo) Handle() string {
	if h := strings.TrimSpace(c.InstagramHandle); h != "" {
		return strings.TrimPrefix(h, "@")
	}
	raw := strings.TrimRight(strings.TrimSpace(c.InstagramURL), "/")
	if raw == "" {
		return ""
	}
	if i := strings.LastIndex(raw, "/"); i != -1 {
		raw = raw[i+1:]
	}
	return strings.TrimPrefix(raw, "@")
}

// HasInstagram reports whether any Instagram channel is configured.
func (c ContactInfo) HasInstagram() bool {
	return strings.TrimSpace(c.InstagramHandle) != "" || strings.TrimSpace(c.InstagramURL) != ""
}

// InstagramLink returns the profile URL, building one from the handle when necessary.
func (c ContactInfo) InstagramLink() string {
	if u := strings.TrimSpace(c.InstagramURL); u != "" {
		return u
	}
	if h := c.Handle(); h != "" {
		return "https://www.instagram.com/" + h + "/"
	}
	return ""
}

// WhatsAppLink builds a wa.me deep link with a prefilled message. It returns an empty
// string when no number is configured.
func (c ContactInfo) WhatsAppLink(brandName string) string {
	digits := DigitsOnly(c.WhatsApp)
	if digits == "" {
		return ""
	}
	msg := strings.TrimSpace(c.WhatsAppMessage)
	if msg == "" {
		msg = "Hola, me interesa el menú de " + brandName
	}
	return "https://wa.me/" + digits + "?text=" + strings.ReplaceAll(url.QueryEscape(msg), "+", "%20")
}

// DigitsOnly strips every non-digit rune, e.g. "+57 311 359" => "57311359".
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
