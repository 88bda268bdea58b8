package parsing

import (
	"regexp"

	"github.com/analistabackend-glitch/Herramienta-HV/internal/types"
)

var (
	// EmailRe matches an email address
	EmailRe        = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	mobilePhoneRe  = regexp.MustCompile(`\b3\d{2}[-\s]?\d{3}[-\s]?\d{2}[-\s]?\d{2}\b`)
	phoneSeparator = regexp.MustCompile(`[-\s]`)
)

// ParseContact finds the first email and the first Colombian mobile number
// anywhere in the text. The phone is returned as digits only.
func ParseContact(fullText string) types.Contact {
	var c types.Contact
	c.Email = EmailRe.FindString(fullText)
	if phone := mobilePhoneRe.FindString(fullText); phone != "" {
		c.Phone = phoneSeparator.ReplaceAllString(phone, "")
	}
	return c
}
