package contact

import (
	"strings"
	"unicode"

	"agilefinance/internal/common"
)

// Normalize returns the canonical stored form of a contact value. Phone and
// whatsapp keep digits only, email is trimmed and lowercased, anything else
// is only trimmed.
func Normalize(ct common.ContactType, raw string) string {
	switch ct {
	case common.ContactTypePhone, common.ContactTypeWhatsApp:
		return digitsOnly(raw)
	case common.ContactTypeEmail:
		return strings.ToLower(strings.TrimSpace(raw))
	default:
		return strings.TrimSpace(raw)
	}
}

func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// checkFormat validates an already normalized value for its type.
func checkFormat(ct common.ContactType, value string) error {
	switch ct {
	case common.ContactTypePhone, common.ContactTypeWhatsApp:
		if len(value) < 10 || len(value) > 15 {
			return common.NewValidationError("contact", "phone number must have between 10 and 15 digits")
		}
	case common.ContactTypeEmail:
		if err := common.ValidateEmail(value); err != nil {
			return common.NewValidationError("contact", "must be a valid email")
		}
	default:
		if strings.IndexFunc(value, unicode.IsSpace) >= 0 {
			return common.NewValidationError("contact", "must not contain spaces")
		}
	}
	if value == "" {
		return common.NewValidationError("contact", "is required")
	}
	return nil
}
