package validators

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	digitsRe = regexp.MustCompile(`\D`)
	emailRe  = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// NormalizePhone reduz o telefone aos dígitos ("(11) 98888-7777" -> "11988887777").
func NormalizePhone(phone string) string {
	return digitsRe.ReplaceAllString(phone, "")
}

// IsValidPhone exige ao menos DDD + número (10 dígitos).
func IsValidPhone(phone string) bool {
	return len(NormalizePhone(phone)) >= 10
}

func IsValidName(name string) bool {
	return len(strings.TrimSpace(name)) >= 2
}

func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// PlaceholderEmail sintetiza um e-mail determinístico a partir do telefone,
// para satisfazer a coluna NOT NULL quando o cliente não informa e-mail.
func PlaceholderEmail(phone string) string {
	return fmt.Sprintf("%s@cliente.local", NormalizePhone(phone))
}
