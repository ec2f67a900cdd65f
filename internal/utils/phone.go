package utils

import "strings"

// NormalizeWhatsAppPhone converts a stored phone number into the digits-only
// form wa.me expects: "+", "-" and spaces are stripped, and a leading "0" is
// rewritten to the Indonesian country prefix "62".
func NormalizeWhatsAppPhone(phone string) string {
	replacer := strings.NewReplacer("+", "", "-", "", " ", "")
	normalized := replacer.Replace(phone)
	if strings.HasPrefix(normalized, "0") {
		normalized = "62" + normalized[1:]
	}
	return normalized
}
