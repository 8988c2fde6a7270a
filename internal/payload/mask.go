package payload

import "strings"

const maskChar = "*"

// MaskCardNumber keeps the first six characters of number and stars the
// rest. Numbers of six characters or fewer are returned unchanged.
func MaskCardNumber(number string) string {
	r := []rune(number)
	if len(r) <= 6 {
		return number
	}
	return string(r[:6]) + strings.Repeat(maskChar, len(r)-6)
}

// MaskCVV replaces every character of cvv with a star.
func MaskCVV(cvv string) string {
	return strings.Repeat(maskChar, len([]rune(cvv)))
}

// MaskAPIKey keeps the first and last four characters of key. Keys shorter
// than eight characters are returned unchanged.
func MaskAPIKey(key string) string {
	r := []rune(key)
	if len(r) < 8 {
		return key
	}
	return string(r[:4]) + strings.Repeat(maskChar, len(r)-8) + string(r[len(r)-4:])
}
