package usecase

import "strings"

// MaskCardNumber replaces all but the last four digits with '*'.
// Input is expected digits-only; shorter values are masked whole.
func MaskCardNumber(number string) string {
	if len(number) <= 4 {
		return strings.Repeat("*", len(number))
	}
	return strings.Repeat("*", len(number)-4) + number[len(number)-4:]
}

// DetectCardBrand guesses the brand from the numeric prefix:
// 4 -> Visa, 51-55 -> MasterCard, 34/37 -> American Express.
// Anything else is "Unknown" by contract.
func DetectCardBrand(number string) string {
	switch {
	case strings.HasPrefix(number, "4"):
		return "Visa"
	case len(number) >= 2 && number[0] == '5' && number[1] >= '1' && number[1] <= '5':
		return "MasterCard"
	case strings.HasPrefix(number, "34"), strings.HasPrefix(number, "37"):
		return "American Express"
	default:
		return "Unknown"
	}
}
