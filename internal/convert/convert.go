package convert

import "strconv"

// ToNumber extracts the integer value from displayed text such as "Rs. 500"
// by dropping every non-digit rune. Returns 0 when the text carries no digits.
func ToNumber(text string) int {
	digits := make([]rune, 0, len(text))
	for _, r := range text {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) == 0 {
		return 0
	}
	n, err := strconv.Atoi(string(digits))
	if err != nil {
		return 0
	}
	return n
}
