package places

import "strings"

// FeeSortKey extracts a numeric comparison key from a free-form entry-fee
// string. "Free" (any case) is 0; otherwise the first run of digits is the
// fee, ignoring currency symbols and punctuation. A string with no digits at
// all also keys as 0, so "Contact for details" sorts together with "Free".
// That matches the app's historical ordering; see the fee tests.
func FeeSortKey(feeText string) int {
	if strings.EqualFold(strings.TrimSpace(feeText), "free") {
		return 0
	}

	value := 0
	inRun := false
	for _, r := range feeText {
		if r >= '0' && r <= '9' {
			inRun = true
			value = value*10 + int(r-'0')
			continue
		}
		if inRun {
			break
		}
	}
	return value
}
