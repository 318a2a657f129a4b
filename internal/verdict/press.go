package verdict

import "regexp"

// Official press releases circulate as images or text before any outlet
// indexes them, so absence of online coverage says nothing about their
// authenticity. Each pattern checks one formal-document trait; three or more
// hits mark the text as a likely press release.
var pressIndicators = []*regexp.Regexp{
	// Phone numbers, Indian landline/mobile formats
	regexp.MustCompile(`(\+91[\s-]?)?\d{5}[\s-]?\d{5}\b|\b0\d{2,4}[\s-]\d{6,8}\b`),
	// Formatted timestamps like 10.30 a.m. or 14:00 hrs
	regexp.MustCompile(`\b\d{1,2}[.:]\d{2}\s*(a\.?m\.?|p\.?m\.?|hrs|hours)\b`),
	// Currency amounts
	regexp.MustCompile(`(?:Rs\.?|INR|₹)\s*\d[\d,]*(?:\.\d+)?\s*(?:lakh|crore)?`),
	// Official designations
	regexp.MustCompile(`\b(?:IAS|IPS|IFS|Hon'ble|Honourable|Collector|Commissioner|Secretary|Tahsildar|Thasildar|District Magistrate)\b`),
	// Office and address references
	regexp.MustCompile(`(?i)\b(?:office of|o/o|district office|collectorate|secretariat|taluk office|head office)\b`),
	// DD.MM.YYYY dates
	regexp.MustCompile(`\b\d{2}\.\d{2}\.\d{4}\b`),
}

const pressIndicatorThreshold = 3

// CountPressIndicators counts how many independent formal-document traits
// appear in the claim text.
func CountPressIndicators(text string) int {
	count := 0
	for _, re := range pressIndicators {
		if re.MatchString(text) {
			count++
		}
	}
	return count
}

// LikelyPressRelease reports whether the claim text reads like an official
// press release or government notice.
func LikelyPressRelease(text string) bool {
	return CountPressIndicators(text) >= pressIndicatorThreshold
}
