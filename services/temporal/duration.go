package temporal

import (
	"regexp"
	"strconv"
)

var (
	spelledHourRe = regexp.MustCompile(`\b(a|an|one)\s+hour\b`)

	hourPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\s*-?\s*h\b`),
		regexp.MustCompile(`(\d+)\s*-?\s*hr`),
		regexp.MustCompile(`(\d+)\s*-?\s*hours?`),
	}

	minutePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\s*-?\s*m\b`),
		regexp.MustCompile(`(\d+)\s*-?\s*min(ute)?s?`),
	}
)

// ExtractDuration scans the text for a duration and returns it in minutes,
// or 0 when none is present. Text is expected lowercased.
func ExtractDuration(text string) int {
	if spelledHourRe.MatchString(text) {
		return 60
	}

	for _, re := range hourPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			n, _ := strconv.Atoi(m[1])
			return n * 60
		}
	}

	for _, re := range minutePatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			n, _ := strconv.Atoi(m[1])
			return n
		}
	}

	return 0
}
