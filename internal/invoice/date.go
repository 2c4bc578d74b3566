package invoice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var localizedDateRe = regexp.MustCompile(`^(\d{4})年(\d{1,2})月(\d{1,2})日`)

// ShortDate converts a localized issue date like "2024年1月5日" into
// "2024-01-05". Anything that does not match the localized pattern is
// returned unchanged, so the result is always usable as a grouping key.
func ShortDate(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	m := localizedDateRe.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	return fmt.Sprintf("%s-%02d-%02d", m[1], month, day)
}
