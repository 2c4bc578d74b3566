package invoice

import (
	"regexp"
	"strings"
)

// Uncategorized is the category assigned to items without a bracketed prefix.
const Uncategorized = "未分类"

// categoryItemRe matches the "*category*item" shape used by detail lines,
// e.g. "*蔬菜*芥兰苗".
var categoryItemRe = regexp.MustCompile(`^\*([^*]+)\*(.+)`)

// SplitCategoryItem splits a "*category*item" name into its two parts, both
// trimmed. Names without the bracketed prefix come back unchanged under the
// Uncategorized sentinel.
func SplitCategoryItem(name string) (category, item string) {
	name = strings.TrimSpace(name)
	m := categoryItemRe.FindStringSubmatch(name)
	if m == nil {
		return Uncategorized, name
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
}
