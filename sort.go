package lehar

import (
	"regexp"
	"sort"
	"strconv"
)

// issueDate matches the first YYYY-MM-DD shaped substring anywhere in a
// file reference. Anything date-shaped counts; there is no anchoring to a
// path segment.
var issueDate = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)

type dateKey struct {
	year, month, day int
}

// dateKeyOf derives an issue's sort key from its pdf reference.
// No date-shaped substring yields (0, 1, 1), which sorts dateless issues
// after every dated one under the descending order.
func dateKeyOf(pdf string) dateKey {
	m := issueDate.FindStringSubmatch(pdf)
	if m == nil {
		return dateKey{0, 1, 1}
	}
	return dateKey{
		year:  atoiOr(m[1], 0),
		month: atoiOr(m[2], 1),
		day:   atoiOr(m[3], 1),
	}
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

func (k dateKey) less(o dateKey) bool {
	if k.year != o.year {
		return k.year < o.year
	}
	if k.month != o.month {
		return k.month < o.month
	}
	return k.day < o.day
}

// SortIssues returns a new slice ordered newest first by the date embedded
// in each issue's pdf reference. The sort is stable: issues with equal
// keys (including all dateless ones) keep their input order. The input
// slice is not modified.
func SortIssues(issues []Issue) []Issue {
	sorted := make([]Issue, len(issues))
	copy(sorted, issues)
	sort.SliceStable(sorted, func(i, j int) bool {
		return dateKeyOf(sorted[j].PDF).less(dateKeyOf(sorted[i].PDF))
	})
	return sorted
}
