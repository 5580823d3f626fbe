// Package week resolves ISO-8601 week identifiers ("2025-W02") into concrete
// UTC date intervals. All functions are pure; everything is pinned to UTC to
// avoid off-by-one-day boundary bugs.
package week

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"pr-cycle-metrics/internal/entities"
)

var identifierPattern = regexp.MustCompile(`^\d{4}-W\d{2}$`)

// IsValid reports whether s is a well-formed ISO week identifier with a week
// number valid for its week-numbering year. It never returns an error; callers
// branch on the result before resolving boundaries.
func IsValid(s string) bool {
	if !identifierPattern.MatchString(s) {
		return false
	}
	year, _ := strconv.Atoi(s[:4])
	num, _ := strconv.Atoi(s[6:])
	return num >= 1 && num <= weeksInYear(year)
}

// Current returns the identifier of the ISO week containing now, in UTC.
func Current() string {
	year, num := time.Now().UTC().ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, num)
}

// Boundaries returns the half-open UTC interval [Monday 00:00, next Monday 00:00)
// for a valid identifier. The caller must have checked IsValid first.
func Boundaries(s string) entities.DateInterval {
	year, _ := strconv.Atoi(s[:4])
	num, _ := strconv.Atoi(s[6:])

	start := firstMonday(year).AddDate(0, 0, (num-1)*7)
	return entities.DateInterval{
		Start: start,
		End:   start.AddDate(0, 0, 7),
	}
}

// firstMonday returns the Monday of ISO week 1, which is the Monday of the
// calendar week containing January 4.
func firstMonday(year int) time.Time {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	wd := int(jan4.Weekday())
	if wd == 0 {
		wd = 7
	}
	return jan4.AddDate(0, 0, 1-wd)
}

// weeksInYear returns 53 for long ISO years, 52 otherwise. A year is long iff
// January 1 falls on a Thursday, or it is a leap year and January 1 falls on
// a Wednesday.
func weeksInYear(year int) int {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	switch jan1.Weekday() {
	case time.Thursday:
		return 53
	case time.Wednesday:
		if isLeap(year) {
			return 53
		}
	}
	return 52
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
