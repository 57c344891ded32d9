package controllers

import (
	"regexp"
	"strconv"
)

// MaxSlugLength bounds post slugs everywhere they appear in a path or
// body.
const MaxSlugLength = 100

// MsgInvalidSlug names the allowed character set, as the rejection
// message must.
const MsgInvalidSlug = "slug may contain only lowercase letters, digits, and hyphens, up to 100 characters"

// MsgInvalidYearMonth describes the archive path parameter format.
const MsgInvalidYearMonth = "archive month must be a six-digit YYYYMM value"

var (
	slugPattern      = regexp.MustCompile(`^[a-z0-9-]+$`)
	yearMonthPattern = regexp.MustCompile(`^\d+$`)
)

// IsValidSlug reports whether s is a well-formed post slug: non-empty,
// at most MaxSlugLength characters, lowercase alphanumerics and hyphens
// only.
func IsValidSlug(s string) bool {
	return len(s) <= MaxSlugLength && slugPattern.MatchString(s)
}

// ParseYearMonth decomposes a six-digit YYYYMM path parameter. The
// month half is not range-checked; out-of-range months are valid input
// that match no posts.
func ParseYearMonth(s string) (year, month int, ok bool) {
	if len(s) != 6 || !yearMonthPattern.MatchString(s) {
		return 0, 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, 0, false
	}
	return v / 100, v % 100, true
}
