// Package examdate handles target exam dates. Two formats occur in stored
// documents: strict DD-MM-YYYY, and an older free-text "<Month> <Year>" form.
// Both are parsed by one parser with a tagged result; callers choose their
// own tolerance. Input validation accepts only the strict form, while the
// countdown display never rejects a stored value.
package examdate

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Kind tags a parse result.
type Kind int

const (
	Invalid Kind = iota
	// Exact is a strict DD-MM-YYYY date.
	Exact
	// LegacyApprox is the old "<Month> <Year>" form mapped to a fixed day:
	// "June" means June 1 of that year, any other month name means
	// December 1. Kept as-is for documents written before the date field
	// became structured.
	LegacyApprox
)

// ParsedDate is the tagged outcome of parsing a target exam date.
type ParsedDate struct {
	Kind Kind
	Time time.Time
}

// Countdown is the months/days-remaining display value. Months are a flat 30
// days; the display has always been calendar-naive and stays that way.
type Countdown struct {
	Months int `json:"months"`
	Days   int `json:"days"`
}

var (
	ErrEmptyDate       = errors.New("exam date cannot be empty")
	ErrBadFormat       = errors.New("enter a valid date in DD-MM-YYYY format")
	ErrNotCalendarDate = errors.New("enter a valid exam date")
	ErrPastDate        = errors.New("exam date must be in the future")
)

// exactPattern is the lenient shape check used at display time; the strict
// pattern below additionally bounds day and month.
var (
	exactPattern  = regexp.MustCompile(`^(\d{2})-(\d{2})-(\d{4})$`)
	strictPattern = regexp.MustCompile(`^(0[1-9]|[12][0-9]|3[01])-(0[1-9]|1[0-2])-(\d{4})$`)
)

// Parse classifies a stored target exam date. Out-of-range components in the
// exact form normalize forward (31-02 rolls into March), matching how stored
// values have always been read.
func Parse(value string) ParsedDate {
	return parseIn(value, time.Local)
}

func parseIn(value string, loc *time.Location) ParsedDate {
	value = strings.TrimSpace(value)
	if value == "" {
		return ParsedDate{Kind: Invalid}
	}

	if m := exactPattern.FindStringSubmatch(value); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		return ParsedDate{
			Kind: Exact,
			Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc),
		}
	}

	parts := strings.Fields(value)
	if len(parts) < 2 {
		return ParsedDate{Kind: Invalid}
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return ParsedDate{Kind: Invalid}
	}
	month := time.December
	if parts[0] == "June" {
		month = time.June
	}
	return ParsedDate{
		Kind: LegacyApprox,
		Time: time.Date(year, month, 1, 0, 0, 0, 0, loc),
	}
}

// Validate is the strict call site used when a user enters a new date. Only
// real future DD-MM-YYYY dates pass.
func Validate(value string, now time.Time) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return ErrEmptyDate
	}

	m := strictPattern.FindStringSubmatch(value)
	if m == nil {
		return ErrBadFormat
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())
	if date.Day() != day || date.Month() != time.Month(month) || date.Year() != year {
		return ErrNotCalendarDate
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		return ErrPastDate
	}
	return nil
}

// Until is the lenient display calculation. Empty, unparseable or past dates
// all read as zero months and zero days rather than erroring.
func Until(value string, now time.Time) Countdown {
	parsed := parseIn(value, now.Location())
	if parsed.Kind == Invalid {
		return Countdown{}
	}

	diff := parsed.Time.Sub(now)
	if diff < 0 {
		return Countdown{}
	}
	totalDays := int(diff.Hours() / 24)
	return Countdown{Months: totalDays / 30, Days: totalDays % 30}
}
