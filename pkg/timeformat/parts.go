/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: parts.go
Description: Building blocks shared by the date/time pickers and the generic pattern
matcher. Holds the regular expression fragments for each date/time field and the
part kinds used to render strftime tokens and grouping identifiers.
*/

package timeformat

// Field fragments. Alternatives are ordered so that Go's leftmost-first matching
// prefers the longest sensible reading of each field.
const (
	yearPattern          = `[1-4][0-9]{3}`
	monthPattern         = `10|11|12|0?[1-9]`
	monthCompactPattern  = `10|11|12|0[1-9]`
	dayPattern           = `31|30|[1-2][0-9]|0?[1-9]`
	dayCompactPattern    = `31|30|[1-2][0-9]|0[1-9]`
	hourPattern          = `20|21|22|23|24|1[0-9]|0?[0-9]`
	hourCompactPattern   = `20|21|22|23|24|1[0-9]|0[0-9]`
	minutePattern        = `60|[1-5][0-9]|0?[0-9]`
	minuteCompactPattern = `60|[1-5][0-9]|0[0-9]`

	dateTimeDelimPattern = `\s+|T|_|\.\s*`
	timeDelimPattern     = `[:\-]`
	zoneOffsetPattern    = `Z|[+\-][0-9]{2}(?::?[0-9]{2})?`
	zoneAbbrevPattern    = `[A-Z]{1,3}`
)

// dateDelimiters are the only separators accepted between date fields.
var dateDelimiters = []string{"/", "-", "."}

// monthAbbrevPattern and weekdayAbbrevPattern are shared by the fixed-shape matchers.
const (
	monthAbbrevPattern   = `Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec`
	weekdayAbbrevPattern = `Sun|Mon|Tue|Wed|Thu|Fri|Sat`
)

// partKind identifies one component of a decomposed timestamp
type partKind int

const (
	partYear partKind = iota
	partMonth
	partDay
	partHour
	partMinute
	partSecond
	partFraction
	partZoneOffset
	partZoneAbbrev
)

var partNames = [...]string{
	partYear:       "year",
	partMonth:      "month",
	partDay:        "day",
	partHour:       "hour",
	partMinute:     "minute",
	partSecond:     "second",
	partFraction:   "frac",
	partZoneOffset: "zone_off",
	partZoneAbbrev: "zone_abb",
}

func (k partKind) String() string {
	return partNames[k]
}

// partOption carries display detail that does not affect grouping,
// such as the width of a fraction or the style of a numeric offset.
type partOption int

const (
	optionUnset partOption = iota
	optionMillis
	optionNanos
	optionOffsetBasic
	optionOffsetExtended
)

// part is one rendered component of a generic match
type part struct {
	kind   partKind
	option partOption
}

// token renders the strftime token for the part
func (p part) token() string {
	switch p.kind {
	case partYear:
		return "%Y"
	case partMonth:
		return "%m"
	case partDay:
		return "%d"
	case partHour:
		return "%H"
	case partMinute:
		return "%M"
	case partSecond:
		return "%S"
	case partFraction:
		if p.option == optionNanos {
			return "%N"
		}
		return "%L"
	case partZoneOffset:
		if p.option == optionOffsetExtended {
			return "%:z"
		}
		return "%z"
	case partZoneAbbrev:
		return "%Z"
	}
	return ""
}

// wider reports whether option o should replace the current one during a merge.
// An unset option takes anything observed; a millisecond fraction widens to
// nanoseconds. An offset style, once observed, is kept.
func (o partOption) wider(current partOption) bool {
	switch current {
	case optionUnset:
		return o != optionUnset
	case optionMillis:
		return o == optionNanos
	}
	return false
}
