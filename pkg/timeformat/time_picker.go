/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: time_picker.go
Description: Time picker for the time format guesser. Splits the text following a date
into its date-time delimiter, hour/minute/second fields, optional fractional seconds
and optional trailing time zone.
*/

package timeformat

import (
	"regexp"
	"strings"
)

// timePick is the scratch result of one time picking attempt
type timePick struct {
	dateTimeDelim string
	timeDelim     string
	hour          string
	minute        string
	second        string
	fracDelim     string
	fracDigits    int
	zoneDelim     string
	zone          string
	rest          string
}

var (
	// delimitedTimeRE requires a date-time delimiter. A compact "T123456" matches
	// here with only the hour bound and "3456" left over; callers rely on that.
	delimitedTimeRE = regexp.MustCompile(`^(` + dateTimeDelimPattern + `)(` + hourPattern + `)` +
		`(?:(` + timeDelimPattern + `)(` + minutePattern + `)(?:(` + timeDelimPattern + `)(` + minutePattern + `))?)?(.*)$`)

	compactTimeRE = regexp.MustCompile(`^(` + hourCompactPattern + `)(?:(` + minuteCompactPattern + `)(` + minuteCompactPattern + `)?)?(.*)$`)

	fractionRE = regexp.MustCompile(`^([.,])([0-9]{1,9})(.*)$`)

	zoneRE = regexp.MustCompile(`^(\s*)(` + zoneOffsetPattern + `|` + zoneAbbrevPattern + `)$`)
)

// pickTime recognizes a time at the start of text. dateDelim is the delimiter
// of the preceding date; the compact form without any delimiters is accepted
// only after a compact date or when there is no date at all.
func pickTime(text, dateDelim string) (*timePick, bool) {
	pick, ok := pickDelimitedTime(text)
	if !ok && dateDelim == "" {
		pick, ok = pickCompactTime(text)
	}
	if !ok {
		return nil, false
	}

	if pick.second != "" {
		if m := fractionRE.FindStringSubmatch(pick.rest); m != nil {
			pick.fracDelim = m[1]
			pick.fracDigits = len(m[2])
			pick.rest = m[3]
		}
	}

	if m := zoneRE.FindStringSubmatch(pick.rest); m != nil {
		pick.zoneDelim = m[1]
		pick.zone = m[2]
		pick.rest = ""
	}

	return pick, true
}

func pickDelimitedTime(text string) (*timePick, bool) {
	m := delimitedTimeRE.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	pick := &timePick{
		dateTimeDelim: m[1],
		hour:          m[2],
		timeDelim:     m[3],
		minute:        m[4],
		second:        m[6],
		rest:          m[7],
	}
	// Both time delimiters must agree; otherwise the seconds go back to the rest.
	if m[5] != "" && m[5] != m[3] {
		pick.second = ""
		pick.rest = m[5] + m[6] + m[7]
	}
	return pick, true
}

func pickCompactTime(text string) (*timePick, bool) {
	m := compactTimeRE.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	return &timePick{
		hour:   m[1],
		minute: m[2],
		second: m[3],
		rest:   m[4],
	}, true
}

// zoneKind classifies a picked zone as a numeric offset or an abbreviation,
// together with the display option for offsets.
func (p *timePick) zoneKind() (partKind, partOption) {
	switch {
	case p.zone == "Z":
		return partZoneOffset, optionUnset
	case strings.HasPrefix(p.zone, "+") || strings.HasPrefix(p.zone, "-"):
		if strings.Contains(p.zone, ":") {
			return partZoneOffset, optionOffsetExtended
		}
		return partZoneOffset, optionOffsetBasic
	}
	return partZoneAbbrev, optionUnset
}
