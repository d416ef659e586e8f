/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: fixed_matchers.go
Description: Fixed-shape matchers for RFC 2822 dates, Apache common log format
timestamps and ANSI C asctime output. These run before the generic matcher because
their shapes are unambiguous.
*/

package timeformat

import (
	"regexp"
	"strings"
)

var (
	rfc2822RE = regexp.MustCompile(`^(?:(` + weekdayAbbrevPattern + `), )?([0-9]{1,2}) (` + monthAbbrevPattern + `) ([0-9]{4})` +
		`(?: ([0-9]{2}):([0-9]{2})(?::([0-9]{2}))?` +
		`(?: (UT|GMT|[ECMP][SD]T|[A-IK-Z]|[+\-][0-9]{2}(?::?[0-9]{2})?))?)?$`)

	apacheCLFRE = regexp.MustCompile(`^([0-9]{2})/(` + monthAbbrevPattern + `)/([0-9]{4}):([0-9]{2}):([0-9]{2}):([0-9]{2}) ([+\-][0-9]{2}:?[0-9]{2})$`)

	asctimeRE = regexp.MustCompile(`^(` + weekdayAbbrevPattern + `) (` + monthAbbrevPattern + `) ( [1-9]|[1-3][0-9]|[1-9]) ([0-9]{2}):([0-9]{2}):([0-9]{2}) ([0-9]{4})$`)
)

// matchRFC2822 recognizes "[Wkd, ]D Mon YYYY[ HH:MM[:SS][ zone]]"
func matchRFC2822(example string) (Match, bool) {
	m := rfc2822RE.FindStringSubmatch(example)
	if m == nil {
		return nil, false
	}

	var b strings.Builder
	if m[1] != "" {
		b.WriteString("%a, ")
	}
	b.WriteString("%d %b %Y")
	if m[5] != "" {
		b.WriteString(" %H:%M")
		if m[7] != "" {
			b.WriteString(":%S")
		}
		if m[8] != "" {
			b.WriteString(" ")
			b.WriteString(rfc2822ZoneToken(m[8]))
		}
	}
	return NewSimpleMatch(b.String()), true
}

// rfc2822ZoneToken maps a zone to its token. UT, GMT and military letters are
// offsets from UTC and parse as %z; other names are abbreviations.
func rfc2822ZoneToken(zone string) string {
	switch {
	case strings.Contains(zone, ":"):
		return "%:z"
	case strings.HasPrefix(zone, "+"), strings.HasPrefix(zone, "-"):
		return "%z"
	case zone == "UT", zone == "GMT", len(zone) == 1:
		return "%z"
	}
	return "%Z"
}

// matchApacheCLF recognizes "DD/Mon/YYYY:HH:MM:SS +HHMM"
func matchApacheCLF(example string) (Match, bool) {
	m := apacheCLFRE.FindStringSubmatch(example)
	if m == nil {
		return nil, false
	}
	if strings.Contains(m[7], ":") {
		return NewSimpleMatch("%d/%b/%Y:%H:%M:%S %:z"), true
	}
	return NewSimpleMatch("%d/%b/%Y:%H:%M:%S %z"), true
}

// matchAsctime recognizes "Wkd Mon _D HH:MM:SS YYYY"
func matchAsctime(example string) (Match, bool) {
	if !asctimeRE.MatchString(example) {
		return nil, false
	}
	return NewSimpleMatch("%a %b %e %H:%M:%S %Y"), true
}
