/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: pattern.go
Description: Generic delimiter-driven matcher. Decomposes an example into a date and an
optional time with fraction and zone, renders the strftime format, and groups
structurally identical examples together regardless of zone style or fraction width.
*/

package timeformat

import (
	"strconv"
	"strings"
)

// patternMatch is a decomposed timestamp. delimiters[i] sits between
// parts[i] and parts[i+1].
type patternMatch struct {
	order      dateOrder
	delimiters []string
	parts      []part
}

// matchPattern is the permissive fallback matcher. A date is mandatory and the
// whole example must be consumed.
func matchPattern(example string) (Match, bool) {
	date, ok := pickDate(example)
	if !ok {
		return nil, false
	}

	m := patternMatch{order: date.order}
	kinds := date.order.kinds()
	m.push("", part{kind: kinds[0]})
	m.push(date.delim, part{kind: kinds[1]})
	m.push(date.delim, part{kind: kinds[2]})

	if date.rest == "" {
		return m, true
	}

	tp, ok := pickTime(date.rest, date.delim)
	if !ok || tp.rest != "" {
		return nil, false
	}

	m.push(tp.dateTimeDelim, part{kind: partHour})
	if tp.minute != "" {
		m.push(tp.timeDelim, part{kind: partMinute})
		if tp.second != "" {
			m.push(tp.timeDelim, part{kind: partSecond})
		}
	}
	if tp.fracDigits > 0 {
		option := optionMillis
		if tp.fracDigits > 3 {
			option = optionNanos
		}
		m.push(tp.fracDelim, part{kind: partFraction, option: option})
	}
	if tp.zone != "" {
		kind, option := tp.zoneKind()
		m.push(tp.zoneDelim, part{kind: kind, option: option})
	}

	return m, true
}

func (m *patternMatch) push(delim string, p part) {
	if len(m.parts) > 0 {
		m.delimiters = append(m.delimiters, delim)
	}
	m.parts = append(m.parts, p)
}

// Format renders the strftime format
func (m patternMatch) Format() string {
	var b strings.Builder
	for i, p := range m.parts {
		if i > 0 {
			b.WriteString(m.delimiters[i-1])
		}
		b.WriteString(p.token())
	}
	return b.String()
}

// Identifier is the structural signature: part kinds and delimiters.
// MDY and DMY share a group so that merging can settle the order.
func (m patternMatch) Identifier() string {
	names := make([]string, len(m.parts))
	for i, p := range m.parts {
		kind := p.kind
		if m.order == orderMDY && i < 2 {
			kind = orderDMY.kinds()[i]
		}
		names[i] = kind.String()
	}
	delims := make([]string, len(m.delimiters))
	for i, d := range m.delimiters {
		delims[i] = strconv.Quote(d)
	}
	return strings.Join(names, ",") + "|" + strings.Join(delims, ",")
}

// MergeFrom fills options the receiver has not observed from the peer and
// switches an MDY reading to DMY when the peer could only be read as DMY.
func (m patternMatch) MergeFrom(peer Match) Match {
	other, ok := peer.(patternMatch)
	if !ok || len(other.parts) != len(m.parts) {
		return m
	}

	merged := m.clone()
	if merged.order == orderMDY && other.order == orderDMY {
		merged.order = orderDMY
		merged.parts[0].kind = partDay
		merged.parts[1].kind = partMonth
	}
	for i := range merged.parts {
		if merged.parts[i].kind != other.parts[i].kind {
			continue
		}
		if other.parts[i].option.wider(merged.parts[i].option) {
			merged.parts[i].option = other.parts[i].option
		}
	}
	return merged
}

func (m patternMatch) clone() patternMatch {
	return patternMatch{
		order:      m.order,
		delimiters: append([]string(nil), m.delimiters...),
		parts:      append([]part(nil), m.parts...),
	}
}

func (m patternMatch) String() string {
	return "patternMatch(" + m.Format() + ")"
}
