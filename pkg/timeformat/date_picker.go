/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: date_picker.go
Description: Date picker for the time format guesser. Recognizes a leading date token,
decides its field order (YMD, MDY or DMY) and delimiter, and hands the remainder to
the time picker.
*/

package timeformat

import (
	"regexp"
)

// dateOrder is the field order of a picked date. YDM is never produced.
type dateOrder int

const (
	orderYMD dateOrder = iota
	orderMDY
	orderDMY
)

func (o dateOrder) String() string {
	switch o {
	case orderYMD:
		return "YMD"
	case orderMDY:
		return "MDY"
	case orderDMY:
		return "DMY"
	}
	return "unknown"
}

// kinds returns the part kinds in the order they appear in the text
func (o dateOrder) kinds() [3]partKind {
	switch o {
	case orderMDY:
		return [3]partKind{partMonth, partDay, partYear}
	case orderDMY:
		return [3]partKind{partDay, partMonth, partYear}
	}
	return [3]partKind{partYear, partMonth, partDay}
}

// datePick is the scratch result of one date picking attempt
type datePick struct {
	order dateOrder
	delim string
	year  string
	month string
	day   string
	rest  string
}

// dateShape is one compiled date recognizer
type dateShape struct {
	order dateOrder
	delim string
	re    *regexp.Regexp
}

// dateShapes is tried in order; the first hit wins.
var dateShapes = buildDateShapes()

func buildDateShapes() []dateShape {
	field := func(pattern string) string { return "(" + pattern + ")" }

	shapes := make([]dateShape, 0, 3*len(dateDelimiters)+1)
	for _, delim := range dateDelimiters {
		d := regexp.QuoteMeta(delim)
		shapes = append(shapes, dateShape{
			order: orderYMD,
			delim: delim,
			re:    regexp.MustCompile(`^` + field(yearPattern) + d + field(monthPattern) + d + field(dayPattern) + `(.*)$`),
		})
	}
	shapes = append(shapes, dateShape{
		order: orderYMD,
		re:    regexp.MustCompile(`^` + field(yearPattern) + field(monthCompactPattern) + field(dayCompactPattern) + `(.*)$`),
	})
	for _, delim := range dateDelimiters {
		d := regexp.QuoteMeta(delim)
		shapes = append(shapes, dateShape{
			order: orderMDY,
			delim: delim,
			re:    regexp.MustCompile(`^` + field(monthPattern) + d + field(dayPattern) + d + field(yearPattern) + `(.*)$`),
		})
	}
	for _, delim := range dateDelimiters {
		d := regexp.QuoteMeta(delim)
		shapes = append(shapes, dateShape{
			order: orderDMY,
			delim: delim,
			re:    regexp.MustCompile(`^` + field(dayPattern) + d + field(monthPattern) + d + field(yearPattern) + `(.*)$`),
		})
	}
	return shapes
}

// pickDate recognizes a leading date in text.
// MDY is preferred over DMY when both readings are possible; cross-example
// disambiguation happens when matches are merged.
func pickDate(text string) (*datePick, bool) {
	for _, shape := range dateShapes {
		m := shape.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		pick := &datePick{order: shape.order, delim: shape.delim, rest: m[4]}
		for i, kind := range shape.order.kinds() {
			switch kind {
			case partYear:
				pick.year = m[i+1]
			case partMonth:
				pick.month = m[i+1]
			case partDay:
				pick.day = m[i+1]
			}
		}
		return pick, true
	}
	return nil, false
}
