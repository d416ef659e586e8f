/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: picker_test.go
Description: Tests for the date and time pickers. Covers field order detection,
delimiter handling, remainders and the compact-time characterization case.
*/

package timeformat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickDate(t *testing.T) {
	cases := []struct {
		text  string
		order dateOrder
		delim string
		year  string
		month string
		day   string
		rest  string
	}{
		{"2020/12/31", orderYMD, "/", "2020", "12", "31", ""},
		{"12/31/2020", orderMDY, "/", "2020", "12", "31", ""},
		{"31/12/2020", orderDMY, "/", "2020", "12", "31", ""},
		{"2020/12/12", orderYMD, "/", "2020", "12", "12", ""},
		{"12/12/2020", orderMDY, "/", "2020", "12", "12", ""},
		{"13.12.2020", orderDMY, ".", "2020", "12", "13", ""},
		{"2020-12-12", orderYMD, "-", "2020", "12", "12", ""},
		{"20160101", orderYMD, "", "2016", "01", "01", ""},
		{"2020/12/31 12:34:56", orderYMD, "/", "2020", "12", "31", " 12:34:56"},
		{"2020/12/31 12:34:56 GMT", orderYMD, "/", "2020", "12", "31", " 12:34:56 GMT"},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			pick, ok := pickDate(tc.text)
			require.True(t, ok)
			assert.Equal(t, tc.order, pick.order)
			assert.Equal(t, tc.delim, pick.delim)
			assert.Equal(t, tc.year, pick.year)
			assert.Equal(t, tc.month, pick.month)
			assert.Equal(t, tc.day, pick.day)
			assert.Equal(t, tc.rest, pick.rest)
		})
	}
}

func TestPickDateRejects(t *testing.T) {
	for _, text := range []string{"2020@12@12", "2020-12/12", "12345678", "hello", "", "12/12"} {
		_, ok := pickDate(text)
		assert.False(t, ok, text)
	}
}

func TestPickTime(t *testing.T) {
	cases := []struct {
		text          string
		dateTimeDelim string
		timeDelim     string
		hour          string
		minute        string
		second        string
		rest          string
	}{
		{"T12:34:56", "T", ":", "12", "34", "56", ""},
		{"T12-34-56", "T", "-", "12", "34", "56", ""},
		{"_12:34:56", "_", ":", "12", "34", "56", ""},
		{". 12:34:56", ". ", ":", "12", "34", "56", ""},
		{"123456", "", "", "12", "34", "56", ""},
		// only ":" and "-" separate time fields
		{"T12@34@56", "T", "", "12", "", "", "@34@56"},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			pick, ok := pickTime(tc.text, "")
			require.True(t, ok)
			assert.Equal(t, tc.dateTimeDelim, pick.dateTimeDelim)
			assert.Equal(t, tc.timeDelim, pick.timeDelim)
			assert.Equal(t, tc.hour, pick.hour)
			assert.Equal(t, tc.minute, pick.minute)
			assert.Equal(t, tc.second, pick.second)
			assert.Equal(t, tc.rest, strings.TrimSpace(pick.rest))
		})
	}
}

// A compact time behind a "T" binds only the hour. This is kept for output
// compatibility with existing guesses.
func TestPickTimeCompactAfterMarker(t *testing.T) {
	pick, ok := pickTime("T123456", "")
	require.True(t, ok)
	assert.Equal(t, "", pick.timeDelim)
	assert.Equal(t, "12", pick.hour)
	assert.Equal(t, "", pick.minute)
	assert.Equal(t, "", pick.second)
	assert.Equal(t, "3456", pick.rest)
}

func TestPickTimeFractionAndZone(t *testing.T) {
	pick, ok := pickTime(" 01:02:03.000001 +09:00", "-")
	require.True(t, ok)
	assert.Equal(t, ".", pick.fracDelim)
	assert.Equal(t, 6, pick.fracDigits)
	assert.Equal(t, " ", pick.zoneDelim)
	assert.Equal(t, "+09:00", pick.zone)
	assert.Equal(t, "", pick.rest)

	kind, option := pick.zoneKind()
	assert.Equal(t, partZoneOffset, kind)
	assert.Equal(t, optionOffsetExtended, option)
}

func TestPickTimeCompactNeedsCompactDate(t *testing.T) {
	_, ok := pickTime("123456", "-")
	assert.False(t, ok)
}

func TestPickTimeMismatchedDelimiters(t *testing.T) {
	pick, ok := pickTime(" 12:34-56x", "-")
	require.True(t, ok)
	assert.Equal(t, "34", pick.minute)
	assert.Equal(t, "", pick.second)
	assert.Equal(t, "-56x", pick.rest)
}
