// Package endtime turns the time-of-day strings admins type ("9:00AM") into
// absolute giveaway deadlines.
//
// The region is modelled as a fixed UTC offset. No timezone database is
// consulted, so daylight-saving changes are not reflected.
package endtime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TimeError is returned for input that cannot be turned into a deadline
type TimeError string

// Error implements the error interface
func (e TimeError) Error() string {
	return string(e)
}

const (
	ErrInvalidFormat TimeError = "Invalid time format. Use HH:MMAM or HH:MMPM (e.g., 9:00AM, 11:30PM)"
	ErrInvalidRange  TimeError = "Invalid time. Hours must be 1-12, minutes 0-59"
)

// DefaultOffset is the region the bot was built for (UTC+1)
const DefaultOffset = time.Hour

var timePattern = regexp.MustCompile(`(?i)^(\d{1,2}):(\d{2})(AM|PM)$`)

// Parser resolves times of day in a fixed-offset zone
type Parser struct {
	zone *time.Location
}

// NewParser creates a parser for the given UTC offset
func NewParser(offset time.Duration) *Parser {
	return &Parser{
		zone: time.FixedZone(zoneName(offset), int(offset.Seconds())),
	}
}

// Location returns the fixed zone used for parsing and display
func (p *Parser) Location() *time.Location {
	return p.zone
}

// Parse converts input such as "9:00AM" into the next occurrence of that time
// strictly after now, returned in UTC.
func (p *Parser) Parse(input string, now time.Time) (time.Time, error) {
	hour, minute, err := parseClock(input)
	if err != nil {
		return time.Time{}, err
	}

	local := now.In(p.zone)
	target := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, p.zone)
	if !target.After(local) {
		target = target.AddDate(0, 0, 1)
	}

	return target.UTC(), nil
}

// Clock renders t as a 12-hour time of day in the parser's zone, e.g. "9:05AM"
func (p *Parser) Clock(t time.Time) string {
	return t.In(p.zone).Format("3:04PM")
}

// Display renders t for giveaway embeds, e.g. "Mar 4, 2025, 09:00 AM"
func (p *Parser) Display(t time.Time) string {
	return t.In(p.zone).Format("Jan 2, 2006, 03:04 PM")
}

// parseClock validates the shape and range of input and returns 24-hour values
func parseClock(input string) (int, int, error) {
	match := timePattern.FindStringSubmatch(strings.TrimSpace(input))
	if match == nil {
		return 0, 0, ErrInvalidFormat
	}

	hour, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, 0, ErrInvalidFormat
	}
	minute, err := strconv.Atoi(match[2])
	if err != nil {
		return 0, 0, ErrInvalidFormat
	}

	if hour < 1 || hour > 12 || minute < 0 || minute > 59 {
		return 0, 0, ErrInvalidRange
	}

	switch strings.ToUpper(match[3]) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	}

	return hour, minute, nil
}

func zoneName(offset time.Duration) string {
	if offset == 0 {
		return "UTC"
	}

	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}

	hours := int(offset / time.Hour)
	minutes := int((offset % time.Hour) / time.Minute)
	if minutes == 0 {
		return fmt.Sprintf("UTC%s%d", sign, hours)
	}
	return fmt.Sprintf("UTC%s%d:%02d", sign, hours, minutes)
}
