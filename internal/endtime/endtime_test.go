package endtime

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ParserTestSuite struct {
	suite.Suite
	parser *Parser
}

func (s *ParserTestSuite) SetupTest() {
	s.parser = NewParser(DefaultOffset)
}

func TestParserTestSuite(t *testing.T) {
	suite.Run(t, new(ParserTestSuite))
}

func (s *ParserTestSuite) TestParseLaterToday() {
	// 07:30 local (06:30 UTC)
	now := time.Date(2025, 3, 4, 6, 30, 0, 0, time.UTC)

	deadline, err := s.parser.Parse("9:00AM", now)
	s.Require().NoError(err)

	s.Equal(time.Date(2025, 3, 4, 8, 0, 0, 0, time.UTC), deadline)
	s.Equal(time.UTC, deadline.Location())
}

func (s *ParserTestSuite) TestParseRollsToNextDay() {
	// 10:15 local, 9:00AM has already passed
	now := time.Date(2025, 3, 4, 9, 15, 0, 0, time.UTC)

	deadline, err := s.parser.Parse("9:00AM", now)
	s.Require().NoError(err)

	s.Equal(time.Date(2025, 3, 5, 8, 0, 0, 0, time.UTC), deadline)
}

func (s *ParserTestSuite) TestParseExactlyNowRollsToNextDay() {
	now := time.Date(2025, 3, 4, 8, 0, 0, 0, time.UTC)

	deadline, err := s.parser.Parse("9:00AM", now)
	s.Require().NoError(err)

	s.Equal(time.Date(2025, 3, 5, 8, 0, 0, 0, time.UTC), deadline)
}

func (s *ParserTestSuite) TestParseUsesRegionDate() {
	// 23:30 UTC on the 4th is already 00:30 on the 5th in UTC+1
	now := time.Date(2025, 3, 4, 23, 30, 0, 0, time.UTC)

	deadline, err := s.parser.Parse("1:00AM", now)
	s.Require().NoError(err)

	s.Equal(time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), deadline)
}

func (s *ParserTestSuite) TestTwelveHourConversion() {
	now := time.Date(2025, 3, 4, 0, 0, 0, 0, time.FixedZone("x", 3600)).UTC()

	cases := []struct {
		input string
		hour  int
	}{
		{"12:00AM", 0},
		{"12:30PM", 12},
		{"1:00PM", 13},
		{"11:59PM", 23},
		{"6:15am", 6},
	}

	for _, tc := range cases {
		deadline, err := s.parser.Parse(tc.input, now)
		s.Require().NoError(err, tc.input)
		s.Equal(tc.hour, deadline.In(s.parser.Location()).Hour(), tc.input)
	}
}

func (s *ParserTestSuite) TestInvalidFormat() {
	now := time.Date(2025, 3, 4, 6, 30, 0, 0, time.UTC)

	for _, input := range []string{
		"",
		"9AM",
		"9.00AM",
		"9-00AM",
		"9:0AM",
		"9:000AM",
		"9:00",
		"9:00 AM",
		"9:00XM",
		"123:00PM",
		"21:00",
		"noon",
	} {
		_, err := s.parser.Parse(input, now)
		s.ErrorIs(err, ErrInvalidFormat, input)
	}
}

func (s *ParserTestSuite) TestInvalidRange() {
	now := time.Date(2025, 3, 4, 6, 30, 0, 0, time.UTC)

	for _, input := range []string{"0:00AM", "00:30PM", "13:00PM", "99:00AM", "9:60AM", "12:99PM"} {
		_, err := s.parser.Parse(input, now)
		s.ErrorIs(err, ErrInvalidRange, input)
	}
}

func (s *ParserTestSuite) TestRoundTrip() {
	now := time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC)

	for hour := 1; hour <= 12; hour++ {
		for minute := 0; minute < 60; minute++ {
			for _, period := range []string{"AM", "PM"} {
				input := fmt.Sprintf("%d:%02d%s", hour, minute, period)

				deadline, err := s.parser.Parse(input, now)
				s.Require().NoError(err, input)
				s.Require().True(deadline.After(now), input)
				s.Require().False(deadline.After(now.Add(24*time.Hour)), input)
				s.Require().Equal(input, s.parser.Clock(deadline))

				// Zero-padded and lower-case spellings resolve to the same instant
				padded, err := s.parser.Parse(strings.ToLower(fmt.Sprintf("%02d:%02d%s", hour, minute, period)), now)
				s.Require().NoError(err, input)
				s.Require().Equal(deadline, padded, input)
			}
		}
	}
}

func (s *ParserTestSuite) TestDisplay() {
	t := time.Date(2025, 3, 5, 8, 0, 0, 0, time.UTC)
	s.Equal("Mar 5, 2025, 09:00 AM", s.parser.Display(t))
}

func TestZoneNames(t *testing.T) {
	assert.Equal(t, "UTC", NewParser(0).Location().String())
	assert.Equal(t, "UTC+1", NewParser(time.Hour).Location().String())
	assert.Equal(t, "UTC-5:30", NewParser(-5*time.Hour-30*time.Minute).Location().String())
}

func TestNegativeOffset(t *testing.T) {
	parser := NewParser(-5 * time.Hour)
	// 02:00 UTC is 21:00 the previous day in UTC-5
	now := time.Date(2025, 3, 4, 2, 0, 0, 0, time.UTC)

	deadline, err := parser.Parse("10:00PM", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 4, 3, 0, 0, 0, time.UTC), deadline)
}
