package entities

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseTimezoneLocation resolves the calendar used for day arithmetic.
// Accepted forms:
//   - "Local" or empty: the process local zone
//   - "UTC", "GMT", "Etc/UTC"
//   - IANA names like "Asia/Kolkata"
//   - fixed offsets: "UTC+5:30", "UTC-7", "+3", "-03:30"
//
// Fixed offsets return a time.FixedZone without DST rules.
func ParseTimezoneLocation(tz string) (*time.Location, error) {
	tz = strings.TrimSpace(tz)
	switch strings.ToUpper(tz) {
	case "", "LOCAL":
		return time.Local, nil
	case "UTC", "GMT", "ETC/UTC":
		return time.UTC, nil
	}

	if loc, err := time.LoadLocation(tz); err == nil {
		return loc, nil
	}

	offset, ok := parseOffset(tz)
	if !ok {
		return nil, fmt.Errorf("unsupported timezone %q", tz)
	}
	return time.FixedZone(offsetName(offset), offset), nil
}

func parseOffset(s string) (int, bool) {
	if len(s) >= 3 && strings.EqualFold(s[:3], "UTC") {
		s = strings.TrimSpace(s[3:])
		if s == "" {
			return 0, true
		}
	}
	if len(s) < 2 || (s[0] != '+' && s[0] != '-') {
		return 0, false
	}

	sign := 1
	if s[0] == '-' {
		sign = -1
	}

	hours, minutes, found := strings.Cut(s[1:], ":")
	if !found {
		minutes = "0"
	}

	h, err := strconv.Atoi(hours)
	if err != nil || h < 0 || h > 14 {
		return 0, false
	}
	m, err := strconv.Atoi(minutes)
	if err != nil || m < 0 || m >= 60 {
		return 0, false
	}

	return sign * (h*3600 + m*60), true
}

func offsetName(offset int) string {
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	return fmt.Sprintf("UTC%c%02d:%02d", sign, offset/3600, (offset%3600)/60)
}
