package gps

import (
	"fmt"
	"strconv"
	"strings"
)

// DMSToDecimal converts a degrees/minutes/seconds triplet plus hemisphere
// reference to decimal degrees. South latitudes and west longitudes come
// back negative.
func DMSToDecimal(deg, min, sec float64, ref string) float64 {
	decimal := deg + min/60 + sec/3600
	switch strings.TrimSpace(ref) {
	case "S", "W":
		decimal = -decimal
	}
	return decimal
}

// parseRational parses an EXIF rational string like "137371/3906" or a
// plain number.
func parseRational(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0, fmt.Errorf("bad rational %q: %w", s, err)
		}
		d, err := strconv.ParseFloat(den, 64)
		if err != nil {
			return 0, fmt.Errorf("bad rational %q: %w", s, err)
		}
		if d == 0 {
			return 0, fmt.Errorf("bad rational %q: zero denominator", s)
		}
		return n / d, nil
	}
	return strconv.ParseFloat(s, 64)
}

// parseDMSList parses property values like "35/1, 30/1, 0/1" into a
// degrees/minutes/seconds triplet.
func parseDMSList(s string) (deg, min, sec float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("want 3 rationals, have %q", s)
	}
	if deg, err = parseRational(parts[0]); err != nil {
		return 0, 0, 0, err
	}
	if min, err = parseRational(parts[1]); err != nil {
		return 0, 0, 0, err
	}
	if sec, err = parseRational(parts[2]); err != nil {
		return 0, 0, 0, err
	}
	return deg, min, sec, nil
}
