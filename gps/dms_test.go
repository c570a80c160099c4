package gps

import (
	"testing"

	"github.com/matryer/is"
)

func TestDMSToDecimal(t *testing.T) {
	is := is.New(t)

	is.Equal(DMSToDecimal(35, 30, 0, "N"), 35.5)
	is.Equal(DMSToDecimal(35, 30, 0, "S"), -35.5)
	is.Equal(DMSToDecimal(139, 45, 0, "E"), 139.75)
	is.Equal(DMSToDecimal(139, 45, 0, "W"), -139.75)

	// Whitespace-padded references still count.
	is.Equal(DMSToDecimal(10, 0, 0, " S "), -10.0)

	// An unknown reference leaves the sign alone.
	is.Equal(DMSToDecimal(10, 0, 0, ""), 10.0)
}

func TestDMSToDecimalSeconds(t *testing.T) {
	is := is.New(t)

	got := DMSToDecimal(35, 10, 36, "N")
	want := 35.0 + 10.0/60 + 36.0/3600
	is.Equal(got, want)
}

func TestParseRational(t *testing.T) {
	is := is.New(t)

	v, err := parseRational("137371/3906")
	is.NoErr(err)
	is.Equal(v, 137371.0/3906.0)

	v, err = parseRational("35")
	is.NoErr(err)
	is.Equal(v, 35.0)

	v, err = parseRational(" 30/1 ")
	is.NoErr(err)
	is.Equal(v, 30.0)

	_, err = parseRational("35/0")
	is.True(err != nil) // zero denominator

	_, err = parseRational("x/1")
	is.True(err != nil)

	_, err = parseRational("")
	is.True(err != nil)
}

func TestParseDMSList(t *testing.T) {
	is := is.New(t)

	deg, min, sec, err := parseDMSList("35/1, 30/1, 0/1")
	is.NoErr(err)
	is.Equal(deg, 35.0)
	is.Equal(min, 30.0)
	is.Equal(sec, 0.0)

	_, _, _, err = parseDMSList("35/1, 30/1")
	is.True(err != nil) // missing seconds

	_, _, _, err = parseDMSList("35/1, bogus, 0/1")
	is.True(err != nil)
}
