package date

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	normaliser := New()
	require.NotNil(t, normaliser)
	assert.Equal(t, "date", normaliser.Datatype())
}

func TestNormalise(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
		ok       bool
	}{
		{name: "ISO date", value: "2020-01-31", expected: "2020-01-31", ok: true},
		{name: "compact ISO", value: "20200131", expected: "2020-01-31", ok: true},
		{name: "ISO datetime with millis and zone", value: "2020-01-31T12:30:45.000Z", expected: "2020-01-31", ok: true},
		{name: "ISO datetime zulu", value: "2020-01-31T12:30:45Z", expected: "2020-01-31", ok: true},
		{name: "ISO datetime bare", value: "2020-01-31T12:30:45", expected: "2020-01-31", ok: true},
		{name: "space separated datetime", value: "2020-01-31 12:30:45", expected: "2020-01-31", ok: true},
		{name: "slashed Y/M/D", value: "2020/01/31", expected: "2020-01-31", ok: true},
		{name: "spaced Y M D", value: "2020 01 31", expected: "2020-01-31", ok: true},
		{name: "dotted Y.M.D", value: "2020.01.31", expected: "2020-01-31", ok: true},
		{name: "bare year", value: "2020", expected: "2020-01-01", ok: true},
		{name: "spreadsheet year", value: "2020.0", expected: "2020-01-01", ok: true},
		{name: "UK slashed with time", value: "31/01/2020 12:30:45", expected: "2020-01-31", ok: true},
		{name: "UK slashed short time", value: "31/01/2020 12:30", expected: "2020-01-31", ok: true},
		{name: "UK dashed", value: "31-01-2020", expected: "2020-01-31", ok: true},
		{name: "UK dashed short year", value: "31-01-20", expected: "2020-01-31", ok: true},
		{name: "UK dotted", value: "31.01.2020", expected: "2020-01-31", ok: true},
		{name: "UK slashed", value: "31/01/2020", expected: "2020-01-31", ok: true},
		{name: "UK slashed short year", value: "31/01/20", expected: "2020-01-31", ok: true},
		{name: "abbreviated month", value: "31-Jan-2020", expected: "2020-01-31", ok: true},
		{name: "abbreviated month short year", value: "31-Jan-20", expected: "2020-01-31", ok: true},
		{name: "full month name", value: "31 January 2020", expected: "2020-01-31", ok: true},
		{name: "US month name style", value: "Jan 31, 2020", expected: "2020-01-31", ok: true},
		{name: "month and short year only", value: "Jan-20", expected: "2020-01-01", ok: true},
		{name: "US fallthrough when day-first impossible", value: "03/25/2020", expected: "2020-03-25", ok: true},
		{name: "quoted and padded", value: `" 2020-01-31 ,"`, expected: "2020-01-31", ok: true},
		{name: "not a date", value: "not-a-date", expected: "", ok: false},
		{name: "impossible day", value: "2020-02-31", expected: "", ok: false},
		{name: "empty", value: "", expected: "", ok: false},
	}

	normaliser := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := normaliser.Normalise(tt.value)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// Ambiguous strings resolve by list order, not locale detection. This is a
// known precision/recall tradeoff: do not "fix" it by reordering layouts.
func TestNormalise_AmbiguityPolicy(t *testing.T) {
	normaliser := New()

	// Day-first beats month-first.
	got, ok := normaliser.Normalise("01/02/2020")
	require.True(t, ok)
	assert.Equal(t, "2020-02-01", got)

	// Year-day-month beats nothing here: Y-M-D wins when both could apply.
	got, ok = normaliser.Normalise("2020-01-02")
	require.True(t, ok)
	assert.Equal(t, "2020-01-02", got)

	// Year-day-month catches what Y-M-D rejects.
	got, ok = normaliser.Normalise("2020-31-12")
	require.True(t, ok)
	assert.Equal(t, "2020-12-31", got)
}
