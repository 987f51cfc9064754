package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntryFlag(t *testing.T) {
	edit, err := parseEntryFlag("P2400=5:20")
	require.NoError(t, err)
	assert.Equal(t, "P2400", edit.Type)
	assert.Equal(t, 5, edit.Used)
	assert.Equal(t, 20, edit.MorningStock)

	_, err = parseEntryFlag("P2400")
	assert.Error(t, err)
	_, err = parseEntryFlag("P2400=5")
	assert.Error(t, err)
	_, err = parseEntryFlag("P2400=x:20")
	assert.Error(t, err)
}

func TestParsePair(t *testing.T) {
	typ, value, err := parsePair("MALA=15")
	require.NoError(t, err)
	assert.Equal(t, "MALA", typ)
	assert.Equal(t, 15, value)

	_, _, err = parsePair("MALA")
	assert.Error(t, err)
	_, _, err = parsePair("MALA=abc")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	date, err := parseDate("2026-02-01")
	require.NoError(t, err)
	assert.Equal(t, 2026, date.Year())

	_, err = parseDate("01/02/2026")
	assert.Error(t, err)
}
