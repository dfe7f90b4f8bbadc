package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2 January 2024", FormatDate("2024-01-02"))
	assert.Equal(t, "15 August 1951", FormatDate("1951-08-15"))
}

func TestFormatDate_PassesThroughUnparseable(t *testing.T) {
	assert.Equal(t, "", FormatDate(""))
	assert.Equal(t, "sometime", FormatDate("sometime"))
}

func TestParseDate(t *testing.T) {
	_, err := ParseDate("2024-02-29")
	assert.NoError(t, err)

	_, err = ParseDate("29/02/2024")
	assert.Error(t, err)
}
