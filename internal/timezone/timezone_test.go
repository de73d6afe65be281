package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocation_ResolvesLabels(t *testing.T) {
	ref := time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)

	_, watOffset := ref.In(Location("WAT")).Zone()
	_, catOffset := ref.In(Location("CAT")).Zone()

	assert.Equal(t, 3600, watOffset)
	assert.Equal(t, 7200, catOffset)
}

func TestLocation_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("").String())
	assert.Equal(t, DefaultTimezone, Location("Mars/Olympus").String())
	assert.Equal(t, "Africa/Kigali", Location("Africa/Kigali").String())
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("WAT"))
	assert.True(t, IsValid("Africa/Accra"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Nowhere/Special"))
}

func TestStartOfDay(t *testing.T) {
	loc := Location("WAT")
	in := time.Date(2024, 1, 15, 23, 30, 0, 0, time.UTC) // 00:30 on the 16th in Lagos

	got := StartOfDay(in, loc)

	assert.Equal(t, time.Date(2024, 1, 16, 0, 0, 0, 0, loc), got)
}
