package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromStr(t *testing.T) {
	now := time.Date(2024, 5, 10, 15, 30, 0, 0, time.UTC)

	got, err := FromStr("2 hours ago", now)
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(-2*time.Hour), got, time.Minute)

	got, err = FromStr(" 3 days ago ", now)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Day())
}

func TestFromStrInvalid(t *testing.T) {
	_, err := FromStr("qwerty zxcvb", time.Now())
	assert.ErrorIs(t, err, errParseDate)
}

func TestRoundToEnd(t *testing.T) {
	in := time.Date(2024, 5, 10, 15, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 5, 10, 23, 59, 59, 0, time.UTC), RoundToEnd(in))
}
