package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algorecall/algorecall/internal/models"
)

func TestDate_JSON(t *testing.T) {
	d := models.NewDate(2025, 6, 5)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-06-05"`, string(data))

	var parsed models.Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-06-05"`), &parsed))
	assert.True(t, parsed.Equal(d))
}

func TestDate_AddDays(t *testing.T) {
	d := models.NewDate(2025, 6, 30)
	assert.Equal(t, "2025-07-01", d.AddDays(1).String())
	assert.Equal(t, "2025-06-29", d.AddDays(-1).String())
	assert.Equal(t, "2025-09-28", d.AddDays(90).String())
}

func TestDate_DaysSince(t *testing.T) {
	a := models.NewDate(2025, 6, 12)
	b := models.NewDate(2025, 6, 5)
	assert.Equal(t, 7, a.DaysSince(b))
	assert.Equal(t, -7, b.DaysSince(a))
	assert.Equal(t, 0, a.DaysSince(a))
}

func TestDate_Scan(t *testing.T) {
	var d models.Date

	require.NoError(t, d.Scan("2025-06-05"))
	assert.Equal(t, "2025-06-05", d.String())

	require.NoError(t, d.Scan([]byte("2025-06-06")))
	assert.Equal(t, "2025-06-06", d.String())

	require.NoError(t, d.Scan(time.Date(2025, 6, 7, 23, 30, 0, 0, time.UTC)))
	assert.Equal(t, "2025-06-07", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestDate_Value(t *testing.T) {
	d := models.NewDate(2025, 6, 5)
	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2025-06-05", v)

	var zero models.Date
	v, err = zero.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDateOf_TruncatesTime(t *testing.T) {
	ts := time.Date(2025, 6, 5, 23, 59, 59, 0, time.FixedZone("X", 3600))
	assert.Equal(t, "2025-06-05", models.DateOf(ts).String())
}
