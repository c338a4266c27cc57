package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatClock(t *testing.T) {
	require.Equal(t, "09:05", FormatClock(9, 5))
	require.Equal(t, "19:30", FormatClock(19, 30))
	require.Equal(t, "00:00", FormatClock(0, 0))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, time.June, 7, 0, 0, 0, 0, time.UTC)
	require.Equal(t, "07.06.2026", FormatDate(d))
}

func TestGetWeekdayShortName(t *testing.T) {
	require.Equal(t, "Вс", GetWeekdayShortName(0))
	require.Equal(t, "Сб", GetWeekdayShortName(6))
	require.Equal(t, "?", GetWeekdayShortName(7))
}

func TestPluralizeServices(t *testing.T) {
	require.Equal(t, "богослужение", PluralizeServices(1))
	require.Equal(t, "богослужения", PluralizeServices(2))
	require.Equal(t, "богослужений", PluralizeServices(5))
	require.Equal(t, "богослужений", PluralizeServices(11))
	require.Equal(t, "богослужение", PluralizeServices(21))
}

func TestPluralizeSongs(t *testing.T) {
	require.Equal(t, "песня", PluralizeSongs(1))
	require.Equal(t, "песни", PluralizeSongs(3))
	require.Equal(t, "песен", PluralizeSongs(12))
}
