package services

import (
	"errors"
	"testing"
	"time"
	"timezone-months-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeMonthEndsISO(t *testing.T) {
	got, err := ComputeMonthEnds("UTC", "2024-01", "2024-02", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"2024-01-31T23:59:59.000Z", "2024-02-29T23:59:59.000Z"}
	assert.Equal(t, want, got)
}

func TestComputeMonthEndsExplicitISOMatchesDefault(t *testing.T) {
	def, err := ComputeMonthEnds("Asia/Shanghai", "2024-01", "2024-03", "")
	require.NoError(t, err)
	iso, err := ComputeMonthEnds("Asia/Shanghai", "2024-01", "2024-03", ISOFormat)
	require.NoError(t, err)

	assert.Equal(t, def, iso)
	assert.Equal(t, "2024-01-31T15:59:59.000Z", iso[0])
}

func TestComputeMonthEndsLengthMatchesInclusiveMonthCount(t *testing.T) {
	tests := []struct {
		from, to string
		want     int
	}{
		{"2024-01", "2024-01", 1},
		{"2024-01", "2024-12", 12},
		{"2023-11", "2024-02", 4},
		{"2020-01", "2024-12", 60},
	}

	for _, tt := range tests {
		got, err := ComputeMonthEnds("Europe/Berlin", tt.from, tt.to, ISOFormat)
		if err != nil {
			t.Fatalf("%s..%s: unexpected error: %v", tt.from, tt.to, err)
		}
		if len(got) != tt.want {
			t.Errorf("%s..%s: len = %d, want %d", tt.from, tt.to, len(got), tt.want)
		}
	}
}

func TestComputeMonthEndsFromAfterToIsEmpty(t *testing.T) {
	for _, r := range [][2]string{{"2024-03", "2024-01"}, {"2025-01", "2024-12"}} {
		got, err := ComputeMonthEnds("UTC", r[0], r[1], ISOFormat)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestComputeMonthEndsISORoundTrip(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	got, err := ComputeMonthEnds("America/Sao_Paulo", "2018-10", "2019-03", ISOFormat)
	require.NoError(t, err)
	require.Len(t, got, 6)

	ym := domain.YearMonth{Year: 2018, Month: time.October}
	for _, s := range got {
		parsed, err := time.Parse(time.RFC3339Nano, s)
		require.NoError(t, err, s)

		want := ym.Next().FirstDay(loc).Add(-time.Second)
		assert.True(t, parsed.Equal(want), "%s != %s", parsed, want.UTC())
		ym = ym.Next()
	}
}

func TestComputeMonthEndsLeapYears(t *testing.T) {
	for _, tz := range []string{"UTC", "Asia/Tokyo"} {
		leap, err := ComputeMonthEnds(tz, "2024-02", "2024-02", "YYYY-MM-DD")
		require.NoError(t, err)
		assert.Equal(t, []string{"2024-02-29"}, leap, tz)

		common, err := ComputeMonthEnds(tz, "2023-02", "2023-02", "YYYY-MM-DD")
		require.NoError(t, err)
		assert.Equal(t, []string{"2023-02-28"}, common, tz)
	}
}

func TestComputeMonthEndsTimezoneSensitivity(t *testing.T) {
	tokyo, err := ComputeMonthEnds("Asia/Tokyo", "2024-01", "2024-01", ISOFormat)
	require.NoError(t, err)
	newYork, err := ComputeMonthEnds("America/New_York", "2024-01", "2024-01", ISOFormat)
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-01-31T14:59:59.000Z"}, tokyo)
	assert.Equal(t, []string{"2024-02-01T04:59:59.000Z"}, newYork)
	assert.NotEqual(t, tokyo, newYork)
}

func TestComputeMonthEndsFollowsDaylightSaving(t *testing.T) {
	got, err := ComputeMonthEnds("America/New_York", "2024-02", "2024-04", ISOFormat)
	require.NoError(t, err)

	// EST until March 10, EDT afterwards.
	want := []string{
		"2024-03-01T04:59:59.000Z",
		"2024-04-01T03:59:59.000Z",
		"2024-05-01T03:59:59.000Z",
	}
	assert.Equal(t, want, got)
}

func TestComputeMonthEndsFullYearDaysInMonth(t *testing.T) {
	got, err := ComputeMonthEnds("UTC", "2024-01", "2024-12", "dd")
	require.NoError(t, err)

	want := []string{"31", "29", "31", "30", "31", "30", "31", "31", "30", "31", "30", "31"}
	assert.Equal(t, want, got)
}

func TestComputeMonthEndsFormats(t *testing.T) {
	tests := []struct {
		tz, format, want string
	}{
		{"UTC", "YYYY-MM-DD", "2024-01-31"},
		{"UTC", "YYYY/MM/DD", "2024/01/31"},
		{"UTC", "DD-MM-YYYY", "31-01-2024"},
		{"UTC", "DD/MM/YYYY", "31/01/2024"},
		{"UTC", "MM-DD-YYYY", "01-31-2024"},
		{"UTC", "MM/DD/YYYY", "01/31/2024"},
		{"UTC", "YYYY-MM-DD HH:mm:ss", "2024-01-31 23:59:59"},
		{"UTC", "YYYY-MM-DDTHH:mm:ss", "2024-01-31T23:59:59"},
		{"UTC", "YYYY-MM-DDTHH:mm:ssZ", "2024-01-31T23:59:59Z"},
		{"UTC", "%Y-%m-%d", "2024-01-31"},
		{"UTC", "%d/%m/%Y", "31/01/2024"},
		{"UTC", "%m/%d/%Y", "01/31/2024"},
		{"Asia/Shanghai", "%Y-%m-%d %H:%M:%S", "2024-01-31 15:59:59"},
		{"UTC", "yyyy.MM", "2024.01"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, err := ComputeMonthEnds(tt.tz, "2024-01", "2024-01", tt.format)
			require.NoError(t, err)
			assert.Equal(t, []string{tt.want}, got)
		})
	}
}

func TestComputeMonthEndsRejectsMalformedMonths(t *testing.T) {
	tests := []struct{ from, to string }{
		{"2024", "2024-01"},
		{"2024-01", "2024"},
		{"2024-01-01", "2024-02"},
		{"2024-1", "2024-02"},
		{"2024-13", "2024-12"},
	}

	for _, tt := range tests {
		_, err := ComputeMonthEnds("UTC", tt.from, tt.to, ISOFormat)
		if !errors.Is(err, domain.ErrInvalidMonth) {
			t.Errorf("%s..%s: err = %v, want ErrInvalidMonth", tt.from, tt.to, err)
		}
	}
}

func TestComputeMonthEndsUnknownTimezone(t *testing.T) {
	_, err := ComputeMonthEnds("Mars/Olympus_Mons", "2024-01", "2024-01", ISOFormat)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConversion)
}

func TestComputeMonthEndsEmptyRenderIsConversionError(t *testing.T) {
	_, err := ComputeMonthEnds("UTC", "2024-01", "2024-01", "'")
	assert.ErrorIs(t, err, domain.ErrConversion)
}
