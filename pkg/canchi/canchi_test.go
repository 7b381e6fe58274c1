package canchi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(year int) func() time.Time {
	return func() time.Time {
		return time.Date(year, 6, 1, 0, 0, 0, 0, time.UTC)
	}
}

func TestDesignation(t *testing.T) {
	tests := []struct {
		year int
		want string
	}{
		{1984, "Giáp Tý"},
		{1986, "Bính Dần"},
		{1988, "Mậu Thìn"},
		{1990, "Canh Ngọ"},
		{1991, "Tân Mùi"},
		{2000, "Canh Thìn"},
		{2024, "Giáp Thìn"},
		{1924, "Giáp Tý"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DesignationName(tt.year), "year %d", tt.year)
	}
}

func TestDesignationRoundTrip(t *testing.T) {
	// Every year in the window must resolve back to itself as the most
	// recent occurrence when "today" is that same year.
	for year := WindowStart; year <= WindowEnd; year++ {
		resolver := NewResolverAt(fixedClock(year))
		resolved, ok := resolver.ResolveToYear(DesignationName(year))
		require.True(t, ok, "year %d", year)
		assert.Equal(t, year, resolved)
	}
}

func TestResolveToYearCanChi(t *testing.T) {
	resolver := NewResolverAt(fixedClock(2024))

	tests := []struct {
		alias string
		want  int
	}{
		{"Bính Dần", 1986},
		{"bính dần", 1986},
		{"Kỷ Tỵ", 1989},
		{"Ất Tỵ", 1965},
		{"tuổi Nhâm Thân", 1992},
	}

	for _, tt := range tests {
		got, ok := resolver.ResolveToYear(tt.alias)
		require.True(t, ok, "alias %q", tt.alias)
		assert.Equal(t, tt.want, got, "alias %q", tt.alias)
	}
}

func TestResolveToYearShorthand(t *testing.T) {
	resolver := NewResolverAt(fixedClock(2024))

	tests := []struct {
		alias string
		want  int
	}{
		{"91", 1991},
		{"05", 2005},
		{"24", 2024},
		{"25", 1925},
	}

	for _, tt := range tests {
		got, ok := resolver.ResolveToYear(tt.alias)
		require.True(t, ok, "alias %q", tt.alias)
		assert.Equal(t, tt.want, got, "alias %q", tt.alias)
	}
}

func TestResolveToYearNoMatch(t *testing.T) {
	resolver := NewResolverAt(fixedClock(2024))

	// Shorthands are exactly two digits: "5" and "1991" stay ambiguous.
	for _, alias := range []string{"", "tuổi chuột", "hello world", "Bính", "Dần", "5", "1991", "-5"} {
		_, ok := resolver.ResolveToYear(alias)
		assert.False(t, ok, "alias %q", alias)
	}
}

func TestResolveToYearList(t *testing.T) {
	resolver := NewResolverAt(fixedClock(2024))

	years := resolver.ResolveToYearList("tuổi chuột")

	require.NotEmpty(t, years)
	assert.Contains(t, years, 1984)
	assert.Contains(t, years, 1996)
	assert.Contains(t, years, 2008)
	for _, year := range years {
		_, chi := Designation(year)
		assert.Equal(t, "Tý", chi)
	}
	assert.IsIncreasing(t, years)
}

func TestResolveToYearListUnknown(t *testing.T) {
	resolver := NewResolverAt(fixedClock(2024))
	assert.Empty(t, resolver.ResolveToYearList("không có con gì"))
}
