// Package canchi converts between solar years and the Vietnamese
// sexagenary calendar: heavenly stems (thiên can), earthly branches
// (địa chi) and the zodiac names people use for their birth year.
package canchi

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ReferenceYear is a known Giáp Tý year anchoring the 60-year cycle.
const ReferenceYear = 1984

// The supported year window for alias resolution. Outside it the data
// tables have no rows anyway.
const (
	WindowStart = 1924
	WindowEnd   = 2043
)

var ThienCan = []string{"Giáp", "Ất", "Bính", "Đinh", "Mậu", "Kỷ", "Canh", "Tân", "Nhâm", "Quý"}

var DiaChi = []string{"Tý", "Sửu", "Dần", "Mão", "Thìn", "Tỵ", "Ngọ", "Mùi", "Thân", "Dậu", "Tuất", "Hợi"}

// aliasToChi maps colloquial zodiac names onto their canonical branch.
var aliasToChi = map[string]string{
	"chuột": "Tý",
	"tí":    "Tý",
	"tý":    "Tý",
	"trâu":  "Sửu",
	"sửu":   "Sửu",
	"cọp":   "Dần",
	"hổ":    "Dần",
	"dần":   "Dần",
	"mèo":   "Mão",
	"mẹo":   "Mão",
	"mão":   "Mão",
	"rồng":  "Thìn",
	"thìn":  "Thìn",
	"rắn":   "Tỵ",
	"tỵ":    "Tỵ",
	"ngựa":  "Ngọ",
	"ngọ":   "Ngọ",
	"dê":    "Mùi",
	"mùi":   "Mùi",
	"khỉ":   "Thân",
	"thân":  "Thân",
	"gà":    "Dậu",
	"dậu":   "Dậu",
	"chó":   "Tuất",
	"tuất":  "Tuất",
	"heo":   "Hợi",
	"lợn":   "Hợi",
	"hợi":   "Hợi",
}

var wordSplitter = regexp.MustCompile(`[\s\p{P}]+`)

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// Designation returns the stem and branch of a solar year.
func Designation(year int) (can string, chi string) {
	offset := year - ReferenceYear
	return ThienCan[mod(offset, 10)], DiaChi[mod(offset, 12)]
}

// DesignationName returns the full name, e.g. "Giáp Tý" for 1984.
func DesignationName(year int) string {
	can, chi := Designation(year)
	return can + " " + chi
}

// Resolver turns birth-year aliases into concrete years. The current
// time is injectable so "most recent occurrence" is testable.
type Resolver struct {
	now func() time.Time
}

func NewResolver() *Resolver {
	return &Resolver{now: time.Now}
}

func NewResolverAt(now func() time.Time) *Resolver {
	return &Resolver{now: now}
}

// ResolveToYear resolves an alias that identifies exactly one year:
// a full can-chi designation (most recent past occurrence) or a
// two-digit shorthand like "91". Zodiac-only aliases are ambiguous
// and return false; use ResolveToYearList for those.
func (r *Resolver) ResolveToYear(alias string) (int, bool) {
	alias = strings.TrimSpace(alias)
	if alias == "" {
		return 0, false
	}

	if year, ok := r.resolveShorthand(alias); ok {
		return year, true
	}

	tokens := wordSplitter.Split(alias, -1)
	var canIdx, chiIdx = -1, -1
	for _, token := range tokens {
		if token == "" {
			continue
		}
		if i := indexOfFold(ThienCan, token); i >= 0 && canIdx < 0 {
			canIdx = i
			continue
		}
		if i := indexOfFold(DiaChi, token); i >= 0 {
			chiIdx = i
		}
	}
	if canIdx < 0 || chiIdx < 0 {
		return 0, false
	}

	// Walk back from the current year to the latest year matching both
	// the stem and the branch.
	currentYear := r.now().Year()
	for year := currentYear; year >= WindowStart; year-- {
		offset := year - ReferenceYear
		if mod(offset, 10) == canIdx && mod(offset, 12) == chiIdx {
			return year, true
		}
	}
	return 0, false
}

// resolveShorthand expands "91" to 1991 and "05" to 2005. Only exactly
// two digits qualify; a shorthand above the current year's tail belongs
// to the previous century.
func (r *Resolver) resolveShorthand(alias string) (int, bool) {
	if len(alias) != 2 {
		return 0, false
	}
	short, err := strconv.Atoi(alias)
	if err != nil || short < 0 {
		return 0, false
	}
	currentTail := r.now().Year() % 100
	if short > currentTail {
		return 1900 + short, true
	}
	return 2000 + short, true
}

// ResolveToYearList expands a zodiac-only alias ("tuổi chuột") into every
// matching year in the supported window, ascending. Empty when no token
// names a zodiac animal.
func (r *Resolver) ResolveToYearList(alias string) []int {
	var chi string
	for _, token := range wordSplitter.Split(strings.TrimSpace(alias), -1) {
		if token == "" {
			continue
		}
		if mapped, ok := aliasToChi[strings.ToLower(token)]; ok {
			chi = mapped
			break
		}
	}
	if chi == "" {
		return nil
	}

	chiIdx := indexOfFold(DiaChi, chi)
	var years []int
	for year := WindowStart; year <= WindowEnd; year++ {
		if mod(year-ReferenceYear, 12) == chiIdx {
			years = append(years, year)
		}
	}
	return years
}

func indexOfFold(list []string, v string) int {
	for i, item := range list {
		if strings.EqualFold(item, v) {
			return i
		}
	}
	return -1
}
