package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestMergeOverlaysNonNilFields(t *testing.T) {
	base := ExtractedEntities{
		NamSinh1:  intPtr(1990),
		GioiTinh1: strPtr("nam"),
	}
	overlay := ExtractedEntities{
		HuongNha: strPtr("Đông Nam"),
	}

	merged := base.Merge(overlay)

	assert.Equal(t, 1990, *merged.NamSinh1)
	assert.Equal(t, "nam", *merged.GioiTinh1)
	assert.Equal(t, "Đông Nam", *merged.HuongNha)
}

func TestMergeOverlayWins(t *testing.T) {
	base := ExtractedEntities{NamSinh1: intPtr(1990)}
	overlay := ExtractedEntities{NamSinh1: intPtr(1992)}

	merged := base.Merge(overlay)

	assert.Equal(t, 1992, *merged.NamSinh1)
}

func TestMergeIsIdempotent(t *testing.T) {
	base := ExtractedEntities{NamSinh1: intPtr(1990)}
	overlay := ExtractedEntities{
		GioiTinh1: strPtr("nữ"),
		HuongNha:  strPtr("Bắc"),
	}

	once := base.Merge(overlay)
	twice := once.Merge(overlay)

	assert.Equal(t, once, twice)
}

func TestMergeDoesNotMutateBase(t *testing.T) {
	base := ExtractedEntities{NamSinh1: intPtr(1990)}
	_ = base.Merge(ExtractedEntities{NamSinh1: intPtr(2000)})

	assert.Equal(t, 1990, *base.NamSinh1)
}

func TestHas(t *testing.T) {
	e := ExtractedEntities{
		NamSinh1: intPtr(1990),
		HuongNha: strPtr("Nam"),
	}

	assert.True(t, e.Has(KeyNamSinh1))
	assert.True(t, e.Has(KeyHuongNha))
	assert.False(t, e.Has(KeyGioiTinh1))
	assert.False(t, e.Has(KeyNamSinh2))
	assert.False(t, e.Has("bogus"))
}

func TestComputeMissing(t *testing.T) {
	tests := []struct {
		name     string
		intent   Intent
		entities ExtractedEntities
		want     []string
	}{
		{
			name:     "analyze house with nothing",
			intent:   IntentAnalyzeHouse,
			entities: ExtractedEntities{},
			want:     []string{KeyNamSinh1, KeyGioiTinh1, KeyHuongNha},
		},
		{
			name:   "analyze house partially filled",
			intent: IntentAnalyzeHouse,
			entities: ExtractedEntities{
				NamSinh1: intPtr(1990),
				HuongNha: strPtr("Nam"),
			},
			want: []string{KeyGioiTinh1},
		},
		{
			name:   "compare with years only still needs genders",
			intent: IntentComparePeople,
			entities: ExtractedEntities{
				NamSinh1: intPtr(1988),
				NamSinh2: intPtr(1992),
			},
			want: []string{KeyGioiTinh1, KeyGioiTinh2},
		},
		{
			name:   "compare complete",
			intent: IntentComparePeople,
			entities: ExtractedEntities{
				NamSinh1:  intPtr(1988),
				GioiTinh1: strPtr("nam"),
				NamSinh2:  intPtr(1992),
				GioiTinh2: strPtr("nữ"),
			},
			want: nil,
		},
		{
			name:     "greeting requires nothing",
			intent:   IntentGreeting,
			entities: ExtractedEntities{},
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cc := NewChatContext("s1")
			cc.Intent = tt.intent
			cc.Entities = tt.entities
			cc.ComputeMissing()
			assert.Equal(t, tt.want, cc.MissingInfo)
		})
	}
}
