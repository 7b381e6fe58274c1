package state

import (
	"testing"
	"time"

	"phongthuy-chatbot-be/pkg/canchi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedResolver() *canchi.Resolver {
	return canchi.NewResolverAt(func() time.Time {
		return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	})
}

func TestResolveFreshIntent(t *testing.T) {
	tracker := NewTracker(fixedResolver(), nil)
	cc := NewChatContext("s1")

	tracker.Resolve(cc, IntentAnalyzeHouse, ExtractedEntities{
		NamSinh1: intPtr(1990),
	})

	assert.Equal(t, IntentAnalyzeHouse, cc.Intent)
	assert.Equal(t, []string{KeyGioiTinh1, KeyHuongNha}, cc.MissingInfo)
}

func TestResolveContinuationMergesEntities(t *testing.T) {
	tracker := NewTracker(fixedResolver(), nil)
	cc := NewChatContext("s1")

	tracker.Resolve(cc, IntentAnalyzeHouse, ExtractedEntities{NamSinh1: intPtr(1990)})
	require.NotEmpty(t, cc.MissingInfo)

	// Follow-up turn classified as something else entirely still fills
	// the pending analysis.
	tracker.Resolve(cc, IntentLookupDirection, ExtractedEntities{
		GioiTinh1: strPtr("nam"),
		HuongNha:  strPtr("Đông Nam"),
	})

	assert.Equal(t, IntentAnalyzeHouse, cc.Intent)
	assert.Empty(t, cc.MissingInfo)
	assert.Equal(t, 1990, *cc.Entities.NamSinh1)
	assert.Equal(t, "Đông Nam", *cc.Entities.HuongNha)
}

func TestResolvePendingGreetingDoesNotBlockNewIntent(t *testing.T) {
	tracker := NewTracker(fixedResolver(), nil)
	cc := NewChatContext("s1")

	// UNKNOWN leaves no open question, so the next turn starts fresh.
	tracker.Resolve(cc, IntentUnknown, ExtractedEntities{})
	tracker.Resolve(cc, IntentLookupDirection, ExtractedEntities{HuongNha: strPtr("Bắc")})

	assert.Equal(t, IntentLookupDirection, cc.Intent)
	assert.Empty(t, cc.MissingInfo)
}

func TestResolveContinuationAbsorbsUnknownTurn(t *testing.T) {
	tracker := NewTracker(fixedResolver(), nil)
	cc := NewChatContext("s1")

	tracker.Resolve(cc, IntentAnalyzeHouse, ExtractedEntities{NamSinh1: intPtr(1990)})
	// "tôi là nam" alone classifies as UNKNOWN, but it answers the question.
	tracker.Resolve(cc, IntentUnknown, ExtractedEntities{GioiTinh1: strPtr("nam")})

	assert.Equal(t, IntentAnalyzeHouse, cc.Intent)
	assert.Equal(t, []string{KeyHuongNha}, cc.MissingInfo)
	assert.Equal(t, "nam", *cc.Entities.GioiTinh1)
}

func TestResolveNoContinuationWhenComplete(t *testing.T) {
	tracker := NewTracker(fixedResolver(), nil)
	cc := NewChatContext("s1")

	tracker.Resolve(cc, IntentLookupDirection, ExtractedEntities{HuongNha: strPtr("Nam")})
	require.Empty(t, cc.MissingInfo)

	tracker.Resolve(cc, IntentLookupItem, ExtractedEntities{VatPham: strPtr("tỳ hưu")})

	assert.Equal(t, IntentLookupItem, cc.Intent)
	assert.Equal(t, "tỳ hưu", *cc.Entities.VatPham)
}

func TestResolveShorthandYear(t *testing.T) {
	tracker := NewTracker(fixedResolver(), nil)
	cc := NewChatContext("s1")

	tracker.Resolve(cc, IntentLookupNamSinh, ExtractedEntities{NamSinh1: intPtr(91)})

	require.NotNil(t, cc.Entities.NamSinh1)
	assert.Equal(t, 1991, *cc.Entities.NamSinh1)
	assert.Empty(t, cc.MissingInfo)
}

func TestResolveCanChiAlias(t *testing.T) {
	tracker := NewTracker(fixedResolver(), nil)
	cc := NewChatContext("s1")

	tracker.Resolve(cc, IntentLookupNamSinh, ExtractedEntities{NamSinhAlias: strPtr("Bính Dần")})

	require.NotNil(t, cc.Entities.NamSinh1)
	assert.Equal(t, 1986, *cc.Entities.NamSinh1)
}

func TestResolveZodiacAliasExposesCandidates(t *testing.T) {
	tracker := NewTracker(fixedResolver(), nil)
	cc := NewChatContext("s1")

	tracker.Resolve(cc, IntentLookupNamSinh, ExtractedEntities{NamSinhAlias: strPtr("tuổi chuột")})

	assert.Nil(t, cc.Entities.NamSinh1)
	assert.Equal(t, KeyNamSinh1, cc.CandidateField)
	assert.NotEmpty(t, cc.YearCandidates)
	assert.Contains(t, cc.YearCandidates, 1984)
	assert.Contains(t, cc.YearCandidates, 1996)
	assert.Equal(t, []string{KeyNamSinh1}, cc.MissingInfo)
}

func TestResolveSecondPersonAlias(t *testing.T) {
	tracker := NewTracker(fixedResolver(), nil)
	cc := NewChatContext("s1")

	tracker.Resolve(cc, IntentComparePeople, ExtractedEntities{
		NamSinh1:      intPtr(1988),
		NamSinhAlias2: strPtr("Nhâm Thân"),
	})

	require.NotNil(t, cc.Entities.NamSinh2)
	assert.Equal(t, 1992, *cc.Entities.NamSinh2)
	assert.Equal(t, []string{KeyGioiTinh1, KeyGioiTinh2}, cc.MissingInfo)
}

func TestResetTurnClearsScratchState(t *testing.T) {
	cc := NewChatContext("s1")
	cc.RecordTool("get_menh", ToolSuccess, "", time.Millisecond)
	cc.SetResult(ResultMenh1, "x")
	cc.DirectResponse = "hello"
	cc.YearCandidates = []int{1990}

	cc.ResetTurn()

	assert.Empty(t, cc.ToolCalls)
	assert.Empty(t, cc.Results)
	assert.Empty(t, cc.DirectResponse)
	assert.Empty(t, cc.YearCandidates)
}
