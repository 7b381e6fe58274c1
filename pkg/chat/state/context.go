package state

import (
	"sync"
	"time"
)

// ToolStatus is the outcome of one tool invocation inside a workflow.
type ToolStatus string

const (
	ToolSuccess         ToolStatus = "success"
	ToolFailedNoData    ToolStatus = "failed_no_data"
	ToolFailedException ToolStatus = "failed_exception"
)

// ToolCallRecord is one entry in the per-turn tool audit trail.
type ToolCallRecord struct {
	Tool     string        `json:"tool"`
	Status   ToolStatus    `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Duration time.Duration `json:"duration"`
}

// ResultKey identifies a workflow result slot. The set is closed so the
// synthesizer never has to guess what a workflow may have stored.
type ResultKey string

const (
	ResultCungMenh1     ResultKey = "cung_menh_1"
	ResultMenh1         ResultKey = "menh_1"
	ResultNapAm1        ResultKey = "nap_am_1"
	ResultCungMenh2     ResultKey = "cung_menh_2"
	ResultMenh2         ResultKey = "menh_2"
	ResultNapAm2        ResultKey = "nap_am_2"
	ResultBatTrachRule  ResultKey = "bat_trach_rule"
	ResultCungViDetail  ResultKey = "cung_vi_detail"
	ResultMenhHuongRule ResultKey = "menh_huong_rule"
	ResultMenhMenhRule  ResultKey = "menh_menh_rule"
	ResultHuong         ResultKey = "huong"
	ResultVatPham       ResultKey = "vat_pham"
	ResultPhiTinh       ResultKey = "phi_tinh"
	ResultSatKhi        ResultKey = "sat_khi"
	ResultCatTuong      ResultKey = "cat_tuong"
	ResultSearchMatch   ResultKey = "search_match"
)

// ChatContext is the full conversation state for one session. It survives
// across turns so a follow-up message can fill in missing entities.
type ChatContext struct {
	SessionID string
	Intent    Intent
	Entities  ExtractedEntities

	// MissingInfo lists entity keys still required before the current
	// intent's workflow can run. Non-empty means the last reply was a
	// clarification question.
	MissingInfo []string

	// YearCandidates holds the possible years when a zodiac-only alias
	// (e.g. "tuổi chuột") matched more than one year in the window.
	// CandidateField names the entity key they would fill.
	YearCandidates []int
	CandidateField string

	// mu guards ToolCalls and Results; workflows may run lookups concurrently.
	mu        sync.Mutex
	ToolCalls []ToolCallRecord
	Results   map[ResultKey]any

	// DirectResponse short-circuits synthesis: greetings, clarification
	// questions and canned fallbacks go here.
	DirectResponse string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewChatContext(sessionID string) *ChatContext {
	now := time.Now()
	return &ChatContext{
		SessionID: sessionID,
		Results:   make(map[ResultKey]any),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ResetTurn clears per-turn scratch state while keeping the session's
// entities and intent for continuation handling.
func (c *ChatContext) ResetTurn() {
	c.ToolCalls = nil
	c.Results = make(map[ResultKey]any)
	c.DirectResponse = ""
	c.YearCandidates = nil
	c.CandidateField = ""
	c.UpdatedAt = time.Now()
}

func (c *ChatContext) RecordTool(tool string, status ToolStatus, detail string, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ToolCalls = append(c.ToolCalls, ToolCallRecord{
		Tool:     tool,
		Status:   status,
		Detail:   detail,
		Duration: duration,
	})
}

func (c *ChatContext) SetResult(key ResultKey, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Results == nil {
		c.Results = make(map[ResultKey]any)
	}
	c.Results[key] = value
}

func (c *ChatContext) Result(key ResultKey) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.Results[key]
	return v, ok
}

// requiredKeys maps each workflow intent to the entities it cannot run without.
var requiredKeys = map[Intent][]string{
	IntentAnalyzeHouse:    {KeyNamSinh1, KeyGioiTinh1, KeyHuongNha},
	IntentComparePeople:   {KeyNamSinh1, KeyGioiTinh1, KeyNamSinh2, KeyGioiTinh2},
	IntentLookupItem:      {KeyVatPham},
	IntentLookupDirection: {KeyHuongNha},
	IntentLookupNamSinh:   {KeyNamSinh1},
	IntentLookupLoanDau:   {KeyKeywordLoanDau},
}

// missingInfoLabels renders entity keys as the Vietnamese phrases used in
// clarification questions.
var missingInfoLabels = map[string]string{
	KeyNamSinh1:       "năm sinh",
	KeyGioiTinh1:      "giới tính",
	KeyHuongNha:       "hướng nhà",
	KeyNamSinh2:       "năm sinh của người thứ hai",
	KeyGioiTinh2:      "giới tính của người thứ hai",
	KeyVatPham:        "tên vật phẩm",
	KeyKeywordLoanDau: "đặc điểm ngoại cảnh cần xem",
}

// ComputeMissing refreshes MissingInfo for the current intent and entities.
func (c *ChatContext) ComputeMissing() {
	c.MissingInfo = nil
	for _, key := range requiredKeys[c.Intent] {
		if !c.Entities.Has(key) {
			c.MissingInfo = append(c.MissingInfo, key)
		}
	}
}

// MissingLabel returns the human phrase for one missing entity key.
func MissingLabel(key string) string {
	if label, ok := missingInfoLabels[key]; ok {
		return label
	}
	return key
}
