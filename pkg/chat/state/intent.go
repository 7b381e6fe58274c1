package state

// Intent is the closed set of request types the assistant understands.
type Intent string

const (
	IntentAnalyzeHouse    Intent = "ANALYZE_HOUSE"
	IntentComparePeople   Intent = "COMPARE_PEOPLE"
	IntentLookupItem      Intent = "LOOKUP_ITEM"
	IntentLookupDirection Intent = "LOOKUP_DIRECTION"
	IntentLookupNamSinh   Intent = "LOOKUP_NAMSINH"
	IntentLookupLoanDau   Intent = "LOOKUP_LOANDAU"
	IntentGreeting        Intent = "GREETING"
	IntentUnknown         Intent = "UNKNOWN"
	IntentError           Intent = "ERROR"
)

var validIntents = map[Intent]bool{
	IntentAnalyzeHouse:    true,
	IntentComparePeople:   true,
	IntentLookupItem:      true,
	IntentLookupDirection: true,
	IntentLookupNamSinh:   true,
	IntentLookupLoanDau:   true,
	IntentGreeting:        true,
	IntentUnknown:         true,
	IntentError:           true,
}

// IsValid reports whether the value is one of the known intents.
func (i Intent) IsValid() bool {
	return validIntents[i]
}

// IsWorkflow reports whether the intent runs a lookup workflow,
// as opposed to a canned reply or an error path.
func (i Intent) IsWorkflow() bool {
	switch i {
	case IntentAnalyzeHouse, IntentComparePeople, IntentLookupItem,
		IntentLookupDirection, IntentLookupNamSinh, IntentLookupLoanDau:
		return true
	}
	return false
}
