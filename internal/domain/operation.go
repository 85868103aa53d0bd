package domain

// Operation identifies one exposed tool. The value doubles as the MCP tool
// name advertised to hosts.
type Operation string

const (
	OpFindBusiness          Operation = "find_business"
	OpFindPerson            Operation = "find_person"
	OpSearchBusinesses      Operation = "search_businesses"
	OpSearchPersons         Operation = "search_persons"
	OpSearchLocalBusinesses Operation = "search_local_businesses"
)

// Encoding selects the request body encoding for a provider endpoint. The
// split is part of the provider's documented contract, not a local choice:
// single-query enrichment lookups post form data, multi-filter searches post
// JSON.
type Encoding string

const (
	EncodingForm Encoding = "form"
	EncodingJSON Encoding = "json"
)

// Operations returns the catalog order. Stable across calls; MCP hosts rely
// on discovery being deterministic.
func Operations() []Operation {
	return []Operation{
		OpFindBusiness,
		OpFindPerson,
		OpSearchBusinesses,
		OpSearchPersons,
		OpSearchLocalBusinesses,
	}
}

// Known reports whether the operation is part of the catalog.
func (op Operation) Known() bool {
	return op.Endpoint() != ""
}

// Endpoint returns the provider path for the operation.
func (op Operation) Endpoint() string {
	switch op {
	case OpFindBusiness:
		return "/enc"
	case OpFindPerson:
		return "/tep"
	case OpSearchBusinesses:
		return "/cse"
	case OpSearchPersons:
		return "/pse"
	case OpSearchLocalBusinesses:
		return "/lbs"
	default:
		return ""
	}
}

func (op Operation) Encoding() Encoding {
	switch op {
	case OpFindBusiness, OpFindPerson:
		return EncodingForm
	default:
		return EncodingJSON
	}
}

// Label is the header line of a formatted result.
func (op Operation) Label() string {
	switch op {
	case OpFindBusiness:
		return "Company Enrichment Result"
	case OpFindPerson:
		return "Person Enrichment Result"
	case OpSearchBusinesses:
		return "Company Search Results"
	case OpSearchPersons:
		return "Person Search Results"
	case OpSearchLocalBusinesses:
		return "Local Business Search Results"
	default:
		return string(op)
	}
}

// FailureVerb completes the "Failed to <verb>: <cause>" error text.
func (op Operation) FailureVerb() string {
	switch op {
	case OpFindBusiness:
		return "enrich company"
	case OpFindPerson:
		return "enrich person"
	case OpSearchBusinesses:
		return "search companies"
	case OpSearchPersons:
		return "search persons"
	case OpSearchLocalBusinesses:
		return "search local businesses"
	default:
		return string(op)
	}
}
