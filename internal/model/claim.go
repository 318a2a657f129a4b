package model

// ClaimType categorizes the nature of the claim for research guidance
type ClaimType string

const (
	ClaimTypeProtestArrest       ClaimType = "protest_arrest"       // Protests, detentions, police action
	ClaimTypeAccidentDeath       ClaimType = "accident_death"       // Accidents, fatalities, disasters
	ClaimTypeGovernmentScheme    ClaimType = "government_scheme"    // Welfare schemes, official announcements
	ClaimTypeHeritageEnvironment ClaimType = "heritage_environment" // Monuments, ecology, conservation
	ClaimTypePolitics            ClaimType = "politics"             // Elections, parties, political statements
	ClaimTypeCrime               ClaimType = "crime"                // Criminal incidents and investigations
	ClaimTypeHealthScience       ClaimType = "health_science"       // Medical and scientific claims
	ClaimTypeOther               ClaimType = "other"
)

// GeographicScope indicates how widely a claimed event would be covered
type GeographicScope string

const (
	ScopeLocal         GeographicScope = "local"
	ScopeDistrict      GeographicScope = "district"
	ScopeState         GeographicScope = "state"
	ScopeNational      GeographicScope = "national"
	ScopeInternational GeographicScope = "international"
)

// IsRegional reports whether the scope is below national coverage, where
// absence from major media is not informative.
func (s GeographicScope) IsRegional() bool {
	return s == ScopeLocal || s == ScopeDistrict || s == ScopeState
}

// StructuredClaim is the schema-normalized representation of a raw claim.
// Every field carries a safe default; the structurer back-fills anything the
// upstream model omits. Immutable once produced.
type StructuredClaim struct {
	Statement       string          `json:"statement"`
	ClaimType       ClaimType       `json:"claim_type"`
	GeographicScope GeographicScope `json:"geographic_scope"`
	Location        string          `json:"location"`
	Context         string          `json:"context"`
	Entities        []string        `json:"entities"`
	TimePeriod      string          `json:"time_period"`
	OriginalInput   string          `json:"original_input"`
}

// FallbackClaim builds a minimal structure purely from the literal input,
// used when structuring fails for any reason.
func FallbackClaim(claimText string) StructuredClaim {
	return StructuredClaim{
		Statement:       claimText,
		ClaimType:       ClaimTypeOther,
		GeographicScope: ScopeNational,
		Entities:        []string{},
		OriginalInput:   claimText,
	}
}

// ParseClaimType normalizes an upstream claim type string, defaulting to other.
func ParseClaimType(s string) ClaimType {
	switch ClaimType(s) {
	case ClaimTypeProtestArrest, ClaimTypeAccidentDeath, ClaimTypeGovernmentScheme,
		ClaimTypeHeritageEnvironment, ClaimTypePolitics, ClaimTypeCrime,
		ClaimTypeHealthScience:
		return ClaimType(s)
	default:
		return ClaimTypeOther
	}
}

// ParseScope normalizes an upstream geographic scope string, defaulting to national.
func ParseScope(s string) GeographicScope {
	switch GeographicScope(s) {
	case ScopeLocal, ScopeDistrict, ScopeState, ScopeInternational:
		return GeographicScope(s)
	default:
		return ScopeNational
	}
}
