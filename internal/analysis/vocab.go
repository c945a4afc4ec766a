package analysis

import (
	"encoding/json"
	"slices"
)

// ContractType identifies the kind of contract under analysis.
type ContractType string

// Valid contract types. TypeAuto asks the analyst model to detect the type.
const (
	TypeAuto        ContractType = "auto"
	TypeGeneralSale ContractType = "general_sale"
	TypeService     ContractType = "service"
	TypeRealEstate  ContractType = "real_estate"
	TypeEmployment  ContractType = "employment"
	TypeNDA         ContractType = "nda"
	TypeOther       ContractType = "other"
)

var contractTypes = []ContractType{
	TypeAuto,
	TypeGeneralSale,
	TypeService,
	TypeRealEstate,
	TypeEmployment,
	TypeNDA,
	TypeOther,
}

// Focus is a risk category the analysis should emphasize.
type Focus string

// Valid focus tags. Each maps to one key of the risk breakdown.
const (
	FocusUnfavorableTerms Focus = "unfavorable_terms"
	FocusAmbiguity        Focus = "ambiguity"
	FocusLegalRisk        Focus = "legal_risk"
	FocusTimeline         Focus = "performance_timeline"
	FocusTermination      Focus = "termination_liquidated_damages"
)

var focuses = []Focus{
	FocusUnfavorableTerms,
	FocusAmbiguity,
	FocusLegalRisk,
	FocusTimeline,
	FocusTermination,
}

// Focuses returns the list of valid focus tags.
func Focuses() []Focus {
	return focuses
}

// Perspective is the stance from which risk should be framed.
type Perspective string

// Valid analysis perspectives.
const (
	PerspectiveNeutral         Perspective = "neutral"
	PerspectivePartyA          Perspective = "party_a"
	PerspectivePartyB          Perspective = "party_b"
	PerspectiveBuyer           Perspective = "buyer"
	PerspectiveSeller          Perspective = "seller"
	PerspectiveServiceProvider Perspective = "service_provider"
	PerspectiveClient          Perspective = "client"
	PerspectiveEmployer        Perspective = "employer"
	PerspectiveEmployee        Perspective = "employee"
)

var perspectives = []Perspective{
	PerspectiveNeutral,
	PerspectivePartyA,
	PerspectivePartyB,
	PerspectiveBuyer,
	PerspectiveSeller,
	PerspectiveServiceProvider,
	PerspectiveClient,
	PerspectiveEmployer,
	PerspectiveEmployee,
}

// Jurisdiction identifies the governing legal territory.
type Jurisdiction string

// Valid jurisdictions.
const (
	JurisdictionKR     Jurisdiction = "KR"
	JurisdictionUS     Jurisdiction = "US"
	JurisdictionEU     Jurisdiction = "EU"
	JurisdictionJP     Jurisdiction = "JP"
	JurisdictionCN     Jurisdiction = "CN"
	JurisdictionOthers Jurisdiction = "OTHERS"
)

var jurisdictions = []Jurisdiction{
	JurisdictionKR,
	JurisdictionUS,
	JurisdictionEU,
	JurisdictionJP,
	JurisdictionCN,
	JurisdictionOthers,
}

// Language identifies the contract document language.
type Language string

// Valid languages. LanguageAuto asks the analyst model to detect it.
const (
	LanguageAuto Language = "auto"
	LanguageKO   Language = "ko"
	LanguageEN   Language = "en"
	LanguageJA   Language = "ja"
	LanguageZH   Language = "zh"
)

var languages = []Language{
	LanguageAuto,
	LanguageKO,
	LanguageEN,
	LanguageJA,
	LanguageZH,
}

// ReportFormat selects the shape of the generated report.
type ReportFormat string

// Valid report formats.
const (
	FormatBrief       ReportFormat = "brief"
	FormatDetailed    ReportFormat = "detailed"
	FormatNegotiation ReportFormat = "negotiation_points"
)

var reportFormats = []ReportFormat{
	FormatBrief,
	FormatDetailed,
	FormatNegotiation,
}

// PartyRole identifies the requesting party's role in the contract.
type PartyRole string

// Valid party roles for the descriptive request metadata.
const (
	RoleBuyer           PartyRole = "buyer"
	RoleSeller          PartyRole = "seller"
	RoleServiceProvider PartyRole = "service_provider"
	RoleClient          PartyRole = "client"
	RoleEmployer        PartyRole = "employer"
	RoleEmployee        PartyRole = "employee"
	RoleOther           PartyRole = "other"
)

var partyRoles = []PartyRole{
	RoleBuyer,
	RoleSeller,
	RoleServiceProvider,
	RoleClient,
	RoleEmployer,
	RoleEmployee,
	RoleOther,
}

// ContractTypes returns the list of valid contract types.
func ContractTypes() []ContractType {
	return contractTypes
}

// Perspectives returns the list of valid analysis perspectives.
func Perspectives() []Perspective {
	return perspectives
}

// Jurisdictions returns the list of valid jurisdictions.
func Jurisdictions() []Jurisdiction {
	return jurisdictions
}

// Languages returns the list of valid report languages.
func Languages() []Language {
	return languages
}

// ReportFormats returns the list of valid report formats.
func ReportFormats() []ReportFormat {
	return reportFormats
}

// PartyRoles returns the list of valid party roles.
func PartyRoles() []PartyRole {
	return partyRoles
}

// UnmarshalJSON validates that the decoded string is a known contract type.
func (t *ContractType) UnmarshalJSON(data []byte) error {
	return unmarshalMember(data, t, contractTypes, ErrInvalidContractType)
}

// UnmarshalJSON validates that the decoded string is a known focus tag.
func (f *Focus) UnmarshalJSON(data []byte) error {
	return unmarshalMember(data, f, focuses, ErrInvalidFocus)
}

// UnmarshalJSON validates that the decoded string is a known perspective.
func (p *Perspective) UnmarshalJSON(data []byte) error {
	return unmarshalMember(data, p, perspectives, ErrInvalidPerspective)
}

// UnmarshalJSON validates that the decoded string is a known jurisdiction.
func (j *Jurisdiction) UnmarshalJSON(data []byte) error {
	return unmarshalMember(data, j, jurisdictions, ErrInvalidJurisdiction)
}

// UnmarshalJSON validates that the decoded string is a known language.
func (l *Language) UnmarshalJSON(data []byte) error {
	return unmarshalMember(data, l, languages, ErrInvalidLanguage)
}

// UnmarshalJSON validates that the decoded string is a known report format.
func (f *ReportFormat) UnmarshalJSON(data []byte) error {
	return unmarshalMember(data, f, reportFormats, ErrInvalidReportFormat)
}

// UnmarshalJSON validates that the decoded string is a known party role.
func (r *PartyRole) UnmarshalJSON(data []byte) error {
	return unmarshalMember(data, r, partyRoles, ErrInvalidPartyRole)
}

func unmarshalMember[T ~string](data []byte, target *T, valid []T, invalid error) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := T(raw)
	if !slices.Contains(valid, v) {
		return invalid
	}
	*target = v
	return nil
}
