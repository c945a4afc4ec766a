package analysis

import "errors"

// Validation errors for analysis requests.
var (
	ErrInvalidContractType = errors.New("contract_type is not a recognized value")
	ErrInvalidFocus        = errors.New("analysis_focus contains an unrecognized value")
	ErrInvalidPerspective  = errors.New("analysis_perspective is not a recognized value")
	ErrInvalidJurisdiction = errors.New("jurisdiction is not a recognized value")
	ErrInvalidLanguage     = errors.New("language is not a recognized value")
	ErrInvalidReportFormat = errors.New("report_format is not a recognized value")
	ErrInvalidPartyRole    = errors.New("meta.party_role is not a recognized value")
	ErrEmptyFocus          = errors.New("analysis_focus must contain at least one value")
)

// Error codes carried in the response error list.
const (
	CodeNoConsent      = "NO_CONSENT"
	CodeValidation     = "VALIDATION_ERROR"
	CodeAnalysisFailed = "ANALYSIS_FAILED"
)
