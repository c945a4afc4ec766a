package analysis

// FileInfo references an uploaded document. The storage key addresses the
// extracted contract text in the blob store; the remaining fields are opaque
// descriptive metadata from the upload layer.
type FileInfo struct {
	Name       string `json:"name"`
	MimeType   string `json:"mimeType"`
	Size       int64  `json:"size"`
	StorageKey string `json:"storageKey"`
}

// NotificationSettings controls how the caller is notified of results.
type NotificationSettings struct {
	ShowInApp bool   `json:"show_in_app"`
	Email     string `json:"email,omitempty"`
}

// ContractMeta carries optional descriptive metadata about the contract.
type ContractMeta struct {
	ContractTitle    string     `json:"contract_title,omitempty"`
	PartyRole        *PartyRole `json:"party_role,omitempty"`
	CounterpartyName string     `json:"counterparty_name,omitempty"`
	EffectiveDate    string     `json:"effective_date,omitempty"`
	EndDate          string     `json:"end_date,omitempty"`
	Currency         string     `json:"currency,omitempty"`
	TotalValue       *float64   `json:"total_value,omitempty"`
}

// AnalysisRequest is the inbound request for a contract analysis.
type AnalysisRequest struct {
	ContractFile    FileInfo              `json:"contract_file"`
	ContractType    ContractType          `json:"contract_type"`
	AnalysisFocus   []Focus               `json:"analysis_focus"`
	Perspective     Perspective           `json:"analysis_perspective"`
	Jurisdiction    Jurisdiction          `json:"jurisdiction"`
	Language        Language              `json:"language"`
	ReportFormat    ReportFormat          `json:"report_format"`
	ReferenceDocs   []FileInfo            `json:"reference_docs,omitempty"`
	AdditionalTerms string                `json:"additional_terms_text,omitempty"`
	Meta            *ContractMeta         `json:"meta,omitempty"`
	Notification    *NotificationSettings `json:"notification,omitempty"`
	ConsentPrivacy  bool                  `json:"consent_privacy"`
}

// Validate checks the constraints the enum unmarshalers cannot: required
// enum fields must be set and the focus list must be non-empty. It returns
// one error per offending field.
func (r *AnalysisRequest) Validate() []error {
	var errs []error

	if r.ContractType == "" {
		errs = append(errs, ErrInvalidContractType)
	}
	if len(r.AnalysisFocus) == 0 {
		errs = append(errs, ErrEmptyFocus)
	}
	if r.Perspective == "" {
		errs = append(errs, ErrInvalidPerspective)
	}
	if r.Jurisdiction == "" {
		errs = append(errs, ErrInvalidJurisdiction)
	}
	if r.Language == "" {
		errs = append(errs, ErrInvalidLanguage)
	}
	if r.ReportFormat == "" {
		errs = append(errs, ErrInvalidReportFormat)
	}

	return errs
}

// HasFocus reports whether the request asks for emphasis on the given tag.
func (r *AnalysisRequest) HasFocus(f Focus) bool {
	for _, v := range r.AnalysisFocus {
		if v == f {
			return true
		}
	}
	return false
}
