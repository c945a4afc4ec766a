package analysis_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/alisyos/contract-scanner/internal/analysis"
)

func TestContractTypeUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    analysis.ContractType
		wantErr error
	}{
		{"service", `"service"`, analysis.TypeService, nil},
		{"auto detection", `"auto"`, analysis.TypeAuto, nil},
		{"unknown value", `"friendship"`, "", analysis.ErrInvalidContractType},
		{"wrong json type", `42`, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got analysis.ContractType
			err := json.Unmarshal([]byte(tt.input), &got)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error: got %v, want %v", err, tt.wantErr)
				}
				return
			}
			if tt.name == "wrong json type" {
				if err == nil {
					t.Fatal("expected an error for a non-string value")
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEnumUnmarshalRejectsUnknownValues(t *testing.T) {
	cases := []struct {
		name    string
		target  json.Unmarshaler
		wantErr error
	}{
		{"focus", new(analysis.Focus), analysis.ErrInvalidFocus},
		{"perspective", new(analysis.Perspective), analysis.ErrInvalidPerspective},
		{"jurisdiction", new(analysis.Jurisdiction), analysis.ErrInvalidJurisdiction},
		{"language", new(analysis.Language), analysis.ErrInvalidLanguage},
		{"report format", new(analysis.ReportFormat), analysis.ErrInvalidReportFormat},
		{"party role", new(analysis.PartyRole), analysis.ErrInvalidPartyRole},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.target.UnmarshalJSON([]byte(`"bogus"`))
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("error: got %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestVocabularies(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"contract types", len(analysis.ContractTypes()), 7},
		{"focuses", len(analysis.Focuses()), 5},
		{"perspectives", len(analysis.Perspectives()), 9},
		{"jurisdictions", len(analysis.Jurisdictions()), 6},
		{"languages", len(analysis.Languages()), 5},
		{"report formats", len(analysis.ReportFormats()), 3},
		{"party roles", len(analysis.PartyRoles()), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %d values, want %d", tt.got, tt.want)
			}
		})
	}
}
