package cli

import (
	"strings"
	"testing"
)

func TestValidateInput_Generate(t *testing.T) {
	tests := []struct {
		name    string
		input   generateInput
		wantErr string
	}{
		{name: "valid", input: generateInput{Category: "Cartons", Count: 5, MaxBatch: 100}},
		{name: "at max", input: generateInput{Category: "Cartons", Count: 100, MaxBatch: 100}},
		{name: "missing category", input: generateInput{Count: 5, MaxBatch: 100}, wantErr: "category"},
		{name: "zero count", input: generateInput{Category: "Cartons", Count: 0, MaxBatch: 100}, wantErr: "count"},
		{name: "over max batch", input: generateInput{Category: "Cartons", Count: 101, MaxBatch: 100}, wantErr: "count must be at most the configured max_batch"},
		{name: "non-printable prefix", input: generateInput{Category: "Custom", Prefix: "SB\tX", Count: 1, MaxBatch: 100}, wantErr: "prefix"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateInput(tt.input)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateInput_History(t *testing.T) {
	if err := validateInput(historyInput{Limit: 20}); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if err := validateInput(historyInput{Limit: -1}); err == nil {
		t.Error("expected error for negative limit")
	}
}
