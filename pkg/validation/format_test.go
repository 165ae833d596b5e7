package validation

import (
	"strings"
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		expectErr bool
	}{
		{
			name:      "Valid pretty format",
			format:    "pretty",
			expectErr: false,
		},
		{
			name:      "Valid csv format",
			format:    "csv",
			expectErr: false,
		},
		{
			name:      "Valid json format",
			format:    "json",
			expectErr: false,
		},
		{
			name:      "Empty format",
			format:    "",
			expectErr: true,
		},
		{
			name:      "Case sensitive - uppercase",
			format:    "PRETTY",
			expectErr: true,
		},
		{
			name:      "Leading/trailing spaces",
			format:    " pretty ",
			expectErr: true,
		},
		{
			name:      "XML format not supported",
			format:    "xml",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)

			if tt.expectErr {
				if err == nil {
					t.Errorf("ValidateOutputFormat(%s) expected error but got none", tt.format)
				}
			} else {
				if err != nil {
					t.Errorf("ValidateOutputFormat(%s) unexpected error = %v", tt.format, err)
				}
			}
		})
	}
}

func TestValidateOutputFormatErrorMessage(t *testing.T) {
	err := ValidateOutputFormat("yaml")
	if err == nil {
		t.Fatal("expected error for yaml format")
	}
	if !strings.Contains(err.Error(), "yaml") {
		t.Errorf("expected error to mention the format, got %q", err.Error())
	}
}

func TestValidateDeclineRate(t *testing.T) {
	tests := []struct {
		name      string
		rate      float64
		expectErr bool
	}{
		{"Zero decline", 0, false},
		{"Mild", 0.10, false},
		{"Severe", 0.30, false},
		{"Almost total", 0.999, false},
		{"Total loss", 1, true},
		{"Growth", -0.05, true},
		{"Above one", 1.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDeclineRate("scenario", tt.rate)
			if tt.expectErr && err == nil {
				t.Errorf("ValidateDeclineRate(%v) expected error but got none", tt.rate)
			}
			if !tt.expectErr && err != nil {
				t.Errorf("ValidateDeclineRate(%v) unexpected error = %v", tt.rate, err)
			}
		})
	}
}
