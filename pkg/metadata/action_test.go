package metadata

import (
	"testing"
)

func TestActionIsValid(t *testing.T) {
	tests := []struct {
		name     string
		action   Action
		expected bool
	}{
		{"check out action", ActionCheckOut, true},
		{"check in action", ActionCheckIn, true},
		{"lowercase rejected", Action("check_out"), false},
		{"unknown action", Action("TRANSFER"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.action.IsValid(); got != tt.expected {
				t.Errorf("IsValid() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNewAction(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid CHECK_OUT", "CHECK_OUT", false},
		{"valid CHECK_IN", "CHECK_IN", false},
		{"invalid empty", "", true},
		{"invalid unknown", "RETURN", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAction(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewAction() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
