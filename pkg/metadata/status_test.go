package metadata

import (
	"testing"
)

func TestStatusIsValid(t *testing.T) {
	tests := []struct {
		name     string
		status   Status
		expected bool
	}{
		{"available status", StatusAvailable, true},
		{"in use status", StatusInUse, true},
		{"maintenance status", StatusMaintenance, true},
		{"retired status", StatusRetired, true},
		{"lowercase rejected", Status("available"), false},
		{"unknown status", Status("LOST"), false},
		{"empty status", Status(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.IsValid(); got != tt.expected {
				t.Errorf("IsValid() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNewStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid AVAILABLE", "AVAILABLE", false},
		{"valid RETIRED", "RETIRED", false},
		{"invalid lowercase", "in_use", true},
		{"invalid unknown", "BROKEN", true},
		{"invalid empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewStatus(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewStatus() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err == nil && !got.IsValid() {
				t.Errorf("NewStatus() = %v is not valid", got)
			}
		})
	}
}

func TestIsCheckInTarget(t *testing.T) {
	tests := []struct {
		name     string
		status   Status
		expected bool
	}{
		{"available is a return target", StatusAvailable, true},
		{"maintenance is a return target", StatusMaintenance, true},
		{"retired is a return target", StatusRetired, true},
		{"in use is never a return target", StatusInUse, false},
		{"unknown is never a return target", Status("LOST"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.IsCheckInTarget(); got != tt.expected {
				t.Errorf("IsCheckInTarget() = %v, want %v", got, tt.expected)
			}
		})
	}
}
