package pipeline

import "testing"

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		version string
		ok      bool
	}{
		{"0.4.5", false},
		{"0.4.99", false}, // lower bound is exclusive
		{"0.4.100", true},
		{"0.5.0", true},
		{"0.5.0-next.2", true},
		{"0.5.0-next.3", false},
		{"0.5.0-next.1", true},
		{"0.5.1", false},
		{"0.6.0", false},
		{"1.0.0", false},
		{"garbage", false},
		{"", false},
	}
	for _, tt := range tests {
		name := tt.version
		if name == "" {
			name = "empty"
		}
		t.Run(name, func(t *testing.T) {
			err := CheckVersion(tt.version)
			if tt.ok && err != nil {
				t.Errorf("CheckVersion(%q) = %v, want accept", tt.version, err)
			}
			if !tt.ok && err == nil {
				t.Errorf("CheckVersion(%q) accepted, want reject", tt.version)
			}
		})
	}
}
