package services

import "testing"

func TestMapDateFormat(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"YYYY-MM-DD", "yyyy-MM-dd"},
		{"DD-MM-YYYY", "dd-MM-yyyy"},
		{"MM-DD-YYYY", "MM-dd-yyyy"},
		{"%Y-%m-%d", "yyyy-MM-dd"},
		{"%Y-%m-%d %H:%M:%S", "yyyy-MM-dd HH:mm:ss"},
		{"YYYY-MM-DDTHH:mm:ssZ", "yyyy-MM-dd'T'HH:mm:ss'Z'"},
		{"ISO", "ISO"},
		{"", "ISO"},
		{"custom-format", "custom-format"},
	}

	for _, tt := range tests {
		if got := MapDateFormat(tt.in); got != tt.want {
			t.Errorf("MapDateFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
