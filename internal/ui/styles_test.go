package ui

import (
	"strings"
	"testing"
)

func TestFormatAppHeader(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		subtitle string
	}{
		{name: "title only", title: "MONITORS"},
		{name: "with subtitle", title: "DOCTOR", subtitle: "/home/me/.config/tabletray/tabletray.toml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatAppHeader(tt.title, tt.subtitle)
			if !strings.Contains(got, tt.title) {
				t.Errorf("FormatAppHeader() missing title %q", tt.title)
			}
			if tt.subtitle != "" && !strings.Contains(got, tt.subtitle) {
				t.Errorf("FormatAppHeader() missing subtitle %q", tt.subtitle)
			}
		})
	}
}

func TestFormatCheckIcons(t *testing.T) {
	if got := FormatCheck(true, "xrandr", ""); !strings.Contains(got, IconSuccess) {
		t.Errorf("FormatCheck(true) = %q, want success icon", got)
	}
	if got := FormatCheck(false, "xrandr", ""); !strings.Contains(got, IconError) {
		t.Errorf("FormatCheck(false) = %q, want error icon", got)
	}
}
