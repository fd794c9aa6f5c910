package language

import (
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"pt", false},
		{"en", false},
		{"pt-BR", false},
		{"zh-Hans", false},
		{"en-US", false},
		{"", true},
		{" ", true},
		{"not a language", true},
		{"12", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := Validate(tt.input)
			if tt.wantErr && err == nil {
				t.Fatalf("Validate(%q) = nil, want error", tt.input)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("Validate(%q) returned error: %v", tt.input, err)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"en", "English"},
		{"EN", "English"},
		{"pt", "Portuguese"},
		{"es", "Spanish"},
		{"de", "German"},
		{"ja", "Japanese"},
		{"tr", "Turkish"},
		{"", "Unknown"},
		{"!!", "!!"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := DisplayName(tt.input); got != tt.expected {
				t.Errorf("DisplayName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDedupeList(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"nil", nil, nil},
		{"empty", []string{}, nil},
		{"blank only", []string{" ", ""}, nil},
		{"single", []string{"pt"}, []string{"pt"}},
		{"dedup", []string{"pt", "pt", "en"}, []string{"pt", "en"}},
		{"keeps order", []string{"en", "pt"}, []string{"en", "pt"}},
		{"keeps case", []string{"zh-Hans", "pt-BR"}, []string{"zh-Hans", "pt-BR"}},
		{"strips whitespace", []string{" pt ", "en"}, []string{"pt", "en"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DedupeList(tt.input)
			if len(result) != len(tt.expected) {
				t.Fatalf("DedupeList(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("DedupeList(%v)[%d] = %q, want %q", tt.input, i, result[i], tt.expected[i])
				}
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList([]string{"pt,en", " es ", "en"})
	want := []string{"pt", "en", "es"}
	if len(got) != len(want) {
		t.Fatalf("SplitList = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SplitList[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
