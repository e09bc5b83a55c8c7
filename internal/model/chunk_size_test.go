package model

import "testing"

func TestParseChunkSize(t *testing.T) {
	tests := []struct {
		input   string
		want    ChunkSize
		wantErr bool
	}{
		{"50", 50, false},
		{" 10 ", 10, false},
		{"1", 1, false},
		{"unlimited", Unlimited, false},
		{"Unlimited", Unlimited, false},
		{"0", 0, true},
		{"-5", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseChunkSize(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseChunkSize(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseChunkSize(%q) = %d, expected %d", tt.input, got, tt.want)
		}
	}
}

func TestChunkSize_String(t *testing.T) {
	if Unlimited.String() != UnlimitedValue {
		t.Errorf("Expected '%s', got '%s'", UnlimitedValue, Unlimited.String())
	}
	if ChunkSize(25).String() != "25" {
		t.Errorf("Expected '25', got '%s'", ChunkSize(25).String())
	}

	for _, preset := range ChunkSizePresets {
		parsed, err := ParseChunkSize(preset.String())
		if err != nil {
			t.Errorf("preset %s does not parse back: %v", preset, err)
			continue
		}
		if parsed != preset {
			t.Errorf("preset %s parsed as %s", preset, parsed)
		}
	}
}
