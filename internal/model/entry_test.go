package model

import "testing"

func TestNewVideoEntry(t *testing.T) {
	valid := NewVideoEntry("https://youtu.be/oHg5SJYRHA0", "oHg5SJYRHA0")
	if !valid.Valid {
		t.Error("Expected entry with video ID to be valid")
	}

	invalid := NewVideoEntry("notaurl", "")
	if invalid.Valid {
		t.Error("Expected entry without video ID to be invalid")
	}
	if invalid.Original != "notaurl" {
		t.Errorf("Expected original to be preserved, got '%s'", invalid.Original)
	}
}

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name    string
		entries []VideoEntry
		want    RunStats
	}{
		{
			name:    "empty input",
			entries: nil,
			want:    RunStats{},
		},
		{
			name: "mixed entries",
			entries: []VideoEntry{
				NewVideoEntry("dQw4w9WgXcQ", "dQw4w9WgXcQ"),
				NewVideoEntry("https://youtu.be/oHg5SJYRHA0", "oHg5SJYRHA0"),
				NewVideoEntry("notaurl", ""),
			},
			want: RunStats{Total: 3, Valid: 2, Invalid: 1},
		},
		{
			name: "only invalid",
			entries: []VideoEntry{
				NewVideoEntry("foo", ""),
				NewVideoEntry("bar", ""),
			},
			want: RunStats{Total: 2, Valid: 0, Invalid: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeStats(tt.entries)
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
			if got.Valid+got.Invalid != got.Total {
				t.Errorf("valid + invalid != total: %+v", got)
			}
		})
	}
}

func TestValidEntries_PreservesOrder(t *testing.T) {
	entries := []VideoEntry{
		NewVideoEntry("a", "aaaaaaaaaaa"),
		NewVideoEntry("x", ""),
		NewVideoEntry("b", "bbbbbbbbbbb"),
		NewVideoEntry("c", "ccccccccccc"),
	}

	valid := ValidEntries(entries)
	if len(valid) != 3 {
		t.Fatalf("Expected 3 valid entries, got %d", len(valid))
	}

	expected := []string{"aaaaaaaaaaa", "bbbbbbbbbbb", "ccccccccccc"}
	for i, id := range expected {
		if valid[i].VideoID != id {
			t.Errorf("entry %d: expected %s, got %s", i, id, valid[i].VideoID)
		}
	}
}
