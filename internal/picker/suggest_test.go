package picker

import "testing"

func TestSuggest(t *testing.T) {
	candidates := []string{"castle.schematic", "house.schematic", "world.zip"}
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{name: "transposition", input: "castel.schematic", want: "castle.schematic", wantOK: true},
		{name: "case insensitive", input: "WORLD.ZIP", want: "world.zip", wantOK: true},
		{name: "too far", input: "readme.md", wantOK: false},
		{name: "blank", input: "  ", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Suggest(tt.input, candidates)
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("Suggest(%q) = %q,%v want %q,%v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
