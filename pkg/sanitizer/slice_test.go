package sanitizer

import (
	"reflect"
	"testing"
)

func TestNormalizeStringSlice(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "collapse whitespace",
			input: []string{" 4 Hours   Coverage ", "Digital Album"},
			want:  []string{"4 Hours Coverage", "Digital Album"},
		},
		{
			name:  "remove duplicates after normalization",
			input: []string{"Drone Shots", "Drone  Shots", " Drone Shots"},
			want:  []string{"Drone Shots"},
		},
		{
			name:  "filter empty strings",
			input: []string{"Digital Album", "", "  ", "Hardcover Album"},
			want:  []string{"Digital Album", "Hardcover Album"},
		},
		{
			name:  "empty input",
			input: []string{},
			want:  []string{},
		},
		{
			name:  "nil input",
			input: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeStringSlice(tt.input, TrimAndNormalize)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeStringSlice(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
