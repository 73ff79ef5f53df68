package textnorm

import (
	"reflect"
	"testing"
)

func TestTitles(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "nil input",
			in:   nil,
			want: []string{},
		},
		{
			name: "case insensitive dedup keeps first casing",
			in:   []string{"Math", "math", " MATH "},
			want: []string{"Math"},
		},
		{
			name: "blank entries dropped",
			in:   []string{"", "   ", "\t"},
			want: []string{},
		},
		{
			name: "insertion order preserved",
			in:   []string{"Geometry", "Algebra", "geometry", "Calculus"},
			want: []string{"Geometry", "Algebra", "Calculus"},
		},
		{
			name: "whitespace trimmed from kept entries",
			in:   []string{"  Linear Algebra  ", "Trigonometry"},
			want: []string{"Linear Algebra", "Trigonometry"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Titles(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Titles(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTitlesIdempotent(t *testing.T) {
	in := []string{" Algebra ", "geometry", "Algebra", "Geometry", ""}
	once := Titles(in)
	twice := Titles(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Titles not idempotent: first %q, second %q", once, twice)
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Math", "math"},
		{" MATH ", "math"},
		{"  Linear Algebra ", "linear algebra"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := Key(tt.in); got != tt.want {
			t.Errorf("Key(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
