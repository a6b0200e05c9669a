package source

import "testing"

func TestSpan_Empty(t *testing.T) {
	tests := []struct {
		name string
		span Span
		want bool
	}{
		{"zero length", Span{File: 1, Start: 5, End: 5}, true},
		{"non-zero length", Span{File: 1, Start: 5, End: 6}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.Empty(); got != tt.want {
				t.Errorf("Empty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpan_Len(t *testing.T) {
	s := Span{File: 1, Start: 10, End: 25}
	if got := s.Len(); got != 15 {
		t.Errorf("Len() = %d, want 15", got)
	}
}

func TestSpan_String(t *testing.T) {
	s := Span{File: 2, Start: 3, End: 9}
	if got, want := s.String(), "2:3-9"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSpan_Cover(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Span
		expected Span
	}{
		{
			name:     "b fully inside a",
			a:        Span{File: 1, Start: 0, End: 20},
			b:        Span{File: 1, Start: 5, End: 10},
			expected: Span{File: 1, Start: 0, End: 20},
		},
		{
			name:     "b extends past the right edge",
			a:        Span{File: 1, Start: 0, End: 10},
			b:        Span{File: 1, Start: 5, End: 20},
			expected: Span{File: 1, Start: 0, End: 20},
		},
		{
			name:     "b extends past the left edge",
			a:        Span{File: 1, Start: 10, End: 20},
			b:        Span{File: 1, Start: 0, End: 15},
			expected: Span{File: 1, Start: 0, End: 20},
		},
		{
			name:     "different files are not covered",
			a:        Span{File: 1, Start: 0, End: 10},
			b:        Span{File: 2, Start: 0, End: 30},
			expected: Span{File: 1, Start: 0, End: 10},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.expected {
				t.Errorf("Cover() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}
