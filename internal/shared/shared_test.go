package shared

import "testing"

func TestNormalizeQuery(t *testing.T) {
	tc := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "basic normalization",
			query: "The Matrix",
			want:  "the matrix",
		},
		{
			name:  "extra whitespace",
			query: "  The   Matrix  ",
			want:  "the matrix",
		},
		{
			name:  "mixed case",
			query: "ThE MaTrIx",
			want:  "the matrix",
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeQuery(tt.query)
			if got != tt.want {
				t.Errorf("NormalizeQuery() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGenerateID(t *testing.T) {
	a := GenerateID()
	b := GenerateID()

	if a == "" || b == "" {
		t.Fatal("expected non-empty ids")
	}
	if a == b {
		t.Error("expected unique ids")
	}
}
