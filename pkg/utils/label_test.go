package utils

import "testing"

func TestMergeLabel(t *testing.T) {
	tests := []struct {
		name     string
		existing Label
		incoming Label
		want     Label
	}{
		{
			name:     "accumulates value and source",
			existing: Label{Value: "tfidf", Source: "match"},
			incoming: Label{Value: "expr", Source: "filter"},
			want:     Label{Value: "tfidf|expr", Source: "match,filter"},
		},
		{
			name:     "empty existing yields incoming",
			existing: Label{},
			incoming: Label{Value: "tfidf", Source: "match"},
			want:     Label{Value: "tfidf", Source: "match"},
		},
		{
			name:     "empty incoming keeps existing",
			existing: Label{Value: "tfidf", Source: "match"},
			incoming: Label{},
			want:     Label{Value: "tfidf", Source: "match"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MergeLabel(tt.existing, tt.incoming); got != tt.want {
				t.Errorf("MergeLabel() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
