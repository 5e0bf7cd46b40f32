package content

import (
	"testing"
)

func TestSplitFrontMatter(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantMeta map[string]any
		wantBody string
	}{
		{
			name:     "yaml block",
			in:       "---\ntitle: Hello\norder: 2\n---\n# Body\n",
			wantMeta: map[string]any{"title": "Hello", "order": 2},
			wantBody: "# Body\n",
		},
		{
			name:     "crlf line endings",
			in:       "---\r\ntitle: Win\r\n---\r\nbody",
			wantMeta: map[string]any{"title": "Win"},
			wantBody: "body",
		},
		{
			name:     "no front matter",
			in:       "# Just markdown\n",
			wantBody: "# Just markdown\n",
		},
		{
			name:     "unterminated fence",
			in:       "---\ntitle: nope\n",
			wantBody: "---\ntitle: nope\n",
		},
		{
			name:     "empty block",
			in:       "---\n---\nbody",
			wantMeta: map[string]any{},
			wantBody: "body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, body, err := SplitFrontMatter([]byte(tt.in))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(body) != tt.wantBody {
				t.Errorf("body: expected %q, got %q", tt.wantBody, string(body))
			}
			if (meta == nil) != (tt.wantMeta == nil) {
				t.Fatalf("meta presence: expected %v, got %v", tt.wantMeta, meta)
			}
			for k, v := range tt.wantMeta {
				if meta[k] != v {
					t.Errorf("meta[%q]: expected %v, got %v", k, v, meta[k])
				}
			}
		})
	}
}
