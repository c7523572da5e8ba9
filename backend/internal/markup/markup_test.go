package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	r := New()

	testCases := []struct {
		name     string
		input    string
		contains []string
		absent   []string
	}{
		{
			name:     "emphasis",
			input:    "*hello* **world**",
			contains: []string{"<em>hello</em>", "<strong>world</strong>"},
		},
		{
			name:     "strikethrough",
			input:    "~~gone~~",
			contains: []string{"<del>gone</del>"},
		},
		{
			name:     "script is stripped",
			input:    "hi <script>alert(1)</script>",
			contains: []string{"hi"},
			absent:   []string{"<script", "alert(1)"},
		},
		{
			name:   "event handlers are stripped",
			input:  `<img src="x.png" onerror="alert(1)">`,
			absent: []string{"onerror"},
		},
		{
			name:     "links get nofollow",
			input:    "see https://example.com",
			contains: []string{`href="https://example.com"`, `rel="nofollow`},
		},
		{
			name:   "javascript urls are dropped",
			input:  "[click](javascript:alert(1))",
			absent: []string{"javascript:"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := r.Render(tc.input)
			for _, s := range tc.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tc.absent {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestRenderEmpty(t *testing.T) {
	assert.Equal(t, "", New().Render(""))
}
