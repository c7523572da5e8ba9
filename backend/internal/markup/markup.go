// Package markup renders post content as sanitized HTML.
package markup

import (
	"bytes"
	"strings"

	"github.com/itchan-dev/bulletin/shared/logger"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	strict *bluemonday.Policy
}

func New() *Renderer {
	md := goldmark.New(
		// raw html is passed through and left to the sanitizer
		goldmark.WithRendererOptions(html.WithUnsafe(), html.WithHardWraps()),
		goldmark.WithExtensions(extension.Strikethrough, extension.Linkify),
	)

	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)

	return &Renderer{md: md, policy: policy, strict: bluemonday.StrictPolicy()}
}

// Render converts markdown to HTML safe to embed in a page.
// Content that fails to render comes back as escaped plain text.
func (r *Renderer) Render(content string) string {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(content), &buf); err != nil {
		logger.Log.Warn("failed to render markdown", "error", err)
		return r.strict.Sanitize(content)
	}
	return strings.TrimSpace(r.policy.Sanitize(buf.String()))
}
