// Package mailtemplate renders the HTML documents sent by the mailer.
// Output is self-contained: every style is inlined.
package mailtemplate

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"xisms.app/pkg/errors"
)

// CodeTemplateParams holds the values rendered into a one-time code email.
// Intro is optional; an empty Intro omits the intro paragraph.
type CodeTemplateParams struct {
	Code  string
	Intro string
}

// Brand is the sender identity shown in the header and footer.
type Brand struct {
	Name       string
	TermsURL   string
	PrivacyURL string
	ContactURL string
}

// DefaultBrand mirrors the stock configuration.
var DefaultBrand = Brand{
	Name:       "ACME Inc.",
	TermsURL:   "https://example.com/terms",
	PrivacyURL: "https://example.com/privacy",
	ContactURL: "https://example.com/contact",
}

// Renderer turns template parameters into HTML. It holds no mutable state
// and is safe for concurrent use.
type Renderer struct {
	brand Brand
	now   func() time.Time
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithClock overrides the clock used for the footer year.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		r.now = now
	}
}

// NewRenderer creates a renderer for the given brand.
func NewRenderer(brand Brand, opts ...Option) *Renderer {
	r := &Renderer{
		brand: brand,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type layoutData struct {
	Brand   Brand
	Year    int
	Content template.HTML
}

type codeData struct {
	Code  string
	Intro string
}

// RenderCode renders the one-time code email.
func (r *Renderer) RenderCode(params CodeTemplateParams) (string, error) {
	if strings.TrimSpace(params.Code) == "" {
		return "", errors.NewInvalidInputError("code cannot be empty")
	}

	var content bytes.Buffer
	if err := codeTemplate.Execute(&content, codeData{
		Code:  params.Code,
		Intro: strings.TrimSpace(params.Intro),
	}); err != nil {
		return "", fmt.Errorf("execute code template: %w", err)
	}

	// content was produced by html/template, so it is already escaped
	return r.renderLayout(template.HTML(content.String()))
}

// RenderLayout wraps pre-rendered, trusted HTML in the branded layout.
func (r *Renderer) RenderLayout(content template.HTML) (string, error) {
	return r.renderLayout(content)
}

func (r *Renderer) renderLayout(content template.HTML) (string, error) {
	var out bytes.Buffer
	if err := layoutTemplate.Execute(&out, layoutData{
		Brand:   r.brand,
		Year:    r.footerYear(),
		Content: content,
	}); err != nil {
		return "", fmt.Errorf("execute layout template: %w", err)
	}
	return out.String(), nil
}

// footerYear is the only source of non-determinism in rendered output.
func (r *Renderer) footerYear() int {
	return r.now().Year()
}

var defaultRenderer = NewRenderer(DefaultBrand)

// RenderCode renders a code email with the default brand.
func RenderCode(params CodeTemplateParams) (string, error) {
	return defaultRenderer.RenderCode(params)
}
