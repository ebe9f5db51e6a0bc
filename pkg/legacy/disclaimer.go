package legacy

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-articlerender/pkg/render"
)

const licenseScheme = "license"

var (
	linkPolicyOnce sync.Once
	linkPolicy     *bluemonday.Policy
)

// FormatLink renders an anchor the article viewer opens outside the page.
// label is escaped; uri is escaped for attribute context.
func FormatLink(uri, label string) string {
	return fmt.Sprintf(`<a class="eos-show-link" href="%s">%s</a>`, render.EscapeHTML(uri), render.EscapeHTML(label))
}

// LicenseURI returns the pseudo-URI the viewer resolves to license text.
func LicenseURI(license string) string {
	return licenseScheme + "://" + url.PathEscape(license)
}

// sanitizeLink drops anything but a plain anchor with an http(s) target.
// Article URIs come from the content provider and may be hostile.
func sanitizeLink(markup string) string {
	return strings.TrimSpace(linkSanitizer().Sanitize(markup))
}

func linkSanitizer() *bluemonday.Policy {
	linkPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowAttrs("class", "href").OnElements("a")
		policy.AllowURLSchemes("http", "https")
		linkPolicy = policy
	})
	return linkPolicy
}

type disclaimerInput struct {
	source      Source
	sourceName  string
	originalURI string
	license     string
	title       string
}

func (p *Pipeline) disclaimer(in disclaimerInput) (string, bool) {
	switch in.source.Disclaimer {
	case DisclaimerSourceLicense:
		article := sanitizeLink(FormatLink(in.originalURI, in.sourceName))
		license := FormatLink(LicenseURI(in.license), p.sources.LicenseName(in.license))
		sentence := translate(p.locale, KeyDisclaimerSourceLicense, p.translator, p.onMissing)
		return fmt.Sprintf(sentence, article, license), true
	case DisclaimerArticleBrand:
		article := sanitizeLink(FormatLink(in.originalURI, in.title))
		brand := sanitizeLink(FormatLink(in.source.Brand.URI, in.source.Brand.Label))
		sentence := translate(p.locale, KeyDisclaimerArticleBrand, p.translator, p.onMissing)
		return fmt.Sprintf(sentence, article, brand), true
	}
	return "", false
}
