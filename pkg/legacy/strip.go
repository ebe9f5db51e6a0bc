package legacy

import (
	"errors"
	"regexp"
	"unicode/utf8"

	"github.com/goliatone/go-articlerender/pkg/render"
)

var (
	documentOpen  = regexp.MustCompile(`^\s*<html>\s*<body>`)
	documentClose = regexp.MustCompile(`</body>\s*</html>\s*$`)
)

var errInvalidUTF8 = errors.New("body is not valid UTF-8")

// StripDocument removes a leading <html><body> and trailing </body></html>
// wrapper. Markup elsewhere in the body is left untouched.
func StripDocument(body string) (string, error) {
	if !utf8.ValidString(body) {
		return "", render.BodyStripFailure(errInvalidUTF8)
	}
	body = documentOpen.ReplaceAllLiteralString(body, "")
	return documentClose.ReplaceAllLiteralString(body, ""), nil
}
