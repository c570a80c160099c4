package post

import (
	"regexp"
	"strings"

	"github.com/k3a/html2text"
)

var blankRunRe = regexp.MustCompile(`\n{4,}`)

// SanitizeComment strips markup from user supplied comment text and
// normalizes whitespace. Comments are rendered as-is by the clients, so
// nothing that parses as HTML may survive.
func SanitizeComment(text string) string {
	text = html2text.HTML2Text(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = blankRunRe.ReplaceAllString(text, "\n\n\n")
	return strings.TrimSpace(text)
}
