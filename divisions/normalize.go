package divisions

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// markupReplacer blanks characters that would leak into rendered output
var markupReplacer = strings.NewReplacer("<", " ", ">", " ", "&", " ", "_", " ")

// NormalizeName canonicalizes a raw division name. The literal value
// "OTHER" becomes the catch-all "(other)". Every other value is folded
// to NFC so composed and decomposed spellings merge, has markup
// characters replaced by spaces, and has whitespace runs collapsed to
// single spaces with the ends trimmed. An empty or all-whitespace value
// normalizes to "".
func NormalizeName(raw string) string {
	if strings.TrimSpace(raw) == "OTHER" {
		return "(other)"
	}
	cleaned := markupReplacer.Replace(norm.NFC.String(raw))
	return strings.Join(strings.Fields(cleaned), " ")
}
