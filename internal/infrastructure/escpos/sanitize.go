package escpos

import "strings"

// sanitizePairs is the ordered substitution table from extended characters
// to printer-safe ASCII replacements. Every replacement is plain ASCII and
// no replacement re-matches a key, which makes Sanitize idempotent.
var sanitizePairs = []string{
	"à", "a", "á", "a", "â", "a", "ã", "a", "ä", "a",
	"å", "a", "æ", "ae", "ç", "c", "è", "e", "é", "e", "ê", "e",
	"ë", "e", "ì", "i", "í", "i", "î", "i", "ï", "i", "ð", "d",
	"ñ", "n", "ò", "o", "ó", "o", "ô", "o", "õ", "o", "ö", "o",
	"ő", "o", "ø", "o", "ù", "u", "ú", "u", "û", "u", "ü", "u",
	"ű", "u", "ý", "y", "þ", "th", "ÿ", "y",
	"&quot;", "-", "´", "'", "“", "-", "”", "-", "€", "EUR", "º", ".",
	"À", "A", "Á", "A", "Â", "A", "Ä", "A",
	"Ç", "C", "È", "E", "É", "E", "Ê", "E",
	"Ë", "E", "Ì", "I", "Í", "I", "Î", "I", "Ï", "I",
	"Ñ", "N", "Ò", "O", "Ó", "O", "Ô", "O", "Ö", "O",
	"Ù", "U", "Ú", "U", "Û", "U", "Ü", "U",
	"Ý", "Y", "Ÿ", "Y",
}

var sanitizer = strings.NewReplacer(sanitizePairs...)

// Sanitize maps extended and accented characters to printer-safe ASCII
// substitutes. It never fails: the empty string sanitizes to itself.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}
	return sanitizer.Replace(text)
}
