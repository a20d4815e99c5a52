package telephony

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// keypadLetters maps each ITU E.161 keypad letter to its engraved digit.
var keypadLetters = map[rune]byte{
	'a': '2', 'b': '2', 'c': '2',
	'd': '3', 'e': '3', 'f': '3',
	'g': '4', 'h': '4', 'i': '4',
	'j': '5', 'k': '5', 'l': '5',
	'm': '6', 'n': '6', 'o': '6',
	'p': '7', 'q': '7', 'r': '7', 's': '7',
	't': '8', 'u': '8', 'v': '8',
	'w': '9', 'x': '9', 'y': '9', 'z': '9',
}

// arabicIndicDigits covers U+0660-U+0669 ("Arabic-Indic digits").
const arabicIndicDigits = "٠١٢٣٤٥٦٧٨٩"

// extendedArabicIndicDigits covers U+06F0-U+06F9 ("Extended Arabic-Indic",
// used in Persian/Urdu text), which upstream libphonenumber also folds to
// ASCII even though it's a distinct Unicode block from Arabic-Indic proper.
const extendedArabicIndicDigits = "۰۱۲۳۴۵۶۷۸۹"

var digitFoldTable = buildDigitFoldTable()

func buildDigitFoldTable() map[rune]byte {
	t := make(map[rune]byte, 64)
	for i, r := range []rune(arabicIndicDigits) {
		t[r] = byte('0' + i)
	}
	for i, r := range []rune(extendedArabicIndicDigits) {
		t[r] = byte('0' + i)
	}
	return t
}

// foldDigit maps r to an ASCII digit byte if r is a recognized digit form
// (ASCII, fullwidth, Arabic-Indic, or Extended Arabic-Indic), and reports
// whether the mapping succeeded.
func foldDigit(r rune) (byte, bool) {
	if r >= '0' && r <= '9' {
		return byte(r), true
	}
	if b, ok := digitFoldTable[r]; ok {
		return b, true
	}
	// width.Fold narrows fullwidth forms (U+FF10-U+FF19 fullwidth digits,
	// among others) to their ASCII equivalent.
	for _, folded := range width.Fold.String(string(r)) {
		if folded >= '0' && folded <= '9' {
			return byte(folded), true
		}
		break
	}
	return 0, false
}

// normalize maps every code point in s via the fixed digit/letter table
// (§4.1): ASCII, fullwidth, and Arabic-Indic digits fold to ASCII; a-z/A-Z
// fold to their ITU E.161 keypad digit. A leading '+' is preserved; every
// other non-digit code point is dropped.
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i, r := range s {
		if i == 0 && isPlusChar(r) {
			b.WriteByte('+')
			continue
		}
		if d, ok := foldDigit(r); ok {
			b.WriteByte(d)
			continue
		}
		lower := unicode.ToLower(r)
		if d, ok := keypadLetters[lower]; ok {
			b.WriteByte(d)
			continue
		}
	}
	return b.String()
}

// NormalizeDigits strips everything but ASCII digits (after folding), never
// preserving a leading '+'. Used for national-number bodies where a plus
// sign cannot legally appear.
func NormalizeDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if d, ok := foldDigit(r); ok {
			b.WriteByte(d)
		}
	}
	return b.String()
}

// Normalize is the exported form of normalize, preserving a leading '+'.
func Normalize(s string) string { return normalize(s) }

// plusChars are the Unicode code points accepted as a leading "+": ASCII
// plus and its fullwidth form, both seen in real-world pasted numbers.
const plusChars = "+＋"

// isPlusChar reports whether r is one of the accepted leading-plus glyphs.
func isPlusChar(r rune) bool {
	return strings.ContainsRune(plusChars, r)
}

// validPossibleNumberPunctuation is the fixed set of punctuation/formatting
// marks that isValidPossibleNumberChar accepts, alongside digits (any
// recognized digit form) and letters, as legally part of a phone number's body.
const validPossibleNumberPunctuation = " \t-()./\\*#"

func isValidPossibleNumberChar(r rune) bool {
	if _, ok := foldDigit(r); ok {
		return true
	}
	if unicode.IsLetter(r) {
		return true
	}
	return strings.ContainsRune(validPossibleNumberPunctuation, r)
}

// extractPossibleNumber trims leading junk up to the first digit or '+',
// then truncates at the first character that cannot belong to a phone
// number's body: an unmatched closing bracket, a ';' introducing RFC 3966
// parameters, or any other disallowed code point (§4.1).
func extractPossibleNumber(s string) string {
	runes := []rune(s)

	start := -1
	for i, r := range runes {
		if isPlusChar(r) {
			start = i
			break
		}
		if _, ok := foldDigit(r); ok {
			start = i
			break
		}
	}
	if start == -1 {
		return ""
	}
	runes = runes[start:]

	end := len(runes)
	depth := 0
	for i, r := range runes {
		switch {
		case r == '(' || r == '[':
			depth++
		case r == ')' || r == ']':
			if depth == 0 {
				end = i
			} else {
				depth--
			}
		case r == ';':
			end = i
		case !isValidPossibleNumberChar(r) && !isPlusChar(r):
			end = i
		}
		if end != len(runes) {
			break
		}
	}
	return string(runes[:end])
}

// ExtractPossibleNumber is the exported form of extractPossibleNumber.
func ExtractPossibleNumber(s string) string { return extractPossibleNumber(s) }
