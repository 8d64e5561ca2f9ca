// Package prices marks price-like numbers in free-text menu descriptions and
// handles drink budgets.
package prices

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Marker is prepended to numbers judged to be prices.
const Marker = '$'

const (
	sizeUnit          = "oz"
	quantityKeyword   = "for"
	maxShorthandRunes = 5
)

// numberToken is a numeric run in the text and the word that follows it.
// wordStart is -1 when the number is not followed by whitespace and a word.
type numberToken struct {
	start, end         int
	wordStart, wordEnd int
}

func (t numberToken) hasWord() bool { return t.wordStart >= 0 }

// classifier decides whether a candidate number should get a marker.
type classifier func(word string) bool

// AnnotatePrices inserts a currency marker in front of numbers that look like
// prices, e.g. "3 bottled beer" becomes "$3 bottled beer".
//
// Two passes run in order. The first marks a number followed by a size token
// such as "24oz". The second, run over the first pass's output, marks any
// number followed by a word unless that word is "for" ("2 for 1") or short
// uppercase shorthand ("3 PBR"). Numbers already preceded by the marker are
// left alone, which makes the function idempotent.
func AnnotatePrices(text string) string {
	if text == "" {
		return text
	}
	text = rewrite(text, isSizeToken)
	return rewrite(text, isPriceWord)
}

func rewrite(text string, mark classifier) string {
	tokens := scanNumbers(text)
	if len(tokens) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + len(tokens))
	last := 0
	for _, tok := range tokens {
		if !tok.hasWord() || precededByMarker(text, tok.start) {
			continue
		}
		if !mark(text[tok.wordStart:tok.wordEnd]) {
			continue
		}
		b.WriteString(text[last:tok.start])
		b.WriteRune(Marker)
		last = tok.start
	}
	b.WriteString(text[last:])
	return b.String()
}

// scanNumbers finds every maximal digits[.digits] run that starts on a word
// boundary, along with the word after it when one follows whitespace.
func scanNumbers(text string) []numberToken {
	var tokens []numberToken
	prev := rune(-1)
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isDigit(r) || isWordRune(prev) {
			prev = r
			i += size
			continue
		}

		end := skipDigits(text, i)
		if end+1 < len(text) && text[end] == '.' && isDigit(rune(text[end+1])) {
			end = skipDigits(text, end+1)
		}

		tok := numberToken{start: i, end: end, wordStart: -1, wordEnd: -1}
		if ws := skipSpace(text, end); ws > end {
			if we := skipWord(text, ws); we > ws {
				tok.wordStart, tok.wordEnd = ws, we
			}
		}
		tokens = append(tokens, tok)

		// The number's last byte is an ASCII digit.
		prev = rune(text[end-1])
		i = end
	}
	return tokens
}

func precededByMarker(text string, pos int) bool {
	return pos > 0 && text[pos-1] == byte(Marker)
}

// isSizeToken matches "<digits>oz", case-insensitively.
func isSizeToken(word string) bool {
	if len(word) <= len(sizeUnit) {
		return false
	}
	digits := word[:len(word)-len(sizeUnit)]
	if skipDigits(digits, 0) != len(digits) {
		return false
	}
	return strings.EqualFold(word[len(digits):], sizeUnit)
}

func isPriceWord(word string) bool {
	if strings.EqualFold(word, quantityKeyword) {
		return false
	}
	return !isShorthand(word)
}

// isShorthand reports whether word is short and all uppercase, like "PBR" or
// "BOGO". Digits and underscores are ignored, but at least one uppercase
// letter is required.
func isShorthand(word string) bool {
	if utf8.RuneCountInString(word) > maxShorthandRunes {
		return false
	}
	hasUpper := false
	for _, r := range word {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func skipDigits(text string, i int) int {
	for i < len(text) && isDigit(rune(text[i])) {
		i++
	}
	return i
}

func skipSpace(text string, i int) int {
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	return i
}

func skipWord(text string, i int) int {
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isWordRune(r) {
			break
		}
		i += size
	}
	return i
}
