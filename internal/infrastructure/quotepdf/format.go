package quotepdf

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maxFilenameStem = 30

var monthsPT = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// FormatCurrency renders an amount in cents as Brazilian reais, e.g.
// 123456 -> "R$ 1.234,56".
func FormatCurrency(cents int64) string {
	amount := decimal.New(cents, -2)
	abs := amount.Abs()
	_, frac, _ := strings.Cut(abs.StringFixed(2), ".")

	whole := message.NewPrinter(language.BrazilianPortuguese).Sprintf("%d", abs.IntPart())

	out := "R$ " + whole + "," + frac
	if amount.IsNegative() {
		return "-" + out
	}
	return out
}

// FormatDocument masks a CNPJ (14 digits) or CPF (11 digits). Anything else
// is returned unchanged.
func FormatDocument(doc string) string {
	digits := onlyDigits(doc)
	switch len(digits) {
	case 14:
		return fmt.Sprintf("%s.%s.%s/%s-%s", digits[0:2], digits[2:5], digits[5:8], digits[8:12], digits[12:14])
	case 11:
		return fmt.Sprintf("%s.%s.%s-%s", digits[0:3], digits[3:6], digits[6:9], digits[9:11])
	default:
		return doc
	}
}

func documentLabel(doc string) string {
	switch len(onlyDigits(doc)) {
	case 14:
		return "CNPJ"
	case 11:
		return "CPF"
	default:
		return "Documento"
	}
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatLongDate renders t as "15 de fevereiro de 2026".
func FormatLongDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), monthsPT[t.Month()-1], t.Year())
}

// FormatDateTime renders t as "15/02/2026 às 14:30".
func FormatDateTime(t time.Time) string {
	return t.Format("02/01/2006") + " às " + t.Format("15:04")
}

// SuggestedFilename builds the download name of a quote from its
// description and public token, e.g. "Troca_de_oleo_Ab12Cd.pdf".
func SuggestedFilename(description, token string) string {
	stem := sanitizeFilenamePart(foldAccents(description))
	if len(stem) > maxFilenameStem {
		stem = strings.TrimRight(stem[:maxFilenameStem], "_")
	}
	if stem == "" {
		stem = "orcamento"
	}
	if t := sanitizeFilenamePart(token); t != "" {
		return stem + "_" + t + ".pdf"
	}
	return stem + ".pdf"
}

func foldAccents(s string) string {
	// Transformers keep state between calls; build one per use.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// sanitizeFilenamePart keeps ASCII letters and digits; every other run of
// characters becomes a single underscore.
func sanitizeFilenamePart(s string) string {
	var b strings.Builder
	gap := false
	for _, r := range s {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if gap && b.Len() > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
			gap = false
			continue
		}
		gap = true
	}
	return b.String()
}

func truncateToWidth(c *pageCursor, s string, width float64) string {
	if c.stringWidth(s) <= width {
		return s
	}
	const ellipsis = "..."
	r := []rune(s)
	for len(r) > 0 && c.stringWidth(string(r)+ellipsis) > width {
		r = r[:len(r)-1]
	}
	return strings.TrimSpace(string(r)) + ellipsis
}
