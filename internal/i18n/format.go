package i18n

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var idPrinter = message.NewPrinter(language.Indonesian)

// Rupiah formats a price the way the site always shows it ("Rp 450.000"),
// whatever the page language. Non-numeric prices are shown as sent.
func Rupiah(price string) string {
	p := strings.TrimSpace(price)
	if p == "" {
		return ""
	}
	f, err := strconv.ParseFloat(p, 64)
	if err != nil {
		return p
	}
	if f == math.Trunc(f) {
		return "Rp " + idPrinter.Sprintf("%d", int64(f))
	}
	return "Rp " + idPrinter.Sprintf("%.2f", f)
}
