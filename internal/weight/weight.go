package weight

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Display placeholders for the sheet weight field. The weight is stored as a
// formatted string, so a record that could not be computed carries an explicit
// sentinel instead of an empty value or a bare zero.
const (
	Pending     = "Hesaplanacak"
	NotComputed = "Hesaplanamadı"
)

var printer = message.NewPrinter(language.Turkish)

// Compute derives the total weight in kg of a stack of sheets from the paper
// dimensions in mm, the grammage in g/m² and the sheet count:
//
//	kg = (width * height * grammage * count) / 1_000_000
//
// All four inputs must parse as positive numbers; otherwise ok is false and
// the result is not usable. On success the returned string is rounded to two
// decimals and formatted with Turkish separators and a "kg" suffix, e.g.
// "1.234,50 kg".
func Compute(widthMM, heightMM, grammage, sheetCount string) (string, bool) {
	w, okW := parsePositive(widthMM)
	h, okH := parsePositive(heightMM)
	g, okG := parsePositive(grammage)
	n, okN := parsePositive(sheetCount)
	if !okW || !okH || !okG || !okN {
		return "", false
	}

	kg := (w * h * g * n) / 1_000_000
	kg = math.Round(kg*100) / 100

	return printer.Sprintf("%v kg", number.Decimal(kg, number.Scale(2))), true
}

func parsePositive(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
