package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FloatToFixedWidthString right aligns n in a field of w characters.
// Values too small or too large for a fixed point field fall back to exponent notation.
func FloatToFixedWidthString(n float64, w int) string {
	if n != 0 && (math.Abs(n) < 1e-3 || math.Abs(n) >= math.Pow10(w-2)) {
		return padLeft(strconv.FormatFloat(n, 'g', w-6, 64), w)
	}
	wStr := strconv.Itoa(w)
	s := fmt.Sprintf("%"+wStr+"."+wStr+"f", n)
	trimed := strings.TrimRight(s[:w], "0")
	return padLeft(trimed, w)
}

// CardName pads or cuts name to a fixed card name column.
func CardName(name string, w int) string {
	return (name + strings.Repeat(" ", w))[0:w]
}

func padLeft(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return strings.Repeat(" ", w-len(s)) + s
}
