package beamspot

import (
	"bytes"

	"github.com/hazeltet845/cmssw/format"
)

type cardSerializerFunc func(Parameters) string

const (
	cardNameWidth  = 16
	cardValueWidth = 14
)

func lengthCard(v float64) string {
	return format.FloatToFixedWidthString(v, cardValueWidth) + "  mm"
}

var cardSerializers = map[string]cardSerializerFunc{
	"X0":         func(p Parameters) string { return lengthCard(p.X0) },
	"Y0":         func(p Parameters) string { return lengthCard(p.Y0) },
	"Z0":         func(p Parameters) string { return lengthCard(p.Z0) },
	"SIGMAZ":     func(p Parameters) string { return lengthCard(p.SigmaZ) },
	"BETASTAR":   func(p Parameters) string { return lengthCard(p.BetaStar) },
	"EMITTANCE":  func(p Parameters) string { return lengthCard(p.Emittance) },
	"TIMEOFFSET": func(p Parameters) string { return lengthCard(p.TimeOffset) },
	"ALPHA": func(p Parameters) string {
		return format.FloatToFixedWidthString(p.Alpha, cardValueWidth) + "  rad"
	},
	"PHI": func(p Parameters) string {
		return format.FloatToFixedWidthString(p.Phi, cardValueWidth) + "  rad"
	},
}

var cardOrder = []string{
	"X0", "Y0", "Z0", "SIGMAZ", "BETASTAR", "EMITTANCE", "TIMEOFFSET", "ALPHA", "PHI",
}

// Serialize writes one card per parameter in a fixed order.
func Serialize(p Parameters) string {
	writer := &bytes.Buffer{}
	for _, cardName := range cardOrder {
		writer.WriteString(format.CardName(cardName, cardNameWidth))
		writer.WriteString(cardSerializers[cardName](p))
		writer.WriteString("\n")
	}
	return writer.String()
}
