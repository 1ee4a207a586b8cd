package chart

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	defaultSize = 600

	matchColor     = "#4CAF50"
	remainderColor = "#E0E0E0"
	textColor      = "#000000"
	background     = "#FFFFFF"

	title = "Match Percentage"

	// Ring proportions relative to the outer radius.
	ringWidth   = 0.3
	explodeFrac = 0.1
)

type fonts struct {
	regular *truetype.Font
	bold    *truetype.Font
}

var loadFonts = sync.OnceValues(func() (fonts, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fonts{}, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return fonts{}, fmt.Errorf("parse bold font: %w", err)
	}
	return fonts{regular: regular, bold: bold}, nil
})

// Doughnut renders a two-slice ring chart of match versus remainder as PNG.
// The zero value draws a 600x600 image.
type Doughnut struct {
	Size int
}

// Render draws the chart for percentage, which must be within 0..100.
func (d Doughnut) Render(percentage int) ([]byte, error) {
	if percentage < 0 || percentage > 100 {
		return nil, fmt.Errorf("chart: percentage %d out of range 0..100", percentage)
	}
	f, err := loadFonts()
	if err != nil {
		return nil, err
	}

	size := d.Size
	if size <= 0 {
		size = defaultSize
	}
	s := float64(size)
	radius := s * 0.36
	inner := radius * (1 - ringWidth)
	cx, cy := s/2, s*0.55

	dc := gg.NewContext(size, size)
	dc.SetHexColor(background)
	dc.Clear()

	// Slices start at 12 o'clock. Screen angles grow clockwise, so the match
	// slice spans [top-sweep, top] and the remainder runs clockwise from top.
	top := -math.Pi / 2
	sweep := 2 * math.Pi * float64(percentage) / 100

	if sweep > 0 {
		mid := top - sweep/2
		ox := math.Cos(mid) * radius * explodeFrac
		oy := math.Sin(mid) * radius * explodeFrac
		ringSlice(dc, cx+ox, cy+oy, radius, inner, top-sweep, top)
		dc.SetHexColor(matchColor)
		dc.Fill()
	}
	if rest := 2*math.Pi - sweep; rest > 0 {
		ringSlice(dc, cx, cy, radius, inner, top, top+rest)
		dc.SetHexColor(remainderColor)
		dc.Fill()
	}

	dc.SetHexColor(textColor)
	dc.SetFontFace(truetype.NewFace(f.regular, &truetype.Options{Size: s * 0.05}))
	dc.DrawStringAnchored(title, s/2, s*0.08, 0.5, 0.5)

	dc.SetFontFace(truetype.NewFace(f.bold, &truetype.Options{Size: s * 0.08}))
	dc.DrawStringAnchored(strconv.Itoa(percentage)+"%", cx, cy, 0.5, 0.35)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("chart: encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// ringSlice adds an annular sector between angles a1 and a2 to the current path.
func ringSlice(dc *gg.Context, cx, cy, outer, inner, a1, a2 float64) {
	dc.NewSubPath()
	dc.DrawArc(cx, cy, outer, a1, a2)
	dc.DrawArc(cx, cy, inner, a2, a1)
	dc.ClosePath()
}
