package spectrum

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// bandAlpha is the opacity of the uncertainty band.
const bandAlpha = 0.2

// NewPlot returns an empty plot with log-scaled axes.
func NewPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Legend.Top = true
	p.Legend.XOffs = vg.Points(-10)
	return p
}

// AddDNDE draws the differential spectrum and its band on p.
func (s *Spectrum) AddDNDE(p *plot.Plot, c color.Color) error {
	return addBand(p, s.DNDE(), s.label, c)
}

// AddSED draws the SED and its band on p.
func (s *Spectrum) AddSED(p *plot.Plot, c color.Color) error {
	return addBand(p, s.SED(), s.label, c)
}

// addBand draws b as a line plus a translucent polygon. Points that cannot
// be placed on log axes (non-positive or non-finite) are dropped; a lower
// edge at or below zero is drawn at a thousandth of the curve value.
func addBand(p *plot.Plot, b Band, label string, c color.Color) error {
	line := make(plotter.XYs, 0, len(b.Energy))
	upper := make(plotter.XYs, 0, len(b.Energy))
	lower := make(plotter.XYs, 0, len(b.Energy))
	for i, e := range b.Energy {
		v := b.Value[i]
		if !positive(e) || !positive(v) {
			continue
		}
		line = append(line, plotter.XY{X: e, Y: v})

		hi, lo := b.Upper[i], b.Lower[i]
		if !positive(hi) {
			hi = v
		}
		if !positive(lo) {
			lo = v * 1e-3
		}
		upper = append(upper, plotter.XY{X: e, Y: hi})
		lower = append(lower, plotter.XY{X: e, Y: lo})
	}
	if len(line) < 2 {
		return fmt.Errorf("spectrum: %q has fewer than two plottable points", label)
	}

	l, err := plotter.NewLine(line)
	if err != nil {
		return fmt.Errorf("spectrum: line: %w", err)
	}
	l.LineStyle.Color = c
	l.LineStyle.Width = vg.Points(1.5)

	ring := make(plotter.XYs, 0, 2*len(upper))
	ring = append(ring, upper...)
	for i := len(lower) - 1; i >= 0; i-- {
		ring = append(ring, lower[i])
	}
	poly, err := plotter.NewPolygon(ring)
	if err != nil {
		return fmt.Errorf("spectrum: band: %w", err)
	}
	poly.Color = translucent(c, bandAlpha)
	poly.LineStyle.Width = 0

	p.Add(poly, l)
	if label != "" {
		p.Legend.Add(label, poly, l)
	}
	return nil
}

func positive(v float64) bool { return v > 0 && !math.IsInf(v, 0) }

func translucent(c color.Color, alpha float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(255 * alpha))
	return n
}

// Palette returns a distinct color for the i-th curve.
func Palette(i int) color.Color {
	colors := []color.NRGBA{
		{R: 31, G: 119, B: 180, A: 255},
		{R: 255, G: 127, B: 14, A: 255},
		{R: 44, G: 160, B: 44, A: 255},
		{R: 214, G: 39, B: 40, A: 255},
		{R: 148, G: 103, B: 189, A: 255},
		{R: 140, G: 86, B: 75, A: 255},
	}
	n := len(colors)
	return colors[(i%n+n)%n]
}
