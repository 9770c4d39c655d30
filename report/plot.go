package report

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/YuminosukeSato/golm/pkg/errors"
)

// PlotResiduals は残差と当てはめ値の散布図を path に保存する
// 形式は拡張子（.png, .svg, .pdf など）で決まる。
func PlotResiduals(path, response string, fitted, residuals mat.Vector) error {
	if fitted.Len() != residuals.Len() {
		return errors.NewDimensionError("PlotResiduals", fitted.Len(), residuals.Len(), 0)
	}

	pts := make(plotter.XYs, 0, fitted.Len())
	minX, maxX := math.Inf(1), math.Inf(-1)
	for i := 0; i < fitted.Len(); i++ {
		x, y := fitted.AtVec(i), residuals.AtVec(i)
		if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: x, Y: y})
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
	}
	if len(pts) == 0 {
		return errors.Wrap(errors.ErrEmptyData, "no finite residuals to plot")
	}

	p := plot.New()
	p.Title.Text = "Residuals vs Fitted"
	if response != "" {
		p.Title.Text += " (" + response + ")"
	}
	p.X.Label.Text = "Fitted values"
	p.Y.Label.Text = "Residuals"

	s, err := plotter.NewScatter(pts)
	if err != nil {
		return errors.Wrap(err, "failed to build scatter")
	}
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Radius = vg.Points(2)
	s.Color = color.RGBA{R: 50, G: 50, B: 255, A: 255}
	p.Add(s)

	// 残差 0 の基準線
	zero, err := plotter.NewLine(plotter.XYs{{X: minX, Y: 0}, {X: maxX, Y: 0}})
	if err != nil {
		return errors.Wrap(err, "failed to build reference line")
	}
	zero.Color = color.RGBA{R: 255, A: 255}
	zero.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(zero)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "failed to save plot %s", path)
	}
	return nil
}
