package mobject

import (
	"image/color"
	"math"
	"strconv"

	"go-trig-proof/pkg/geom"
	"go-trig-proof/pkg/render"
)

const (
	longerTickMultiple = 2.0
	lineToNumberBuff   = 0.25
	numberScale        = 36.0 / 48 // number labels are font size 36 against 48 for MathTex
)

// AxisConfig describes one number line of an Axes or NumberPlane.
type AxisConfig struct {
	Color                     color.NRGBA
	StrokeWidth               float64
	StrokeOpacity             float64
	IncludeTicks              bool
	IncludeTip                bool
	TickSize                  float64
	IncludeNumbers            bool
	NumbersToExclude          []float64
	NumbersWithElongatedTicks []float64
	// LabelDirection places number labels; zero means below a horizontal
	// axis and left of a vertical one.
	LabelDirection geom.Vec
}

// DefaultAxisConfig matches a plain number line: white, ticks, no numbers.
func DefaultAxisConfig() AxisConfig {
	return AxisConfig{
		Color:            render.White,
		StrokeWidth:      2,
		StrokeOpacity:    1,
		IncludeTicks:     true,
		IncludeTip:       true,
		TickSize:         0.1,
		NumbersToExclude: []float64{0},
	}
}

// NumberLine is a straight axis with ticks and optional number labels.
type NumberLine struct {
	*VMobject
	Min, Max, Step float64

	line    *VMobject
	Ticks   *Group
	Numbers *Group
}

// newNumberLine lays the line out along dir with value 0 (or the nearest
// range end) on the origin.
func newNumberLine(rng [3]float64, length float64, dir geom.Vec, cfg AxisConfig) (*NumberLine, error) {
	min, max, step := rng[0], rng[1], rng[2]
	if step <= 0 {
		step = 1
	}
	if length <= 0 {
		length = max - min
	}
	unit := length / (max - min)
	anchor := math.Max(min, math.Min(0, max))
	at := func(v float64) geom.Vec { return dir.Mul((v - anchor) * unit) }

	nl := &NumberLine{
		VMobject: &VMobject{Name: "NumberLine"},
		Min:      min, Max: max, Step: step,
		Ticks:   NewGroup(),
		Numbers: NewGroup(),
	}
	style := Style{StrokeColor: cfg.Color, FillColor: cfg.Color, StrokeWidth: cfg.StrokeWidth, StrokeOpacity: cfg.StrokeOpacity}
	nl.line = &VMobject{Name: "axis", Paths: []geom.Path{geom.NewPolyline(false, at(min), at(max))}, Style: style}
	nl.Add(nl.line)

	perp := dir.Rotate(math.Pi / 2)
	if cfg.IncludeTicks {
		for _, v := range nl.tickValues() {
			size := cfg.TickSize
			if containsValue(cfg.NumbersWithElongatedTicks, v) {
				size *= longerTickMultiple
			}
			p := at(v)
			tick := &VMobject{Name: "tick", Paths: []geom.Path{geom.NewPolyline(false, p.Sub(perp.Mul(size)), p.Add(perp.Mul(size)))}, Style: style}
			nl.Ticks.Add(tick)
		}
		nl.Add(nl.Ticks)
	}
	if cfg.IncludeTip {
		end := at(max)
		const tipLen = 0.35
		tip := &VMobject{
			Name: "tip",
			Paths: []geom.Path{geom.NewPolyline(true,
				end.Add(dir.Mul(tipLen)),
				end.Add(perp.Mul(tipLen/2)),
				end.Sub(perp.Mul(tipLen/2)))},
			Style: Style{FillColor: cfg.Color, FillOpacity: 1, StrokeColor: cfg.Color},
		}
		nl.Add(tip)
	}
	if cfg.IncludeNumbers {
		labelDir := cfg.LabelDirection
		if labelDir == (geom.Vec{}) {
			labelDir = geom.Down
			if math.Abs(dir.Y) > math.Abs(dir.X) {
				labelDir = geom.Left
			}
		}
		for _, v := range nl.tickValues() {
			if containsValue(cfg.NumbersToExclude, v) {
				continue
			}
			num, err := NewMathTex(formatNumber(v), Color(cfg.Color))
			if err != nil {
				return nil, err
			}
			num.Scale(numberScale)
			num.NextToPoint(at(v), labelDir, lineToNumberBuff)
			// keep the digit, not the minus sign, centred under the tick
			if v < 0 && labelDir.X == 0 && len(num.Submobjects) > 1 {
				num.Shift(geom.Left.Mul(num.Submobjects[0].Width() / 2))
			}
			nl.Numbers.Add(num)
		}
		nl.Add(nl.Numbers)
	}
	return nl, nil
}

func (n *NumberLine) tickValues() []float64 {
	var out []float64
	count := int(math.Floor((n.Max-n.Min)/n.Step+1e-9)) + 1
	for i := 0; i < count; i++ {
		out = append(out, n.Min+float64(i)*n.Step)
	}
	return out
}

// N2P maps a number to its point on the line, following any transform
// applied to the line since construction.
func (n *NumberLine) N2P(v float64) geom.Vec {
	start, end := n.line.Paths[0].Start(), n.line.Paths[0].End()
	return geom.LerpVec(start, end, (v-n.Min)/(n.Max-n.Min))
}

// P2N projects a point onto the line and returns its number.
func (n *NumberLine) P2N(p geom.Vec) float64 {
	start, end := n.line.Paths[0].Start(), n.line.Paths[0].End()
	d := end.Sub(start)
	t := p.Sub(start).Dot(d) / d.Dot(d)
	return geom.Lerp(n.Min, n.Max, t)
}

func formatNumber(v float64) string {
	if v == math.Trunc(v) {
		return strconv.Itoa(int(v))
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func containsValue(vs []float64, v float64) bool {
	for _, x := range vs {
		if math.Abs(x-v) < 1e-9 {
			return true
		}
	}
	return false
}

// AxesConfig configures a pair of axes.
type AxesConfig struct {
	XRange, YRange   [3]float64
	XLength, YLength float64
	XAxis, YAxis     AxisConfig
}

// Axes is a 2D coordinate system. Coordinates are mapped to scene points
// with C2P.
type Axes struct {
	*VMobject
	XAxis, YAxis *NumberLine
}

// NewAxes builds both axes and puts the middle of both ranges on the origin.
// Labels do not take part in the centring.
func NewAxes(cfg AxesConfig) (*Axes, error) {
	x, err := newNumberLine(cfg.XRange, cfg.XLength, geom.Right, cfg.XAxis)
	if err != nil {
		return nil, err
	}
	y, err := newNumberLine(cfg.YRange, cfg.YLength, geom.Up, cfg.YAxis)
	if err != nil {
		return nil, err
	}
	ax := &Axes{VMobject: &VMobject{Name: "Axes"}, XAxis: x, YAxis: y}
	ax.Add(x, y)
	mid := ax.C2P((x.Min+x.Max)/2, (y.Min+y.Max)/2)
	ax.Shift(geom.Origin.Sub(mid))
	return ax, nil
}

// C2P converts axis coordinates to a scene point.
func (a *Axes) C2P(x, y float64) geom.Vec {
	origin := a.origin()
	return origin.Add(a.XAxis.N2P(x).Sub(origin)).Add(a.YAxis.N2P(y).Sub(origin))
}

// P2C converts a scene point back to axis coordinates.
func (a *Axes) P2C(p geom.Vec) (float64, float64) {
	return a.XAxis.P2N(p), a.YAxis.P2N(p)
}

func (a *Axes) origin() geom.Vec {
	ox := math.Max(a.XAxis.Min, math.Min(0, a.XAxis.Max))
	oy := math.Max(a.YAxis.Min, math.Min(0, a.YAxis.Max))
	// the x axis point for ox lies on the y axis line when oy is the anchor
	return geom.Vec{X: a.XAxis.N2P(ox).X, Y: a.YAxis.N2P(oy).Y}
}

// LineStyle styles the background grid of a NumberPlane. Zero fields take
// the defaults: BlueD, width 2, fully opaque.
type LineStyle struct {
	Color   color.NRGBA
	Width   float64
	Opacity float64
}

// PlaneConfig configures a NumberPlane.
type PlaneConfig struct {
	XRange, YRange      [3]float64
	BackgroundLineStyle LineStyle
}

// NumberPlane is a grid of background lines with axes on top.
type NumberPlane struct {
	*Axes
	Background *Group
}

// NewNumberPlane draws one background line per step with unit spacing.
func NewNumberPlane(cfg PlaneConfig) (*NumberPlane, error) {
	axisCfg := DefaultAxisConfig()
	axisCfg.IncludeTicks = false
	axisCfg.IncludeTip = false
	ax, err := NewAxes(AxesConfig{XRange: cfg.XRange, YRange: cfg.YRange, XAxis: axisCfg, YAxis: axisCfg})
	if err != nil {
		return nil, err
	}
	ax.Name = "NumberPlane"
	st := cfg.BackgroundLineStyle
	if st.Color == (color.NRGBA{}) {
		st.Color = render.BlueD
	}
	if st.Width == 0 {
		st.Width = 2
	}
	if st.Opacity == 0 {
		st.Opacity = 1
	}
	style := Style{StrokeColor: st.Color, FillColor: st.Color, StrokeWidth: st.Width, StrokeOpacity: st.Opacity}
	bg := NewGroup()
	for _, v := range ax.XAxis.tickValues() {
		bg.Add(&VMobject{Name: "grid", Style: style, Paths: []geom.Path{
			geom.NewPolyline(false, ax.C2P(v, ax.YAxis.Min), ax.C2P(v, ax.YAxis.Max)),
		}})
	}
	for _, v := range ax.YAxis.tickValues() {
		bg.Add(&VMobject{Name: "grid", Style: style, Paths: []geom.Path{
			geom.NewPolyline(false, ax.C2P(ax.XAxis.Min, v), ax.C2P(ax.XAxis.Max, v)),
		}})
	}
	// background lines go under the axes
	ax.Submobjects = append([]*VMobject{bg.VMobject}, ax.Submobjects...)
	return &NumberPlane{Axes: ax, Background: bg}, nil
}
