// Package chart holds renderer-agnostic figure payloads. The JSON layout
// follows plotly's figure schema so the dashboard can pass it through.
package chart

import "time"

// TimeFormat is the layout used for time values on x axes.
const TimeFormat = "2006-01-02 15:04:05"

type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

type Trace struct {
	Type         string   `json:"type"` // "scatter" or "bar"
	Name         string   `json:"name,omitempty"`
	X            []any    `json:"x"`
	Y            []any    `json:"y"`
	Mode         string   `json:"mode,omitempty"`
	Fill         string   `json:"fill,omitempty"`
	FillColor    string   `json:"fillcolor,omitempty"`
	Opacity      float64  `json:"opacity,omitempty"`
	Line         *Line    `json:"line,omitempty"`
	Orientation  string   `json:"orientation,omitempty"`
	Text         []string `json:"text,omitempty"`
	TextPosition string   `json:"textposition,omitempty"`
	Marker       *Marker  `json:"marker,omitempty"`
}

type Line struct {
	Shape string `json:"shape,omitempty"` // "hv" draws steps
}

type Marker struct {
	Color []string `json:"color,omitempty"`
}

type Layout struct {
	Template string  `json:"template,omitempty"`
	Margin   Margin  `json:"margin"`
	Legend   *Legend `json:"legend,omitempty"`
	XAxis    *Axis   `json:"xaxis,omitempty"`
	YAxis    *Axis   `json:"yaxis,omitempty"`
}

type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

type Legend struct {
	Orientation string  `json:"orientation,omitempty"`
	YAnchor     string  `json:"yanchor,omitempty"`
	Y           float64 `json:"y"`
}

type Axis struct {
	Range      []any  `json:"range,omitempty"`
	TickFormat string `json:"tickformat,omitempty"`
	Title      *Title `json:"title,omitempty"`
}

// Title is an axis title. An empty Text hides the default one.
type Title struct {
	Text string `json:"text"`
}

// NoTitle hides an axis title.
func NoTitle() *Title {
	return &Title{}
}

// DarkLayout is the layout shared by every dashboard chart.
func DarkLayout() Layout {
	return Layout{
		Template: "plotly_dark",
		Margin:   Margin{L: 10, R: 10, T: 10, B: 10},
	}
}

// Times converts ts to x values.
func Times(ts []time.Time) []any {
	out := make([]any, len(ts))
	for i, t := range ts {
		out[i] = t.UTC().Format(TimeFormat)
	}
	return out
}

// Floats converts vs to axis values.
func Floats(vs []float64) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}

// Strings converts ss to axis values.
func Strings(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
