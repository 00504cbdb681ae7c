package barplot

import (
	"encoding/json"
)

// CornerStyle selects which corners of a bar get rounded.
type CornerStyle int

const (
	CornerTop CornerStyle = iota
	CornerAll
)

func GetCornerStyle(str string) CornerStyle {
	if str == "all" {
		return CornerAll
	}
	return CornerTop
}

func (c CornerStyle) String() string {
	if c == CornerAll {
		return "all"
	}
	return "top"
}

func (c CornerStyle) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *CornerStyle) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	*c = GetCornerStyle(str)
	return nil
}

// ErrorMode selects which side of the value an error bar covers.
type ErrorMode int

const (
	ErrorBoth ErrorMode = iota
	ErrorAbove
	ErrorBelow
)

func GetErrorMode(str string) ErrorMode {
	switch str {
	case "above":
		return ErrorAbove
	case "below":
		return ErrorBelow
	default:
		return ErrorBoth
	}
}

func (e ErrorMode) String() string {
	switch e {
	case ErrorAbove:
		return "above"
	case ErrorBelow:
		return "below"
	default:
		return "both"
	}
}

func (e ErrorMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}

func (e *ErrorMode) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	*e = GetErrorMode(str)
	return nil
}

// Caption holds the text and typography of the chart title or subtitle.
type Caption struct {
	Text    string  `json:"text"`
	Size    float64 `json:"size"`
	Color   string  `json:"color"`
	OffsetX float64 `json:"offsetX"`
	OffsetY float64 `json:"offsetY"`
}

// AxisStyle configures one axis. Min, Max and Step only apply to the
// value axis; they stay Auto on the category axis.
type AxisStyle struct {
	Title       string    `json:"title"`
	TitleOffset float64   `json:"titleOffset"`
	ShowLine    bool      `json:"showLine"`
	LineWidth   float64   `json:"lineWidth"`
	LineColor   string    `json:"lineColor"`
	ShowTicks   bool      `json:"showTicks"`
	TickColor   string    `json:"tickColor"`
	TickAngle   float64   `json:"tickAngle"`
	ShowGrid    bool      `json:"showGrid"`
	GridStyle   LineStyle `json:"gridStyle"`
	GridWidth   float64   `json:"gridWidth"`
	GridOpacity float64   `json:"gridOpacity"`
	GridColor   string    `json:"gridColor"`
	Min         OptFloat  `json:"min"`
	Max         OptFloat  `json:"max"`
	Step        OptFloat  `json:"step"`
}

// ErrorBarStyle is the global error bar configuration.
type ErrorBarStyle struct {
	Show     bool      `json:"show"`
	Mode     ErrorMode `json:"mode"`
	Color    string    `json:"color"`
	Width    float64   `json:"width"`
	CapWidth float64   `json:"capWidth"`
}

// ValueLabelStyle configures the numeric labels drawn above bars.
type ValueLabelStyle struct {
	Show    bool    `json:"show"`
	Size    float64 `json:"size"`
	Color   string  `json:"color"`
	OffsetY float64 `json:"offsetY"`
}

// ExportDefaults are the last confirmed export options, persisted with
// the settings so the export dialog reopens where the user left it.
type ExportDefaults struct {
	Format      string `json:"format"`
	Name        string `json:"name"`
	Scale       int    `json:"scale"`
	Transparent bool   `json:"transparent"`
}

// Settings is the whole chart configuration. A Settings value is never
// mutated in place by the engine; operations return replacement copies.
type Settings struct {
	Palette    string `json:"palette"`
	Background string `json:"background"`
	TextColor  string `json:"textColor"`
	FontFamily string `json:"fontFamily"`

	Padding      float64  `json:"padding"`
	CustomWidth  OptFloat `json:"customWidth"`
	CustomHeight OptFloat `json:"customHeight"`
	AspectRatio  float64  `json:"aspectRatio"`

	BarGap       float64     `json:"barGap"`
	CornerRadius float64     `json:"cornerRadius"`
	CornerStyle  CornerStyle `json:"cornerStyle"`
	Horizontal   bool        `json:"horizontal"`

	WithBorder    bool    `json:"withBorder"`
	BorderWidth   float64 `json:"borderWidth"`
	BorderOpacity float64 `json:"borderOpacity"`
	FillOpacity   float64 `json:"fillOpacity"`

	ErrorBars   ErrorBarStyle   `json:"errorBars"`
	ValueLabels ValueLabelStyle `json:"valueLabels"`

	Title    Caption `json:"title"`
	Subtitle Caption `json:"subtitle"`

	XAxis    AxisStyle `json:"xAxis"`
	YAxis    AxisStyle `json:"yAxis"`
	AxisSync bool      `json:"axisSync"`

	AxisTitleSize float64 `json:"axisTitleSize"`
	TickLabelSize float64 `json:"tickLabelSize"`

	Export ExportDefaults `json:"export"`
}

const (
	defaultWidth     = 800.0
	defaultRatio     = 0.625
	minHeight        = 200.0
	defaultFontSize  = 14.0
	defaultTickSize  = 12.0
	defaultTitleSize = 20.0
)

func DefaultAxisStyle(title string) AxisStyle {
	return AxisStyle{
		Title:       title,
		ShowLine:    true,
		LineWidth:   1,
		LineColor:   "#374151",
		ShowTicks:   true,
		TickColor:   "#374151",
		ShowGrid:    false,
		GridStyle:   StyleDashed,
		GridWidth:   1,
		GridOpacity: 0.35,
		GridColor:   "#9ca3af",
	}
}

func DefaultSettings() Settings {
	return Settings{
		Palette:       "category10",
		Background:    "#ffffff",
		TextColor:     "#111827",
		FontFamily:    "Helvetica",
		Padding:       16,
		AspectRatio:   defaultRatio,
		BarGap:        0.25,
		CornerStyle:   CornerTop,
		BorderWidth:   1,
		BorderOpacity: 1,
		FillOpacity:   1,
		ErrorBars: ErrorBarStyle{
			Mode:     ErrorBoth,
			Color:    "#1f2937",
			Width:    1.5,
			CapWidth: 8,
		},
		ValueLabels: ValueLabelStyle{
			Size:  defaultTickSize,
			Color: "#111827",
		},
		Title: Caption{
			Size:  defaultTitleSize,
			Color: "#111827",
		},
		Subtitle: Caption{
			Size:  defaultFontSize,
			Color: "#6b7280",
		},
		XAxis:         DefaultAxisStyle(""),
		YAxis:         DefaultAxisStyle(""),
		AxisTitleSize: defaultFontSize,
		TickLabelSize: defaultTickSize,
		Export: ExportDefaults{
			Format: "png",
			Name:   "barplot",
			Scale:  2,
		},
	}
}

// syncAxis copies the shared style fields from one axis onto the other.
// The set of mirrored fields is the single source of truth for axis
// sync: titles, grid settings and scale bounds are never mirrored.
func syncAxis(from AxisStyle, to AxisStyle) AxisStyle {
	to.ShowLine = from.ShowLine
	to.LineWidth = from.LineWidth
	to.LineColor = from.LineColor
	to.ShowTicks = from.ShowTicks
	to.TickColor = from.TickColor
	to.TickAngle = from.TickAngle
	return to
}

// SyncFromX returns a copy of s with the Y axis shared fields mirrored
// from the X axis. It is a no-op when axis sync is disabled.
func (s Settings) SyncFromX() Settings {
	if s.AxisSync {
		s.YAxis = syncAxis(s.XAxis, s.YAxis)
	}
	return s
}

// SyncFromY mirrors the other way around.
func (s Settings) SyncFromY() Settings {
	if s.AxisSync {
		s.XAxis = syncAxis(s.YAxis, s.XAxis)
	}
	return s
}
