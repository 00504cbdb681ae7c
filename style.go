package barplot

import (
	"encoding/json"
)

type LineStyle int

const (
	StyleStraight LineStyle = iota
	StyleDotted
	StyleDashed
)

func GetLineStyle(str string) LineStyle {
	switch str {
	case "dotted":
		return StyleDotted
	case "dashed":
		return StyleDashed
	default:
		return StyleStraight
	}
}

func (s LineStyle) String() string {
	switch s {
	case StyleDotted:
		return "dotted"
	case StyleDashed:
		return "dashed"
	default:
		return "straight"
	}
}

func (s LineStyle) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *LineStyle) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	*s = GetLineStyle(str)
	return nil
}

// Dash returns the stroke dash lengths for a grid line, scaled by the
// line width so the pattern stays readable for thick lines.
func (s LineStyle) Dash(width float64) []int {
	if width < 1 {
		width = 1
	}
	switch s {
	case StyleDotted:
		return []int{int(width), int(width * 3)}
	case StyleDashed:
		return []int{int(width * 5), int(width * 4)}
	default:
		return nil
	}
}
