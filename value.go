package barplot

import (
	"encoding/json"
	"math"
	"strconv"
)

// OptFloat is a numeric field that is either computed automatically or
// pinned to a user supplied value. The zero value is Auto.
type OptFloat struct {
	set bool
	val float64
}

func Auto() OptFloat {
	return OptFloat{}
}

func Manual(v float64) OptFloat {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return OptFloat{}
	}
	return OptFloat{
		set: true,
		val: v,
	}
}

func (o OptFloat) IsAuto() bool {
	return !o.set
}

func (o OptFloat) Get(fallback float64) float64 {
	if !o.set {
		return fallback
	}
	return o.val
}

func (o OptFloat) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(o.val, 'f', -1, 64)), nil
}

func (o *OptFloat) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*o = Auto()
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*o = Manual(v)
	return nil
}
