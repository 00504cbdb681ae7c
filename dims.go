package barplot

// ResolveDims reconciles the custom width and height settings with the
// aspect ratio into one concrete canvas size. When both dimensions are
// pinned the ratio is inactive; when one is pinned the other follows
// the ratio; when neither is, the measured container width drives the
// layout.
func ResolveDims(s Settings, containerWidth float64) (float64, float64) {
	ratio := s.AspectRatio
	if ratio <= 0 || !isFinite(ratio) {
		ratio = defaultRatio
	}
	switch {
	case !s.CustomWidth.IsAuto() && !s.CustomHeight.IsAuto():
		return s.CustomWidth.Get(defaultWidth), s.CustomHeight.Get(defaultWidth * ratio)
	case !s.CustomWidth.IsAuto():
		w := s.CustomWidth.Get(defaultWidth)
		return w, floorHeight(w * ratio)
	case !s.CustomHeight.IsAuto():
		h := s.CustomHeight.Get(defaultWidth * ratio)
		return h / ratio, h
	default:
		w := containerWidth
		if w <= 0 || !isFinite(w) {
			w = defaultWidth
		}
		return w, floorHeight(w * ratio)
	}
}

func floorHeight(h float64) float64 {
	if h < minHeight {
		return minHeight
	}
	return h
}
