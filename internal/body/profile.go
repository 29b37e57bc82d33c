package body

// Height returns the profile height at position x. Outside the body the
// end heights are held; inside, heights are interpolated linearly between
// nose, front axle, rear axle and tail.
func (s *Spec) Height(x float64) float64 {
	p := s.Profile

	switch {
	case x <= 0:
		return p.Nose
	case x >= s.Length:
		return p.Tail
	case x < s.FrontAxle:
		return lerp(p.Nose, p.Front, x/s.FrontAxle)
	case x < s.RearAxle:
		return lerp(p.Front, p.Rear, (x-s.FrontAxle)/(s.RearAxle-s.FrontAxle))
	default:
		return lerp(p.Rear, p.Tail, (x-s.RearAxle)/(s.Length-s.RearAxle))
	}
}

// MaxHeight returns the largest profile height on [start, end].
// The profile is piecewise linear, so only the ends and the interior
// control points need checking.
func (s *Spec) MaxHeight(start, end float64) float64 {
	h := max(s.Height(start), s.Height(end))
	for _, x := range []float64{0, s.FrontAxle, s.RearAxle, s.Length} {
		if x > start && x < end {
			h = max(h, s.Height(x))
		}
	}
	return h
}

func lerp(from, to, t float64) float64 {
	return from + t*(to-from)
}
