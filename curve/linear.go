package curve

// linear is piecewise linear interpolation. Beyond the ends it follows the
// line through the first or last pair of knots.
type linear struct {
	ts, ys []float64
	slopes []float64
}

func newLinear(ts, ys []float64) *linear {
	slopes := make([]float64, len(ts)-1)
	for i := range slopes {
		slopes[i] = (ys[i+1] - ys[i]) / (ts[i+1] - ts[i])
	}
	return &linear{ts: ts, ys: ys, slopes: slopes}
}

func (l *linear) value(t float64) float64 {
	i := segmentIndex(l.ts, t)
	return l.ys[i] + l.slopes[i]*(t-l.ts[i])
}
