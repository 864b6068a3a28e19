package curve

// naturalCubic is a natural cubic spline: C2 at interior knots with zero
// second derivative at both ends. On segment i, with dt = t - ts[i],
//
//	S_i(t) = ys[i] + b[i]*dt + c[i]*dt^2 + d[i]*dt^3
//
// Beyond the ends the first or last segment polynomial is used as is.
type naturalCubic struct {
	ts, ys  []float64
	b, c, d []float64
}

func newNaturalCubic(ts, ys []float64) *naturalCubic {
	n := len(ts)
	h := make([]float64, n-1)
	for i := range h {
		h[i] = ts[i+1] - ts[i]
	}

	m := secondDerivatives(h, ys)

	s := &naturalCubic{
		ts: ts,
		ys: ys,
		b:  make([]float64, n-1),
		c:  make([]float64, n-1),
		d:  make([]float64, n-1),
	}
	for i := 0; i < n-1; i++ {
		s.b[i] = (ys[i+1]-ys[i])/h[i] - h[i]*(2*m[i]+m[i+1])/6
		s.c[i] = m[i] / 2
		s.d[i] = (m[i+1] - m[i]) / (6 * h[i])
	}
	return s
}

// secondDerivatives solves the tridiagonal system for the knot second
// derivatives M with M[0] = M[n-1] = 0:
//
//	h[i-1]*M[i-1] + 2(h[i-1]+h[i])*M[i] + h[i]*M[i+1] = 6*(delta[i] - delta[i-1])
//
// using the Thomas algorithm. The system is strictly diagonally dominant.
func secondDerivatives(h, ys []float64) []float64 {
	n := len(ys)
	m := make([]float64, n)
	if n < 3 {
		return m
	}

	k := n - 2 // interior unknowns M[1..n-2]
	diag := make([]float64, k)
	rhs := make([]float64, k)
	for j := 0; j < k; j++ {
		i := j + 1
		diag[j] = 2 * (h[i-1] + h[i])
		rhs[j] = 6 * ((ys[i+1]-ys[i])/h[i] - (ys[i]-ys[i-1])/h[i-1])
	}

	// Forward sweep. Sub-diagonal of row j is h[j], super-diagonal is h[j+1].
	for j := 1; j < k; j++ {
		w := h[j] / diag[j-1]
		diag[j] -= w * h[j]
		rhs[j] -= w * rhs[j-1]
	}

	// Back substitution.
	m[k] = rhs[k-1] / diag[k-1]
	for j := k - 2; j >= 0; j-- {
		m[j+1] = (rhs[j] - h[j+1]*m[j+2]) / diag[j]
	}
	return m
}

func (s *naturalCubic) value(t float64) float64 {
	i := segmentIndex(s.ts, t)
	dt := t - s.ts[i]
	return s.ys[i] + dt*(s.b[i]+dt*(s.c[i]+dt*s.d[i]))
}
