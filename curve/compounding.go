package curve

import (
	"fmt"
	"math"
	"strings"
)

// Compounding selects how a zero rate is quoted.
type Compounding int

const (
	Continuous Compounding = iota
	Simple
	Annual
	SemiAnnual
	Quarterly
)

// minConversionTime mirrors the small-time guard used when converting a
// continuous rate to simple compounding at t = 0.
const minConversionTime = 1e-4

// ParseCompounding accepts "continuous", "simple", "annual", "semiannual" and
// "quarterly".
func ParseCompounding(s string) (Compounding, error) {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "-", "")) {
	case "continuous", "":
		return Continuous, nil
	case "simple":
		return Simple, nil
	case "annual":
		return Annual, nil
	case "semiannual":
		return SemiAnnual, nil
	case "quarterly":
		return Quarterly, nil
	default:
		return 0, fmt.Errorf("%w: unknown compounding %q", ErrInvalidInput, s)
	}
}

func (c Compounding) String() string {
	switch c {
	case Continuous:
		return "continuous"
	case Simple:
		return "simple"
	case Annual:
		return "annual"
	case SemiAnnual:
		return "semiannual"
	case Quarterly:
		return "quarterly"
	default:
		return fmt.Sprintf("Compounding(%d)", int(c))
	}
}

func (c Compounding) frequency() float64 {
	switch c {
	case Annual:
		return 1
	case SemiAnnual:
		return 2
	case Quarterly:
		return 4
	default:
		return 0
	}
}

// fromContinuous converts continuously compounded r over t years into the
// equivalent rate under c, preserving the compound factor exp(r*t).
func (c Compounding) fromContinuous(r, t float64) (float64, error) {
	switch c {
	case Continuous:
		return r, nil
	case Simple:
		t = math.Max(t, minConversionTime)
		return math.Expm1(r*t) / t, nil
	case Annual, SemiAnnual, Quarterly:
		f := c.frequency()
		return f * math.Expm1(r/f), nil
	default:
		return 0, fmt.Errorf("%w: unknown compounding %d", ErrInvalidInput, int(c))
	}
}

// CompoundFactor returns the growth of one unit over t years at rate r
// quoted under c.
func (c Compounding) CompoundFactor(r, t float64) float64 {
	switch c {
	case Simple:
		return 1 + r*t
	case Annual, SemiAnnual, Quarterly:
		f := c.frequency()
		return math.Pow(1+r/f, f*t)
	default:
		return math.Exp(r * t)
	}
}
