package dfn

import (
	"math"

	"github.com/ongchi/dfngen/geom"
)

// RadiusKind selects which of the four truncated radius distributions a
// family draws from.
type RadiusKind int

const (
	RadiusLogNormal RadiusKind = iota
	RadiusPowerLaw
	RadiusExponential
	RadiusConstant
)

// RadiusDist is one family's fully-parameterized radius distribution.
// Only the fields relevant to Kind are read.
type RadiusDist struct {
	Kind RadiusKind

	Mu, Sigma float64 // log-normal
	Alpha     float64 // power-law exponent
	Lambda    float64 // exponential rate
	Const     float64 // constant radius

	RMin, RMax float64 // truncation bounds (ignored for Constant)
}

// Sample draws one radius from the distribution.
func (d RadiusDist) Sample(r *RNG) float64 {
	switch d.Kind {
	case RadiusConstant:
		return d.Const
	case RadiusPowerLaw:
		return samplePowerLaw(r, d.Alpha, d.RMin, d.RMax)
	case RadiusExponential:
		return sampleTruncatedExponential(r, d.Lambda, d.RMin, d.RMax)
	default:
		return sampleTruncatedLogNormal(r, d.Mu, d.Sigma, d.RMin, d.RMax)
	}
}

// sampleTruncatedLogNormal draws from a log-normal(mu, sigma) distribution
// via Box-Muller, rejecting draws outside [rmin, rmax]. A bounded retry
// count keeps a pathologically narrow truncation window from looping
// forever; the last draw is clamped into range as a fallback.
func sampleTruncatedLogNormal(r *RNG, mu, sigma, rmin, rmax float64) float64 {
	var v float64
	for attempt := 0; attempt < 1000; attempt++ {
		u1 := r.Float64()
		u2 := r.Float64()
		if u1 <= 0 {
			u1 = 1e-300
		}
		z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
		v = math.Exp(mu + sigma*z)
		if v >= rmin && v <= rmax {
			return v
		}
	}
	return math.Max(rmin, math.Min(rmax, v))
}

// samplePowerLaw draws from a power-law density proportional to r^-alpha
// on [rmin, rmax] via closed-form inverse-CDF.
func samplePowerLaw(r *RNG, alpha, rmin, rmax float64) float64 {
	u := r.Float64()
	if alpha == 1 {
		// CDF degenerates to a log scale at alpha == 1.
		return rmin * math.Pow(rmax/rmin, u)
	}
	exp := 1 - alpha
	lo := math.Pow(rmin, exp)
	hi := math.Pow(rmax, exp)
	return math.Pow(lo+u*(hi-lo), 1/exp)
}

// sampleTruncatedExponential draws from an exponential(lambda)
// distribution truncated to [rmin, rmax] via inverse-CDF.
func sampleTruncatedExponential(r *RNG, lambda, rmin, rmax float64) float64 {
	u := r.Float64()
	span := 1 - math.Exp(-lambda*(rmax-rmin))
	return rmin - math.Log(1-u*span)/lambda
}

// SampleOrientation draws a unit normal from a Fisher (von Mises-Fisher on
// the sphere) distribution centered on mean with concentration kappa. A
// kappa of +Inf is deterministic: mean is returned unchanged.
func SampleOrientation(r *RNG, mean geom.Vec3, kappa float64) geom.Vec3 {
	mean = mean.Unit()
	if math.IsInf(kappa, 1) {
		return mean
	}

	u := r.Float64()
	var w float64
	if kappa < 1e-6 {
		w = 2*u - 1 // kappa -> 0: uniform over the whole sphere
	} else {
		w = 1 + math.Log(u+(1-u)*math.Exp(-2*kappa))/kappa
	}
	phi := 2 * math.Pi * r.Float64()
	s := math.Sqrt(math.Max(0, 1-w*w))
	local := geom.V3(s*math.Cos(phi), s*math.Sin(phi), w)

	q := geom.FromToRotation(geom.V3(0, 0, 1), mean)
	return q.Rotate(local).Unit()
}

// SampleUniformBox draws a point uniformly within the axis-aligned box
// [min, max], used for translation sampling within a family's region.
func SampleUniformBox(r *RNG, box geom.AABB) geom.Vec3 {
	return geom.V3(
		lerpUniform(r, box.Min.X, box.Max.X),
		lerpUniform(r, box.Min.Y, box.Max.Y),
		lerpUniform(r, box.Min.Z, box.Max.Z),
	)
}

func lerpUniform(r *RNG, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
