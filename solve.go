package hermite

import "math"

// DefaultAccuracy is a default value for methods that take an accuracy
// argument. It is suitable for general-purpose use, such as animation paths
// measured in meters.
const DefaultAccuracy = 1e-6

// quadraticRoots returns the real roots of c2 x² + c1 x + c0 in increasing
// order. When c2 is too small to divide by, the equation is solved as a linear
// one. If all coefficients are zero, 0 is reported as the only root.
func quadraticRoots(c0, c1, c2 float64) ([2]float64, int) {
	// Monic form x² + b x + c.
	b, c := c1/c2, c0/c2
	if !isFiniteFloat(b) || !isFiniteFloat(c) {
		return linearRoot(c0, c1)
	}

	var r1 float64
	switch disc := b*b - 4*c; {
	case math.IsInf(disc, 1):
		// b² overflowed, so -b approximates the larger root.
		r1 = -b
	case disc < 0:
		return [2]float64{}, 0
	case disc == 0:
		return [2]float64{-b / 2}, 1
	default:
		// The root of larger magnitude, which doesn't suffer from
		// cancellation. The other one follows from r1 r2 = c.
		r1 = -(b + math.Copysign(math.Sqrt(disc), b)) / 2
	}
	r2 := c / r1
	if !isFiniteFloat(r2) {
		return [2]float64{r1}, 1
	}
	if r2 < r1 {
		r1, r2 = r2, r1
	}
	return [2]float64{r1, r2}, 2
}

func linearRoot(c0, c1 float64) ([2]float64, int) {
	switch {
	case c1 != 0:
		if x := -c0 / c1; isFiniteFloat(x) {
			return [2]float64{x}, 1
		}
		return [2]float64{}, 0
	case c0 == 0:
		return [2]float64{0}, 1
	default:
		return [2]float64{}, 0
	}
}

func isFiniteFloat(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// solveITP finds a zero of f between a and b with the [ITP method]
// (interpolate, truncate, project). ya = f(a) must be negative and yb = f(b)
// positive. If f is monotonic on the bracket, the result is within epsilon of
// the zero, after at most one iteration more than bisection would need.
//
// k1 controls the truncation step; 0.2 / (b - a) is a good choice. The
// truncation exponent is fixed at 2.
//
// [ITP method]: https://en.wikipedia.org/wiki/ITP_Method
func solveITP(f func(float64) float64, a, b, ya, yb, epsilon, k1 float64) float64 {
	steps := 1 + max(int(math.Ceil(math.Log2((b-a)/epsilon)))-1, 0)
	// Radius of the interval around the midpoint that keeps the worst case
	// within steps iterations. It halves with every iteration.
	radius := math.Ldexp(epsilon, steps)
	for b-a > 2*epsilon {
		mid := (a + b) / 2
		x := (yb*a - ya*b) / (yb - ya)
		dir := math.Copysign(1, mid-x)
		if delta := k1 * (b - a) * (b - a); delta <= math.Abs(mid-x) {
			x += dir * delta
		} else {
			x = mid
		}
		if r := radius - (b-a)/2; math.Abs(x-mid) > r {
			x = mid - dir*r
		}

		switch y := f(x); {
		case y > 0:
			b, yb = x, y
		case y < 0:
			a, ya = x, y
		default:
			return x
		}
		radius /= 2
	}
	return (a + b) / 2
}

// gaussLegendre returns the weights and nodes, as {weight, node} pairs, of
// n-point Gauss-Legendre quadrature over [-1, 1]. n must be even.
//
// The nodes are the roots of the Legendre polynomial Pn, found with Newton's
// method starting from Tricomi's approximation.
func gaussLegendre(n int) [][2]float64 {
	out := make([][2]float64, 0, n)
	for i := range n / 2 {
		x := math.Cos(math.Pi * (float64(i) + 0.75) / (float64(n) + 0.5))
		for range 100 {
			p, q := legendre(n, x)
			// P'n(x) = n (x Pn(x) - Pn-1(x)) / (x² - 1)
			dp := float64(n) * (x*p - q) / (x*x - 1)
			dx := p / dp
			x -= dx
			if math.Abs(dx) < 1e-16 {
				break
			}
		}
		p, q := legendre(n, x)
		dp := float64(n) * (x*p - q) / (x*x - 1)
		w := 2 / ((1 - x*x) * dp * dp)
		out = append(out, [2]float64{w, -x}, [2]float64{w, x})
	}
	return out
}

// legendre evaluates Pn(x) and Pn-1(x) for n >= 1.
func legendre(n int, x float64) (float64, float64) {
	prev, cur := 1.0, x
	for j := 2; j <= n; j++ {
		fj := float64(j)
		prev, cur = cur, ((2*fj-1)*x*cur-(fj-1)*prev)/fj
	}
	return cur, prev
}

var (
	gaussLegendre8  = gaussLegendre(8)
	gaussLegendre16 = gaussLegendre(16)
)
