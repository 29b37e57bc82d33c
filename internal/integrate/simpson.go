// Package integrate provides the definite-integration primitive used for
// every volume and moment in gocog.
package integrate

// DefaultPanels is the panel count used when callers do not choose one.
// Reference outputs are reproduced to 4 decimal places at this count.
const DefaultPanels = 1000

// Simpson approximates the integral of f over [a, b] with the composite
// Simpson's rule on n panels. An empty or reversed interval yields 0.
// n is rounded up to the next even number; n <= 0 uses DefaultPanels.
func Simpson(f func(float64) float64, a, b float64, n int) float64 {
	if a >= b {
		return 0
	}
	if n <= 0 {
		n = DefaultPanels
	}
	if n%2 != 0 {
		n++
	}

	h := (b - a) / float64(n)
	sum := f(a) + f(b)
	for i := 1; i < n; i++ {
		x := a + float64(i)*h
		if i%2 == 1 {
			sum += 4 * f(x)
		} else {
			sum += 2 * f(x)
		}
	}

	return sum * h / 3
}

// Definite is Simpson with DefaultPanels.
func Definite(f func(float64) float64, a, b float64) float64 {
	return Simpson(f, a, b, DefaultPanels)
}
