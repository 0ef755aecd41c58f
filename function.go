package figure

import (
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/integrate/quad"
)

// Function is a real function of one variable.
//
// A Function may carry its exact derivative. Otherwise derivatives are
// approximated by central finite differences. Functions built with
// [NewComplexFunction] may evaluate to complex numbers near the border of
// their domain; [Function.Eval] returns the real part and
// [Function.EvalComplex] the full value.
type Function struct {
	eval  func(x float64) complex128
	deriv func(x float64) float64
}

// NewFunction returns the function f.
func NewFunction(f func(x float64) float64) Function {
	return Function{eval: func(x float64) complex128 { return complex(f(x), 0) }}
}

// NewComplexFunction returns a function whose values may have an imaginary
// part.
func NewComplexFunction(f func(x float64) complex128) Function {
	return Function{eval: f}
}

// Constant returns the constant function c.
func Constant(c float64) Function {
	return NewFunction(func(float64) float64 { return c }).WithDerivative(func(float64) float64 { return 0 })
}

// Linear returns x ↦ a·x + b.
func Linear(a, b float64) Function {
	return NewFunction(func(x float64) float64 { return a*x + b }).WithDerivative(func(float64) float64 { return a })
}

// WithDerivative returns fn with the exact derivative df.
func (fn Function) WithDerivative(df func(x float64) float64) Function {
	fn.deriv = df
	return fn
}

// IsValid reports whether fn was constructed, as opposed to being the zero
// value.
func (fn Function) IsValid() bool { return fn.eval != nil }

// Eval returns the real part of fn(x).
func (fn Function) Eval(x float64) float64 {
	return real(fn.eval(x))
}

// EvalComplex returns fn(x).
func (fn Function) EvalComplex(x float64) complex128 {
	return fn.eval(x)
}

// Derivative returns the derivative of fn.
func (fn Function) Derivative() Function {
	if fn.deriv != nil {
		return NewFunction(fn.deriv)
	}
	settings := &fd.Settings{Formula: fd.Central}
	return NewFunction(func(x float64) float64 {
		return fd.Derivative(fn.Eval, x, settings)
	})
}

// SecondDerivative returns the second derivative of fn. Without an exact
// first derivative, the central second-order formula is applied to fn
// directly rather than differentiating twice.
func (fn Function) SecondDerivative() Function {
	if fn.deriv != nil {
		return NewFunction(fn.deriv).Derivative()
	}
	settings := &fd.Settings{Formula: fd.Central2nd}
	return NewFunction(func(x float64) float64 {
		return fd.Derivative(fn.Eval, x, settings)
	})
}

// Integral returns the integral of fn over [a, b] using n Gauss-Legendre
// nodes.
func (fn Function) Integral(a, b float64, n int) float64 {
	return integrate(fn.Eval, a, b, n)
}

// integrate returns ∫_a^b f using an n-point Gauss-Legendre rule. Reversed
// bounds change the sign.
func integrate(f func(float64) float64, a, b float64, n int) float64 {
	switch {
	case a == b:
		return 0
	case a > b:
		return -quad.Fixed(f, b, a, n, nil, 0)
	default:
		return quad.Fixed(f, a, b, n, nil, 0)
	}
}
