package tsaiwu

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Carbon/epoxy strengths used throughout, captured from the reference
// wing-spar analysis. No transverse data: transversely isotropic.
func testStrengths() Strengths {
	return Strengths{
		Xc:  4.206e8,
		Xt:  5.629e8,
		Zc:  1.444e8,
		Zt:  4.938e7,
		Sxy: 4.81e7,
		Syz: 2.203e6,
	}
}

func TestTransverselyIsotropicShortcut(t *testing.T) {
	crit, err := New(testStrengths())
	require.NoError(t, err)

	// Without the axis-2 trio the axis-1 and yz-shear coefficients must
	// be reused bit-for-bit.
	assert.Equal(t, crit.F1, crit.F2)
	assert.Equal(t, crit.F11, crit.F22)
	assert.Equal(t, crit.F44, crit.F55)
	assert.Equal(t, crit.F13, crit.F23)
}

func TestCoefficientDerivation(t *testing.T) {
	s := testStrengths()
	crit, err := New(s)
	require.NoError(t, err)

	assert.Equal(t, 1/(s.Xc*s.Xt), crit.F11)
	assert.Equal(t, 1/(s.Zc*s.Zt), crit.F33)
	assert.Equal(t, (s.Xc-s.Xt)/(s.Xc*s.Xt), crit.F1)
	assert.Equal(t, (s.Zc-s.Zt)/(s.Zc*s.Zt), crit.F3)
	assert.Equal(t, 1/(s.Sxy*s.Sxy), crit.F66)
	assert.Equal(t, 1/(s.Syz*s.Syz), crit.F44)

	// Interaction coefficients against reference-run values.
	assert.InEpsilon(t, 8.3160082769393329e-08, crit.F12, 1e-12)
	assert.InEpsilon(t, 1.8157056379053773e-06, crit.F13, 1e-12)
	assert.InEpsilon(t, 1.8157056379053773e-06, crit.F23, 1e-12)
}

func TestTransverseGroupCoefficients(t *testing.T) {
	s := testStrengths()
	s.Transverse = &TransverseStrengths{Yc: 1.5e8, Yt: 4.0e7, Sxz: 5.0e7}
	crit, err := New(s)
	require.NoError(t, err)

	tv := s.Transverse
	assert.Equal(t, (tv.Yc-tv.Yt)/(tv.Yc*tv.Yt), crit.F2)
	assert.Equal(t, 1/(tv.Yc*tv.Yt), crit.F22)
	assert.Equal(t, 1/(tv.Sxz*tv.Sxz), crit.F55)
	assert.NotEqual(t, crit.F1, crit.F2)
}

func TestInvalidStrengths(t *testing.T) {
	cases := map[string]Strengths{
		"zero Xc":     {Xt: 1, Zc: 1, Zt: 1, Sxy: 1, Syz: 1},
		"negative Zt": {Xc: 1, Xt: 1, Zc: 1, Zt: -2, Sxy: 1, Syz: 1},
		"zero Syz":    {Xc: 1, Xt: 1, Zc: 1, Zt: 1, Sxy: 1},
		"NaN Sxy":     {Xc: 1, Xt: 1, Zc: 1, Zt: 1, Sxy: math.NaN(), Syz: 1},
		"zero transverse Sxz": {
			Xc: 1, Xt: 1, Zc: 1, Zt: 1, Sxy: 1, Syz: 1,
			Transverse: &TransverseStrengths{Yc: 1, Yt: 1},
		},
	}
	for name, s := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New(s)
			assert.ErrorIs(t, err, ErrInvalidStrength)
		})
	}
}

func TestFailureIndexSymmetry(t *testing.T) {
	crit, err := New(testStrengths())
	require.NoError(t, err)

	// Transversely isotropic: swapping the axis-1 and axis-2 normal
	// stresses must not change the failure index.
	a, b := 5.5e7, -2.1e7
	r1, err := crit.Evaluate(Stress{X: a, Y: b})
	require.NoError(t, err)
	r2, err := crit.Evaluate(Stress{X: b, Y: a})
	require.NoError(t, err)
	assert.InEpsilon(t, r1.R, r2.R, 1e-12)
}

func TestZeroStressDegenerate(t *testing.T) {
	crit, err := New(testStrengths())
	require.NoError(t, err)

	res, err := crit.Evaluate(Stress{})
	assert.ErrorIs(t, err, ErrDegenerateSolve)
	assert.Equal(t, 0.0, res.R)
	assert.False(t, res.Fails)
	assert.True(t, math.IsNaN(res.SafetyFactor))
}

func TestNegativeDiscriminantNoRealRoot(t *testing.T) {
	crit, err := New(testStrengths())
	require.NoError(t, err)

	// The shear stresses enter the safety-factor quadratic linearly, so a
	// negative yz shear alone gives A = F44*YZ < 0 with B = 0 and the
	// discriminant B^2 + 4A goes negative. The failure index itself stays
	// well defined (R = F44*YZ^2).
	res, err := crit.Evaluate(Stress{YZ: -1e6})
	assert.ErrorIs(t, err, ErrNoRealRoot)
	assert.InEpsilon(t, crit.F44*1e12, res.R, 1e-12)
	assert.False(t, res.Fails)
	assert.True(t, math.IsNaN(res.SafetyFactor))
}

func TestGoldenWingSparStress(t *testing.T) {
	crit, err := New(testStrengths())
	require.NoError(t, err)

	// Stress state produced by the reference hollow-box conversion for
	// h=0.02, b=0.002, t=0.0012, MF=100, FC=-1000 (see package section).
	res, err := crit.Evaluate(Stress{
		X:  -6.6004021493021512e8,
		YZ: 1.2936788212632217e8,
	})
	require.NoError(t, err)
	assert.InEpsilon(t, 3450.6868787017411, res.R, 1e-10)
	assert.True(t, res.Fails)
	assert.InEpsilon(t, 0.63722995179636266, res.SafetyFactor, 1e-10)
}

func TestSafetyFactorScalingLaw(t *testing.T) {
	crit, err := New(testStrengths())
	require.NoError(t, err)

	// For a single normal component the safety-factor quadratic
	// coincides with the quadratic part of R, so scaling the state by
	// the computed factor lands exactly on the failure surface.
	s := Stress{X: 2.0e8}
	res, err := crit.Evaluate(s)
	require.NoError(t, err)
	require.False(t, math.IsNaN(res.SafetyFactor))

	scaled, err := crit.Evaluate(s.Scaled(res.SafetyFactor))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, scaled.R, 1e-9)
}

func TestScaled(t *testing.T) {
	s := Stress{X: 1, Y: 2, Z: 3, XY: 4, XZ: 5, YZ: 6}
	assert.Equal(t, Stress{X: 2, Y: 4, Z: 6, XY: 8, XZ: 10, YZ: 12}, s.Scaled(2))
}

func TestReport(t *testing.T) {
	crit, err := New(testStrengths())
	require.NoError(t, err)

	res, err := crit.Evaluate(Stress{X: -6.6004021493021512e8, YZ: 1.2936788212632217e8})
	require.NoError(t, err)
	line := res.Report()
	assert.Contains(t, line, "material fails")
	assert.Contains(t, line, "R = ")
	assert.Contains(t, line, "safety factor = ")

	res, _ = crit.Evaluate(Stress{})
	line = res.Report()
	assert.True(t, strings.HasPrefix(line, "material does not fail"))
	assert.Contains(t, line, "safety factor undefined")
}
