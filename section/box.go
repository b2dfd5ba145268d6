// Package section recovers the stress state at a thin-walled hollow
// rectangular cross-section from the internal beam loads, in the form
// consumed by the tsaiwu criterion.
package section

import (
	"errors"
	"fmt"
	"math"

	"github.com/aeromech/composite/tsaiwu"
)

// ErrInvalidGeometry indicates box dimensions with nonpositive values or
// a nonpositive second moment of area.
var ErrInvalidGeometry = errors.New("section: invalid box geometry")

// Box is a hollow rectangular cross-section of outer height H, outer
// width B and uniform wall thickness T.
type Box struct {
	H, B, T float64
}

// Loads are the internal beam loads at the evaluated section.
type Loads struct {
	Bending       float64 // bending moment from the spanwise lift distribution
	ProfileTorque float64 // torque induced by the airfoil profile
	Shear         float64 // shear force (lift at the section)
	TailTorque    float64 // torque transmitted through the tailboom
}

// Properties are the derived section constants.
type Properties struct {
	Ix float64 // second moment of area about the bending axis
	Iy float64 // second moment of area about the transverse axis
	J  float64 // torsion constant, approximated as Ix + Iy
	Q  float64 // first moment of area for the shear-flow term
}

// secondMoments evaluates the hollow-section Ix and Iy. The cavity
// dimensions may be negative when the walls overlap; the terms then add
// instead of subtracting, which keeps narrow sections like tall slender
// tailbooms valid.
func (g Box) secondMoments() (ix, iy float64) {
	h, b := g.H, g.B
	hi, bi := g.H-2*g.T, g.B-2*g.T // cavity dimensions
	ix = b*h*h*h/12 - bi*hi*hi*hi/12
	iy = h*b*b*b/12 - hi*bi*bi*bi/12
	return ix, iy
}

// Validate rejects geometry for which the hollow-section formulas break
// down: nonpositive dimensions, or walls so thick that a second moment
// of area comes out nonpositive.
func (g Box) Validate() error {
	if !(g.H > 0) || !(g.B > 0) || !(g.T > 0) {
		return fmt.Errorf("%w: dimensions must be positive (h=%g b=%g t=%g)",
			ErrInvalidGeometry, g.H, g.B, g.T)
	}
	if ix, iy := g.secondMoments(); !(ix > 0) || !(iy > 0) {
		return fmt.Errorf("%w: nonpositive second moment (Ix=%g Iy=%g) for %gx%g section, wall %g",
			ErrInvalidGeometry, ix, iy, g.H, g.B, g.T)
	}
	return nil
}

// Properties computes the section constants for valid geometry.
func (g Box) Properties() (Properties, error) {
	if err := g.Validate(); err != nil {
		return Properties{}, err
	}
	ix, iy := g.secondMoments()
	hi, bi := g.H-2*g.T, g.B-2*g.T
	p := Properties{Ix: ix, Iy: iy}
	p.J = p.Ix + p.Iy
	p.Q = (g.H*g.B - hi*bi) * g.H / 2
	return p, nil
}

// Stresses maps the beam loads to the stress state at the section: the
// bending normal stress on axis 1 and the torsion and shear-flow
// contributions summed by magnitude (conservatively) on the yz plane.
// The remaining components are zero so the result feeds
// tsaiwu.Criterion.Evaluate directly; this models the dominant load path
// for the box section, not a general 3D stress recovery.
func Stresses(g Box, l Loads) (tsaiwu.Stress, error) {
	p, err := g.Properties()
	if err != nil {
		return tsaiwu.Stress{}, err
	}
	half := g.H / 2
	return tsaiwu.Stress{
		X: -(l.Bending * half / p.Ix),
		YZ: math.Abs(l.TailTorque*half/p.J) +
			math.Abs(l.ProfileTorque*half/p.J) +
			math.Abs(l.Shear*p.Q/(p.Ix*2*g.T)),
	}, nil
}
