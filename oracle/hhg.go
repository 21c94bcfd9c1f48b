// Package oracle: saddle-point systems from strong-field physics.
package oracle

import (
	"fmt"

	"github.com/holozero/holozero/interval"
	"github.com/holozero/holozero/taylor"
)

// HHG configures the high-harmonic-generation saddle-point system. The zeros
// of the resulting map are the complex ionisation/recollision time pairs of
// an electron in an Np-cycle sin² laser pulse.
//
//	F0    — peak field strength (atomic units)
//	W     — carrier angular frequency
//	Np    — number of optical cycles in the envelope
//	Ip    — ionisation potential of the target
//	Omega — emitted harmonic frequency
//
// All fields are intervals so that decimal constants stay enclosed.
type HHG struct {
	F0, W, Np, Ip, Omega interval.Interval
}

// DefaultHHG returns the configuration used throughout the reference
// computations: a four-cycle pulse at Ti:Sapphire frequency on krypton.
func DefaultHHG() HHG {
	return HHG{
		F0:    dec("0.0534"),
		W:     dec("0.057"),
		Np:    interval.Point(4),
		Ip:    dec("0.5145"),
		Omega: interval.Point(2),
	}
}

// pulse holds the validated, precomputed quantities shared by the HHG and
// ATI map closures.
type pulse struct {
	a0                 interval.Interval // vector potential amplitude A0 = (F0/2)/W
	np, npm1, npp1     interval.Interval
	rNp, rNpm1, rNpp1  interval.Interval // reciprocals for the excursion terms
	twoIp, twoIpOmega  interval.Interval // 2·Ip and 2·(Ip − Omega)
}

// prepare validates the configuration and precomputes derived constants.
func (h HHG) prepare() (pulse, error) {
	a0, err := h.F0.MulFloat(0.5).Div(h.W)
	if err != nil {
		return pulse{}, fmt.Errorf("%w: carrier frequency contains zero", ErrBadConfig)
	}
	one := interval.Point(1)
	npm1 := h.Np.Sub(one)
	npp1 := h.Np.Add(one)
	rNp, err := one.Div(h.Np)
	if err != nil {
		return pulse{}, fmt.Errorf("%w: cycle count contains zero", ErrBadConfig)
	}
	rNpm1, err := one.Div(npm1)
	if err != nil {
		return pulse{}, fmt.Errorf("%w: cycle count adjacent to one", ErrBadConfig)
	}
	rNpp1, err := one.Div(npp1)
	if err != nil {
		return pulse{}, fmt.Errorf("%w: cycle count adjacent to minus one", ErrBadConfig)
	}
	return pulse{
		a0:         a0,
		np:         h.Np,
		npm1:       npm1,
		npp1:       npp1,
		rNp:        rNp,
		rNpm1:      rNpm1,
		rNpp1:      rNpp1,
		twoIp:      h.Ip.MulFloat(2),
		twoIpOmega: h.Ip.Sub(h.Omega).MulFloat(2),
	}, nil
}

// envelope encloses the pulse vector potential A(z) for the sin² envelope.
// Two algebraically equal formulations are evaluated and intersected; the
// product form is tighter near the pulse edges, the sum form in the middle.
func (p pulse) envelope(z taylor.Jet) (taylor.Jet, error) {
	sum := z.Scale(p.npm1).Sin().
		Sub(z.Scale(p.np).Sin().MulFloat(2)).
		Add(z.Scale(p.npp1).Sin()).
		Scale(p.a0).MulFloat(-0.25)
	prod := z.MulFloat(0.5).Sin().Sqr().
		Mul(z.Scale(p.np).Sin()).
		Scale(p.a0)
	return sum.Intersect(prod)
}

// simpleEnvelope encloses the monochromatic vector potential A0·cos z.
func (p pulse) simpleEnvelope(z taylor.Jet) taylor.Jet {
	return z.Cos().Scale(p.a0)
}

// excursion encloses the quiver excursion α(z) = ∫A.
func (p pulse) excursion(z taylor.Jet) taylor.Jet {
	return z.Scale(p.npm1).Cos().Scale(p.rNpm1).
		Sub(z.Scale(p.np).Cos().Scale(p.rNp).MulFloat(2)).
		Add(z.Scale(p.npp1).Cos().Scale(p.rNpp1)).
		Scale(p.a0).MulFloat(0.25)
}

// drift encloses the drift momentum k_s = (α(z1) − α(z1−z2)) / z2.
// Fails when the excursion-time rectangle z2 contains zero.
func (p pulse) drift(z1, z2 taylor.Jet) (taylor.Jet, error) {
	return p.excursion(z1).Sub(p.excursion(z1.Sub(z2))).Div(z2)
}

// simpleDrift is the monochromatic drift momentum A0·(sin(z2+z1) − sin z1)/z2.
func (p pulse) simpleDrift(z1, z2 taylor.Jet) (taylor.Jet, error) {
	return z2.Add(z1).Sin().Sub(z1.Sin()).Scale(p.a0).Div(z2)
}

// Full returns the saddle-point map for the full sin²-envelope pulse:
//
//	f1 = (k_s + A(z1 − z2))² + 2·Ip
//	f2 = (k_s + A(z1))² + 2·(Ip − Omega)
func (h HHG) Full() (Func, error) {
	p, err := h.prepare()
	if err != nil {
		return nil, err
	}
	return func(z1, z2 taylor.Jet, _ interval.Interval) (taylor.Jet, taylor.Jet, error) {
		ks, err := p.drift(z1, z2)
		if err != nil {
			return taylor.Jet{}, taylor.Jet{}, err
		}
		env1, err := p.envelope(z1.Sub(z2))
		if err != nil {
			return taylor.Jet{}, taylor.Jet{}, err
		}
		env2, err := p.envelope(z1)
		if err != nil {
			return taylor.Jet{}, taylor.Jet{}, err
		}
		f1 := ks.Add(env1).Sqr().Add(taylor.FromInterval(p.twoIp))
		f2 := ks.Add(env2).Sqr().Add(taylor.FromInterval(p.twoIpOmega))
		return f1, f2, nil
	}, nil
}

// Simple returns the monochromatic-field variant of the map.
func (h HHG) Simple() (Func, error) {
	p, err := h.prepare()
	if err != nil {
		return nil, err
	}
	return func(z1, z2 taylor.Jet, _ interval.Interval) (taylor.Jet, taylor.Jet, error) {
		ks, err := p.simpleDrift(z1, z2)
		if err != nil {
			return taylor.Jet{}, taylor.Jet{}, err
		}
		f1 := ks.Add(p.simpleEnvelope(z1)).Sqr().Add(taylor.FromInterval(p.twoIp))
		f2 := ks.Add(p.simpleEnvelope(z2.Add(z1))).Sqr().Add(taylor.FromInterval(p.twoIpOmega))
		return f1, f2, nil
	}, nil
}

// ATI configures the above-threshold-ionisation saddle-point system. It
// shares the pulse model with HHG but closes the second equation on the
// drift momentum against the scalar parameter (the final momentum) instead
// of a fixed harmonic frequency.
type ATI struct {
	HHG
}

// DefaultATI returns the ATI system over the default pulse.
func DefaultATI() ATI {
	return ATI{HHG: DefaultHHG()}
}

// Full returns the full-envelope ATI map:
//
//	f1 = (k_s + A(z1))² + 2·Ip
//	f2 = (p + A(z2 + z1))² − (k_s + A(z2 + z1))²
func (a ATI) Full() (Func, error) {
	p, err := a.prepare()
	if err != nil {
		return nil, err
	}
	return func(z1, z2 taylor.Jet, param interval.Interval) (taylor.Jet, taylor.Jet, error) {
		ks, err := p.drift(z1, z2)
		if err != nil {
			return taylor.Jet{}, taylor.Jet{}, err
		}
		env1, err := p.envelope(z1)
		if err != nil {
			return taylor.Jet{}, taylor.Jet{}, err
		}
		envLate, err := p.envelope(z2.Add(z1))
		if err != nil {
			return taylor.Jet{}, taylor.Jet{}, err
		}
		f1 := ks.Add(env1).Sqr().Add(taylor.FromInterval(p.twoIp))
		f2 := taylor.FromInterval(param).Add(envLate).Sqr().
			Sub(ks.Add(envLate).Sqr())
		return f1, f2, nil
	}, nil
}

// Simple returns the monochromatic ATI map.
func (a ATI) Simple() (Func, error) {
	p, err := a.prepare()
	if err != nil {
		return nil, err
	}
	return func(z1, z2 taylor.Jet, param interval.Interval) (taylor.Jet, taylor.Jet, error) {
		ks, err := p.simpleDrift(z1, z2)
		if err != nil {
			return taylor.Jet{}, taylor.Jet{}, err
		}
		envLate := p.simpleEnvelope(z2.Add(z1))
		f1 := ks.Add(p.simpleEnvelope(z1)).Sqr().Add(taylor.FromInterval(p.twoIp))
		f2 := taylor.FromInterval(param).Add(envLate).Sqr().
			Sub(ks.Add(envLate).Sqr())
		return f1, f2, nil
	}, nil
}

// dec parses a decimal constant known to be well-formed.
func dec(s string) interval.Interval {
	x, err := interval.Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}
