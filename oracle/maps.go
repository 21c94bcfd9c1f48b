// Package oracle: built-in example maps.
package oracle

import (
	"sort"

	"github.com/holozero/holozero/interval"
	"github.com/holozero/holozero/taylor"
)

// Identity is the map F(z1, z2) = (z1, z2), with its single zero at the
// origin.
func Identity(z1, z2 taylor.Jet, _ interval.Interval) (taylor.Jet, taylor.Jet, error) {
	return z1, z2, nil
}

// Shifted is the map F(z1, z2) = (z1 − p, z2); its zero tracks the scalar
// parameter, which makes it the canonical parameter-plumbing check.
func Shifted(z1, z2 taylor.Jet, p interval.Interval) (taylor.Jet, taylor.Jet, error) {
	return z1.Sub(taylor.FromInterval(p)), z2, nil
}

// Poly is a dense degree-five polynomial system with small mixed terms.
func Poly(z1, z2 taylor.Jet, _ interval.Interval) (taylor.Jet, taylor.Jet, error) {
	sqrz1 := z1.Sqr()
	sqrz2 := z2.Sqr()
	quadz2 := sqrz2.Sqr()

	f1 := sqrz1.Sqr().Mul(z1).Mul(sqrz2).MulFloat(4e-5).
		Add(z1.Mul(quadz2).MulFloat(2e-3)).
		Add(sqrz1.Mul(z2).MulFloat(2)).
		Sub(z2).
		AddFloat(0.75)
	f2 := z1.Mul(quadz2).MulFloat(3e-4).
		Sub(z1.Mul(sqrz1).MulFloat(7e-6)).
		Add(z1.Mul(sqrz2).MulFloat(2)).
		Sub(z1).
		AddFloat(0.75)
	return f1, f2, nil
}

// Exponential is the transcendental system
// (sin z1 + z1² + e^{z2} − cos 2z2, cos z1 + z2³ + e^{2z2} − 2).
func Exponential(z1, z2 taylor.Jet, _ interval.Interval) (taylor.Jet, taylor.Jet, error) {
	f1 := z1.Sin().
		Add(z1.Sqr()).
		Add(z2.Exp()).
		Sub(z2.MulFloat(2).Cos())
	f2 := z1.Cos().
		Add(z2.Sqr().Mul(z2)).
		Add(z2.MulFloat(2).Exp()).
		SubFloat(2)
	return f1, f2, nil
}

// HighDegree is (z1⁵⁰ + z1¹² − 5 sin(20 z1) cos(12 z1) − 1, z2), a stress
// case with fifty roots of the first component in the unit disc.
func HighDegree(z1, z2 taylor.Jet, _ interval.Interval) (taylor.Jet, taylor.Jet, error) {
	p2 := z1.Sqr()
	p4 := p2.Sqr()
	p8 := p4.Sqr()
	p16 := p8.Sqr()
	p32 := p16.Sqr()

	f1 := p32.Mul(p16).Mul(p2).
		Add(p8.Mul(p4)).
		Sub(z1.MulFloat(20).Sin().Mul(z1.MulFloat(12).Cos()).MulFloat(5)).
		SubFloat(1)
	return f1, z2, nil
}

// Lookup resolves a built-in map by name. The saddle-point systems are
// constructed with their default physical constants.
func Lookup(name string) (Func, error) {
	fns, err := builtins()
	if err != nil {
		return nil, err
	}
	f, ok := fns[name]
	if !ok {
		return nil, ErrUnknownFunc
	}
	return f, nil
}

// Names lists the registered built-in map names in sorted order.
func Names() []string {
	fns, err := builtins()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(fns))
	for n := range fns {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func builtins() (map[string]Func, error) {
	hhg := DefaultHHG()
	ati := DefaultATI()
	hhgFull, err := hhg.Full()
	if err != nil {
		return nil, err
	}
	hhgSimple, err := hhg.Simple()
	if err != nil {
		return nil, err
	}
	atiFull, err := ati.Full()
	if err != nil {
		return nil, err
	}
	atiSimple, err := ati.Simple()
	if err != nil {
		return nil, err
	}
	return map[string]Func{
		"identity":   Identity,
		"shifted":    Shifted,
		"poly":       Poly,
		"exp":        Exponential,
		"highdegree": HighDegree,
		"hhg":        hhgFull,
		"hhg-simple": hhgSimple,
		"ati":        atiFull,
		"ati-simple": atiSimple,
	}, nil
}
