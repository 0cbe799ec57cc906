// SPDX-License-Identifier: MIT

// Package poly: infix rendering.
//
// Format contract:
//   - "- " before a negative first term, " + " / " - " before later terms.
//   - Coefficient magnitude omitted when 1, unless the term is constant.
//   - Factors are concatenated; "^power" follows a base when power != 1.
//   - A derived factor prints fn^power followed by its parameter, bare when
//     the parameter is a lone symbol, parenthesized otherwise: "sinθ", "cos^2(a + b)".
//   - A nested base prints bare when it is a lone symbol, parenthesized otherwise.
//   - The zero polynomial prints "0".
package poly

import (
	"fmt"
	"strconv"
	"strings"
)

// String returns the symbol name.
func (s Symbol) String() string { return string(s) }

// String renders b without any power.
func (b Base[T]) String() string {
	var sb strings.Builder
	b.writeTo(&sb)
	return sb.String()
}

func (b Base[T]) writeTo(sb *strings.Builder) {
	switch b.Kind {
	case KindSym:
		sb.WriteString(string(b.Sym))
	case KindDerived:
		sb.WriteString(b.Func)
		writeOperand(sb, b.param())
	default:
		writeOperand(sb, b.param())
	}
}

// writeOperand writes p bare when it is a single symbol with coefficient 1,
// parenthesized otherwise: sin(2a) never renders as sin2a.
func writeOperand[T Coefficient](sb *strings.Builder, p Polynomial[T]) {
	if p.IsSymbol() && p.Terms[0].Coeff == 1 {
		p.writeTo(sb)
		return
	}
	sb.WriteByte('(')
	p.writeTo(sb)
	sb.WriteByte(')')
}

// String renders f as base or base^power.
func (f Factor[T]) String() string {
	var sb strings.Builder
	f.writeTo(&sb)
	return sb.String()
}

func (f Factor[T]) writeTo(sb *strings.Builder) {
	if f.Power == 1 {
		f.Base.writeTo(sb)
		return
	}
	if f.Base.Kind == KindDerived {
		sb.WriteString(f.Base.Func)
		sb.WriteByte('^')
		sb.WriteString(strconv.Itoa(f.Power))
		writeOperand(sb, f.Base.param())
		return
	}
	f.Base.writeTo(sb)
	sb.WriteByte('^')
	sb.WriteString(strconv.Itoa(f.Power))
}

// String renders m as a one-term polynomial.
func (m Monomial[T]) String() string {
	if m.Coeff == 0 {
		return "0"
	}
	var sb strings.Builder
	if m.Coeff < 0 {
		sb.WriteString("- ")
	}
	m.writeMagnitude(&sb)
	return sb.String()
}

// writeMagnitude writes |coeff| (when needed) followed by the factors.
func (m Monomial[T]) writeMagnitude(sb *strings.Builder) {
	c := m.Coeff
	if c < 0 {
		c = -c
	}
	if c != 1 || len(m.Factors) == 0 {
		fmt.Fprint(sb, c)
	}
	for _, f := range m.Factors {
		f.writeTo(sb)
	}
}

// String renders p in canonical infix form, e.g. "- x + 3".
func (p Polynomial[T]) String() string {
	if p.IsZero() {
		return "0"
	}
	var sb strings.Builder
	p.writeTo(&sb)
	return sb.String()
}

func (p Polynomial[T]) writeTo(sb *strings.Builder) {
	for i, t := range p.Terms {
		switch {
		case i == 0 && t.Coeff < 0:
			sb.WriteString("- ")
		case i == 0:
		case t.Coeff < 0:
			sb.WriteString(" - ")
		default:
			sb.WriteString(" + ")
		}
		t.writeMagnitude(sb)
	}
}
