package pebbles

import "math/big"

// Kind is one fixed-width integer representation: a bit width and a
// signedness. It supplies the wrapping arithmetic the evaluator runs on.
// Values are passed around as canonical unsigned bit patterns held in
// *big.Int, always in [0, 2^bits); a Kind interprets a pattern as signed or
// unsigned where the distinction matters. The zero Kind is not valid; use
// one of the package-level kinds.
//
// Kind methods never modify their operands, so patterns may be shared
// freely, and a Kind itself is immutable and safe to share.
type Kind struct {
	name   string
	bits   uint
	signed bool

	// mod is 2^bits, mask is mod-1. min and max bound the kind's value
	// range, with min negative for signed kinds. All are read-only.
	mod  *big.Int
	mask *big.Int
	min  *big.Int
	max  *big.Int
}

func mkkind(name string, bits uint, signed bool) Kind {
	mod := new(big.Int).Lsh(big.NewInt(1), bits)
	mask := new(big.Int).Sub(mod, big.NewInt(1))
	min := new(big.Int)
	max := new(big.Int).Set(mask)
	if signed {
		half := new(big.Int).Lsh(big.NewInt(1), bits-1)
		min.Neg(half)
		max.Sub(half, big.NewInt(1))
	}
	return Kind{name: name, bits: bits, signed: signed, mod: mod, mask: mask, min: min, max: max}
}

// The supported integer kinds.
var (
	U8   = mkkind("u8", 8, false)
	U16  = mkkind("u16", 16, false)
	U32  = mkkind("u32", 32, false)
	U64  = mkkind("u64", 64, false)
	U128 = mkkind("u128", 128, false)
	I8   = mkkind("i8", 8, true)
	I16  = mkkind("i16", 16, true)
	I32  = mkkind("i32", 32, true)
	I64  = mkkind("i64", 64, true)
	I128 = mkkind("i128", 128, true)
)

// Kinds returns all supported kinds.
func Kinds() []Kind {
	return []Kind{U8, U16, U32, U64, U128, I8, I16, I32, I64, I128}
}

// KindNamed finds the kind with the given name, e.g. "u8" or "i64".
func KindNamed(name string) (Kind, bool) {
	for _, k := range Kinds() {
		if k.name == name {
			return k, true
		}
	}
	return Kind{}, false
}

// Name returns the kind's name, e.g. "u8" or "i64".
func (k Kind) Name() string {
	return k.name
}

func (k Kind) String() string {
	return k.name
}

// Bits returns the kind's width in bits.
func (k Kind) Bits() uint {
	return k.bits
}

// Signed reports whether the kind is signed.
func (k Kind) Signed() bool {
	return k.signed
}

// Unsigned returns the kind of the same width that reinterprets bit patterns
// as unsigned.
func (k Kind) Unsigned() Kind {
	for _, u := range Kinds() {
		if u.bits == k.bits && !u.signed {
			return u
		}
	}
	panic("pebbles: no unsigned kind of width " + k.name)
}

// Min returns the smallest value of the kind's range.
func (k Kind) Min() *big.Int {
	return new(big.Int).Set(k.min)
}

// Max returns the largest value of the kind's range.
func (k Kind) Max() *big.Int {
	return new(big.Int).Set(k.max)
}

// FromLiteral converts a literal container value to the kind's bit pattern.
// It fails with a *RangeError if v is not exactly representable. Negative
// values are allowed, for negated literals, and convert to their
// two's-complement pattern.
func (k Kind) FromLiteral(v *big.Int) (*big.Int, error) {
	if v.Cmp(k.min) < 0 || v.Cmp(k.max) > 0 {
		return nil, &RangeError{Kind: k, Lit: new(big.Int).Set(v)}
	}
	return k.wrap(new(big.Int).Set(v)), nil
}

// SignedView reinterprets a bit pattern per the kind's signedness, yielding
// the negative value for signed patterns with the high bit set.
func (k Kind) SignedView(v *big.Int) *big.Int {
	if k.signed && v.Bit(int(k.bits-1)) == 1 {
		return new(big.Int).Sub(v, k.mod)
	}
	return new(big.Int).Set(v)
}

// wrap reduces z to the canonical pattern in [0, 2^bits) and returns it.
// big.Int bitwise operations treat negative values as two's complement, so
// this is exact wraparound for any z.
func (k Kind) wrap(z *big.Int) *big.Int {
	return z.And(z, k.mask)
}

// Add returns the wrapping sum of two patterns.
func (k Kind) Add(l, r *big.Int) *big.Int {
	return k.wrap(new(big.Int).Add(l, r))
}

// Sub returns the wrapping difference of two patterns.
func (k Kind) Sub(l, r *big.Int) *big.Int {
	return k.wrap(new(big.Int).Sub(l, r))
}

// Mul returns the wrapping product of two patterns.
func (k Kind) Mul(l, r *big.Int) *big.Int {
	return k.wrap(new(big.Int).Mul(l, r))
}

// Neg returns the wrapping negation of a pattern. Negating the minimum value
// of a signed kind yields that value again.
func (k Kind) Neg(v *big.Int) *big.Int {
	return k.wrap(new(big.Int).Neg(v))
}

// Div returns the quotient of two patterns, truncated toward zero and
// interpreted per the kind's signedness. Dividing the minimum signed value
// by -1 wraps. Fails with a *DivisionByZeroError when r is zero.
func (k Kind) Div(l, r *big.Int) (*big.Int, error) {
	if r.Sign() == 0 {
		return nil, &DivisionByZeroError{Op: "/"}
	}
	return k.wrap(new(big.Int).Quo(k.SignedView(l), k.SignedView(r))), nil
}

// Rem returns the remainder of truncated division of two patterns,
// interpreted per the kind's signedness. The result takes the dividend's
// sign. Fails with a *DivisionByZeroError when r is zero.
func (k Kind) Rem(l, r *big.Int) (*big.Int, error) {
	if r.Sign() == 0 {
		return nil, &DivisionByZeroError{Op: "%"}
	}
	return k.wrap(new(big.Int).Rem(k.SignedView(l), k.SignedView(r))), nil
}

// shiftAmount masks a shift count pattern to bits-1, so shifting a 32-bit
// value by 35 shifts by 3.
func (k Kind) shiftAmount(r *big.Int) uint {
	amt := new(big.Int).And(r, big.NewInt(int64(k.bits-1)))
	return uint(amt.Uint64())
}

// Shl returns l shifted left by r. The shift amount is r's pattern masked
// to bits-1; bits shifted out are discarded.
func (k Kind) Shl(l, r *big.Int) *big.Int {
	return k.wrap(new(big.Int).Lsh(l, k.shiftAmount(r)))
}

// Shr returns l shifted right by r. The shift amount is r's pattern masked
// to bits-1. The shift is arithmetic for signed kinds and logical otherwise.
func (k Kind) Shr(l, r *big.Int) *big.Int {
	amt := k.shiftAmount(r)
	if k.signed {
		// big.Int Rsh floors, which is an arithmetic shift for negatives.
		s := k.SignedView(l)
		return k.wrap(s.Rsh(s, amt))
	}
	return k.wrap(new(big.Int).Rsh(l, amt))
}

// Not returns the bitwise complement of a pattern.
func (k Kind) Not(v *big.Int) *big.Int {
	return new(big.Int).Xor(v, k.mask)
}

// And returns the bitwise conjunction of two patterns.
func (k Kind) And(l, r *big.Int) *big.Int {
	return new(big.Int).And(l, r)
}

// Or returns the bitwise disjunction of two patterns.
func (k Kind) Or(l, r *big.Int) *big.Int {
	return new(big.Int).Or(l, r)
}

// Xor returns the bitwise exclusive disjunction of two patterns.
func (k Kind) Xor(l, r *big.Int) *big.Int {
	return new(big.Int).Xor(l, r)
}
