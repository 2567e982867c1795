package pebbles

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindNamed(t *testing.T) {
	for _, k := range Kinds() {
		got, ok := KindNamed(k.Name())
		require.True(t, ok, "no kind named %q", k.Name())
		assert.Equal(t, k, got)
	}
	_, ok := KindNamed("u7")
	assert.False(t, ok)
	_, ok = KindNamed("")
	assert.False(t, ok)
}

func TestKindRanges(t *testing.T) {
	cases := []struct {
		kind     Kind
		min, max string
	}{
		{U8, "0", "255"},
		{U16, "0", "65535"},
		{U32, "0", "4294967295"},
		{U64, "0", "18446744073709551615"},
		{U128, "0", "340282366920938463463374607431768211455"},
		{I8, "-128", "127"},
		{I16, "-32768", "32767"},
		{I32, "-2147483648", "2147483647"},
		{I64, "-9223372036854775808", "9223372036854775807"},
		{I128, "-170141183460469231731687303715884105728", "170141183460469231731687303715884105727"},
	}
	for _, c := range cases {
		assert.Equal(t, c.min, c.kind.Min().String(), "%v min", c.kind)
		assert.Equal(t, c.max, c.kind.Max().String(), "%v max", c.kind)
	}
}

func TestKindUnsigned(t *testing.T) {
	assert.Equal(t, U8, I8.Unsigned())
	assert.Equal(t, U64, I64.Unsigned())
	assert.Equal(t, U128, I128.Unsigned())
	assert.Equal(t, U32, U32.Unsigned())
}

func TestFromLiteral(t *testing.T) {
	// In-range values convert to their two's-complement pattern.
	v, err := I8.FromLiteral(big.NewInt(-1))
	require.NoError(t, err)
	assert.Zero(t, big.NewInt(255).Cmp(v))
	v, err = I8.FromLiteral(big.NewInt(-128))
	require.NoError(t, err)
	assert.Zero(t, big.NewInt(128).Cmp(v))
	v, err = U8.FromLiteral(big.NewInt(255))
	require.NoError(t, err)
	assert.Zero(t, big.NewInt(255).Cmp(v))

	// Out-of-range values fail and carry the offending literal.
	for _, c := range []struct {
		kind Kind
		lit  int64
	}{
		{U8, 256},
		{U8, -1},
		{I8, 128},
		{I8, -129},
	} {
		_, err := c.kind.FromLiteral(big.NewInt(c.lit))
		var re *RangeError
		require.ErrorAs(t, err, &re, "%v FromLiteral %d", c.kind, c.lit)
		assert.Equal(t, c.kind, re.Kind)
		assert.Zero(t, big.NewInt(c.lit).Cmp(re.Lit))
	}
}

func TestSignedView(t *testing.T) {
	assert.Zero(t, big.NewInt(-1).Cmp(I8.SignedView(big.NewInt(0xff))))
	assert.Zero(t, big.NewInt(-128).Cmp(I8.SignedView(big.NewInt(0x80))))
	assert.Zero(t, big.NewInt(127).Cmp(I8.SignedView(big.NewInt(0x7f))))
	assert.Zero(t, big.NewInt(0xff).Cmp(U8.SignedView(big.NewInt(0xff))))
}

// TestKindOpsMatchNative compares every kind operation at i8 and u8 against
// the corresponding native Go arithmetic over the whole 8-bit range of
// interesting operands.
func TestKindOpsMatchNative(t *testing.T) {
	operands := []int64{0, 1, 2, 3, 5, 7, 8, 63, 64, 127, 128, 129, 170, 254, 255}
	pat := func(x int64) *big.Int { return big.NewInt(x) }
	for _, l := range operands {
		for _, r := range operands {
			li, ri := int8(l), int8(r)
			lu, ru := uint8(l), uint8(r)

			assert.EqualValues(t, uint8(li+ri), I8.Add(pat(l), pat(r)).Uint64(), "i8 %d + %d", l, r)
			assert.EqualValues(t, lu+ru, U8.Add(pat(l), pat(r)).Uint64(), "u8 %d + %d", l, r)
			assert.EqualValues(t, uint8(li-ri), I8.Sub(pat(l), pat(r)).Uint64(), "i8 %d - %d", l, r)
			assert.EqualValues(t, lu-ru, U8.Sub(pat(l), pat(r)).Uint64(), "u8 %d - %d", l, r)
			assert.EqualValues(t, uint8(li*ri), I8.Mul(pat(l), pat(r)).Uint64(), "i8 %d * %d", l, r)
			assert.EqualValues(t, lu*ru, U8.Mul(pat(l), pat(r)).Uint64(), "u8 %d * %d", l, r)

			assert.EqualValues(t, lu&ru, U8.And(pat(l), pat(r)).Uint64(), "u8 %d & %d", l, r)
			assert.EqualValues(t, lu|ru, U8.Or(pat(l), pat(r)).Uint64(), "u8 %d | %d", l, r)
			assert.EqualValues(t, lu^ru, U8.Xor(pat(l), pat(r)).Uint64(), "u8 %d ^ %d", l, r)

			assert.EqualValues(t, uint8(li>>(ru&7)), I8.Shr(pat(l), pat(r)).Uint64(), "i8 %d >> %d", l, r)
			assert.EqualValues(t, lu>>(ru&7), U8.Shr(pat(l), pat(r)).Uint64(), "u8 %d >> %d", l, r)
			assert.EqualValues(t, lu<<(ru&7), U8.Shl(pat(l), pat(r)).Uint64(), "u8 %d << %d", l, r)

			if r != 0 {
				q, err := I8.Div(pat(l), pat(r))
				require.NoError(t, err)
				want := uint8(li / ri)
				if li == -128 && ri == -1 {
					want = 128 // MIN / -1 wraps
				}
				assert.EqualValues(t, want, q.Uint64(), "i8 %d / %d", l, r)
				m, err := U8.Rem(pat(l), pat(r))
				require.NoError(t, err)
				assert.EqualValues(t, lu%ru, m.Uint64(), "u8 %d %% %d", l, r)
			}
		}
		assert.EqualValues(t, uint8(-int8(l)), I8.Neg(pat(l)).Uint64(), "i8 -%d", l)
		assert.EqualValues(t, -uint8(l), U8.Neg(pat(l)).Uint64(), "u8 -%d", l)
		assert.EqualValues(t, ^uint8(l), U8.Not(pat(l)).Uint64(), "u8 ~%d", l)
		assert.EqualValues(t, uint8(^int8(l)), I8.Not(pat(l)).Uint64(), "i8 ~%d", l)
	}
}

func TestKindOpsDoNotMutate(t *testing.T) {
	l, r := big.NewInt(200), big.NewInt(100)
	U8.Add(l, r)
	U8.Mul(l, r)
	U8.Shr(l, r)
	I8.Shr(l, r)
	if _, err := I8.Div(l, r); err != nil {
		t.Fatal(err)
	}
	I8.Neg(l)
	assert.EqualValues(t, 200, l.Uint64())
	assert.EqualValues(t, 100, r.Uint64())
}

func TestKindDivByZero(t *testing.T) {
	for _, kind := range Kinds() {
		_, err := kind.Div(big.NewInt(1), new(big.Int))
		assert.ErrorAs(t, err, new(*DivisionByZeroError), "%v div", kind)
		assert.EqualError(t, err, "division by zero")
		_, err = kind.Rem(big.NewInt(1), new(big.Int))
		assert.ErrorAs(t, err, new(*DivisionByZeroError), "%v rem", kind)
		assert.EqualError(t, err, "remainder by zero")
	}
}
