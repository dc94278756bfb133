package runtime

import "math/big"

// FloorDivMod computes Python-style floor division and modulo for a and b:
// the quotient rounds toward negative infinity rather than toward zero, and
// the remainder always carries the sign of b (or is zero). b must be
// non-zero; callers are responsible for rejecting division by zero before
// calling this, since that condition is fatal rather than silent.
func FloorDivMod(a, b *big.Int) (quo, rem *big.Int) {
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(a, b, r)
	if r.Sign() != 0 && (r.Sign() < 0) != (b.Sign() < 0) {
		q.Sub(q, big.NewInt(1))
		r.Add(r, b)
	}
	return q, r
}
