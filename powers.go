package bigfloat

import "math/big"

// pow10 returns 10**n as a fresh *big.Int.
func pow10(n uint) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), new(big.Int).SetUint64(uint64(n)), nil)
}
