package ndarray

import "math/rand"

type defaultRand struct{}

func (defaultRand) Float64() float64 {
	return rand.Float64() //nolint:gosec // G404: fill values are not security sensitive
}
