package convert

import (
	"math/rand/v2"
	"strconv"
)

// IDGenerator produces element ids for inline scripts that carry none.
type IDGenerator func() string

const (
	inlineIDPrefix = "inline-script-"
	inlineIDLength = 9
	base36         = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// RandomIDs returns the default generator: "inline-script-" followed by
// nine base-36 characters. Ids only need to be distinct within one run.
func RandomIDs() IDGenerator {
	return func() string {
		b := make([]byte, inlineIDLength)
		for i := range b {
			b[i] = base36[rand.IntN(len(base36))]
		}
		return inlineIDPrefix + string(b)
	}
}

// SequentialIDs returns a generator yielding inline-script-1, -2, ...
// A fresh generator is created for every conversion, so output is
// reproducible.
func SequentialIDs() IDGenerator {
	n := 0
	return func() string {
		n++
		return inlineIDPrefix + strconv.Itoa(n)
	}
}
