package utils

import (
	"golang.org/x/exp/constraints"
)

func Min[T constraints.Ordered](a T, bs ...T) T {
	result := a

	for _, b := range bs {
		if b < result {
			result = b
		}
	}

	return result
}

func IIf[T any](test bool, ifTrue, ifFalse T) T {
	if test {
		return ifTrue
	} else {
		return ifFalse
	}
}
