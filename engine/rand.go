package engine

import (
	"math/rand"
	"time"
)

// Picker supplies the arbitrary choice the unused-strategy analyzer
// needs. Injectable so tests can pin the selection down.
type Picker interface {
	Pick(n int) int
}

type randPicker struct {
	r *rand.Rand
}

// NewPicker returns a seedable pseudo-random Picker.
func NewPicker(seed int64) Picker {
	return randPicker{r: rand.New(rand.NewSource(seed))}
}

func defaultPicker() Picker {
	return NewPicker(time.Now().UnixNano())
}

func (p randPicker) Pick(n int) int {
	if n <= 1 {
		return 0
	}
	return p.r.Intn(n)
}
