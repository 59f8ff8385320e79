package imui

import (
	"fmt"
	"iter"
)

// SplitIter yields the chunks of a split, in order, exactly once. Chunks are
// consecutive and leave no gaps.
type SplitIter struct {
	parent   DrawContext
	weights  []float64
	next     int
	invTotal float64
	offset   float64
	vertical bool
}

// equalWeights returns n weights of 1.
func equalWeights(n int) []float64 {
	if n < 0 {
		n = 0
	}
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}
	return w
}

func newSplitIter(parent DrawContext, weights []float64, vertical bool) *SplitIter {
	if len(weights) == 0 {
		panic("imui: split needs at least one weight")
	}
	var total float64
	for i, w := range weights {
		if !(w >= 0) {
			panic(fmt.Sprintf("imui: split weight %d is %v, want >= 0", i, w))
		}
		total += w
	}
	if !(total > 0) {
		panic("imui: split weights sum to zero")
	}
	return &SplitIter{
		parent:   parent,
		weights:  append([]float64(nil), weights...),
		invTotal: 1 / total,
		vertical: vertical,
	}
}

// Len returns how many chunks remain.
func (it *SplitIter) Len() int {
	return len(it.weights) - it.next
}

// Next returns the next chunk. ok is false once every chunk has been
// returned.
func (it *SplitIter) Next() (ctx DrawContext, ok bool) {
	if it.next >= len(it.weights) {
		return DrawContext{}, false
	}
	w := it.weights[it.next]
	it.next++

	frac := w * it.invTotal
	center := (it.offset + w*0.5) * it.invTotal
	it.offset += w

	p := it.parent
	if it.vertical {
		return p.derive(
			Translate(0, 1-2*center).Mul(ScaleWH(1, frac)),
			p.width,
			p.height*frac,
		), true
	}
	return p.derive(
		Translate(2*center-1, 0).Mul(ScaleWH(frac, 1)),
		p.width*frac,
		p.height,
	), true
}

// All returns the remaining chunks as a sequence. Like Next, it can only be
// consumed once.
func (it *SplitIter) All() iter.Seq[DrawContext] {
	return func(yield func(DrawContext) bool) {
		for {
			ctx, ok := it.Next()
			if !ok || !yield(ctx) {
				return
			}
		}
	}
}

// Collect returns the remaining chunks as a slice.
func (it *SplitIter) Collect() []DrawContext {
	out := make([]DrawContext, 0, it.Len())
	for ctx := range it.All() {
		out = append(out, ctx)
	}
	return out
}
