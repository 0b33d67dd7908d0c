package polyui

import "sync"

// componentSlicePool recycles the chain slices the dispatcher rebuilds on
// every pointer move.
var componentSlicePool = sync.Pool{
	New: func() any {
		s := make([]*Component, 0, 16)
		return &s
	},
}

func acquireComponentSlice() []*Component {
	return (*componentSlicePool.Get().(*[]*Component))[:0]
}

func releaseComponentSlice(s []*Component) {
	if s == nil || cap(s) == 0 {
		return
	}
	for i := range s {
		s[i] = nil
	}
	s = s[:0]
	componentSlicePool.Put(&s)
}
