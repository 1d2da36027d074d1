package remat

// ShadowAdapter keeps the canonical matrix at arm's length: views never
// touch it directly. A read first syncs the canonical data into a host
// shadow and exposes that; a write stages into the shadow and copies it
// back to the canonical matrix exactly once, when the view is released.
//
// This is the access pattern device adapters use for remote memory, applied
// to host data: one copy per access buys isolation of the canonical buffer
// while a view is open.
//
// Concurrent write views on one ShadowAdapter resolve to whichever view
// commits last; there is no merging.
type ShadowAdapter struct {
	canonical *Mat
	shadow    *Mat
	onCommit  func()
}

// NewShadowAdapter wraps canonical in a shadow-copy adapter. onCommit, when
// non-nil, runs after each write view's release has synced the shadow back.
func NewShadowAdapter(canonical *Mat, onCommit func()) *ShadowAdapter {
	if canonical == nil {
		panic("nil matrix")
	}
	return &ShadowAdapter{
		canonical: canonical,
		shadow:    canonical.Clone(),
		onCommit:  onCommit,
	}
}

// Mat returns the canonical matrix.
func (a *ShadowAdapter) Mat() *Mat {
	return a.canonical
}

// Desc returns the canonical matrix's descriptor.
func (a *ShadowAdapter) Desc() Desc {
	return a.canonical.Desc()
}

// Access returns a view over the shadow. A read view sees a fresh sync of
// the canonical data; a write view commits the shadow back on release.
func (a *ShadowAdapter) Access(acc Access) (View, error) {
	if acc == Write {
		return NewWriteView(a.shadow.Desc(), a.shadow.Data(), a.shadow.Step(), a.commit), nil
	}
	copy(a.shadow.data, a.canonical.data)
	return NewView(a.shadow.Desc(), a.shadow.Data(), a.shadow.Step()), nil
}

// commit syncs the shadow back into the canonical matrix. The two always
// share a descriptor, so a plain byte copy is exact.
func (a *ShadowAdapter) commit() {
	copy(a.canonical.data, a.shadow.data)
	if a.onCommit != nil {
		a.onCommit()
	}
}
