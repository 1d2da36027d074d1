package remat

// RefAdapter exposes a host matrix through a handle without copying: every
// view aliases the matrix's own storage. Writers mutate the canonical data
// in place, so the commit step moves nothing and only fires the optional
// observer callback.
//
// RefAdapter performs no synchronization; overlapping views follow the
// caller's ordering rules.
type RefAdapter struct {
	mat      *Mat
	onCommit func()
}

// NewRefAdapter wraps m in a zero-copy adapter. onCommit, when non-nil, is
// observed exactly once per write view, at release time.
func NewRefAdapter(m *Mat, onCommit func()) *RefAdapter {
	if m == nil {
		panic("nil matrix")
	}
	return &RefAdapter{mat: m, onCommit: onCommit}
}

// Mat returns the wrapped matrix.
func (a *RefAdapter) Mat() *Mat {
	return a.mat
}

// Desc returns the wrapped matrix's descriptor.
func (a *RefAdapter) Desc() Desc {
	return a.mat.Desc()
}

// Access returns a view aliasing the wrapped matrix's storage.
func (a *RefAdapter) Access(acc Access) (View, error) {
	if acc == Write {
		return NewWriteView(a.mat.Desc(), a.mat.Data(), a.mat.Step(), a.onCommit), nil
	}
	return NewView(a.mat.Desc(), a.mat.Data(), a.mat.Step()), nil
}
