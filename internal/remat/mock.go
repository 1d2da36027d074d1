package remat

// Verify that MockAdapter implements Adapter.
var _ Adapter = (*MockAdapter)(nil)

// MockAdapter is a simple adapter for testing. It reports a configurable
// descriptor and hands out zero views, standing in for a backend whose data
// is never actually touched.
type MockAdapter struct {
	desc     Desc
	accesses int
}

// NewMockAdapter creates a MockAdapter reporting the given descriptor.
func NewMockAdapter(desc Desc) *MockAdapter {
	return &MockAdapter{desc: desc}
}

// Access counts the call and returns the zero View.
func (m *MockAdapter) Access(Access) (View, error) {
	m.accesses++
	return View{}, nil
}

// Desc returns the configured descriptor.
func (m *MockAdapter) Desc() Desc {
	return m.desc
}

// AccessCount returns how many times Access has been called.
func (m *MockAdapter) AccessCount() int {
	return m.accesses
}
