package remat

// Adapter gives matrix data a uniform access surface while hiding where and
// how it is stored. Backends implement Adapter to plug their storage into a
// handle: host memory, device buffers, and wrapped external matrices all
// look the same to a pipeline holding an RMat.
//
// Access returns a view for the requested mode and blocks until the data is
// usable. Implementations decide the cost: a host adapter can hand out an
// aliasing view, a device adapter may have to move data first. Errors are
// backend-defined and pass through the handle unchanged.
//
// Desc must be stable for the adapter's whole lifetime and must match the
// views it produces.
type Adapter interface {
	Access(a Access) (View, error)
	Desc() Desc
}

// Releaser is implemented by adapters that own storage worth releasing
// promptly, such as device buffers. Handles never call it; such adapters
// install a finalizer as the backstop and let the owner of the last
// reference release early when it can.
type Releaser interface {
	Release()
}
