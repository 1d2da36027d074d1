package remat

import (
	"testing"
)

// Access Tests

func TestAccessString(t *testing.T) {
	if Read.String() != "read" {
		t.Errorf("Read.String() = %q, want %q", Read.String(), "read")
	}
	if Write.String() != "write" {
		t.Errorf("Write.String() = %q, want %q", Write.String(), "write")
	}
	if Access(42).String() != "unknown" {
		t.Errorf("Access(42).String() = %q, want %q", Access(42).String(), "unknown")
	}
}

// View Sentinel Tests

func TestZeroViewIsInert(t *testing.T) {
	var v View

	if v.Data() != nil {
		t.Error("zero View should carry no data")
	}
	if v.ByteSize() != 0 {
		t.Errorf("zero View ByteSize = %d, want 0", v.ByteSize())
	}
	if v.Step() != 0 {
		t.Errorf("zero View Step = %d, want 0", v.Step())
	}
	if !v.Desc().Equal(Desc{}) {
		t.Errorf("zero View Desc = %s, want the zero descriptor", v.Desc())
	}
	if v.Ptr() != nil {
		t.Error("zero View Ptr should be nil")
	}

	// Releasing the zero View any number of times is a no-op.
	v.Release()
	v.Release()
}

// Read View Tests

func TestReadViewReleaseIsNoop(t *testing.T) {
	buf := make([]byte, 64)
	v := NewView(DescOf(Shape{8, 8}, Uint8), buf, 8)

	v.Release()
	v.Release()
}

func TestViewAccessors(t *testing.T) {
	buf := make([]byte, 64)
	desc := DescOf(Shape{8, 8}, Uint8)
	v := NewView(desc, buf, 8)

	if !v.Desc().Equal(desc) {
		t.Errorf("Desc = %s, want %s", v.Desc(), desc)
	}
	if !v.Shape().Equal(Shape{8, 8}) {
		t.Errorf("Shape = %v, want [8 8]", v.Shape())
	}
	if v.DType() != Uint8 {
		t.Errorf("DType = %v, want Uint8", v.DType())
	}
	if v.Step() != 8 {
		t.Errorf("Step = %d, want 8", v.Step())
	}
	if v.ByteSize() != 64 {
		t.Errorf("ByteSize = %d, want 64", v.ByteSize())
	}
	if v.Ptr() == nil {
		t.Error("Ptr should not be nil for a view over data")
	}
}

// Write View Commit Tests

func TestWriteViewCommitsOnRelease(t *testing.T) {
	commits := 0
	buf := make([]byte, 64)
	v := NewWriteView(DescOf(Shape{8, 8}, Uint8), buf, 8, func() { commits++ })

	if commits != 0 {
		t.Fatal("commit callback should not fire before release")
	}

	v.Release()
	if commits != 1 {
		t.Errorf("commit callback fired %d times, want 1", commits)
	}
}

func TestWriteViewDoubleReleasePanics(t *testing.T) {
	v := NewWriteView(DescOf(Shape{2}, Uint8), make([]byte, 2), 2, func() {})
	v.Release()

	defer func() {
		if r := recover(); r == nil {
			t.Error("releasing a write view twice should panic")
		}
	}()
	v.Release()
}

func TestWriteViewCopiesShareCommitGuard(t *testing.T) {
	commits := 0
	v := NewWriteView(DescOf(Shape{2}, Uint8), make([]byte, 2), 2, func() { commits++ })

	// A copied View value must not re-arm the commit.
	vCopy := v
	vCopy.Release()

	if commits != 1 {
		t.Fatalf("commit callback fired %d times, want 1", commits)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("releasing the original after its copy committed should panic")
		}
	}()
	v.Release()
}

func TestWriteViewNilCommit(t *testing.T) {
	v := NewWriteView(DescOf(Shape{2}, Uint8), make([]byte, 2), 2, nil)
	v.Release()

	defer func() {
		if r := recover(); r == nil {
			t.Error("double release should panic even without a commit callback")
		}
	}()
	v.Release()
}

// View Typed Access Tests

func TestViewTypedAccess(t *testing.T) {
	buf := make([]byte, 64)
	v := NewView(DescOf(Shape{8, 8}, Uint8), buf, 8)

	data := v.AsUint8()
	if len(data) != 64 {
		t.Errorf("AsUint8 length = %d, want 64", len(data))
	}

	// Modify and verify zero-copy
	data[0] = 42
	if buf[0] != 42 {
		t.Error("AsUint8 should return zero-copy slice")
	}
}

func TestViewAsWrongTypePanics(t *testing.T) {
	v := NewView(DescOf(Shape{8, 8}, Uint8), make([]byte, 64), 8)

	defer func() {
		if r := recover(); r == nil {
			t.Error("AsFloat32 on a Uint8 view should panic")
		}
	}()
	_ = v.AsFloat32()
}

func TestViewTypedAccessNonContiguousPanics(t *testing.T) {
	// 4x4 uint8 rows embedded in an 8-byte-step buffer.
	v := NewView(DescOf(Shape{4, 4}, Uint8), make([]byte, 32), 8)

	if v.Contiguous() {
		t.Fatal("view with padding between rows should not be contiguous")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("typed access on a non-contiguous view should panic")
		}
	}()
	_ = v.AsUint8()
}

func TestViewContiguous(t *testing.T) {
	tests := []struct {
		name string
		view View
		want bool
	}{
		{"packed rows", NewView(DescOf(Shape{4, 4}, Uint8), make([]byte, 16), 4), true},
		{"padded rows", NewView(DescOf(Shape{4, 4}, Uint8), make([]byte, 32), 8), false},
		{"single row", NewView(DescOf(Shape{1, 4}, Uint8), make([]byte, 4), 16), true},
		{"one dimension", NewView(DescOf(Shape{4}, Uint8), make([]byte, 4), 4), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.view.Contiguous(); got != tt.want {
				t.Errorf("Contiguous() = %v, want %v", got, tt.want)
			}
		})
	}
}
