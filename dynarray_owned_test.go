package libclz

import (
	"testing"
)

// newOwnedArray is a helper that tracks every released payload in the
// returned slice.
func newOwnedArray(t *testing.T, vals ...string) (*OwnedDynArray[string], *[]string) {
	t.Helper()
	released := &[]string{}
	d, err := NewOwnedDynArray[string](func(v string) {
		*released = append(*released, v)
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range vals {
		if err := d.Append(v); err != nil {
			t.Fatal(err)
		}
	}
	return d, released
}

func TestOwnedDynArrayNilReleasePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected construction with a nil release func to panic")
		}
	}()
	NewOwnedDynArray[string](nil)
}

func TestOwnedDynArrayRemoveReleases(t *testing.T) {
	d, released := newOwnedArray(t, "a", "b", "a")

	removed, err := d.RemoveFirst("a")
	if err != nil {
		t.Fatal(err)
	}
	if !removed {
		t.Fatal("expected RemoveFirst to remove a present value")
	}
	if len(*released) != 1 || (*released)[0] != "a" {
		t.Errorf("expected one release of %q, got %v", "a", *released)
	}

	removed, err = d.RemoveFirst("missing")
	if err != nil {
		t.Fatal(err)
	}
	if removed || len(*released) != 1 {
		t.Errorf("expected failed removal to release nothing, got %v", *released)
	}
}

func TestOwnedDynArrayRemoveAllReleasesPerSlot(t *testing.T) {
	d, released := newOwnedArray(t, "x", "y", "x", "x")

	n, err := d.RemoveAll("x")
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Fatalf("expected 3 removals, got %d", n)
	}
	if len(*released) != 3 {
		t.Errorf("expected one release per removed slot, got %v", *released)
	}
}

func TestOwnedDynArrayRemoveAtReleases(t *testing.T) {
	d, released := newOwnedArray(t, "a", "b")

	removed, err := d.RemoveAt(1)
	if err != nil {
		t.Fatal(err)
	}
	if !removed {
		t.Fatal("expected in-range RemoveAt to succeed")
	}
	if len(*released) != 1 || (*released)[0] != "b" {
		t.Errorf("expected release of %q, got %v", "b", *released)
	}

	removed, err = d.RemoveAt(5)
	if err != nil {
		t.Fatal(err)
	}
	if removed || len(*released) != 1 {
		t.Errorf("expected out-of-range RemoveAt to release nothing, got %v", *released)
	}
}

func TestOwnedDynArraySetReturnsOldPayload(t *testing.T) {
	d, released := newOwnedArray(t, "old")

	prev, ok := d.Set(0, "new")
	if !ok {
		t.Fatal("expected in-range Set to succeed")
	}
	if prev != "old" {
		t.Errorf("expected the overwritten payload back, got %q", prev)
	}
	// Ownership of the old payload moves to the caller, not the release func.
	if len(*released) != 0 {
		t.Errorf("expected Set to release nothing, got %v", *released)
	}

	if _, ok := d.Set(3, "x"); ok {
		t.Error("expected out-of-range Set to be rejected")
	}
}

func TestOwnedDynArrayPopLastTransfersOwnership(t *testing.T) {
	d, released := newOwnedArray(t, "a", "b")

	v, ok, err := d.PopLast()
	if err != nil {
		t.Fatal(err)
	}
	if !ok || v != "b" {
		t.Errorf("expected to pop %q, got %q (ok=%v)", "b", v, ok)
	}
	if len(*released) != 0 {
		t.Errorf("expected pop to release nothing, got %v", *released)
	}
}

func TestOwnedDynArrayClearReleasesAll(t *testing.T) {
	d, released := newOwnedArray(t, "a", "b", "c")
	capBefore := d.Cap()

	d.Clear()
	if len(*released) != 3 {
		t.Errorf("expected all live payloads released, got %v", *released)
	}
	if d.Len() != 0 || d.Cap() != capBefore {
		t.Errorf("expected empty array with retained capacity, got len=%d cap=%d", d.Len(), d.Cap())
	}
}

func TestOwnedDynArrayFreeReleasesAll(t *testing.T) {
	d, released := newOwnedArray(t, "a", "b")

	d.Free()
	if len(*released) != 2 {
		t.Errorf("expected all live payloads released on Free, got %v", *released)
	}
}

func TestOwnedDynArrayDelegates(t *testing.T) {
	d, _ := newOwnedArray(t, "a", "b", "a")

	if i := d.Index("b"); i != 1 {
		t.Errorf("expected index 1, got %d", i)
	}
	if i := d.IndexAfter("a", 0); i != 2 {
		t.Errorf("expected index 2, got %d", i)
	}
	if i := d.FindFirst("a"); i != 0 {
		t.Errorf("expected first hit at 0, got %d", i)
	}
	if i := d.FindNext("a"); i != 2 {
		t.Errorf("expected next hit at 2, got %d", i)
	}
	d.FindReset()

	var visited int
	d.ForEach(func(string) { visited++ })
	if visited != 3 {
		t.Errorf("expected 3 visits, got %d", visited)
	}
}
