package bits

import "testing"

func TestGetBits_MSBFirst(t *testing.T) {
	// 0xA5 0x3C = 1010 0101 0011 1100
	r := NewReader([]byte{0xA5, 0x3C})

	if got := r.GetBits(4); got != 0xA {
		t.Errorf("first nibble: got %#x, want 0xa", got)
	}
	if got := r.GetBits(4); got != 0x5 {
		t.Errorf("second nibble: got %#x, want 0x5", got)
	}
	if got := r.GetBits(8); got != 0x3C {
		t.Errorf("second byte: got %#x, want 0x3c", got)
	}
	if r.UsedBits() != 16 {
		t.Errorf("UsedBits: got %d, want 16", r.UsedBits())
	}
}

func TestGetBits_AcrossByteBoundary(t *testing.T) {
	// 0xFF 0x00 0xFF: read 12 bits from offset 4
	r := NewReader([]byte{0xFF, 0x00, 0xFF})
	r.GetBits(4)

	if got := r.GetBits(12); got != 0xF00 {
		t.Errorf("straddling read: got %#x, want 0xf00", got)
	}
}

func TestGetBits_32Wide(t *testing.T) {
	r := NewReader([]byte{0x12, 0x34, 0x56, 0x78, 0x9A})
	r.GetBits(4)

	if got := r.GetBits(32); got != 0x23456789 {
		t.Errorf("32-bit read at offset 4: got %#x, want 0x23456789", got)
	}
}

func TestGetBits_ZeroWidth(t *testing.T) {
	r := NewReader([]byte{0xFF})
	if got := r.GetBits(0); got != 0 {
		t.Errorf("zero-width read: got %d, want 0", got)
	}
	if r.UsedBits() != 0 {
		t.Errorf("zero-width read advanced the cursor to %d", r.UsedBits())
	}
}

func TestOverrun_DeferredDetection(t *testing.T) {
	// One byte available; reads keep succeeding (as zeros) and only the
	// counter records the overrun.
	r := NewReader([]byte{0xFF})

	if got := r.GetBits(8); got != 0xFF {
		t.Fatalf("in-budget read: got %#x, want 0xff", got)
	}
	if r.Overrun() {
		t.Fatal("overrun reported before budget exceeded")
	}

	if got := r.GetBits(16); got != 0 {
		t.Errorf("past-end read: got %#x, want 0", got)
	}
	if !r.Overrun() {
		t.Error("overrun not reported after reading past the budget")
	}
	if r.UsedBits() != 24 {
		t.Errorf("UsedBits after overrun: got %d, want 24", r.UsedBits())
	}
}

func TestShowBits_DoesNotConsume(t *testing.T) {
	r := NewReader([]byte{0xB7, 0x00})

	if got := r.ShowBits(8); got != 0xB7 {
		t.Errorf("ShowBits: got %#x, want 0xb7", got)
	}
	if r.UsedBits() != 0 {
		t.Errorf("ShowBits consumed %d bits", r.UsedBits())
	}
	if got := r.GetBits(8); got != 0xB7 {
		t.Errorf("GetBits after ShowBits: got %#x, want 0xb7", got)
	}
}

func TestRewind_AfterPeek(t *testing.T) {
	r := NewReader([]byte{0xC3, 0x96})

	// Peek 9, consume only 3.
	_ = r.GetBits(9)
	r.Rewind(9 - 3)
	if r.UsedBits() != 3 {
		t.Fatalf("UsedBits after rewind: got %d, want 3", r.UsedBits())
	}
	// Remaining bits of 0xC3: 0 0011, then 1001...
	if got := r.GetBits(5); got != 0x03 {
		t.Errorf("read after rewind: got %#x, want 0x3", got)
	}
}

func TestByteAlign(t *testing.T) {
	r := NewReader([]byte{0xFF, 0xFF, 0xFF})

	r.GetBits(3)
	if skip := r.ByteAlign(); skip != 5 {
		t.Errorf("ByteAlign skip: got %d, want 5", skip)
	}
	if r.UsedBits() != 8 {
		t.Errorf("UsedBits after align: got %d, want 8", r.UsedBits())
	}

	// Already aligned: no-op.
	if skip := r.ByteAlign(); skip != 0 {
		t.Errorf("aligned ByteAlign skip: got %d, want 0", skip)
	}
}

func TestNewReaderBits_ClampsBudget(t *testing.T) {
	r := NewReaderBits([]byte{0x00}, 100)
	if r.Available() != 8 {
		t.Errorf("Available: got %d, want 8", r.Available())
	}

	r = NewReaderBits([]byte{0x00, 0x00}, 10)
	r.GetBits(12)
	if !r.Overrun() {
		t.Error("overrun not reported with explicit 10-bit budget")
	}
}
