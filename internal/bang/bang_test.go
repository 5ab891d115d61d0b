package bang

import "testing"

func TestZeroValueIsEmpty(t *testing.T) {
	var b Bang
	if !b.IsEmpty() {
		t.Fatalf("zero-value Bang should be Empty")
	}
}

func TestPulse(t *testing.T) {
	b := NewPulse()
	if !b.IsPulse() {
		t.Fatalf("expected Pulse")
	}
	if b.IsEmpty() {
		t.Fatalf("Pulse should not report Empty")
	}
}

func TestF32Accessor(t *testing.T) {
	b := NewF32(1.25)
	v, ok := b.F32()
	if !ok || v != 1.25 {
		t.Fatalf("F32() = (%f, %v), want (1.25, true)", v, ok)
	}
	if _, ok := NewPulse().F32(); ok {
		t.Fatalf("Pulse bang should not report an F32 value")
	}
}

func TestSetParamRoundTrip(t *testing.T) {
	b := NewSetParamF32(3, 0.75)
	idx, v, ok := b.SetParamF32()
	if !ok || idx != 3 || v != 0.75 {
		t.Fatalf("SetParamF32() = (%d, %f, %v), want (3, 0.75, true)", idx, v, ok)
	}

	b2 := NewSetParamBool(1, true)
	idx2, v2, ok2 := b2.SetParamBool()
	if !ok2 || idx2 != 1 || v2 != true {
		t.Fatalf("SetParamBool() = (%d, %v, %v), want (1, true, true)", idx2, v2, ok2)
	}
}

func TestCopyable(t *testing.T) {
	a := NewU32(9)
	b := a
	b = NewEmpty()
	_ = b
	if v, ok := a.U32(); !ok || v != 9 {
		t.Fatalf("copying a Bang should not alias state: a changed to %v", a)
	}
}
