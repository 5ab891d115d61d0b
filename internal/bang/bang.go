// Package bang implements the discrete control-domain event value that
// flows on the same graph edges as audio, carrying pulses and parameter
// assignments between nodes.
package bang

// Kind tags which variant a Bang currently holds.
type Kind int

const (
	Empty Kind = iota
	Pulse
	F32
	U32
	Bool
	USize
	SetParamU32
	SetParamF32
	SetParamBool
)

// Bang is a tagged, copyable discrete event value. The zero value is Empty,
// the default/no-event value.
type Bang struct {
	kind Kind

	f32   float32
	u32   uint32
	b     bool
	usize uint64

	paramIndex int
}

// Kind reports which variant is held.
func (b Bang) Kind() Kind { return b.kind }

// NewEmpty returns the Empty bang, the zero value.
func NewEmpty() Bang { return Bang{} }

// NewPulse returns a Pulse bang.
func NewPulse() Bang { return Bang{kind: Pulse} }

// NewF32 returns an F32-carrying bang.
func NewF32(v float32) Bang { return Bang{kind: F32, f32: v} }

// NewU32 returns a U32-carrying bang.
func NewU32(v uint32) Bang { return Bang{kind: U32, u32: v} }

// NewBool returns a Bool-carrying bang.
func NewBool(v bool) Bang { return Bang{kind: Bool, b: v} }

// NewUSize returns a USize-carrying bang.
func NewUSize(v uint64) Bang { return Bang{kind: USize, usize: v} }

// NewSetParamU32 returns a SetParamU32 assignment bang.
func NewSetParamU32(index int, v uint32) Bang {
	return Bang{kind: SetParamU32, paramIndex: index, u32: v}
}

// NewSetParamF32 returns a SetParamF32 assignment bang.
func NewSetParamF32(index int, v float32) Bang {
	return Bang{kind: SetParamF32, paramIndex: index, f32: v}
}

// NewSetParamBool returns a SetParamBool assignment bang.
func NewSetParamBool(index int, v bool) Bang {
	return Bang{kind: SetParamBool, paramIndex: index, b: v}
}

// F32 returns the carried float32 and whether the bang actually holds one.
func (b Bang) F32() (float32, bool) { return b.f32, b.kind == F32 }

// U32 returns the carried uint32 and whether the bang actually holds one.
func (b Bang) U32() (uint32, bool) { return b.u32, b.kind == U32 }

// Bool returns the carried bool and whether the bang actually holds one.
func (b Bang) Bool() (bool, bool) { return b.b, b.kind == Bool }

// USize returns the carried uint64 and whether the bang actually holds one.
func (b Bang) USize() (uint64, bool) { return b.usize, b.kind == USize }

// SetParamU32 returns the (index, value) pair and whether this bang carries
// a SetParamU32 assignment.
func (b Bang) SetParamU32() (index int, v uint32, ok bool) {
	return b.paramIndex, b.u32, b.kind == SetParamU32
}

// SetParamF32 returns the (index, value) pair and whether this bang carries
// a SetParamF32 assignment.
func (b Bang) SetParamF32() (index int, v float32, ok bool) {
	return b.paramIndex, b.f32, b.kind == SetParamF32
}

// SetParamBool returns the (index, value) pair and whether this bang
// carries a SetParamBool assignment.
func (b Bang) SetParamBool() (index int, v bool, ok bool) {
	return b.paramIndex, b.b, b.kind == SetParamBool
}

// IsPulse reports whether this bang is a Pulse.
func (b Bang) IsPulse() bool { return b.kind == Pulse }

// IsEmpty reports whether this bang is Empty.
func (b Bang) IsEmpty() bool { return b.kind == Empty }
