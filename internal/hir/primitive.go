package hir

// PrimitiveType is one of the closed set of built-in primitive types.
type PrimitiveType uint8

const (
	PrimBool PrimitiveType = iota
	PrimI8
	PrimI16
	PrimI32
	PrimI64
	PrimU8
	PrimU16
	PrimU32
	PrimU64
	PrimF32
	PrimF64
)

var primitiveNames = [...]Name{
	PrimBool: "bool",
	PrimI8:   "i8",
	PrimI16:  "i16",
	PrimI32:  "i32",
	PrimI64:  "i64",
	PrimU8:   "u8",
	PrimU16:  "u16",
	PrimU32:  "u32",
	PrimU64:  "u64",
	PrimF32:  "f32",
	PrimF64:  "f64",
}

// Name returns the source-level name of the primitive.
func (p PrimitiveType) Name() Name { return primitiveNames[p] }

// AllPrimitives lists every primitive type in declaration order.
func AllPrimitives() []PrimitiveType {
	out := make([]PrimitiveType, len(primitiveNames))
	for i := range primitiveNames {
		out[i] = PrimitiveType(i)
	}
	return out
}
