package ir

import "testing"

func TestScalarValue_Bits(t *testing.T) {
	tests := []struct {
		name string
		v    ScalarValue
		want uint64
	}{
		{"bool true", ScalarBool{Value: true}, 1},
		{"bool false", ScalarBool{Value: false}, 0},
		{"i32 negative one", ScalarI32{Value: -1}, 0xFFFFFFFF},
		{"u32", ScalarU32{Value: 0xDEADBEEF}, 0xDEADBEEF},
		{"i64 negative one", ScalarI64{Value: -1}, 0xFFFFFFFFFFFFFFFF},
		{"u64", ScalarU64{Value: 0x0102030405060708}, 0x0102030405060708},
		{"f32 one", ScalarF32{Value: 1.0}, 0x3F800000},
		{"f64 zero", ScalarF64{Value: 0.0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Bits(); got != tt.want {
				t.Fatalf("Bits() = %#x, want %#x", got, tt.want)
			}
		})
	}
}

func TestScalarValue_IsUndefined(t *testing.T) {
	if (ScalarI32{Value: 5}).IsUndefined() {
		t.Fatal("defined scalar reported as undefined")
	}
	if !(ScalarI32{Value: 5, Undefined: true}).IsUndefined() {
		t.Fatal("undefined scalar reported as defined")
	}
}

func TestVector_AnyUndefined(t *testing.T) {
	v := Vector{Count: 3}
	v.Lanes[0] = ScalarF32{Value: 1}
	v.Lanes[1] = ScalarF32{Value: 2}
	v.Lanes[2] = ScalarF32{Value: 3}
	if v.AnyUndefined() {
		t.Fatal("no lane is undefined, AnyUndefined should be false")
	}

	v.Lanes[1] = ScalarF32{Value: 0, Undefined: true}
	if !v.AnyUndefined() {
		t.Fatal("lane 1 is undefined, AnyUndefined should be true")
	}
}

func TestVector_AnyUndefined_IgnoresUnpopulatedLanes(t *testing.T) {
	v := Vector{Count: 1}
	v.Lanes[0] = ScalarF32{Value: 1}
	// Lanes beyond Count are left nil; AnyUndefined must not deref them.
	if v.AnyUndefined() {
		t.Fatal("unexpected undefined result from a vector with nil trailing lanes")
	}
}
