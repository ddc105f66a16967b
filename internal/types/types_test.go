package types

import "testing"

func TestCanCoerce(t *testing.T) {
	tests := []struct {
		name string
		from Type
		to   Type
		want bool
	}{
		{"comptime_int to i32", ComptimeInt, I32, true},
		{"comptime_int to i64", ComptimeInt, I64, true},
		{"comptime_int to f32", ComptimeInt, F32, true},
		{"comptime_int to f64", ComptimeInt, F64, true},
		{"comptime_float to f32", ComptimeFloat, F32, true},
		{"comptime_float to f64", ComptimeFloat, F64, true},
		{"comptime_float to i32 rejected", ComptimeFloat, I32, false},
		{"i32 to i64 rejected (no implicit concrete widening)", I32, I64, false},
		{"bool isolated from i32", Bool, I32, false},
		{"i32 isolated from bool", I32, Bool, false},
		{"same type always coerces", I32, I32, true},
		{"string isolated from comptime_int", ComptimeInt, StringType, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanCoerce(tt.from, tt.to); got != tt.want {
				t.Errorf("CanCoerce(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestDefaultConcrete(t *testing.T) {
	tests := []struct {
		in   Type
		want Type
	}{
		{ComptimeInt, I32},
		{ComptimeFloat, F64},
		{I32, I32},
		{Bool, Bool},
	}
	for _, tt := range tests {
		if got := DefaultConcrete(tt.in); !got.Equals(tt.want) {
			t.Errorf("DefaultConcrete(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestResolveWithoutTarget(t *testing.T) {
	got, ok := Resolve(ComptimeInt, nil)
	if !ok || !got.Equals(I32) {
		t.Errorf("Resolve(comptime_int, nil) = %s, %v; want i32, true", got, ok)
	}
}

func TestResolveWithTarget(t *testing.T) {
	got, ok := Resolve(ComptimeInt, &F64)
	if !ok || !got.Equals(F64) {
		t.Errorf("Resolve(comptime_int, &f64) = %s, %v; want f64, true", got, ok)
	}
}

func TestResolveRejectsIncompatibleTarget(t *testing.T) {
	_, ok := Resolve(ComptimeFloat, &I32)
	if ok {
		t.Error("Resolve(comptime_float, &i32) should fail: a float literal cannot coerce to an integer type")
	}
}

func TestConversionAllowed(t *testing.T) {
	tests := []struct {
		name string
		from Type
		to   Type
		want bool
	}{
		{"i32 to i64 widening", I32, I64, true},
		{"i64 to i32 narrowing", I64, I32, true},
		{"f64 to f32 narrowing", F64, F32, true},
		{"i32 to f64", I32, F64, true},
		{"f64 to i32", F64, I32, true},
		{"bool to i32 rejected", Bool, I32, false},
		{"i32 to bool rejected", I32, Bool, false},
		{"string to i32 rejected", StringType, I32, false},
		{"i32 to string rejected", I32, StringType, false},
		{"bool to bool", Bool, Bool, true},
		{"string to string", StringType, StringType, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConversionAllowed(tt.from, tt.to); got != tt.want {
				t.Errorf("ConversionAllowed(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestFromName(t *testing.T) {
	for name, want := range map[string]Type{
		"i32": I32, "i64": I64, "f32": F32, "f64": F64,
		"string": StringType, "bool": Bool, "void": Void,
	} {
		got, ok := FromName(name)
		if !ok || !got.Equals(want) {
			t.Errorf("FromName(%q) = %s, %v; want %s, true", name, got, ok, want)
		}
	}
	if _, ok := FromName("comptime_int"); ok {
		t.Error("FromName should never resolve comptime type names")
	}
	if _, ok := FromName("nonsense"); ok {
		t.Error("FromName should reject unknown names")
	}
}
