package types

import "testing"

func TestBinaryResultArithmetic(t *testing.T) {
	tests := []struct {
		name   string
		left   Type
		right  Type
		target *Type
		want   Type
		errOK  bool
	}{
		{"two comptime_int stay comptime_int", ComptimeInt, ComptimeInt, nil, ComptimeInt, false},
		{"comptime_int + comptime_float is comptime_float", ComptimeInt, ComptimeFloat, nil, ComptimeFloat, false},
		{"comptime_int targeted to i64", ComptimeInt, ComptimeInt, &I64, I64, false},
		{"comptime mixes into concrete i32", ComptimeInt, I32, nil, I32, false},
		{"concrete i32 + i32", I32, I32, nil, I32, false},
		{"concrete i32 + i64 rejected", I32, I64, nil, Unresolved, true},
		{"unresolved propagates silently", Unresolved, I32, nil, Unresolved, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BinaryResult("+", tt.left, tt.right, tt.target)
			if tt.errOK {
				if err == nil {
					t.Fatalf("expected an error, got none (result=%s)", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equals(tt.want) {
				t.Fatalf("BinaryResult(+) = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDivisionThreeWaySplit(t *testing.T) {
	t.Run("slash always float", func(t *testing.T) {
		got, err := DivisionResult("/", I32, I32, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Equals(F64) {
			t.Fatalf("i32 / i32 = %s, want f64", got)
		}
	})

	t.Run("slash narrows to f32 with target", func(t *testing.T) {
		f32 := F32
		got, err := DivisionResult("/", ComptimeInt, ComptimeInt, &f32)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Equals(F32) {
			t.Fatalf("comptime / comptime targeted f32 = %s, want f32", got)
		}
	})

	t.Run("slash on two comptimes with no target stays comptime_float", func(t *testing.T) {
		got, err := DivisionResult("/", ComptimeInt, ComptimeInt, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Equals(ComptimeFloat) {
			t.Fatalf("comptime / comptime = %s, want comptime_float", got)
		}
	})

	t.Run("backslash requires integers", func(t *testing.T) {
		_, err := DivisionResult("\\", F64, F64, nil)
		if err == nil {
			t.Fatal("expected NonIntegerError for float operands to \\")
		}
		if _, ok := err.(*NonIntegerError); !ok {
			t.Fatalf("expected *NonIntegerError, got %T", err)
		}
	})

	t.Run("backslash on integers yields integer", func(t *testing.T) {
		got, err := DivisionResult("\\", I32, I32, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Equals(I32) {
			t.Fatalf("i32 \\ i32 = %s, want i32", got)
		}
	})

	t.Run("percent requires integers", func(t *testing.T) {
		_, err := DivisionResult("%", F32, I32, nil)
		if err == nil {
			t.Fatal("expected NonIntegerError")
		}
	})
}

func TestComparisonAlwaysBool(t *testing.T) {
	got, err := BinaryResult("<", I32, I64, nil)
	if err == nil {
		t.Fatal("expected error: comparing mismatched concrete types should fail to unify")
	}
	got, err = BinaryResult("==", ComptimeInt, I64, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equals(Bool) {
		t.Fatalf("comparison result = %s, want bool", got)
	}
}

func TestLogicalRequiresBool(t *testing.T) {
	_, err := BinaryResult("&&", I32, Bool, nil)
	if err == nil {
		t.Fatal("expected NonBoolError")
	}
	if _, ok := err.(*NonBoolError); !ok {
		t.Fatalf("expected *NonBoolError, got %T", err)
	}

	got, err := BinaryResult("||", Bool, Bool, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equals(Bool) {
		t.Fatalf("bool || bool = %s, want bool", got)
	}
}

func TestUnaryResult(t *testing.T) {
	if got, err := UnaryResult("-", I32); err != nil || !got.Equals(I32) {
		t.Fatalf("-i32 = %s, %v; want i32, nil", got, err)
	}
	if _, err := UnaryResult("-", Bool); err == nil {
		t.Fatal("expected error: cannot negate bool")
	}
	if got, err := UnaryResult("!", Bool); err != nil || !got.Equals(Bool) {
		t.Fatalf("!bool = %s, %v; want bool, nil", got, err)
	}
	if _, err := UnaryResult("!", I32); err == nil {
		t.Fatal("expected error: cannot logically negate i32")
	}
}
