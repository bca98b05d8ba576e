package inspect

import (
	"math"
	"testing"
)

func TestIntegers(t *testing.T) {
	tests := []struct {
		name string
		v    any
		opts []Option
		want string
	}{
		{"zero", 0, nil, "0"},
		{"positive", 100, nil, "100"},
		{"negative", -100, nil, "-100"},
		{"hex", 100, []Option{WithBase(Hex)}, "0x64"},
		{"hex_negative", -100, []Option{WithBase(Hex)}, "-0x64"},
		{"hex_uppercase_digits", 255, []Option{WithBase(Hex)}, "0xFF"},
		{"octal", 8, []Option{WithBase(Octal)}, "0o10"},
		{"binary", 5, []Option{WithBase(Binary)}, "0b101"},
		{"min_int64", int64(math.MinInt64), []Option{WithBase(Hex)}, "-0x8000000000000000"},
		{"uint", uint(255), nil, "255"},
		{"uint8", uint8(7), nil, "7"},
		{"int16", int16(-42), nil, "-42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sprint(tt.v, tt.opts...); got != tt.want {
				t.Errorf("Sprint(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestFloats(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{"integral_keeps_point", 1.0, "1.0"},
		{"fraction", 3.14, "3.14"},
		{"negative", -2.5, "-2.5"},
		{"exponent_gains_point", 1e21, "1.0e+21"},
		{"exponent", 1e20, "1.0e+20"},
		{"small_exponent", 1e-7, "1.0e-07"},
		{"negative_exponent_mantissa", -1e21, "-1.0e+21"},
		{"fractional_exponent_untouched", 1.5e300, "1.5e+300"},
		{"float32", float32(0.5), "0.5"},
		{"infinity", math.Inf(1), "+Inf"},
		{"nan", math.NaN(), "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sprint(tt.v); got != tt.want {
				t.Errorf("Sprint(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestAtoms(t *testing.T) {
	tests := []struct {
		name string
		v    Atom
		want string
	}{
		{"plain", "ok", ":ok"},
		{"underscore", "not_found", ":not_found"},
		{"question", "valid?", ":valid?"},
		{"bang", "save!", ":save!"},
		{"uppercase_quoted", "Ok", `:"Ok"`},
		{"space_quoted", "hello world", `:"hello world"`},
		{"embedded_quote", `say "hi"`, `:"say \"hi\""`},
		{"empty_quoted", "", `:""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sprint(tt.v); got != tt.want {
				t.Errorf("Sprint(%q) = %q, want %q", string(tt.v), got, tt.want)
			}
		})
	}
}

func TestBooleansAndNil(t *testing.T) {
	if got := Sprint(true); got != "true" {
		t.Errorf("Sprint(true) = %q", got)
	}
	if got := Sprint(false); got != "false" {
		t.Errorf("Sprint(false) = %q", got)
	}
	if got := Sprint(nil); got != "nil" {
		t.Errorf("Sprint(nil) = %q", got)
	}
}

func TestComplex(t *testing.T) {
	if got := Sprint(complex(1, 2)); got != "(1+2i)" {
		t.Errorf("Sprint(1+2i) = %q", got)
	}
}
