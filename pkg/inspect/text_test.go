package inspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrings(t *testing.T) {
	tests := []struct {
		name string
		v    string
		opts []Option
		want string
	}{
		{"plain", "hello", nil, `"hello"`},
		{"empty", "", nil, `""`},
		{"embedded_quote", `a"b`, nil, `"a\"b"`},
		{"backslash", `a\b`, nil, `"a\\b"`},
		{"newline", "line\n", nil, `"line\n"`},
		{"tab", "a\tb", nil, `"a\tb"`},
		{"escape_char", "\x1b[0m", nil, `"\e[0m"`},
		{"unicode", "héllo", nil, `"héllo"`},
		{"non_printable_as_bytes", "\x00\x01", nil, "<<0, 1>>"},
		{"forced_binaries", "abc", []Option{WithBinaries(BinariesAsBinaries)}, "<<97, 98, 99>>"},
		{"forced_strings", "\x00", []Option{WithBinaries(BinariesAsStrings)}, `"\x00"`},
		{"hex_base_forces_bytes", "ab", []Option{WithBase(Hex)}, "<<0x61, 0x62>>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sprint(tt.v, tt.opts...))
		})
	}
}

func TestStringTruncation(t *testing.T) {
	got := Sprint("hello world", WithPrintableLimit(4))
	assert.Equal(t, `"hell" <> ...`, got)
}

func TestStringTruncationCountsRunes(t *testing.T) {
	got := Sprint("héllo!", WithPrintableLimit(4))
	assert.Equal(t, `"héll" <> ...`, got)
}

// Inspecting a string that already contains quotes escapes them exactly one
// level; the result stays a valid literal.
func TestQuotingIdempotence(t *testing.T) {
	got := Sprint(`"a"`)
	assert.Equal(t, `"\"a\""`, got)
}

func TestByteSlices(t *testing.T) {
	tests := []struct {
		name string
		v    any
		opts []Option
		want string
	}{
		{"raw_bytes", []byte{1, 2, 3}, nil, "<<1, 2, 3>>"},
		{"printable_inferred", []byte("abc"), nil, `"abc"`},
		{"forced_binary", []byte("abc"), []Option{WithBinaries(BinariesAsBinaries)}, "<<97, 98, 99>>"},
		{"hex_base", []byte{255, 0}, []Option{WithBase(Hex)}, "<<0xFF, 0x0>>"},
		{"limit", []byte{1, 2, 3, 4, 5}, []Option{WithLimit(3)}, "<<1, 2, 3, ...>>"},
		{"empty", []byte{}, nil, `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sprint(tt.v, tt.opts...))
		})
	}
}

func TestBitStrings(t *testing.T) {
	tests := []struct {
		name string
		v    BitString
		want string
	}{
		{"partial_final_byte", BitString{Bytes: []byte{1, 2, 3}, Bits: 20}, "<<1, 2, 3::size(4)>>"},
		{"whole_bytes", BitString{Bytes: []byte{1, 2}, Bits: 16}, "<<1, 2>>"},
		{"single_partial", BitString{Bytes: []byte{5}, Bits: 3}, "<<5::size(3)>>"},
		{"empty", BitString{}, "<<>>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sprint(tt.v))
		})
	}
}

func TestCharlists(t *testing.T) {
	tests := []struct {
		name string
		v    any
		opts []Option
		want string
	}{
		{"sigil", Charlist("hello"), nil, `~c"hello"`},
		{"rune_slice_inferred", []rune("hi"), nil, `~c"hi"`},
		{"forced_list", Charlist("abc"), []Option{WithCharlists(CharlistsAsLists)}, "[97, 98, 99]"},
		{"forced_sigil_escapes", Charlist{1, 2}, []Option{WithCharlists(CharlistsAsCharlists)}, `~c"\x01\x02"`},
		{"non_printable_as_list", Charlist{1, 2, 3}, nil, "[1, 2, 3]"},
		{"negative_rune", Charlist{-1}, nil, "[-1]"},
		{"escaped_sigil", Charlist("a\nb"), nil, `~c"a\nb"`},
		{"empty", Charlist(""), nil, `~c""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sprint(tt.v, tt.opts...))
		})
	}
}

func TestCharlistTruncation(t *testing.T) {
	got := Sprint(Charlist("hello world"), WithPrintableLimit(4))
	assert.Equal(t, `~c"hell" ++ ...`, got)
}

func TestCharlistListTruncation(t *testing.T) {
	got := Sprint(Charlist{1, 2, 3, 4}, WithLimit(2))
	assert.Equal(t, "[1, 2, ...]", got)
}

func TestEscapeString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "abc", "abc"},
		{"quote", `a"b`, `a\"b`},
		{"control_hex", "\x01", `\x01`},
		{"high_codepoint", "\u2028", `\u{2028}`},
		{"bell", "\a", `\a`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeString(tt.in, '"'); got != tt.want {
				t.Errorf("escapeString(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
