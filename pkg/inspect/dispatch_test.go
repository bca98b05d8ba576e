package inspect

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/silverdr/inspect/pkg/colors"
)

func TestNilValues(t *testing.T) {
	tests := []struct {
		name string
		v    any
	}{
		{"nil_slice", []int(nil)},
		{"nil_map", map[string]int(nil)},
		{"nil_pointer", (*int)(nil)},
		{"nil_chan", (chan int)(nil)},
		{"nil_func", (func())(nil)},
		{"nil_cons", (*Cons)(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.name == "nil_cons" {
				assert.Equal(t, "[]", Sprint(tt.v))
				return
			}
			assert.Equal(t, "nil", Sprint(tt.v))
		})
	}
}

func TestPointerDereference(t *testing.T) {
	x := 5
	assert.Equal(t, "5", Sprint(&x))

	s := "hi"
	assert.Equal(t, `"hi"`, Sprint(&s))
}

func TestRegex(t *testing.T) {
	assert.Equal(t, "~r/ab+c/", Sprint(regexp.MustCompile("ab+c")))
	assert.Equal(t, `Regex.compile!("a/b")`, Sprint(regexp.MustCompile("a/b")))
}

func namedBinary(a, b int) int { return a + b }

func TestFuncRendering(t *testing.T) {
	got := Sprint(namedBinary)
	assert.Equal(t, "&inspect.namedBinary/2", got)
}

func TestAnonymousFuncRendering(t *testing.T) {
	got := Sprint(func(a int) int { return a })
	assert.True(t, strings.HasPrefix(got, "#Function<0x"), "got %q", got)
	assert.True(t, strings.HasSuffix(got, "/1>"), "got %q", got)
}

func TestChanRendering(t *testing.T) {
	ch := make(chan int)
	got := Sprint(ch)
	assert.True(t, strings.HasPrefix(got, "#Chan<0x"), "got %q", got)
}

func TestColorizedOutput(t *testing.T) {
	scheme := colors.Scheme{colors.Atom: colors.Cyan}
	got := Sprint(Atom("ok"), WithColors(scheme))
	assert.Equal(t, "\x1b[36m:ok\x1b[0m", got)
}

func TestColorizedCollection(t *testing.T) {
	scheme := colors.Scheme{
		colors.List:   colors.Red,
		colors.Number: colors.Yellow,
	}
	got := Sprint([]int{1}, WithColors(scheme))
	assert.Equal(t, "\x1b[31m[\x1b[33m1\x1b[31m]\x1b[0m", got)
}

func TestNoColorsByDefault(t *testing.T) {
	got := Sprint([]int{1, 2})
	assert.NotContains(t, got, "\x1b[")
}

func TestInspectReturnsNilErrorInSafeMode(t *testing.T) {
	s, err := Inspect([]any{1, "two", Atom("three")})
	assert.NoError(t, err)
	assert.Equal(t, `[1, "two", :three]`, s)
}

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"ok", true},
		{"is_ok?", true},
		{"save!", true},
		{"_private", true},
		{"a1", true},
		{"Ok", false},
		{"1a", false},
		{"", false},
		{"hello world", false},
		{"ok?!", false},
	}

	for _, tt := range tests {
		if got := isIdentifier(tt.in); got != tt.want {
			t.Errorf("isIdentifier(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
