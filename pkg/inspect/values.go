package inspect

// Helper value types for structures Go has no literal syntax for. They get
// dedicated rendering strategies in the dispatcher.

// Atom is a named symbol. Identifier-shaped atoms render as :name, anything
// else as a quoted :"...". Atom map keys enable the key: value form when
// every key is identifier-shaped.
type Atom string

// Tuple renders as {a, b, c} with tuple delimiters.
type Tuple []any

// Cons is a linked-list cell. A chain whose final tail is nil renders as a
// proper list; any other terminator renders with a pipe before the final
// element: [1, 2 | 3].
type Cons struct {
	Head any
	Tail any
}

// List builds a proper Cons chain from items.
func List(items ...any) *Cons {
	var head *Cons
	for i := len(items) - 1; i >= 0; i-- {
		var tail any
		if head != nil {
			tail = head
		}
		head = &Cons{Head: items[i], Tail: tail}
	}
	return head
}

// BitString is a byte payload with an explicit bit length. When Bits is not
// a multiple of 8 the final partial byte renders with a ::size(n) suffix.
type BitString struct {
	Bytes []byte
	Bits  int
}

// Charlist is a rune sequence that prefers ~c"..." sigil rendering.
type Charlist []rune
