package prefilter

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/coregx/tokenpat/graph"
)

func prefixOf(t *testing.T, pattern string) graph.Prefix {
	t.Helper()
	g, err := graph.Compile(pattern, pattern)
	if err != nil {
		t.Fatalf("Compile(%q): %v", pattern, err)
	}
	return g.Prefix()
}

func TestNew_Selection(t *testing.T) {
	tests := []struct {
		pattern  string
		minLen   int
		wantType string
		complete bool
	}{
		{"", 1, "nil", false},
		{"+", 1, "nil", false},
		{"d+u", 1, "*prefilter.Digit", false},
		{"u+d", 1, "*prefilter.Upper", false},
		{"x", 1, "*prefilter.Memchr", true},
		{"x+y", 1, "*prefilter.Memchr", false},
		{"abc", 1, "*prefilter.Memmem", true},
		{"abd", 1, "*prefilter.Memmem", false},
		{"abd", 3, "*prefilter.Memchr", false},
		{"abc", 4, "*prefilter.Memchr", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			pf := New(prefixOf(t, tt.pattern), tt.minLen)
			got := "nil"
			switch pf.(type) {
			case *Digit:
				got = "*prefilter.Digit"
			case *Upper:
				got = "*prefilter.Upper"
			case *Memchr:
				got = "*prefilter.Memchr"
			case *Memmem:
				got = "*prefilter.Memmem"
			}
			if got != tt.wantType {
				t.Fatalf("New() = %s, want %s", got, tt.wantType)
			}
			if pf != nil && pf.IsComplete() != tt.complete {
				t.Errorf("IsComplete() = %v, want %v", pf.IsComplete(), tt.complete)
			}
		})
	}
}

func TestDigit_Find(t *testing.T) {
	pf := NewDigit()
	tests := []struct {
		haystack string
		at       int
		want     int
	}{
		{"abc123B2", 0, 3},
		{"abc123B2", 4, 4},
		{"abc123B2", 6, 7},
		{"abc123B2", 8, -1},
		{"no digits", 0, -1},
	}
	for _, tc := range tests {
		if got := pf.Find([]byte(tc.haystack), tc.at); got != tc.want {
			t.Errorf("Find(%q, %d) = %d, want %d", tc.haystack, tc.at, got, tc.want)
		}
	}
	if pf.IsComplete() || pf.LiteralLen() != 0 || pf.HeapBytes() != 0 {
		t.Error("Digit prefilter must be incomplete with no heap")
	}
}

func TestUpper_Find(t *testing.T) {
	pf := NewUpper()
	if got := pf.Find([]byte("a1B"), 0); got != 2 {
		t.Errorf("Find = %d, want 2", got)
	}
	if got := pf.Find([]byte("a1b"), 0); got != -1 {
		t.Errorf("Find = %d, want -1", got)
	}
	if pf.IsComplete() || pf.LiteralLen() != 0 || pf.HeapBytes() != 0 {
		t.Error("Upper prefilter must be incomplete with no heap")
	}
}

func TestMemmem_Find(t *testing.T) {
	pf := New(prefixOf(t, "key="), 1)
	mm, ok := pf.(*Memmem)
	if !ok {
		t.Fatalf("expected *Memmem, got %T", pf)
	}
	if string(mm.Needle()) != "key=" {
		t.Errorf("Needle() = %q", mm.Needle())
	}
	h := []byte("a key=1 key=2")
	if got := pf.Find(h, 0); got != 2 {
		t.Errorf("Find(0) = %d, want 2", got)
	}
	if got := pf.Find(h, 3); got != 8 {
		t.Errorf("Find(3) = %d, want 8", got)
	}
	if got := pf.Find(h, len(h)); got != -1 {
		t.Errorf("Find(len) = %d, want -1", got)
	}
	if !pf.IsComplete() || pf.LiteralLen() != 4 || pf.HeapBytes() != 4 {
		t.Errorf("complete literal: IsComplete=%v LiteralLen=%d HeapBytes=%d",
			pf.IsComplete(), pf.LiteralLen(), pf.HeapBytes())
	}
}

func TestMemchr_Find(t *testing.T) {
	pf := New(prefixOf(t, "#"), 1)
	if got := pf.Find([]byte("ab#c#"), 3); got != 4 {
		t.Errorf("Find = %d, want 4", got)
	}
	if pf.LiteralLen() != 1 {
		t.Errorf("LiteralLen() = %d, want 1", pf.LiteralLen())
	}
	incomplete := New(prefixOf(t, "#d"), 1)
	if incomplete.IsComplete() || incomplete.LiteralLen() != 0 {
		t.Error("#d prefix must be incomplete")
	}
}

func TestAhoCorasick(t *testing.T) {
	pf, err := NewAhoCorasick([][]byte{[]byte("ERR"), []byte("WARN"), []byte("id=")})
	if err != nil {
		t.Fatalf("NewAhoCorasick: %v", err)
	}
	h := []byte("ok ok WARN then ERR and id=7")
	if got := pf.Find(h, 0); got != 6 {
		t.Errorf("Find(0) = %d, want 6", got)
	}
	if got := pf.Find(h, 7); got != 16 {
		t.Errorf("Find(7) = %d, want 16", got)
	}
	if got := pf.Find(h, len(h)); got != -1 {
		t.Errorf("Find(len) = %d, want -1", got)
	}
	if pf.Literals() != 3 || pf.IsComplete() {
		t.Errorf("Literals() = %d, IsComplete() = %v", pf.Literals(), pf.IsComplete())
	}

	if _, err := NewAhoCorasick(nil); !errors.Is(err, ErrNoLiterals) {
		t.Errorf("empty literal set: got %v, want ErrNoLiterals", err)
	}
	if _, err := NewAhoCorasick([][]byte{[]byte("a"), nil}); !errors.Is(err, ErrNoLiterals) {
		t.Errorf("empty literal: got %v, want ErrNoLiterals", err)
	}
}

func TestAhoCorasick_NestedLiteral(t *testing.T) {
	pf, err := NewAhoCorasick([][]byte{[]byte("1aa"), []byte("a")})
	if err != nil {
		t.Fatalf("NewAhoCorasick: %v", err)
	}
	h := []byte("b91bbb1aa")
	tests := []struct{ start, want int }{
		{0, 6},
		{3, 6},
		{6, 6},
		{7, 7},
		{8, 8},
		{9, -1},
	}
	for _, tt := range tests {
		if got := pf.Find(h, tt.start); got != tt.want {
			t.Errorf("Find(%d) = %d, want %d", tt.start, got, tt.want)
		}
	}
}

func leftmostLiteral(haystack []byte, literals [][]byte, start int) int {
	for pos := start; pos < len(haystack); pos++ {
		for _, lit := range literals {
			if bytes.HasPrefix(haystack[pos:], lit) {
				return pos
			}
		}
	}
	return -1
}

func TestAhoCorasick_Leftmost(t *testing.T) {
	sets := [][]string{
		{"1aa", "a"},
		{"abc", "bc", "c"},
		{"ab", "b", "bab"},
		{"xyz", "y"},
		{"aaa", "aa", "a1"},
	}
	alphabet := []byte("abc1xyz")
	rng := rand.New(rand.NewSource(7))

	for _, set := range sets {
		literals := make([][]byte, len(set))
		for i, s := range set {
			literals[i] = []byte(s)
		}
		pf, err := NewAhoCorasick(literals)
		if err != nil {
			t.Fatalf("NewAhoCorasick(%q): %v", set, err)
		}
		for i := 0; i < 300; i++ {
			h := make([]byte, rng.Intn(20))
			for j := range h {
				h[j] = alphabet[rng.Intn(len(alphabet))]
			}
			for start := 0; start <= len(h); start++ {
				want := leftmostLiteral(h, literals, start)
				if got := pf.Find(h, start); got != want {
					t.Fatalf("%q: Find(%q, %d) = %d, want %d", set, h, start, got, want)
				}
			}
		}
	}
}

func TestByteSet(t *testing.T) {
	bs := NewByteSet([]graph.Prefix{prefixOf(t, "ERRd"), prefixOf(t, "d+u")})
	if bs == nil {
		t.Fatal("NewByteSet returned nil")
	}
	if bs.Len() != 11 {
		t.Errorf("Len() = %d, want 11", bs.Len())
	}
	if bs.IsComplete() || bs.LiteralLen() != 0 || bs.HeapBytes() != 256 {
		t.Errorf("unexpected metadata: complete=%v len=%d heap=%d",
			bs.IsComplete(), bs.LiteralLen(), bs.HeapBytes())
	}

	haystack := []byte("abc E x7")
	tests := []struct{ start, want int }{
		{0, 4},
		{5, 7},
		{8, -1},
		{-1, -1},
	}
	for _, tt := range tests {
		if got := bs.Find(haystack, tt.start); got != tt.want {
			t.Errorf("Find(%d) = %d, want %d", tt.start, got, tt.want)
		}
	}

	if NewByteSet([]graph.Prefix{prefixOf(t, "x"), prefixOf(t, "")}) != nil {
		t.Error("empty-matching member should disable the byte set")
	}
	if NewByteSet(nil) != nil {
		t.Error("NewByteSet(nil) should be nil")
	}
}
