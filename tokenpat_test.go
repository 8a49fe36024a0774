package tokenpat

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/tokenpat/graph"
	"github.com/coregx/tokenpat/meta"
)

func TestMatchString(t *testing.T) {
	tests := []struct {
		tokens string
		input  string
		want   bool
	}{
		{"d+u", "1A", true},
		{"d+u", "12A", true},
		{"d+u", "1A1", true},
		{"d+u", "A1", false},
		{"d+u", "1", false},
		{"d+u", "", false},
		{"u+d", "AB1", true},
		{"u+d", "A", false},
		{"u+d", "1A", false},
		{"", "", true},
		{"", "anything", true},
		{"+", "x", true},
		{"abc", "abcdef", true},
		{"abc", "ab", false},
		{"a+b", "aaab", true},
		{"a+b", "b", false},
	}

	for _, tt := range tests {
		t.Run(tt.tokens+"/"+tt.input, func(t *testing.T) {
			p := MustCompile(tt.tokens, "test")
			assert.Equal(t, tt.want, p.MatchString(tt.input))
			assert.Equal(t, tt.want, p.Match([]byte(tt.input)))
		})
	}
}

func TestFindFirst(t *testing.T) {
	tests := []struct {
		tokens string
		input  string
		offset int
		ok     bool
	}{
		{"d+u", "A1B", 1, true},
		{"d+u", "abc123B2", 3, true},
		{"d+u", "abc123b2", -1, false},
		{"d+u", "", -1, false},
		{"", "", 0, true},
		{"", "xyz", 0, true},
		{"x", "abcx", 3, true},
		{"ud", "aB7", 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.tokens+"/"+tt.input, func(t *testing.T) {
			for _, prefilter := range []bool{true, false} {
				config := DefaultConfig()
				config.EnablePrefilter = prefilter
				p, err := CompileWithConfig(tt.tokens, "test", config)
				require.NoError(t, err)

				offset, ok := p.FindFirst(tt.input)
				assert.Equal(t, tt.ok, ok, "prefilter=%v", prefilter)
				assert.Equal(t, tt.offset, offset, "prefilter=%v", prefilter)
			}
		})
	}
}

// A match at offset k means the pattern matches the suffix starting at k,
// and no earlier suffix matches.
func TestFindFirst_AgreesWithMatch(t *testing.T) {
	inputs := []string{"A1B", "abc123B2", "x9-Q", "ZZ12", "1a2B3c", ""}
	for _, tokens := range []string{"d+u", "u+d", "d-u", "ud", "+d"} {
		p := MustCompile(tokens, tokens)
		for _, in := range inputs {
			offset, ok := p.FindFirst(in)
			want := -1
			for k := 0; k <= len(in); k++ {
				if p.MatchString(in[k:]) {
					want = k
					break
				}
			}
			assert.Equal(t, want >= 0, ok, "%q in %q", tokens, in)
			assert.Equal(t, want, offset, "%q in %q", tokens, in)
		}
	}
}

func TestCompile_Idempotent(t *testing.T) {
	a := MustCompile("d+u-x", "a")
	b := MustCompile("d+u-x", "b")
	assert.Equal(t, a.NumNodes(), b.NumNodes())
	assert.Equal(t, a.Strategy(), b.Strategy())

	for _, in := range []string{"1A-x", "11A-xz", "1A-", "A-x", "q9Z-x"} {
		assert.Equal(t, a.MatchString(in), b.MatchString(in), in)
		oa, _ := a.FindFirst(in)
		ob, _ := b.FindFirst(in)
		assert.Equal(t, oa, ob, in)
	}
}

func TestPattern_Accessors(t *testing.T) {
	p := MustCompile("d+u", "identifier")
	assert.Equal(t, "identifier", p.Name())
	assert.Equal(t, "d+u", p.String())
	assert.Equal(t, 3, p.NumNodes())
	assert.Equal(t, meta.UsePrefilter, p.Strategy())

	assert.Equal(t, meta.UseLiteral, MustCompile("abc", "lit").Strategy())
	assert.Equal(t, meta.UseEmpty, MustCompile("", "empty").Strategy())
}

func TestFindIndex(t *testing.T) {
	p := MustCompile("d+u", "id")

	assert.Equal(t, []int{3, 7}, p.FindStringIndex("abc123B2"))
	assert.Equal(t, []int{3, 7}, p.FindIndex([]byte("abc123B2")))
	assert.Nil(t, p.FindStringIndex("abc123b2"))

	assert.Equal(t, []byte("123B"), p.Find([]byte("abc123B2")))
	assert.Nil(t, p.Find([]byte("none")))
	assert.Equal(t, "123B", p.FindString("abc123B2"))
	assert.Equal(t, "", p.FindString("none"))

	empty := MustCompile("", "empty")
	assert.Equal(t, []int{0, 0}, empty.FindStringIndex("abc"))
}

func TestFindAll(t *testing.T) {
	p := MustCompile("d+u", "id")
	input := "1A 22B c3C"

	assert.Equal(t, [][]int{{0, 2}, {3, 6}, {8, 10}}, p.FindAllIndex([]byte(input), -1))
	assert.Equal(t, []string{"1A", "22B"}, p.FindAllString(input, 2))
	assert.Nil(t, p.FindAllIndex([]byte("nothing"), -1))
	assert.Nil(t, p.FindAllString(input, 0))
	assert.Equal(t, 3, p.Count([]byte(input), -1))
	assert.Equal(t, 1, p.Count([]byte(input), 1))
}

func TestRelease(t *testing.T) {
	tests := []struct {
		tokens string
		nodes  int
	}{
		{"", 1},
		{"+", 1},
		{"d+u", 3},
		{"u+d", 3},
		{"a+b+c+", 4},
		{strings.Repeat("d", 50), 51},
	}

	for _, tt := range tests {
		t.Run(tt.tokens, func(t *testing.T) {
			p := MustCompile(tt.tokens, "rel")
			assert.Equal(t, tt.nodes, p.Release())
			assert.Equal(t, 0, p.Release())
			assert.Equal(t, 0, p.NumNodes())
			assert.False(t, p.MatchString("1A"))
			_, ok := p.FindFirst("1A")
			assert.False(t, ok)
		})
	}
}

func TestCompileWithConfig_Errors(t *testing.T) {
	config := DefaultConfig()
	config.MaxTokens = 2
	_, err := CompileWithConfig("d+u", "long", config)
	require.Error(t, err)
	assert.ErrorIs(t, err, graph.ErrTooManyTokens)

	var ce *graph.CompileError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "d+u", ce.Pattern)

	config = DefaultConfig()
	config.MinLiteralLen = 0
	_, err = CompileWithConfig("d", "d", config)
	var cfgErr *meta.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestLongInput(t *testing.T) {
	p := MustCompile("d+u", "id")
	input := strings.Repeat("9", 5000) + "Z"
	assert.True(t, p.MatchString(input))

	hay := strings.Repeat("abcdefgh", 1000) + "42K"
	offset, ok := p.FindFirst(hay)
	require.True(t, ok)
	assert.Equal(t, 8000, offset)
}

func TestConcurrentUse(t *testing.T) {
	p := MustCompile("u+d", "code")

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				offset, ok := p.FindFirst("xxAB1")
				assert.True(t, ok)
				assert.Equal(t, 2, offset)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(800), p.Stats().Searches)
}

func TestSet(t *testing.T) {
	errPat := MustCompile("ERRd", "error")
	warnPat := MustCompile("WARNd", "warning")
	set, err := NewSet(errPat, warnPat)
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())
	assert.Same(t, warnPat, set.Pattern(1))

	i, offset, ok := set.Find("x WARN7 ERR1")
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, 2, offset)

	i, loc := set.FindIndex([]byte("ERR5"))
	assert.Equal(t, 0, i)
	assert.Equal(t, []int{0, 4}, loc)

	assert.False(t, set.Match("all good"))
	i, loc = set.FindIndex([]byte("all good"))
	assert.Equal(t, -1, i)
	assert.Nil(t, loc)
	assert.Equal(t, uint64(4), set.Stats().Searches)
}

func TestSet_NestedLiteralPrefixes(t *testing.T) {
	set, err := NewSet(MustCompile("1aa", "long"), MustCompile("a", "short"))
	require.NoError(t, err)

	i, offset, ok := set.Find("b91bbb1aa")
	require.True(t, ok)
	assert.Equal(t, 0, i)
	assert.Equal(t, 6, offset)
}

func TestSet_Errors(t *testing.T) {
	_, err := NewSet()
	assert.ErrorIs(t, err, meta.ErrEmptySet)

	config := DefaultConfig()
	config.MaxTokens = -1
	_, err = NewSetWithConfig(config, MustCompile("a", "a"))
	assert.Error(t, err)
}

func BenchmarkFindFirst(b *testing.B) {
	p := MustCompile("d+u", "id")
	hay := strings.Repeat("abcdefgh", 512) + "42K"
	b.SetBytes(int64(len(hay)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.FindFirst(hay)
	}
}

func TestNumTokens(t *testing.T) {
	assert.Equal(t, 3, MustCompile("d+u", "id").NumTokens())
	assert.Equal(t, 0, MustCompile("", "empty").NumTokens())
}
