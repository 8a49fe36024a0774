package conv

import (
	"math"
	"testing"
)

func TestIntToUint32(t *testing.T) {
	tests := []struct {
		in   int
		want uint32
	}{
		{0, 0},
		{1, 1},
		{1 << 20, 1 << 20},
	}
	for _, tt := range tests {
		if got := IntToUint32(tt.in); got != tt.want {
			t.Errorf("IntToUint32(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestIndex(t *testing.T) {
	if got := Index(7); got != 7 {
		t.Errorf("Index(7) = %d, want 7", got)
	}
	if got := Index(math.MaxUint32 - 1); got != math.MaxUint32-1 {
		t.Errorf("Index(MaxUint32-1) = %d", got)
	}
}

func TestPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"IntToUint32 negative", func() { IntToUint32(-1) }},
		{"IntToUint32 overflow", func() { IntToUint32(math.MaxUint32 + 1) }},
		{"Index negative", func() { Index(-1) }},
		{"Index reserved", func() { Index(math.MaxUint32) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}
