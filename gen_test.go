package contiguous_test

import (
	"fmt"
	"testing"

	"github.com/npillmayer/contiguous"
)

func TestComposition(t *testing.T) {
	g := func(n int) float32 {
		return float32(n) + 0.5
	}
	f := func(x float32) string {
		return fmt.Sprintf("%.3f", x)
	}
	h := contiguous.Compose(g, f)
	h7 := h(7)
	if h7 != "7.500" {
		t.Logf("composition h(7) = %q", h(7))
		t.Error("expected h(7) to return string 7.500")
	}
}

func TestConst(t *testing.T) {
	seven := contiguous.Const(7)
	if seven(0) != 7 || seven(100) != 7 {
		t.Logf("const = %v", seven(0))
		t.Error("expected const to be integer 7 for every index")
	}
}

func TestZero(t *testing.T) {
	nothing := contiguous.Zero[string]()
	if nothing(3) != "" {
		t.Errorf("expected Zero to produce the empty string, is %q", nothing(3))
	}
}

func TestIota(t *testing.T) {
	odd := contiguous.Iota(1, 2)
	for i, expected := range []int{1, 3, 5, 7} {
		if odd(i) != expected {
			t.Errorf("expected Iota(1,2)(%d) to be %d, is %d", i, expected, odd(i))
		}
	}
	halves := contiguous.Iota(0.0, 0.5)
	if halves(3) != 1.5 {
		t.Errorf("expected Iota(0,0.5)(3) to be 1.5, is %v", halves(3))
	}
}

func TestMap(t *testing.T) {
	letters := contiguous.Map(contiguous.Iota[rune]('a', 1), func(r rune) string {
		return string(r)
	})
	if letters(2) != "c" {
		t.Errorf("expected letters(2) to be \"c\", is %q", letters(2))
	}
}
