package indent_test

import (
	"testing"

	"github.com/tone-format/tone-go/internal/indent"
)

func TestPrefix(t *testing.T) {
	cases := []struct {
		depth, step int
		want        string
	}{
		{0, 2, ""},
		{1, 2, "  "},
		{3, 2, "      "},
		{-1, 2, ""},
		{2, 4, "        "},
	}
	for _, c := range cases {
		if got := indent.Prefix(c.depth, c.step); got != c.want {
			t.Errorf("Prefix(%d, %d) = %q, want %q", c.depth, c.step, got, c.want)
		}
	}
}

func TestMeasure(t *testing.T) {
	depth, rest, hasTab, remainder := indent.Measure("    key: 1", 2)
	if hasTab || remainder {
		t.Fatalf("unexpected error flags: hasTab=%v remainder=%v", hasTab, remainder)
	}
	if depth != 2 || rest != "key: 1" {
		t.Fatalf("Measure() = (%d, %q), want (2, %q)", depth, rest, "key: 1")
	}
}

func TestMeasureZeroDepth(t *testing.T) {
	depth, rest, hasTab, remainder := indent.Measure("key: 1", 2)
	if hasTab || remainder {
		t.Fatalf("unexpected error flags")
	}
	if depth != 0 || rest != "key: 1" {
		t.Fatalf("Measure() = (%d, %q), want (0, %q)", depth, rest, "key: 1")
	}
}

func TestMeasureTab(t *testing.T) {
	_, _, hasTab, _ := indent.Measure("\tkey: 1", 2)
	if !hasTab {
		t.Fatal("expected hasTab=true for a tab-indented line")
	}
}

func TestMeasureRemainder(t *testing.T) {
	_, _, _, remainder := indent.Measure("   key: 1", 2)
	if !remainder {
		t.Fatal("expected remainder=true for 3 spaces under step 2")
	}
}
