package scalar_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/tone-format/tone-go/internal/scalar"
)

func TestRenderScalars(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"null", nil, "null"},
		{"true", true, "true"},
		{"false", false, "false"},
		{"bigint", big.NewInt(-42), "-42"},
		{"float", 1.5, "1.5"},
		{"plain string", "hello", "hello"},
		{"empty string quoted", "", `""`},
		{"reserved word quoted", "null", `"null"`},
		{"numeric-looking string quoted", "42", `"42"`},
		{"string with colon quoted", "a:b", `"a:b"`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := scalar.Render(c.in, scalar.Context{})
			if err != nil {
				t.Fatalf("Render(%v) error: %v", c.in, err)
			}
			if got != c.want {
				t.Errorf("Render(%v) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestRenderNonFiniteFloat(t *testing.T) {
	if _, err := scalar.Render(math.NaN(), scalar.Context{}); err == nil {
		t.Fatal("expected error rendering NaN")
	}
	if _, err := scalar.Render(math.Inf(1), scalar.Context{}); err == nil {
		t.Fatal("expected error rendering +Inf")
	}
}

func TestNeedsQuotingDelimiter(t *testing.T) {
	ctx := scalar.Context{Active: scalar.Comma}
	if !scalar.NeedsQuoting("a,b", ctx) {
		t.Error("expected quoting when string contains the active delimiter")
	}
	if scalar.NeedsQuoting("a,b", scalar.Context{Active: scalar.Pipe}) {
		t.Error("did not expect quoting when the comma isn't the active delimiter")
	}
}

func TestQuoteUnquoteRoundTrip(t *testing.T) {
	in := "line1\nline2\t\"quoted\"\\"
	quoted := scalar.Quote(in)
	got, err := scalar.Unquote(quoted)
	if err != nil {
		t.Fatalf("Unquote(%q) error: %v", quoted, err)
	}
	if got != in {
		t.Fatalf("round trip = %q, want %q", got, in)
	}
}

func TestUnquoteInvalid(t *testing.T) {
	if _, err := scalar.Unquote("not quoted"); err == nil {
		t.Fatal("expected error for unquoted input")
	}
	if _, err := scalar.Unquote(`"unterminated`); err == nil {
		t.Fatal("expected error for unterminated quote")
	}
	if _, err := scalar.Unquote(`"\z"`); err == nil {
		t.Fatal("expected error for unknown escape")
	}
}

func TestRecognize(t *testing.T) {
	cases := []struct {
		token    string
		wantKind string
	}{
		{"null", "null"},
		{"true", "bool"},
		{"false", "bool"},
		{"42", "int"},
		{"-17", "int"},
		{"0", "int"},
		{"3.14", "float"},
		{"1e10", "float"},
		{`"quoted"`, "string"},
		{"bareword", "string"},
	}
	for _, c := range cases {
		r, err := scalar.Recognize(c.token)
		if err != nil {
			t.Fatalf("Recognize(%q) error: %v", c.token, err)
		}
		if r.Kind != c.wantKind {
			t.Errorf("Recognize(%q).Kind = %q, want %q", c.token, r.Kind, c.wantKind)
		}
	}
}

func TestRecognizeRejectsLeadingZero(t *testing.T) {
	r, err := scalar.Recognize("007")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Kind != "string" {
		t.Errorf("Recognize(%q).Kind = %q, want string (leading zero is not a valid integer literal)", "007", r.Kind)
	}
}

func TestLooksLikeNumber(t *testing.T) {
	for _, s := range []string{"0", "-5", "3.14", "1e3", "-2.5e-10"} {
		if !scalar.LooksLikeNumber(s) {
			t.Errorf("LooksLikeNumber(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "abc", "01", "1.", ".5", "1e"} {
		if scalar.LooksLikeNumber(s) {
			t.Errorf("LooksLikeNumber(%q) = true, want false", s)
		}
	}
}

func TestSplitDelimited(t *testing.T) {
	tokens, err := scalar.SplitDelimited(`1,"a,b",3`, scalar.Comma)
	if err != nil {
		t.Fatalf("SplitDelimited error: %v", err)
	}
	want := []string{"1", `"a,b"`, "3"}
	if len(tokens) != len(want) {
		t.Fatalf("SplitDelimited = %v, want %v", tokens, want)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("tokens[%d] = %q, want %q", i, tokens[i], want[i])
		}
	}
}

func TestSplitDelimitedEmpty(t *testing.T) {
	tokens, err := scalar.SplitDelimited("", scalar.Comma)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens != nil {
		t.Fatalf("SplitDelimited(\"\") = %v, want nil", tokens)
	}
}

func TestSplitDelimitedUnterminatedQuote(t *testing.T) {
	if _, err := scalar.SplitDelimited(`1,"unterminated`, scalar.Comma); err == nil {
		t.Fatal("expected error for unterminated quote")
	}
}

func TestIndexOutsideQuotes(t *testing.T) {
	if got := scalar.IndexOutsideQuotes(`"a:b":c`, ':'); got != 5 {
		t.Errorf("IndexOutsideQuotes = %d, want 5", got)
	}
	if got := scalar.IndexOutsideQuotes(`"a:b"`, ':'); got != -1 {
		t.Errorf("IndexOutsideQuotes = %d, want -1", got)
	}
}

func TestEncodeKey(t *testing.T) {
	if got := scalar.EncodeKey("plain", scalar.Context{}); got != "plain" {
		t.Errorf("EncodeKey(plain) = %q, want plain", got)
	}
	if got := scalar.EncodeKey("a,b", scalar.Context{Active: scalar.Comma}); got != `"a,b"` {
		t.Errorf("EncodeKey with active delimiter = %q, want %q", got, `"a,b"`)
	}
}
