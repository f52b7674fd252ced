package report

import (
	"math"
	"strings"
	"testing"

	"github.com/cwbudde/algo-pow/pow"
)

func TestClassify(t *testing.T) {
	inf := math.Inf(1)
	tests := []struct {
		name       string
		x, y       float64
		wantClass  Class
		wantReason Reason
		wantTitle  string
	}{
		{"finite", 2, 10, ClassFinite, ReasonNone, "Result"},
		{"exact zero", 0, 3, ClassFinite, ReasonNone, "Result"},
		{"zero to negative power", 0, -2, ClassUndefined, ReasonZeroNegativePower, "Division by Zero"},
		{"negative zero to negative power", math.Copysign(0, -1), -0.5, ClassUndefined, ReasonZeroNegativePower, "Division by Zero"},
		{"complex", -8, 1.0 / 3, ClassUndefined, ReasonComplexResult, "Complex Number Result"},
		{"complex half", -2, 0.5, ClassUndefined, ReasonComplexResult, "Complex Number Result"},
		{"nan base", math.NaN(), 2, ClassUndefined, ReasonNotReal, "Invalid Result"},
		{"one to infinity", 1, inf, ClassUndefined, ReasonNotReal, "Invalid Result"},
		{"reciprocal of zero", 0, -1, ClassOverflow, ReasonDivisionByZero, "Infinite Result"},
		{"positive overflow", 10, 400, ClassOverflow, ReasonOverflow, "Overflow - Positive Infinity"},
		{"negative overflow", -10, 401, ClassOverflow, ReasonOverflow, "Overflow - Negative Infinity"},
		{"underflow", 10, -400, ClassUnderflow, ReasonUnderflow, "Underflow"},
		{"infinite exponent zero", 0.5, inf, ClassFinite, ReasonNone, "Result"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.x, tc.y, pow.Pow(tc.x, tc.y))
			if got.Class != tc.wantClass {
				t.Fatalf("Class = %v, want %v", got.Class, tc.wantClass)
			}
			if got.Reason != tc.wantReason {
				t.Fatalf("Reason = %v, want %v", got.Reason, tc.wantReason)
			}
			if got.Title != tc.wantTitle {
				t.Fatalf("Title = %q, want %q", got.Title, tc.wantTitle)
			}
			if got.Message == "" {
				t.Fatal("Message is empty")
			}
			if got.OK() != (tc.wantClass == ClassFinite) {
				t.Fatalf("OK() = %v for class %v", got.OK(), got.Class)
			}
		})
	}
}

func TestClassifyFiniteMessageIsFormattedResult(t *testing.T) {
	got := Classify(2, 10, 1024)
	if got.Message != "1024.00000000" {
		t.Fatalf("Message = %q", got.Message)
	}
}

func TestClassifyNotRealMentionsOperands(t *testing.T) {
	got := Classify(-1, math.Inf(1), math.NaN())
	if !strings.Contains(got.Message, "-1.00000000^+Inf") {
		t.Fatalf("Message = %q", got.Message)
	}
}

func TestClassNames(t *testing.T) {
	for c, want := range map[Class]string{
		ClassFinite:    "finite",
		ClassUndefined: "undefined",
		ClassOverflow:  "overflow",
		ClassUnderflow: "underflow",
		Class(99):      "unknown",
	} {
		if c.String() != want {
			t.Errorf("%d.String() = %q, want %q", int(c), c.String(), want)
		}
	}

	text, err := ReasonComplexResult.MarshalText()
	if err != nil || string(text) != "complex-result" {
		t.Fatalf("MarshalText = %q, %v", text, err)
	}
}
