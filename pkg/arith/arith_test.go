package arith_test

import (
	"errors"
	"math"
	"testing"

	"github.com/elves/formula/pkg/arith"
	"github.com/elves/formula/pkg/formula"
)

func lookupIn(m map[string]float64) arith.Lookup {
	return func(name string) (float64, error) {
		if v, ok := m[name]; ok {
			return v, nil
		}
		return 0, errors.New("not found")
	}
}

var noVariables = lookupIn(nil)

func TestEval(t *testing.T) {
	variables := map[string]float64{"X1": 2, "Y2": 10, "R2": 7.5}
	tests := []struct {
		code string
		want float64
	}{
		{"1", 1},
		{"1 + 2 * 3", 7},
		{"(1 + 2) * 3", 9},
		{"10 - 4 - 3", 3},
		{"64 / 4 / 2", 8},
		{"2e5 + 2e5", 400000},
		{"0. + 3.5E-1", 0.35},
		{"x1 * Y2", 20},
		{"(r2 - 5.5)", 2},
		{"((x1))", 2},
		{"y2 / x1 - 1", 4},
		{"1 - (2 - (3 - 4))", -2},
	}
	for _, test := range tests {
		got, err := arith.Eval(formula.MustParse(test.code), lookupIn(variables))
		if err != nil {
			t.Errorf("Eval(%q) -> error %v", test.code, err)
			continue
		}
		if math.Abs(got-test.want) > 1e-9 {
			t.Errorf("Eval(%q) -> %v, want %v", test.code, got, test.want)
		}
	}
}

func TestEval_DivisionByZero(t *testing.T) {
	for _, code := range []string{"1 / 0", "1 / (2 - 2)", "5 + 3 / 0.0 * 2"} {
		_, err := arith.Eval(formula.MustParse(code), noVariables)
		if !errors.Is(err, arith.ErrDivisionByZero) {
			t.Errorf("Eval(%q) -> error %v, want %v", code, err, arith.ErrDivisionByZero)
		}
	}
}

func TestEval_LookupError(t *testing.T) {
	errBoom := errors.New("boom")
	var looked []string
	lookup := func(name string) (float64, error) {
		looked = append(looked, name)
		return 0, errBoom
	}
	_, err := arith.Eval(formula.MustParse("1 + abc1"), lookup)
	var lerr *arith.LookupError
	if !errors.As(err, &lerr) {
		t.Fatalf("got error %v, want *arith.LookupError", err)
	}
	if lerr.Name != "ABC1" {
		t.Errorf("got name %q, want %q", lerr.Name, "ABC1")
	}
	if !errors.Is(err, errBoom) {
		t.Errorf("error %v does not wrap %v", err, errBoom)
	}
	if len(looked) != 1 || looked[0] != "ABC1" {
		t.Errorf("lookup called with %v, want [ABC1]", looked)
	}
}

func TestEval_Overflow(t *testing.T) {
	got, err := arith.Eval(formula.MustParse("1e400 - 1"), noVariables)
	if err != nil {
		t.Fatalf("got error %v", err)
	}
	if !math.IsInf(got, 1) {
		t.Errorf("got %v, want +Inf", got)
	}
}
