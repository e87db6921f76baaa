package enum

import (
	"reflect"
	"testing"

	"github.com/zerkel-lang/zerkel/term"
)

func TestStarsAndBarsTwoParts(t *testing.T) {
	got := starsAndBars(4, 2, 9)
	want := [][]int{{9, 13}, {10, 12}, {11, 11}, {12, 10}, {13, 9}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("starsAndBars(4, 2, 9) = %v, want %v", got, want)
	}
}

func TestStarsAndBarsThreeParts(t *testing.T) {
	got := starsAndBars(3, 3, 2)
	want := [][]int{
		{2, 2, 5}, {2, 3, 4}, {2, 4, 3}, {2, 5, 2},
		{3, 2, 4}, {3, 3, 3}, {3, 4, 2},
		{4, 2, 3}, {4, 3, 2},
		{5, 2, 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("starsAndBars(3, 3, 2) = %v, want %v", got, want)
	}
}

func TestStarsAndBarsSinglePartIgnoresSign(t *testing.T) {
	got := starsAndBars(-5, 1, 2)
	want := [][]int{{-3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("starsAndBars(-5, 1, 2) = %v, want %v", got, want)
	}
}

func TestStarsAndBarsNegativeBudgetWithManyPartsIsEmpty(t *testing.T) {
	got := starsAndBars(-1, 2, 2)
	if len(got) != 0 {
		t.Errorf("starsAndBars(-1, 2, 2) = %v, want empty", got)
	}
}

func TestCartesianProductEmptyFactorIsEmpty(t *testing.T) {
	got := cartesianProduct([][]*term.Node{{term.Identity()}, {}})
	if len(got) != 0 {
		t.Errorf("cartesianProduct with an empty factor = %v, want empty", got)
	}
}

func TestCartesianProductCombines(t *testing.T) {
	a, b := term.EmptySet(), term.Identity()
	got := cartesianProduct([][]*term.Node{{a, b}, {a}})
	want := [][]*term.Node{{a, a}, {b, a}}
	if len(got) != len(want) {
		t.Fatalf("cartesianProduct = %v, want %v", got, want)
	}
	for i := range want {
		if got[i][0] != want[i][0] || got[i][1] != want[i][1] {
			t.Errorf("cartesianProduct[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
