package table

import (
	"errors"
	"math"
	"testing"
)

func TestDiameterBucketOf(t *testing.T) {
	for _, test := range []struct {
		d    float64
		want DiameterBucket
	}{
		{1, DiameterTo12},
		{12, DiameterTo12},
		{13, DiameterTo25},
		{25, DiameterTo25},
		{30, DiameterTo50},
		{50, DiameterTo50},
		{100, DiameterTo100},
		{101, DiameterTo200},
		{400, DiameterTo400},
		{401, DiameterAbove400},
		{5000, DiameterAbove400},
	} {
		got, err := DiameterBucketOf(test.d)
		if err != nil {
			t.Fatal(err)
		}
		if got != test.want {
			t.Errorf("dB=%g: got %v, want %v", test.d, got, test.want)
		}
	}
	for _, bad := range []float64{0, -10, math.NaN()} {
		_, err := DiameterBucketOf(bad)
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("dB=%g: expected out of range error, got %v", bad, err)
		}
	}
}

func TestModuleBucketOf(t *testing.T) {
	for _, test := range []struct {
		m    float64
		want ModuleBucket
	}{
		{0.5, ModuleFine},
		{1, ModuleFine},
		{1.5, ModuleFine}, // Boundary resolves to lower bucket.
		{1.75, ModuleMedium},
		{4, ModuleMedium},
		{5, ModuleCoarse},
		{10, ModuleCoarse},
	} {
		got, err := ModuleBucketOf(test.m)
		if err != nil {
			t.Fatalf("m=%g: %v", test.m, err)
		}
		if got != test.want {
			t.Errorf("m=%g: got %v, want %v", test.m, got, test.want)
		}
	}
	for _, bad := range []float64{0.4, 1.6, 4.5, 10.5, -1} {
		_, err := ModuleBucketOf(bad)
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("m=%g: expected out of range error, got %v", bad, err)
		}
	}
}

func TestColumn(t *testing.T) {
	// Column selection of the deviation table, as listed in the standard.
	want := [numDiameterBuckets][numModuleBuckets]int{
		{8, 7, 6},
		{7, 6, 5},
		{6, 5, 4},
		{5, 4, 3},
		{4, 3, 2},
		{3, 2, 1},
		{2, 1, 0},
	}
	for d := DiameterBucket(0); d < numDiameterBuckets; d++ {
		for m := ModuleBucket(0); m < numModuleBuckets; m++ {
			if got := Column(d, m); got != want[d][m] {
				t.Errorf("Column(%v,%v)=%d, want %d", d, m, got, want[d][m])
			}
		}
	}
}

func TestFormClearance(t *testing.T) {
	got, err := FormClearance(DiameterTo50, ModuleFine)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-0.030) > 1e-12 {
		t.Errorf("cF for 25<dB<=50, m=1: got %g, want 0.030", got)
	}
	got, err = FormClearance(DiameterAbove400, ModuleCoarse)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-0.065) > 1e-12 {
		t.Errorf("got %g, want 0.065", got)
	}
	_, err = FormClearance(DiameterTo12, ModuleCoarse)
	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("undefined cell: expected out of range error, got %v", err)
	}
}

func TestDeviation(t *testing.T) {
	for _, test := range []struct {
		letter byte
		d      DiameterBucket
		m      ModuleBucket
		want   float64 // micrometres
	}{
		{'v', DiameterAbove400, ModuleCoarse, 200},
		{'v', DiameterTo12, ModuleFine, 80},
		{'j', DiameterTo50, ModuleFine, 10},
		{'G', DiameterTo50, ModuleFine, 10},
		{'h', DiameterTo50, ModuleFine, 0},
		{'H', DiameterTo200, ModuleMedium, 0},
		{'f', DiameterTo50, ModuleFine, -20},
		{'K', DiameterTo50, ModuleFine, -20},
		{'d', DiameterTo50, ModuleFine, -40},
		{'c', DiameterTo50, ModuleFine, -60},
		{'b', DiameterTo50, ModuleFine, -80},
		{'a', DiameterTo50, ModuleFine, -100},
		{'a', DiameterAbove400, ModuleCoarse, -200},
	} {
		got, err := Deviation(test.letter, test.d, test.m)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(got-test.want*micro) > 1e-12 {
			t.Errorf("%c at column %d: got %g, want %g", test.letter, Column(test.d, test.m), got, test.want*micro)
		}
	}
	_, err := Deviation('z', DiameterTo50, ModuleFine)
	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected out of range error for letter z, got %v", err)
	}
	var lerr *LookupError
	if !errors.As(err, &lerr) || lerr.Valid != DeviationAlphabet() {
		t.Errorf("expected error to list valid alphabet, got %v", err)
	}
}

func TestDeviationAlphabet(t *testing.T) {
	alpha := DeviationAlphabet()
	if len(alpha) != 24 {
		t.Errorf("alphabet %q has %d letters", alpha, len(alpha))
	}
	seen := make(map[rune]bool)
	for _, c := range alpha {
		if seen[c] {
			t.Errorf("duplicate letter %c", c)
		}
		seen[c] = true
	}
}

func TestToleranceBandRow(t *testing.T) {
	// Row selection as tabulated per grade: first entry is column 8.
	firstRow := map[int]int{5: 0, 6: 3, 7: 6, 8: 9, 9: 12, 10: 15, 11: 18, 12: 21}
	for grade, first := range firstRow {
		for col := 8; col >= 0; col-- {
			got, err := ToleranceBandRow(grade, col)
			if err != nil {
				t.Fatal(err)
			}
			want := first + 8 - col
			if got != want {
				t.Errorf("grade %d column %d: got row %d, want %d", grade, col, got, want)
			}
		}
	}
	last, _ := ToleranceBandRow(MaxGrade, 0)
	if last != len(toleranceBand)-1 {
		t.Errorf("last row %d does not reach end of table (%d rows)", last, len(toleranceBand))
	}
	for _, bad := range []int{4, 13, 0} {
		_, err := ToleranceBandRow(bad, 6)
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("grade %d: expected out of range error, got %v", bad, err)
		}
	}
}

func TestToleranceBand(t *testing.T) {
	// 30x1x28, grade 8: column 6, row 11.
	act, eff, err := ToleranceBand(8, 6)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(act-0.028) > 1e-12 || math.Abs(eff-0.017) > 1e-12 {
		t.Errorf("got T_act=%g T_eff=%g, want 0.028 0.017", act, eff)
	}
	for row, band := range toleranceBand {
		if band[1] < band[2] {
			t.Errorf("row %d: actual tolerance smaller than effective tolerance", row)
		}
		if row > 0 && band[0] <= toleranceBand[row-1][0] {
			t.Errorf("row %d: nominal step not increasing", row)
		}
	}
}
