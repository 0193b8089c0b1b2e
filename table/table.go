// Package table holds the standardized coefficient tables of flank centered
// involute splines (DIN 5480-1 tables 4 and 7) and the rules used to pick
// values from them. Table values are stored in micrometres as published and
// returned in millimetres.
package table

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by every lookup failure.
var ErrOutOfRange = errors.New("outside standardized table range")

// LookupError describes a failed table lookup.
type LookupError struct {
	Table string // table or classification that failed
	Field string // input field name
	Value string // offending value
	Valid string // valid range or alphabet
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s table: %s %s out of range, valid: %s", e.Table, e.Field, e.Value, e.Valid)
}

func (e *LookupError) Unwrap() error { return ErrOutOfRange }

const (
	micro = 0.001 // micrometre to millimetre

	deviationRows    = 18
	deviationColumns = 9

	// MinGrade and MaxGrade bound the tolerance grade numbers.
	MinGrade = 5
	MaxGrade = 12

	// gradeStep is the tolerance band row advance per grade number.
	gradeStep = 3
)

// formClearance is table 4, minimum form clearance cF in micrometres.
// Zero cells are not defined by the standard.
var formClearance = [numDiameterBuckets][numModuleBuckets]float64{
	DiameterTo12:     {25, 0, 0},
	DiameterTo25:     {28, 30, 0},
	DiameterTo50:     {30, 35, 40},
	DiameterTo100:    {35, 40, 45},
	DiameterTo200:    {40, 45, 50},
	DiameterTo400:    {0, 50, 55},
	DiameterAbove400: {0, 0, 65},
}

// deviation is the first part of table 7, tooth thickness deviation A_s and
// space width deviation A_e in micrometres. Rows follow deviationLetters.
var deviation = func() (tab [deviationRows][deviationColumns]float64) {
	positive := [...][deviationColumns]float64{
		{200, 180, 160, 140, 125, 110, 100, 90, 80}, // v
		{180, 162, 144, 126, 112, 99, 90, 81, 72},   // u
		{160, 144, 128, 112, 100, 88, 80, 72, 64},   // t
		{140, 126, 112, 98, 88, 77, 70, 63, 56},     // s
		{120, 108, 96, 84, 75, 66, 60, 54, 48},      // r
		{100, 90, 80, 70, 62, 55, 50, 45, 40},       // p
		{80, 72, 64, 56, 50, 44, 40, 36, 32},        // n
		{60, 54, 48, 42, 37, 33, 30, 27, 24},        // m
		{40, 36, 32, 28, 25, 22, 20, 18, 16},        // k F
		{20, 18, 16, 14, 12, 11, 10, 9, 8},          // j G
	}
	copy(tab[:], positive[:])
	// Row 10 (h H) is the zero line. Rows below mirror rows above it.
	for row, mirror := range map[int]int{11: 9, 12: 8, 13: 7, 14: 6, 15: 4, 16: 2, 17: 0} {
		for col := range tab[row] {
			tab[row][col] = -tab[mirror][col]
		}
	}
	return tab
}()

// toleranceBand is the second part of table 7 in micrometres. Columns are
// the nominal step, the actual tolerance T_act and the effective tolerance T_eff.
var toleranceBand = [...][3]float64{
	{12, 8, 4}, {14, 9, 5}, {16, 10, 6}, {18, 11, 7}, {20, 12, 8},
	{22, 14, 8}, {25, 16, 9}, {28, 18, 10}, {32, 20, 12}, {36, 22, 14},
	{40, 25, 15}, {45, 28, 17}, {50, 32, 18}, {56, 36, 20}, {63, 40, 23},
	{71, 45, 26}, {80, 50, 30}, {90, 56, 34}, {100, 63, 37}, {112, 71, 41},
	{125, 80, 45}, {140, 90, 50}, {160, 100, 60}, {180, 112, 68}, {200, 125, 75},
	{224, 140, 84}, {250, 160, 90}, {280, 175, 105}, {320, 200, 120}, {360, 225, 135},
}

// FormClearance returns the minimum form clearance cF [mm].
func FormClearance(d DiameterBucket, m ModuleBucket) (float64, error) {
	if d < 0 || d >= numDiameterBuckets || m < 0 || m >= numModuleBuckets {
		return 0, &LookupError{Table: "form clearance", Field: "bucket", Value: fmt.Sprintf("[%d,%d]", d, m), Valid: "defined diameter and module bands"}
	}
	v := formClearance[d][m]
	if v == 0 {
		return 0, &LookupError{Table: "form clearance", Field: "diameter/module combination", Value: fmt.Sprintf("%v with module %v", d, m), Valid: definedFormClearance(m)}
	}
	return v * micro, nil
}

func definedFormClearance(m ModuleBucket) string {
	var lo, hi DiameterBucket = -1, -1
	for d := DiameterBucket(0); d < numDiameterBuckets; d++ {
		if formClearance[d][m] == 0 {
			continue
		}
		if lo < 0 {
			lo = d
		}
		hi = d
	}
	return fmt.Sprintf("diameters %v through %v for module %v", lo, hi, m)
}

// Deviation returns the signed deviation A_s or A_e [mm] for a deviation
// letter and the diameter/module bands.
func Deviation(letter byte, d DiameterBucket, m ModuleBucket) (float64, error) {
	row, err := DeviationRow(letter)
	if err != nil {
		return 0, err
	}
	col := Column(d, m)
	if col < 0 || col >= deviationColumns {
		return 0, &LookupError{Table: "deviation", Field: "column", Value: fmt.Sprint(col), Valid: "0-8"}
	}
	return deviation[row][col] * micro, nil
}

// ToleranceBandRow returns the tolerance band row selected by a tolerance
// grade and a deviation table column. Each grade starts gradeStep rows
// below the previous grade; the column selects an offset of 0 to 8 rows.
func ToleranceBandRow(grade, column int) (int, error) {
	if grade < MinGrade || grade > MaxGrade {
		return 0, &LookupError{Table: "tolerance band", Field: "tolerance grade", Value: fmt.Sprint(grade), Valid: fmt.Sprintf("whole number %d-%d", MinGrade, MaxGrade)}
	}
	if column < 0 || column >= deviationColumns {
		return 0, &LookupError{Table: "tolerance band", Field: "column", Value: fmt.Sprint(column), Valid: "0-8"}
	}
	return gradeStep*(grade-MinGrade) + (deviationColumns - 1 - column), nil
}

// ToleranceBand returns the actual and effective tolerances [mm].
func ToleranceBand(grade, column int) (actual, effective float64, err error) {
	row, err := ToleranceBandRow(grade, column)
	if err != nil {
		return 0, 0, err
	}
	band := toleranceBand[row]
	return band[1] * micro, band[2] * micro, nil
}
