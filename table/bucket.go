package table

import (
	"fmt"
	"math"
)

// DiameterBucket is the reference diameter band used as table row/column selector.
type DiameterBucket int

// Reference diameter bands. Upper bounds are inclusive.
const (
	DiameterTo12 DiameterBucket = iota
	DiameterTo25
	DiameterTo50
	DiameterTo100
	DiameterTo200
	DiameterTo400
	DiameterAbove400
	numDiameterBuckets
)

// diameterLimits holds the inclusive upper limit of each band in millimetres.
var diameterLimits = [numDiameterBuckets]float64{12, 25, 50, 100, 200, 400, math.Inf(1)}

func (b DiameterBucket) String() string {
	switch b {
	case DiameterTo12:
		return "0<dB<=12"
	case DiameterTo25:
		return "12<dB<=25"
	case DiameterTo50:
		return "25<dB<=50"
	case DiameterTo100:
		return "50<dB<=100"
	case DiameterTo200:
		return "100<dB<=200"
	case DiameterTo400:
		return "200<dB<=400"
	case DiameterAbove400:
		return "dB>400"
	}
	return "unknown"
}

// DiameterBucketOf classifies a reference diameter in millimetres.
func DiameterBucketOf(d float64) (DiameterBucket, error) {
	if !(d > 0) || math.IsInf(d, 0) {
		return 0, &LookupError{Table: "diameter bands", Field: "reference diameter", Value: fmtFloat(d), Valid: "dB > 0"}
	}
	for i, lim := range diameterLimits {
		if d <= lim {
			return DiameterBucket(i), nil
		}
	}
	panic("unreachable")
}

// ModuleBucket is the module range used as table column selector.
type ModuleBucket int

// Standardized module ranges. Both ends of every range are inclusive.
const (
	ModuleFine ModuleBucket = iota
	ModuleMedium
	ModuleCoarse
	numModuleBuckets
)

var moduleRanges = [numModuleBuckets][2]float64{
	ModuleFine:   {0.5, 1.5},
	ModuleMedium: {1.75, 4},
	ModuleCoarse: {5, 10},
}

func (b ModuleBucket) String() string {
	if b < 0 || b >= numModuleBuckets {
		return "unknown"
	}
	r := moduleRanges[b]
	return fmt.Sprintf("%g-%g", r[0], r[1])
}

// ModuleBucketOf classifies a module in millimetres. A module lying on
// a range boundary belongs to the range it closes, i.e. 1.5 is fine.
func ModuleBucketOf(m float64) (ModuleBucket, error) {
	for i, r := range moduleRanges {
		if m >= r[0] && m <= r[1] {
			return ModuleBucket(i), nil
		}
	}
	return 0, &LookupError{Table: "module ranges", Field: "module", Value: fmtFloat(m), Valid: ModuleRanges()}
}

// ModuleRanges describes the standardized module ranges.
func ModuleRanges() string {
	return fmt.Sprintf("%v, %v or %v", ModuleFine, ModuleMedium, ModuleCoarse)
}

// Column returns the combined diameter/module column of the deviation table.
// Larger diameters and modules select columns with larger deviations.
// The result is in the range [0, 8].
func Column(d DiameterBucket, m ModuleBucket) int {
	return deviationColumns - 1 - int(d) - int(m)
}

// deviationLetters lists the accepted letters per deviation table row.
// Lower case letters are shaft (tooth thickness) deviations, upper
// case letters are hub (space width) deviations.
var deviationLetters = [deviationRows]string{
	"v", "u", "t", "s", "r", "p", "n", "m",
	"kF", "jG", "hH", "gJ", "fK", "eM",
	"d", "c", "b", "a",
}

// DeviationRow returns the deviation table row of a deviation letter.
func DeviationRow(letter byte) (int, error) {
	for row, letters := range deviationLetters {
		for i := 0; i < len(letters); i++ {
			if letters[i] == letter {
				return row, nil
			}
		}
	}
	return 0, &LookupError{Table: "deviation", Field: "deviation letter", Value: fmt.Sprintf("%q", letter), Valid: DeviationAlphabet()}
}

// DeviationAlphabet returns all accepted deviation letters.
func DeviationAlphabet() string {
	var s []byte
	for _, letters := range deviationLetters {
		s = append(s, letters...)
	}
	return string(s)
}

func fmtFloat(f float64) string { return fmt.Sprintf("%g", f) }
