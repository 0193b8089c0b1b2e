package spline

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// MachiningMethod is the manufacturing process of the spline teeth. It
// selects the dedendum and profile clearance coefficients.
type MachiningMethod int

// Machining methods.
const (
	_ MachiningMethod = iota
	Broaching
	Hobbing
	Shaping
	ColdRolling
)

// Coefficients returns the dedendum coefficient (h_fP/m) and the
// bottom clearance coefficient (c_FP/m) of the method.
func (m MachiningMethod) Coefficients() (dedendum, clearance float64) {
	switch m {
	case Broaching:
		return 0.55, 0.02
	case Hobbing:
		return 0.60, 0.07
	case Shaping:
		return 0.65, 0.12
	case ColdRolling:
		return 0.84, 0.12
	}
	return 0, 0
}

func (m MachiningMethod) String() string {
	switch m {
	case Broaching:
		return "broaching"
	case Hobbing:
		return "hobbing"
	case Shaping:
		return "gear shaping"
	case ColdRolling:
		return "cold rolling"
	}
	return "unknown machining method"
}

func (m MachiningMethod) valid() bool { return m >= Broaching && m <= ColdRolling }

const validMachining = "broaching, hobbing, gear shaping or cold rolling"

// ParseMachiningMethod parses a machining method label such as "broaching"
// or "gear shaping". Case and separators are ignored.
func ParseMachiningMethod(s string) (MachiningMethod, error) {
	switch normalizeLabel(s) {
	case "broaching", "broach":
		return Broaching, nil
	case "hobbing", "hob":
		return Hobbing, nil
	case "gear shaping", "shaping", "shape":
		return Shaping, nil
	case "cold rolling", "rolling", "cold roll":
		return ColdRolling, nil
	}
	return 0, invalid("machining method", strconv.Quote(s), validMachining)
}

// FilletMethod is the process forming the root fillet. It selects the
// fillet radius coefficient.
type FilletMethod int

// Root fillet forming methods.
const (
	_ FilletMethod = iota
	ChipRemoval
	ColdRolled
)

// Coefficient returns the fillet radius coefficient rho_F/m.
func (f FilletMethod) Coefficient() float64 {
	switch f {
	case ChipRemoval:
		return 0.16
	case ColdRolled:
		return 0.54
	}
	return 0
}

func (f FilletMethod) String() string {
	switch f {
	case ChipRemoval:
		return "chip removal"
	case ColdRolled:
		return "cold rolling"
	}
	return "unknown fillet method"
}

func (f FilletMethod) valid() bool { return f == ChipRemoval || f == ColdRolled }

const validFillet = "chip removal or cold rolling"

// ParseFilletMethod parses a root fillet method label.
// "chip-removal machining" is accepted as an alias of chip removal.
func ParseFilletMethod(s string) (FilletMethod, error) {
	switch normalizeLabel(s) {
	case "chip removal", "chip removal machining", "machining":
		return ChipRemoval, nil
	case "cold rolling", "cold rolled", "rolling", "cold roll":
		return ColdRolled, nil
	}
	return 0, invalid("fillet method", strconv.Quote(s), validFillet)
}

func normalizeLabel(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// Fit is the tolerance grade and deviation letter of one spline part,
// e.g. 8j for a shaft or 9H for a hub.
type Fit struct {
	Grade     int
	Deviation byte
}

func (f Fit) String() string { return fmt.Sprintf("%d%c", f.Grade, f.Deviation) }

// ParseFit parses a fit such as "8j".
func ParseFit(s string) (Fit, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Fit{}, invalid("fit", strconv.Quote(s), "grade followed by a deviation letter, e.g. 8f")
	}
	letter := s[len(s)-1]
	grade, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || !unicode.IsLetter(rune(letter)) {
		return Fit{}, invalid("fit", strconv.Quote(s), "grade followed by a deviation letter, e.g. 8f")
	}
	return Fit{Grade: grade, Deviation: letter}, nil
}

// Designation is the complete input of a spline connection.
type Designation struct {
	// Diameter is the reference diameter d_B [mm]. It must be a whole number.
	Diameter float64
	// Module [mm].
	Module float64
	// Teeth is the number of teeth z of the shaft. The hub has -z teeth.
	Teeth int
	// Shaft and Hub are the tooth thickness and space width fits.
	Shaft, Hub Fit
	Machining  MachiningMethod
	Fillet     FilletMethod
}

// String returns the DIN notation of the designation, e.g.
// "DIN 5480 - 30 x 1 x 28 x 9H/8j".
func (d Designation) String() string {
	return fmt.Sprintf("DIN 5480 - %g x %g x %d x %v/%v", d.Diameter, d.Module, d.Teeth, d.Hub, d.Shaft)
}

// ParseDesignation parses the DIN notation "[DIN 5480 -] dB x m x z x hub/shaft",
// e.g. "DIN 5480 - 30 x 1 x 28 x 9H/8j". The returned designation is
// machined by broaching with chip removal fillets.
func ParseDesignation(s string) (Designation, error) {
	rest := strings.TrimSpace(s)
	if strings.HasPrefix(strings.ToUpper(rest), "DIN") {
		rest = strings.TrimSpace(rest[3:])
		rest = strings.TrimSpace(strings.TrimPrefix(rest, "5480"))
		rest = strings.TrimSpace(strings.TrimPrefix(rest, "-"))
	}
	fields := strings.FieldsFunc(rest, func(r rune) bool { return r == 'x' || r == 'X' || r == '×' })
	if len(fields) != 4 {
		return Designation{}, invalid("designation", strconv.Quote(s), "dB x m x z x hub/shaft, e.g. 30 x 1 x 28 x 9H/8j")
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	d := Designation{Machining: Broaching, Fillet: ChipRemoval}
	var err error
	d.Diameter, err = strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Designation{}, invalid("reference diameter", strconv.Quote(fields[0]), "whole number")
	}
	d.Module, err = strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Designation{}, invalid("module", strconv.Quote(fields[1]), "number")
	}
	d.Teeth, err = strconv.Atoi(fields[2])
	if err != nil {
		return Designation{}, invalid("teeth", strconv.Quote(fields[2]), "whole number")
	}
	hub, shaft, ok := strings.Cut(fields[3], "/")
	if !ok {
		return Designation{}, invalid("fit", strconv.Quote(fields[3]), "hub/shaft, e.g. 9H/8j")
	}
	if d.Hub, err = ParseFit(hub); err != nil {
		return Designation{}, err
	}
	if d.Shaft, err = ParseFit(shaft); err != nil {
		return Designation{}, err
	}
	return d, nil
}
