package footprint

import (
	"encoding/json"
	"fmt"
	"math/bits"
)

// Practice identifies one of the six sustainable habits a household can
// report. Each selected practice contributes a small multiplicative discount
// to the total.
//
//nolint:recvcheck // UnmarshalJSON requires pointer receiver; String/MarshalJSON use value receivers.
type Practice int

const (
	// PracticeBagReuse is bringing reusable shopping bags.
	PracticeBagReuse Practice = iota
	// PracticeReusableCup is carrying a reusable cup or bottle.
	PracticeReusableCup
	// PracticeFewerDisposables is avoiding single-use products.
	PracticeFewerDisposables
	// PracticeRecycling is separating recyclable waste.
	PracticeRecycling
	// PracticeUnplugging is unplugging idle appliances.
	PracticeUnplugging
	// PracticeThermostat is moderating heating and cooling setpoints.
	PracticeThermostat

	practiceCount = int(PracticeThermostat) + 1
)

// String returns the canonical label for a Practice.
func (p Practice) String() string {
	switch p {
	case PracticeBagReuse:
		return "bag-reuse"
	case PracticeReusableCup:
		return "reusable-cup"
	case PracticeFewerDisposables:
		return "fewer-disposables"
	case PracticeRecycling:
		return "recycling"
	case PracticeUnplugging:
		return "unplugging"
	case PracticeThermostat:
		return "thermostat"
	default:
		return fmt.Sprintf("unknown(%d)", int(p))
	}
}

// Label returns the display phrase for a Practice.
func (p Practice) Label() string {
	switch p {
	case PracticeBagReuse:
		return "Reusable shopping bags"
	case PracticeReusableCup:
		return "Reusable cup or bottle"
	case PracticeFewerDisposables:
		return "Fewer disposables"
	case PracticeRecycling:
		return "Recycling"
	case PracticeUnplugging:
		return "Unplugging idle devices"
	case PracticeThermostat:
		return "Thermostat moderation"
	default:
		return fmt.Sprintf("Unknown (%d)", int(p))
	}
}

// MarshalJSON implements json.Marshaler to output Practice as string.
func (p Practice) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON implements json.Unmarshaler to parse Practice from string.
func (p *Practice) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("parsing practice: %w", err)
	}
	parsed, err := ParsePractice(str)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePractice converts a label to its Practice value.
func ParsePractice(s string) (Practice, error) {
	switch s {
	case "bag-reuse":
		return PracticeBagReuse, nil
	case "reusable-cup":
		return PracticeReusableCup, nil
	case "fewer-disposables":
		return PracticeFewerDisposables, nil
	case "recycling":
		return PracticeRecycling, nil
	case "unplugging":
		return PracticeUnplugging, nil
	case "thermostat":
		return PracticeThermostat, nil
	default:
		return 0, fmt.Errorf("%w: unknown practice %q", ErrHouseholdValidation, s)
	}
}

// isValidPractice returns true if the practice is within the valid range.
func isValidPractice(p Practice) bool {
	return p >= PracticeBagReuse && p <= PracticeThermostat
}

// Practices returns all practices in declaration order.
func Practices() []Practice {
	ps := make([]Practice, 0, practiceCount)
	for p := PracticeBagReuse; p <= PracticeThermostat; p++ {
		ps = append(ps, p)
	}
	return ps
}

// PracticeSet is an order-free, duplicate-free set of practices packed into a
// bitmask. The zero value is the empty set. Being comparable, a PracticeSet
// (and therefore a whole Household) can key a memoization cache directly.
//
//nolint:recvcheck // UnmarshalJSON requires pointer receiver; the set operations use value receivers.
type PracticeSet uint8

// practiceSetAll has every defined practice bit set.
const practiceSetAll = PracticeSet(1<<practiceCount - 1)

// NewPracticeSet builds a set from the given practices. Duplicates collapse.
func NewPracticeSet(ps ...Practice) PracticeSet {
	var s PracticeSet
	for _, p := range ps {
		s = s.With(p)
	}
	return s
}

// AllPractices returns the set with every practice selected.
func AllPractices() PracticeSet {
	return practiceSetAll
}

// Has reports whether p is in the set.
func (s PracticeSet) Has(p Practice) bool {
	if !isValidPractice(p) {
		return false
	}
	return s&(1<<uint(p)) != 0
}

// With returns the set with p added.
func (s PracticeSet) With(p Practice) PracticeSet {
	if !isValidPractice(p) {
		return s
	}
	return s | 1<<uint(p)
}

// Without returns the set with p removed.
func (s PracticeSet) Without(p Practice) PracticeSet {
	if !isValidPractice(p) {
		return s
	}
	return s &^ (1 << uint(p))
}

// Toggle returns the set with p flipped.
func (s PracticeSet) Toggle(p Practice) PracticeSet {
	if s.Has(p) {
		return s.Without(p)
	}
	return s.With(p)
}

// Len returns the number of selected practices.
func (s PracticeSet) Len() int {
	return bits.OnesCount8(uint8(s & practiceSetAll))
}

// Practices returns the selected practices in declaration order.
func (s PracticeSet) Practices() []Practice {
	out := make([]Practice, 0, s.Len())
	for p := PracticeBagReuse; p <= PracticeThermostat; p++ {
		if s.Has(p) {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks that no undefined bits are set.
func (s PracticeSet) Validate() error {
	if s&^practiceSetAll != 0 {
		return fmt.Errorf("%w: practice set has undefined bits: %#08b", ErrHouseholdValidation, uint8(s))
	}
	return nil
}

// String returns the selected practice labels joined by "+", or "none".
func (s PracticeSet) String() string {
	if s.Len() == 0 {
		return "none"
	}
	out := ""
	for _, p := range s.Practices() {
		if out != "" {
			out += "+"
		}
		out += p.String()
	}
	return out
}

// MarshalJSON implements json.Marshaler to output the set as a string array.
func (s PracticeSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Practices())
}

// UnmarshalJSON implements json.Unmarshaler to parse the set from a string array.
func (s *PracticeSet) UnmarshalJSON(data []byte) error {
	var ps []Practice
	if err := json.Unmarshal(data, &ps); err != nil {
		return fmt.Errorf("parsing practice set: %w", err)
	}
	*s = NewPracticeSet(ps...)
	return nil
}
