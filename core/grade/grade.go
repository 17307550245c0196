package grade

import (
	"fmt"
	"strconv"
)

// Grade bounds (inclusive)
const (
	Min = 1
	Max = 5
)

// Set is the ordered collection of a student's grades.
// Values outside [Min, Max] are never stored.
type Set struct {
	values []int
}

func New(initial ...int) *Set {
	s := &Set{values: make([]int, 0, len(initial))}
	for _, v := range initial {
		s.Add(v)
	}
	return s
}

func Valid(v int) bool {
	return v >= Min && v <= Max
}

// Add appends v if it is a valid grade, otherwise it does nothing.
func (s *Set) Add(v int) {
	if Valid(v) {
		s.values = append(s.values, v)
	}
}

func (s *Set) Len() int {
	return len(s.values)
}

// Values returns a copy of the grades in insertion order.
func (s *Set) Values() []int {
	vals := make([]int, len(s.values))
	copy(vals, s.values)
	return vals
}

// Average returns the arithmetic mean, 0 for an empty set.
func (s *Set) Average() float64 {
	if len(s.values) == 0 {
		return 0
	}
	var sum int
	for _, v := range s.values {
		sum += v
	}
	return float64(sum) / float64(len(s.values))
}

func (s *Set) Min() (int, bool) {
	if len(s.values) == 0 {
		return 0, false
	}
	min := s.values[0]
	for _, v := range s.values[1:] {
		if v < min {
			min = v
		}
	}
	return min, true
}

func (s *Set) Max() (int, bool) {
	if len(s.values) == 0 {
		return 0, false
	}
	max := s.values[0]
	for _, v := range s.values[1:] {
		if v > max {
			max = v
		}
	}
	return max, true
}

// Stats is a snapshot of the derived values of a Set.
// Min and Max are nil when the set is empty.
type Stats struct {
	Average float64
	Min     *int
	Max     *int
}

func (s *Set) Stats() Stats {
	st := Stats{Average: s.Average()}
	if min, ok := s.Min(); ok {
		st.Min = &min
	}
	if max, ok := s.Max(); ok {
		st.Max = &max
	}
	return st
}

func (st Stats) String() string {
	return fmt.Sprintf("Avg:%s Min:%s Max:%s", FormatFloat(st.Average), optional(st.Min), optional(st.Max))
}

// FormatFloat renders f in its shortest form ("4", "4.5", "4.333333333333333").
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func optional(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}
