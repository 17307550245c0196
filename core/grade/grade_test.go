package grade

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_Add(t *testing.T) {
	tests := []struct {
		name    string
		initial []int
		add     []int
		want    []int
	}{
		{name: "valid", add: []int{1, 5, 3}, want: []int{1, 5, 3}},
		{name: "below range", initial: []int{4}, add: []int{0, -3}, want: []int{4}},
		{name: "above range", initial: []int{4}, add: []int{6, 100}, want: []int{4}},
		{name: "mixed", add: []int{0, 2, 6, 5}, want: []int{2, 5}},
		{name: "invalid initial grades dropped", initial: []int{7, 3, 0}, want: []int{3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.initial...)
			for _, v := range tt.add {
				s.Add(v)
			}
			assert.Equal(t, tt.want, s.Values())
			assert.Equal(t, len(tt.want), s.Len())
		})
	}
}

func TestSet_RejectionIsIdempotent(t *testing.T) {
	s := New(2, 3)
	before := s.Values()
	for i := 0; i < 3; i++ {
		s.Add(9)
		s.Add(0)
	}
	assert.Equal(t, before, s.Values())
}

func TestSet_Values_ReturnsCopy(t *testing.T) {
	s := New(2, 3)
	vals := s.Values()
	vals[0] = 5
	assert.Equal(t, []int{2, 3}, s.Values())
}

func TestSet_Stats(t *testing.T) {
	tests := []struct {
		name    string
		grades  []int
		wantAvg float64
		wantMin int
		wantMax int
		wantOk  bool
	}{
		{name: "empty", wantAvg: 0},
		{name: "5 4 3", grades: []int{5, 4, 3}, wantAvg: 4, wantMin: 3, wantMax: 5, wantOk: true},
		{name: "single", grades: []int{2}, wantAvg: 2, wantMin: 2, wantMax: 2, wantOk: true},
		{name: "5 4 4", grades: []int{5, 4, 4}, wantAvg: 13.0 / 3, wantMin: 4, wantMax: 5, wantOk: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.grades...)
			assert.InDelta(t, tt.wantAvg, s.Average(), 1e-9)

			min, ok := s.Min()
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.wantMin, min)

			max, ok := s.Max()
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.wantMax, max)
		})
	}
}

func TestSet_EmptyAverageIsExactlyZero(t *testing.T) {
	assert.Equal(t, 0.0, New().Average())
}

func TestSet_MinMaxBoundEveryGrade(t *testing.T) {
	sequences := [][]int{
		{1},
		{3, 3, 3},
		{5, 1, 4, 2},
		{2, 4, 4, 5, 1, 3, 3},
	}
	for _, seq := range sequences {
		s := New(seq...)
		min, _ := s.Min()
		max, _ := s.Max()
		var sum int
		for _, v := range seq {
			assert.LessOrEqual(t, min, v)
			assert.GreaterOrEqual(t, max, v)
			sum += v
		}
		assert.InDelta(t, float64(sum)/float64(len(seq)), s.Average(), 1e-9)
	}
}

func TestStats_String(t *testing.T) {
	tests := []struct {
		name   string
		grades []int
		want   string
	}{
		{name: "empty", want: "Avg:0 Min:- Max:-"},
		{name: "whole average", grades: []int{5, 4, 3}, want: "Avg:4 Min:3 Max:5"},
		{name: "fractional average", grades: []int{4, 5}, want: "Avg:4.5 Min:4 Max:5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.grades...).Stats().String())
		})
	}
}
