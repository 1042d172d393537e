package ai

import (
	"sort"

	"geier-toolbox/internal/statslog"
)

// Response is how often the opponent answered a point value with a given card.
type Response struct {
	Value  int
	Weight int
}

// responseSet keeps records in first-seen order with an index for O(1) updates.
type responseSet struct {
	records []Response
	index   map[int]int // card value -> position in records
	total   int
}

// Statistics maps each observed point value to the opponent's responses.
// Keys keep first-seen order and nothing is ever pruned until Reset.
type Statistics struct {
	keys []int
	sets map[int]*responseSet
}

func NewStatistics() *Statistics {
	return &Statistics{sets: make(map[int]*responseSet)}
}

// Record notes that the opponent played opponentValue in response to pointValue.
func (s *Statistics) Record(pointValue, opponentValue int) {
	set, ok := s.sets[pointValue]
	if !ok {
		set = &responseSet{index: make(map[int]int)}
		s.sets[pointValue] = set
		s.keys = append(s.keys, pointValue)
	}
	if i, seen := set.index[opponentValue]; seen {
		set.records[i].Weight++
	} else {
		set.index[opponentValue] = len(set.records)
		set.records = append(set.records, Response{Value: opponentValue, Weight: 1})
	}
	set.total++
}

// Query returns the responses seen for pointValue, heaviest first. Equal weights
// keep the order in which the responses were first observed.
func (s *Statistics) Query(pointValue int) ([]Response, bool) {
	set, ok := s.sets[pointValue]
	if !ok {
		return nil, false
	}
	ranked := append([]Response(nil), set.records...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Weight > ranked[j].Weight
	})
	return ranked, true
}

// Total is the summed weight recorded for pointValue.
func (s *Statistics) Total(pointValue int) int {
	if set, ok := s.sets[pointValue]; ok {
		return set.total
	}
	return 0
}

// Keys returns the observed point values in first-seen order.
func (s *Statistics) Keys() []int {
	return append([]int(nil), s.keys...)
}

// Observations flattens the table in key order, then record order.
func (s *Statistics) Observations() []statslog.Observation {
	var out []statslog.Observation
	for _, k := range s.keys {
		for _, r := range s.sets[k].records {
			out = append(out, statslog.Observation{PointValue: k, RespondedValue: r.Value, Weight: r.Weight})
		}
	}
	return out
}

func (s *Statistics) Reset() {
	s.keys = nil
	s.sets = make(map[int]*responseSet)
}
