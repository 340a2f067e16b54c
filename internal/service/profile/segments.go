package profile

import (
	"cmp"
	"context"
	"slices"

	"github.com/sandevgo/auralis/internal/core"
)

// Segments groups memory segments by horizon, newest first in each bucket.
type Segments struct {
	ShortTerm  []core.MemorySegment `json:"short_term"`
	MediumTerm []core.MemorySegment `json:"medium_term"`
	LongTerm   []core.MemorySegment `json:"long_term"`
}

func (s *Service) Segments(ctx context.Context) (Segments, error) {
	raw, err := s.source.GetMemorySegments(ctx)
	if err != nil {
		return Segments{}, err
	}
	return SegmentMemories(raw), nil
}

// SegmentMemories buckets by normalized segment type and drops unknown
// types.
func SegmentMemories(raw []core.MemorySegment) Segments {
	out := Segments{
		ShortTerm:  []core.MemorySegment{},
		MediumTerm: []core.MemorySegment{},
		LongTerm:   []core.MemorySegment{},
	}

	for _, m := range raw {
		st, ok := core.NormalizeSegmentType(m.SegmentType)
		if !ok {
			continue
		}
		m.SegmentType = string(st)

		switch st {
		case core.SegmentShortTerm:
			out.ShortTerm = append(out.ShortTerm, m)
		case core.SegmentMediumTerm:
			out.MediumTerm = append(out.MediumTerm, m)
		case core.SegmentLongTerm:
			out.LongTerm = append(out.LongTerm, m)
		}
	}

	for _, bucket := range [][]core.MemorySegment{out.ShortTerm, out.MediumTerm, out.LongTerm} {
		slices.SortStableFunc(bucket, newestFirst)
	}
	return out
}

// newestFirst compares by timestamp when both have one, by id otherwise.
func newestFirst(a, b core.MemorySegment) int {
	if !a.Timestamp.IsZero() && !b.Timestamp.IsZero() {
		return b.Timestamp.Compare(a.Timestamp)
	}
	return cmp.Compare(b.ID, a.ID)
}
