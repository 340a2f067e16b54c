package auralis

import (
	"strings"
	"time"

	"github.com/sandevgo/auralis/internal/core"
)

// identityWire covers both identity shapes the service has served: the
// current f_-prefixed one and the older unprefixed one.
type identityWire struct {
	FName   *string `json:"f_name"`
	FGender *string `json:"f_gender"`
	FOrigin *string `json:"f_origin"`

	Name   *string `json:"name"`
	Gender *string `json:"gender"`
	Origin *string `json:"origin"`
}

func (w identityWire) hasCurrent() bool {
	return w.FName != nil || w.FGender != nil || w.FOrigin != nil
}

func (w identityWire) hasLegacy() bool {
	return w.Name != nil || w.Gender != nil || w.Origin != nil
}

func (w identityWire) toCore() core.Identity {
	if w.hasLegacy() && !w.hasCurrent() {
		return core.Identity{Name: deref(w.Name), Gender: deref(w.Gender), Origin: deref(w.Origin)}
	}
	return core.Identity{Name: deref(w.FName), Gender: deref(w.FGender), Origin: deref(w.FOrigin)}
}

type valueWire struct {
	ID          int64   `json:"id"`
	Name        string  `json:"f_name"`
	Description string  `json:"f_description"`
	Strength    float64 `json:"f_strength"`
}

func (w valueWire) toCore() core.Value {
	return core.Value{ID: w.ID, Name: w.Name, Description: w.Description, Strength: w.Strength}
}

type memoryWire struct {
	ID         int64    `json:"id"`
	Timestamp  string   `json:"f_timestamp"`
	Type       string   `json:"f_type"`
	Content    string   `json:"f_content"`
	Reflection *string  `json:"f_reflection"`
	Emotion    *string  `json:"f_emotion"`
	Importance *float64 `json:"f_importance"`
}

func (w memoryWire) toCore() core.Memory {
	m := core.Memory{
		ID:         w.ID,
		Type:       w.Type,
		Content:    w.Content,
		Reflection: deref(w.Reflection),
		Emotion:    deref(w.Emotion),
		Timestamp:  parseTime(w.Timestamp),
	}
	if w.Importance != nil {
		m.Importance = *w.Importance
	}
	return m
}

type segmentWire struct {
	ID                int64   `json:"id"`
	SegmentType       string  `json:"f_segment_type"`
	Content           string  `json:"f_content"`
	Importance        float64 `json:"f_importance"`
	AssociatedEmotion string  `json:"f_associated_emotion"`
	Timestamp         string  `json:"f_timestamp"`
}

func (w segmentWire) toCore() core.MemorySegment {
	return core.MemorySegment{
		ID:                w.ID,
		SegmentType:       w.SegmentType,
		Content:           w.Content,
		Importance:        w.Importance,
		AssociatedEmotion: w.AssociatedEmotion,
		Timestamp:         parseTime(w.Timestamp),
	}
}

type dailyIdeaWire struct {
	ID   int64  `json:"id"`
	Date string `json:"f_date"`
	Idea string `json:"f_idea"`
}

func (w dailyIdeaWire) toCore() core.DailyIdea {
	return core.DailyIdea{ID: w.ID, Date: parseTime(w.Date), Idea: w.Idea}
}

type selfConceptWire struct {
	ID          int64   `json:"id"`
	Description string  `json:"f_description"`
	Strength    float64 `json:"f_strength"`
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999",
	"2006-01-02",
}

// parseTime accepts the layouts the service is known to emit. Anything else
// becomes the zero time.
func parseTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func convert[W any, T any](in []W, fn func(W) T) []T {
	out := make([]T, 0, len(in))
	for _, w := range in {
		out = append(out, fn(w))
	}
	return out
}
