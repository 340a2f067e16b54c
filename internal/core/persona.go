package core

import (
	"strings"
	"time"
)

// Identity is owned by the remote service and never modified here.
type Identity struct {
	Name   string `json:"name"`
	Gender string `json:"gender"`
	Origin string `json:"origin"`
}

func DefaultIdentity() Identity {
	return Identity{
		Name:   "Auralis",
		Gender: "feminino",
		Origin: "interação com humanos",
	}
}

type Value struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Strength    float64 `json:"strength"`
}

type Memory struct {
	ID         int64     `json:"id"`
	Type       string    `json:"type"`
	Content    string    `json:"content"`
	Reflection string    `json:"reflection"`
	Emotion    string    `json:"emotion"`
	Importance float64   `json:"importance"`
	Timestamp  time.Time `json:"timestamp"`
}

const MemoryTypeEpisodic = "episodic"

// MemoryPayload is the body written back to the remote service after a turn.
type MemoryPayload struct {
	Type       string `json:"type"`
	Content    string `json:"content"`
	Reflection string `json:"reflection"`
	Emotion    string `json:"emotion"`
	Importance int    `json:"importance"`
}

type SegmentType string

const (
	SegmentShortTerm  SegmentType = "short_term"
	SegmentMediumTerm SegmentType = "medium_term"
	SegmentLongTerm   SegmentType = "long_term"
)

// NormalizeSegmentType lowercases and maps '-' to '_'. ok is false for
// types outside the three known buckets.
func NormalizeSegmentType(raw string) (SegmentType, bool) {
	st := SegmentType(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "-", "_"))
	switch st {
	case SegmentShortTerm, SegmentMediumTerm, SegmentLongTerm:
		return st, true
	}
	return st, false
}

type MemorySegment struct {
	ID                int64     `json:"id"`
	SegmentType       string    `json:"segment_type"`
	Content           string    `json:"content"`
	Importance        float64   `json:"importance"`
	AssociatedEmotion string    `json:"associated_emotion"`
	Timestamp         time.Time `json:"timestamp"`
}

type DailyIdea struct {
	ID   int64     `json:"id"`
	Date time.Time `json:"date"`
	Idea string    `json:"idea"`
}

type SelfConcept struct {
	ID          int64   `json:"id"`
	Description string  `json:"description"`
	Strength    float64 `json:"strength"`
}

// Context is the per-turn bundle that grounds generation.
type Context struct {
	Identity Identity `json:"identity"`
	Values   []Value  `json:"values"`
	Memories []Memory `json:"memories"`
}
