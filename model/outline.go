package model

import (
	"encoding/json"
	"fmt"
)

// Level is the depth of a heading in the outline (H1 is the shallowest)
type Level int

const (
	LevelNone Level = iota
	H1
	H2
	H3
	H4
)

// String returns the outline label of the level ("H1".."H4")
func (l Level) String() string {
	switch l {
	case H1:
		return "H1"
	case H2:
		return "H2"
	case H3:
		return "H3"
	case H4:
		return "H4"
	default:
		return "none"
	}
}

// IsValid reports whether the level is one of H1-H4
func (l Level) IsValid() bool {
	return l >= H1 && l <= H4
}

// ParseLevel converts an outline label to a Level
func ParseLevel(s string) (Level, error) {
	switch s {
	case "H1", "h1":
		return H1, nil
	case "H2", "h2":
		return H2, nil
	case "H3", "h3":
		return H3, nil
	case "H4", "h4":
		return H4, nil
	}
	return LevelNone, fmt.Errorf("model: invalid heading level %q", s)
}

// MarshalJSON encodes the level as its label
func (l Level) MarshalJSON() ([]byte, error) {
	if !l.IsValid() {
		return nil, fmt.Errorf("model: cannot encode heading level %d", int(l))
	}
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a level label
func (l *Level) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseLevel(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Heading is a single outline entry
type Heading struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// Outline is the engine's output: a title and a depth-consistent heading list
type Outline struct {
	Title    string    `json:"title"`
	Headings []Heading `json:"outline"`
}

// MarshalJSON always emits the outline array, even when it is empty
func (o Outline) MarshalJSON() ([]byte, error) {
	type plain Outline
	p := plain(o)
	if p.Headings == nil {
		p.Headings = []Heading{}
	}
	return json.Marshal(p)
}
