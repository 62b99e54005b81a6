package model

import (
	"fmt"
	"strings"
)

// Difficulty is the closed set of recipe difficulty levels
type Difficulty string

const (
	DifficultyEasy         Difficulty = "Easy"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyDifficult    Difficulty = "Difficult"
)

// Difficulties lists the allowed literals in display order
var Difficulties = []Difficulty{DifficultyEasy, DifficultyIntermediate, DifficultyDifficult}

// Valid reports whether d is exactly one of the allowed literals
func (d Difficulty) Valid() bool {
	for _, v := range Difficulties {
		if d == v {
			return true
		}
	}
	return false
}

// ParseDifficulty matches s against the allowed literals ignoring case,
// so path segments like "easy" resolve to DifficultyEasy.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.TrimSpace(s)
	for _, v := range Difficulties {
		if strings.EqualFold(s, string(v)) {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

// DifficultyList renders the allowed literals for messages
func DifficultyList() string {
	names := make([]string, len(Difficulties))
	for i, v := range Difficulties {
		names[i] = string(v)
	}
	return strings.Join(names, ", ")
}
