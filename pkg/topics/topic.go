package topics

import (
	"fmt"
	"strings"
)

// ID identifies a topic of the catalog
type ID int

const (
	StlAlgorithms ID = iota
	Templates
	Exceptions
	OperatorOverloading
	FunctionOverloading
	Friend
	Constructors
	Inheritance

	numTopics
)

var idNames = [...]string{
	StlAlgorithms:       "StlAlgorithms",
	Templates:           "Templates",
	Exceptions:          "Exceptions",
	OperatorOverloading: "OperatorOverloading",
	FunctionOverloading: "FunctionOverloading",
	Friend:              "Friend",
	Constructors:        "Constructors",
	Inheritance:         "Inheritance",
}

// String returns the Go-style name of the ID
func (id ID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("ID(%d)", int(id))
	}
	return idNames[id]
}

// Valid reports whether id names a topic of the catalog
func (id ID) Valid() bool {
	return id >= 0 && id < numTopics
}

// Topic is one immutable entry of the reference book
type Topic struct {
	ID       ID
	Name     string // stable slug, e.g. "stl-algorithms"
	Title    string // German heading, e.g. "STL-Algorithmen"
	Category string
	Gated    bool
	Body     string // verbatim text following the header
}

// Header returns the section header line, including its surrounding newlines
func (t *Topic) Header() string {
	return "\n=== " + t.Title + " ===\n"
}

// Text returns the complete reference output of the topic
func (t *Topic) Text() string {
	return t.Header() + t.Body
}

// Lines returns the body lines in authoring order. Blank lines are kept;
// the empty remainder after the final newline is not a line.
func (t *Topic) Lines() []string {
	body := strings.TrimSuffix(t.Body, "\n")
	if body == "" {
		return nil
	}
	return strings.Split(body, "\n")
}
