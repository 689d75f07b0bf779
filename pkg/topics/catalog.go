package topics

import (
	"embed"
	"strconv"
	"strings"
)

// Category names, in the order the menu and the listing present them
const (
	CategorySTL        = "STL"
	CategoryGeneric    = "Generische Programmierung"
	CategoryErrors     = "Fehlerbehandlung"
	CategoryOverload   = "Überladung"
	CategoryClassesOOP = "Klassen & OOP"
)

var categoryOrder = []string{
	CategorySTL,
	CategoryGeneric,
	CategoryErrors,
	CategoryOverload,
	CategoryClassesOOP,
}

//go:embed content/*.txt
var content embed.FS

// Category groups topics for presentation
type Category struct {
	Name   string
	Topics []*Topic
}

var catalog = []*Topic{
	{ID: StlAlgorithms, Name: "stl-algorithms", Title: "STL-Algorithmen", Category: CategorySTL},
	{ID: Templates, Name: "templates", Title: "Templates in C++", Category: CategoryGeneric},
	{ID: Exceptions, Name: "exceptions", Title: "Fehlerbehandlung mit Exceptions", Category: CategoryErrors},
	{ID: OperatorOverloading, Name: "operator-overloading", Title: "Operatorüberladung in C++", Category: CategoryOverload, Gated: true},
	{ID: FunctionOverloading, Name: "function-overloading", Title: "Funktionsüberladung in C++", Category: CategoryOverload, Gated: true},
	{ID: Friend, Name: "friend", Title: "friend in C++", Category: CategoryClassesOOP, Gated: true},
	{ID: Constructors, Name: "constructors", Title: "Konstruktoren in C++", Category: CategoryClassesOOP, Gated: true},
	{ID: Inheritance, Name: "inheritance", Title: "Vererbung in C++", Category: CategoryClassesOOP, Gated: true},
}

func init() {
	for _, t := range catalog {
		data, err := content.ReadFile("content/" + t.Name + ".txt")
		if err != nil {
			// The content directory is compiled in; a missing file is a build defect.
			panic("topics: missing content for " + t.Name + ": " + err.Error())
		}
		t.Body = string(data)
	}
}

// All returns every topic in authoring order
func All() []*Topic {
	out := make([]*Topic, len(catalog))
	copy(out, catalog)
	return out
}

// Get returns the topic for id
func Get(id ID) (*Topic, bool) {
	if !id.Valid() {
		return nil, false
	}
	return catalog[id], true
}

// Names returns the slugs of all topics in authoring order
func Names() []string {
	names := make([]string, 0, len(catalog))
	for _, t := range catalog {
		names = append(names, t.Name)
	}
	return names
}

// Lookup resolves a user-supplied name to a topic. It accepts the slug,
// the title, the ID name (all case-insensitive), a 1-based position and
// flag-style spellings like --friend.
func Lookup(name string) (*Topic, bool) {
	name = strings.TrimSpace(name)
	name = strings.TrimPrefix(name, "--")
	name = strings.TrimPrefix(name, "-")
	if name == "" {
		return nil, false
	}

	if n, err := strconv.Atoi(name); err == nil {
		return Get(ID(n - 1))
	}

	for _, t := range catalog {
		if strings.EqualFold(name, t.Name) ||
			strings.EqualFold(name, t.Title) ||
			strings.EqualFold(name, t.ID.String()) {
			return t, true
		}
	}
	return nil, false
}

// Categories returns the topics grouped by category. Categories and the
// topics inside them keep catalog order.
func Categories() []Category {
	cats := make([]Category, 0, len(categoryOrder))
	for _, name := range categoryOrder {
		cat := Category{Name: name}
		for _, t := range catalog {
			if t.Category == name {
				cat.Topics = append(cat.Topics, t)
			}
		}
		cats = append(cats, cat)
	}
	return cats
}
