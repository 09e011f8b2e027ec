// Package vocab holds the read-only word lists the generators sample from.
package vocab

import (
	"fmt"

	"github.com/atikulmunna/fauxlog/internal/dice"
)

// Category names one word list in a Table.
type Category string

const (
	Services      Category = "services"
	Hosts         Category = "hosts"
	Actions       Category = "actions"
	Objects       Category = "objects"
	Suffixes      Category = "suffixes"
	ErrorPatterns Category = "error_patterns"
	Annotations   Category = "annotations" // continuation-only phrases
	Phases        Category = "phases"
	Methods       Category = "methods"
	Paths         Category = "paths"
	ClientPrefix  Category = "client_prefixes"
	FragmentTags  Category = "fragment_tags"
	TaskAdverbs   Category = "task_adverbs"
	TaskVerbs     Category = "task_verbs"
	TaskObjects   Category = "task_objects"
	TaskSuffixes  Category = "task_suffixes"
	TaskQualifier Category = "task_qualifiers"
	FillGlyphs    Category = "fill_glyphs"
	EmptyGlyphs   Category = "empty_glyphs"
)

// Categories lists every category the generators draw from.
var Categories = []Category{
	Services, Hosts, Actions, Objects, Suffixes, ErrorPatterns, Annotations,
	Phases, Methods, Paths, ClientPrefix, FragmentTags,
	TaskAdverbs, TaskVerbs, TaskObjects, TaskSuffixes, TaskQualifier,
	FillGlyphs, EmptyGlyphs,
}

// Table maps categories to ordered word lists. A Table is never mutated
// after construction, so it can be shared freely.
type Table struct {
	words map[Category][]string
}

// New builds a Table from the given lists. Every list is copied and must be
// non-empty.
func New(lists map[Category][]string) (*Table, error) {
	t := &Table{words: make(map[Category][]string, len(lists))}
	for c, ws := range lists {
		if len(ws) == 0 {
			return nil, fmt.Errorf("vocab: category %q is empty", c)
		}
		t.words[c] = append([]string(nil), ws...)
	}
	return t, nil
}

// Len returns the number of words in c.
func (t *Table) Len(c Category) int {
	return len(t.words[c])
}

// Has reports whether c is present.
func (t *Table) Has(c Category) bool {
	_, ok := t.words[c]
	return ok
}

// Pick returns a uniformly chosen word from c. It panics if c is missing,
// which only happens with a Table that was built without a required list.
func (t *Table) Pick(r dice.Rand, c Category) string {
	ws, ok := t.words[c]
	if !ok {
		panic(fmt.Sprintf("vocab: unknown category %q", c))
	}
	return dice.Pick(r, ws)
}

// At returns the i-th word of c.
func (t *Table) At(c Category, i int) string {
	return t.words[c][i]
}

// PickAcross draws uniformly from the concatenation of the lists in cs,
// without allocating a merged slice.
func (t *Table) PickAcross(r dice.Rand, cs ...Category) string {
	total := 0
	for _, c := range cs {
		total += len(t.words[c])
	}
	i := r.IntN(total)
	for _, c := range cs {
		ws := t.words[c]
		if i < len(ws) {
			return ws[i]
		}
		i -= len(ws)
	}
	panic("vocab: index out of range")
}

// Require returns an error naming the first category in cs that is missing.
func (t *Table) Require(cs ...Category) error {
	for _, c := range cs {
		if !t.Has(c) {
			return fmt.Errorf("vocab: missing category %q", c)
		}
	}
	return nil
}
