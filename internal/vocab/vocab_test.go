package vocab

import (
	"testing"

	"github.com/atikulmunna/fauxlog/internal/dice"
)

func TestDefaultHasEveryCategory(t *testing.T) {
	if err := Default().Require(Categories...); err != nil {
		t.Fatal(err)
	}
}

func TestNewRejectsEmptyList(t *testing.T) {
	if _, err := New(map[Category][]string{Hosts: {}}); err == nil {
		t.Error("expected error for empty category")
	}
}

func TestTableIsImmutable(t *testing.T) {
	src := []string{"a", "b"}
	tab, err := New(map[Category][]string{Hosts: src})
	if err != nil {
		t.Fatal(err)
	}

	src[0] = "mutated"

	if got := tab.At(Hosts, 0); got != "a" {
		t.Errorf("expected table to be unaffected by caller mutation, got %q", got)
	}
	if tab.Has(Phases) || tab.Len(Phases) != 0 {
		t.Error("expected unknown category to be absent")
	}
}

func TestPickAcrossCoversAllLists(t *testing.T) {
	tab, err := New(map[Category][]string{
		ErrorPatterns: {"e1", "e2"},
		Annotations:   {"a1"},
	})
	if err != nil {
		t.Fatal(err)
	}

	r := dice.New(10)
	seen := map[string]bool{}
	for i := 0; i < 300; i++ {
		seen[tab.PickAcross(r, ErrorPatterns, Annotations)] = true
	}
	for _, w := range []string{"e1", "e2", "a1"} {
		if !seen[w] {
			t.Errorf("expected %q to be drawn", w)
		}
	}
}

func TestPickUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown category")
		}
	}()
	tab, _ := New(map[Category][]string{Hosts: {"h"}})
	tab.Pick(dice.New(1), Services)
}
