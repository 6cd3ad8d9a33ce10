package core

import (
	"errors"
	"strings"
	"testing"
)

func TestItemValidate(t *testing.T) {
	valid := Item{ID: "vesken", Name: "VESKEN Corner shelf unit", Price: 17.99}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid item should pass validation: %v", err)
	}

	noPrice := Item{ID: "x", Name: "unpriced"}
	if err := noPrice.Validate(); err != nil {
		t.Errorf("missing price is allowed: %v", err)
	}

	if err := (Item{Name: "no id"}).Validate(); !errors.Is(err, ErrEmptyID) {
		t.Errorf("expected ErrEmptyID, got %v", err)
	}
	if err := (Item{ID: "x", Name: "  "}).Validate(); !errors.Is(err, ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
	if err := (Item{ID: "x", Name: "n", Price: -1}).Validate(); !errors.Is(err, ErrNegativePrice) {
		t.Errorf("expected ErrNegativePrice, got %v", err)
	}
	long := Item{ID: "x", Name: strings.Repeat("a", 201)}
	if err := long.Validate(); err == nil {
		t.Error("expected error for overlong name")
	}
}

func TestCategoryValidate(t *testing.T) {
	valid := Category{ID: "sideboard", Name: "Sideboard", Icon: "🗄️",
		Items: []Item{{ID: "hauga", Name: "HAUGA Sideboard", Price: 499.99}}}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid category should pass validation: %v", err)
	}

	if err := (Category{Name: "n", Icon: "i"}).Validate(); !errors.Is(err, ErrEmptyID) {
		t.Errorf("expected ErrEmptyID, got %v", err)
	}
	if err := (Category{ID: "c", Icon: "i"}).Validate(); !errors.Is(err, ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
	if err := (Category{ID: "c", Name: "n"}).Validate(); !errors.Is(err, ErrEmptyIcon) {
		t.Errorf("expected ErrEmptyIcon, got %v", err)
	}

	badItem := Category{ID: "c", Name: "n", Icon: "i", Items: []Item{{Name: "no id"}}}
	if err := badItem.Validate(); !errors.Is(err, ErrEmptyID) {
		t.Errorf("category validation should surface item errors, got %v", err)
	}
}
