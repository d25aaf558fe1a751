package cli

import (
	"errors"
	"testing"

	"github.com/stockpilot/stockpilot-go/internal/domain"
)

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 42 {
		t.Errorf("expected 42, got %d", id)
	}

	for _, bad := range []string{"", "abc", "0", "-3"} {
		_, err := parseID(bad)
		var verr *domain.ErrValidation
		if !errors.As(err, &verr) {
			t.Errorf("parseID(%q): expected ErrValidation, got %v", bad, err)
			continue
		}
		if verr.Field != "id" {
			t.Errorf("parseID(%q): expected field 'id', got %q", bad, verr.Field)
		}
	}
}

func TestParseItemLine(t *testing.T) {
	item, err := parseItemLine("7:3:12.50")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ProductID != 7 || item.Quantity != 3 || item.UnitPrice != 12.50 {
		t.Errorf("unexpected item: %+v", item)
	}

	for _, bad := range []string{"7:3", "x:3:1.0", "7:none:1.0", "7:3:free", "7:0:1.0"} {
		_, err := parseItemLine(bad)
		var verr *domain.ErrValidation
		if !errors.As(err, &verr) {
			t.Errorf("parseItemLine(%q): expected ErrValidation, got %v", bad, err)
			continue
		}
		if verr.Field != "item" {
			t.Errorf("parseItemLine(%q): expected field 'item', got %q", bad, verr.Field)
		}
	}
}
