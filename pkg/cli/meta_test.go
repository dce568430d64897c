package cli

import (
	"strings"
	"testing"

	"github.com/kyzipstar6/imageeditor/pkg/segment"
)

func TestNormalizeArgsMissingRequired(t *testing.T) {
	store := NewMetaStore(segment.Commands)
	if _, err := NormalizeArgs(store, "seedCrop", []string{"5"}); err == nil {
		t.Fatalf("missing required y must be an error")
	}
	if _, err := NormalizeArgs(store, "noSuchCommand", nil); err == nil {
		t.Fatalf("unknown command must be an error")
	}
}

func TestNormalizeArgsToleranceRange(t *testing.T) {
	store := NewMetaStore(segment.Commands)
	if _, err := NormalizeArgs(store, "removeBackground", []string{"500"}); err == nil {
		t.Fatalf("tolerance above 200 must be rejected")
	}
	if _, err := NormalizeArgs(store, "removeBackground", []string{"-1"}); err == nil {
		t.Fatalf("negative tolerance must be rejected")
	}
	out, err := NormalizeArgs(store, "removeBackground", []string{"120"})
	if err != nil {
		t.Fatalf("valid tolerance rejected: %v", err)
	}
	if len(out) != 1 || out[0] != "120" {
		t.Fatalf("unexpected normalized args: %v", out)
	}
}

func TestNormalizeArgsTrailingOptional(t *testing.T) {
	store := NewMetaStore(segment.Commands)
	out, err := NormalizeArgs(store, "seedCrop", []string{"5", "7"})
	if err != nil {
		t.Fatalf("NormalizeArgs failed: %v", err)
	}
	// omitted trailing tolerance is stripped so the engine default applies
	if len(out) != 2 || out[0] != "5" || out[1] != "7" {
		t.Fatalf("unexpected normalized args: %v", out)
	}
}

func TestNormalizeArgsPoints(t *testing.T) {
	store := NewMetaStore(segment.Commands)
	if _, err := NormalizeArgs(store, "shapeCrop", []string{"10,10 bad"}); err == nil {
		t.Fatalf("malformed points must be rejected")
	}
	out, err := NormalizeArgs(store, "shapeCrop", []string{"10,10 40,12 38,50"})
	if err != nil {
		t.Fatalf("valid points rejected: %v", err)
	}
	if out[0] != "10,10 40,12 38,50" {
		t.Fatalf("points arg must pass through verbatim, got %q", out[0])
	}
}

func TestGenerateTooltip(t *testing.T) {
	store := NewMetaStore(segment.Commands)
	tip, err := store.GetTooltip("restrict")
	if err != nil {
		t.Fatalf("GetTooltip failed: %v", err)
	}
	for _, want := range []string{"x", "y", "width", "height", "required"} {
		if !strings.Contains(tip, want) {
			t.Fatalf("tooltip missing %q:\n%s", want, tip)
		}
	}
	if _, err := store.GetTooltip("bogus"); err == nil {
		t.Fatalf("unknown command tooltip must be an error")
	}
}

func TestValidationRulesToleranceBounds(t *testing.T) {
	store := NewMetaStore(segment.Commands)
	rules, err := store.GetValidationRules("removeBackground")
	if err != nil {
		t.Fatalf("GetValidationRules failed: %v", err)
	}
	r, ok := rules["tolerance"]
	if !ok {
		t.Fatalf("tolerance rule missing")
	}
	if r.Min == nil || r.Max == nil || *r.Min != 0 || *r.Max != 200 {
		t.Fatalf("tolerance bounds wrong: %+v", r)
	}
}
