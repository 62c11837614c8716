package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hferraz/patternbook/internal/core"
)

func TestListCommand_Registration(t *testing.T) {
	subcommands := rootCmd.Commands()
	found := false
	for _, cmd := range subcommands {
		if cmd.Name() == "list" {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected 'list' command to be registered")
	}
}

func TestListCommand_NilCatalog(t *testing.T) {
	origCatalog := Catalog
	defer func() { Catalog = origCatalog }()
	Catalog = nil

	err := listCmd.RunE(listCmd, []string{})
	if err == nil {
		t.Fatal("expected error when Catalog is nil")
	}
	if !strings.Contains(err.Error(), "catalog not initialized") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestListCommand_GroupsByCategory(t *testing.T) {
	origCatalog := Catalog
	origFilter := listCategory
	defer func() {
		Catalog = origCatalog
		listCategory = origFilter
		listCmd.SetOut(nil)
	}()
	Catalog = core.NewCatalog()
	listCategory = ""

	var buf bytes.Buffer
	listCmd.SetOut(&buf)

	if err := listCmd.RunE(listCmd, []string{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, heading := range []string{"== behavioral (2) ==", "== structural (1) ==", "== creational (2) =="} {
		if !strings.Contains(out, heading) {
			t.Errorf("output missing %q:\n%s", heading, out)
		}
	}
	if !strings.Contains(out, "strategy") || !strings.Contains(out, "chocolate boiler") {
		t.Errorf("output missing pattern rows:\n%s", out)
	}
}

func TestListCommand_CategoryFilter(t *testing.T) {
	origCatalog := Catalog
	origFilter := listCategory
	defer func() {
		Catalog = origCatalog
		listCategory = origFilter
		listCmd.SetOut(nil)
	}()
	Catalog = core.NewCatalog()
	listCategory = "structural"

	var buf bytes.Buffer
	listCmd.SetOut(&buf)

	if err := listCmd.RunE(listCmd, []string{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "decorator") {
		t.Errorf("output missing decorator:\n%s", out)
	}
	if strings.Contains(out, "observer") {
		t.Errorf("filtered output contains other categories:\n%s", out)
	}
}

func TestListCommand_DefaultCategoryFromConfig(t *testing.T) {
	origCatalog := Catalog
	origFilter := listCategory
	origDefault := DefaultCategory
	defer func() {
		Catalog = origCatalog
		listCategory = origFilter
		DefaultCategory = origDefault
		listCmd.SetOut(nil)
	}()
	Catalog = core.NewCatalog()
	listCategory = ""
	DefaultCategory = "creational"

	var buf bytes.Buffer
	listCmd.SetOut(&buf)

	if err := listCmd.RunE(listCmd, []string{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "factory-method") || !strings.Contains(out, "singleton") {
		t.Errorf("output missing creational patterns:\n%s", out)
	}
	if strings.Contains(out, "observer") {
		t.Errorf("configured default category not applied:\n%s", out)
	}
}

func TestListCommand_CategoryFlagOverridesConfig(t *testing.T) {
	origCatalog := Catalog
	origFilter := listCategory
	origDefault := DefaultCategory
	defer func() {
		Catalog = origCatalog
		listCategory = origFilter
		DefaultCategory = origDefault
		listCmd.SetOut(nil)
	}()
	Catalog = core.NewCatalog()
	listCategory = "behavioral"
	DefaultCategory = "creational"

	var buf bytes.Buffer
	listCmd.SetOut(&buf)

	if err := listCmd.RunE(listCmd, []string{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "strategy") {
		t.Errorf("output missing behavioral patterns:\n%s", out)
	}
	if strings.Contains(out, "singleton") {
		t.Errorf("--category did not win over configured default:\n%s", out)
	}
}

func TestListCommand_UnknownCategory(t *testing.T) {
	origCatalog := Catalog
	origFilter := listCategory
	defer func() {
		Catalog = origCatalog
		listCategory = origFilter
	}()
	Catalog = core.NewCatalog()
	listCategory = "functional"

	if err := listCmd.RunE(listCmd, []string{}); err == nil {
		t.Fatal("expected error for unknown category")
	}
}
