package list

import (
	"errors"
	"testing"

	"warranty-tui/api"
)

func page(items []string, number, totalPages int) api.Page[string] {
	return api.Page[string]{
		Items:         items,
		PageNumber:    number,
		PageSize:      10,
		TotalElements: totalPages * 10,
		TotalPages:    totalPages,
		First:         number == 0,
		Last:          number == totalPages-1,
	}
}

func TestControllerLifecycle(t *testing.T) {
	c := New[string](10)
	if c.Phase() != Idle {
		t.Fatalf("new controller phase = %v, want Idle", c.Phase())
	}

	seq := c.Begin(0)
	if c.Phase() != Loading {
		t.Fatalf("phase after Begin = %v, want Loading", c.Phase())
	}

	if !c.Complete(seq, page([]string{"a", "b"}, 0, 3), nil) {
		t.Fatal("Complete with current seq reported stale")
	}
	if c.Phase() != Loaded {
		t.Errorf("phase after Complete = %v, want Loaded", c.Phase())
	}
	if len(c.Items()) != 2 {
		t.Errorf("items = %v, want 2 rows", c.Items())
	}
}

func TestControllerStaleResponseDiscarded(t *testing.T) {
	c := New[string](10)

	first := c.Begin(0)
	second := c.Begin(1) // user flipped pages before the first fetch landed

	if c.Complete(first, page([]string{"old"}, 0, 3), nil) {
		t.Fatal("stale completion was applied")
	}
	if !c.Complete(second, page([]string{"new"}, 1, 3), nil) {
		t.Fatal("latest completion reported stale")
	}
	if got := c.Items(); len(got) != 1 || got[0] != "new" {
		t.Errorf("items = %v, want the newer page only", got)
	}

	// A stale arrival after the fresh one must not regress state either.
	if c.Complete(first, page([]string{"old"}, 0, 3), nil) {
		t.Fatal("stale completion applied after the fresh one")
	}
	if got := c.Items(); got[0] != "new" {
		t.Errorf("items regressed to %v", got)
	}
}

func TestControllerErrorKeepsPriorPage(t *testing.T) {
	c := New[string](10)
	seq := c.Begin(0)
	c.Complete(seq, page([]string{"a", "b", "c"}, 0, 2), nil)

	seq = c.Begin(1)
	c.Complete(seq, api.Page[string]{}, errors.New("connection refused"))

	if c.Phase() != Errored {
		t.Fatalf("phase = %v, want Errored", c.Phase())
	}
	if c.Err() == nil {
		t.Fatal("Err() = nil after failed fetch")
	}
	if len(c.Items()) != 3 {
		t.Errorf("prior page was dropped on error: items = %v", c.Items())
	}
	// A retry goes back to the page that failed, not the one on screen.
	if c.Requested() != 1 {
		t.Errorf("Requested() = %d after failed fetch of page 1", c.Requested())
	}

	// A later success clears the error.
	seq = c.Begin(1)
	c.Complete(seq, page([]string{"d"}, 1, 2), nil)
	if c.Err() != nil {
		t.Errorf("Err() = %v after successful refetch, want nil", c.Err())
	}
}

func TestControllerSetPageBounds(t *testing.T) {
	c := New[string](10)
	seq := c.Begin(0)
	c.Complete(seq, page([]string{"a"}, 1, 3), nil)

	tests := []struct {
		name   string
		target int
		want   int
		fetch  bool
	}{
		{"negative", -1, 1, false},
		{"past the end", 3, 1, false},
		{"current page already loaded", 1, 1, false},
		{"valid forward", 2, 2, true},
		{"valid backward", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, fetch := c.SetPage(tt.target)
			if got != tt.want || fetch != tt.fetch {
				t.Errorf("SetPage(%d) = (%d, %v), want (%d, %v)",
					tt.target, got, fetch, tt.want, tt.fetch)
			}
		})
	}
}

func TestControllerApplyFilterResetsPage(t *testing.T) {
	c := New[string](10)
	seq := c.Begin(0)
	c.Complete(seq, page([]string{"a"}, 4, 7), nil)

	if target := c.ApplyFilter("battery"); target != 0 {
		t.Errorf("ApplyFilter target = %d, want 0", target)
	}
	if c.Filter() != "battery" {
		t.Errorf("Filter() = %q", c.Filter())
	}
}

func TestControllerEmptyState(t *testing.T) {
	c := New[string](10)
	if c.Empty() {
		t.Error("idle controller reported empty; empty requires a successful fetch")
	}

	seq := c.Begin(0)
	c.Complete(seq, api.Page[string]{TotalPages: 0, First: true, Last: true}, nil)
	if !c.Empty() {
		t.Error("zero-row loaded page should report empty")
	}

	seq = c.Begin(0)
	c.Complete(seq, api.Page[string]{}, errors.New("boom"))
	if c.Empty() {
		t.Error("errored controller must not report empty")
	}
}

func TestControllerPatchLocal(t *testing.T) {
	c := New[string](10)
	seq := c.Begin(0)
	c.Complete(seq, api.Page[string]{
		Items: []string{"a", "b", "c"}, TotalElements: 3, TotalPages: 1,
	}, nil)

	// Replace in place.
	b2 := "b2"
	c.PatchLocal(func(s string) bool { return s == "b" }, &b2)
	if got := c.Items(); got[1] != "b2" || len(got) != 3 {
		t.Errorf("replace: items = %v", got)
	}

	// Remove.
	c.PatchLocal(func(s string) bool { return s == "a" }, nil)
	if got := c.Items(); len(got) != 2 || c.Page().TotalElements != 2 {
		t.Errorf("remove: items = %v total = %d", got, c.Page().TotalElements)
	}

	// No match with a record: prepend.
	d := "d"
	c.PatchLocal(func(s string) bool { return false }, &d)
	if got := c.Items(); got[0] != "d" || c.Page().TotalElements != 3 {
		t.Errorf("prepend: items = %v total = %d", got, c.Page().TotalElements)
	}

	// No match, nil record: nothing changes.
	c.PatchLocal(func(s string) bool { return false }, nil)
	if got := c.Items(); len(got) != 3 {
		t.Errorf("no-op patch changed items: %v", got)
	}
}

func TestControllerDefaultPageSize(t *testing.T) {
	if got := New[string](0).PageSize(); got != 10 {
		t.Errorf("PageSize() = %d, want the default 10", got)
	}
	if got := New[string](25).PageSize(); got != 25 {
		t.Errorf("PageSize() = %d, want 25", got)
	}
}
