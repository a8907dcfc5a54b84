package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/holamundo/registry-api/internal/core/domain"
	"github.com/holamundo/registry-api/internal/core/ports"
)

func TestFormRepository_CategoryFilter(t *testing.T) {
	r := NewFormRepository()
	ctx := context.Background()
	_, _ = r.Create(ctx, &domain.Form{ID: "1", Category: "Furniture"})
	_, _ = r.Create(ctx, &domain.Form{ID: "2", Category: "IT"})
	_, _ = r.Create(ctx, &domain.Form{ID: "3", Category: "furniture"})
	_, _ = r.Create(ctx, &domain.Form{ID: "4"})

	items, _ := r.List(ctx, ports.FormFilter{Category: "FURNITURE", Page: 1, PageSize: 10})
	if len(items) != 2 || items[0].ID != "1" || items[1].ID != "3" {
		t.Errorf("unexpected items: %+v", items)
	}
	if n, _ := r.Count(ctx, ports.FormFilter{}); n != 4 {
		t.Errorf("Count = %d, want 4", n)
	}
	if n, _ := r.Count(ctx, ports.FormFilter{Category: "furn"}); n != 0 {
		t.Errorf("category must match exactly, got %d", n)
	}
}

func TestFormRepository_CRUD(t *testing.T) {
	r := NewFormRepository()
	ctx := context.Background()

	_, _ = r.Create(ctx, &domain.Form{ID: "1", Title: "Chairs", Tags: []string{"a"}})

	got, err := r.GetByID(ctx, "1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	got.Tags[0] = "mutated"
	again, _ := r.GetByID(ctx, "1")
	if again.Tags[0] != "a" {
		t.Error("returned forms must be copies")
	}

	if _, err := r.Update(ctx, &domain.Form{ID: "1", Title: "Desks"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	again, _ = r.GetByID(ctx, "1")
	if again.Title != "Desks" {
		t.Errorf("Title = %q, want Desks", again.Title)
	}
	if _, err := r.Update(ctx, &domain.Form{ID: "2"}); !errors.Is(err, domain.ErrFormNotFound) {
		t.Errorf("expected ErrFormNotFound, got %v", err)
	}

	if ok, _ := r.Delete(ctx, "1"); !ok {
		t.Error("expected delete to report true")
	}
	if _, err := r.GetByID(ctx, "1"); !errors.Is(err, domain.ErrFormNotFound) {
		t.Errorf("expected ErrFormNotFound after delete, got %v", err)
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	tests := []struct {
		page, size int
		want       int
	}{
		{1, 2, 2},
		{3, 2, 1},
		{4, 2, 0},
		{0, 10, 5},
		{1, 0, 0},
	}
	for _, tc := range tests {
		if got := paginate(items, tc.page, tc.size); len(got) != tc.want {
			t.Errorf("paginate(page=%d, size=%d) len = %d, want %d", tc.page, tc.size, len(got), tc.want)
		}
	}
}
