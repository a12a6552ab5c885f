package store

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/shandysiswandi/goresult/internal/result/entity"
)

func newTestSQLite(t *testing.T) *SQLite {
	t.Helper()

	store, err := NewSQLite(":memory:")
	if err != nil {
		t.Fatalf("NewSQLite() err = %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("Close() err = %v", err)
		}
	})

	return store
}

func TestSQLite_CreateAndGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestSQLite(t)
	result := entity.Result{ID: 1, Title: "first", Value: "42", CreatedAt: 100}

	if err := store.CreateResult(ctx, result); err != nil {
		t.Fatalf("CreateResult() err = %v", err)
	}

	got, err := store.GetResult(ctx, 1)
	if err != nil {
		t.Fatalf("GetResult() err = %v", err)
	}
	if !reflect.DeepEqual(got, result) {
		t.Fatalf("GetResult() = %+v, want %+v", got, result)
	}
}

func TestSQLite_GetMissingIsNoRows(t *testing.T) {
	t.Parallel()

	store := newTestSQLite(t)

	_, err := store.GetResult(context.Background(), 10)
	if !errors.Is(err, ErrNoRows) {
		t.Fatalf("GetResult() err = %v, want ErrNoRows", err)
	}
}

func TestSQLite_CreateDuplicate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestSQLite(t)
	result := entity.Result{ID: 2, Title: "dup", Value: "x"}

	if err := store.CreateResult(ctx, result); err != nil {
		t.Fatalf("CreateResult() err = %v", err)
	}

	if err := store.CreateResult(ctx, result); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("CreateResult() err = %v, want ErrDuplicate", err)
	}
}

func TestSQLite_ListAndDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestSQLite(t)

	for i := int64(1); i <= 3; i++ {
		if err := store.CreateResult(ctx, entity.Result{ID: i, Title: "t", Value: "v"}); err != nil {
			t.Fatalf("CreateResult() err = %v", err)
		}
	}

	items, total, err := store.ListResults(ctx, 2, 2)
	if err != nil {
		t.Fatalf("ListResults() err = %v", err)
	}
	if total != 3 {
		t.Fatalf("ListResults() total = %d, want 3", total)
	}
	if len(items) != 1 || items[0].ID != 3 {
		t.Fatalf("ListResults() items = %+v", items)
	}

	if err := store.DeleteResult(ctx, 3); err != nil {
		t.Fatalf("DeleteResult() err = %v", err)
	}

	if err := store.DeleteResult(ctx, 3); !errors.Is(err, ErrNoRows) {
		t.Fatalf("DeleteResult() err = %v, want ErrNoRows", err)
	}
}
