package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/kanatype/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "kanatype.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestImportAndList(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	err := st.ImportWords(ctx, []model.WordRecord{
		{Word: "学校", Reading: "がっこう", Status: 1},
		{Word: "林檎", Reading: "りんご", Status: 0},
		{Word: "猫", Reading: "ねこ", Status: 3},
	})
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	all, err := st.ListWords(ctx, true)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 || all[1].Word != "林檎" {
		t.Fatalf("unexpected words: %+v", all)
	}

	active, err := st.ActiveEntries(ctx)
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if len(active) != 2 || active[0].Reading != "がっこう" || active[1].Word != "猫" {
		t.Fatalf("unexpected active entries: %+v", active)
	}
}

func TestImportUpsertsStatus(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	rec := model.WordRecord{Word: "学校", Reading: "がっこう", Status: 1}
	if err := st.ImportWords(ctx, []model.WordRecord{rec}); err != nil {
		t.Fatalf("import: %v", err)
	}
	rec.Status = 0
	if err := st.ImportWords(ctx, []model.WordRecord{rec}); err != nil {
		t.Fatalf("reimport: %v", err)
	}
	all, err := st.ListWords(ctx, true)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 || all[0].Status != 0 {
		t.Fatalf("expected single disabled row, got %+v", all)
	}
}

func TestSetStatus(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	if err := st.ImportWords(ctx, []model.WordRecord{{Word: "猫", Reading: "ねこ", Status: 0}}); err != nil {
		t.Fatalf("import: %v", err)
	}
	if err := st.SetStatus(ctx, "猫", "", 1); err != nil {
		t.Fatalf("set status: %v", err)
	}
	active, err := st.ActiveEntries(ctx)
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("expected enabled word, got %+v", active)
	}
	if err := st.SetStatus(ctx, "犬", "", 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := st.SetStatus(ctx, "猫", "ねご", 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown reading, got %v", err)
	}
}
