package store

import (
	"context"
	"errors"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

func backends(t *testing.T) map[string]Store {
	t.Helper()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "data", "kluro.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": db,
		"file":   NewFileStore(filepath.Join(t.TempDir(), "kluro", "save.json")),
	}
}

func TestSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	started := time.Date(2024, 3, 1, 7, 30, 0, 0, time.UTC)

	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := st.Load(ctx, "nobody"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}

			want := Saved{LastPlayedDate: "2024-03-01", GameState: `{"grid":[]}`, StartedAt: started}
			if err := st.Save(ctx, "p1", want); err != nil {
				t.Fatalf("save: %v", err)
			}
			got, err := st.Load(ctx, "p1")
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if got.LastPlayedDate != want.LastPlayedDate || got.GameState != want.GameState || !got.StartedAt.Equal(started) {
				t.Fatalf("expected %+v, got %+v", want, got)
			}

			// Save replaces.
			want.LastPlayedDate = "2024-03-02"
			if err := st.Save(ctx, "p1", want); err != nil {
				t.Fatalf("save: %v", err)
			}
			got, _ = st.Load(ctx, "p1")
			if got.LastPlayedDate != "2024-03-02" {
				t.Fatalf("expected replaced date, got %s", got.LastPlayedDate)
			}

			// Other players are independent.
			if _, err := st.Load(ctx, "p2"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound for p2, got %v", err)
			}
		})
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kluro.db")
	for i := 0; i < 2; i++ {
		db, err := OpenSQLite(path)
		if err != nil {
			t.Fatalf("open %d: %v", i, err)
		}
		var n int
		if err := db.DB().QueryRow(`SELECT COUNT(1) FROM _migrations`).Scan(&n); err != nil {
			t.Fatalf("count migrations: %v", err)
		}
		if n != 1 {
			t.Fatalf("expected 1 applied migration, got %d", n)
		}
		_ = db.Close()
	}
}

func TestMemoryConcurrentAccess(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = st.Save(ctx, "p", Saved{LastPlayedDate: "2024-01-01"})
			_, _ = st.Load(ctx, "p")
		}()
	}
	wg.Wait()
	if _, err := st.Load(ctx, "p"); err != nil {
		t.Fatalf("load: %v", err)
	}
}

func TestMigrateRollsBackFailedFile(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "m.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	fsys := fstest.MapFS{
		"sql/001_a.sql": {Data: []byte(`CREATE TABLE a (id INTEGER);`)},
		"sql/002_b.sql": {Data: []byte(`CREATE TABLE b (id INTEGER); INSERT INTO missing VALUES (1);`)},
	}
	if err := migrate(db, fsys); err == nil {
		t.Fatal("expected error from broken migration")
	}

	var names []string
	rows, err := db.Query(`SELECT name FROM _migrations ORDER BY name`)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	for rows.Next() {
		var n string
		_ = rows.Scan(&n)
		names = append(names, n)
	}
	rows.Close()
	if len(names) != 1 || names[0] != "sql/001_a.sql" {
		t.Fatalf("expected only the first file recorded, got %v", names)
	}
	var tbl string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='b'`).Scan(&tbl)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected table b to be rolled back, got %q (%v)", tbl, err)
	}

	// Fixed file applies on the next run; the first is not re-run.
	fsys["sql/002_b.sql"] = &fstest.MapFile{Data: []byte(`CREATE TABLE b (id INTEGER);`)}
	if err := migrate(db, fsys); err != nil {
		t.Fatalf("migrate: %v", err)
	}
}
