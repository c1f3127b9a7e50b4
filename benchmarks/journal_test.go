package benchmarks

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/randalmurphal/scref/pkg/scref/journal"
)

// BenchmarkMemoryStore_Append measures in-memory journal appends.
func BenchmarkMemoryStore_Append(b *testing.B) {
	store := journal.NewMemoryStore()
	defer store.Close()

	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		entry := journal.NewEntry(journal.OpNotify, -1, "", "delivered=1 errors=0")
		if err := store.Append(ctx, entry); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSQLiteStore_Append measures file-backed journal appends.
func BenchmarkSQLiteStore_Append(b *testing.B) {
	store, err := journal.NewSQLiteStore(filepath.Join(b.TempDir(), "bench.db"))
	if err != nil {
		b.Fatal(err)
	}
	defer store.Close()

	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		entry := journal.NewEntry(journal.OpRegister, 0, "grd-bench", "")
		if err := store.Append(ctx, entry); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMemoryStore_List measures listing a populated journal.
func BenchmarkMemoryStore_List(b *testing.B) {
	store := journal.NewMemoryStore()
	defer store.Close()

	ctx := context.Background()
	for i := 0; i < 1000; i++ {
		entry := journal.NewEntry(journal.OpRegister, i%16, "grd-bench", "")
		if err := store.Append(ctx, entry); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := store.List(ctx, 0); err != nil {
			b.Fatal(err)
		}
	}
}
