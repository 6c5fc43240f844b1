package keymap_test

import (
	"strconv"
	"testing"

	"github.com/AndrewDonelson/keymap"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func benchMap(b *testing.B, n int) *keymap.Map[[]string, int] {
	b.Helper()
	m := keymap.New[[]string, int](keymap.Options[[]string]{Capacity: n})
	for i := 0; i < n; i++ {
		if err := m.Set([]string{"tenant", strconv.Itoa(i)}, i); err != nil {
			b.Fatal(err)
		}
	}
	return m
}

// ── key-addressed operations ──────────────────────────────────────────────────

func BenchmarkMap_Set(b *testing.B) {
	m := benchMap(b, 0)
	key := []string{"tenant", "42"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Set(key, i)
	}
}

func BenchmarkMap_Get_Hit(b *testing.B) {
	m := benchMap(b, 1000)
	key := []string{"tenant", "500"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Get(key)
	}
}

func BenchmarkMap_Get_StableCodec(b *testing.B) {
	m := keymap.New[map[string]int, int](keymap.Options[map[string]int]{
		Codec: keymap.StableCodec[map[string]int]{},
	})
	key := map[string]int{"b": 2, "a": 1}
	_ = m.Set(key, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Get(key)
	}
}

// ── iteration ────────────────────────────────────────────────────────────────

func BenchmarkMap_ForEach(b *testing.B) {
	m := benchMap(b, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.ForEach(func(int, []string) {})
	}
}

func BenchmarkMap_ForEachValue(b *testing.B) {
	m := benchMap(b, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.ForEachValue(func(int) {})
	}
}

func BenchmarkMap_Entries(b *testing.B) {
	m := benchMap(b, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := m.Entries()
		for it.Next() {
		}
	}
}
