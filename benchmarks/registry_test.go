package benchmarks

import (
	"context"
	"testing"

	"github.com/randalmurphal/scref/pkg/scref/registry"
)

// noopCapability does minimal work to measure fan-out overhead.
var noopCapability = registry.CapabilityFunc[string](func(_ context.Context, _ string) error {
	return nil
})

// BenchmarkRegisterRelease measures a register/release cycle.
func BenchmarkRegisterRelease(b *testing.B) {
	reg, err := registry.New[string](1)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		guard, _ := reg.Register(noopCapability)
		guard.Release()
	}
}

// benchmarkNotify measures a sweep with n of capacity slots bound.
func benchmarkNotify(b *testing.B, capacity, bound int) {
	reg, err := registry.New[string](capacity)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < bound; i++ {
		if _, err := reg.Register(noopCapability); err != nil {
			b.Fatal(err)
		}
	}

	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		reg.Notify(ctx, "msg")
	}
}

// BenchmarkNotify_Full_16 sweeps a fully bound 16-slot registry.
func BenchmarkNotify_Full_16(b *testing.B) {
	benchmarkNotify(b, 16, 16)
}

// BenchmarkNotify_Full_100 sweeps a fully bound 100-slot registry.
func BenchmarkNotify_Full_100(b *testing.B) {
	benchmarkNotify(b, 100, 100)
}

// BenchmarkNotify_Sparse_100 sweeps a 100-slot registry with a single
// subscriber, measuring the cost of skipping empty slots.
func BenchmarkNotify_Sparse_100(b *testing.B) {
	benchmarkNotify(b, 100, 1)
}

// BenchmarkNotify_Empty_100 sweeps a 100-slot registry with no
// subscribers at all.
func BenchmarkNotify_Empty_100(b *testing.B) {
	benchmarkNotify(b, 100, 0)
}
