package mcf_test

import (
	"testing"

	"github.com/katalvlaran/mcflow/mcf"
	"github.com/katalvlaran/mcflow/netgen"
)

// benchInstance is shared by all pivot-rule benchmarks so that timings
// compare pricing strategies, not generator noise.
func benchInstance(b *testing.B) *netgen.Instance {
	b.Helper()
	inst, err := netgen.Transshipment(400, 2400,
		netgen.WithSeed(7),
		netgen.WithSupply(50),
		netgen.WithCostRange(1, 1000),
		netgen.WithCapacityRange(0, 80),
	)
	if err != nil {
		b.Fatal(err)
	}

	return inst
}

func benchRule(b *testing.B, rule mcf.PivotRule) {
	inst := benchInstance(b)
	s := mcf.New(inst.Graph).
		CostMap(inst.Cost).
		UpperMap(inst.Upper).
		SupplyMap(inst.Supply)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		status, err := s.Run(rule)
		if err != nil {
			b.Fatal(err)
		}
		if status != mcf.Optimal {
			b.Fatalf("unexpected status %v", status)
		}
	}
}

func BenchmarkFirstEligible(b *testing.B) { benchRule(b, mcf.FirstEligible) }
func BenchmarkBestEligible(b *testing.B)  { benchRule(b, mcf.BestEligible) }
func BenchmarkBlockSearch(b *testing.B)   { benchRule(b, mcf.BlockSearch) }
func BenchmarkCandidateList(b *testing.B) { benchRule(b, mcf.CandidateList) }
func BenchmarkAlteringList(b *testing.B)  { benchRule(b, mcf.AlteringList) }
