package experiment

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/ErronZrz/flow-rank/internal/core"
)

// Dist 流量分布
type Dist string

const (
	DistUniform Dist = "uniform"
	DistZipf    Dist = "zipf"
)

// Generator 按给定分布产生流 ID；同一 seed 的序列可复现
type Generator struct {
	flows []core.FlowID
	rng   *rand.Rand
	zipf  *rand.Zipf
}

func NewGenerator(flowCount int, seed uint64, dist Dist) (*Generator, error) {
	if flowCount < 1 {
		return nil, fmt.Errorf("experiment: flow count must be positive, got %d", flowCount)
	}
	flows := make([]core.FlowID, flowCount)
	for i := range flows {
		flows[i] = fmt.Sprintf("f%06d", i+1)
	}
	g := &Generator{flows: flows, rng: rand.New(rand.NewSource(seed))}
	switch dist {
	case DistUniform, "":
	case DistZipf:
		g.zipf = rand.NewZipf(g.rng, 1.2, 1, uint64(flowCount-1))
	default:
		return nil, fmt.Errorf("experiment: unknown distribution %q", dist)
	}
	return g, nil
}

// Next 产生下一个流 ID
func (g *Generator) Next() core.FlowID {
	if g.zipf != nil {
		return g.flows[g.zipf.Uint64()]
	}
	return g.flows[g.rng.Intn(len(g.flows))]
}

// FlowCount 流池大小
func (g *Generator) FlowCount() int { return len(g.flows) }
