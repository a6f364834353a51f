// Package workload generates deterministic block-access traces for the
// simulator from a named workload kind and seed (spec.md §4.1).
package workload

import (
	"fmt"
	"math/rand"

	"github.com/blockprefetch/cmc-sim/sim"
)

// accessKind is the per-event draw outcome: which of the three block
// stream behaviors produces the next block id.
type accessKind int

const (
	accessSequential accessKind = iota
	accessShortJump
	accessLongJump
)

const shortJumpRadius = 64

// composition is a workload kind's per-event selection probabilities
// for sequential and short-jump draws; long jump absorbs the remainder.
// pick compares a uniform draw in [0,1) against their running sum.
type composition struct {
	sequential float64
	shortJump  float64
}

var compositions = map[sim.WorkloadKind]composition{
	sim.WorkloadKVM:    {sequential: 0.40, shortJump: 0.35},
	sim.WorkloadKernel: {sequential: 0.30, shortJump: 0.20},
}

func (c composition) pick(r float64) accessKind {
	if r < c.sequential {
		return accessSequential
	}
	if r < c.sequential+c.shortJump {
		return accessShortJump
	}
	return accessLongJump
}

// Generator is a lazy, finite trace: it draws one block id per call to
// Next and satisfies sim.Trace. Identical (kind, seed, n_events,
// block_range) yield an identical sequence (spec.md §4.1).
type Generator struct {
	cfg       sim.Config
	rng       *rand.Rand
	mixRNG    *rand.Rand
	emitted   int64
	lastBlock int64
	hasLast   bool
}

// NewGenerator builds the trace generator described by cfg. It validates
// only the fields the generator itself depends on; the full Config is
// validated by the driver.
func NewGenerator(cfg sim.Config) (*Generator, error) {
	switch cfg.WorkloadKind {
	case sim.WorkloadKVM, sim.WorkloadKernel, sim.WorkloadMixed, sim.WorkloadSynthetic:
	default:
		return nil, fmt.Errorf("unknown workload_kind %q", cfg.WorkloadKind)
	}
	if cfg.BlockRange < 1 {
		return nil, fmt.Errorf("block_range must be positive, got %d", cfg.BlockRange)
	}

	prng := sim.NewPartitionedRNG(sim.NewSimulationKey(cfg.Seed))
	g := &Generator{
		cfg: cfg,
		rng: prng.ForSubsystem(sim.SubsystemTraceGen),
	}
	if cfg.WorkloadKind == sim.WorkloadMixed {
		g.mixRNG = prng.ForSubsystem(sim.SubsystemMixSelector)
	}
	return g, nil
}

// Next returns the next block id in the trace, or ok=false once
// n_events have been emitted.
func (g *Generator) Next() (int64, bool) {
	if g.emitted >= g.cfg.NEvents {
		return 0, false
	}

	kind := g.nextKind()
	block := g.nextBlock(kind)

	g.lastBlock = block
	g.hasLast = true
	g.emitted++
	return block, true
}

func (g *Generator) nextKind() accessKind {
	switch g.cfg.WorkloadKind {
	case sim.WorkloadKVM:
		return compositions[sim.WorkloadKVM].pick(g.rng.Float64())
	case sim.WorkloadKernel:
		return compositions[sim.WorkloadKernel].pick(g.rng.Float64())
	case sim.WorkloadMixed:
		kind := sim.WorkloadKVM
		if g.mixRNG.Float64() >= 0.5 {
			kind = sim.WorkloadKernel
		}
		return compositions[kind].pick(g.rng.Float64())
	case sim.WorkloadSynthetic:
		r := g.rng.Float64()
		if r < g.cfg.SequentialProb {
			return accessSequential
		}
		if r < g.cfg.SequentialProb+(1-g.cfg.SequentialProb)/2 {
			return accessShortJump
		}
		return accessLongJump
	default:
		return accessLongJump
	}
}

func (g *Generator) nextBlock(kind accessKind) int64 {
	switch kind {
	case accessSequential:
		if !g.hasLast {
			return g.uniformBlock()
		}
		next := g.lastBlock + 1
		if next >= g.cfg.BlockRange {
			return g.uniformBlock()
		}
		return next
	case accessShortJump:
		base := g.lastBlock
		if !g.hasLast {
			base = g.uniformBlock()
		}
		delta := int64(g.rng.Intn(2*shortJumpRadius+1)) - shortJumpRadius
		b := base + delta
		return clampBlock(b, g.cfg.BlockRange)
	default: // accessLongJump
		return g.uniformBlock()
	}
}

func (g *Generator) uniformBlock() int64 {
	return int64(g.rng.Int63n(g.cfg.BlockRange))
}

func clampBlock(b, blockRange int64) int64 {
	if b < 0 {
		return 0
	}
	if b >= blockRange {
		return blockRange - 1
	}
	return b
}
