package workload

import "github.com/blockprefetch/cmc-sim/sim"

// Built-in scenario presets: named configurations covering the four
// workload kinds at the paper-compliant defaults, for CLI presets and
// comparison runs.

// ScenarioKVM is the default: a hypervisor-like block stream dominated
// by sequential runs with a sizable long-jump tail.
func ScenarioKVM(seed int64) sim.Config {
	cfg := sim.DefaultConfig()
	cfg.WorkloadKind = sim.WorkloadKVM
	cfg.Seed = seed
	return cfg
}

// ScenarioKernel is a kernel-build-like stream: fewer sequential runs,
// more long jumps (page cache misses across a large source tree).
func ScenarioKernel(seed int64) sim.Config {
	cfg := sim.DefaultConfig()
	cfg.WorkloadKind = sim.WorkloadKernel
	cfg.Seed = seed
	return cfg
}

// ScenarioMixed interleaves kvm and kernel draws 50/50.
func ScenarioMixed(seed int64) sim.Config {
	cfg := sim.DefaultConfig()
	cfg.WorkloadKind = sim.WorkloadMixed
	cfg.Seed = seed
	return cfg
}

// ScenarioSynthetic builds a config with a user-controlled sequential
// fraction, splitting the remainder evenly between short and long jumps.
func ScenarioSynthetic(seed int64, sequentialProb float64) sim.Config {
	cfg := sim.DefaultConfig()
	cfg.WorkloadKind = sim.WorkloadSynthetic
	cfg.SequentialProb = sequentialProb
	cfg.Seed = seed
	return cfg
}

// ScenarioKVMvsRA is the comparative KVM-like config from the testable
// end-to-end scenarios: paper-compliant defaults, engine left to the
// caller to vary between cmc and ra for a side-by-side run.
func ScenarioKVMvsRA() sim.Config {
	return sim.DefaultConfig()
}
