// Package sim provides the core trace-driven simulation engine for evaluating
// block-level storage prefetch policies.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - row.go: the six-field Markov row and its ordering algebra
//   - chain.go: the sparse, cluster-allocated chunk→row mapping
//   - cache.go: the LRU cache with prefetch-origin accounting
//   - policy_cmc.go: the eight-step per-access state machine (the core policy)
//   - driver.go: the run loop, statistics record, and epoch trajectory sampling
//
// # Architecture
//
// The sim package defines the Engine interface and the two concrete
// policies that implement it:
//   - policy_cmc.go: the clustered-Markov-chain predictive engine
//   - policy_ra.go: the sequential read-ahead baseline
//
// Workload (trace) generation lives in sim/workload; optional per-access
// decision recording lives in sim/trace. Neither package is required for
// the policy engines to run — both are consumed only by the driver.
package sim
