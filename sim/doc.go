// Package sim provides the core page-replacement sweep engine.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - result.go: PolicyResult accumulation (ProcessRow, SweepRow, ResultMatrix)
//   - runner.go: one simulated process driven through all four algorithms
//   - sweep.go: the page-size sweep loop and the per-page-size process fan-out
//
// # Architecture
//
// The sim package owns orchestration and aggregation; the algorithmic and
// presentation pieces live in sub-packages:
//   - sim/policy/: the four replacement algorithms (OPT, FIFO, LRU, MRU)
//   - sim/workload/: synthetic reference-string generation
//   - sim/report/: hit-rate table rendering
//
// Randomness flows through PartitionedRNG (rng.go): one deterministic stream per
// (pageSize, process) slot, derived before any worker goroutine starts, so sweep
// output depends only on the configuration and seed.
package sim
