// Package hybridastar provides a heuristic path search for vehicle-like agents
// whose state is a continuous pose (x, y, heading).
//
// It exposes three entry points:
//
//   - Solve: run the search to completion and get a Result.
//   - Stepper: advance the search one expansion at a time to drive UIs or debugging tools.
//   - SolveBatch: run several independent searches on a bounded worker pool.
//
// Successors are generated from a fixed set of motion primitives (heading change
// plus a fixed drive distance). Duplicate states are pruned through a
// deterministic discretization of the pose, while path costs are always
// computed on the continuous poses.
package hybridastar
