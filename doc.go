// Package dckp is a heuristic solver for the Disjunctively Constrained
// Knapsack Problem (DCKP): choose a subset of items maximising total profit
// subject to a single capacity limit and a set of pairwise disjunction
// constraints that forbid certain items from being selected together.
//
// The solver is organized as a small stack of subpackages:
//
//	instance/     — immutable item catalogue + conflict graph
//	solution/     — mutable selected-item set with cached aggregates
//	validator/    — independent feasibility oracle
//	rng/          — deterministic 32-bit Mersenne Twister for GRASP
//	constructive/ — greedy (4 strategies) and GRASP constructors
//	localsearch/  — hill climbing and VND local search
//	experiment/   — batch driver, CSV result records
//	cmd/dckp/     — command-line entry point
//
// Data flow: disk → instance.Instance → (Greedy | GRASP) → solution.Solution
// → (HillClimbing | VND) → solution.Solution → experiment.Record.
//
//	go get github.com/ThallesFelipe/dckp-matheuristics
package dckp
