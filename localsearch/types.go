// Package localsearch improves a constructed solution by repeatedly moving
// to a strictly better neighbour until none exists or an iteration budget
// is exhausted. HillClimbing explores a single neighbourhood; VND escalates
// through three neighbourhoods of increasing cost.
package localsearch

// DefaultMaxIterations bounds a local search run when the caller has no
// stronger preference.
const DefaultMaxIterations = 1000
