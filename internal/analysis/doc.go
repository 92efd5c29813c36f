// Package analysis implements the local analytics engine for performance
// trace records.
//
// Responsibilities: robust median/MAD outlier scoring of duration series,
// per-column standardization of feature matrices, and deterministic k-means
// clustering with k-means++ seeding.
// Key types: Record, Outlier, ClusterAssignment, StatsSummary.
//
// Every function is a pure computation over its explicit arguments.
// Randomness comes only from a RandStream seeded by the caller, so identical
// inputs and seeds always produce identical outputs. The package performs no
// I/O and keeps no state between calls.
package analysis
