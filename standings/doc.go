// Package standings derives per-conference standings from a snapshot of
// groups and matches.
//
// The pipeline has three stages: Aggregate folds scored regular-season
// matches into one TeamRecord per grouped team, Rank orders the records of a
// conference, and Seed marks the top of each ranked conference as playoff
// qualified. Compute runs all three. Nothing here performs I/O or keeps
// state between calls, so standings are recomputed on every read.
package standings
