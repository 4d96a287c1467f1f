// Package contiguity implements the post-placement sanity pass from
// ContiguityAnalysis.cpp: for a net spanning multiple dies, the bounding
// box of its footprint on one layer must overlap, on both axes, the
// footprint on the layer immediately above so a TSV column can physically
// connect them. The original left its horizontal-segment branch
// unfinished (it only collected candidate boundaries and never compared
// them); here the horizontal check is the vertical one's axis-swapped
// mirror, so both are implemented symmetrically.
//
// This is diagnostic, not a hard placement constraint: it does not feed
// the cost function, only the CLI's validate subcommand and a warning
// logged at the end of an annealing run.
package contiguity
