// Package align implements pairwise block alignment requests: independent
// x/y axis specifications (range, offset, or undefined), mismatch
// evaluation against the current placement, and vertical-bus detection.
//
// A vertical bus — both axes range-typed with a positive required overlap
// — implies TSV provisioning spanning every intermediate die between the
// two blocks; tsvcluster and cost consult Request.IsVerticalBus to decide
// whether an alignment contributes islands in addition to its mismatch
// cost.
package align
