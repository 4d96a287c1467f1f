// Package ioformat implements the benchmark and solution file formats
// spec.md §6 names as external interfaces: GSRC-style blocks/nets/power/
// pins/alignment-request parsers, and writers for the Corblivar solution
// file, per-die Gnuplot scripts, HotSpot .flp/.ptrace/.lcf files, and the
// tab-separated temperature-schedule log. Grounded on IO.cpp's
// per-file parsing loops (original_source), rendered here as dedicated
// line-oriented scanners returning structured records and error, per
// Go's usual "parse, don't validate inline" idiom.
package ioformat
