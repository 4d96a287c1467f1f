package ops

import "errors"

// ErrNoCandidate is returned by callers wrapping an operator call when the
// operator reported (OpRecord{}, false): no eligible candidate existed for
// this Kind given the current CBL and the immune set in effect. Per
// spec.md §4.3 this is not counted as an inner SA step; the caller should
// simply pick another operator or retry.
var ErrNoCandidate = errors.New("ops: no eligible candidate for operator")
