package wfc

import "errors"

// ErrMaxIterationsReached indicates Run exhausted its iteration budget
// without reaching a fully collapsed grid. Run may be called again with
// the same engine to continue from where it left off.
var ErrMaxIterationsReached = errors.New("wfc: max iterations reached")
