package pathfind

import "errors"

// ErrNoPath is returned when the heap is exhausted without ever reaching
// goal.
var ErrNoPath = errors.New("pathfind: no path found")
