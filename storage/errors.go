package storage

import "errors"

// ErrCapacityExceeded is returned by ConnectEdges when appending would
// overflow a vertex's reserved slab capacity. Callers that want stricter,
// panicking behavior should use MustConnectEdges instead.
var ErrCapacityExceeded = errors.New("storage: edge capacity exceeded")
