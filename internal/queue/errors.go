package queue

import "errors"

// ErrQueueEmpty indicates there are no reports in any tier.
var ErrQueueEmpty = errors.New("no reports in the queue")
