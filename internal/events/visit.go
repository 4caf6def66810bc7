package events

import "time"

// VisitStart is emitted when a schema directive walk begins.
type VisitStart struct {
	WalkID     int64
	Types      int
	Directives int
}

// DirectiveVisit is emitted for every directive application dispatched to a
// visitor, in traversal order.
type DirectiveVisit struct {
	WalkID    int64
	Directive string
	Location  string
	Node      string
}

// VisitFinish is emitted when the walk completes or aborts.
type VisitFinish struct {
	WalkID       int64
	Applications int
	Err          error
	Duration     time.Duration
}
