package messages

import "time"

// DirChangedMsg reports that the browsed directory changed on disk and
// the listing should refresh.
type DirChangedMsg struct {
	Dir string
}

// ClearNoticeMsg expires the transient status notice.
type ClearNoticeMsg struct {
	SetAt time.Time
}
