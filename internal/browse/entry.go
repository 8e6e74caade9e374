// Package browse implements the directory navigation core: the listing
// model, the back-history stack, and the browser state machine that ties
// them to workspace validation. It knows nothing about terminals; the TUI
// layer feeds it events and renders the snapshots it produces.
package browse

// RowKind tags a listing row. Navigation rows (Back, Up) and the error
// row are synthetic; Dir and File rows map to real filesystem entries.
type RowKind int

const (
	KindBack RowKind = iota
	KindUp
	KindDir
	KindFile
	KindError
)

// Entry is one row of a directory listing. Kind is fixed at creation.
// Detail holds the human-readable size for files, the child count for
// directories, or the message for error rows.
type Entry struct {
	Kind   RowKind
	Name   string
	Detail string
}

// Listing is one directory's contents at one point in time. Ordering is
// fixed: navigation rows first, then directories, then files, each group
// sorted case-insensitively by name. A Listing is never edited in place;
// re-listing produces a new one.
type Listing []Entry

// BackRow returns the synthetic "go back" row.
func BackRow() Entry {
	return Entry{Kind: KindBack, Name: "Back"}
}

// UpRow returns the synthetic "go up" row.
func UpRow() Entry {
	return Entry{Kind: KindUp, Name: "Up"}
}

// ErrorRow returns a synthetic error row carrying a message.
func ErrorRow(msg string) Entry {
	return Entry{Kind: KindError, Name: msg}
}

// IsNav reports whether the entry is a synthetic navigation row.
func (e Entry) IsNav() bool {
	return e.Kind == KindBack || e.Kind == KindUp
}
