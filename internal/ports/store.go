package ports

// Store is the per-run set of URLs already scheduled for probing.
type Store interface {
	MarkSeen(url string) bool // returns true if it was newly marked
	SeenCount() int
	All() []string
}
