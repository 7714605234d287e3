package campaign

// Category is an entry of the backend's category list, used to populate the
// category filter.
type Category struct {
	ID   int64
	Name string
}
