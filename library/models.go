package library

// Status is the availability state of a book. Only the two enumerated
// values may ever be persisted.
type Status string

const (
	StatusAvailable  Status = "available"
	StatusCheckedOut Status = "checked_out"
)

// Valid reports whether s is one of the enumerated status values.
func (s Status) Valid() bool {
	return s == StatusAvailable || s == StatusCheckedOut
}

func (s Status) String() string { return string(s) }

// Book represents one catalog entry. The id is assigned by the store at
// creation time and never changes; status is the only field the store
// mutates afterwards.
type Book struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
	Status Status `json:"status"`
}
