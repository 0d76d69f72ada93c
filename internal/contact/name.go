package contact

// Name is a contact's name. It carries no validation and is the key
// under which a Record is stored in a directory.
type Name struct {
	value string
}

// NewName wraps value as a Name.
func NewName(value string) Name {
	return Name{value: value}
}

// String returns the name text.
func (n Name) String() string { return n.value }
