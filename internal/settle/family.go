package settle

// Member is one settler: identity, grid position and sibling links.
type Member struct {
	ID   int
	Name string
	Age  int
	X, Y int
	// Siblings holds the ids of every other member of the same family.
	Siblings []int
}

// Family is a cluster of members anchored near one grid location. Families
// are immutable once placement returns them.
type Family struct {
	AnchorX, AnchorY int
	Members          []Member
}
