package models

// Ref is an id-only reference to another entity. Membership collections
// (likes, followers, following) carry refs rather than embedded entities.
type Ref struct {
	ID uint `json:"id"`
}

// Refs is an ordered collection of id references.
type Refs []Ref

// Contains reports whether id is a member of the collection. Views derive
// liked/following indicators from this test instead of keeping local flags,
// so the indicator can never drift from what the server last returned.
func (r Refs) Contains(id uint) bool {
	for _, ref := range r {
		if ref.ID == id {
			return true
		}
	}
	return false
}

// IDs returns the raw ids in collection order.
func (r Refs) IDs() []uint {
	ids := make([]uint, len(r))
	for i, ref := range r {
		ids[i] = ref.ID
	}
	return ids
}
