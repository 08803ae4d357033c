package core

// Handle is an opaque identifier for a game object owned by an object store.
// The zero Handle never refers to a live object.
type Handle uint64

// Kind classifies game objects.
type Kind int

const (
	KindHead Kind = iota + 1
	KindSegment
	KindFood
)

func (k Kind) String() string {
	switch k {
	case KindHead:
		return "head"
	case KindSegment:
		return "segment"
	case KindFood:
		return "food"
	default:
		return "unknown"
	}
}
