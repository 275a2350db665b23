package generic

// Void is the zero-size value type used where only presence matters.
type Void struct{}

func NewVoid() Void {
	return Void{}
}

type Set[T comparable] interface {
	Add(item T) bool
	Contains(items ...T) bool
}

func NewSet[T comparable](items ...T) Set[T] {
	res := make(set[T], len(items))
	for _, item := range items {
		res.Add(item)
	}
	return &res
}

type set[T comparable] map[T]Void

func (s *set[T]) Add(item T) bool {
	if _, found := (*s)[item]; found {
		return false
	}
	(*s)[item] = NewVoid()
	return true
}

// Contains returns true only if every item is in the set.
func (s *set[T]) Contains(items ...T) bool {
	for _, item := range items {
		if _, found := (*s)[item]; !found {
			return false
		}
	}
	return true
}
