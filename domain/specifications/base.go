package specifications

// Specification encapsulates a single business rule over candidates of
// type T, following the Specification pattern
type Specification[T any] interface {
	// IsSatisfiedBy checks if the specification is satisfied by the candidate
	IsSatisfiedBy(candidate T) bool
}

type andSpecification[T any] struct {
	specs []Specification[T]
}

func (s *andSpecification[T]) IsSatisfiedBy(candidate T) bool {
	for _, spec := range s.specs {
		if !spec.IsSatisfiedBy(candidate) {
			return false
		}
	}
	return true
}

// And combines specifications with AND logic. With no operands it is
// always satisfied.
func And[T any](specs ...Specification[T]) Specification[T] {
	return &andSpecification[T]{specs: specs}
}

type orSpecification[T any] struct {
	specs []Specification[T]
}

func (s *orSpecification[T]) IsSatisfiedBy(candidate T) bool {
	for _, spec := range s.specs {
		if spec.IsSatisfiedBy(candidate) {
			return true
		}
	}
	return false
}

// Or combines specifications with OR logic
func Or[T any](specs ...Specification[T]) Specification[T] {
	return &orSpecification[T]{specs: specs}
}

type notSpecification[T any] struct {
	spec Specification[T]
}

func (s *notSpecification[T]) IsSatisfiedBy(candidate T) bool {
	return !s.spec.IsSatisfiedBy(candidate)
}

// Not inverts a specification
func Not[T any](spec Specification[T]) Specification[T] {
	return &notSpecification[T]{spec: spec}
}

// Predicate adapts a plain function into a specification
type Predicate[T any] func(T) bool

// IsSatisfiedBy checks if the specification is satisfied
func (p Predicate[T]) IsSatisfiedBy(candidate T) bool {
	return p(candidate)
}
