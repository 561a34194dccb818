package domain

import "fmt"

// Question represents one entry of the DNS question section.
// The name is held in presentation form (dot-joined labels, no
// trailing dot); the root name is the empty string.
type Question struct {
	Name  string
	Type  RRType
	Class RRClass
}

// NewQuestion constructs a Question and validates its fields.
func NewQuestion(name string, rrtype RRType, class RRClass) (Question, error) {
	q := Question{
		Name:  name,
		Type:  rrtype,
		Class: class,
	}
	if err := q.Validate(); err != nil {
		return Question{}, err
	}
	return q, nil
}

// Validate checks whether the Question fields are structurally valid.
func (q Question) Validate() error {
	if q.Name == "" {
		return fmt.Errorf("question name must not be empty")
	}
	if !q.Class.IsValid() {
		return fmt.Errorf("unsupported RRClass: %d", q.Class)
	}
	return nil
}

// String returns the question in zone-file order: name, class, type.
func (q Question) String() string {
	return fmt.Sprintf("%s %s %s", q.Name, q.Class, q.Type)
}
