package domain

import "fmt"

// Question represents a DNS question: a name plus query type and class.
// Unrecognized type or class codes are carried as raw integers.
type Question struct {
	Name  Name
	Type  RRType
	Class RRClass
}

// NewQuestion constructs a Question and validates its fields.
func NewQuestion(name Name, rrtype RRType, class RRClass) (Question, error) {
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
// Unknown type and class codes are deliberately accepted.
func (q Question) Validate() error {
	if q.Name.IsZero() {
		return fmt.Errorf("question name must not be empty")
	}
	return nil
}

// String returns a human-readable summary of the question.
func (q Question) String() string {
	return fmt.Sprintf("%s %s %s", q.Name, q.Class, q.Type)
}
