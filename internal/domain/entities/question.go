package entities

// QuestionKind identifies a question type.
type QuestionKind string

const (
	QuestionKindMatching QuestionKind = "matching"
)

// Question is the contract shared by all question kinds.
type Question interface {
	Kind() QuestionKind
	Render() string
	Evaluate(correct *Word, user *User) (bool, error)
}

// QuestionState - where a question is in its presentation/answer cycle.
type QuestionState string

const (
	StateUnanswered QuestionState = "unanswered"
	StateAnswered   QuestionState = "answered"
	StateEvaluated  QuestionState = "evaluated" // terminal
)
