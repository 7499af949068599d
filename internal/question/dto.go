package question

import "github.com/google/uuid"

type CreateQuestionDTO struct {
	Text          string       `json:"text"`
	Type          QuestionType `json:"type"`
	Options       []string     `json:"options"`
	CorrectAnswer string       `json:"correctAnswer"`
	Tags          []string     `json:"tags"`
	Difficulty    Difficulty   `json:"difficulty"`
}

// QuestionView is the question as served to quiz takers. CorrectAnswer is
// only populated when the caller is allowed to see it; the zero value is
// omitted from the JSON.
type QuestionView struct {
	ID            uuid.UUID    `json:"id"`
	Text          string       `json:"text"`
	Type          QuestionType `json:"type"`
	Options       []string     `json:"options"`
	CorrectAnswer string       `json:"correctAnswer,omitempty"`
	Tags          []string     `json:"tags,omitempty"`
	Difficulty    Difficulty   `json:"difficulty"`
}

func NewView(q *Question, includeAnswer bool) *QuestionView {
	if q == nil {
		return nil
	}
	view := &QuestionView{
		ID:         q.ID,
		Text:       q.Text,
		Type:       q.Type,
		Options:    q.Options,
		Tags:       q.Tags,
		Difficulty: q.Difficulty,
	}
	if includeAnswer {
		view.CorrectAnswer = q.CorrectAnswer
	}
	return view
}

type UpdateQuestionDTO struct {
	Text          *string       `json:"text"`
	Type          *QuestionType `json:"type"`
	Options       *[]string     `json:"options"`
	CorrectAnswer *string       `json:"correctAnswer"`
	Tags          *[]string     `json:"tags"`
	Difficulty    *Difficulty   `json:"difficulty"`
}
