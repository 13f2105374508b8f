package model

// CurationStatus tracks whether a question still carries auto-generated
// placeholder text or has been replaced with curated content.
type CurationStatus string

const (
	CurationPlaceholder CurationStatus = "placeholder"
	CurationCurated     CurationStatus = "curated"
)

// Question is a single practice question belonging to a topic.
type Question struct {
	ID              int            `json:"id"`
	TopicID         int            `json:"topic_id"`
	QuestionText    string         `json:"question_text"`
	Options         []Option       `json:"options"`
	CorrectAnswer   string         `json:"correct_answer"`
	SolutionDetail  string         `json:"solution_detail"`
	SolutionSteps   []string       `json:"solution_steps"`
	DifficultyLevel int            `json:"difficulty_level"`
	CurationStatus  CurationStatus `json:"curation_status"`
}

// Option is one answer choice. ID is the option letter (A, B, C, ...)
// and CorrectAnswer on the question references exactly one of these.
type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}
