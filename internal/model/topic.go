package model

// ContentTopic is a syllabus topic. The pipeline reads topics only to
// partition questions; it never writes them.
type ContentTopic struct {
	ID           int    `json:"id"`
	Subject      string `json:"subject"`
	ClassLevel   string `json:"class_level"`
	TopicName    string `json:"topic_name"`
	NCERTChapter string `json:"ncert_chapter"`
}
