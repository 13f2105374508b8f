package model

import "time"

// Chapter subjects recognized by the pipeline.
const (
	SubjectPhysics   = "Physics"
	SubjectChemistry = "Chemistry"
	SubjectBiology   = "Biology"
	SubjectBotany    = "Botany"
	SubjectZoology   = "Zoology"
)

// Chapter publication states.
const (
	ChapterStatusDraft     = "draft"
	ChapterStatusPublished = "published"
)

// ChapterContent is one chapter's study material. The triple
// (Subject, ClassLevel, ChapterNumber) is the natural key; ID is a
// surrogate generated by the store.
type ChapterContent struct {
	ID                    int              `json:"id"`
	Subject               string           `json:"subject"`
	ClassLevel            string           `json:"class_level"`
	ChapterNumber         int              `json:"chapter_number"`
	ChapterTitle          string           `json:"chapter_title"`
	Introduction          string           `json:"introduction"`
	DetailedNotes         string           `json:"detailed_notes"`
	KeyConcepts           []KeyConcept     `json:"key_concepts"`
	Formulas              []string         `json:"formulas"`
	LearningObjectives    []string         `json:"learning_objectives"`
	Prerequisites         []string         `json:"prerequisites"`
	ImportantTopics       []string         `json:"important_topics"`
	PhetSimulations       []PhetSimulation `json:"phet_simulations"`
	ImportantFormulas     []NamedFormula   `json:"important_formulas"`
	Mnemonics             []Mnemonic       `json:"mnemonics"`
	VideoLinks            []VideoLink      `json:"video_links"`
	RelatedChapters       []RelatedChapter `json:"related_chapters"`
	NCERTChapterRef       string           `json:"ncert_chapter_ref"`
	DifficultyLevel       int              `json:"difficulty_level"`
	EstimatedStudyMinutes int              `json:"estimated_study_minutes"`
	Status                string           `json:"status"`
	Visualizations        []Visualization  `json:"visualizations_data"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at"`
}

// KeyConcept is a titled concept within a chapter, optionally with a formula.
type KeyConcept struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Formula     string `json:"formula,omitempty" yaml:"formula,omitempty"`
}

// Visualization describes an interactive figure rendered by the client.
type Visualization struct {
	Type        string         `json:"type" yaml:"type"`
	Title       string         `json:"title" yaml:"title"`
	Description string         `json:"description" yaml:"description"`
	Config      map[string]any `json:"config,omitempty" yaml:"config,omitempty"`
}

// PhetSimulation links an external PhET simulation relevant to a chapter.
type PhetSimulation struct {
	Title       string `json:"title" yaml:"title"`
	URL         string `json:"url" yaml:"url"`
	Description string `json:"description" yaml:"description"`
}

// NamedFormula is a formula with its variable legend.
type NamedFormula struct {
	Name      string `json:"name" yaml:"name"`
	Formula   string `json:"formula" yaml:"formula"`
	Variables string `json:"variables" yaml:"variables"`
	Unit      string `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// Mnemonic is a memory aid for a topic.
type Mnemonic struct {
	Topic    string `json:"topic" yaml:"topic"`
	Mnemonic string `json:"mnemonic" yaml:"mnemonic"`
}

// VideoLink points at an external lecture video.
type VideoLink struct {
	Title    string `json:"title" yaml:"title"`
	URL      string `json:"url" yaml:"url"`
	Duration string `json:"duration,omitempty" yaml:"duration,omitempty"`
	Source   string `json:"source" yaml:"source"`
}

// RelatedChapter cross-references another chapter by its natural key.
type RelatedChapter struct {
	Subject       string `json:"subject" yaml:"subject"`
	ClassLevel    string `json:"class_level" yaml:"class_level"`
	ChapterNumber int    `json:"chapter_number" yaml:"chapter_number"`
	Title         string `json:"title" yaml:"title"`
}
