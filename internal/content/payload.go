// Package content shapes authored chapter payloads into the canonical
// stored representation. Payloads arrive as YAML files written by content
// authors; the normalizer validates the natural key and fills defaults.
package content

import "github.com/neetabhyas/content-pipeline/internal/model"

// ChapterPayload is a partially-specified chapter as authored on disk.
// Only the natural key and title are mandatory; everything else defaults.
type ChapterPayload struct {
	Subject               string                 `yaml:"subject" validate:"required,oneof=Physics Chemistry Biology Botany Zoology"`
	ClassLevel            string                 `yaml:"class_level" validate:"required,oneof=11 12"`
	ChapterNumber         int                    `yaml:"chapter_number" validate:"required,gt=0"`
	ChapterTitle          string                 `yaml:"chapter_title" validate:"required,max=200"`
	Introduction          string                 `yaml:"introduction"`
	DetailedNotes         string                 `yaml:"detailed_notes"`
	KeyConcepts           []model.KeyConcept     `yaml:"key_concepts"`
	Formulas              []string               `yaml:"formulas"`
	LearningObjectives    []string               `yaml:"learning_objectives"`
	Prerequisites         []string               `yaml:"prerequisites"`
	ImportantTopics       []string               `yaml:"important_topics"`
	PhetSimulations       []model.PhetSimulation `yaml:"phet_simulations"`
	ImportantFormulas     []model.NamedFormula   `yaml:"important_formulas"`
	Mnemonics             []model.Mnemonic       `yaml:"mnemonics"`
	VideoLinks            []model.VideoLink      `yaml:"video_links"`
	RelatedChapters       []model.RelatedChapter `yaml:"related_chapters"`
	NCERTChapterRef       string                 `yaml:"ncert_chapter_ref" validate:"max=100"`
	DifficultyLevel       int                    `yaml:"difficulty_level" validate:"omitempty,min=1,max=5"`
	EstimatedStudyMinutes int                    `yaml:"estimated_study_minutes" validate:"omitempty,gt=0"`
	Status                string                 `yaml:"status" validate:"omitempty,oneof=draft published"`
	Visualizations        []model.Visualization  `yaml:"visualizations"`
}
