package content

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/neetabhyas/content-pipeline/internal/model"
	"github.com/neetabhyas/content-pipeline/internal/pipeline"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Schema defaults applied when a payload omits the field.
const (
	DefaultDifficultyLevel = 3
	DefaultStudyMinutes    = 180
)

// Normalize validates a chapter payload and shapes it into the canonical
// record consumed by the chapter store. It is a pure transform: omitted
// optional fields become empty (non-nil) lists or schema defaults, and a
// payload with a broken natural key is rejected with pipeline.ErrValidation.
func Normalize(p ChapterPayload) (model.ChapterContent, error) {
	if err := validate.Struct(p); err != nil {
		return model.ChapterContent{}, fmt.Errorf("%w: chapter %q (%s class %s #%d): %v",
			pipeline.ErrValidation, p.ChapterTitle, p.Subject, p.ClassLevel, p.ChapterNumber, err)
	}

	rec := model.ChapterContent{
		Subject:               p.Subject,
		ClassLevel:            p.ClassLevel,
		ChapterNumber:         p.ChapterNumber,
		ChapterTitle:          p.ChapterTitle,
		Introduction:          p.Introduction,
		DetailedNotes:         p.DetailedNotes,
		KeyConcepts:           emptyIfNil(p.KeyConcepts),
		Formulas:              emptyIfNil(p.Formulas),
		LearningObjectives:    emptyIfNil(p.LearningObjectives),
		Prerequisites:         emptyIfNil(p.Prerequisites),
		ImportantTopics:       emptyIfNil(p.ImportantTopics),
		PhetSimulations:       emptyIfNil(p.PhetSimulations),
		ImportantFormulas:     emptyIfNil(p.ImportantFormulas),
		Mnemonics:             emptyIfNil(p.Mnemonics),
		VideoLinks:            emptyIfNil(p.VideoLinks),
		RelatedChapters:       emptyIfNil(p.RelatedChapters),
		NCERTChapterRef:       p.NCERTChapterRef,
		DifficultyLevel:       p.DifficultyLevel,
		EstimatedStudyMinutes: p.EstimatedStudyMinutes,
		Status:                p.Status,
		Visualizations:        emptyIfNil(p.Visualizations),
	}

	if rec.DifficultyLevel == 0 {
		rec.DifficultyLevel = DefaultDifficultyLevel
	}
	if rec.EstimatedStudyMinutes == 0 {
		rec.EstimatedStudyMinutes = DefaultStudyMinutes
	}
	if rec.Status == "" {
		rec.Status = model.ChapterStatusDraft
	}

	return rec, nil
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
