package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// ChapterContentKey returns the cache key under which the serving app
// caches a single chapter's content payload.
func (r *CacheKeyStruct) ChapterContentKey(subject, classLevel string, chapterNumber int) string {
	return fmt.Sprintf("chapter:%s:%s:%d:content", subject, classLevel, chapterNumber)
}

// SubjectChapterListKey returns the cache key for a subject's chapter index.
func (r *CacheKeyStruct) SubjectChapterListKey(subject, classLevel string) string {
	return fmt.Sprintf("chapters:%s:%s", subject, classLevel)
}

// TopicQuestionsKey returns the cache key for a topic's question set.
func (r *CacheKeyStruct) TopicQuestionsKey(topicID int) string {
	return fmt.Sprintf("topic:%d:questions", topicID)
}

var CacheKey = NewCacheKeyStruct()
