package curation

import (
	"strings"

	"github.com/neetabhyas/content-pipeline/internal/model"
)

// Template is one curated question. Options are plain answer texts;
// the writer maps them to lettered options (A, B, C, ...) on write.
type Template struct {
	Text          string
	Options       []string
	CorrectAnswer string
	Explanation   string
	Steps         []string
}

// Bucket is a named group of templates for one topic category.
type Bucket struct {
	Name      string
	Templates []Template
}

// bucketRule maps topic-name keywords to a bucket. Rules are checked in
// order and the first hit wins, so rule order is part of the contract.
type bucketRule struct {
	keywords []string
	bucket   *Bucket
}

var biologyRules = []bucketRule{
	{[]string{"cell", "structure"}, &cellBiologyBucket},
	{[]string{"genetic", "inheritance", "dna"}, &geneticsBucket},
	{[]string{"physiology", "human", "circulation", "respiration"}, &humanPhysiologyBucket},
	{[]string{"plant", "photosynthesis", "transpiration"}, &plantPhysiologyBucket},
	{[]string{"ecology", "ecosystem", "environment"}, &ecologyBucket},
	{[]string{"evolution", "origin"}, &evolutionBucket},
}

// SelectBucket returns the best-fit template bucket for a topic.
// Physics and Chemistry each have a single general bucket; biology
// subjects are routed by keyword with cell biology as the fallback.
// The result depends only on the inputs and the authored rule order.
func SelectBucket(subject, topicName string) Bucket {
	switch subject {
	case model.SubjectPhysics:
		return physicsBucket
	case model.SubjectChemistry:
		return chemistryBucket
	}

	topicLower := strings.ToLower(topicName)
	for _, r := range biologyRules {
		for _, kw := range r.keywords {
			if strings.Contains(topicLower, kw) {
				return *r.bucket
			}
		}
	}
	return cellBiologyBucket
}
