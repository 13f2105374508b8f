package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/neetabhyas/content-pipeline/internal/config"
	"github.com/neetabhyas/content-pipeline/internal/content"
	"github.com/neetabhyas/content-pipeline/internal/model"
	"github.com/neetabhyas/content-pipeline/internal/pipeline"
	"github.com/rs/zerolog"
)

// fakeChapterStore mimics the natural-key upsert semantics of the real
// repository: one row per (subject, classLevel, chapterNumber).
type fakeChapterStore struct {
	rows   map[string]*model.ChapterContent
	nextID int
	fail   error
}

func newFakeChapterStore() *fakeChapterStore {
	return &fakeChapterStore{rows: make(map[string]*model.ChapterContent)}
}

func naturalKey(c *model.ChapterContent) string {
	return fmt.Sprintf("%s|%s|%d", c.Subject, c.ClassLevel, c.ChapterNumber)
}

func (s *fakeChapterStore) Upsert(_ context.Context, c *model.ChapterContent) error {
	if s.fail != nil {
		return s.fail
	}
	key := naturalKey(c)
	if existing, ok := s.rows[key]; ok {
		c.ID = existing.ID
		c.CreatedAt = existing.CreatedAt
	} else {
		s.nextID++
		c.ID = s.nextID
		c.CreatedAt = time.Now()
	}
	c.UpdatedAt = time.Now()
	copied := *c
	s.rows[key] = &copied
	return nil
}

type fakeCache struct {
	keys []string
	fail error
}

func (c *fakeCache) Invalidate(_ context.Context, keys ...string) error {
	if c.fail != nil {
		return c.fail
	}
	c.keys = append(c.keys, keys...)
	return nil
}

func physicsChapter(title string) content.ChapterPayload {
	return content.ChapterPayload{
		Subject:       "Physics",
		ClassLevel:    "12",
		ChapterNumber: 7,
		ChapterTitle:  title,
	}
}

func TestSeed_UpsertTwiceKeepsOneRow(t *testing.T) {
	store := newFakeChapterStore()
	svc := NewChapterService(store, nil, zerolog.Nop())

	if _, err := svc.Seed(context.Background(), []content.ChapterPayload{physicsChapter("Alternating Current")}); err != nil {
		t.Fatalf("first Seed() error = %v", err)
	}
	if _, err := svc.Seed(context.Background(), []content.ChapterPayload{physicsChapter("AC Circuits")}); err != nil {
		t.Fatalf("second Seed() error = %v", err)
	}

	if len(store.rows) != 1 {
		t.Fatalf("stored rows = %d, want 1", len(store.rows))
	}
	for _, row := range store.rows {
		if row.ChapterTitle != "AC Circuits" {
			t.Errorf("ChapterTitle = %q, want second call's value", row.ChapterTitle)
		}
		if row.ID != 1 {
			t.Errorf("surrogate id = %d, want original 1", row.ID)
		}
	}
}

func TestSeed_InvalidatesCacheKeys(t *testing.T) {
	store := newFakeChapterStore()
	cache := &fakeCache{}
	svc := NewChapterService(store, cache, zerolog.Nop())

	if _, err := svc.Seed(context.Background(), []content.ChapterPayload{physicsChapter("Alternating Current")}); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	wantContent := config.CacheKey.ChapterContentKey("Physics", "12", 7)
	wantList := config.CacheKey.SubjectChapterListKey("Physics", "12")
	if len(cache.keys) != 2 || cache.keys[0] != wantContent || cache.keys[1] != wantList {
		t.Errorf("invalidated keys = %v, want [%s %s]", cache.keys, wantContent, wantList)
	}
}

func TestSeed_CacheFailureDoesNotFailRun(t *testing.T) {
	store := newFakeChapterStore()
	cache := &fakeCache{fail: errors.New("redis down")}
	svc := NewChapterService(store, cache, zerolog.Nop())

	result, err := svc.Seed(context.Background(), []content.ChapterPayload{physicsChapter("Alternating Current")})
	if err != nil {
		t.Fatalf("Seed() error = %v, cache failure must not abort", err)
	}
	if result.Seeded != 1 {
		t.Errorf("Seeded = %d, want 1", result.Seeded)
	}
}

func TestSeed_ValidationFailsBeforeAnyWrite(t *testing.T) {
	store := newFakeChapterStore()
	svc := NewChapterService(store, nil, zerolog.Nop())

	bad := physicsChapter("Broken")
	bad.ChapterNumber = 0

	_, err := svc.Seed(context.Background(), []content.ChapterPayload{bad})
	if err == nil {
		t.Fatal("Seed() expected validation error")
	}
	if !errors.Is(err, pipeline.ErrValidation) {
		t.Errorf("error = %v, want pipeline.ErrValidation", err)
	}
	if len(store.rows) != 0 {
		t.Errorf("stored rows = %d, want 0 (fail before write)", len(store.rows))
	}
}

func TestSeed_StoreErrorPropagates(t *testing.T) {
	store := newFakeChapterStore()
	store.fail = errors.New("unique constraint broken upstream")
	svc := NewChapterService(store, nil, zerolog.Nop())

	_, err := svc.Seed(context.Background(), []content.ChapterPayload{physicsChapter("Alternating Current")})
	if err == nil {
		t.Fatal("Seed() expected store error to propagate")
	}
}

func TestSeed_PartialProgressSurvivesFailure(t *testing.T) {
	store := newFakeChapterStore()
	svc := NewChapterService(store, nil, zerolog.Nop())

	good := physicsChapter("Alternating Current")
	bad := physicsChapter("Broken")
	bad.Subject = "Astrology"

	_, err := svc.Seed(context.Background(), []content.ChapterPayload{good, bad})
	if err == nil {
		t.Fatal("Seed() expected error on second payload")
	}
	if len(store.rows) != 1 {
		t.Errorf("stored rows = %d, want 1 (first payload committed)", len(store.rows))
	}
}
