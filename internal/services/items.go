// Package services holds the item business logic between the HTTP layer and
// the key-value store.
package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/trovehq/trove/internal/model"
	"github.com/trovehq/trove/internal/store"
)

// ItemService orchestrates item use cases over a shared KV handle.
type ItemService struct {
	kv  store.KV
	log zerolog.Logger

	// injectable for tests
	now   func() time.Time
	newID func() string
}

func NewItemService(kv store.KV, log zerolog.Logger) *ItemService {
	return &ItemService{
		kv:    kv,
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// List decodes every stored record. Undecodable records are skipped with a
// warning rather than failing the whole listing. Order is unspecified.
func (s *ItemService) List(ctx context.Context) ([]*model.Item, error) {
	items := []*model.Item{}
	err := s.kv.Scan(ctx, func(key string, value []byte) error {
		it, err := decodeItem(value)
		if err != nil {
			s.log.Warn().Str("id", key).Err(err).Msg("skipping undecodable record")
			return nil
		}
		items = append(items, it)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches a single item. A record that exists but does not decode is
// reported as ErrCorruptRecord, not ErrNotFound.
func (s *ItemService) Get(ctx context.Context, id string) (*model.Item, error) {
	b, err := s.kv.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return decodeItem(b)
}

// Create assigns the id and creation timestamp and persists the item with a
// single store write. A nil tag list is stored as an empty one.
func (s *ItemService) Create(ctx context.Context, req *model.CreateItemRequest) (*model.Item, error) {
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	it := &model.Item{
		ID:           s.newID(),
		Type:         req.Type,
		Title:        req.Title,
		Content:      req.Content,
		Tags:         tags,
		CodeLocation: req.CodeLocation,
		CreatedAt:    s.now().UnixMilli(),
		Completed:    req.Completed,
		DueDate:      req.DueDate,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
	}
	return it, s.persist(ctx, it)
}

// Update merges the patch into the stored item: only fields present in the
// patch overwrite, and id/created_at are never patchable. The read-modify-write
// is not atomic against a concurrent update of the same id; the second write
// wins. An update target that fails to decode is treated as not found rather
// than rebuilt from a blank record.
func (s *ItemService) Update(ctx context.Context, id string, patch *model.ItemPatch) (*model.Item, error) {
	b, err := s.kv.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	it, err := decodeItem(b)
	if err != nil {
		s.log.Warn().Str("id", id).Err(err).Msg("update target undecodable")
		return nil, model.ErrNotFound
	}

	applyPatch(it, patch)

	return it, s.persist(ctx, it)
}

// Delete removes the record outright; there is no tombstone. Deleting an
// absent id reports ErrNotFound, including on repeat deletes.
func (s *ItemService) Delete(ctx context.Context, id string) error {
	return s.kv.Delete(ctx, id)
}

// Filter scans all records and keeps those matching both predicates: the type
// filter compares case-insensitively when set, and every requested tag must be
// present (case-sensitive) in the item's tag list. Empty filters match all.
func (s *ItemService) Filter(ctx context.Context, typ string, tags []string) ([]*model.Item, error) {
	items := []*model.Item{}
	err := s.kv.Scan(ctx, func(key string, value []byte) error {
		it, err := decodeItem(value)
		if err != nil {
			s.log.Warn().Str("id", key).Err(err).Msg("skipping undecodable record")
			return nil
		}
		if matchesFilter(it, typ, tags) {
			items = append(items, it)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Capture parses a block of free text into a structured item and persists it
// through the same id/timestamp assignment as Create.
func (s *ItemService) Capture(ctx context.Context, text string) (*model.Item, error) {
	return s.Create(ctx, parseCapture(text))
}

func (s *ItemService) persist(ctx context.Context, it *model.Item) error {
	b, err := encodeItem(it)
	if err != nil {
		return err
	}
	return s.kv.Put(ctx, it.ID, b)
}

func applyPatch(it *model.Item, patch *model.ItemPatch) {
	if patch.Type != nil {
		it.Type = *patch.Type
	}
	if patch.Title != nil {
		it.Title = *patch.Title
	}
	if patch.Content != nil {
		it.Content = patch.Content
	}
	if patch.Tags != nil {
		it.Tags = patch.Tags
	}
	if patch.CodeLocation != nil {
		it.CodeLocation = patch.CodeLocation
	}
	if patch.Completed != nil {
		it.Completed = patch.Completed
	}
	if patch.DueDate != nil {
		it.DueDate = patch.DueDate
	}
	if patch.StartTime != nil {
		it.StartTime = patch.StartTime
	}
	if patch.EndTime != nil {
		it.EndTime = patch.EndTime
	}
}

func matchesFilter(it *model.Item, typ string, tags []string) bool {
	if typ != "" && !strings.EqualFold(it.Type, typ) {
		return false
	}
	for _, want := range tags {
		if !containsTag(it.Tags, want) {
			return false
		}
	}
	return true
}

func containsTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}
