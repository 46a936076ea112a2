package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-doc-sync/internal/store"
	"github.com/MKhiriev/go-doc-sync/models"
)

// TempIDMarker is contained in the ids of records that exist only locally.
const TempIDMarker = "tempItem"

// IsTempID reports whether id names a record that has no remote document yet.
func IsTempID(id string) bool {
	return strings.Contains(id, TempIDMarker)
}

// Guards decide per operation whether a write may be queued. snapshot maps
// record ids to the records currently held locally. A nil check accepts
// everything.
type Guards struct {
	CheckInsert func(item models.Item, snapshot models.Item) bool
	CheckPatch  func(id string, fields []string, snapshot models.Item) bool
	CheckDelete func(id string, snapshot models.Item) bool
}

// DefaultGuards accepts every insert and rejects patches and deletions of
// records with a temporary id.
func DefaultGuards() Guards {
	return Guards{
		CheckPatch:  func(id string, _ []string, _ models.Item) bool { return !IsTempID(id) },
		CheckDelete: func(id string, _ models.Item) bool { return !IsTempID(id) },
	}
}

// FillableSanitizer keeps only allow-listed fields.
type FillableSanitizer struct{}

func (FillableSanitizer) StripNonFillable(item models.Item, allowlist []string) models.Item {
	if len(allowlist) == 0 {
		return item
	}

	out := make(models.Item, len(allowlist))
	for _, field := range allowlist {
		if v, ok := item[field]; ok {
			out[field] = v
		}
	}
	return out
}

// stripGuarded deletes every denylist field from item in place.
func stripGuarded(item models.Item, denylist []string) models.Item {
	for _, field := range denylist {
		delete(item, field)
	}
	return item
}

// PatchRequest names the records to patch. With no fields the whole
// record is sent.
type PatchRequest struct {
	ID     string
	IDs    []string
	Field  string
	Fields []string
}

func (r PatchRequest) normalize() (ids, fields []string) {
	return appendSingular(r.IDs, r.ID), appendSingular(r.Fields, r.Field)
}

// DeleteRequest names the records to delete.
type DeleteRequest struct {
	ID  string
	IDs []string
}

func (r DeleteRequest) normalize() []string {
	return appendSingular(r.IDs, r.ID)
}

// InsertRequest carries the records to create.
type InsertRequest struct {
	Item  models.Item
	Items []models.Item
}

func (r InsertRequest) normalize() []models.Item {
	items := slices.Clone(r.Items)
	if r.Item != nil {
		items = append(items, r.Item)
	}
	return items
}

func appendSingular(list []string, one string) []string {
	out := slices.Clone(list)
	if one != "" {
		out = append(out, one)
	}
	return out
}

// snapshot reads the records of the session root. A missing root reads as
// empty.
func (s *clientSyncService) snapshot(ctx context.Context) (models.Item, error) {
	v, err := s.local.Get(ctx, s.cfg.StorePath)
	if errors.Is(err, store.ErrPathNotFound) {
		return models.Item{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read local records: %w", err)
	}

	root, ok := models.AsItem(v)
	if !ok {
		return nil, fmt.Errorf("read local records: %w", store.ErrNotContainer)
	}
	return root, nil
}

// prepareForPatch builds the update payload of every id that passes the
// patch guard and has a local record.
func (s *clientSyncService) prepareForPatch(ctx context.Context, ids, fields []string) ([]pendingUpdate, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]pendingUpdate, 0, len(ids))
	for _, id := range ids {
		if s.guards.CheckPatch != nil && !s.guards.CheckPatch(id, fields, snap) {
			s.logger.Debug().Str("func", "prepareForPatch").Str("id", id).Msg("patch rejected by guard")
			continue
		}

		record, ok := models.AsItem(snap[id])
		if !ok {
			s.logger.Warn().Str("func", "prepareForPatch").Str("id", id).Msg("no local record to patch")
			continue
		}

		var payload models.Item
		if len(fields) > 0 {
			payload = make(models.Item, len(fields)+1)
			for _, f := range fields {
				if v, ok := record[f]; ok {
					payload[f] = models.Item{f: v}.DeepCopy()[f]
				}
			}
		} else {
			payload = s.sanitizer.StripNonFillable(record.DeepCopy(), s.cfg.PatchFillables)
		}
		payload = stripGuarded(payload, s.cfg.PatchGuard)
		payload[models.FieldUpdatedAt] = models.ServerTimestamp

		out = append(out, pendingUpdate{id: id, fields: payload})
	}
	return out, nil
}

// prepareForDeletion filters ids through the delete guard.
func (s *clientSyncService) prepareForDeletion(ctx context.Context, ids []string) ([]string, error) {
	if s.guards.CheckDelete == nil {
		return slices.Clone(ids), nil
	}

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !s.guards.CheckDelete(id, snap) {
			s.logger.Debug().Str("func", "prepareForDeletion").Str("id", id).Msg("deletion rejected by guard")
			continue
		}
		out = append(out, id)
	}
	return out, nil
}

// prepareForInsert copies every item, fills in missing defaults, applies the
// insert guard, strips non-fillable and guarded fields and stamps creation
// fields.
func (s *clientSyncService) prepareForInsert(ctx context.Context, items []models.Item) ([]models.Item, error) {
	var snap models.Item
	if s.guards.CheckInsert != nil {
		var err error
		if snap, err = s.snapshot(ctx); err != nil {
			return nil, err
		}
	}

	out := make([]models.Item, 0, len(items))
	for _, item := range items {
		payload := withDefaults(item, s.defaults)

		if s.guards.CheckInsert != nil && !s.guards.CheckInsert(payload, snap) {
			s.logger.Debug().Str("func", "prepareForInsert").Str("id", payload.ID()).Msg("insert rejected by guard")
			continue
		}

		payload = s.sanitizer.StripNonFillable(payload, s.cfg.InsertFillables)
		payload = stripGuarded(payload, s.cfg.InsertGuard)
		payload[models.FieldCreatedAt] = models.ServerTimestamp
		payload[models.FieldCreatedBy] = s.auth.CurrentUserID()

		out = append(out, payload)
	}
	return out, nil
}

// withDefaults returns a deep copy of item in which every key of defaults the
// item lacks is set. Keys present in item win even when their value is zero.
func withDefaults(item, defaults models.Item) models.Item {
	out := defaults.DeepCopy()
	if out == nil {
		out = make(models.Item, len(item))
	}
	for k, v := range item.DeepCopy() {
		out[k] = v
	}
	return out
}
