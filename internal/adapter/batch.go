package adapter

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-doc-sync/models"
)

// commitFunc applies the operations of a batch atomically.
type commitFunc func(ctx context.Context, ops []models.BatchOp) error

// writeBatch is the [Batch] shared by the store bindings: it records
// operations and hands them to commit once.
type writeBatch struct {
	commit commitFunc

	mu        sync.Mutex
	ops       []models.BatchOp
	committed bool
}

func newWriteBatch(commit commitFunc) *writeBatch {
	return &writeBatch{commit: commit}
}

func (b *writeBatch) Update(ref models.DocRef, fields models.Item) {
	b.add(models.BatchOp{Kind: models.BatchUpdate, Ref: ref, Data: fields.DeepCopy()})
}

func (b *writeBatch) Delete(ref models.DocRef) {
	b.add(models.BatchOp{Kind: models.BatchDelete, Ref: ref})
}

func (b *writeBatch) Set(ref models.DocRef, doc models.Item) {
	b.add(models.BatchOp{Kind: models.BatchSet, Ref: ref, Data: doc.DeepCopy()})
}

func (b *writeBatch) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.ops)
}

func (b *writeBatch) Commit(ctx context.Context) error {
	b.mu.Lock()
	if b.committed {
		b.mu.Unlock()
		return ErrBatchCommitted
	}
	b.committed = true
	ops := b.ops
	b.mu.Unlock()

	return b.commit(ctx, ops)
}

func (b *writeBatch) add(op models.BatchOp) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ops = append(b.ops, op)
}
