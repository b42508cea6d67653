package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type recordingIngest struct {
	mu  sync.Mutex
	ids []uuid.UUID
}

func (r *recordingIngest) IngestResume(ctx context.Context, candidateID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, candidateID)
	return nil
}

func (r *recordingIngest) processed() []uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]uuid.UUID(nil), r.ids...)
}

func TestWorker_ProcessesEnqueuedResumes(t *testing.T) {
	ingest := &recordingIngest{}
	w := NewWorker(&fakeCandidateRepo{}, ingest, 2, time.Hour, zap.NewNop())

	w.Start(context.Background())

	first := uuid.New()
	second := uuid.New()
	w.EnqueueResume(first)
	w.EnqueueResume(second)

	assert.Eventually(t, func() bool {
		return len(ingest.processed()) == 2
	}, 2*time.Second, 10*time.Millisecond)

	w.Stop()

	ids := ingest.processed()
	assert.Contains(t, ids, first)
	assert.Contains(t, ids, second)
}
