package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"talentsift/resume-screener/internal/repositories"
)

// Worker runs resume ingestion in the background. Uploads enqueue the
// candidate ID; a poller picks up anything still queued (e.g. after a
// restart) so no resume is lost.
type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueResume(candidateID uuid.UUID)
}

type worker struct {
	candRepo      repositories.CandidateRepository
	ingestService IngestService
	jobQueue      chan uuid.UUID
	concurrency   int
	pollInterval  time.Duration
	log           *zap.Logger
	wg            sync.WaitGroup
	stopChan      chan struct{}
}

func NewWorker(
	candRepo repositories.CandidateRepository,
	ingestService IngestService,
	concurrency int,
	pollInterval time.Duration,
	log *zap.Logger,
) Worker {
	return &worker{
		candRepo:      candRepo,
		ingestService: ingestService,
		jobQueue:      make(chan uuid.UUID, 100),
		concurrency:   concurrency,
		pollInterval:  pollInterval,
		log:           log,
		stopChan:      make(chan struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	w.log.Info("starting ingestion worker", zap.Int("concurrency", w.concurrency))

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processResumes(ctx, i+1)
	}

	w.wg.Add(1)
	go w.pollPendingResumes(ctx)
}

// Stop implements Worker.
func (w *worker) Stop() {
	w.log.Info("stopping ingestion worker")
	close(w.stopChan)
	w.wg.Wait()
}

// EnqueueResume implements Worker.
func (w *worker) EnqueueResume(candidateID uuid.UUID) {
	select {
	case w.jobQueue <- candidateID:
		w.log.Debug("resume enqueued", zap.String("candidate_id", candidateID.String()))
	case <-w.stopChan:
		w.log.Warn("worker stopped, cannot enqueue resume",
			zap.String("candidate_id", candidateID.String()))
	}
}

func (w *worker) processResumes(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			w.log.Debug("ingestion worker stopped", zap.Int("worker_id", workerID))
			return
		case candidateID := <-w.jobQueue:
			if err := w.ingestService.IngestResume(ctx, candidateID); err != nil {
				w.log.Error("resume ingestion failed",
					zap.Int("worker_id", workerID),
					zap.String("candidate_id", candidateID.String()),
					zap.Error(err))
			}
		}
	}
}

func (w *worker) pollPendingResumes(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			return
		case <-ticker.C:
			pending, err := w.candRepo.FindPending(10)
			if err != nil {
				w.log.Warn("failed to fetch pending resumes", zap.Error(err))
				continue
			}

			for _, candidate := range pending {
				w.EnqueueResume(candidate.ID)
			}
		}
	}
}
