package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"emlak-press/editorial"
	"emlak-press/models"
)

// ErrNotFound is returned by ContentStore implementations when no article
// matches the requested id. ReviseOne maps it to a skip, never a failure.
var ErrNotFound = errors.New("content item not found")

// ContentItem is the store-agnostic view of a revisable article.
type ContentItem struct {
	ID              string
	Slug            string
	Title           string
	Body            string
	Excerpt         string
	MetaDescription string
	Keywords        []string
	RevisionHash    string
	CreatedAt       time.Time
}

// ContentStore abstracts one article collection (news or blog).
type ContentStore interface {
	EntityType() string
	FindByID(ctx context.Context, id string) (*ContentItem, error)
	// FindCandidates returns unpublished, not soft-deleted items, newest
	// first.
	FindCandidates(ctx context.Context) ([]ContentItem, error)
	ApplyRevision(ctx context.Context, id string, after editorial.Snapshot, bodyHash string) error
}

// EventLog appends to the revision audit trail. LogPending must be durable
// before the article update so a crash never loses the trail for an applied
// change.
type EventLog interface {
	LogPending(ctx context.Context, entityType, entityID string, payload models.RevisionPayload) (string, error)
	MarkCompleted(ctx context.Context, eventID string) error
}

// EventPublisher pushes pipeline notifications to an external bus. Optional;
// publish failures never fail a revision.
type EventPublisher interface {
	PublishContentRefined(ctx context.Context, entityType, entityID string, qualityScore int) error
}

// Logger is the minimal logging surface the service needs; satisfied by
// config.Logger().
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Revision eligibility floor: shorter bodies are skipped, never errors.
const defaultMinBodyChars = 200

// RevisionServiceDeps wires the service's collaborators.
type RevisionServiceDeps struct {
	Store     ContentStore
	Events    EventLog
	Auditor   *editorial.Auditor
	Reviser   *editorial.Reviser
	Publisher EventPublisher // optional
	Logger    Logger
	// MinBodyChars overrides the 200-char eligibility floor when positive.
	MinBodyChars int
}

// RevisionService runs the audit -> revise -> persist -> log pipeline for
// one article collection.
type RevisionService struct {
	store     ContentStore
	events    EventLog
	auditor   *editorial.Auditor
	reviser   *editorial.Reviser
	publisher EventPublisher
	log       Logger
	minBody   int
}

func NewRevisionService(deps RevisionServiceDeps) *RevisionService {
	minBody := deps.MinBodyChars
	if minBody <= 0 {
		minBody = defaultMinBodyChars
	}
	return &RevisionService{
		store:     deps.Store,
		events:    deps.Events,
		auditor:   deps.Auditor,
		reviser:   deps.Reviser,
		publisher: deps.Publisher,
		log:       deps.Logger,
		minBody:   minBody,
	}
}

// BatchSummary aggregates one batch run.
type BatchSummary struct {
	Revised int
	Skipped int
	Errors  int
}

// ReviseOne fetches, audits, revises and persists a single article.
// It returns (nil, nil) when the item does not exist, its body is under the
// eligibility floor, or it has not changed since its last revision.
func (s *RevisionService) ReviseOne(ctx context.Context, id string) (*editorial.ContentRevision, error) {
	item, err := s.store.FindByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		s.log.Info("skipping: not found", "entity_type", s.store.EntityType(), "id", id)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch %s %s: %w", s.store.EntityType(), id, err)
	}

	if len([]rune(item.Body)) < s.minBody {
		s.log.Info("skipping: content too short", "id", id, "length", len([]rune(item.Body)))
		return nil, nil
	}

	bodyHash := hashBody(item.Body)
	if item.RevisionHash != "" && item.RevisionHash == bodyHash {
		s.log.Info("skipping: unchanged since last revision", "id", id)
		return nil, nil
	}

	audit := s.auditor.Audit(item.Body, item.Title, item.Keywords)
	rev := s.reviser.Revise(audit, item.Title, item.Body, item.Excerpt, item.MetaDescription)

	payload := models.RevisionPayload{Revision: rev, QualityScore: audit.QualityScore}
	eventID, err := s.events.LogPending(ctx, s.store.EntityType(), id, payload)
	if err != nil {
		return nil, fmt.Errorf("log revision intent for %s: %w", id, err)
	}

	if err := s.store.ApplyRevision(ctx, id, rev.After, hashBody(rev.After.Content)); err != nil {
		// the pending event stays behind as a record of the attempt
		return nil, fmt.Errorf("apply revision to %s %s: %w", s.store.EntityType(), id, err)
	}

	if err := s.events.MarkCompleted(ctx, eventID); err != nil {
		// content is updated and the intent is durable; don't fail the item
		s.log.Warn("revision applied but event not marked completed", "event_id", eventID, "error", err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishContentRefined(ctx, s.store.EntityType(), id, audit.QualityScore); err != nil {
			s.log.Warn("event publish failed", "id", id, "error", err)
		}
	}

	s.log.Info("revision applied",
		"entity_type", s.store.EntityType(),
		"id", id,
		"improvements", len(rev.Improvements),
		"quality_score", audit.QualityScore,
	)
	return &rev, nil
}

// ReviseBatch processes every eligible candidate sequentially. Item failures
// are counted, never propagated; one bad article does not stop the run.
func (s *RevisionService) ReviseBatch(ctx context.Context) (BatchSummary, error) {
	candidates, err := s.store.FindCandidates(ctx)
	if err != nil {
		return BatchSummary{}, fmt.Errorf("select candidates: %w", err)
	}

	var sum BatchSummary
	for i, item := range candidates {
		s.log.Info("processing candidate", "n", i+1, "total", len(candidates), "id", item.ID, "slug", item.Slug)

		rev, err := s.ReviseOne(ctx, item.ID)
		switch {
		case err != nil:
			s.log.Error("revision failed", "id", item.ID, "error", err)
			sum.Errors++
		case rev == nil:
			sum.Skipped++
		default:
			sum.Revised++
		}
	}

	s.log.Info("batch finished",
		"entity_type", s.store.EntityType(),
		"revised", sum.Revised,
		"skipped", sum.Skipped,
		"errors", sum.Errors,
	)
	return sum, nil
}

func hashBody(body string) string {
	h := sha256.Sum256([]byte(body))
	return hex.EncodeToString(h[:])
}
