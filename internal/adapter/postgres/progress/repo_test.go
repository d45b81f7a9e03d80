package progress_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/learnlux/learnlux-backend/internal/adapter/postgres/progress"
	"github.com/learnlux/learnlux-backend/internal/adapter/postgres/testhelper"
	"github.com/learnlux/learnlux-backend/internal/domain"
)

func newRepo(t *testing.T) (*progress.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return progress.New(pool), pool
}

func TestRepo_CreateGetUpdate(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	userID := testhelper.SeedUser(t, pool)
	card := testhelper.SeedCard(t, pool, domain.CardKindVocabulary, domain.DifficultyBeginner)

	now := time.Now().UTC().Truncate(time.Microsecond)
	fresh := domain.NewCardProgress(userID, card.Key(), now)
	if err := repo.Create(ctx, fresh); err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	got, err := repo.Get(ctx, userID, card.Key())
	if err != nil {
		t.Fatalf("Get: unexpected error: %v", err)
	}
	if got.EaseFactor != domain.DefaultEaseFactor {
		t.Errorf("ease: got %v, want %v", got.EaseFactor, domain.DefaultEaseFactor)
	}
	if got.Repetitions != 0 || got.IntervalDays != 0 || got.TimesShown != 0 {
		t.Errorf("fresh state should be zeroed, got %+v", got)
	}
	if !got.NextReviewAt.Equal(now) {
		t.Errorf("next review: got %v, want %v", got.NextReviewAt, now)
	}

	got.TimesShown = 3
	got.TimesCorrect = 2
	got.TimesIncorrect = 1
	got.EaseFactor = 2.6
	got.IntervalDays = 6
	got.Repetitions = 2
	got.LastShownAt = &now
	got.NextReviewAt = now.AddDate(0, 0, 6)
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("Update: unexpected error: %v", err)
	}

	updated, err := repo.Get(ctx, userID, card.Key())
	if err != nil {
		t.Fatalf("Get after update: %v", err)
	}
	if updated.EaseFactor != 2.6 || updated.IntervalDays != 6 || updated.Repetitions != 2 {
		t.Errorf("scheduling mismatch: got %+v", updated)
	}
	if updated.TimesShown != 3 || updated.TimesCorrect != 2 || updated.TimesIncorrect != 1 {
		t.Errorf("counters mismatch: got %+v", updated)
	}
	if updated.LastShownAt == nil || !updated.LastShownAt.Equal(now) {
		t.Errorf("last shown: got %v, want %v", updated.LastShownAt, now)
	}
}

func TestRepo_Get_NotFound(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	userID := testhelper.SeedUser(t, pool)
	card := testhelper.SeedCard(t, pool, domain.CardKindVocabulary, domain.DifficultyBeginner)

	_, err := repo.Get(ctx, userID, card.Key())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepo_Update_MissingRow(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	userID := testhelper.SeedUser(t, pool)
	card := testhelper.SeedCard(t, pool, domain.CardKindVocabulary, domain.DifficultyBeginner)

	p := domain.NewCardProgress(userID, card.Key(), time.Now().UTC())
	err := repo.Update(ctx, p)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound when updating a missing row, got %v", err)
	}
}

func TestRepo_Create_Duplicate(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	userID := testhelper.SeedUser(t, pool)
	card := testhelper.SeedCard(t, pool, domain.CardKindVocabulary, domain.DifficultyBeginner)

	p := domain.NewCardProgress(userID, card.Key(), time.Now().UTC())
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	err := repo.Create(ctx, p)
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestRepo_ListDue_OrderingAndCutoff(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	userID := testhelper.SeedUser(t, pool)
	now := time.Now().UTC().Truncate(time.Microsecond)

	cardLater := testhelper.SeedCard(t, pool, domain.CardKindVocabulary, domain.DifficultyBeginner)
	cardEarlier := testhelper.SeedCard(t, pool, domain.CardKindVocabulary, domain.DifficultyBeginner)
	cardFuture := testhelper.SeedCard(t, pool, domain.CardKindVocabulary, domain.DifficultyBeginner)

	testhelper.SeedProgress(t, pool, userID, cardLater.Key(), now.Add(-1*time.Hour))
	testhelper.SeedProgress(t, pool, userID, cardEarlier.Key(), now.Add(-48*time.Hour))
	testhelper.SeedProgress(t, pool, userID, cardFuture.Key(), now.Add(24*time.Hour))

	due, err := repo.ListDue(ctx, userID, now, nil, 20)
	if err != nil {
		t.Fatalf("ListDue: unexpected error: %v", err)
	}

	if len(due) != 2 {
		t.Fatalf("due count: got %d, want 2", len(due))
	}
	if due[0].Card.ID != cardEarlier.ID {
		t.Errorf("earliest due should be first, got %s", due[0].Card.ID)
	}
	if due[1].Card.ID != cardLater.ID {
		t.Errorf("later due should be second, got %s", due[1].Card.ID)
	}

	limited, err := repo.ListDue(ctx, userID, now, nil, 1)
	if err != nil {
		t.Fatalf("ListDue limited: %v", err)
	}
	if len(limited) != 1 || limited[0].Card.ID != cardEarlier.ID {
		t.Errorf("limit should keep the earliest row, got %+v", limited)
	}
}

func TestRepo_ListDue_TopicFilterAndInactive(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	userID := testhelper.SeedUser(t, pool)
	now := time.Now().UTC().Truncate(time.Microsecond)

	topic := testhelper.SeedTopic(t, pool, domain.DifficultyBeginner)
	inTopic := testhelper.SeedCard(t, pool, domain.CardKindVocabulary, domain.DifficultyBeginner, topic.ID)
	outOfTopic := testhelper.SeedCard(t, pool, domain.CardKindVocabulary, domain.DifficultyBeginner)
	deactivated := testhelper.SeedCard(t, pool, domain.CardKindVocabulary, domain.DifficultyBeginner, topic.ID)
	testhelper.DeactivateCard(t, pool, deactivated.ID)

	testhelper.SeedProgress(t, pool, userID, inTopic.Key(), now.Add(-time.Hour))
	testhelper.SeedProgress(t, pool, userID, outOfTopic.Key(), now.Add(-time.Hour))
	testhelper.SeedProgress(t, pool, userID, deactivated.Key(), now.Add(-time.Hour))

	due, err := repo.ListDue(ctx, userID, now, &topic.ID, 20)
	if err != nil {
		t.Fatalf("ListDue: unexpected error: %v", err)
	}
	if len(due) != 1 || due[0].Card.ID != inTopic.ID {
		t.Fatalf("topic filter should keep only the active in-topic card, got %+v", due)
	}

	all, err := repo.ListDue(ctx, userID, now, nil, 20)
	if err != nil {
		t.Fatalf("ListDue unfiltered: %v", err)
	}
	for _, p := range all {
		if p.Card.ID == deactivated.ID {
			t.Error("deactivated card must never surface as due")
		}
	}
}

func TestRepo_ListSeenCardIDs(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	userID := testhelper.SeedUser(t, pool)
	otherUser := testhelper.SeedUser(t, pool)
	now := time.Now().UTC()

	vocab := testhelper.SeedCard(t, pool, domain.CardKindVocabulary, domain.DifficultyBeginner)
	phrase := testhelper.SeedCard(t, pool, domain.CardKindPhrase, domain.DifficultyAdvanced)
	otherCard := testhelper.SeedCard(t, pool, domain.CardKindVocabulary, domain.DifficultyBeginner)

	testhelper.SeedProgress(t, pool, userID, vocab.Key(), now)
	testhelper.SeedProgress(t, pool, userID, phrase.Key(), now)
	testhelper.SeedProgress(t, pool, otherUser, otherCard.Key(), now)

	seen, err := repo.ListSeenCardIDs(ctx, userID, domain.CardKindVocabulary)
	if err != nil {
		t.Fatalf("ListSeenCardIDs: unexpected error: %v", err)
	}

	if len(seen) != 1 || seen[0] != vocab.ID {
		t.Errorf("seen vocabulary: got %v, want [%s]", seen, vocab.ID)
	}

	none, err := repo.ListSeenCardIDs(ctx, otherUser, domain.CardKindPhrase)
	if err != nil {
		t.Fatalf("ListSeenCardIDs other user: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("other user phrase list should be empty, got %v", none)
	}
}
