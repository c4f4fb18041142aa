package service

import (
	"Songboard/internal/repository"
	"context"
	"errors"
	"testing"
)

func newRatingService(t *testing.T) (RatingService, SongService) {
	t.Helper()
	db := openTestDB(t)
	seedSong(t, db, 1, "Alpha")

	songRepo := repository.NewSongRepo(db)
	ratingRepo := repository.NewSongRatingRepo(db)
	return NewRatingService(songRepo, ratingRepo), NewSongService(songRepo)
}

func TestRatingService_RateSong(t *testing.T) {
	tests := []struct {
		name      string
		songIndex uint64
		rating    int
		wantErr   error
	}{
		{name: "rating below range", songIndex: 1, rating: 0, wantErr: ErrRatingOutOfRange},
		{name: "rating above range", songIndex: 1, rating: 6, wantErr: ErrRatingOutOfRange},
		{name: "unknown song", songIndex: 999999, rating: 5, wantErr: ErrSongNotFound},
		{name: "lowest valid rating", songIndex: 1, rating: 1},
		{name: "highest valid rating", songIndex: 1, rating: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newRatingService(t)

			got, err := svc.RateSong(context.Background(), tt.songIndex, tt.rating)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ID == 0 {
				t.Fatalf("persisted rating has no id: %+v", got)
			}
			if got.SongIndex != tt.songIndex || got.Rating != tt.rating {
				t.Fatalf("persisted rating fields wrong: %+v", got)
			}
			if got.CreatedAt.IsZero() {
				t.Fatalf("persisted rating has no timestamp")
			}
		})
	}
}

func TestRatingService_RateSong_VisibleInListing(t *testing.T) {
	ratingSvc, songSvc := newRatingService(t)
	ctx := context.Background()

	if _, err := ratingSvc.RateSong(ctx, 1, 2); err != nil {
		t.Fatalf("first rating: %v", err)
	}
	if _, err := ratingSvc.RateSong(ctx, 1, 4); err != nil {
		t.Fatalf("second rating: %v", err)
	}

	rows, err := songSvc.ListSongs(ctx, 0, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows: got %d, want 1", len(rows))
	}
	if rows[0].LatestRating == nil || *rows[0].LatestRating != 4 {
		t.Fatalf("listing should reflect the most recent rating, got %+v", rows[0].LatestRating)
	}
}

func TestRatingService_RateSong_ValidationBeforePersist(t *testing.T) {
	ratingSvc, songSvc := newRatingService(t)
	ctx := context.Background()

	if _, err := ratingSvc.RateSong(ctx, 1, 9); !errors.Is(err, ErrRatingOutOfRange) {
		t.Fatalf("expected range error, got %v", err)
	}

	rows, err := songSvc.ListSongs(ctx, 0, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if rows[0].LatestRating != nil {
		t.Fatalf("rejected rating must not be persisted, got %d", *rows[0].LatestRating)
	}
}
