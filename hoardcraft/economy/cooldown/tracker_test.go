package cooldown

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/hoardcraft/bot/hoardcraft/database/models"
	"github.com/hoardcraft/bot/hoardcraft/database/repositories/mock"
	"go.uber.org/mock/gomock"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestTracker_CheckAndConsume_FreshUser(t *testing.T) {
	requests := mock.NewMockRequestRepository(gomock.NewController(t))
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	requests.EXPECT().
		Get(gomock.Any(), "100", "200").
		Return(nil, sql.ErrNoRows)
	requests.EXPECT().
		Create(gomock.Any(), "100", "200", now).
		Return(true, nil)

	tracker := NewTracker(requests)
	tracker.now = fixedClock(now)

	res, err := tracker.CheckAndConsume(context.Background(), "100", "200")
	if err != nil {
		t.Fatalf("CheckAndConsume() error = %v", err)
	}
	if !res.Allowed {
		t.Errorf("CheckAndConsume() Allowed = false, want true")
	}
}

func TestTracker_CheckAndConsume_Window(t *testing.T) {
	anchor := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		now            time.Time
		count          int
		wantAllowed    bool
		wantIncrement  bool
		wantReset      bool
		wantRetryAfter time.Duration
	}{
		{
			name:          "second request in window",
			now:           anchor.Add(10 * time.Minute),
			count:         1,
			wantAllowed:   true,
			wantIncrement: true,
		},
		{
			name:          "fifth request in window",
			now:           anchor.Add(59 * time.Minute),
			count:         4,
			wantAllowed:   true,
			wantIncrement: true,
		},
		{
			name:           "sixth request denied",
			now:            anchor.Add(30 * time.Minute),
			count:          5,
			wantAllowed:    false,
			wantRetryAfter: 30 * time.Minute,
		},
		{
			name:        "window elapsed resets even at the cap",
			now:         anchor.Add(time.Hour + time.Minute),
			count:       5,
			wantAllowed: true,
			wantReset:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requests := mock.NewMockRequestRepository(gomock.NewController(t))
			requests.EXPECT().
				Get(gomock.Any(), "100", "200").
				Return(&models.UserRequest{
					UserID:           "100",
					ServerID:         "200",
					FirstRequestTime: anchor,
					RequestCount:     tt.count,
				}, nil)

			if tt.wantIncrement {
				requests.EXPECT().
					Increment(gomock.Any(), "100", "200", anchor, 5).
					Return(true, nil)
			}
			if tt.wantReset {
				requests.EXPECT().
					ResetWindow(gomock.Any(), "100", "200", anchor, tt.now).
					Return(true, nil)
			}

			tracker := NewTracker(requests)
			tracker.now = fixedClock(tt.now)

			res, err := tracker.CheckAndConsume(context.Background(), "100", "200")
			if err != nil {
				t.Fatalf("CheckAndConsume() error = %v", err)
			}
			if res.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", res.Allowed, tt.wantAllowed)
			}
			if res.RetryAfter != tt.wantRetryAfter {
				t.Errorf("RetryAfter = %v, want %v", res.RetryAfter, tt.wantRetryAfter)
			}
		})
	}
}

func TestTracker_DenialCache(t *testing.T) {
	anchor := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	now := anchor.Add(30 * time.Minute)

	requests := mock.NewMockRequestRepository(gomock.NewController(t))
	// The store is consulted exactly once; the second denial comes from
	// the cache.
	requests.EXPECT().
		Get(gomock.Any(), "100", "200").
		Return(&models.UserRequest{
			UserID:           "100",
			ServerID:         "200",
			FirstRequestTime: anchor,
			RequestCount:     5,
		}, nil).
		Times(1)

	tracker := NewTracker(requests)
	tracker.now = fixedClock(now)

	for i := 0; i < 2; i++ {
		res, err := tracker.CheckAndConsume(context.Background(), "100", "200")
		if err != nil {
			t.Fatalf("CheckAndConsume() #%d error = %v", i+1, err)
		}
		if res.Allowed {
			t.Errorf("CheckAndConsume() #%d Allowed = true, want false", i+1)
		}
		if res.RetryAfter != 30*time.Minute {
			t.Errorf("CheckAndConsume() #%d RetryAfter = %v, want %v", i+1, res.RetryAfter, 30*time.Minute)
		}
	}
}

func TestTracker_DenialCacheExpires(t *testing.T) {
	anchor := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	requests := mock.NewMockRequestRepository(gomock.NewController(t))
	requests.EXPECT().
		Get(gomock.Any(), "100", "200").
		Return(&models.UserRequest{
			UserID:           "100",
			ServerID:         "200",
			FirstRequestTime: anchor,
			RequestCount:     5,
		}, nil)

	tracker := NewTracker(requests)
	tracker.now = fixedClock(anchor.Add(30 * time.Minute))

	if res, _ := tracker.CheckAndConsume(context.Background(), "100", "200"); res.Allowed {
		t.Fatal("expected denial inside window")
	}

	// Past the window end the cached denial must not stick around: the
	// store decides again and resets the window.
	later := anchor.Add(time.Hour + time.Second)
	tracker.now = fixedClock(later)
	requests.EXPECT().
		Get(gomock.Any(), "100", "200").
		Return(&models.UserRequest{
			UserID:           "100",
			ServerID:         "200",
			FirstRequestTime: anchor,
			RequestCount:     5,
		}, nil)
	requests.EXPECT().
		ResetWindow(gomock.Any(), "100", "200", anchor, later).
		Return(true, nil)

	res, err := tracker.CheckAndConsume(context.Background(), "100", "200")
	if err != nil {
		t.Fatalf("CheckAndConsume() error = %v", err)
	}
	if !res.Allowed {
		t.Error("CheckAndConsume() Allowed = false after window elapsed, want true")
	}
}

func TestTracker_Reset(t *testing.T) {
	anchor := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	now := anchor.Add(30 * time.Minute)

	requests := mock.NewMockRequestRepository(gomock.NewController(t))
	requests.EXPECT().
		Get(gomock.Any(), "100", "200").
		Return(&models.UserRequest{
			UserID:           "100",
			ServerID:         "200",
			FirstRequestTime: anchor,
			RequestCount:     5,
		}, nil)

	tracker := NewTracker(requests)
	tracker.now = fixedClock(now)

	if res, _ := tracker.CheckAndConsume(context.Background(), "100", "200"); res.Allowed {
		t.Fatal("expected denial before reset")
	}

	requests.EXPECT().
		Delete(gomock.Any(), "100", "200").
		Return(nil)
	if err := tracker.Reset(context.Background(), "100", "200"); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}

	// Back to the fresh state: next check goes to the store, not the
	// stale cache entry.
	requests.EXPECT().
		Get(gomock.Any(), "100", "200").
		Return(nil, sql.ErrNoRows)
	requests.EXPECT().
		Create(gomock.Any(), "100", "200", now).
		Return(true, nil)

	res, err := tracker.CheckAndConsume(context.Background(), "100", "200")
	if err != nil {
		t.Fatalf("CheckAndConsume() error = %v", err)
	}
	if !res.Allowed {
		t.Error("CheckAndConsume() Allowed = false after reset, want true")
	}
}

func TestTracker_CheckAndConsume_LostCreateRace(t *testing.T) {
	anchor := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	now := anchor.Add(time.Second)

	requests := mock.NewMockRequestRepository(gomock.NewController(t))
	gomock.InOrder(
		requests.EXPECT().
			Get(gomock.Any(), "100", "200").
			Return(nil, sql.ErrNoRows),
		// Another request created the row first; re-read and consume a
		// slot in its window.
		requests.EXPECT().
			Create(gomock.Any(), "100", "200", now).
			Return(false, nil),
		requests.EXPECT().
			Get(gomock.Any(), "100", "200").
			Return(&models.UserRequest{
				UserID:           "100",
				ServerID:         "200",
				FirstRequestTime: anchor,
				RequestCount:     1,
			}, nil),
		requests.EXPECT().
			Increment(gomock.Any(), "100", "200", anchor, 5).
			Return(true, nil),
	)

	tracker := NewTracker(requests)
	tracker.now = fixedClock(now)

	res, err := tracker.CheckAndConsume(context.Background(), "100", "200")
	if err != nil {
		t.Fatalf("CheckAndConsume() error = %v", err)
	}
	if !res.Allowed {
		t.Error("CheckAndConsume() Allowed = false, want true")
	}
}
