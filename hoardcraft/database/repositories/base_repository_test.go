package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"
)

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "no rows", err: sql.ErrNoRows, want: true},
		{name: "wrapped no rows", err: errors.Join(errors.New("get card"), sql.ErrNoRows), want: true},
		{name: "not found", err: &NotFoundError{Entity: "card", ID: int64(7)}, want: true},
		{name: "other", err: errors.New("connection reset"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFound(tt.err); got != tt.want {
				t.Errorf("IsNotFound(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestBaseRepository_HandleError(t *testing.T) {
	br := NewBaseRepository(nil)

	if err := br.HandleError("get", "card", nil); err != nil {
		t.Errorf("HandleError(nil) = %v, want nil", err)
	}

	err := br.HandleError("get", "card", sql.ErrNoRows)
	var nfe *NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("HandleError(ErrNoRows) = %T, want *NotFoundError", err)
	}
	if nfe.Entity != "card" {
		t.Errorf("NotFoundError.Entity = %q, want %q", nfe.Entity, "card")
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound() = false for mapped ErrNoRows, want true")
	}

	cause := errors.New("connection reset")
	err = br.HandleError("update", "dust balance", cause)
	var re *RepositoryError
	if !errors.As(err, &re) {
		t.Fatalf("HandleError(other) = %T, want *RepositoryError", err)
	}
	if re.Operation != "update" || re.Entity != "dust balance" {
		t.Errorf("RepositoryError = %s/%s, want update/dust balance", re.Operation, re.Entity)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(wrapped, cause) = false, want true")
	}
	if IsNotFound(err) {
		t.Error("IsNotFound() = true for storage failure, want false")
	}
}

func TestBaseRepository_WithTimeout(t *testing.T) {
	br := NewBaseRepository(nil)

	ctx, cancel := br.WithTimeout(context.Background())
	defer cancel()

	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatal("WithTimeout() context has no deadline")
	}
	if remaining := time.Until(deadline); remaining <= 0 {
		t.Errorf("WithTimeout() deadline already passed (%v remaining)", remaining)
	}
}
