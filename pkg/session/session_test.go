package session

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNewSession(t *testing.T) {
	sess, err := New("github:42", "Ada", DefaultTTL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if sess.ID == "" {
		t.Error("session id is empty")
	}
	if sess.UserID != "github:42" {
		t.Errorf("UserID = %q, want github:42", sess.UserID)
	}
	if sess.IsExpired() {
		t.Error("fresh session is already expired")
	}
}

func TestGenerateIDUnique(t *testing.T) {
	a, err := GenerateID()
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateID()
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("GenerateID produced a duplicate")
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	// Missing session: nil, nil
	got, err := s.Get(ctx, "nope")
	if err != nil || got != nil {
		t.Errorf("Get(missing) = %v, %v; want nil, nil", got, err)
	}

	sess, _ := New("github:1", "", DefaultTTL)
	if err := s.Set(ctx, sess); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err = s.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.UserID != "github:1" {
		t.Errorf("UserID = %q, want github:1", got.UserID)
	}

	// The store hands out copies.
	got.UserID = "mutated"
	again, _ := s.Get(ctx, sess.ID)
	if again.UserID != "github:1" {
		t.Error("store returned aliased session state")
	}

	if err := s.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got, _ := s.Get(ctx, sess.ID); got != nil {
		t.Error("session still present after delete")
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	sess, _ := New("github:1", "", -time.Minute)
	_ = s.Set(ctx, sess)

	if _, err := s.Get(ctx, sess.ID); !errors.Is(err, ErrExpired) {
		t.Errorf("Get(expired) err = %v, want ErrExpired", err)
	}

	if err := s.Cleanup(ctx); err != nil {
		t.Fatalf("Cleanup: %v", err)
	}
	if _, ok := s.sessions[sess.ID]; ok {
		t.Error("Cleanup left an expired session behind")
	}
}

func TestMockLocal(t *testing.T) {
	sess := MockLocal()
	if sess.UserID != "local" {
		t.Errorf("UserID = %q, want local", sess.UserID)
	}
	if sess.IsExpired() {
		t.Error("mock session must not expire")
	}
}
