package store

import (
	"testing"

	"github.com/boy-who-codes/nodeflix/internal/database"
)

func setupFlashTestDB(t *testing.T) (*FlashStore, *SessionStore) {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewFlashStore(db), NewSessionStore(db)
}

func TestFlashDrainExactlyOnce(t *testing.T) {
	fs, ss := setupFlashTestDB(t)

	sess, err := ss.Create()
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	if err := fs.Push(sess.ID, "error", "Please check your password"); err != nil {
		t.Fatalf("push: %v", err)
	}

	first, err := fs.Drain(sess.ID, "error")
	if err != nil {
		t.Fatalf("first drain: %v", err)
	}
	if len(first) != 1 || first[0] != "Please check your password" {
		t.Errorf("first drain = %v, want the pushed message", first)
	}

	second, err := fs.Drain(sess.ID, "error")
	if err != nil {
		t.Fatalf("second drain: %v", err)
	}
	if len(second) != 0 {
		t.Errorf("second drain = %v, want empty", second)
	}
}

func TestFlashDrainPreservesOrder(t *testing.T) {
	fs, ss := setupFlashTestDB(t)

	sess, _ := ss.Create()
	for _, msg := range []string{"first", "second", "third"} {
		if err := fs.Push(sess.ID, "error", msg); err != nil {
			t.Fatalf("push %q: %v", msg, err)
		}
	}

	got, err := fs.Drain(sess.ID, "error")
	if err != nil {
		t.Fatalf("drain: %v", err)
	}
	want := []string{"first", "second", "third"}
	if len(got) != len(want) {
		t.Fatalf("drain returned %d messages, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("message[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFlashCategoriesIsolated(t *testing.T) {
	fs, ss := setupFlashTestDB(t)

	sess, _ := ss.Create()
	fs.Push(sess.ID, "error", "bad")
	fs.Push(sess.ID, "info", "hello")

	got, err := fs.Drain(sess.ID, "error")
	if err != nil {
		t.Fatalf("drain error: %v", err)
	}
	if len(got) != 1 || got[0] != "bad" {
		t.Errorf("error drain = %v, want [bad]", got)
	}

	info, err := fs.Drain(sess.ID, "info")
	if err != nil {
		t.Fatalf("drain info: %v", err)
	}
	if len(info) != 1 || info[0] != "hello" {
		t.Errorf("info drain = %v, want [hello]", info)
	}
}

func TestFlashSessionsIsolated(t *testing.T) {
	fs, ss := setupFlashTestDB(t)

	s1, _ := ss.Create()
	s2, _ := ss.Create()
	fs.Push(s1.ID, "error", "for s1")

	got, err := fs.Drain(s2.ID, "error")
	if err != nil {
		t.Fatalf("drain: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("s2 drain = %v, want empty", got)
	}
}

func TestFlashDeletedWithSession(t *testing.T) {
	fs, ss := setupFlashTestDB(t)

	sess, _ := ss.Create()
	fs.Push(sess.ID, "error", "pending")
	if err := ss.Delete(sess.ID); err != nil {
		t.Fatalf("delete session: %v", err)
	}

	var count int
	if err := fs.db.QueryRow(`SELECT COUNT(*) FROM flash_messages`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("flash rows = %d, want 0 after session delete", count)
	}
}
