package profile

import (
	"context"
	"errors"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestMockCreateAndGet(t *testing.T) {
	svc := NewMockProfileService()

	created, err := svc.Create(context.Background(), "user-1", CreateParams{
		Firstname: "John",
		Lastname:  "Doe",
		Email:     "  John@Example.COM ",
		Phones:    []string{" +358401234567 ", ""},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Email != "john@example.com" {
		t.Errorf("expected normalized email, got %q", created.Email)
	}
	if len(created.Phones) != 1 || created.Phones[0] != "+358401234567" {
		t.Errorf("expected normalized phones, got %v", created.Phones)
	}

	got, err := svc.Get(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Firstname != "John" {
		t.Errorf("expected firstname John, got %s", got.Firstname)
	}
}

func TestMockCreateDuplicate(t *testing.T) {
	svc := NewMockProfileService()

	if _, err := svc.Create(context.Background(), "user-1", CreateParams{Firstname: "John"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Create(context.Background(), "user-1", CreateParams{Firstname: "Jane"}); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestMockUpdateReplacesLists(t *testing.T) {
	svc := NewMockProfileService()

	_, err := svc.Create(context.Background(), "user-1", CreateParams{
		Firstname: "John",
		Phones:    []string{"+358401234567", "+358409999999"},
		Addresses: []Address{{Label: "home", Street: "Mannerheimintie 1", City: "Helsinki", PostalCode: "00100", Country: "FI"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	phones := []string{"+358400000001"}
	updated, err := svc.Update(context.Background(), "user-1", UpdateParams{
		Firstname: strPtr("Johnny"),
		Phones:    &phones,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Firstname != "Johnny" {
		t.Errorf("expected firstname Johnny, got %s", updated.Firstname)
	}
	if len(updated.Phones) != 1 || updated.Phones[0] != "+358400000001" {
		t.Errorf("expected wholesale phone replacement, got %v", updated.Phones)
	}
	if len(updated.Addresses) != 1 {
		t.Errorf("untouched addresses must survive, got %v", updated.Addresses)
	}
}

func TestMockDelete(t *testing.T) {
	svc := NewMockProfileService()

	if _, err := svc.Create(context.Background(), "user-1", CreateParams{Firstname: "John"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Delete(context.Background(), "user-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Get(context.Background(), "user-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), "user-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestProfileComplete(t *testing.T) {
	var nilProfile *Profile
	if nilProfile.Complete() {
		t.Error("nil profile must not be complete")
	}

	p := &Profile{Phones: []string{"+358401234567"}}
	if p.Complete() {
		t.Error("profile without addresses must not be complete")
	}

	p.Addresses = []Address{{Street: "Mannerheimintie 1", City: "Helsinki", PostalCode: "00100", Country: "FI"}}
	if !p.Complete() {
		t.Error("profile with phone and address must be complete")
	}
}
