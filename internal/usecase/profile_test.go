package usecase_test

import (
	"context"
	"fmt"
	"testing"

	domainErrors "github.com/quickfuel/fuelquote/internal/domain/errors"
	"github.com/quickfuel/fuelquote/internal/domain/model"
	testhelpers "github.com/quickfuel/fuelquote/internal/test"
	. "github.com/quickfuel/fuelquote/internal/usecase"
)

func profileFor(userID int64) *model.Profile {
	return &model.Profile{
		UserID:   userID,
		FullName: "Alice Smith",
		Address1: "123 Main St",
		City:     "Houston",
		State:    "TX",
		Zipcode:  "77001",
	}
}

func validFields() ProfileFields {
	return ProfileFields{
		FullName: "Alice Smith",
		Address1: "123 Main St",
		Address2: "Apt 4",
		City:     "Houston",
		State:    "TX",
		Zipcode:  "77001",
	}
}

func TestProfileUseCaseUpsertCreates(t *testing.T) {
	repo := testhelpers.NewProfileRepositoryStub()
	uc := NewProfileUseCase(repo)

	profile, err := uc.Upsert(context.Background(), 1, validFields())
	if err != nil {
		t.Fatalf("upsert returned error: %v", err)
	}
	if profile.UserID != 1 {
		t.Fatalf("expected user id 1, got %d", profile.UserID)
	}
	if profile.FullName != "Alice Smith" || profile.State != "TX" {
		t.Fatalf("unexpected stored profile: %+v", profile)
	}
}

func TestProfileUseCaseUpsertUpdatesInPlace(t *testing.T) {
	repo := testhelpers.NewProfileRepositoryStub()
	uc := NewProfileUseCase(repo)

	if _, err := uc.Upsert(context.Background(), 1, validFields()); err != nil {
		t.Fatalf("first upsert returned error: %v", err)
	}

	updated := validFields()
	updated.City = "Dallas"
	if _, err := uc.Upsert(context.Background(), 1, updated); err != nil {
		t.Fatalf("second upsert returned error: %v", err)
	}

	stored, err := uc.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("get returned error: %v", err)
	}
	if stored.City != "Dallas" {
		t.Fatalf("expected updated city, got %q", stored.City)
	}
	if len(repo.Profiles) != 1 {
		t.Fatalf("expected single profile row, got %d", len(repo.Profiles))
	}
}

func TestProfileUseCaseUpsertIdempotent(t *testing.T) {
	repo := testhelpers.NewProfileRepositoryStub()
	uc := NewProfileUseCase(repo)

	first, err := uc.Upsert(context.Background(), 1, validFields())
	if err != nil {
		t.Fatalf("first upsert returned error: %v", err)
	}
	second, err := uc.Upsert(context.Background(), 1, validFields())
	if err != nil {
		t.Fatalf("second upsert returned error: %v", err)
	}
	if *first != *second {
		t.Fatalf("expected identical rows, got %+v vs %+v", first, second)
	}
}

func TestProfileUseCaseUpsertValidation(t *testing.T) {
	uc := NewProfileUseCase(testhelpers.NewProfileRepositoryStub())

	cases := []struct {
		name   string
		mutate func(*ProfileFields)
	}{
		{"missing full name", func(f *ProfileFields) { f.FullName = "" }},
		{"missing address1", func(f *ProfileFields) { f.Address1 = "" }},
		{"missing city", func(f *ProfileFields) { f.City = "" }},
		{"missing state", func(f *ProfileFields) { f.State = "" }},
		{"missing zipcode", func(f *ProfileFields) { f.Zipcode = "" }},
		{"unknown state", func(f *ProfileFields) { f.State = "XX" }},
		{"malformed zipcode", func(f *ProfileFields) { f.Zipcode = "7700" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fields := validFields()
			tc.mutate(&fields)
			if _, err := uc.Upsert(context.Background(), 1, fields); err != domainErrors.ErrValidation {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestProfileUseCaseUpsertAllowsEmptyAddress2(t *testing.T) {
	uc := NewProfileUseCase(testhelpers.NewProfileRepositoryStub())
	fields := validFields()
	fields.Address2 = ""
	if _, err := uc.Upsert(context.Background(), 1, fields); err != nil {
		t.Fatalf("upsert returned error: %v", err)
	}
}

func TestProfileUseCaseGetNotFound(t *testing.T) {
	uc := NewProfileUseCase(testhelpers.NewProfileRepositoryStub())
	if _, err := uc.Get(context.Background(), 9); err != domainErrors.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProfileUseCaseUpsertRepositoryError(t *testing.T) {
	repo := testhelpers.NewProfileRepositoryStub()
	repo.Err = fmt.Errorf("db down")
	uc := NewProfileUseCase(repo)
	if _, err := uc.Upsert(context.Background(), 1, validFields()); err == nil {
		t.Fatal("expected repository error")
	}
}
