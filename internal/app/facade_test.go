package app

import (
	"context"
	"testing"

	"github.com/quickfuel/fuelquote/internal/pricing"
	testhelpers "github.com/quickfuel/fuelquote/internal/test"
	"github.com/quickfuel/fuelquote/internal/usecase"
)

func newFacade() (*FuelQuoteFacade, *testhelpers.UserRepositoryStub, *testhelpers.ProfileRepositoryStub, *testhelpers.QuoteRepositoryStub) {
	userRepo := testhelpers.NewUserRepositoryStub()
	profileRepo := testhelpers.NewProfileRepositoryStub()
	quoteRepo := &testhelpers.QuoteRepositoryStub{}
	strategy := testhelpers.StrategyStub{ParseFn: func(string) (int64, error) { return 99, nil }}
	policy := pricing.NewFixedPolicy(2.50)

	authUC := usecase.NewAuthUseCase(userRepo, profileRepo, testhelpers.HasherStub{}, strategy)
	profileUC := usecase.NewProfileUseCase(profileRepo)
	quoteUC := usecase.NewQuoteUseCase(quoteRepo, profileRepo, policy)

	facade := NewFuelQuoteFacade(authUC, profileUC, quoteUC, policy)
	return facade, userRepo, profileRepo, quoteRepo
}

func TestFuelQuoteFacadeAuth(t *testing.T) {
	facade, users, _, _ := newFacade()

	if err := facade.Register(context.Background(), "smith", "secret", "secret"); err != nil {
		t.Fatalf("register returned error: %v", err)
	}

	stored, err := users.GetByUsername(context.Background(), "smith")
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if stored.Username != "smith" {
		t.Fatalf("unexpected stored username %q", stored.Username)
	}

	token, hasProfile, err := facade.Authenticate(context.Background(), "smith", "secret")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}
	if hasProfile {
		t.Fatal("fresh account should have no profile")
	}

	id, err := facade.ParseToken("anything")
	if err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
	if id != 99 {
		t.Fatalf("expected id 99, got %d", id)
	}
}

func TestFuelQuoteFacadeProfileAndQuotes(t *testing.T) {
	facade, _, _, _ := newFacade()
	ctx := context.Background()

	fields := usecase.ProfileFields{
		FullName: "John Smith",
		Address1: "1 Main St",
		City:     "Houston",
		State:    "TX",
		Zipcode:  "77001",
	}
	if _, err := facade.SaveProfile(ctx, 7, fields); err != nil {
		t.Fatalf("save profile returned error: %v", err)
	}

	profile, err := facade.Profile(ctx, 7)
	if err != nil {
		t.Fatalf("profile returned error: %v", err)
	}
	if profile.FullName != "John Smith" {
		t.Fatalf("unexpected profile %+v", profile)
	}

	quote, err := facade.CreateQuote(ctx, 7, 150, "2026-09-01")
	if err != nil {
		t.Fatalf("create quote returned error: %v", err)
	}
	if quote.TotalDue != 375 {
		t.Fatalf("expected total 375, got %v", quote.TotalDue)
	}
	if quote.DeliveryAddress != "1 Main St" {
		t.Fatalf("expected address snapshot, got %q", quote.DeliveryAddress)
	}

	history, err := facade.QuoteHistory(ctx, 7)
	if err != nil {
		t.Fatalf("history returned error: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected one quote, got %d", len(history))
	}

	if price := facade.CurrentPrice(ctx); price != 2.50 {
		t.Fatalf("expected current price 2.50, got %v", price)
	}
}
