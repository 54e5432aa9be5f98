package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"go.uber.org/zap"

	"jobswipe/internal/domain"
)

func TestLearnFromSwipes_UserNotFound(t *testing.T) {
	learner := NewPreferenceLearner(zap.NewNop(), newMockUserRepo(), newMockJobRepo(), &mockInteractionRepo{}, 30)

	_, err := learner.LearnFromSwipes(context.Background(), "ghost")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestLearnFromSwipes_NoInteractionsIsNoOp(t *testing.T) {
	users := newMockUserRepo(domain.UserProfile{ID: "user-1"})
	learner := NewPreferenceLearner(zap.NewNop(), users, newMockJobRepo(), &mockInteractionRepo{}, 30)

	prefs, err := learner.LearnFromSwipes(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prefs != nil {
		t.Fatalf("expected nil preferences, got %+v", prefs)
	}
	if users.prefsUpdates != 0 {
		t.Fatalf("expected no persistence on empty history, got %d updates", users.prefsUpdates)
	}
}

func TestLearnFromSwipes_DerivesFromAcceptedOnly(t *testing.T) {
	users := newMockUserRepo(domain.UserProfile{ID: "user-1"})
	jobs := newMockJobRepo(
		domain.JobListing{ID: "job-a", SalaryMin: f64(100000), Industry: "Technology", RemoteWork: true, OpportunityScore: f64(4.0)},
		domain.JobListing{ID: "job-b", SalaryMin: f64(80000), Industry: "Technology", RemoteWork: false, OpportunityScore: f64(3.0)},
		domain.JobListing{ID: "job-c", SalaryMin: f64(60000), Industry: "Finance", RemoteWork: true},
		domain.JobListing{ID: "job-x", SalaryMin: f64(200000), Industry: "Logistics", RemoteWork: false, OpportunityScore: f64(1.0)},
	)
	interactions := &mockInteractionRepo{
		recent: []domain.Interaction{
			{UserID: "user-1", JobListingID: "job-a", Kind: domain.InteractionAccepted},
			{UserID: "user-1", JobListingID: "job-b", Kind: domain.InteractionAccepted},
			{UserID: "user-1", JobListingID: "job-c", Kind: domain.InteractionAccepted},
			{UserID: "user-1", JobListingID: "job-x", Kind: domain.InteractionRejected},
		},
	}

	learner := NewPreferenceLearner(zap.NewNop(), users, jobs, interactions, 30)

	prefs, err := learner.LearnFromSwipes(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prefs == nil {
		t.Fatalf("expected derived preferences")
	}

	// Salario medio de los aceptados: (100k+80k+60k)/3 = 80k. El aviso
	// rechazado no participa en ninguna estadistica.
	if prefs.PreferredMinSalary == nil || *prefs.PreferredMinSalary != 80000 {
		t.Fatalf("expected mean salary 80000, got %v", prefs.PreferredMinSalary)
	}
	if prefs.PreferredIndustries["Technology"] != 2 || prefs.PreferredIndustries["Finance"] != 1 {
		t.Fatalf("unexpected industry counts: %v", prefs.PreferredIndustries)
	}
	if _, ok := prefs.PreferredIndustries["Logistics"]; ok {
		t.Fatalf("rejected job industry leaked into preferences")
	}
	if prefs.RemoteAffinity == nil || math.Abs(*prefs.RemoteAffinity-2.0/3.0) > 1e-9 {
		t.Fatalf("expected remote affinity 2/3, got %v", prefs.RemoteAffinity)
	}
	// Solo dos aceptados traen opportunity score: (4.0+3.0)/2 = 3.5.
	if prefs.PreferredOpportunityScore == nil || *prefs.PreferredOpportunityScore != 3.5 {
		t.Fatalf("expected mean opportunity 3.5, got %v", prefs.PreferredOpportunityScore)
	}

	if users.prefsUpdates != 1 {
		t.Fatalf("expected one persistence call, got %d", users.prefsUpdates)
	}
	if users.savedPrefs != prefs {
		t.Fatalf("expected derived preferences persisted")
	}
}

func TestLearnFromSwipes_ReplacesWholesale(t *testing.T) {
	prior := &domain.LearnedPreferences{
		PreferredMinSalary:  f64(150000),
		PreferredIndustries: map[string]int{"Healthcare": 5},
	}
	users := newMockUserRepo(domain.UserProfile{ID: "user-1", LearnedPreferences: prior})
	jobs := newMockJobRepo(
		domain.JobListing{ID: "job-a", Industry: "Technology", RemoteWork: false},
	)
	interactions := &mockInteractionRepo{
		recent: []domain.Interaction{
			{UserID: "user-1", JobListingID: "job-a", Kind: domain.InteractionAccepted},
		},
	}

	learner := NewPreferenceLearner(zap.NewNop(), users, jobs, interactions, 30)

	prefs, err := learner.LearnFromSwipes(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Recalculo desde cero: las estadisticas previas no se mezclan.
	if prefs.PreferredMinSalary != nil {
		t.Fatalf("expected no salary stat without salary data, got %v", *prefs.PreferredMinSalary)
	}
	if _, ok := prefs.PreferredIndustries["Healthcare"]; ok {
		t.Fatalf("prior industry survived the recompute: %v", prefs.PreferredIndustries)
	}
	if prefs.PreferredIndustries["Technology"] != 1 {
		t.Fatalf("expected fresh industry count, got %v", prefs.PreferredIndustries)
	}
	if prefs.RemoteAffinity == nil || *prefs.RemoteAffinity != 0 {
		t.Fatalf("expected remote affinity 0 set explicitly, got %v", prefs.RemoteAffinity)
	}
}

func TestLearnFromSwipes_AllRejectedKeepsPriorPreferences(t *testing.T) {
	prior := &domain.LearnedPreferences{PreferredMinSalary: f64(90000)}
	users := newMockUserRepo(domain.UserProfile{ID: "user-1", LearnedPreferences: prior})
	jobs := newMockJobRepo(
		domain.JobListing{ID: "job-x", Industry: "Logistics"},
	)
	interactions := &mockInteractionRepo{
		recent: []domain.Interaction{
			{UserID: "user-1", JobListingID: "job-x", Kind: domain.InteractionRejected},
		},
	}

	learner := NewPreferenceLearner(zap.NewNop(), users, jobs, interactions, 30)

	prefs, err := learner.LearnFromSwipes(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prefs != prior {
		t.Fatalf("expected prior preferences kept, got %+v", prefs)
	}
	// El perfil igual se persiste para registrar la corrida.
	if users.prefsUpdates != 1 {
		t.Fatalf("expected one persistence call, got %d", users.prefsUpdates)
	}
}
