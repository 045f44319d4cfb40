package hiring

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
)

type mockPostings struct {
	postings map[uuid.UUID]*JobPosting
}

func (m *mockPostings) Create(_ context.Context, p *JobPosting) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	m.postings[p.ID] = p
	return nil
}
func (m *mockPostings) GetByID(_ context.Context, id uuid.UUID) (*JobPosting, error) {
	p, ok := m.postings[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return p, nil
}
func (m *mockPostings) Update(_ context.Context, p *JobPosting) error {
	m.postings[p.ID] = p
	return nil
}
func (m *mockPostings) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.postings, id)
	return nil
}
func (m *mockPostings) List(_ context.Context, limit, offset int) ([]*JobPosting, int, error) {
	return nil, 0, nil
}

type mockApplicants struct {
	applicants map[uuid.UUID]*Applicant
}

func (m *mockApplicants) Create(_ context.Context, a *Applicant) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	m.applicants[a.ID] = a
	return nil
}
func (m *mockApplicants) GetByID(_ context.Context, id uuid.UUID) (*Applicant, error) {
	a, ok := m.applicants[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return a, nil
}
func (m *mockApplicants) Update(_ context.Context, a *Applicant) error {
	m.applicants[a.ID] = a
	return nil
}
func (m *mockApplicants) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.applicants, id)
	return nil
}
func (m *mockApplicants) List(_ context.Context, limit, offset int) ([]*Applicant, int, error) {
	return nil, 0, nil
}
func (m *mockApplicants) ListByPosting(_ context.Context, postingID uuid.UUID) ([]*Applicant, error) {
	var out []*Applicant
	for _, a := range m.applicants {
		if a.PostingID == postingID {
			out = append(out, a)
		}
	}
	return out, nil
}

func newTestService() *Service {
	return NewService(
		&mockPostings{postings: map[uuid.UUID]*JobPosting{}},
		&mockApplicants{applicants: map[uuid.UUID]*Applicant{}},
	)
}

func openPosting(t *testing.T, svc *Service) *JobPosting {
	t.Helper()
	p := &JobPosting{Title: "Dental assistant"}
	if err := svc.CreatePosting(context.Background(), p); err != nil {
		t.Fatalf("CreatePosting() = %v", err)
	}
	return p
}

func TestCreatePostingDefaults(t *testing.T) {
	svc := newTestService()
	p := openPosting(t, svc)

	if p.Status != PostingOpen {
		t.Errorf("Status = %q, want open", p.Status)
	}
	if p.Employ != "full_time" {
		t.Errorf("Employ = %q, want full_time", p.Employ)
	}
}

func TestCreateApplicantRequiresOpenPosting(t *testing.T) {
	svc := newTestService()
	p := openPosting(t, svc)

	a := &Applicant{PostingID: p.ID, Name: "M. Fischer", Stage: StageOffer}
	if err := svc.CreateApplicant(context.Background(), a); err != nil {
		t.Fatalf("CreateApplicant() = %v", err)
	}
	if a.Stage != StageApplied {
		t.Errorf("Stage = %q, new applicants always start at applied", a.Stage)
	}
	if a.AppliedAt.IsZero() {
		t.Error("AppliedAt not defaulted")
	}

	p.Status = PostingClosed
	if err := svc.UpdatePosting(context.Background(), p); err != nil {
		t.Fatal(err)
	}
	if err := svc.CreateApplicant(context.Background(), &Applicant{PostingID: p.ID, Name: "X"}); err == nil {
		t.Error("CreateApplicant() accepted an applicant on a closed posting")
	}

	if err := svc.CreateApplicant(context.Background(), &Applicant{PostingID: uuid.New(), Name: "X"}); err == nil {
		t.Error("CreateApplicant() accepted an unknown posting")
	}
}

func TestAdvanceApplicantForwardOnly(t *testing.T) {
	svc := newTestService()
	p := openPosting(t, svc)
	a := &Applicant{PostingID: p.ID, Name: "M. Fischer"}
	if err := svc.CreateApplicant(context.Background(), a); err != nil {
		t.Fatal(err)
	}

	for _, stage := range []string{StageScreening, StageInterview, StageOffer, StageHired} {
		got, err := svc.AdvanceApplicant(context.Background(), a.ID, stage)
		if err != nil {
			t.Fatalf("AdvanceApplicant(%s) = %v", stage, err)
		}
		if got.Stage != stage {
			t.Fatalf("Stage = %q, want %q", got.Stage, stage)
		}
	}
}

func TestAdvanceApplicantNoBackwardsMove(t *testing.T) {
	svc := newTestService()
	p := openPosting(t, svc)
	a := &Applicant{PostingID: p.ID, Name: "M. Fischer"}
	if err := svc.CreateApplicant(context.Background(), a); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AdvanceApplicant(context.Background(), a.ID, StageInterview); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.AdvanceApplicant(context.Background(), a.ID, StageApplied); err == nil {
		t.Error("backwards move to applied was allowed")
	}
	if _, err := svc.AdvanceApplicant(context.Background(), a.ID, StageInterview); err == nil {
		t.Error("same-stage move was allowed")
	}
}

func TestRejectFromAnyStage(t *testing.T) {
	svc := newTestService()
	p := openPosting(t, svc)
	a := &Applicant{PostingID: p.ID, Name: "M. Fischer"}
	if err := svc.CreateApplicant(context.Background(), a); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AdvanceApplicant(context.Background(), a.ID, StageOffer); err != nil {
		t.Fatal(err)
	}

	got, err := svc.AdvanceApplicant(context.Background(), a.ID, StageRejected)
	if err != nil {
		t.Fatalf("rejection from offer = %v", err)
	}
	if got.Stage != StageRejected {
		t.Errorf("Stage = %q, want rejected", got.Stage)
	}

	if _, err := svc.AdvanceApplicant(context.Background(), a.ID, StageRejected); err == nil {
		t.Error("re-rejecting a rejected applicant was allowed")
	}
	if _, err := svc.AdvanceApplicant(context.Background(), a.ID, StageHired); err == nil {
		t.Error("advancing a rejected applicant was allowed")
	}
}
