package holiday

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/praxis/praxis/internal/domain/team"
)

type mockRepo struct {
	requests map[uuid.UUID]*HolidayRequest
	approved map[uuid.UUID]int
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		requests: map[uuid.UUID]*HolidayRequest{},
		approved: map[uuid.UUID]int{},
	}
}

func (m *mockRepo) Create(_ context.Context, r *HolidayRequest) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	m.requests[r.ID] = r
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*HolidayRequest, error) {
	r, ok := m.requests[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return r, nil
}

func (m *mockRepo) Update(_ context.Context, r *HolidayRequest) error {
	m.requests[r.ID] = r
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.requests, id)
	return nil
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*HolidayRequest, int, error) {
	var out []*HolidayRequest
	for _, r := range m.requests {
		out = append(out, r)
	}
	return out, len(out), nil
}

func (m *mockRepo) ApprovedDays(_ context.Context, memberID uuid.UUID, year int) (int, error) {
	return m.approved[memberID], nil
}

type mockMembers struct {
	members map[uuid.UUID]*team.TeamMember
}

func (m *mockMembers) Create(_ context.Context, tm *team.TeamMember) error { return nil }
func (m *mockMembers) GetByID(_ context.Context, id uuid.UUID) (*team.TeamMember, error) {
	tm, ok := m.members[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return tm, nil
}
func (m *mockMembers) Update(_ context.Context, tm *team.TeamMember) error { return nil }
func (m *mockMembers) Delete(_ context.Context, id uuid.UUID) error       { return nil }
func (m *mockMembers) List(_ context.Context, limit, offset int) ([]*team.TeamMember, int, error) {
	return nil, 0, nil
}

func newTestService() (*Service, *mockRepo, uuid.UUID) {
	repo := newMockRepo()
	memberID := uuid.New()
	members := &mockMembers{members: map[uuid.UUID]*team.TeamMember{
		memberID: {ID: memberID, Name: "A", Employment: team.EmploymentActive},
	}}
	return NewService(repo, members), repo, memberID
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCreateDefaultsDaysToWeekdays(t *testing.T) {
	svc, _, memberID := newTestService()

	hr := &HolidayRequest{
		MemberID: memberID,
		From:     day(2026, time.August, 3),  // Monday
		To:       day(2026, time.August, 14), // Friday next week
	}
	if err := svc.Create(context.Background(), hr); err != nil {
		t.Fatalf("Create() = %v", err)
	}
	if hr.Days != 10 {
		t.Errorf("Days = %d, want 10 weekdays", hr.Days)
	}
	if hr.Status != StatusRequested {
		t.Errorf("Status = %q, want %q", hr.Status, StatusRequested)
	}
}

func TestCreateRejectsWeekendOnlyRange(t *testing.T) {
	svc, _, memberID := newTestService()

	hr := &HolidayRequest{
		MemberID: memberID,
		From:     day(2026, time.August, 8), // Saturday
		To:       day(2026, time.August, 9), // Sunday
	}
	if err := svc.Create(context.Background(), hr); err == nil {
		t.Error("Create() accepted a request covering no working days")
	}
}

func TestCreateRejectsInvertedRange(t *testing.T) {
	svc, _, memberID := newTestService()

	hr := &HolidayRequest{
		MemberID: memberID,
		From:     day(2026, time.August, 14),
		To:       day(2026, time.August, 3),
	}
	if err := svc.Create(context.Background(), hr); err == nil {
		t.Error("Create() accepted to before from")
	}
}

func TestDecideApprovesWithinBalance(t *testing.T) {
	svc, repo, memberID := newTestService()

	hr := &HolidayRequest{
		MemberID: memberID,
		From:     day(2026, time.August, 3),
		To:       day(2026, time.August, 7),
	}
	if err := svc.Create(context.Background(), hr); err != nil {
		t.Fatal(err)
	}

	decided, err := svc.Decide(context.Background(), hr.ID, StatusApproved)
	if err != nil {
		t.Fatalf("Decide() = %v", err)
	}
	if decided.Status != StatusApproved {
		t.Errorf("Status = %q, want approved", decided.Status)
	}
	if repo.requests[hr.ID].Status != StatusApproved {
		t.Error("decision not persisted")
	}
}

func TestDecideRejectsOverBalance(t *testing.T) {
	svc, repo, memberID := newTestService()
	repo.approved[memberID] = BaseVacationDays - 2 // 2 days left

	hr := &HolidayRequest{
		MemberID: memberID,
		From:     day(2026, time.August, 3),
		To:       day(2026, time.August, 7), // 5 weekdays
	}
	if err := svc.Create(context.Background(), hr); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Decide(context.Background(), hr.ID, StatusApproved); err == nil {
		t.Error("Decide() approved a request exceeding the balance")
	}
	if repo.requests[hr.ID].Status != StatusRequested {
		t.Error("request status changed despite failed approval")
	}
}

func TestDecideRejectionIgnoresBalance(t *testing.T) {
	svc, repo, memberID := newTestService()
	repo.approved[memberID] = BaseVacationDays // nothing left

	hr := &HolidayRequest{
		MemberID: memberID,
		From:     day(2026, time.August, 3),
		To:       day(2026, time.August, 7),
	}
	if err := svc.Create(context.Background(), hr); err != nil {
		t.Fatal(err)
	}

	decided, err := svc.Decide(context.Background(), hr.ID, StatusRejected)
	if err != nil {
		t.Fatalf("Decide(rejected) = %v", err)
	}
	if decided.Status != StatusRejected {
		t.Errorf("Status = %q, want rejected", decided.Status)
	}
}

func TestDecideOnlyPendingRequests(t *testing.T) {
	svc, _, memberID := newTestService()

	hr := &HolidayRequest{
		MemberID: memberID,
		From:     day(2026, time.August, 3),
		To:       day(2026, time.August, 7),
	}
	if err := svc.Create(context.Background(), hr); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Decide(context.Background(), hr.ID, StatusApproved); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Decide(context.Background(), hr.ID, StatusRejected); err == nil {
		t.Error("Decide() re-decided an already approved request")
	}
}

func TestMemberBalance(t *testing.T) {
	svc, repo, memberID := newTestService()
	repo.approved[memberID] = 10

	bal, err := svc.MemberBalance(context.Background(), memberID, 2026)
	if err != nil {
		t.Fatalf("MemberBalance() = %v", err)
	}
	if bal.Entitlement != BaseVacationDays {
		t.Errorf("Entitlement = %d, want %d", bal.Entitlement, BaseVacationDays)
	}
	if bal.Taken != 10 || bal.Balance != BaseVacationDays-10 {
		t.Errorf("Taken/Balance = %d/%d, want 10/%d", bal.Taken, bal.Balance, BaseVacationDays-10)
	}
}
