package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/praxis/praxis/internal/domain/team"
)

var validStatuses = map[string]bool{
	StatusRequested: true, StatusApproved: true, StatusRejected: true,
}

// BaseVacationDays is the default annual entitlement when a practice
// has not configured a per-member value.
const BaseVacationDays = 28

type Service struct {
	requests Repository
	members  team.MemberRepository
}

func NewService(requests Repository, members team.MemberRepository) *Service {
	return &Service{requests: requests, members: members}
}

func (s *Service) Create(ctx context.Context, hr *HolidayRequest) error {
	if hr.MemberID == uuid.Nil {
		return fmt.Errorf("member_id is required")
	}
	if hr.To.Before(hr.From) {
		return fmt.Errorf("to must not be before from")
	}
	hr.Status = StatusRequested
	if hr.Days == 0 {
		hr.Days = Weekdays(hr.From, hr.To)
	}
	if hr.Days < 1 {
		return fmt.Errorf("request covers no working days")
	}
	return s.requests.Create(ctx, hr)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*HolidayRequest, error) {
	return s.requests.GetByID(ctx, id)
}

// Decide approves or rejects a pending request.
func (s *Service) Decide(ctx context.Context, id uuid.UUID, status string) (*HolidayRequest, error) {
	if status != StatusApproved && status != StatusRejected {
		return nil, fmt.Errorf("invalid decision: %s", status)
	}
	hr, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if hr.Status != StatusRequested {
		return nil, fmt.Errorf("request already %s", hr.Status)
	}
	if status == StatusApproved {
		bal, err := s.MemberBalance(ctx, hr.MemberID, hr.From.Year())
		if err != nil {
			return nil, err
		}
		if hr.Days > bal.Balance {
			return nil, fmt.Errorf("insufficient balance: %d days left, %d requested", bal.Balance, hr.Days)
		}
	}
	hr.Status = status
	if err := s.requests.Update(ctx, hr); err != nil {
		return nil, err
	}
	return hr, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.requests.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*HolidayRequest, int, error) {
	return s.requests.List(ctx, limit, offset)
}

// MemberBalanceReport summarizes a member's vacation account for a year.
type MemberBalanceReport struct {
	MemberID    uuid.UUID `json:"member_id"`
	Year        int       `json:"year"`
	Entitlement int       `json:"entitlement"`
	Taken       int       `json:"taken"`
	Balance     int       `json:"balance"`
}

func (s *Service) MemberBalance(ctx context.Context, memberID uuid.UUID, year int) (*MemberBalanceReport, error) {
	m, err := s.members.GetByID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("member not found")
	}
	if year == 0 {
		year = time.Now().Year()
	}
	ent := Entitlement(BaseVacationDays, 0, m.HiredAt, year)
	taken, err := s.requests.ApprovedDays(ctx, memberID, year)
	if err != nil {
		return nil, err
	}
	return &MemberBalanceReport{
		MemberID:    memberID,
		Year:        year,
		Entitlement: ent,
		Taken:       taken,
		Balance:     Balance(ent, taken),
	}, nil
}
