package insight

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/praxis/praxis/internal/domain/team"
)

type scopeKey struct{}

// scopedConns counts connection leases the way a pool would, marking
// each child context so repositories can tell a dedicated connection
// from the shared request one.
type scopedConns struct {
	mu        sync.Mutex
	active    int
	maxActive int
	leases    int
	releases  int
	err       error
}

func (s *scopedConns) Scoped(ctx context.Context) (context.Context, func(), error) {
	if s.err != nil {
		return nil, nil, s.err
	}
	s.mu.Lock()
	s.active++
	s.leases++
	if s.active > s.maxActive {
		s.maxActive = s.active
	}
	s.mu.Unlock()

	release := func() {
		s.mu.Lock()
		s.active--
		s.releases++
		s.mu.Unlock()
	}
	return context.WithValue(ctx, scopeKey{}, s.leases), release, nil
}

// scopedMembers rejects reads that arrive without a dedicated
// connection, the way a single shared connection fails when queried
// concurrently.
type scopedMembers struct{ items []*team.TeamMember }

func (s scopedMembers) Create(context.Context, *team.TeamMember) error { return nil }
func (s scopedMembers) GetByID(context.Context, uuid.UUID) (*team.TeamMember, error) {
	return nil, nil
}
func (s scopedMembers) Update(context.Context, *team.TeamMember) error { return nil }
func (s scopedMembers) Delete(context.Context, uuid.UUID) error        { return nil }
func (s scopedMembers) List(ctx context.Context, limit, offset int) ([]*team.TeamMember, int, error) {
	if ctx.Value(scopeKey{}) == nil {
		return nil, 0, fmt.Errorf("query issued on the shared request connection")
	}
	return s.items, len(s.items), nil
}

func TestFetchAllLeasesPerReadConnections(t *testing.T) {
	practiceID := uuid.New()
	conns := &scopedConns{}

	repos := emptyRepos(practiceID)
	repos.Conns = conns
	repos.Members = scopedMembers{items: []*team.TeamMember{
		{ID: uuid.New(), Name: "Dr. Weber", Role: "dentist", Employment: team.EmploymentActive, FTE: 1.0},
	}}
	svc := NewService(repos, stubGenerator{}, nil)

	raw := svc.fetchAll(context.Background(), practiceID)

	if len(raw.members) != 1 {
		t.Fatalf("members = %d, want 1 (read must run on its leased connection)", len(raw.members))
	}
	if conns.leases != 23 {
		t.Errorf("leases = %d, want 23 (one per collection read)", conns.leases)
	}
	if conns.releases != conns.leases {
		t.Errorf("releases = %d, leases = %d, every lease must be released", conns.releases, conns.leases)
	}
	if conns.active != 0 {
		t.Errorf("active leases after fetch = %d, want 0", conns.active)
	}
}

func TestFetchAllLeaseFailureSoftFails(t *testing.T) {
	practiceID := uuid.New()

	repos := emptyRepos(practiceID)
	repos.Conns = &scopedConns{err: fmt.Errorf("pool exhausted")}
	repos.Members = stubMembers{items: []*team.TeamMember{
		{ID: uuid.New(), Name: "Dr. Weber", Employment: team.EmploymentActive},
	}}
	svc := NewService(repos, stubGenerator{}, nil)

	raw := svc.fetchAll(context.Background(), practiceID)
	if raw.members != nil {
		t.Fatal("read without a connection must fall back to the empty set")
	}

	snap := deriveMetrics(raw, time.Now())
	if snap.TeamSize != 0 {
		t.Errorf("TeamSize = %d, want 0", snap.TeamSize)
	}
}
