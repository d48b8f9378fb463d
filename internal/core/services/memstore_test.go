package services_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/pharma_backend/internal/apperrors"
	"github.com/SscSPs/pharma_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/pharma_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// memStore is an in-memory stand-in for the Postgres repositories. It enforces the same
// per-company uniqueness and restrict rules as the schema.
type memStore struct {
	mu        sync.Mutex
	companies []domain.Company
	groups    map[string]domain.Group
	ledgers   map[string]domain.Ledger
	txnCounts map[string]int
}

func newMemStore() *memStore {
	return &memStore{
		groups:    map[string]domain.Group{},
		ledgers:   map[string]domain.Ledger{},
		txnCounts: map[string]int{},
	}
}

func (s *memStore) provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CompanyRepo:     s,
		GroupRepo:       s,
		LedgerRepo:      s,
		TransactionRepo: s,
	}
}

var (
	_ portsrepo.CompanyRepositoryFacade = (*memStore)(nil)
	_ portsrepo.GroupRepositoryFacade   = (*memStore)(nil)
	_ portsrepo.LedgerRepositoryFacade  = (*memStore)(nil)
	_ portsrepo.TransactionReader       = (*memStore)(nil)
)

// --- companies ---

func (s *memStore) FindCompanyByID(_ context.Context, companyID string) (*domain.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.companies {
		if c.CompanyID == companyID {
			c := c
			return &c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *memStore) FindLatestCompany(_ context.Context) (*domain.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.companies) == 0 {
		return nil, apperrors.ErrNotFound
	}
	c := s.companies[len(s.companies)-1]
	return &c, nil
}

func (s *memStore) ListCompanies(_ context.Context) ([]domain.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Company(nil), s.companies...), nil
}

func (s *memStore) SaveCompany(_ context.Context, company domain.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.companies {
		if c.Name == company.Name {
			return apperrors.DuplicateCompanyName(company.Name)
		}
	}
	s.companies = append(s.companies, company)
	return nil
}

// --- groups ---

func (s *memStore) FindGroupByID(_ context.Context, companyID string, groupID string) (*domain.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.groups[groupID]
	if !ok || g.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return &g, nil
}

func (s *memStore) GroupNameExists(_ context.Context, companyID string, name string, excludeGroupID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.groupNameTaken(companyID, name, excludeGroupID), nil
}

func (s *memStore) groupNameTaken(companyID, name, excludeID string) bool {
	for _, g := range s.groups {
		if g.CompanyID == companyID && g.GroupName == name && g.GroupID != excludeID {
			return true
		}
	}
	return false
}

func (s *memStore) ListGroups(_ context.Context, companyID string, filter domain.GroupFilter) ([]domain.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Group
	for _, g := range s.groups {
		if g.CompanyID != companyID {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(g.GroupName), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.GroupType != "" && g.GroupType != filter.GroupType {
			continue
		}
		if filter.Status != "" && g.Status != filter.Status {
			continue
		}
		if filter.ParentGroupID != "" && (g.ParentGroupID == nil || *g.ParentGroupID != filter.ParentGroupID) {
			continue
		}
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].GroupName < out[j].GroupName
	})
	return out, nil
}

func (s *memStore) HasDefaultGroups(_ context.Context, companyID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.groups {
		if g.CompanyID == companyID && g.IsDefault {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) CountGroupDependents(_ context.Context, companyID string, groupID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dependents(companyID, groupID), nil
}

func (s *memStore) dependents(companyID, groupID string) int {
	n := 0
	for _, g := range s.groups {
		if g.CompanyID == companyID && g.ParentGroupID != nil && *g.ParentGroupID == groupID {
			n++
		}
	}
	for _, l := range s.ledgers {
		if l.CompanyID == companyID && l.GroupID == groupID {
			n++
		}
	}
	return n
}

func (s *memStore) SaveGroup(_ context.Context, group domain.Group) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.groupNameTaken(group.CompanyID, group.GroupName, "") {
		return apperrors.DuplicateGroupName(group.GroupName)
	}
	s.groups[group.GroupID] = group
	return nil
}

func (s *memStore) UpdateGroup(_ context.Context, group domain.Group) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.groups[group.GroupID]; !ok {
		return apperrors.GroupNotFound(group.GroupID)
	}
	if s.groupNameTaken(group.CompanyID, group.GroupName, group.GroupID) {
		return apperrors.DuplicateGroupName(group.GroupName)
	}
	s.groups[group.GroupID] = group
	return nil
}

func (s *memStore) SetGroupParent(_ context.Context, companyID string, groupID string, parentGroupID string, undergroup string, userID string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.groups[groupID]
	if !ok || g.CompanyID != companyID {
		return apperrors.GroupNotFound(groupID)
	}
	if p, ok := s.groups[parentGroupID]; !ok || p.CompanyID != companyID {
		return apperrors.GroupNotFound(parentGroupID)
	}
	g.ParentGroupID = &parentGroupID
	g.Undergroup = undergroup
	g.Touch(now, userID)
	s.groups[groupID] = g
	return nil
}

func (s *memStore) DeleteGroup(_ context.Context, companyID string, groupID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.groups[groupID]
	if !ok || g.CompanyID != companyID {
		return apperrors.GroupNotFound(groupID)
	}
	if s.dependents(companyID, groupID) > 0 {
		return apperrors.GroupInUse(g.GroupName)
	}
	delete(s.groups, groupID)
	return nil
}

// --- ledgers ---

func (s *memStore) FindLedgerByID(_ context.Context, companyID string, ledgerID string) (*domain.Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.ledgers[ledgerID]
	if !ok || l.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return &l, nil
}

func (s *memStore) LedgerNameExists(_ context.Context, companyID string, name string, excludeLedgerID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledgerNameTaken(companyID, name, excludeLedgerID), nil
}

func (s *memStore) ledgerNameTaken(companyID, name, excludeID string) bool {
	for _, l := range s.ledgers {
		if l.CompanyID == companyID && l.LedgerName == name && l.LedgerID != excludeID {
			return true
		}
	}
	return false
}

func (s *memStore) sortedLedgers(keep func(domain.Ledger) bool) []domain.Ledger {
	var out []domain.Ledger
	for _, l := range s.ledgers {
		if keep(l) {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].LedgerName < out[j].LedgerName
	})
	return out
}

func (s *memStore) ListLedgers(_ context.Context, companyID string, filter domain.LedgerFilter) ([]domain.Ledger, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	search := strings.ToLower(filter.Search)
	all := s.sortedLedgers(func(l domain.Ledger) bool {
		switch {
		case l.CompanyID != companyID:
			return false
		case search != "" && !strings.Contains(strings.ToLower(l.LedgerName), search) && !strings.Contains(strings.ToLower(l.Description), search):
			return false
		case filter.GroupID != "" && l.GroupID != filter.GroupID:
			return false
		case filter.BalanceType != "" && l.BalanceType != filter.BalanceType:
			return false
		case filter.Status != "" && l.Status != filter.Status:
			return false
		case filter.IsActive != nil && l.IsActive != *filter.IsActive:
			return false
		}
		return true
	})
	total := len(all)
	start := filter.Offset()
	if start > total {
		start = total
	}
	end := start + filter.Limit
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}

func (s *memStore) ListActiveLedgersByGroup(_ context.Context, companyID string, groupID string) ([]domain.Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedLedgers(func(l domain.Ledger) bool {
		return l.CompanyID == companyID && l.GroupID == groupID && l.IsActive
	}), nil
}

func (s *memStore) ListDefaultLedgers(_ context.Context, companyID string, groupID string) ([]domain.Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedLedgers(func(l domain.Ledger) bool {
		return l.CompanyID == companyID && l.IsDefault && l.IsActive && (groupID == "" || l.GroupID == groupID)
	}), nil
}

func (s *memStore) FindLedgersByKeyword(_ context.Context, companyID string, keyword string) ([]domain.Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	keyword = strings.ToLower(keyword)
	out := s.sortedLedgers(func(l domain.Ledger) bool {
		return l.CompanyID == companyID && strings.Contains(strings.ToLower(l.LedgerName), keyword)
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].IsDefault && !out[j].IsDefault })
	return out, nil
}

func (s *memStore) SaveLedger(_ context.Context, ledger domain.Ledger) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ledgerNameTaken(ledger.CompanyID, ledger.LedgerName, "") {
		return apperrors.DuplicateLedgerName(ledger.LedgerName)
	}
	if g, ok := s.groups[ledger.GroupID]; !ok || g.CompanyID != ledger.CompanyID {
		return apperrors.GroupNotFound(ledger.GroupID)
	}
	s.ledgers[ledger.LedgerID] = ledger
	return nil
}

func (s *memStore) SaveLedgers(_ context.Context, ledgers []domain.Ledger) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var skipped []string
	for _, l := range ledgers {
		if s.ledgerNameTaken(l.CompanyID, l.LedgerName, "") {
			skipped = append(skipped, l.LedgerName)
			continue
		}
		s.ledgers[l.LedgerID] = l
	}
	return skipped, nil
}

func (s *memStore) UpdateLedger(_ context.Context, ledger domain.Ledger) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ledgers[ledger.LedgerID]; !ok {
		return apperrors.LedgerNotFound(ledger.LedgerID)
	}
	if s.ledgerNameTaken(ledger.CompanyID, ledger.LedgerName, ledger.LedgerID) {
		return apperrors.DuplicateLedgerName(ledger.LedgerName)
	}
	s.ledgers[ledger.LedgerID] = ledger
	return nil
}

func (s *memStore) ResetOpeningBalance(_ context.Context, companyID string, ledgerID string, amount decimal.Decimal, userID string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.ledgers[ledgerID]
	if !ok || l.CompanyID != companyID {
		return apperrors.LedgerNotFound(ledgerID)
	}
	l.OpeningBalance = amount
	l.Balance = amount
	l.Touch(now, userID)
	s.ledgers[ledgerID] = l
	return nil
}

func (s *memStore) DeleteLedger(_ context.Context, companyID string, ledgerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.ledgers[ledgerID]
	if !ok || l.CompanyID != companyID {
		return apperrors.LedgerNotFound(ledgerID)
	}
	if s.txnCounts[ledgerID] > 0 {
		return apperrors.LedgerHasTransactions(l.LedgerName)
	}
	delete(s.ledgers, ledgerID)
	return nil
}

// --- transactions ---

func (s *memStore) CountTransactionsByLedger(_ context.Context, _ string, ledgerID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.txnCounts[ledgerID], nil
}

func (s *memStore) postTransactions(ledgerID string, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txnCounts[ledgerID] += n
}

func (s *memStore) ledgerByName(companyID, name string) (domain.Ledger, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.ledgers {
		if l.CompanyID == companyID && l.LedgerName == name {
			return l, true
		}
	}
	return domain.Ledger{}, false
}

func (s *memStore) groupByName(companyID, name string) (domain.Group, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.groups {
		if g.CompanyID == companyID && g.GroupName == name {
			return g, true
		}
	}
	return domain.Group{}, false
}

func (s *memStore) counts(companyID string) (groups, ledgers int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.groups {
		if g.CompanyID == companyID {
			groups++
		}
	}
	for _, l := range s.ledgers {
		if l.CompanyID == companyID {
			ledgers++
		}
	}
	return groups, ledgers
}
