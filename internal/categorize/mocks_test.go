package categorize

import (
	"context"
	"strings"
	"sync"

	"github.com/ndhoang/moneymind/internal/common"
	"github.com/ndhoang/moneymind/internal/model"
)

// mockRuleRepo is a test double for MerchantRuleRepository.
type mockRuleRepo struct {
	listErr     error
	incremented chan int64
	rules       []model.MerchantCategoryRule
	mu          sync.Mutex
	increments  []int64
}

func (m *mockRuleRepo) ListActiveMerchantRules(_ context.Context, region string) ([]model.MerchantCategoryRule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []model.MerchantCategoryRule
	for _, r := range m.rules {
		if r.IsActive && r.Region == region {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockRuleRepo) IncrementRuleUseCount(_ context.Context, id int64) error {
	m.mu.Lock()
	m.increments = append(m.increments, id)
	m.mu.Unlock()
	if m.incremented != nil {
		m.incremented <- id
	}
	return nil
}

// mockKeywordRepo is a test double for KeywordRepository.
type mockKeywordRepo struct {
	listErr  error
	keywords []model.CategoryKeyword
	mu       sync.Mutex
}

func (m *mockKeywordRepo) ListActiveKeywords(_ context.Context) ([]model.CategoryKeyword, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []model.CategoryKeyword
	for _, k := range m.keywords {
		if k.IsActive {
			out = append(out, k)
		}
	}
	return out, nil
}

// mockMappingRepo is a test double for UserMappingRepository backed by
// an in-memory map keyed on (user, pattern).
type mockMappingRepo struct {
	listErr   error
	upsertErr error
	touched   chan int64
	mappings  []model.UserCategoryMapping
	mu        sync.Mutex
	nextID    int64
}

func (m *mockMappingRepo) ListUserMappings(_ context.Context, userID int64) ([]model.UserCategoryMapping, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []model.UserCategoryMapping
	for _, mp := range m.mappings {
		if mp.UserID == userID {
			out = append(out, mp)
		}
	}
	return out, nil
}

func (m *mockMappingRepo) GetUserMappingByPattern(_ context.Context, userID int64, pattern string) (*model.UserCategoryMapping, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, mp := range m.mappings {
		if mp.UserID == userID && mp.DescriptionPattern == pattern {
			found := mp
			return &found, nil
		}
	}
	return nil, common.ErrNotFound
}

func (m *mockMappingRepo) UpsertUserMapping(_ context.Context, mapping *model.UserCategoryMapping) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.upsertErr != nil {
		return m.upsertErr
	}
	for i := range m.mappings {
		if m.mappings[i].UserID == mapping.UserID &&
			strings.EqualFold(m.mappings[i].DescriptionPattern, mapping.DescriptionPattern) {
			mapping.ID = m.mappings[i].ID
			m.mappings[i] = *mapping
			return nil
		}
	}
	m.nextID++
	mapping.ID = m.nextID
	m.mappings = append(m.mappings, *mapping)
	return nil
}

func (m *mockMappingRepo) TouchUserMapping(_ context.Context, id int64) error {
	m.mu.Lock()
	for i := range m.mappings {
		if m.mappings[i].ID == id {
			m.mappings[i].UseCount++
		}
	}
	m.mu.Unlock()
	if m.touched != nil {
		m.touched <- id
	}
	return nil
}
