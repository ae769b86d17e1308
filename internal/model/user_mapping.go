package model

import (
	"fmt"
	"time"
)

// UserMappingConfidence is the fixed confidence assigned to learned
// user mappings. A user's explicit correction always outranks merchant
// and keyword matches, so this sits above every other source.
const UserMappingConfidence = 95

// UserCategoryMapping is a per-user learned association between a
// normalized description pattern and a category. At most one mapping
// exists per (UserID, DescriptionPattern) pair.
type UserCategoryMapping struct {
	LastUsedAt         time.Time `json:"last_used_at"`
	DescriptionPattern string    `json:"description_pattern"`
	ID                 int64     `json:"id"`
	UserID             int64     `json:"user_id"`
	CategoryID         int64     `json:"category_id"`
	Confidence         int       `json:"confidence"`
	UseCount           int       `json:"use_count"`
}

// Validate ensures the mapping has usable data.
func (m *UserCategoryMapping) Validate() error {
	if m.UserID <= 0 {
		return fmt.Errorf("user id is required")
	}
	if m.DescriptionPattern == "" {
		return fmt.Errorf("description pattern is required")
	}
	if m.CategoryID <= 0 {
		return fmt.Errorf("category id is required")
	}
	return nil
}
