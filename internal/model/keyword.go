package model

import "fmt"

// Language tags the language a keyword is written in.
type Language string

const (
	// LanguageEnglish tags English keywords.
	LanguageEnglish Language = "en"
	// LanguageVietnamese tags Vietnamese keywords.
	LanguageVietnamese Language = "vi"
)

// Valid reports whether the language is one of the known values.
func (l Language) Valid() bool {
	switch l {
	case LanguageEnglish, LanguageVietnamese:
		return true
	}
	return false
}

// CategoryKeyword is a generic, language-tagged word or phrase tying
// informal vocabulary to a category. Less precise than a merchant rule;
// Vietnamese keywords typically carry slightly higher confidence than
// their English equivalents.
type CategoryKeyword struct {
	Keyword    string   `json:"keyword"`
	Language   Language `json:"language"`
	ID         int64    `json:"id"`
	CategoryID int64    `json:"category_id"`
	Confidence int      `json:"confidence"`
	IsActive   bool     `json:"is_active"`
}

// Validate ensures the keyword has usable data.
func (k *CategoryKeyword) Validate() error {
	if k.Keyword == "" {
		return fmt.Errorf("keyword is required")
	}
	if k.CategoryID <= 0 {
		return fmt.Errorf("category id is required")
	}
	if k.Confidence < 0 || k.Confidence > 100 {
		return fmt.Errorf("confidence must be between 0 and 100")
	}
	if k.Language == "" {
		return fmt.Errorf("language is required")
	}
	return nil
}
