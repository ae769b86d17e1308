// Package seed provides the built-in starter categories, merchant
// rules, and bilingual keywords for a fresh database.
package seed

import (
	"context"
	"fmt"

	"github.com/ndhoang/moneymind/internal/model"
	"github.com/ndhoang/moneymind/internal/storage"
)

// Category is a starter category definition.
type Category struct {
	Name string
	Type model.CategoryType
}

// Rule is a starter merchant rule keyed by category name.
type Rule struct {
	Pattern    string
	MatchType  model.MatchType
	Category   string
	Confidence int
}

// Keyword is a starter keyword keyed by category name.
type Keyword struct {
	Keyword    string
	Language   model.Language
	Category   string
	Confidence int
}

// Categories are the default spending/income categories.
var Categories = []Category{
	{Name: "Food & Drink", Type: model.CategoryTypeExpense},
	{Name: "Groceries", Type: model.CategoryTypeExpense},
	{Name: "Transport", Type: model.CategoryTypeExpense},
	{Name: "Shopping", Type: model.CategoryTypeExpense},
	{Name: "Entertainment", Type: model.CategoryTypeExpense},
	{Name: "Health", Type: model.CategoryTypeExpense},
	{Name: "Utilities", Type: model.CategoryTypeExpense},
	{Name: "Housing", Type: model.CategoryTypeExpense},
	{Name: "Education", Type: model.CategoryTypeExpense},
	{Name: "Salary", Type: model.CategoryTypeIncome},
	{Name: "Transfers", Type: model.CategoryTypeSystem},
}

// MerchantRules are curated brand rules for the Vietnamese market.
// Curated brand matches carry confidence 100.
var MerchantRules = []Rule{
	{Pattern: "Highlands Coffee", MatchType: model.MatchContains, Category: "Food & Drink", Confidence: 100},
	{Pattern: "Phuc Long", MatchType: model.MatchContains, Category: "Food & Drink", Confidence: 100},
	{Pattern: "The Coffee House", MatchType: model.MatchContains, Category: "Food & Drink", Confidence: 100},
	{Pattern: "Starbucks", MatchType: model.MatchContains, Category: "Food & Drink", Confidence: 100},
	{Pattern: "Gong Cha", MatchType: model.MatchContains, Category: "Food & Drink", Confidence: 100},
	{Pattern: "KFC", MatchType: model.MatchContains, Category: "Food & Drink", Confidence: 100},
	{Pattern: "Lotteria", MatchType: model.MatchContains, Category: "Food & Drink", Confidence: 100},
	{Pattern: "VinMart", MatchType: model.MatchContains, Category: "Groceries", Confidence: 100},
	{Pattern: "WinMart", MatchType: model.MatchContains, Category: "Groceries", Confidence: 100},
	{Pattern: "Co.op Mart", MatchType: model.MatchContains, Category: "Groceries", Confidence: 100},
	{Pattern: "Bach Hoa Xanh", MatchType: model.MatchContains, Category: "Groceries", Confidence: 100},
	{Pattern: "Circle K", MatchType: model.MatchContains, Category: "Groceries", Confidence: 100},
	{Pattern: "Grab", MatchType: model.MatchPrefix, Category: "Transport", Confidence: 100},
	{Pattern: "Be ", MatchType: model.MatchPrefix, Category: "Transport", Confidence: 90},
	{Pattern: "Gojek", MatchType: model.MatchPrefix, Category: "Transport", Confidence: 100},
	{Pattern: "Shopee", MatchType: model.MatchContains, Category: "Shopping", Confidence: 100},
	{Pattern: "Lazada", MatchType: model.MatchContains, Category: "Shopping", Confidence: 100},
	{Pattern: "Tiki", MatchType: model.MatchContains, Category: "Shopping", Confidence: 100},
	{Pattern: "CGV", MatchType: model.MatchContains, Category: "Entertainment", Confidence: 100},
	{Pattern: "Lotte Cinema", MatchType: model.MatchContains, Category: "Entertainment", Confidence: 100},
	{Pattern: "Netflix", MatchType: model.MatchContains, Category: "Entertainment", Confidence: 100},
	{Pattern: "Pharmacity", MatchType: model.MatchContains, Category: "Health", Confidence: 100},
	{Pattern: "Long Chau", MatchType: model.MatchContains, Category: "Health", Confidence: 100},
	{Pattern: "EVN", MatchType: model.MatchPrefix, Category: "Utilities", Confidence: 100},
	{Pattern: "Viettel", MatchType: model.MatchContains, Category: "Utilities", Confidence: 100},
	{Pattern: "VNPT", MatchType: model.MatchContains, Category: "Utilities", Confidence: 100},
	{Pattern: "FPT Telecom", MatchType: model.MatchContains, Category: "Utilities", Confidence: 100},
}

// Keywords are generic fallback terms. Vietnamese keywords carry
// slightly higher confidence than their English equivalents to reflect
// regional specificity.
var Keywords = []Keyword{
	{Keyword: "coffee", Language: model.LanguageEnglish, Category: "Food & Drink", Confidence: 80},
	{Keyword: "cà phê", Language: model.LanguageVietnamese, Category: "Food & Drink", Confidence: 85},
	{Keyword: "trà sữa", Language: model.LanguageVietnamese, Category: "Food & Drink", Confidence: 85},
	{Keyword: "restaurant", Language: model.LanguageEnglish, Category: "Food & Drink", Confidence: 75},
	{Keyword: "nhà hàng", Language: model.LanguageVietnamese, Category: "Food & Drink", Confidence: 80},
	{Keyword: "quán ăn", Language: model.LanguageVietnamese, Category: "Food & Drink", Confidence: 80},
	{Keyword: "ăn sáng", Language: model.LanguageVietnamese, Category: "Food & Drink", Confidence: 78},
	{Keyword: "supermarket", Language: model.LanguageEnglish, Category: "Groceries", Confidence: 75},
	{Keyword: "siêu thị", Language: model.LanguageVietnamese, Category: "Groceries", Confidence: 80},
	{Keyword: "taxi", Language: model.LanguageEnglish, Category: "Transport", Confidence: 80},
	{Keyword: "bus", Language: model.LanguageEnglish, Category: "Transport", Confidence: 70},
	{Keyword: "xe buýt", Language: model.LanguageVietnamese, Category: "Transport", Confidence: 80},
	{Keyword: "xăng", Language: model.LanguageVietnamese, Category: "Transport", Confidence: 82},
	{Keyword: "parking", Language: model.LanguageEnglish, Category: "Transport", Confidence: 72},
	{Keyword: "gửi xe", Language: model.LanguageVietnamese, Category: "Transport", Confidence: 80},
	{Keyword: "shop", Language: model.LanguageEnglish, Category: "Shopping", Confidence: 70},
	{Keyword: "mua sắm", Language: model.LanguageVietnamese, Category: "Shopping", Confidence: 78},
	{Keyword: "cinema", Language: model.LanguageEnglish, Category: "Entertainment", Confidence: 78},
	{Keyword: "xem phim", Language: model.LanguageVietnamese, Category: "Entertainment", Confidence: 82},
	{Keyword: "pharmacy", Language: model.LanguageEnglish, Category: "Health", Confidence: 78},
	{Keyword: "nhà thuốc", Language: model.LanguageVietnamese, Category: "Health", Confidence: 82},
	{Keyword: "hospital", Language: model.LanguageEnglish, Category: "Health", Confidence: 78},
	{Keyword: "bệnh viện", Language: model.LanguageVietnamese, Category: "Health", Confidence: 82},
	{Keyword: "electricity", Language: model.LanguageEnglish, Category: "Utilities", Confidence: 75},
	{Keyword: "tiền điện", Language: model.LanguageVietnamese, Category: "Utilities", Confidence: 82},
	{Keyword: "tiền nước", Language: model.LanguageVietnamese, Category: "Utilities", Confidence: 82},
	{Keyword: "internet", Language: model.LanguageEnglish, Category: "Utilities", Confidence: 72},
	{Keyword: "rent", Language: model.LanguageEnglish, Category: "Housing", Confidence: 78},
	{Keyword: "tiền nhà", Language: model.LanguageVietnamese, Category: "Housing", Confidence: 82},
	{Keyword: "tuition", Language: model.LanguageEnglish, Category: "Education", Confidence: 78},
	{Keyword: "học phí", Language: model.LanguageVietnamese, Category: "Education", Confidence: 82},
	{Keyword: "salary", Language: model.LanguageEnglish, Category: "Salary", Confidence: 80},
	{Keyword: "lương", Language: model.LanguageVietnamese, Category: "Salary", Confidence: 85},
}

// Total is the number of records Apply will write, for progress display.
func Total() int {
	return len(Categories) + len(MerchantRules) + len(Keywords)
}

// Apply inserts the starter data into the store. It is idempotent:
// categories and keywords upsert, and a merchant rule is skipped when
// an identical active pattern already exists for the region.
func Apply(ctx context.Context, store *storage.SQLiteStorage, region string, progress func()) error {
	if progress == nil {
		progress = func() {}
	}

	categoryIDs := make(map[string]int64, len(Categories))
	for _, c := range Categories {
		created, err := store.CreateCategory(ctx, c.Name, c.Type)
		if err != nil {
			return fmt.Errorf("failed to seed category %q: %w", c.Name, err)
		}
		categoryIDs[c.Name] = created.ID
		progress()
	}

	existing, err := store.ListActiveMerchantRules(ctx, region)
	if err != nil {
		return fmt.Errorf("failed to list existing rules: %w", err)
	}
	havePattern := make(map[string]bool, len(existing))
	for _, r := range existing {
		havePattern[r.MerchantPattern] = true
	}

	for _, r := range MerchantRules {
		if havePattern[r.Pattern] {
			progress()
			continue
		}
		rule := &model.MerchantCategoryRule{
			MerchantPattern: r.Pattern,
			MatchType:       r.MatchType,
			CategoryID:      categoryIDs[r.Category],
			Confidence:      r.Confidence,
			IsActive:        true,
			Region:          region,
		}
		if err := store.CreateMerchantRule(ctx, rule); err != nil {
			return fmt.Errorf("failed to seed rule %q: %w", r.Pattern, err)
		}
		progress()
	}

	for _, k := range Keywords {
		kw := &model.CategoryKeyword{
			CategoryID: categoryIDs[k.Category],
			Keyword:    k.Keyword,
			Language:   k.Language,
			Confidence: k.Confidence,
			IsActive:   true,
		}
		if err := store.CreateKeyword(ctx, kw); err != nil {
			return fmt.Errorf("failed to seed keyword %q: %w", k.Keyword, err)
		}
		progress()
	}

	return nil
}
