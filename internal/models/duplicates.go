package models

import (
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"gorm.io/gorm"
)

// duplicateWindow is how far apart two transactions may be dated and still
// count as potential duplicates.
const duplicateWindow = 7 * 24 * time.Hour

// duplicateThreshold is the maximum normalized edit distance between the
// payee/memo labels of two potential duplicates.
const duplicateThreshold = 0.4

// DuplicateCandidates returns transactions that plausibly duplicate the
// given one: same account, same amount, dated within seven days, with a
// similar payee or memo. It only suggests, merging stays an explicit user
// action.
func DuplicateCandidates(db *gorm.DB, transaction Transaction) ([]Transaction, error) {
	var candidates []Transaction

	err := db.Preload("Payee").
		Where("account_id = ? AND amount = ? AND id != ?", transaction.AccountID, transaction.Amount, transaction.ID).
		Where("date BETWEEN ? AND ?",
			transaction.Date.Add(-duplicateWindow),
			transaction.Date.Add(duplicateWindow),
		).
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}

	matches := make([]Transaction, 0, len(candidates))
	for _, candidate := range candidates {
		if labelsSimilar(transaction, candidate) {
			matches = append(matches, candidate)
		}
	}

	return matches, nil
}

func labelsSimilar(a, b Transaction) bool {
	if similarity(a.PayeeLabel(), b.PayeeLabel()) {
		return true
	}

	return similarity(a.Memo, b.Memo)
}

// similarity compares two labels by normalized levenshtein distance.
func similarity(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))

	if a == "" || b == "" {
		return false
	}

	if a == b {
		return true
	}

	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}

	distance := levenshtein.ComputeDistance(a, b)
	return float64(distance)/float64(longest) < duplicateThreshold
}
