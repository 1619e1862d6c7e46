package service

import "deadletter-watchdog/internal/core/domain"

// buildPage wraps assembled records with the page metadata from the
// primary search. The record slice is never nil, even when empty, so the
// JSON envelope always carries an array.
func buildPage(transactions []domain.DeadletterTransaction, page domain.PageInfo) *domain.DeadletterPage {
	if transactions == nil {
		transactions = []domain.DeadletterTransaction{}
	}
	return &domain.DeadletterPage{
		Transactions: transactions,
		Page:         page,
	}
}

// emptyPage is the fail-open listing result: no records, zeroed metadata.
func emptyPage() *domain.DeadletterPage {
	return buildPage(nil, domain.PageInfo{Current: 0, Total: 0, Results: 0})
}
