package services

import (
	"strconv"
	"strings"

	"job-board-api/internal/storage"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageRequest is a coerced 1-based page request.
type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest parses raw query values. Missing, non-numeric and
// non-positive values fall back to the defaults; limit is capped at MaxLimit.
func NewPageRequest(page, limit string) PageRequest {
	return PageRequest{
		Page:  positiveOr(page, DefaultPage),
		Limit: min(positiveOr(limit, DefaultLimit), MaxLimit),
	}
}

func positiveOr(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func (p PageRequest) normalized() PageRequest {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset is the number of rows skipped before the page starts.
func (p PageRequest) Offset() int {
	p = p.normalized()
	return (p.Page - 1) * p.Limit
}

func (p PageRequest) storagePage() storage.Page {
	p = p.normalized()
	return storage.Page{Limit: p.Limit, Offset: p.Offset()}
}

// Pagination summarizes a page of a listing.
type Pagination struct {
	TotalItems   int
	TotalPages   int
	CurrentPage  int
	ItemsPerPage int
}

// NewPagination computes the summary for total matching rows.
func NewPagination(total int, req PageRequest) Pagination {
	req = req.normalized()
	return Pagination{
		TotalItems:   total,
		TotalPages:   (total + req.Limit - 1) / req.Limit,
		CurrentPage:  req.Page,
		ItemsPerPage: req.Limit,
	}
}
