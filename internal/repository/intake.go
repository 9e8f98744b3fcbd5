package repository

import (
	"context"

	"casewrite/internal/model"
)

// IntakeRepository stores the intake ledger using SQL queries only.
// Rows describe submissions and their outcome; workflow results are never stored.
type IntakeRepository interface {
	// Record inserts one ledger row.
	Record(ctx context.Context, rec *model.IntakeRecord) error

	// List returns a page of ledger rows, newest first, and the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.IntakeRecord], error)
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
