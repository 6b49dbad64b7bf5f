package db

import (
	"context"
	"fmt"
	"strings"
)

// columnSet lists the columns a partial update may touch. A true value marks
// the column as nullable: empty strings are written as NULL.
type columnSet map[string]bool

var venueColumns = columnSet{
	"name":                false,
	"city":                false,
	"state":               false,
	"address":             false,
	"phone":               true,
	"genres":              false,
	"image_link":          true,
	"facebook_link":       true,
	"website":             true,
	"seeking_talent":      false,
	"seeking_description": true,
}

var artistColumns = columnSet{
	"name":                false,
	"city":                false,
	"state":               false,
	"phone":               true,
	"genres":              false,
	"image_link":          true,
	"facebook_link":       true,
	"website":             true,
	"seeking_venue":       false,
	"seeking_description": true,
}

// buildUpdate renders "UPDATE table SET ... WHERE id = $n" for the given
// assignments, in the order they were given.
func buildUpdate(table string, allowed columnSet, id int64, set []Assignment) (string, []any, error) {
	clauses := make([]string, 0, len(set))
	args := make([]any, 0, len(set)+1)

	for i, a := range set {
		nullable, ok := allowed[a.Column]
		if !ok {
			return "", nil, fmt.Errorf("%w: unknown column %q", ErrInvalidInput, a.Column)
		}
		placeholder := fmt.Sprintf("$%d", i+1)
		if nullable {
			placeholder = fmt.Sprintf("NULLIF(%s, '')", placeholder)
		}
		clauses = append(clauses, a.Column+" = "+placeholder)
		args = append(args, a.Value)
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d",
		table, strings.Join(clauses, ", "), len(set)+1)
	return query, args, nil
}

// updateByID applies a partial update. An empty assignment list only checks
// that the row exists.
func updateByID(ctx context.Context, q querier, table string, allowed columnSet, id int64, set []Assignment) error {
	if len(set) == 0 {
		var one int
		query := fmt.Sprintf("SELECT 1 FROM %s WHERE id = $1", table)
		if err := q.QueryRowContext(ctx, query, id).Scan(&one); err != nil {
			return fmt.Errorf("checking %s row: %w", table, classify(err))
		}
		return nil
	}

	query, args, err := buildUpdate(table, allowed, id, set)
	if err != nil {
		return err
	}

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating %s row: %w", table, classify(err))
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating %s row: %w", table, classify(err))
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// deleteByID removes one row. Dependent shows go with it through the
// ON DELETE CASCADE foreign keys.
func deleteByID(ctx context.Context, q querier, table string, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", table)
	result, err := q.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting %s row: %w", table, classify(err))
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting %s row: %w", table, classify(err))
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
