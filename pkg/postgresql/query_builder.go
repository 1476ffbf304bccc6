package postgresql

import (
	"fmt"
	"strings"
)

// queryBuilder implements QueryBuilder interface
type queryBuilder struct {
	selectCols  []string
	fromTable   string
	whereCond   []string
	whereArgs   []any
	orderByCols []string
	limitVal    *int
	offsetVal   *int
	argCounter  int
}

// NewQueryBuilder creates a new query builder
func NewQueryBuilder() QueryBuilder {
	return &queryBuilder{
		selectCols:  make([]string, 0),
		whereCond:   make([]string, 0),
		whereArgs:   make([]any, 0),
		orderByCols: make([]string, 0),
	}
}

func (qb *queryBuilder) Select(columns ...string) QueryBuilder {
	qb.selectCols = append(qb.selectCols, columns...)
	return qb
}

func (qb *queryBuilder) From(table string) QueryBuilder {
	qb.fromTable = table
	return qb
}

func (qb *queryBuilder) Where(condition string, args ...any) QueryBuilder {
	// Replace ? placeholders with $1, $2, etc. (PostgreSQL style)
	for range args {
		qb.argCounter++
		condition = strings.Replace(condition, "?", fmt.Sprintf("$%d", qb.argCounter), 1)
	}
	qb.whereCond = append(qb.whereCond, condition)
	qb.whereArgs = append(qb.whereArgs, args...)
	return qb
}

func (qb *queryBuilder) OrderBy(column string, desc ...bool) QueryBuilder {
	order := "ASC"
	if len(desc) > 0 && desc[0] {
		order = "DESC"
	}
	qb.orderByCols = append(qb.orderByCols, fmt.Sprintf("%s %s", column, order))
	return qb
}

func (qb *queryBuilder) Limit(limit int) QueryBuilder {
	qb.limitVal = &limit
	return qb
}

func (qb *queryBuilder) Offset(offset int) QueryBuilder {
	qb.offsetVal = &offset
	return qb
}

func (qb *queryBuilder) Build() (string, []any) {
	var query strings.Builder

	query.WriteString("SELECT ")
	if len(qb.selectCols) == 0 {
		query.WriteString("*")
	} else {
		query.WriteString(strings.Join(qb.selectCols, ", "))
	}

	if qb.fromTable != "" {
		query.WriteString(" FROM ")
		query.WriteString(qb.fromTable)
	}

	if len(qb.whereCond) > 0 {
		query.WriteString(" WHERE ")
		query.WriteString(strings.Join(qb.whereCond, " AND "))
	}

	if len(qb.orderByCols) > 0 {
		query.WriteString(" ORDER BY ")
		query.WriteString(strings.Join(qb.orderByCols, ", "))
	}

	if qb.limitVal != nil {
		qb.argCounter++
		query.WriteString(fmt.Sprintf(" LIMIT $%d", qb.argCounter))
	}

	if qb.offsetVal != nil {
		qb.argCounter++
		query.WriteString(fmt.Sprintf(" OFFSET $%d", qb.argCounter))
	}

	allArgs := make([]any, 0, len(qb.whereArgs)+2)
	allArgs = append(allArgs, qb.whereArgs...)

	if qb.limitVal != nil {
		allArgs = append(allArgs, *qb.limitVal)
	}
	if qb.offsetVal != nil {
		allArgs = append(allArgs, *qb.offsetVal)
	}

	return query.String(), allArgs
}

func (qb *queryBuilder) Reset() QueryBuilder {
	return NewQueryBuilder()
}

// insertBuilder implements InsertBuilder interface
type insertBuilder struct {
	table      string
	columns    []string
	values     [][]any
	onConflict string
	returning  []string
}

// NewInsertBuilder creates a new insert builder
func NewInsertBuilder() InsertBuilder {
	return &insertBuilder{
		columns:   make([]string, 0),
		values:    make([][]any, 0),
		returning: make([]string, 0),
	}
}

func (ib *insertBuilder) Into(table string) InsertBuilder {
	ib.table = table
	return ib
}

func (ib *insertBuilder) Columns(columns ...string) InsertBuilder {
	ib.columns = columns
	return ib
}

func (ib *insertBuilder) Values(values ...any) InsertBuilder {
	ib.values = append(ib.values, values)
	return ib
}

func (ib *insertBuilder) OnConflict(constraint string) InsertBuilder {
	ib.onConflict = fmt.Sprintf("ON CONFLICT (%s)", constraint)
	return ib
}

func (ib *insertBuilder) OnConflictDoNothing() InsertBuilder {
	ib.onConflict += " DO NOTHING"
	return ib
}

func (ib *insertBuilder) Returning(columns ...string) InsertBuilder {
	ib.returning = columns
	return ib
}

func (ib *insertBuilder) Build() (string, []any) {
	var query strings.Builder
	var args []any

	query.WriteString("INSERT INTO ")
	query.WriteString(ib.table)

	if len(ib.columns) > 0 {
		query.WriteString(" (")
		query.WriteString(strings.Join(ib.columns, ", "))
		query.WriteString(")")
	}

	query.WriteString(" VALUES ")

	valuePlaceholders := make([]string, len(ib.values))
	argIndex := 0

	for i, row := range ib.values {
		placeholders := make([]string, len(row))
		for j := range row {
			argIndex++
			placeholders[j] = fmt.Sprintf("$%d", argIndex)
			args = append(args, row[j])
		}
		valuePlaceholders[i] = "(" + strings.Join(placeholders, ", ") + ")"
	}

	query.WriteString(strings.Join(valuePlaceholders, ", "))

	if ib.onConflict != "" {
		query.WriteString(" ")
		query.WriteString(ib.onConflict)
	}

	if len(ib.returning) > 0 {
		query.WriteString(" RETURNING ")
		query.WriteString(strings.Join(ib.returning, ", "))
	}

	return query.String(), args
}

func (ib *insertBuilder) Reset() InsertBuilder {
	return NewInsertBuilder()
}

// updateBuilder implements UpdateBuilder interface
type updateBuilder struct {
	table      string
	setCols    []string
	setArgs    []any
	whereCond  []string
	whereArgs  []any
	returning  []string
	argCounter int
}

// NewUpdateBuilder creates a new update builder
func NewUpdateBuilder() UpdateBuilder {
	return &updateBuilder{
		setCols:   make([]string, 0),
		setArgs:   make([]any, 0),
		whereCond: make([]string, 0),
		whereArgs: make([]any, 0),
		returning: make([]string, 0),
	}
}

func (ub *updateBuilder) Table(table string) UpdateBuilder {
	ub.table = table
	return ub
}

func (ub *updateBuilder) Set(column string, value any) UpdateBuilder {
	ub.argCounter++
	ub.setCols = append(ub.setCols, fmt.Sprintf("%s = $%d", column, ub.argCounter))
	ub.setArgs = append(ub.setArgs, value)
	return ub
}

func (ub *updateBuilder) Where(condition string, args ...any) UpdateBuilder {
	for range args {
		ub.argCounter++
		condition = strings.Replace(condition, "?", fmt.Sprintf("$%d", ub.argCounter), 1)
	}
	ub.whereCond = append(ub.whereCond, condition)
	ub.whereArgs = append(ub.whereArgs, args...)
	return ub
}

func (ub *updateBuilder) Returning(columns ...string) UpdateBuilder {
	ub.returning = columns
	return ub
}

func (ub *updateBuilder) Build() (string, []any) {
	var query strings.Builder

	query.WriteString("UPDATE ")
	query.WriteString(ub.table)
	query.WriteString(" SET ")
	query.WriteString(strings.Join(ub.setCols, ", "))

	if len(ub.whereCond) > 0 {
		query.WriteString(" WHERE ")
		query.WriteString(strings.Join(ub.whereCond, " AND "))
	}

	if len(ub.returning) > 0 {
		query.WriteString(" RETURNING ")
		query.WriteString(strings.Join(ub.returning, ", "))
	}

	args := make([]any, 0, len(ub.setArgs)+len(ub.whereArgs))
	args = append(args, ub.setArgs...)
	args = append(args, ub.whereArgs...)

	return query.String(), args
}

func (ub *updateBuilder) Reset() UpdateBuilder {
	return NewUpdateBuilder()
}
