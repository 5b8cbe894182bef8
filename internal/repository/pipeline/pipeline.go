// Package pipeline composes paginated read-model queries from an ordered
// list of optional stages: filters, to-one joins, derived columns, sort and
// page window. Each stage is an explicit value; nothing is mutated after
// Build.
package pipeline

import (
	"fmt"
	"math"
	"strings"
)

const (
	DefaultPage = 1
	MaxLimit    = 100
	// MaxPage keeps (page-1)*limit inside int for any limit <= MaxLimit.
	MaxPage = math.MaxInt / MaxLimit
)

// Args allocates positional placeholders for a statement.
type Args struct {
	values []any
}

// Add appends v and returns its placeholder.
func (a *Args) Add(v any) string {
	a.values = append(a.values, v)
	return fmt.Sprintf("$%d", len(a.values))
}

func (a *Args) Values() []any {
	return append([]any(nil), a.values...)
}

// Filter renders one predicate of the WHERE clause. A nil Filter is skipped.
type Filter func(args *Args) string

// Eq matches column = value.
func Eq(column string, value any) Filter {
	return func(args *Args) string {
		return fmt.Sprintf("%s = %s", column, args.Add(value))
	}
}

// AnyOf matches column against any element of values, bound as one array argument.
func AnyOf[T any](column string, values []T) Filter {
	return func(args *Args) string {
		return fmt.Sprintf("%s = ANY(%s)", column, args.Add(values))
	}
}

// Raw adds a predicate that needs no arguments.
func Raw(predicate string) Filter {
	return func(*Args) string { return predicate }
}

// When returns f if cond holds, nil otherwise.
func When(cond bool, f Filter) Filter {
	if !cond {
		return nil
	}
	return f
}

// Search matches a case-insensitive substring against any of columns.
// It returns nil for a blank term.
func Search(term string, columns ...string) Filter {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return nil
	}
	return func(args *Args) string {
		ph := args.Add("%" + EscapeLike(term) + "%")
		parts := make([]string, len(columns))
		for i, c := range columns {
			parts[i] = fmt.Sprintf("%s ILIKE %s", c, ph)
		}
		return "(" + strings.Join(parts, " OR ") + ")"
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE wildcards so term is matched literally.
func EscapeLike(term string) string {
	return likeEscaper.Replace(term)
}

// Sort is a whitelisted ordering.
type Sort struct {
	Column string
	Desc   bool
}

// SortFields maps API sort keys to SQL columns.
type SortFields struct {
	Allowed map[string]string
	Default string
}

// Resolve picks the column for key, falling back to the default key.
// Only an explicit "desc" sorts descending.
func (f SortFields) Resolve(key, direction string) Sort {
	column, ok := f.Allowed[key]
	if !ok {
		column = f.Allowed[f.Default]
	}
	return Sort{Column: column, Desc: strings.EqualFold(direction, "desc")}
}

func (s Sort) String() string {
	if s.Desc {
		return s.Column + " DESC"
	}
	return s.Column + " ASC"
}

// Pagination is a normalized page window.
type Pagination struct {
	Page  int
	Limit int
}

// NewPagination clamps page to 1..MaxPage and limit to 1..MaxLimit.
func NewPagination(page, limit, defaultLimit int) Pagination {
	if page < 1 {
		page = DefaultPage
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Pagination{Page: page, Limit: limit}
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Statement is a SQL string with its arguments.
type Statement struct {
	SQL  string
	Args []any
}

// Query describes a read model before it is rendered.
type Query struct {
	from     string
	columns  []func(*Args) string
	joins    []string
	filters  []Filter
	orderBy  []Sort
	tieBreak string
	page     *Pagination
}

// From starts a query over the given table expression, e.g. "videos v".
func From(table string) *Query {
	return &Query{from: table}
}

func (q *Query) Select(columns ...string) *Query {
	for _, c := range columns {
		q.columns = append(q.columns, func(*Args) string { return c })
	}
	return q
}

// SelectArg adds a column expression bound to value; format holds one %s for its placeholder.
func (q *Query) SelectArg(format string, value any) *Query {
	q.columns = append(q.columns, func(args *Args) string {
		return fmt.Sprintf(format, args.Add(value))
	})
	return q
}

// Join adds a join clause. Joins used here must be to-one so they never
// change the row count.
func (q *Query) Join(clause string) *Query {
	if clause != "" {
		q.joins = append(q.joins, clause)
	}
	return q
}

// Where appends filters; nil filters are dropped.
func (q *Query) Where(filters ...Filter) *Query {
	for _, f := range filters {
		if f != nil {
			q.filters = append(q.filters, f)
		}
	}
	return q
}

func (q *Query) OrderBy(s Sort) *Query {
	if s.Column != "" {
		q.orderBy = append(q.orderBy, s)
	}
	return q
}

// TieBreak sets a unique column appended to ORDER BY so pages are stable.
func (q *Query) TieBreak(column string) *Query {
	q.tieBreak = column
	return q
}

func (q *Query) Paginate(p Pagination) *Query {
	q.page = &p
	return q
}

// Build renders the data statement and the matching count statement.
// The count statement covers the filter stage only and ignores sort and page window.
// Filter arguments are allocated first so the count arguments are a prefix of the data arguments.
func (q *Query) Build() (data Statement, count Statement) {
	args := &Args{}

	var where string
	if len(q.filters) > 0 {
		preds := make([]string, 0, len(q.filters))
		for _, f := range q.filters {
			preds = append(preds, f(args))
		}
		where = " WHERE " + strings.Join(preds, " AND ")
	}

	var joins string
	if len(q.joins) > 0 {
		joins = " " + strings.Join(q.joins, " ")
	}

	count = Statement{
		SQL:  "SELECT COUNT(*) FROM " + q.from + joins + where,
		Args: args.Values(),
	}

	columns := "*"
	if len(q.columns) > 0 {
		rendered := make([]string, len(q.columns))
		for i, c := range q.columns {
			rendered[i] = c(args)
		}
		columns = strings.Join(rendered, ", ")
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(columns)
	sb.WriteString(" FROM ")
	sb.WriteString(q.from)
	sb.WriteString(joins)
	sb.WriteString(where)

	order := make([]string, 0, len(q.orderBy)+1)
	for _, s := range q.orderBy {
		order = append(order, s.String())
	}
	if q.tieBreak != "" {
		order = append(order, q.tieBreak+" ASC")
	}
	if len(order) > 0 {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(order, ", "))
	}

	if q.page != nil {
		sb.WriteString(" LIMIT ")
		sb.WriteString(args.Add(q.page.Limit))
		sb.WriteString(" OFFSET ")
		sb.WriteString(args.Add(q.page.Offset()))
	}

	data = Statement{SQL: sb.String(), Args: args.Values()}
	return data, count
}
