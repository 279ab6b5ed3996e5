package reporting

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	apperrors "myjobs/internal/errors"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

// HelpLimit caps autocomplete suggestions
const HelpLimit = 10

const dateLayout = "2006-01-02"

var dialect = goqu.Dialect("postgres")

// Query is a prepared SQL statement with its arguments and output columns
type Query struct {
	SQL     string
	Args    []interface{}
	Columns []Column
}

// Filters maps a field name to its JSON filter
type Filters map[string]json.RawMessage

// Build translates a report definition into a company-scoped query over
// non-archived rows.
func Build(dt *DataType, companyID uuid.UUID, filters Filters, values []string, orderBy string) (*Query, error) {
	cols, err := dt.ResolveColumns(values)
	if err != nil {
		return nil, err
	}

	ds := scoped(dt, companyID)

	selects := make([]interface{}, 0, len(cols))
	for _, c := range cols {
		selects = append(selects, selectExpr(dt, c))
	}
	ds = ds.Select(selects...)

	where, err := filterExpressions(dt, filters)
	if err != nil {
		return nil, err
	}
	if len(where) > 0 {
		ds = ds.Where(where...)
	}

	if orderBy == "" {
		orderBy = dt.DefaultOrder
	}
	if orderBy != "" {
		order, err := orderExpr(dt, orderBy)
		if err != nil {
			return nil, err
		}
		ds = ds.Order(order)
	}

	sql, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build report query: %w", err)
	}
	return &Query{SQL: sql, Args: args, Columns: cols}, nil
}

// BuildHelp returns up to HelpLimit distinct values of field starting with partial
func BuildHelp(dt *DataType, companyID uuid.UUID, field, partial string) (*Query, error) {
	col, ok := dt.Column(field)
	if !ok || !col.Filterable {
		return nil, fmt.Errorf("%w: %q is not filterable", apperrors.ErrInvalidFilter, field)
	}
	if col.Type != TypeString && col.Type != TypeTags {
		return nil, invalidFilter(field, "help is only available for text fields")
	}
	prefix := escapeLike(partial) + "%"

	var ds *goqu.SelectDataset
	if col.Type == TypeTags {
		ds = dialect.From(goqu.T("prm_tags").As("t")).
			Select(goqu.I("t.name").As("value")).
			Where(goqu.I("t.company_id").Eq(companyID.String()), goqu.I("t.name").ILike(prefix)).
			Order(goqu.I("t.name").Asc())
	} else {
		ds = scoped(dt, companyID).
			Select(goqu.I(col.Column).As("value")).
			Where(goqu.I(col.Column).ILike(prefix)).
			Order(goqu.I(col.Column).Asc())
	}
	ds = ds.Distinct().Limit(HelpLimit)

	sql, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build help query: %w", err)
	}
	return &Query{SQL: sql, Args: args, Columns: []Column{{Field: "value", Type: TypeString}}}, nil
}

func scoped(dt *DataType, companyID uuid.UUID) *goqu.SelectDataset {
	ds := dialect.From(goqu.T(dt.Table).As(dt.Alias))
	for _, j := range dt.Joins {
		table := goqu.T(j.Table).As(j.Alias)
		if j.Type == "left" {
			ds = ds.LeftJoin(table, goqu.On(goqu.L(j.On)))
		} else {
			ds = ds.InnerJoin(table, goqu.On(goqu.L(j.On)))
		}
	}
	ds = ds.Where(goqu.I(dt.CompanyColumn).Eq(companyID.String()))
	if dt.ArchivedColumn != "" {
		ds = ds.Where(goqu.I(dt.ArchivedColumn).IsNull())
	}
	return ds
}

func selectExpr(dt *DataType, c Column) interface{} {
	if c.Type == TypeTags {
		return goqu.L(fmt.Sprintf(
			"(SELECT string_agg(t.name, ', ' ORDER BY t.name) FROM prm_tags t JOIN %s jt ON jt.tag_id = t.id WHERE jt.%s = %s.id)",
			dt.Tags.JoinTable, dt.Tags.ForeignKey, dt.Alias,
		)).As(c.Field)
	}
	return goqu.I(c.Column).As(c.Field)
}

func orderExpr(dt *DataType, orderBy string) (exp.OrderedExpression, error) {
	desc := strings.HasPrefix(orderBy, "-")
	field := strings.TrimPrefix(orderBy, "-")
	c, ok := dt.Column(field)
	if !ok || c.Type == TypeTags {
		return nil, fmt.Errorf("%w: cannot order by %q", apperrors.ErrInvalidColumn, field)
	}
	if desc {
		return goqu.I(c.Column).Desc(), nil
	}
	return goqu.I(c.Column).Asc(), nil
}

func filterExpressions(dt *DataType, filters Filters) ([]exp.Expression, error) {
	out := make([]exp.Expression, 0, len(filters))
	for _, field := range sortedKeys(filters) {
		c, ok := dt.Column(field)
		if !ok {
			return nil, invalidFilter(field, "unknown field")
		}
		if !c.Filterable {
			return nil, invalidFilter(field, "field is not filterable")
		}
		e, err := filterExpr(dt, c, filters[field])
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func filterExpr(dt *DataType, c Column, raw json.RawMessage) (exp.Expression, error) {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, invalidFilter(c.Field, "malformed json")
	}

	obj, isObj := v.(map[string]interface{})
	if !isObj {
		return scalarFilter(dt, c, v)
	}
	if len(obj) != 1 {
		return nil, invalidFilter(c.Field, "filter object must have exactly one operator")
	}

	for op, arg := range obj {
		switch op {
		case "icontains":
			s, ok := arg.(string)
			if !ok || c.Type != TypeString {
				return nil, invalidFilter(c.Field, "icontains needs a string field and value")
			}
			return goqu.I(c.Column).ILike("%" + escapeLike(s) + "%"), nil
		case "in":
			items, ok := arg.([]interface{})
			if !ok || len(items) == 0 {
				return nil, invalidFilter(c.Field, "in needs a non-empty list")
			}
			if c.Type == TypeTags {
				names, err := tagNames(c, items)
				if err != nil {
					return nil, err
				}
				return tagExists(dt, "lower(t.name) IN ?", names), nil
			}
			vals := make([]interface{}, 0, len(items))
			for _, item := range items {
				sv, err := scalarValue(c, item)
				if err != nil {
					return nil, err
				}
				vals = append(vals, sv)
			}
			return goqu.I(c.Column).In(vals...), nil
		case "and":
			items, ok := arg.([]interface{})
			if !ok || len(items) == 0 || c.Type != TypeTags {
				return nil, invalidFilter(c.Field, "and needs a tags field and a non-empty list")
			}
			names, err := tagNames(c, items)
			if err != nil {
				return nil, err
			}
			all := make([]exp.Expression, 0, len(names))
			for _, n := range names {
				all = append(all, tagExists(dt, "lower(t.name) = ?", n))
			}
			return goqu.And(all...), nil
		case "range":
			return rangeFilter(c, arg)
		case "unlinked":
			b, ok := arg.(bool)
			if !ok || !b {
				return nil, invalidFilter(c.Field, "unlinked must be true")
			}
			target := c.LinkColumn
			if target == "" {
				target = c.Column
			}
			if target == "" {
				return nil, invalidFilter(c.Field, "field cannot be unlinked")
			}
			return goqu.I(target).IsNull(), nil
		default:
			return nil, invalidFilter(c.Field, fmt.Sprintf("unknown operator %q", op))
		}
	}
	return nil, invalidFilter(c.Field, "empty filter")
}

func scalarFilter(dt *DataType, c Column, v interface{}) (exp.Expression, error) {
	if c.Type == TypeTags {
		s, ok := v.(string)
		if !ok || s == "" {
			return nil, invalidFilter(c.Field, "tag must be a string")
		}
		return tagExists(dt, "lower(t.name) = ?", strings.ToLower(s)), nil
	}
	if c.Type == TypeDate {
		s, ok := v.(string)
		if !ok {
			return nil, invalidFilter(c.Field, "date must be a YYYY-MM-DD string")
		}
		day, err := time.Parse(dateLayout, s)
		if err != nil {
			return nil, invalidFilter(c.Field, "date must be a YYYY-MM-DD string")
		}
		return goqu.And(goqu.I(c.Column).Gte(day), goqu.I(c.Column).Lt(day.AddDate(0, 0, 1))), nil
	}
	sv, err := scalarValue(c, v)
	if err != nil {
		return nil, err
	}
	return goqu.I(c.Column).Eq(sv), nil
}

func scalarValue(c Column, v interface{}) (interface{}, error) {
	switch c.Type {
	case TypeString:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case TypeInt:
		if f, ok := v.(float64); ok && f == float64(int64(f)) {
			return int64(f), nil
		}
	case TypeBool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case TypeDate:
		if s, ok := v.(string); ok {
			if day, err := time.Parse(dateLayout, s); err == nil {
				return day, nil
			}
		}
	}
	return nil, invalidFilter(c.Field, fmt.Sprintf("value %v does not match type %s", v, c.Type))
}

// rangeFilter takes [from, to] with either bound null; both bounds are whole days
func rangeFilter(c Column, arg interface{}) (exp.Expression, error) {
	if c.Type != TypeDate && c.Type != TypeInt {
		return nil, invalidFilter(c.Field, "range needs a date or int field")
	}
	bounds, ok := arg.([]interface{})
	if !ok || len(bounds) != 2 {
		return nil, invalidFilter(c.Field, "range needs [from, to]")
	}
	if bounds[0] == nil && bounds[1] == nil {
		return nil, invalidFilter(c.Field, "range needs at least one bound")
	}

	var parts []exp.Expression
	if bounds[0] != nil {
		from, err := scalarValue(c, bounds[0])
		if err != nil {
			return nil, err
		}
		parts = append(parts, goqu.I(c.Column).Gte(from))
	}
	if bounds[1] != nil {
		to, err := scalarValue(c, bounds[1])
		if err != nil {
			return nil, err
		}
		if day, ok := to.(time.Time); ok {
			parts = append(parts, goqu.I(c.Column).Lt(day.AddDate(0, 0, 1)))
		} else {
			parts = append(parts, goqu.I(c.Column).Lte(to))
		}
	}
	return goqu.And(parts...), nil
}

func tagNames(c Column, items []interface{}) ([]string, error) {
	names := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok || s == "" {
			return nil, invalidFilter(c.Field, "tags must be strings")
		}
		names = append(names, strings.ToLower(s))
	}
	return names, nil
}

func tagExists(dt *DataType, cond string, arg interface{}) exp.Expression {
	return goqu.L(fmt.Sprintf(
		"EXISTS (SELECT 1 FROM prm_tags t JOIN %s jt ON jt.tag_id = t.id WHERE jt.%s = %s.id AND %s)",
		dt.Tags.JoinTable, dt.Tags.ForeignKey, dt.Alias, cond,
	), arg)
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func invalidFilter(field, reason string) error {
	return fmt.Errorf("%w: %s: %s", apperrors.ErrInvalidFilter, field, reason)
}

func sortedKeys(f Filters) []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
