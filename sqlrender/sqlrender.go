package sqlrender

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx/reflectx"
	"github.com/shopspring/decimal"
)

// ErrUnsupportedValue is returned when a row field has no literal rendering.
var ErrUnsupportedValue = errors.New("unsupported value type")

// Row is a db-tagged struct that knows its target table.
type Row interface {
	TableName() string
}

// Date renders as an ANSI date literal (DATE'YYYY-MM-DD').
type Date struct {
	time.Time
}

// NewDate builds a Date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// MustParseDate parses YYYY-MM-DD and panics on failure. Meant for package-level constants.
func MustParseDate(s string) Date {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(fmt.Sprintf("sqlrender: invalid date %q: %v", s, err))
	}
	return Date{t}
}

func (d Date) String() string {
	return d.Format(time.DateOnly)
}

var mapper = reflectx.NewMapperFunc("db", strings.ToLower)

type column struct {
	name  string
	index []int
}

// columnCache maps reflect.Type to []column
var columnCache sync.Map

// Columns returns the db column names of row in struct field order.
func Columns(row Row) ([]string, error) {
	cols, err := columnsOf(row)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.name
	}
	return names, nil
}

func columnsOf(row Row) ([]column, error) {
	typ := reflect.TypeOf(row)
	if typ == nil {
		return nil, errors.New("sqlrender: nil row")
	}
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("sqlrender: type %v must be a struct or pointer to struct", typ)
	}
	if cached, ok := columnCache.Load(typ); ok {
		return cached.([]column), nil
	}

	// Only top-level fields are columns; Date and decimal.Decimal are structs
	// themselves and must not be flattened.
	sm := mapper.TypeMap(typ)
	cols := make([]column, 0, len(sm.Tree.Children))
	for _, fi := range sm.Tree.Children {
		if fi == nil || fi.Name == "" || fi.Name == "-" {
			continue
		}
		if _, tagged := fi.Field.Tag.Lookup("db"); !tagged {
			continue
		}
		cols = append(cols, column{name: fi.Name, index: fi.Index})
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("sqlrender: type %v has no db-tagged fields", typ)
	}

	columnCache.Store(typ, cols)
	return cols, nil
}

// Insert renders row as a single INSERT statement with literal values,
// terminated by a semicolon.
func Insert(row Row) (string, error) {
	cols, err := columnsOf(row)
	if err != nil {
		return "", err
	}

	val := reflect.ValueOf(row)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return "", fmt.Errorf("sqlrender: nil row pointer for table '%s'", row.TableName())
		}
		val = val.Elem()
	}

	names := make([]string, len(cols))
	values := make([]interface{}, len(cols))
	for i, c := range cols {
		lit, err := Literal(val.FieldByIndex(c.index).Interface())
		if err != nil {
			return "", fmt.Errorf("table '%s' column '%s': %w", row.TableName(), c.name, err)
		}
		names[i] = c.name
		values[i] = sq.Expr(lit)
	}

	query, _, err := sq.Insert(row.TableName()).Columns(names...).Values(values...).ToSql()
	if err != nil {
		return "", fmt.Errorf("build insert for table '%s' failed: %w", row.TableName(), err)
	}
	return query + ";", nil
}

// Literal renders a single Go value as an SQL literal.
func Literal(v interface{}) (string, error) {
	switch x := v.(type) {
	case string:
		return Quote(x), nil
	case Date:
		return "DATE'" + x.String() + "'", nil
	case decimal.Decimal:
		return x.StringFixed(2), nil
	case int:
		return strconv.Itoa(x), nil
	case int32:
		return strconv.FormatInt(int64(x), 10), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

// Quote wraps s in single quotes, doubling any embedded quote.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
