package sqlrender

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

type testRow struct {
	ID      int             `db:"id"`
	Name    string          `db:"name"`
	Price   decimal.Decimal `db:"price"`
	Created Date            `db:"created"`
	Scratch string
}

func (testRow) TableName() string { return "users" }

type floatRow struct {
	Amount float64 `db:"amount"`
}

func (floatRow) TableName() string { return "amounts" }

type untaggedRow struct {
	Name string
}

func (untaggedRow) TableName() string { return "untagged" }

func TestColumns(t *testing.T) {
	cols, err := Columns(testRow{})
	if err != nil {
		t.Fatalf("Columns failed: %v", err)
	}
	want := []string{"id", "name", "price", "created"}
	if !reflect.DeepEqual(cols, want) {
		t.Errorf("Columns mismatch: got %v, want %v", cols, want)
	}

	// Pointer rows map the same way.
	cols, err = Columns(&testRow{})
	if err != nil {
		t.Fatalf("Columns(ptr) failed: %v", err)
	}
	if !reflect.DeepEqual(cols, want) {
		t.Errorf("Columns(ptr) mismatch: got %v, want %v", cols, want)
	}

	if _, err := Columns(untaggedRow{}); err == nil {
		t.Error("expected error for struct without db tags, got nil")
	}
}

func TestInsert(t *testing.T) {
	row := testRow{
		ID:      7,
		Name:    "O'Brien",
		Price:   decimal.NewFromFloat(12.5),
		Created: NewDate(2021, time.January, 1),
	}

	got, err := Insert(row)
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	want := "INSERT INTO users (id,name,price,created) VALUES (7,'O''Brien',12.50,DATE'2021-01-01');"
	if got != want {
		t.Errorf("Insert mismatch:\n got  %s\n want %s", got, want)
	}
}

func TestInsert_NilPointer(t *testing.T) {
	var row *testRow
	if _, err := Insert(row); err == nil {
		t.Error("expected error for nil row pointer, got nil")
	}
}

func TestInsert_UnsupportedValue(t *testing.T) {
	_, err := Insert(floatRow{Amount: 1.5})
	if !errors.Is(err, ErrUnsupportedValue) {
		t.Errorf("expected ErrUnsupportedValue, got %v", err)
	}
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{"Empty string", "", "''"},
		{"Plain string", "Apple", "'Apple'"},
		{"Quoted string", "it's", "'it''s'"},
		{"Question mark kept", "why?", "'why?'"},
		{"Int", 42, "42"},
		{"Int64", int64(-3), "-3"},
		{"Decimal rounds half up", decimal.RequireFromString("10.005"), "10.01"},
		{"Decimal pads", decimal.NewFromInt(3), "3.00"},
		{"Date", MustParseDate("2022-05-12"), "DATE'2022-05-12'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Literal(tt.in)
			if err != nil {
				t.Fatalf("Literal(%v) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Literal(%v) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestMustParseDate_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid date")
		}
	}()
	MustParseDate("2021-13-40")
}
