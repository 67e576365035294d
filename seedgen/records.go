package seedgen

import (
	"github.com/shopspring/decimal"

	"marketplace-seed/sqlrender"
)

// Fixed dates shared by every generated row.
var (
	ProductCreated         = sqlrender.MustParseDate("2021-01-01")
	InventoryBestBefore    = sqlrender.MustParseDate("2022-05-12")
	InventoryExpires       = sqlrender.MustParseDate("2023-05-12")
	InventoryManufactured  = sqlrender.MustParseDate("2020-05-12")
	InventorySellBy        = sqlrender.MustParseDate("2022-10-12")
	ListingCloses          = sqlrender.MustParseDate("2022-05-12")
	ListingCreated         = sqlrender.MustParseDate("2020-05-12")
	SoldListingListingDate = sqlrender.MustParseDate("2020-05-12")
)

// MoreInfoPhrases are the promotional notes attached to listings.
var MoreInfoPhrases = []string{
	"Willing to accept lower offers.",
	"No low ballers.",
	"Fresh",
	"Limited Stock.",
	"Selling quick.",
	"Limited Edition",
}

type Product struct {
	BusinessID             int             `db:"business_id"`
	ID                     string          `db:"id"`
	Created                sqlrender.Date  `db:"created"`
	Description            string          `db:"description"`
	Manufacturer           string          `db:"manufacturer"`
	Name                   string          `db:"name"`
	RecommendedRetailPrice decimal.Decimal `db:"recommended_retail_price"`
}

func (Product) TableName() string { return "product" }

// InventoryItem carries no id column; the database assigns it and the
// generator tracks the matching value in Item.InventoryID.
type InventoryItem struct {
	BestBefore   sqlrender.Date  `db:"best_before"`
	BusinessID   int             `db:"business_id"`
	Expires      sqlrender.Date  `db:"expires"`
	Manufactured sqlrender.Date  `db:"manufactured"`
	PricePerItem decimal.Decimal `db:"price_per_item"`
	ProductID    string          `db:"product_id"`
	Quantity     int             `db:"quantity"`
	SellBy       sqlrender.Date  `db:"sell_by"`
	TotalPrice   decimal.Decimal `db:"total_price"`
}

func (InventoryItem) TableName() string { return "inventory_item" }

type Listing struct {
	BusinessID      int             `db:"business_id"`
	Closes          sqlrender.Date  `db:"closes"`
	Created         sqlrender.Date  `db:"created"`
	MoreInfo        string          `db:"more_info"`
	Price           decimal.Decimal `db:"price"`
	Quantity        int             `db:"quantity"`
	InventoryItemID int64           `db:"inventory_item_id"`
	TotalBookmarks  int             `db:"total_bookmarks"`
}

func (Listing) TableName() string { return "listing" }

type SoldListing struct {
	Bookmarks   int             `db:"bookmarks"`
	ListingDate sqlrender.Date  `db:"listing_date"`
	Price       decimal.Decimal `db:"price"`
	ProductID   string          `db:"product_id"`
	Quantity    int             `db:"quantity"`
	SaleDate    sqlrender.Date  `db:"sale_date"`
	Business    int             `db:"business"`
	Customer    int             `db:"customer"`
}

func (SoldListing) TableName() string { return "sold_listing" }

// Item is everything generated for one product of one business.
type Item struct {
	InventoryID int64
	Product     Product
	Inventory   InventoryItem
	Listing     Listing
	Sold        SoldListing
}

// Rows returns the four rows in emission order.
func (it Item) Rows() []sqlrender.Row {
	return []sqlrender.Row{it.Product, it.Inventory, it.Listing, it.Sold}
}

// Statements renders the item as its four INSERT statements.
func (it Item) Statements() ([]string, error) {
	rows := it.Rows()
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		stmt, err := sqlrender.Insert(r)
		if err != nil {
			return nil, err
		}
		out = append(out, stmt)
	}
	return out, nil
}
