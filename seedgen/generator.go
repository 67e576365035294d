package seedgen

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"marketplace-seed/sqlrender"
)

const (
	DefaultBusinesses = 1000

	productIDPrefixLen = 4

	minPrice = 10.00
	maxPrice = 50.00

	maxQuantity  = 100
	maxCustomer  = 1000
	maxBookmarks = 100

	saleYear     = 2021
	maxSaleMonth = 9
	maxSaleDay   = 28
)

// Source is the catalog the generator samples from. Each field is drawn
// independently, so the three slices need not line up semantically.
type Source interface {
	Len() int
	Names() []string
	Descriptions() []string
	Manufacturers() []string
}

// Config controls a generation run.
type Config struct {
	Businesses       int
	Counter          ProductCounter
	FirstInventoryID int64
	Seed             uint64
}

// Generator produces items business by business. It is not safe for concurrent use.
type Generator struct {
	cfg    Config
	src    Source
	rng    *rand.Rand
	nextID int64
}

// NewGenerator validates cfg and fills in defaults for zero values.
func NewGenerator(cfg Config, src Source) (*Generator, error) {
	if src == nil || src.Len() == 0 {
		return nil, errors.New("generator needs a non-empty catalog")
	}
	if cfg.Businesses < 0 {
		return nil, fmt.Errorf("invalid business count %d", cfg.Businesses)
	}
	if cfg.Businesses == 0 {
		cfg.Businesses = DefaultBusinesses
	}
	if cfg.Counter == nil {
		cfg.Counter = TieredCounter{Tiers: DefaultTiers}
	}
	if cfg.FirstInventoryID <= 0 {
		cfg.FirstInventoryID = 1
	}

	return &Generator{
		cfg:    cfg,
		src:    src,
		rng:    rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		nextID: cfg.FirstInventoryID,
	}, nil
}

func (g *Generator) Businesses() int {
	return g.cfg.Businesses
}

// NextInventoryID is the id the next generated inventory item will take.
func (g *Generator) NextInventoryID() int64 {
	return g.nextID
}

// Business generates all items for one business. Product ids are unique
// within the returned slice.
func (g *Generator) Business(businessID int) []Item {
	n := g.cfg.Counter.Count(businessID, g.rng)
	items := make([]Item, 0, n)
	used := make(map[string]struct{}, n)
	for j := 0; j < n; j++ {
		items = append(items, g.item(businessID, used))
	}
	return items
}

func (g *Generator) item(businessID int, used map[string]struct{}) Item {
	name := g.pick(g.src.Names())
	prodID := UniqueProductID(name, used)
	description := g.pick(g.src.Descriptions())
	manufacturer := strings.ReplaceAll(g.pick(g.src.Manufacturers()), "\n", "")

	price := decimal.NewFromFloat(minPrice + g.rng.Float64()*(maxPrice-minPrice))
	quantity := randInclusive(g.rng, 1, maxQuantity)
	listingQuantity := randInclusive(g.rng, 1, quantity)

	recommended := price.Round(2)
	totalPrice := price.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
	listingPrice := price.Mul(decimal.NewFromInt(int64(listingQuantity))).Round(2)

	moreInfo := MoreInfoPhrases[g.rng.IntN(len(MoreInfoPhrases))]
	saleDate := g.saleDate()

	id := g.nextID
	g.nextID++

	return Item{
		InventoryID: id,
		Product: Product{
			BusinessID:             businessID,
			ID:                     prodID,
			Created:                ProductCreated,
			Description:            description,
			Manufacturer:           manufacturer,
			Name:                   name,
			RecommendedRetailPrice: recommended,
		},
		Inventory: InventoryItem{
			BestBefore:   InventoryBestBefore,
			BusinessID:   businessID,
			Expires:      InventoryExpires,
			Manufactured: InventoryManufactured,
			PricePerItem: recommended,
			ProductID:    prodID,
			Quantity:     quantity,
			SellBy:       InventorySellBy,
			TotalPrice:   totalPrice,
		},
		Listing: Listing{
			BusinessID:      businessID,
			Closes:          ListingCloses,
			Created:         ListingCreated,
			MoreInfo:        moreInfo,
			Price:           listingPrice,
			Quantity:        listingQuantity,
			InventoryItemID: id,
			TotalBookmarks:  0,
		},
		Sold: SoldListing{
			Bookmarks:   randInclusive(g.rng, 0, maxBookmarks),
			ListingDate: SoldListingListingDate,
			Price:       listingPrice,
			ProductID:   prodID,
			Quantity:    listingQuantity,
			SaleDate:    saleDate,
			Business:    businessID,
			Customer:    randInclusive(g.rng, 1, maxCustomer),
		},
	}
}

func (g *Generator) pick(values []string) string {
	return values[g.rng.IntN(len(values))]
}

// saleDate is a day in January..September of the sale year, never past the 28th.
func (g *Generator) saleDate() sqlrender.Date {
	day := randInclusive(g.rng, 1, maxSaleDay)
	month := randInclusive(g.rng, 1, maxSaleMonth)
	return sqlrender.NewDate(saleYear, time.Month(month), day)
}

// BaseProductID is the first four characters of name, uppercased, with spaces
// turned into hyphens.
func BaseProductID(name string) string {
	runes := []rune(name)
	if len(runes) > productIDPrefixLen {
		runes = runes[:productIDPrefixLen]
	}
	return strings.ReplaceAll(strings.ToUpper(string(runes)), " ", "-")
}

// UniqueProductID derives the product id for name and records it in used.
// Collisions get a numeric suffix 1, 2, ... after the base.
func UniqueProductID(name string, used map[string]struct{}) string {
	base := BaseProductID(name)
	id := base
	for k := 1; ; k++ {
		if _, taken := used[id]; !taken {
			break
		}
		id = base + strconv.Itoa(k)
	}
	used[id] = struct{}{}
	return id
}
