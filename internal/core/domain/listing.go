package domain

import (
	"time"

	"github.com/google/uuid"
)

// Типы объектов
const (
	TypeApartment  = "apartment"
	TypeHouse      = "house"
	TypeVilla      = "villa"
	TypeStudio     = "studio"
	TypeOffice     = "office"
	TypeLand       = "land"
	TypeCommercial = "commercial"
)

// Тип сделки
const (
	CategorySale = "sale"
	CategoryRent = "rent"
)

// Статусы объявления
const (
	StatusAvailable = "available"
	StatusPending   = "pending"
	StatusSold      = "sold"
	StatusRented    = "rented"
)

// Features - известные удобства; список открытый, фильтр не проверяет значения
var Features = []string{
	"parking", "balcony", "garden", "pool", "elevator",
	"furnished", "air_conditioning", "heating", "security", "terrace",
}

// Listing - объявление о недвижимости
type Listing struct {
	ID          uuid.UUID
	Title       string
	Description string
	Price       float64
	Type        string
	Category    string
	Status      string

	Surface   float64
	Rooms     int
	Bedrooms  int
	Bathrooms int

	Address   string
	City      string
	ZipCode   string
	Latitude  *float64
	Longitude *float64
	Geohash   string

	Features []string
	Images   []string

	IsPublished bool
	IsFeatured  bool
	Views       int64

	OwnerID   uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasFeatures - true, если у объекта есть все запрошенные удобства (лишние допускаются)
func (l Listing) HasFeatures(required []string) bool {
	if len(required) == 0 {
		return true
	}
	own := make(map[string]struct{}, len(l.Features))
	for _, f := range l.Features {
		own[f] = struct{}{}
	}
	for _, f := range required {
		if _, ok := own[f]; !ok {
			return false
		}
	}
	return true
}

// IsPubliclyVisible - опубликован и не продан
func (l Listing) IsPubliclyVisible() bool {
	return l.IsPublished && l.Status != StatusSold
}

// ListingInput - поля для создания/обновления. nil означает "не менять".
type ListingInput struct {
	Title       *string
	Description *string
	Price       *float64
	Type        *string
	Category    *string
	Status      *string
	Surface     *float64
	Rooms       *int
	Bedrooms    *int
	Bathrooms   *int
	Address     *string
	City        *string
	ZipCode     *string
	Latitude    *float64
	Longitude   *float64
	Features    []string
	Images      []string
	IsPublished *bool
	IsFeatured  *bool
}

// Apply переносит заданные поля на объявление
func (in ListingInput) Apply(l *Listing) {
	setString(&l.Title, in.Title)
	setString(&l.Description, in.Description)
	setString(&l.Type, in.Type)
	setString(&l.Category, in.Category)
	setString(&l.Status, in.Status)
	setString(&l.Address, in.Address)
	setString(&l.City, in.City)
	setString(&l.ZipCode, in.ZipCode)

	if in.Price != nil {
		l.Price = *in.Price
	}
	if in.Surface != nil {
		l.Surface = *in.Surface
	}
	if in.Rooms != nil {
		l.Rooms = *in.Rooms
	}
	if in.Bedrooms != nil {
		l.Bedrooms = *in.Bedrooms
	}
	if in.Bathrooms != nil {
		l.Bathrooms = *in.Bathrooms
	}
	if in.Latitude != nil {
		l.Latitude = in.Latitude
	}
	if in.Longitude != nil {
		l.Longitude = in.Longitude
	}
	if in.Features != nil {
		l.Features = in.Features
	}
	if in.Images != nil {
		l.Images = in.Images
	}
	if in.IsPublished != nil {
		l.IsPublished = *in.IsPublished
	}
	if in.IsFeatured != nil {
		l.IsFeatured = *in.IsFeatured
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
