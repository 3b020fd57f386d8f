package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CommodityStatus string

const (
	CommodityStatusPending  CommodityStatus = "pending"
	CommodityStatusApproved CommodityStatus = "approved"
	CommodityStatusRejected CommodityStatus = "rejected"
)

func (s CommodityStatus) Valid() bool {
	switch s {
	case CommodityStatusPending, CommodityStatusApproved, CommodityStatusRejected:
		return true
	}

	return false
}

type CommodityType string

const (
	CommodityTypeVegetables CommodityType = "vegetables"
	CommodityTypeFruits     CommodityType = "fruits"
	CommodityTypeGrains     CommodityType = "grains"
	CommodityTypeDairy      CommodityType = "dairy"
	CommodityTypeOther      CommodityType = "other"
)

func (t CommodityType) Valid() bool {
	switch t {
	case CommodityTypeVegetables, CommodityTypeFruits, CommodityTypeGrains, CommodityTypeDairy, CommodityTypeOther:
		return true
	}

	return false
}

// Per-listing quantity cap.
const (
	MinCommodityQuantity = 10
	MaxCommodityQuantity = 50
)

type Commodity struct {
	ID              uuid.UUID       `json:"id"`
	FarmerID        uuid.UUID       `json:"farmer_id"`
	ProductName     string          `json:"product_name" validate:"required,max=200"`
	CommodityType   CommodityType   `json:"commodity_type" validate:"required,oneof=vegetables fruits grains dairy other"`
	Quantity        int             `json:"quantity" validate:"min=10,max=50"`
	PricePerUnit    decimal.Decimal `json:"price_per_unit" validate:"gt=0"`
	Description     string          `json:"description" validate:"required"`
	ImageURL        string          `json:"image_url" validate:"required,url"`
	InStock         bool            `json:"in_stock"`
	Status          CommodityStatus `json:"status" validate:"required,oneof=pending approved rejected"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
	Version         int64           `json:"version"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (c *Commodity) IsOwnedBy(userID uuid.UUID) bool {
	return c.FarmerID == userID
}

type CreateCommodityRequest struct {
	ProductName   string          `json:"product_name" validate:"required,max=200"`
	CommodityType CommodityType   `json:"commodity_type" validate:"required,oneof=vegetables fruits grains dairy other"`
	Quantity      int             `json:"quantity" validate:"required,min=10,max=50"`
	PricePerUnit  decimal.Decimal `json:"price_per_unit" validate:"gt=0"`
	Description   string          `json:"description" validate:"required"`
	ImageURL      string          `json:"image_url" validate:"required,url"`
	InStock       *bool           `json:"in_stock,omitempty"`
}

// UpdateCommodityRequest is a partial update, nil fields are left untouched.
type UpdateCommodityRequest struct {
	ProductName     *string          `json:"product_name,omitempty" validate:"omitempty,max=200"`
	CommodityType   *CommodityType   `json:"commodity_type,omitempty" validate:"omitempty,oneof=vegetables fruits grains dairy other"`
	Quantity        *int             `json:"quantity,omitempty" validate:"omitempty,min=10,max=50"`
	PricePerUnit    *decimal.Decimal `json:"price_per_unit,omitempty" validate:"omitempty,gt=0"`
	Description     *string          `json:"description,omitempty"`
	ImageURL        *string          `json:"image_url,omitempty" validate:"omitempty,url"`
	InStock         *bool            `json:"in_stock,omitempty"`
	Status          *CommodityStatus `json:"status,omitempty" validate:"omitempty,oneof=pending approved rejected"`
	RejectionReason *string          `json:"rejection_reason,omitempty"`
	// Version observed by the caller, a mismatch is reported as a conflict.
	Version *int64 `json:"version,omitempty"`
}

// TouchedFields lists the JSON names of the fields present in the patch.
func (r *UpdateCommodityRequest) TouchedFields() []string {
	var fields []string

	if r.ProductName != nil {
		fields = append(fields, "product_name")
	}
	if r.CommodityType != nil {
		fields = append(fields, "commodity_type")
	}
	if r.Quantity != nil {
		fields = append(fields, "quantity")
	}
	if r.PricePerUnit != nil {
		fields = append(fields, "price_per_unit")
	}
	if r.Description != nil {
		fields = append(fields, "description")
	}
	if r.ImageURL != nil {
		fields = append(fields, "image_url")
	}
	if r.InStock != nil {
		fields = append(fields, "in_stock")
	}
	if r.Status != nil {
		fields = append(fields, "status")
	}
	if r.RejectionReason != nil {
		fields = append(fields, "rejection_reason")
	}

	return fields
}

type ModerationAction string

const (
	ModerationApprove ModerationAction = "approve"
	ModerationReject  ModerationAction = "reject"
	ModerationRevert  ModerationAction = "revert"
)

// ModerationRequest names the change either as an action or as the target status.
type ModerationRequest struct {
	Action ModerationAction `json:"action,omitempty" validate:"omitempty,oneof=approve reject revert"`
	Status *CommodityStatus `json:"status,omitempty" validate:"omitempty,oneof=pending approved rejected"`
	Reason string           `json:"reason,omitempty" validate:"max=500"`
	// Version observed by the caller, optional.
	Version *int64 `json:"version,omitempty"`
}

type RejectRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type CommoditySort string

const (
	SortNewest    CommoditySort = "newest"
	SortOldest    CommoditySort = "oldest"
	SortPriceAsc  CommoditySort = "price_asc"
	SortPriceDesc CommoditySort = "price_desc"
)

func (s CommoditySort) Valid() bool {
	switch s {
	case SortNewest, SortOldest, SortPriceAsc, SortPriceDesc:
		return true
	}

	return false
}

// CommodityFilter is the predicate handed to the store when listing.
type CommodityFilter struct {
	OwnerID      *uuid.UUID
	Statuses     []CommodityStatus
	Category     *CommodityType
	NameContains string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	Sort         CommoditySort
	Page         int
	PageSize     int
}

// MarketplaceQuery holds the buyer supplied filters. The approved predicate is not part of it.
type MarketplaceQuery struct {
	Category *CommodityType
	Search   string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Sort     CommoditySort
	Page     int
	PageSize int
}

// CommodityListQuery is used by farmers for their own listings and by admins for all listings.
type CommodityListQuery struct {
	Status   *CommodityStatus
	Category *CommodityType
	Page     int
	PageSize int
}

type FarmerSummary struct {
	Name     string         `json:"name"`
	Location PublicLocation `json:"location"`
}

type PublicLocation struct {
	State    string `json:"state"`
	District string `json:"district"`
	Taluka   string `json:"taluka,omitempty"`
}

// MarketplaceListing is the buyer facing view of an approved commodity.
type MarketplaceListing struct {
	ID            uuid.UUID       `json:"id"`
	ProductName   string          `json:"product_name"`
	CommodityType CommodityType   `json:"commodity_type"`
	Quantity      int             `json:"quantity"`
	PricePerUnit  decimal.Decimal `json:"price_per_unit"`
	Description   string          `json:"description"`
	ImageURL      string          `json:"image_url"`
	InStock       bool            `json:"in_stock"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Farmer        FarmerSummary   `json:"farmer"`
}

type ImageUploadResponse struct {
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}
