package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/aaravmahajanofficial/agroconnect/internal/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ErrVersionConflict is returned when a guarded write finds a newer version of the row.
var ErrVersionConflict = errors.New("commodity version conflict")

type CommodityRepository interface {
	CreateCommodity(ctx context.Context, commodity *models.Commodity) error
	GetCommodityByID(ctx context.Context, id uuid.UUID) (*models.Commodity, error)
	UpdateCommodity(ctx context.Context, commodity *models.Commodity, expectedVersion int64) error
	DeleteCommodity(ctx context.Context, id uuid.UUID) error
	ListCommodities(ctx context.Context, filter models.CommodityFilter) ([]*models.Commodity, int, error)
	ListMarketplace(ctx context.Context, filter models.CommodityFilter) ([]*models.MarketplaceListing, int, error)
}

type commodityRepository struct {
	DB *sql.DB
}

func NewCommodityRepo(db *sql.DB) CommodityRepository {
	return &commodityRepository{DB: db}
}

const commodityColumns = `c.id, c.farmer_id, c.product_name, c.commodity_type, c.quantity, c.price_per_unit,
	c.description, c.image_url, c.in_stock, c.status, c.rejection_reason, c.version, c.created_at, c.updated_at`

func (r *commodityRepository) CreateCommodity(ctx context.Context, commodity *models.Commodity) error {
	dbCtx, cancel := withTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO commodities (farmer_id, product_name, commodity_type, quantity, price_per_unit, description, image_url, in_stock, status, rejection_reason, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`

	return r.DB.QueryRowContext(dbCtx, query,
		commodity.FarmerID, commodity.ProductName, commodity.CommodityType, commodity.Quantity, commodity.PricePerUnit,
		commodity.Description, commodity.ImageURL, commodity.InStock, commodity.Status, commodity.RejectionReason, commodity.Version,
	).Scan(&commodity.ID, &commodity.CreatedAt, &commodity.UpdatedAt)
}

func (r *commodityRepository) GetCommodityByID(ctx context.Context, id uuid.UUID) (*models.Commodity, error) {
	dbCtx, cancel := withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + commodityColumns + ` FROM commodities c WHERE c.id = $1`

	commodity, err := scanCommodity(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return commodity, nil
}

// UpdateCommodity writes every mutable column when the stored version still
// equals expectedVersion. On success the version and updated_at on commodity
// are refreshed from the row.
func (r *commodityRepository) UpdateCommodity(ctx context.Context, commodity *models.Commodity, expectedVersion int64) error {
	dbCtx, cancel := withTimeout(ctx)
	defer cancel()

	query := `
		UPDATE commodities
		SET product_name = $1, commodity_type = $2, quantity = $3, price_per_unit = $4, description = $5,
			image_url = $6, in_stock = $7, status = $8, rejection_reason = $9, version = version + 1, updated_at = NOW()
		WHERE id = $10 AND version = $11
		RETURNING version, updated_at`

	err := r.DB.QueryRowContext(dbCtx, query,
		commodity.ProductName, commodity.CommodityType, commodity.Quantity, commodity.PricePerUnit, commodity.Description,
		commodity.ImageURL, commodity.InStock, commodity.Status, commodity.RejectionReason, commodity.ID, expectedVersion,
	).Scan(&commodity.Version, &commodity.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		exists, existsErr := r.exists(dbCtx, commodity.ID)
		if existsErr != nil {
			return existsErr
		}

		if exists {
			return ErrVersionConflict
		}

		return sql.ErrNoRows
	}

	return err
}

func (r *commodityRepository) exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool

	err := r.DB.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM commodities WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking commodity existence: %w", err)
	}

	return exists, nil
}

func (r *commodityRepository) DeleteCommodity(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := withTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM commodities WHERE id = $1`, id)
	if err != nil {
		return err
	}

	return requireAffected(result)
}

func (r *commodityRepository) ListCommodities(ctx context.Context, filter models.CommodityFilter) ([]*models.Commodity, int, error) {
	dbCtx, cancel := withTimeout(ctx)
	defer cancel()

	where, args := buildCommodityWhere(filter)

	var total int

	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM commodities c`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + commodityColumns + ` FROM commodities c` + where + orderBy(filter.Sort) + paginate(len(args))
	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	commodities := []*models.Commodity{}

	for rows.Next() {
		commodity, err := scanCommodity(rows)
		if err != nil {
			return nil, 0, err
		}

		commodities = append(commodities, commodity)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return commodities, total, nil
}

// ListMarketplace always restricts to approved rows, whatever filter.Statuses holds.
func (r *commodityRepository) ListMarketplace(ctx context.Context, filter models.CommodityFilter) ([]*models.MarketplaceListing, int, error) {
	dbCtx, cancel := withTimeout(ctx)
	defer cancel()

	filter.Statuses = []models.CommodityStatus{models.CommodityStatusApproved}
	filter.OwnerID = nil

	where, args := buildCommodityWhere(filter)

	var total int

	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM commodities c`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT c.id, c.product_name, c.commodity_type, c.quantity, c.price_per_unit, c.description, c.image_url,
		c.in_stock, c.created_at, c.updated_at, u.name, u.state, u.district, u.taluka
		FROM commodities c JOIN users u ON u.id = c.farmer_id` + where + orderBy(filter.Sort) + paginate(len(args))
	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	listings := []*models.MarketplaceListing{}

	for rows.Next() {
		l := &models.MarketplaceListing{}

		err := rows.Scan(&l.ID, &l.ProductName, &l.CommodityType, &l.Quantity, &l.PricePerUnit, &l.Description, &l.ImageURL,
			&l.InStock, &l.CreatedAt, &l.UpdatedAt, &l.Farmer.Name, &l.Farmer.Location.State, &l.Farmer.Location.District, &l.Farmer.Location.Taluka)
		if err != nil {
			return nil, 0, err
		}

		listings = append(listings, l)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return listings, total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCommodity(row rowScanner) (*models.Commodity, error) {
	c := &models.Commodity{}

	err := row.Scan(&c.ID, &c.FarmerID, &c.ProductName, &c.CommodityType, &c.Quantity, &c.PricePerUnit,
		&c.Description, &c.ImageURL, &c.InStock, &c.Status, &c.RejectionReason, &c.Version, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return c, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildCommodityWhere compiles filter into a WHERE clause with numbered placeholders.
// Conditions are joined with AND in a fixed order.
func buildCommodityWhere(filter models.CommodityFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}

		add("c.status = ANY($%d)", pq.Array(statuses))
	}

	if filter.OwnerID != nil {
		add("c.farmer_id = $%d", *filter.OwnerID)
	}

	if filter.Category != nil {
		add("c.commodity_type = $%d", string(*filter.Category))
	}

	if filter.NameContains != "" {
		add("c.product_name ILIKE $%d", "%"+likeEscaper.Replace(filter.NameContains)+"%")
	}

	if filter.MinPrice != nil {
		add("c.price_per_unit >= $%d", *filter.MinPrice)
	}

	if filter.MaxPrice != nil {
		add("c.price_per_unit <= $%d", *filter.MaxPrice)
	}

	if len(conds) == 0 {
		return "", nil
	}

	return " WHERE " + strings.Join(conds, " AND "), args
}

func orderBy(sort models.CommoditySort) string {
	switch sort {
	case models.SortOldest:
		return " ORDER BY c.created_at ASC, c.id ASC"
	case models.SortPriceAsc:
		return " ORDER BY c.price_per_unit ASC, c.id ASC"
	case models.SortPriceDesc:
		return " ORDER BY c.price_per_unit DESC, c.id ASC"
	default:
		return " ORDER BY c.created_at DESC, c.id ASC"
	}
}

func paginate(argCount int) string {
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", argCount+1, argCount+2)
}
