package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"campaign-roi/internal/core/domain"
	"campaign-roi/internal/core/port"
)

// DatasetRepository stores the sales and campaign ledgers in PostgreSQL. It
// implements port.DatasetSource and port.DatasetWriter. Rows keep a
// position column so Load returns them in the order they were written.
type DatasetRepository struct {
	pool *pgxpool.Pool
}

// NewDatasetRepository returns a new repository instance.
func NewDatasetRepository(pool *pgxpool.Pool) *DatasetRepository {
	return &DatasetRepository{pool: pool}
}

// Load reads both ledgers.
func (r *DatasetRepository) Load(ctx context.Context) (*domain.Dataset, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT order_id, order_date, country, product_category, revenue
        FROM sales
        ORDER BY position`)
	if err != nil {
		return nil, &port.LoadError{Source: "sales", Err: err}
	}
	sales, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Sale, error) {
		var (
			s       domain.Sale
			revenue pgtype.Numeric
		)
		if err := row.Scan(&s.OrderID, &s.OrderDate, &s.Country, &s.ProductCategory, &revenue); err != nil {
			return s, err
		}
		s.OrderDate = s.OrderDate.UTC()
		s.Revenue, err = fromNumeric(revenue)
		return s, err
	})
	if err != nil {
		return nil, &port.LoadError{Source: "sales", Err: err}
	}

	rows, err = r.pool.Query(ctx, `
        SELECT campaign_id, target_region, target_product_category,
               start_date, end_date, campaign_type, marketing_spend
        FROM campaigns
        ORDER BY position`)
	if err != nil {
		return nil, &port.LoadError{Source: "campaigns", Err: err}
	}
	campaigns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var (
			c     domain.Campaign
			spend pgtype.Numeric
		)
		err := row.Scan(
			&c.CampaignID,
			&c.TargetRegion,
			&c.TargetProductCategory,
			&c.StartDate,
			&c.EndDate,
			&c.CampaignType,
			&spend,
		)
		if err != nil {
			return c, err
		}
		c.StartDate, c.EndDate = c.StartDate.UTC(), c.EndDate.UTC()
		c.MarketingSpend, err = fromNumeric(spend)
		return c, err
	})
	if err != nil {
		return nil, &port.LoadError{Source: "campaigns", Err: err}
	}

	return &domain.Dataset{Sales: sales, Campaigns: campaigns}, nil
}

// Replace swaps both ledgers for ds in a single serializable transaction.
func (r *DatasetRepository) Replace(ctx context.Context, ds *domain.Dataset) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `TRUNCATE sales, campaigns`); err != nil {
		return err
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"sales"},
		[]string{"position", "order_id", "order_date", "country", "product_category", "revenue"},
		pgx.CopyFromSlice(len(ds.Sales), func(i int) ([]any, error) {
			s := ds.Sales[i]
			return []any{int64(i), s.OrderID, dateOf(s.OrderDate), s.Country, s.ProductCategory, toNumeric(s.Revenue)}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy sales: %w", err)
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"campaigns"},
		[]string{
			"position", "campaign_id", "target_region", "target_product_category",
			"start_date", "end_date", "campaign_type", "marketing_spend",
		},
		pgx.CopyFromSlice(len(ds.Campaigns), func(i int) ([]any, error) {
			c := ds.Campaigns[i]
			return []any{
				int64(i), c.CampaignID, c.TargetRegion, c.TargetProductCategory,
				dateOf(c.StartDate), dateOf(c.EndDate), c.CampaignType, toNumeric(c.MarketingSpend),
			}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy campaigns: %w", err)
	}
	return nil
}

func toNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

func fromNumeric(n pgtype.Numeric) (decimal.Decimal, error) {
	if !n.Valid || n.NaN || n.InfinityModifier != pgtype.Finite {
		return decimal.Decimal{}, fmt.Errorf("non-finite numeric")
	}
	return decimal.NewFromBigInt(n.Int, n.Exp), nil
}

func dateOf(t time.Time) pgtype.Date {
	return pgtype.Date{Time: t, Valid: true}
}
