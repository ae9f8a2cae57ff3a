package etl

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/olivercorrea/datawarehouse-estrella-ETL/internal/logging"
	"github.com/olivercorrea/datawarehouse-estrella-ETL/internal/source"
)

// Options controls pipeline behavior.
type Options struct {
	// BatchSize is the number of fact rows inserted per batch.
	BatchSize int

	// Atomic wraps the truncate-and-reload sequence in one transaction that
	// rolls back on any failure. When off, fact batches commit independently
	// and a mid-load failure leaves the warehouse partially loaded; callers
	// recover by re-running the pipeline, which always truncates first.
	Atomic bool

	// StrictReferences turns dropped fact rows into a pipeline failure
	// instead of a logged occurrence.
	StrictReferences bool
}

// Pipeline is the single-writer ETL driver. Each stage takes its inputs as
// parameters and returns its outputs; nothing is shared between stages
// beyond what flows through Run.
type Pipeline struct {
	pool *pgxpool.Pool
	opts Options
}

// NewPipeline creates a Pipeline over the given connection pool.
func NewPipeline(pool *pgxpool.Pool, opts Options) *Pipeline {
	if opts.BatchSize < 1 {
		opts.BatchSize = DefaultBatchSize
	}
	return &Pipeline{pool: pool, opts: opts}
}

// Run executes the full pipeline: extract, transform, reload, validate.
// Validation failures (empty input, schema mismatch) surface before any
// destructive step. Store-level failures during the reload propagate
// unwrapped in meaning; nothing is retried.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	data, err := source.ReadAll(ctx, p.pool)
	if err != nil {
		return nil, err
	}

	dates, err := BuildDateDim(data.Transactions)
	if err != nil {
		return nil, err
	}

	products := TransformProducts(data.Products)
	locations := TransformLocations(data.Stores)
	suppliers := TransformSuppliers(data.Suppliers)

	factResult := TransformFacts(data.Transactions, products, locations, suppliers)
	if len(factResult.Dropped) > 0 {
		for _, d := range factResult.Dropped {
			logging.Warn().
				Int("inventory_id", d.InventoryID).
				Str("field", d.Field).
				Str("value", d.Value).
				Msg("Dropped fact row with unresolved reference")
		}
		if p.opts.StrictReferences {
			return nil, &ReferentialDropError{Dropped: factResult.Dropped}
		}
	}

	if p.opts.Atomic {
		err = p.reloadAtomic(ctx, products, locations, dates, suppliers, factResult.Facts)
	} else {
		err = p.reload(ctx, p.pool, products, locations, dates, suppliers, factResult.Facts)
	}
	if err != nil {
		return nil, err
	}

	report, err := Validate(ctx, p.pool)
	if err != nil {
		return nil, err
	}
	if !report.Passed() {
		logging.Warn().
			Int64("orphan_facts", report.OrphanFacts).
			Msg("Referential integrity check failed")
	}
	return report, nil
}

// reload performs the destructive phase: schema check, truncate, dimension
// load, persisted-key filter, fact load, smoke check.
func (p *Pipeline) reload(ctx context.Context, db DB, products []ProductDim,
	locations []LocationDim, dates []DateDim, suppliers []SupplierDim,
	facts []FactInventory) error {

	loader := NewLoader(db, p.opts.BatchSize)

	if err := loader.ValidateProductSchema(ctx); err != nil {
		return err
	}
	if err := loader.TruncateAll(ctx); err != nil {
		return err
	}
	if err := loader.LoadDimensions(ctx, products, locations, dates, suppliers); err != nil {
		return err
	}

	// Dimension load and fact load are separate phases; filter against what
	// the store actually holds rather than trusting the in-memory transform.
	kept, dropped, err := FilterByPersistedProducts(ctx, db, facts)
	if err != nil {
		return err
	}
	if len(dropped) > 0 && p.opts.StrictReferences {
		return &ReferentialDropError{Dropped: dropped}
	}

	if _, err := loader.LoadFacts(ctx, kept); err != nil {
		return err
	}

	count, err := loader.ProductCount(ctx)
	if err != nil {
		return fmt.Errorf("failed post-load product count: %w", err)
	}
	logging.Info().Int64("dim_product_rows", count).Msg("Post-load smoke check")

	return nil
}

func (p *Pipeline) reloadAtomic(ctx context.Context, products []ProductDim,
	locations []LocationDim, dates []DateDim, suppliers []SupplierDim,
	facts []FactInventory) error {

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin reload transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := p.reload(ctx, tx, products, locations, dates, suppliers, facts); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit reload: %w", err)
	}
	return nil
}
