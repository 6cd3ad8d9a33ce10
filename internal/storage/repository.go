package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	_ "modernc.org/sqlite"

	"wishlist/internal/core"
	"wishlist/internal/store"
)

// SQLiteRepository is the durable backend: it implements both the catalog
// and the status store ports over one database.
type SQLiteRepository struct {
	db *sql.DB
}

var (
	_ store.CatalogStore = (*SQLiteRepository)(nil)
	_ store.StatusStore  = (*SQLiteRepository)(nil)
)

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// SeedIfEmpty populates an empty database with the given catalog. Re-running
// against a populated database is a no-op.
func (r *SQLiteRepository) SeedIfEmpty(ctx context.Context, seed []core.Category) error {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, c := range seed {
		items := c.Items
		c.Items = nil
		if err := r.AddCategory(ctx, c); err != nil {
			return err
		}
		for _, item := range items {
			if err := r.AddItem(ctx, c.ID, item); err != nil {
				return err
			}
		}
	}

	slog.InfoContext(ctx, "Seeded empty catalog", "categories", len(seed))
	return nil
}

// ListCategories returns categories pre-joined with items, both in stored
// sort order. The two table scans run concurrently.
func (r *SQLiteRepository) ListCategories(ctx context.Context) ([]core.Category, error) {
	var (
		categories []core.Category
		byCategory map[string][]core.Item
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = r.listCategoryRows(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		byCategory, err = r.listItemRows(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range categories {
		items := byCategory[categories[i].ID]
		if items == nil {
			items = []core.Item{}
		}
		categories[i].Items = items
	}
	return categories, nil
}

func (r *SQLiteRepository) listCategoryRows(ctx context.Context) ([]core.Category, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, icon, COALESCE(purchase_deadline, '')
		FROM categories ORDER BY sort_order, id`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var out []core.Category
	for rows.Next() {
		var c core.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon, &c.PurchaseDeadline); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) listItemRows(ctx context.Context) (map[string][]core.Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, category_id, name, COALESCE(url, ''), COALESCE(price, 0),
		       COALESCE(image_url, ''), is_preferred, COALESCE(notes, '')
		FROM items ORDER BY sort_order, id`)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]core.Item)
	for rows.Next() {
		var (
			item        core.Item
			categoryID  string
			isPreferred int
			notesJSON   string
		)
		if err := rows.Scan(&item.ID, &categoryID, &item.Name, &item.URL,
			&item.Price, &item.ImageURL, &isPreferred, &notesJSON); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		item.IsPreferred = isPreferred == 1
		if notesJSON != "" {
			if err := json.Unmarshal([]byte(notesJSON), &item.Notes); err != nil {
				slog.WarnContext(ctx, "Dropping malformed item notes", "item_id", item.ID, "error", err)
				item.Notes = nil
			}
		}
		out[categoryID] = append(out[categoryID], item)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) AddCategory(ctx context.Context, c core.Category) error {
	if err := c.Validate(); err != nil {
		return err
	}

	// Append position: sort order is the current category count.
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO categories (id, name, icon, purchase_deadline, sort_order)
		VALUES (?, ?, ?, NULLIF(?, ''), (SELECT COUNT(*) FROM categories))`,
		c.ID, c.Name, c.Icon, c.PurchaseDeadline)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}

	slog.InfoContext(ctx, "Category created", "category_id", c.ID, "name", c.Name)
	return nil
}

func (r *SQLiteRepository) AddItem(ctx context.Context, categoryID string, item core.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	var exists int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM categories WHERE id = ?`, categoryID).Scan(&exists); err != nil {
		return fmt.Errorf("check category: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("category %q: %w", categoryID, store.ErrCategoryNotFound)
	}

	var notesJSON any
	if len(item.Notes) > 0 {
		b, err := json.Marshal(item.Notes)
		if err != nil {
			return fmt.Errorf("marshal notes: %w", err)
		}
		notesJSON = string(b)
	}

	isPreferred := 0
	if item.IsPreferred {
		isPreferred = 1
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO items (id, category_id, name, url, price, image_url, is_preferred, notes, sort_order)
		VALUES (?, ?, ?, NULLIF(?, ''), NULLIF(?, 0), NULLIF(?, ''), ?, ?,
		        (SELECT COUNT(*) FROM items WHERE category_id = ?))`,
		item.ID, categoryID, item.Name, item.URL, item.Price, item.ImageURL,
		isPreferred, notesJSON, categoryID)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}

	slog.InfoContext(ctx, "Item created",
		"item_id", item.ID, "category_id", categoryID, "name", item.Name)
	return nil
}

func (r *SQLiteRepository) ListStatuses(ctx context.Context) (map[string]core.Status, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT item_id, status FROM item_statuses`)
	if err != nil {
		return nil, fmt.Errorf("query statuses: %w", err)
	}
	defer rows.Close()

	out := make(map[string]core.Status)
	for rows.Next() {
		var id, raw string
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("scan status: %w", err)
		}
		out[id] = core.Status(raw)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) UpsertStatus(ctx context.Context, itemID string, status core.Status) error {
	if !status.Valid() {
		return core.ErrInvalidStatus
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO item_statuses (item_id, status, updated_at)
		VALUES (?, ?, datetime('now'))
		ON CONFLICT(item_id) DO UPDATE SET
			status = excluded.status,
			updated_at = excluded.updated_at`,
		itemID, string(status))
	if err != nil {
		return fmt.Errorf("upsert status: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteStatus(ctx context.Context, itemID string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM item_statuses WHERE item_id = ?`, itemID); err != nil {
		return fmt.Errorf("delete status: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteAllStatuses(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM item_statuses`); err != nil {
		return fmt.Errorf("delete all statuses: %w", err)
	}
	return nil
}
