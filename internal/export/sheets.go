// Package export appends the purchase log to a Google Sheet. Only completed
// purchases are exported; the sheet serves as an off-site record, not a
// second source of truth.
package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

// Appender writes one purchase-log row. Satisfied by SheetsClient; the
// worker depends on this so tests can record rows in memory.
type Appender interface {
	AppendPurchase(ctx context.Context, row PurchaseRow) error
}

// PurchaseRow is a single exported record.
type PurchaseRow struct {
	When     time.Time
	ItemID   string
	Name     string
	Price    float64
	Category string
}

type SheetsClient struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheetName     string
}

var _ Appender = (*SheetsClient)(nil)

// NewFromEnv creates a Sheets client from environment variables.
// Required: GOOGLE_SPREADSHEET_ID.
// Optional: GOOGLE_CREDENTIALS_JSON or GOOGLE_APPLICATION_CREDENTIALS for
// auth (ADC otherwise), GOOGLE_SHEET_NAME (default "Purchases").
func NewFromEnv(ctx context.Context) (*SheetsClient, error) {
	spreadsheetID := strings.TrimSpace(os.Getenv("GOOGLE_SPREADSHEET_ID"))
	if spreadsheetID == "" {
		return nil, errors.New("missing GOOGLE_SPREADSHEET_ID")
	}

	sheetName := strings.TrimSpace(os.Getenv("GOOGLE_SHEET_NAME"))
	if sheetName == "" {
		sheetName = "Purchases"
	}

	opts := []goption.ClientOption{goption.WithScopes(gsheet.SpreadsheetsScope)}
	if credsJSON := os.Getenv("GOOGLE_CREDENTIALS_JSON"); credsJSON != "" {
		opts = append(opts, goption.WithCredentialsJSON([]byte(credsJSON)))
	} else if credsFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credsFile != "" {
		opts = append(opts, goption.WithCredentialsFile(credsFile))
	}

	svc, err := gsheet.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &SheetsClient{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

// AppendPurchase appends one row to the purchase-log sheet.
func (c *SheetsClient) AppendPurchase(ctx context.Context, row PurchaseRow) error {
	vr := &gsheet.ValueRange{Values: [][]any{{
		row.When.Format(time.RFC3339),
		row.ItemID,
		row.Name,
		row.Price,
		row.Category,
	}}}

	rng := fmt.Sprintf("%s!A:E", c.sheetName)
	resp, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, rng, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append purchase row: %w", err)
	}

	ref := ""
	if resp.Updates != nil {
		ref = resp.Updates.UpdatedRange
	}
	slog.InfoContext(ctx, "Purchase exported to sheet",
		"item_id", row.ItemID,
		"sheets_ref", ref)
	return nil
}
