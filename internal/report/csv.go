package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/mmynk/expensetracker/internal/models"
)

// CSVHeader is the first row written by WriteCSV. Column names match the
// expenses table.
var CSVHeader = []string{
	"id", "person", "description", "amount", "category_period",
	"category", "expense_type", "sub_type", "date", "created_at",
}

// WriteCSV writes a header row and one row per expense.
func WriteCSV(w io.Writer, expenses []*models.Expense) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, e := range expenses {
		record := []string{
			strconv.FormatInt(e.ID, 10),
			e.Person,
			e.Description,
			e.Amount.String(),
			string(e.Period),
			string(e.Category),
			string(e.Type),
			e.SubType,
			e.Date.Format(models.DateLayout),
			strconv.FormatInt(e.CreatedAt, 10),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", e.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
