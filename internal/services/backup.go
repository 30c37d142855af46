package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/Leonardo777l/Finanzas-Leo/internal/errs"
	"github.com/Leonardo777l/Finanzas-Leo/internal/models"
	"github.com/Leonardo777l/Finanzas-Leo/pkg/logger"
)

var csvHeaders = []string{
	"Fecha (YYYY-MM-DD)",
	"Descripción",
	"Monto",
	"Categoría (income/expense/fixed)",
	"Etiqueta (Opcional)",
}

const csvExample = "2024-01-15,Supermercado,1500.50,expense,Comida"

type backupStateStore interface {
	ExportData() ([]byte, error)
	ImportData(data []byte) error
	AddTransactions(txs []models.Transaction) []models.Transaction
	ResetData()
}

type backupService struct {
	store backupStateStore
}

func NewBackupService(store backupStateStore) *backupService {
	return &backupService{store: store}
}

func (s *backupService) Export(ctx context.Context) ([]byte, error) {
	return s.store.ExportData()
}

func (s *backupService) ImportJSON(ctx context.Context, data []byte) error {
	return s.store.ImportData(data)
}

// ImportCSV appends transactions from rows of
// date, description, amount, type, category. The header row and rows that
// fail to parse are skipped; everything valid is added as one batch.
func (s *backupService) ImportCSV(ctx context.Context, data []byte) (int, error) {
	log := logger.FromContext(ctx)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return 0, errs.NewMalformedImportError("file is not valid CSV")
	}
	if len(records) <= 1 {
		return 0, errs.NewMalformedImportError("CSV contains no transaction rows")
	}

	txs := make([]models.Transaction, 0, len(records)-1)
	for _, row := range records[1:] {
		t, ok := parseCSVRow(row)
		if !ok {
			log.Warn("skipping malformed CSV row", "row", strings.Join(row, ","))
			continue
		}
		txs = append(txs, t)
	}
	if len(txs) == 0 {
		return 0, errs.NewMalformedImportError("no valid transaction rows in CSV")
	}

	added := s.store.AddTransactions(txs)
	log.Info("transactions imported from CSV", "count", len(added))
	return len(added), nil
}

func (s *backupService) CSVTemplate() string {
	return strings.Join(csvHeaders, ",") + "\n" + csvExample
}

func (s *backupService) Reset(ctx context.Context) {
	logger.FromContext(ctx).Info("all collections reset")
	s.store.ResetData()
}

// parseCSVRow reads date, description, amount, type, category. The template
// allows "fixed"/"variable" directly in the type column as a shorthand for a
// categorized expense; an explicit category column value that is not a valid
// category is kept as the tag.
func parseCSVRow(row []string) (models.Transaction, bool) {
	if len(row) < 4 {
		return models.Transaction{}, false
	}
	date := strings.TrimSpace(row[0])
	description := strings.TrimSpace(row[1])
	amount, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
	if date == "" || description == "" || err != nil || amount <= 0 {
		return models.Transaction{}, false
	}

	t := models.Transaction{
		Date:        date,
		Description: description,
		Amount:      amount,
	}

	switch raw := strings.TrimSpace(row[3]); {
	case models.TransactionType(raw).Valid():
		t.Type = models.TransactionType(raw)
	case models.ExpenseCategory(raw).Valid():
		t.Type = models.TransactionExpense
		t.Category = models.ExpenseCategory(raw)
	default:
		return models.Transaction{}, false
	}
	if t.Type == models.TransactionExpense && t.Category == "" {
		t.Category = models.CategoryVariable
	}

	if len(row) >= 5 {
		extra := strings.TrimSpace(row[4])
		if cat := models.ExpenseCategory(extra); t.Type == models.TransactionExpense && cat.Valid() {
			t.Category = cat
		} else {
			t.Tag = extra
		}
	}
	return t, true
}
