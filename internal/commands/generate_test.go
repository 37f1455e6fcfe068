package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/thaidoc/internal/history"
	"github.com/cleared-dev/thaidoc/internal/model"
)

// projectWith initializes a project and copies testdata files into it.
func projectWith(t *testing.T, files ...string) string {
	t.Helper()
	dir := t.TempDir()
	_, err := runThaidoc(t, dir, "init", dir, "--name", "Test Seller")
	require.NoError(t, err)

	for _, name := range files {
		data, err := os.ReadFile(filepath.Join("..", "..", "testdata", name))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
	}
	return dir
}

func TestThaiDate(t *testing.T) {
	out, err := runThaidoc(t, t.TempDir(), "thaidate", "2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, "15 มกราคม 2567\n", out)
}

func TestThaiDate_Invalid(t *testing.T) {
	out, err := runThaidoc(t, t.TempDir(), "thaidate", "someday")
	require.Error(t, err)
	assert.Contains(t, out, "invalid date")
}

func TestTotals(t *testing.T) {
	dir := projectWith(t, "invoice.json")

	out, err := runThaidoc(t, dir, "totals", "invoice.json")
	require.NoError(t, err, out)
	assert.Contains(t, out, "29,206.00")
	assert.Contains(t, out, "2,044.42")
	assert.Contains(t, out, "31,250.42")
	assert.Contains(t, out, "VAT")
}

func TestTotals_Withholding(t *testing.T) {
	dir := projectWith(t, "receipt_withholding.json")

	out, err := runThaidoc(t, dir, "totals", "receipt_withholding.json", "--decimals", "0")
	require.NoError(t, err, out)
	assert.Contains(t, out, "15,000")
	assert.Contains(t, out, "450")
	assert.Contains(t, out, "14,550")
	assert.Contains(t, out, "Withholding")
}

func TestTotals_MissingFile(t *testing.T) {
	out, err := runThaidoc(t, t.TempDir(), "totals", "nope.json")
	require.Error(t, err)
	assert.Contains(t, out, "document not found")
}

func TestTotals_Malformed(t *testing.T) {
	dir := projectWith(t, "malformed.json")
	out, err := runThaidoc(t, dir, "totals", "malformed.json")
	require.Error(t, err)
	assert.Contains(t, out, "parsing")
}

func TestGenerate_WritesPDF(t *testing.T) {
	dir := projectWith(t, "invoice.json")

	out, err := runThaidoc(t, dir, "generate", "invoice.json")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Generated output/invoice-INV-2567-001.pdf")

	data, err := os.ReadFile(filepath.Join(dir, "output", "invoice-INV-2567-001.pdf"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))

	entries, err := history.Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "INV-2567-001", entries[0].Number)
	assert.Equal(t, model.DocInvoice, entries[0].Type)
	assert.Equal(t, "31250.42", entries[0].Total.StringFixed(2))
}

func TestGenerate_OutputOverride(t *testing.T) {
	dir := projectWith(t, "invoice.json")
	custom := filepath.Join(dir, "custom", "my.pdf")

	out, err := runThaidoc(t, dir, "generate", "invoice.json", "--output", custom)
	require.NoError(t, err, out)

	_, err = os.Stat(custom)
	require.NoError(t, err)
}

func TestGenerate_AutoNumber(t *testing.T) {
	dir := projectWith(t, "receipt_withholding.json")

	out, err := runThaidoc(t, dir, "generate", "receipt_withholding.json")
	require.NoError(t, err, out)
	assert.Contains(t, out, "output/receipt-RC-2567-001.pdf")

	out, err = runThaidoc(t, dir, "generate", "receipt_withholding.json")
	require.NoError(t, err, out)
	assert.Contains(t, out, "output/receipt-RC-2567-002.pdf")
}

func TestGenerate_DryRun(t *testing.T) {
	dir := projectWith(t, "invoice.json")

	out, err := runThaidoc(t, dir, "generate", "invoice.json", "--dry-run", "--type", "quotation", "--number", "QT-9")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Would write output/quotation-QT-9.pdf")
	assert.Contains(t, out, "31,250.42")

	_, err = os.Stat(filepath.Join(dir, "output", "quotation-QT-9.pdf"))
	assert.True(t, os.IsNotExist(err), "dry run must not write the PDF")
}

func TestGenerate_ItemsCSV(t *testing.T) {
	dir := projectWith(t, "receipt_withholding.json", "items.csv")

	out, err := runThaidoc(t, dir, "generate", "receipt_withholding.json", "--items", "items.csv", "--dry-run")
	require.NoError(t, err, out)
	// 29,206.00 less 3% withholding.
	assert.Contains(t, out, "28,329.82")
}

func TestGenerate_Root(t *testing.T) {
	project := projectWith(t, "invoice.json")
	elsewhere := t.TempDir()

	out, err := runThaidoc(t, elsewhere, "generate", filepath.Join(project, "invoice.json"), "--root", project)
	require.NoError(t, err, out)

	pdfPath := filepath.Join(project, "output", "invoice-INV-2567-001.pdf")
	assert.Contains(t, out, "Generated "+pdfPath)
	_, err = os.Stat(pdfPath)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(elsewhere, "output"))
	assert.True(t, os.IsNotExist(err), "nothing is written outside the project")

	entries, err := history.Read(project)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, pdfPath, entries[0].Path)
}

func TestGenerate_AmountOverflow(t *testing.T) {
	dir := t.TempDir()
	doc := `{"documentNumber":"1","date":"2024-01-15","customer":{"name":"Acme"},` +
		`"items":[{"description":"huge","quantity":1e200,"unitPrice":1e200}]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "huge.json"), []byte(doc), 0o644))

	out, err := runThaidoc(t, dir, "generate", "huge.json")
	require.Error(t, err)
	assert.Contains(t, out, "items[0]: amount overflows")
	assert.NotContains(t, out, "panic")
}

func TestGenerate_Invalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.json"), []byte(`{"documentNumber":"1","date":"2024-01-15"}`), 0o644))

	out, err := runThaidoc(t, dir, "generate", "empty.json")
	require.Error(t, err)
	assert.Contains(t, out, "customer.name: is required")
	assert.Contains(t, out, "items: at least one line item is required")
}
