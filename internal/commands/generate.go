package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cleared-dev/thaidoc/internal/calc"
	"github.com/cleared-dev/thaidoc/internal/document"
	"github.com/cleared-dev/thaidoc/internal/fileio"
	"github.com/cleared-dev/thaidoc/internal/history"
	"github.com/cleared-dev/thaidoc/internal/items"
	"github.com/cleared-dev/thaidoc/internal/logger"
	"github.com/cleared-dev/thaidoc/internal/model"
	"github.com/cleared-dev/thaidoc/internal/render"
	"github.com/cleared-dev/thaidoc/internal/thaifmt"
)

type generateOptions struct {
	docType   string
	number    string
	output    string
	itemsPath string
	root      string
	dryRun    bool
}

func newGenerateCommand(a *app) *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate <document.json>",
		Short: "Render a document to PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.docType, "type", "", "document type: invoice, quotation or receipt")
	cmd.Flags().StringVar(&opts.number, "number", "", "document number (default: next in the document log)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output path (default: output/<type>-<number>.pdf)")
	cmd.Flags().StringVar(&opts.itemsPath, "items", "", "CSV file replacing the document's line items")
	cmd.Flags().StringVar(&opts.root, "root", ".", "project directory holding output/ and logs/")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "compute and print without writing files")

	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, path string, opts generateOptions) error {
	log := logger.Get(cmd.Context()).With(zap.String("document", path))

	doc, err := document.Load(fileio.OS, path)
	if err != nil {
		return err
	}

	if opts.docType != "" {
		t, err := model.ParseDocumentType(opts.docType)
		if err != nil {
			return err
		}
		doc.Type = t
	}
	document.ApplyDefaults(doc, a.cfg)

	if doc.Date == "" {
		doc.Date = time.Now().Format(time.DateOnly)
	}

	if opts.itemsPath != "" {
		lineItems, err := readItemsFile(opts.itemsPath)
		if err != nil {
			return err
		}
		doc.Items = lineItems
	}

	if opts.number != "" {
		doc.Number = opts.number
	}
	if doc.Number == "" {
		number, err := nextNumber(opts.root, doc)
		if err != nil {
			return err
		}
		doc.Number = number
		log.Debug("assigned document number", zap.String("number", number))
	}

	if err := document.Check(doc); err != nil {
		return err
	}

	totals := calc.CalculateTotals(doc.Items, doc.Rate(), doc.TaxType)
	override := opts.output
	if override == "" {
		override = doc.Output
	}
	outPath := document.OutputPath(string(doc.Type), doc.Number, override)
	if override == "" && opts.root != "." {
		// Keep the PDF in the same project as its log entry.
		outPath = filepath.Join(opts.root, outPath)
	}

	log.Info("document totals",
		zap.String("number", doc.Number),
		zap.Float64("subtotal", totals.Subtotal),
		zap.Float64("tax", totals.TaxAmount),
		zap.Float64("total", totals.Total),
	)

	if opts.dryRun {
		printTotals(cmd, doc, totals, thaifmt.DefaultDecimals)
		fmt.Fprintf(cmd.OutOrStdout(), "Would write %s\n", outPath)
		return nil
	}

	pdf, err := render.New(render.Options{
		FontPath:   a.cfg.PDF.FontPath,
		FontFamily: a.cfg.PDF.FontFamily,
	}).Render(doc, totals)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", doc.Number, err)
	}
	if err := render.WriteFile(outPath, pdf); err != nil {
		return err
	}

	entry := history.Entry{
		Timestamp: time.Now().UTC(),
		Type:      doc.Type,
		Number:    doc.Number,
		Customer:  doc.Customer.Name,
		Total:     decimal.NewFromFloat(totals.Total),
		Path:      outPath,
	}
	if err := history.Append(opts.root, []history.Entry{entry}); err != nil {
		log.Warn("failed to write document log", zap.Error(err))
	}

	log.Info("document written", zap.String("path", outPath), zap.Int("bytes", len(pdf)))
	fmt.Fprintf(cmd.OutOrStdout(), "Generated %s\n", outPath)
	return nil
}

func readItemsFile(path string) ([]model.LineItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening items %s: %w", path, err)
	}
	defer f.Close()

	lineItems, err := items.ReadItems(f)
	if err != nil {
		return nil, fmt.Errorf("reading items %s: %w", filepath.Base(path), err)
	}
	return lineItems, nil
}

func nextNumber(root string, doc *model.Document) (string, error) {
	date, err := thaifmt.ParseDate(doc.Date)
	if err != nil {
		return "", err
	}
	entries, err := history.Read(root)
	if err != nil {
		return "", err
	}
	return history.NextNumber(entries, doc.Type, thaifmt.BuddhistYear(date.Year())), nil
}
