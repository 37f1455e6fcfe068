// Package render draws documents as A4 PDFs.
package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"

	"github.com/cleared-dev/thaidoc/internal/model"
)

// Options configures a Renderer.
type Options struct {
	// FontPath is a TTF file with Thai glyphs. Empty uses maroto's built-in font,
	// which cannot draw Thai script.
	FontPath   string
	FontFamily string
}

// Renderer turns a document and its totals into PDF bytes.
type Renderer struct {
	opts Options
}

// New creates a Renderer.
func New(opts Options) *Renderer {
	if opts.FontFamily == "" {
		opts.FontFamily = "thai"
	}
	return &Renderer{opts: opts}
}

// Render returns the PDF for doc.
func (r *Renderer) Render(doc *model.Document, totals model.CalculationResult) ([]byte, error) {
	v, err := buildView(doc, totals)
	if err != nil {
		return nil, err
	}

	cfg, err := r.config()
	if err != nil {
		return nil, err
	}

	m := maroto.New(cfg)
	addHeader(m, v)
	addParties(m, v)
	addItems(m, v)
	addTotals(m, v)

	pdf, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generating pdf: %w", err)
	}
	return pdf.GetBytes(), nil
}

func (r *Renderer) config() (*entity.Config, error) {
	b := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "{current} / {total}",
			Place:   props.RightBottom,
		})

	if r.opts.FontPath != "" {
		fonts, err := repository.New().
			AddUTF8Font(r.opts.FontFamily, fontstyle.Normal, r.opts.FontPath).
			AddUTF8Font(r.opts.FontFamily, fontstyle.Bold, r.opts.FontPath).
			AddUTF8Font(r.opts.FontFamily, fontstyle.Italic, r.opts.FontPath).
			AddUTF8Font(r.opts.FontFamily, fontstyle.BoldItalic, r.opts.FontPath).
			Load()
		if err != nil {
			return nil, fmt.Errorf("loading font %s: %w", r.opts.FontPath, err)
		}
		b = b.WithCustomFonts(fonts).WithDefaultFont(&props.Font{Family: r.opts.FontFamily})
	}

	return b.Build(), nil
}

func addHeader(m core.Maroto, v view) {
	m.AddRow(12,
		text.NewCol(12, v.Title, props.Text{Size: 18, Style: fontstyle.Bold, Align: align.Right}),
	)

	meta := col.New(6).Add(
		text.New("เลขที่ / No.: "+v.Number, props.Text{Size: 10, Align: align.Right}),
		text.New("วันที่ / Date: "+v.Date, props.Text{Size: 10, Top: 5, Align: align.Right}),
	)
	if v.DueDate != "" {
		meta.Add(text.New("ครบกำหนด / Due: "+v.DueDate, props.Text{Size: 10, Top: 10, Align: align.Right}))
	}
	m.AddRow(18, col.New(6), meta)
}

func addParties(m core.Maroto, v view) {
	m.AddRow(32,
		partyCol("ผู้ขาย / Seller", v.Seller),
		partyCol("ลูกค้า / Customer", v.Customer),
	)
}

func partyCol(label string, p model.Party) core.Col {
	c := col.New(6).Add(
		text.New(label, props.Text{Size: 9, Style: fontstyle.Bold}),
		text.New(p.Name, props.Text{Size: 10, Top: 5}),
		text.New(p.Address, props.Text{Size: 9, Top: 10}),
	)
	if p.TaxID != "" {
		c.Add(text.New("เลขประจำตัวผู้เสียภาษี "+p.TaxID, props.Text{Size: 9, Top: 20}))
	}
	return c
}

func addItems(m core.Maroto, v view) {
	head := props.Text{Size: 9, Style: fontstyle.Bold}
	headRight := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
	m.AddRow(8,
		text.NewCol(1, "#", head),
		text.NewCol(5, "รายการ / Description", head),
		text.NewCol(1, "จำนวน", headRight),
		text.NewCol(1, "หน่วย", head),
		text.NewCol(2, "ราคา/หน่วย", headRight),
		text.NewCol(2, "จำนวนเงิน", headRight),
	)

	cell := props.Text{Size: 9}
	right := props.Text{Size: 9, Align: align.Right}
	for _, r := range v.Rows {
		m.AddRow(7,
			text.NewCol(1, r.Index, cell),
			text.NewCol(5, r.Description, cell),
			text.NewCol(1, r.Quantity, right),
			text.NewCol(1, r.Unit, cell),
			text.NewCol(2, r.UnitPrice, right),
			text.NewCol(2, r.Amount, right),
		)
	}
}

func addTotals(m core.Maroto, v view) {
	label := props.Text{Size: 9}
	amount := props.Text{Size: 9, Align: align.Right}
	bold := props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}

	m.AddRow(7, col.New(7), text.NewCol(3, "รวมเงิน / Subtotal", label), text.NewCol(2, v.Subtotal, amount))
	m.AddRow(7, col.New(7), text.NewCol(3, v.TaxLabel, label), text.NewCol(2, v.TaxAmount, amount))
	m.AddRow(8, col.New(7), text.NewCol(3, "ยอดสุทธิ / Total", props.Text{Size: 10, Style: fontstyle.Bold}), text.NewCol(2, v.Total, bold))
	m.AddRow(8, text.NewCol(12, "("+v.TotalText+")", props.Text{Size: 9, Align: align.Right}))

	if v.Notes != "" {
		m.AddRow(14, text.NewCol(12, "หมายเหตุ: "+v.Notes, props.Text{Size: 9, Top: 4}))
	}
}

// WriteFile writes a rendered PDF, creating the parent directory.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
