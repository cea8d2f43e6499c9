package documents

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"condado_dog/internal/domain/entities"
	"condado_dog/pkg"
)

// detectChromePath detects the path to Chrome/Chromium executable.
// Checks CHROME_PATH env var first, then common installation paths.
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// ChromeRenderer renders the client-facing proposal as a PDF through a
// headless Chrome instance.
type ChromeRenderer struct {
	tmpl *template.Template
}

func NewChromeRenderer() (*ChromeRenderer, error) {
	tmpl, err := template.New("proposal").Parse(proposalTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse proposal template: %w", err)
	}
	return &ChromeRenderer{tmpl: tmpl}, nil
}

type proposalData struct {
	Quote         entities.Quote
	ClientLabel   string
	CheckIn       string
	CheckOut      string
	BillableUnits string
	UnitPrice     string
	GrossTotal    string
	DiscountTotal string
	FinalTotal    string
	HasDiscount   bool
	GeneratedAt   string
}

var clientLabels = map[entities.ClientType]string{
	entities.ClientTypeAvulso:           "Avulso",
	entities.ClientTypeMensal:           "Mensal",
	entities.ClientTypeMensalFidelidade: "Mensal Fidelidade",
}

// RenderProposal renders the quote into the proposal HTML and prints it to
// an A4 PDF via headless Chrome.
func (r *ChromeRenderer) RenderProposal(ctx context.Context, q entities.Quote) ([]byte, error) {
	data := proposalData{
		Quote:         q,
		ClientLabel:   clientLabels[q.ClientType],
		CheckIn:       q.CheckIn.Format("02/01/2006 15:04"),
		CheckOut:      q.CheckOut.Format("02/01/2006 15:04"),
		BillableUnits: pkg.FormatDiarias(q.BillableUnits),
		UnitPrice:     pkg.FormatBRL(q.UnitPrice),
		GrossTotal:    pkg.FormatBRL(q.GrossTotal),
		DiscountTotal: pkg.FormatBRL(q.DiscountTotal),
		FinalTotal:    pkg.FormatBRL(q.FinalTotal),
		HasDiscount:   q.DiscountTotal.IsPositive(),
		GeneratedAt:   time.Now().Format("02/01/2006"),
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute proposal template: %w", err)
	}

	return r.printToPDF(ctx, buf.Bytes())
}

// printToPDF loads the rendered HTML in headless Chrome via a data: URL and
// prints it as an A4 PDF.
func (r *ChromeRenderer) printToPDF(ctx context.Context, html []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if chromePath := detectChromePath(); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString(html)

	var pdfBuf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).   // 210mm in inches (A4)
				WithPaperHeight(11.69). // 297mm in inches
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return pdfBuf, nil
}

const proposalTemplate = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>Proposta de Hospedagem</title>
<style>
  body { font-family: "Helvetica Neue", Arial, sans-serif; color: #2b2b2b; margin: 40px; }
  h1 { color: #1d5c3f; font-size: 24px; margin-bottom: 4px; }
  .subtitle { color: #777; font-size: 13px; margin-bottom: 28px; }
  table { width: 100%; border-collapse: collapse; margin-bottom: 24px; }
  th, td { text-align: left; padding: 8px 10px; font-size: 14px; }
  th { background: #1d5c3f; color: #fff; }
  tr:nth-child(even) td { background: #f4f7f5; }
  .total td { font-weight: bold; font-size: 16px; border-top: 2px solid #1d5c3f; }
  .footer { font-size: 11px; color: #999; margin-top: 40px; }
</style>
</head>
<body>
  <h1>Condado Dog</h1>
  <div class="subtitle">Proposta de hospedagem gerada em {{.GeneratedAt}}</div>

  <table>
    <tr><th colspan="2">Reserva</th></tr>
    <tr><td>Tutor</td><td>{{.Quote.OwnerName}}</td></tr>
    <tr><td>Pets</td><td>{{range $i, $p := .Quote.PetNames}}{{if $i}}, {{end}}{{$p}}{{end}}</td></tr>
    <tr><td>Tipo de cliente</td><td>{{.ClientLabel}}</td></tr>
    <tr><td>Check-in</td><td>{{.CheckIn}}</td></tr>
    <tr><td>Check-out</td><td>{{.CheckOut}}</td></tr>
    {{if .Quote.HighSeason}}<tr><td>Temporada</td><td>Alta temporada</td></tr>{{end}}
  </table>

  <table>
    <tr><th colspan="2">Valores</th></tr>
    <tr><td>Diárias</td><td>{{.BillableUnits}}</td></tr>
    <tr><td>Valor da diária</td><td>{{.UnitPrice}}</td></tr>
    <tr><td>Subtotal</td><td>{{.GrossTotal}}</td></tr>
    {{if .HasDiscount}}<tr><td>Desconto creche ({{.Quote.MatchingDayCount}} dias)</td><td>-{{.DiscountTotal}}</td></tr>{{end}}
    <tr class="total"><td>Total</td><td>{{.FinalTotal}}</td></tr>
  </table>

  {{if .Quote.Note}}<p>{{.Quote.Note}}</p>{{end}}

  <div class="footer">Orçamento {{.Quote.ID}} &middot; Valores sujeitos a alteração sem aviso prévio.</div>
</body>
</html>`
