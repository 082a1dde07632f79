// Package render builds self-contained HTML markup from document
// requests. It performs no I/O; given a frozen clock the output is
// byte-identical for identical input.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/cides/formadesk/internal/document/domain"
)

// Builder is the pure markup side of the pipeline.
type Builder struct {
	tpls map[domain.Kind]*template.Template
}

// signatureView pairs a labeled slot with the party that signs it.
type signatureView struct {
	Label string
	Party domain.Party
}

// buildContext is the root value handed to every template.
type buildContext struct {
	Title       string
	FooterLeft  string
	GeneratedAt string
	Doc         any
	Totals      domain.Totals
	Options     domain.RenderOptions
}

// NewBuilder parses all document templates once.
func NewBuilder() *Builder {
	funcs := template.FuncMap{
		"formatMoney":    FormatMoney,
		"formatPercent":  FormatPercent,
		"formatQuantity": FormatQuantity,
		"formatDate":     FormatDate,
		"orPlaceholder":  OrPlaceholder,
		"nbsp":           func() string { return nbsp },
		"paymentLabel":   func(p domain.PaymentOrigin) string { return p.Label() },
		// Returned as template.URL so data-URI signatures survive the
		// url filter.
		"signatureSource": func(s *domain.SignatureImage) template.URL {
			return template.URL(s.Source())
		},
		"formatRating": func(v *float64) string {
			if v == nil {
				return PlaceholderDate
			}
			return FormatQuantity(*v) + "/5"
		},
		"slot": func(label string, party domain.Party) signatureView {
			return signatureView{Label: label, Party: party}
		},
	}

	bodies := map[domain.Kind]string{
		domain.KindInvoice:       invoiceBody,
		domain.KindContract:      contractBody,
		domain.KindNonConformity: nonConformityBody,
		domain.KindDisclaimer:    disclaimerBody,
		domain.KindSurveyExport:  surveyExportBody,
	}

	tpls := make(map[domain.Kind]*template.Template, len(bodies))
	for kind, body := range bodies {
		src := documentHead + body + documentFoot + partyBlock + signatureSlot + lineTable + totalsBlock
		tpls[kind] = template.Must(template.New(string(kind)).Funcs(funcs).Parse(src))
	}

	return &Builder{tpls: tpls}
}

// BuildMarkup validates the request and renders its markup. The now
// argument only feeds the marked generated-at footer field.
func (b *Builder) BuildMarkup(req domain.DocumentRequest, opts domain.RenderOptions, now time.Time) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	ctx := buildContext{
		GeneratedAt: FormatTimestamp(now),
		Options:     opts,
	}

	switch req.Kind {
	case domain.KindInvoice:
		ctx.Title = "Facture " + req.Invoice.Number
		ctx.FooterLeft = "Facture " + req.Invoice.Number
		ctx.Doc = req.Invoice
		ctx.Totals = domain.ComputeTotals(req.Invoice.Lines)
	case domain.KindContract:
		ctx.Title = "Convention " + req.Contract.Number
		ctx.FooterLeft = "Convention de formation " + req.Contract.Number
		ctx.Doc = req.Contract
		ctx.Totals = domain.ComputeTotals(req.Contract.Lines)
	case domain.KindNonConformity:
		ctx.Title = "Non-conformité " + req.NonConformity.Number
		ctx.FooterLeft = "Fiche de non-conformité " + req.NonConformity.Number
		ctx.Doc = req.NonConformity
	case domain.KindDisclaimer:
		ctx.Title = "Décharge " + req.Disclaimer.Number
		ctx.FooterLeft = "Décharge de responsabilité"
		ctx.Doc = req.Disclaimer
	case domain.KindSurveyExport:
		ctx.Title = "Enquête " + req.SurveyExport.Number
		ctx.FooterLeft = "Enquête de satisfaction"
		ctx.Doc = req.SurveyExport
	}

	tpl, ok := b.tpls[req.Kind]
	if !ok {
		return "", fmt.Errorf("%w: no template for kind %q", domain.ErrMarkupBuild, req.Kind)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, ctx); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrMarkupBuild, err)
	}
	return buf.String(), nil
}
