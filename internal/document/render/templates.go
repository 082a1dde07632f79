package render

// Every template produces a self-contained A4 document: inline styles,
// absolute or data-URI image references only. The generated-at timestamp
// lives in a single marked footer span; everything else is a pure
// function of the request.

const documentHead = `<!doctype html>
<html lang="fr">
<head>
  <meta charset="utf-8" />
  <title>{{.Title}}</title>
  <style>
    @page { size: A4 portrait; }
    :root {
      --accent: #103c64;
      --muted: #6b7684;
      --line: #dde3ea;
      --font: "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
    }
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 28px 36px;
      font-family: var(--font);
      font-size: 12px;
      color: #17212e;
      background: #ffffff;
    }
    .doc-header {
      display: flex;
      justify-content: space-between;
      border-bottom: 2px solid var(--accent);
      padding-bottom: 14px;
      margin-bottom: 22px;
    }
    .doc-header h1 {
      margin: 0;
      font-size: 20px;
      color: var(--accent);
      text-transform: uppercase;
      letter-spacing: 0.5px;
    }
    .doc-number { font-size: 13px; font-weight: 600; color: var(--muted); }
    .label {
      font-size: 9px;
      text-transform: uppercase;
      color: var(--muted);
      letter-spacing: 0.3px;
      font-weight: 600;
      margin-bottom: 3px;
    }
    .value { font-size: 12px; line-height: 1.5; }
    .meta-grid { display: flex; justify-content: space-between; margin-bottom: 22px; }
    .col { flex: 1; padding-right: 18px; }
    table { width: 100%; border-collapse: collapse; margin-bottom: 18px; }
    th {
      text-align: left;
      text-transform: uppercase;
      font-size: 9px;
      color: var(--muted);
      border-bottom: 1px solid var(--line);
      padding: 7px 4px;
      letter-spacing: 0.3px;
    }
    td { padding: 8px 4px; border-bottom: 1px solid var(--line); vertical-align: top; }
    .td-right { text-align: right; }
    .totals { width: 260px; margin-left: auto; }
    .total-row { display: flex; justify-content: space-between; padding: 4px 0; }
    .total-final {
      border-top: 1px solid var(--accent);
      margin-top: 6px;
      padding-top: 6px;
      font-weight: 700;
      font-size: 13px;
    }
    .clauses { margin: 0 0 18px 0; padding-left: 18px; }
    .clauses li { margin-bottom: 6px; line-height: 1.5; }
    .signatures { display: flex; justify-content: space-between; margin-top: 30px; }
    .signature-slot {
      flex: 1;
      margin-right: 20px;
      border: 1px solid var(--line);
      border-radius: 3px;
      padding: 10px;
      min-height: 90px;
    }
    .signature-slot:last-child { margin-right: 0; }
    .signature-slot img { max-height: 60px; max-width: 100%; }
    .not-signed { color: var(--muted); font-style: italic; }
    .free-text { line-height: 1.6; margin-bottom: 16px; white-space: pre-line; }
    .doc-footer {
      margin-top: 34px;
      border-top: 1px solid var(--line);
      padding-top: 10px;
      font-size: 9px;
      color: var(--muted);
      display: flex;
      justify-content: space-between;
    }
  </style>
</head>
<body>
`

const documentFoot = `
  <div class="doc-footer">
    <span>{{.FooterLeft}}</span>
    <span>Édité le <span class="generated-at">{{.GeneratedAt}}</span></span>
  </div>
</body>
</html>
`

const partyBlock = `{{define "party"}}
      <div class="value">
        <strong>{{orPlaceholder .Name}}</strong><br>
        {{orPlaceholder .Address}}<br>
        {{orPlaceholder .Email}}
        {{if .SIRET}}<br>SIRET{{nbsp}}: {{.SIRET}}{{end}}
      </div>
{{end}}`

const signatureSlot = `{{define "signature"}}
    <div class="signature-slot">
      <div class="label">{{.Label}}</div>
      <div class="value">{{orPlaceholder .Party.Name}}</div>
      {{if signatureSource .Party.Signature}}
        <img src="{{signatureSource .Party.Signature}}" alt="Signature" />
      {{else}}
        <span class="not-signed">` + PlaceholderNotSigned + `</span>
      {{end}}
    </div>
{{end}}`

const lineTable = `{{define "lines"}}
    <table>
      <thead>
        <tr>
          <th style="width: 16%;">Référence</th>
          <th style="width: 44%;">Désignation</th>
          <th class="td-right">Qté</th>
          <th class="td-right">PU HT</th>
          <th class="td-right">TVA</th>
          <th class="td-right">Total HT</th>
        </tr>
      </thead>
      <tbody>
        {{range .}}
        <tr>
          <td>{{.Reference}}</td>
          <td>{{.Designation}}</td>
          <td class="td-right">{{formatQuantity .Quantity}}</td>
          <td class="td-right">{{formatMoney .UnitPrice}}</td>
          <td class="td-right">{{formatPercent .TaxRate}}</td>
          <td class="td-right">{{formatMoney .Total}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>
{{end}}`

const totalsBlock = `{{define "totals"}}
    <div class="totals">
      <div class="total-row"><span>Total HT{{nbsp}}:</span><span>{{formatMoney .HT}}</span></div>
      <div class="total-row"><span>Total TVA{{nbsp}}:</span><span>{{formatMoney .TVA}}</span></div>
      <div class="total-row total-final"><span>Total TTC{{nbsp}}:</span><span>{{formatMoney .TTC}}</span></div>
    </div>
{{end}}`

const invoiceBody = `
  <div class="doc-header">
    <div>
      <h1>Facture</h1>
      <div class="doc-number">N° {{.Doc.Number}}</div>
    </div>
    <div style="text-align: right;">
      <div class="label">Date d'émission</div>
      <div class="value">{{formatDate .Doc.IssuedAt}}</div>
      <div class="label" style="margin-top: 8px;">Date d'échéance</div>
      <div class="value">{{formatDate .Doc.DueAt}}</div>
    </div>
  </div>

  <div class="meta-grid">
    <div class="col">
      <div class="label">Émetteur</div>
      {{template "party" .Doc.Seller}}
    </div>
    <div class="col">
      <div class="label">Client</div>
      {{template "party" .Doc.Client}}
    </div>
    <div class="col" style="flex: 0 0 180px;">
      <div class="label">Règlement</div>
      <div class="value">{{paymentLabel .Doc.PaymentOrigin}}</div>
      {{if .Doc.StatusLabel}}
      <div class="label" style="margin-top: 8px;">Statut</div>
      <div class="value">{{.Doc.StatusLabel}}</div>
      {{end}}
    </div>
  </div>

  {{template "lines" .Doc.Lines}}
  {{template "totals" .Totals}}

  {{if .Doc.Notes}}<div class="free-text">{{.Doc.Notes}}</div>{{end}}
`

const contractBody = `
  <div class="doc-header">
    <div>
      <h1>Convention de formation</h1>
      <div class="doc-number">N° {{.Doc.Number}}</div>
    </div>
    <div style="text-align: right;">
      <div class="label">Du</div>
      <div class="value">{{formatDate .Doc.StartsAt}}</div>
      <div class="label" style="margin-top: 8px;">Au</div>
      <div class="value">{{formatDate .Doc.EndsAt}}</div>
    </div>
  </div>

  <div class="meta-grid">
    <div class="col">
      <div class="label">Organisme de formation</div>
      {{template "party" .Doc.Provider}}
    </div>
    <div class="col">
      <div class="label">Entreprise</div>
      {{template "party" .Doc.Company}}
    </div>
    <div class="col">
      <div class="label">Stagiaire</div>
      {{template "party" .Doc.Trainee}}
    </div>
  </div>

  <div class="meta-grid">
    <div class="col">
      <div class="label">Formation</div>
      <div class="value">{{orPlaceholder .Doc.CourseTitle}}</div>
    </div>
    <div class="col">
      <div class="label">Niveau IRATA</div>
      <div class="value">{{orPlaceholder .Doc.IRATALevel}}</div>
    </div>
    {{if .Doc.StatusLabel}}
    <div class="col">
      <div class="label">Statut</div>
      <div class="value">{{.Doc.StatusLabel}}</div>
    </div>
    {{end}}
  </div>

  {{template "lines" .Doc.Lines}}
  {{template "totals" .Totals}}

  {{if .Doc.Clauses}}
  <ol class="clauses">
    {{range .Doc.Clauses}}<li>{{.}}</li>{{end}}
  </ol>
  {{end}}

  <div class="signatures">
    {{template "signature" slot "Pour l'entreprise" .Doc.Company}}
    {{template "signature" slot "Le stagiaire" .Doc.Trainee}}
    {{template "signature" slot "Pour l'organisme" .Doc.Provider}}
  </div>
`

const nonConformityBody = `
  <div class="doc-header">
    <div>
      <h1>Fiche de non-conformité</h1>
      <div class="doc-number">N° {{.Doc.Number}}</div>
    </div>
    <div style="text-align: right;">
      <div class="label">Détectée le</div>
      <div class="value">{{formatDate .Doc.DetectedAt}}</div>
      <div class="label" style="margin-top: 8px;">Criticité</div>
      <div class="value">{{orPlaceholder .Doc.SeverityLabel}}</div>
    </div>
  </div>

  <div class="meta-grid">
    <div class="col">
      <div class="label">Objet</div>
      <div class="value"><strong>{{orPlaceholder .Doc.Title}}</strong></div>
    </div>
    {{if .Doc.StatusLabel}}
    <div class="col" style="flex: 0 0 160px;">
      <div class="label">Statut</div>
      <div class="value">{{.Doc.StatusLabel}}</div>
    </div>
    {{end}}
  </div>

  <div class="label">Description</div>
  <div class="free-text">{{orPlaceholder .Doc.Description}}</div>

  <div class="label">Action corrective</div>
  <div class="free-text">{{orPlaceholder .Doc.CorrectiveAction}}</div>

  <div class="label">Action préventive</div>
  <div class="free-text">{{orPlaceholder .Doc.PreventiveAction}}</div>

  <div class="meta-grid">
    <div class="col">
      <div class="label">Échéance de l'action</div>
      <div class="value">{{formatDate .Doc.ActionDueAt}}</div>
    </div>
  </div>

  <div class="signatures">
    {{template "signature" slot "Déclarant" .Doc.Reporter}}
    {{template "signature" slot "Responsable qualité" .Doc.Reviewer}}
  </div>
`

const disclaimerBody = `
  <div class="doc-header">
    <div>
      <h1>Décharge de responsabilité</h1>
      <div class="doc-number">N° {{.Doc.Number}}</div>
    </div>
    <div style="text-align: right;">
      <div class="label">Session du</div>
      <div class="value">{{formatDate .Doc.SessionStart}}</div>
    </div>
  </div>

  <div class="meta-grid">
    <div class="col">
      <div class="label">Stagiaire</div>
      {{template "party" .Doc.Trainee}}
    </div>
    <div class="col">
      <div class="label">Organisme</div>
      {{template "party" .Doc.Provider}}
    </div>
    <div class="col">
      <div class="label">Formation</div>
      <div class="value">{{orPlaceholder .Doc.SessionTitle}}</div>
    </div>
  </div>

  <ol class="clauses">
    {{range .Doc.Clauses}}<li>{{.}}</li>{{end}}
  </ol>

  <div class="meta-grid">
    <div class="col">
      <div class="label">Signée le</div>
      <div class="value">{{formatDate .Doc.SignedAt}}</div>
    </div>
  </div>

  <div class="signatures">
    {{template "signature" slot "Le stagiaire" .Doc.Trainee}}
  </div>
`

const surveyExportBody = `
  <div class="doc-header">
    <div>
      <h1>Enquête de satisfaction</h1>
      <div class="doc-number">N° {{.Doc.Number}}</div>
    </div>
    <div style="text-align: right;">
      <div class="label">Réalisée le</div>
      <div class="value">{{formatDate .Doc.ConductedAt}}</div>
    </div>
  </div>

  <div class="meta-grid">
    <div class="col">
      <div class="label">Enquête</div>
      <div class="value"><strong>{{orPlaceholder .Doc.Title}}</strong></div>
    </div>
    <div class="col">
      <div class="label">Session</div>
      <div class="value">{{orPlaceholder .Doc.SessionTitle}}</div>
    </div>
    <div class="col">
      <div class="label">Répondant</div>
      {{template "party" .Doc.Respondent}}
    </div>
  </div>

  <table>
    <thead>
      <tr>
        <th style="width: 50%;">Question</th>
        <th class="td-right" style="width: 12%;">Note</th>
        <th>Commentaire</th>
      </tr>
    </thead>
    <tbody>
      {{range .Doc.Answers}}
      <tr>
        <td>{{.Question}}</td>
        <td class="td-right">{{formatRating .Rating}}</td>
        <td>{{.Comment}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>
`
