package handler

import (
	"html/template"
	"strings"

	"studio/pkg/currency"
)

var pageFuncs = template.FuncMap{
	"inr":   currency.FormatINR,
	"upper": strings.ToUpper,
}

var invoicePage = template.Must(template.New("invoice").Funcs(pageFuncs).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Invoice {{.Number}} | {{.Issuer.Name}}</title>
<style>
@media print { @page { margin: 0; } body { margin: 0; } .no-print { display: none; } .paper { margin: 20mm; box-shadow: none; } }
body { font-family: system-ui, sans-serif; background: #111827; color: #111; padding: 40px 16px; }
.paper { max-width: 760px; margin: 0 auto; background: #fff; padding: 40px; border-radius: 12px; box-shadow: 0 10px 40px rgba(0,0,0,.4); }
.row { display: flex; justify-content: space-between; align-items: flex-start; }
.muted { color: #6b7280; font-size: 14px; }
.paid { color: #16a34a; font-weight: 700; }
.pending { color: #b45309; font-weight: 700; }
table { width: 100%; border-collapse: collapse; margin: 32px 0; }
th { background: #f9fafb; text-transform: uppercase; font-size: 12px; color: #4b5563; padding: 12px; text-align: left; }
td { padding: 16px 12px; border-top: 1px solid #f3f4f6; }
.right { text-align: right; }
.totals { width: 260px; margin-left: auto; }
.totals div { display: flex; justify-content: space-between; padding: 8px 0; border-bottom: 1px solid #f3f4f6; }
.totals .grand { font-size: 20px; font-weight: 800; border-bottom: 2px solid #111; }
footer { text-align: center; margin-top: 48px; }
button { background: #eab308; border: 0; border-radius: 999px; padding: 8px 24px; font-weight: 700; cursor: pointer; }
</style>
</head>
<body>
<div class="no-print" style="max-width:760px;margin:0 auto 24px;text-align:right"><button onclick="window.print()">Print / Save PDF</button></div>
<div class="paper">
  <div class="row">
    <div>
      <h1>INVOICE</h1>
      {{if .Paid}}<div class="paid">Paid Successfully</div>{{else}}<div class="pending">{{.Status}}</div>{{end}}
    </div>
    <div class="right">
      <strong>{{upper .Issuer.Name}}</strong>
      <p class="muted">{{range .Issuer.Address}}{{.}}<br>{{end}}{{.Issuer.Phone}}</p>
    </div>
  </div>
  <div class="row" style="margin-top:32px">
    <div>
      <div class="muted">BILLED TO:</div>
      <strong>{{.BilledTo.Name}}</strong>
      <div class="muted">{{.BilledTo.Phone}}</div>
    </div>
    <div class="right muted">
      <div><b>No:</b> {{.Number}}</div>
      <div><b>Date:</b> {{.IssuedOn}}</div>
      <div><b>Event:</b> {{.EventDate}}</div>
    </div>
  </div>
  <table>
    <thead><tr><th>Description</th><th class="right">Amount</th></tr></thead>
    <tbody>{{range .Items}}<tr><td><strong>{{.Description}}</strong></td><td class="right">{{inr .Amount}}</td></tr>{{end}}</tbody>
  </table>
  <div class="totals">
    <div><span>Subtotal</span><strong>{{inr .Subtotal}}</strong></div>
    <div><span>Discount</span><span>{{inr .Discount}}</span></div>
    <div class="grand"><span>{{if .Paid}}Total Paid{{else}}Total Due{{end}}</span><span>{{inr .Total}}</span></div>
  </div>
  <footer class="muted">
    <p>Thank you for choosing {{.Issuer.Name}}. We are excited to capture your memories!</p>
    {{range .Notes}}<p>{{.}}</p>{{end}}
  </footer>
</div>
</body>
</html>
`))

var messagePage = template.Must(template.New("message").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>{{.}}</title></head>
<body style="font-family:system-ui,sans-serif;background:#111827;color:#fff;text-align:center;padding:80px">{{.}}</body>
</html>
`))
