package delivery

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strconv"
	texttemplate "text/template"
	"time"

	"github.com/heartmarshall/pantrywatch-backend/internal/domain"
)

type digestData struct {
	Expired      []domain.ItemStatus
	ExpiringSoon []domain.ItemStatus
}

func (d digestData) Total() int { return len(d.Expired) + len(d.ExpiringSoon) }

type summaryData struct {
	Items        []domain.ItemStatus
	ExpiredCount int
	SoonCount    int
	FreshCount   int
}

func newSummaryData(items []domain.ItemStatus) summaryData {
	d := summaryData{Items: items}
	for _, it := range items {
		switch it.Status.State {
		case domain.ExpirationExpired:
			d.ExpiredCount++
		case domain.ExpirationExpiringSoon:
			d.SoonCount++
		default:
			d.FreshCount++
		}
	}
	return d
}

type codeData struct {
	Code    string
	Purpose domain.VerificationPurpose
	Minutes int
}

func (d codeData) Action() string {
	if d.Purpose == domain.PurposePasswordReset {
		return "reset your password"
	}
	return "complete your registration"
}

// dayDelta renders a signed day count as a phrase.
func dayDelta(days int) string {
	switch {
	case days == 0:
		return "expires today"
	case days == -1:
		return "expired 1 day ago"
	case days < 0:
		return "expired " + strconv.Itoa(-days) + " days ago"
	case days == 1:
		return "expires in 1 day"
	default:
		return "expires in " + strconv.Itoa(days) + " days"
	}
}

// formatQty drops a trailing ".0" so whole quantities read naturally.
func formatQty(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

func formatDate(t time.Time) string { return t.Format("2006-01-02") }

var funcs = map[string]any{
	"delta": dayDelta,
	"qty":   formatQty,
	"date":  formatDate,
}

const digestText = `Food expiration alert

You have {{.Total}} item(s) that need attention.
{{if .Expired}}
Expired ({{len .Expired}}):
{{range .Expired}}- {{.Item.Name}} ({{qty .Item.Quantity}} {{.Item.Unit}}), {{delta .Status.DaysUntilExpiration}}
{{end}}{{end}}{{if .ExpiringSoon}}
Expiring soon ({{len .ExpiringSoon}}):
{{range .ExpiringSoon}}- {{.Item.Name}} ({{qty .Item.Quantity}} {{.Item.Unit}}), {{delta .Status.DaysUntilExpiration}}
{{end}}{{end}}`

const digestHTML = `<h2>Food expiration alert</h2>
<p>You have {{.Total}} item(s) that need attention.</p>
{{if .Expired}}<h3>Expired ({{len .Expired}})</h3>
<ul>{{range .Expired}}<li><strong>{{.Item.Name}}</strong> ({{qty .Item.Quantity}} {{.Item.Unit}}), {{delta .Status.DaysUntilExpiration}}</li>{{end}}</ul>
{{end}}{{if .ExpiringSoon}}<h3>Expiring soon ({{len .ExpiringSoon}})</h3>
<ul>{{range .ExpiringSoon}}<li><strong>{{.Item.Name}}</strong> ({{qty .Item.Quantity}} {{.Item.Unit}}), {{delta .Status.DaysUntilExpiration}}</li>{{end}}</ul>
{{end}}`

const summaryText = `Weekly pantry summary

{{len .Items}} item(s) tracked: {{.ExpiredCount}} expired, {{.SoonCount}} expiring soon, {{.FreshCount}} fresh.
{{range .Items}}- {{.Item.Name}} ({{qty .Item.Quantity}} {{.Item.Unit}}), best before {{date .Item.ExpirationDate}}: {{.Status.State}}, {{delta .Status.DaysUntilExpiration}}
{{end}}`

const summaryHTML = `<h2>Weekly pantry summary</h2>
<p>{{len .Items}} item(s) tracked: {{.ExpiredCount}} expired, {{.SoonCount}} expiring soon, {{.FreshCount}} fresh.</p>
<table>
<tr><th>Item</th><th>Quantity</th><th>Best before</th><th>Status</th></tr>
{{range .Items}}<tr><td>{{.Item.Name}}</td><td>{{qty .Item.Quantity}} {{.Item.Unit}}</td><td>{{date .Item.ExpirationDate}}</td><td>{{.Status.State}}, {{delta .Status.DaysUntilExpiration}}</td></tr>
{{end}}</table>`

const codeText = `Your verification code is {{.Code}}.

Use it to {{.Action}}. The code expires in {{.Minutes}} minutes and can be used once.
`

const codeHTML = `<p>Your verification code is <strong>{{.Code}}</strong>.</p>
<p>Use it to {{.Action}}. The code expires in {{.Minutes}} minutes and can be used once.</p>`

type pair struct {
	text *texttemplate.Template
	html *htmltemplate.Template
}

func mustPair(name, text, html string) pair {
	return pair{
		text: texttemplate.Must(texttemplate.New(name).Funcs(funcs).Parse(text)),
		html: htmltemplate.Must(htmltemplate.New(name).Funcs(funcs).Parse(html)),
	}
}

var (
	digestTmpl  = mustPair("digest", digestText, digestHTML)
	summaryTmpl = mustPair("summary", summaryText, summaryHTML)
	codeTmpl    = mustPair("code", codeText, codeHTML)
)

func (p pair) render(subject string, data any) (domain.EmailMessage, error) {
	var text, html bytes.Buffer
	if err := p.text.Execute(&text, data); err != nil {
		return domain.EmailMessage{}, fmt.Errorf("render %s text: %w", p.text.Name(), err)
	}
	if err := p.html.Execute(&html, data); err != nil {
		return domain.EmailMessage{}, fmt.Errorf("render %s html: %w", p.html.Name(), err)
	}
	return domain.EmailMessage{Subject: subject, Text: text.String(), HTML: html.String()}, nil
}

func renderDigest(d digestData) (domain.EmailMessage, error) {
	return digestTmpl.render(fmt.Sprintf("%d item(s) expiring soon in your pantry", d.Total()), d)
}

func renderSummary(d summaryData) (domain.EmailMessage, error) {
	return summaryTmpl.render("Your weekly pantry summary", d)
}

func renderCode(d codeData) (domain.EmailMessage, error) {
	return codeTmpl.render("Your verification code", d)
}
