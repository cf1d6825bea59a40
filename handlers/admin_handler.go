package handlers

import (
	"html/template"
	"net/http"

	"github.com/Alex3925/company-suggestion-box/services"
	"github.com/gin-gonic/gin"
)

// adminTemplateName is the name the dashboard template is registered under.
const adminTemplateName = "admin"

// adminTemplate renders the read-only dashboard. Every field passes through
// html/template's contextual escaping, so markup in stored messages renders
// as literal text.
const adminTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Suggestion Box Admin</title>
<style>
body { font-family: sans-serif; margin: 2rem; color: #222; }
h1 { font-size: 1.4rem; }
table { border-collapse: collapse; width: 100%; margin-top: 1rem; }
th, td { border: 1px solid #ccc; padding: 0.4rem 0.6rem; text-align: left; vertical-align: top; font-size: 0.9rem; }
th { background: #f2f2f2; }
.meta { color: #666; font-size: 0.85rem; }
</style>
</head>
<body>
<h1>Suggestions ({{len .Items}})</h1>
<p class="meta">Newest first, capped at {{.Limit}} records. <button onclick="location.reload()">Reload</button></p>
<table>
<tr><th>Created</th><th>Name</th><th>Email</th><th>Type</th><th>Message</th><th>Impact</th><th>Extra</th></tr>
{{range .Items}}<tr>
<td>{{.CreatedAt.Format "2006-01-02 15:04:05"}}</td>
<td>{{.Name}}</td>
<td>{{.Email}}</td>
<td>{{.Type}}</td>
<td>{{.Message}}</td>
<td>{{.Impact}}</td>
<td>{{.Extra}}</td>
</tr>{{end}}
</table>
</body>
</html>`

// AdminTemplate returns the parsed dashboard template for registration on
// the gin engine.
func AdminTemplate() *template.Template {
	return template.Must(template.New(adminTemplateName).Parse(adminTemplate))
}

// AdminHandler renders the read-only administrative view.
type AdminHandler struct {
	service SuggestionService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(service SuggestionService) *AdminHandler {
	return &AdminHandler{service: service}
}

// RenderDashboard fetches a bounded recent-record set and renders it as an
// HTML table. Read-only; never mutates state.
func (h *AdminHandler) RenderDashboard(c *gin.Context) {
	suggestions, err := h.service.AdminRecent(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.HTML(http.StatusOK, adminTemplateName, gin.H{
		"Items": suggestions,
		"Limit": services.AdminListLimit,
	})
}
