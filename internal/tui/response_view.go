package tui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/ptp-tester/models"
	"github.com/charmbracelet/lipgloss"
)

// responsePane is everything shown in the response viewport.
type responsePane struct {
	curl    string
	request *models.DirectRequest
	outcome *models.DirectOutcome
	sending bool
	spinner string
}

func (p responsePane) render() string {
	if p.request == nil && p.outcome == nil {
		return helpStyle.Render("No request sent yet. ctrl+g sends the payload.")
	}

	var b strings.Builder
	if p.curl != "" {
		b.WriteString(viewTitle("cURL"))
		b.WriteString(p.curl)
		b.WriteString("\n\n")
	}

	if p.request != nil {
		b.WriteString(titleStyle.Render(fmt.Sprintf("POST %s  PTP %s", p.request.URL(), p.request.PTP)))
		b.WriteString("\n")
	}

	switch {
	case p.sending:
		b.WriteString(p.spinner + " waiting for the response...")
	case p.outcome != nil && p.outcome.Err != nil:
		b.WriteString(errorStyle.Render("Request failed"))
		b.WriteString("\n")
		b.WriteString(humanizeTransportError(p.outcome.Err))
	case p.outcome != nil:
		b.WriteString(renderResponse(p.outcome.Response))
	}
	return b.String()
}

func renderResponse(resp models.DirectResponse) string {
	var b strings.Builder

	status := fmt.Sprintf("%d %s (%s)", resp.StatusCode, resp.Reason, resp.Class)
	b.WriteString("Status: ")
	b.WriteString(statusStyle(resp.Class).Render(status))
	fmt.Fprintf(&b, "  %d ms\n", resp.Elapsed.Milliseconds())

	if resp.RedirectURL != "" {
		b.WriteString("Redirect URL: ")
		b.WriteString(resp.RedirectURL)
		b.WriteString("  (ctrl+u copies)\n")
	}

	b.WriteString("\n")
	b.WriteString(viewTitle("Body"))
	b.WriteString(responseBody(resp))
	return b.String()
}

func responseBody(resp models.DirectResponse) string {
	if !resp.IsJSON() {
		return valueOrDash(resp.Raw)
	}
	if obj, ok := resp.Body.(map[string]any); ok {
		return models.Payload(obj).Pretty()
	}
	pretty, err := json.MarshalIndent(resp.Body, "", "  ")
	if err != nil {
		return resp.Raw
	}
	return string(pretty)
}

func statusStyle(class models.StatusClass) lipgloss.Style {
	switch class {
	case models.StatusSuccess:
		return successStyle
	case models.StatusClientError:
		return clientErrorStyle
	case models.StatusServerError:
		return serverErrorStyle
	default:
		return titleStyle
	}
}
