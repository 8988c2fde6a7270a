package payload

import (
	"strings"

	"github.com/MKhiriev/ptp-tester/models"
)

// CurlCommand renders a copy-pasteable cURL command for req. Single quotes in
// the body are escaped for a single-quoted shell string.
func CurlCommand(req models.DirectRequest) string {
	body := strings.ReplaceAll(req.Body.Compact(), "'", `'"'"'`)

	var b strings.Builder
	b.WriteString("curl -X POST '" + req.URL() + "' \\\n")
	b.WriteString("  -H 'Content-Type: application/json' \\\n")
	b.WriteString("  -H '" + models.HeaderPaymentTypeProfile + ": " + req.PTP + "' \\\n")
	b.WriteString("  -d '" + body + "'")
	return b.String()
}
