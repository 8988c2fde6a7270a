package tui

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/ptp-tester/models"
	"github.com/stretchr/testify/assert"
)

func TestResponsePane_Empty(t *testing.T) {
	assert.Contains(t, responsePane{}.render(), "No request sent yet")
}

func TestResponsePane_Sending(t *testing.T) {
	req := models.DirectRequest{BaseURL: "https://sandbox.test/", PTP: "ptp-alpha"}

	out := responsePane{curl: "curl -X POST", request: &req, sending: true, spinner: "."}.render()

	assert.Contains(t, out, "curl -X POST")
	assert.Contains(t, out, "https://sandbox.test/ws/direct")
	assert.Contains(t, out, "PTP ptp-alpha")
	assert.Contains(t, out, "waiting for the response")
}

func TestResponsePane_Failure(t *testing.T) {
	req := models.DirectRequest{BaseURL: "http://127.0.0.1:1", PTP: "p"}
	outcome := models.DirectOutcome{Request: req, Err: errors.New("dial tcp: connect: connection refused")}

	out := responsePane{request: &req, outcome: &outcome}.render()

	assert.Contains(t, out, "Request failed")
	assert.Contains(t, out, "Connection refused")
}

func TestRenderResponse(t *testing.T) {
	tests := []struct {
		name string
		resp models.DirectResponse
		want []string
	}{
		{
			name: "json body with redirect",
			resp: models.DirectResponse{
				StatusCode: 200, Reason: "OK", Class: models.StatusSuccess,
				Body:        map[string]any{"redirect_url": "https://3ds.test/c"},
				Elapsed:     120 * time.Millisecond,
				RedirectURL: "https://3ds.test/c",
			},
			want: []string{"200 OK (Success)", "120 ms", "Redirect URL: https://3ds.test/c", `"redirect_url": "https://3ds.test/c"`},
		},
		{
			name: "plain text body",
			resp: models.DirectResponse{
				StatusCode: 502, Reason: "Bad Gateway", Class: models.StatusServerError,
				Raw: "upstream down",
			},
			want: []string{"502 Bad Gateway (Server Error)", "upstream down"},
		},
		{
			name: "json array body",
			resp: models.DirectResponse{
				StatusCode: 400, Reason: "Bad Request", Class: models.StatusClientError,
				Body: []any{"a"}, Raw: `["a"]`,
			},
			want: []string{"(Client Error)", "[\n  \"a\"\n]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := renderResponse(tt.resp)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestResponseBody_EmptyRaw(t *testing.T) {
	assert.Equal(t, "-", responseBody(models.DirectResponse{StatusCode: 204}))
}
