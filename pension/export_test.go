package pension

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePDF(t *testing.T) {
	service := newFakeService()
	for _, title := range []string{"First pension", "Second pension"} {
		_, err := service.Create(context.Background(), SavePensionRequest{Title: strPtr(title)})
		require.NoError(t, err)
	}

	var buf bytes.Buffer
	require.NoError(t, WritePDF(context.Background(), service, &buf))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), "output must start with the PDF magic")
	assert.Greater(t, buf.Len(), 500)
}

func TestWritePDFEmptyCollection(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(context.Background(), newFakeService(), &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestExportEndpoint(t *testing.T) {
	service := newFakeService()
	_, err := service.Create(context.Background(), SavePensionRequest{Title: strPtr("Pension")})
	require.NoError(t, err)
	router := newTestRouter(service)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/pension/export", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "pension.pdf")
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}
