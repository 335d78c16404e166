package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/tortadestroyer/ai-resume-scanner-1/internal/repository"
	"github.com/tortadestroyer/ai-resume-scanner-1/internal/scoring"
	"github.com/tortadestroyer/ai-resume-scanner-1/internal/service"
	"github.com/tortadestroyer/ai-resume-scanner-1/internal/usecase"
)

type failingExtractor struct{}

func (failingExtractor) ExtractText(context.Context, []byte, string) (string, error) {
	return "", errors.New("parser crashed")
}

func newTestApp(extractor service.TextExtractorInterface) (*fiber.App, *repository.MemoryCandidateRepository) {
	repo := repository.NewMemoryCandidateRepository()
	uc := usecase.NewScreeningUsecase(
		repo,
		extractor,
		service.NewLogNotifier(zap.NewNop()),
		scoring.NewEngine(),
		zap.NewNop(),
		time.Second,
	)

	app := fiber.New()
	NewCandidateHandler(uc, 5*1024*1024).RegisterRoutes(app)
	return app, repo
}

func newUploadRequest(t *testing.T, fields map[string]string, withFile bool) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if withFile {
		part, err := writer.CreateFormFile("resume_pdf", "resume.pdf")
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1.4 stub content"))
		require.NoError(t, err)
	}
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload-resume", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return data
}

func TestUploadResumeQualified(t *testing.T) {
	app, repo := newTestApp(service.NewMockExtractorWithDelay(time.Millisecond))

	req := newUploadRequest(t, map[string]string{
		"job_title":       "software engineer",
		"company_id":      "acme",
		"candidate_name":  "Jane Roe",
		"candidate_email": "jane@example.com",
	}, true)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := readBody(t, resp)
	assert.True(t, gjson.GetBytes(body, "success").Bool())
	assert.NotEmpty(t, gjson.GetBytes(body, "candidate.id").String())
	assert.EqualValues(t, 100, gjson.GetBytes(body, "candidate.matchScore").Int())
	assert.Equal(t, "qualified", gjson.GetBytes(body, "candidate.status").String())

	// The submission response must not echo the stored record.
	assert.False(t, gjson.GetBytes(body, "candidate.resumeText").Exists())
	assert.False(t, gjson.GetBytes(body, "candidate.email").Exists())

	stored, err := repo.Find(repository.CandidateFilter{})
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestUploadResumeMissingFieldsReturns400(t *testing.T) {
	app, repo := newTestApp(service.NewMockExtractorWithDelay(time.Millisecond))

	cases := []struct {
		name     string
		fields   map[string]string
		withFile bool
	}{
		{"no file", map[string]string{"job_title": "software engineer", "company_id": "acme"}, false},
		{"no job title", map[string]string{"company_id": "acme"}, true},
		{"no company id", map[string]string{"job_title": "software engineer"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := app.Test(newUploadRequest(t, tc.fields, tc.withFile))
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			body := readBody(t, resp)
			assert.Equal(t, "Missing required fields", gjson.GetBytes(body, "error").String())
		})
	}

	stored, err := repo.Find(repository.CandidateFilter{})
	require.NoError(t, err)
	assert.Empty(t, stored, "rejected submissions must not append records")
}

func TestUploadResumeExtractionFailureReturns500(t *testing.T) {
	app, repo := newTestApp(failingExtractor{})

	req := newUploadRequest(t, map[string]string{
		"job_title":  "software engineer",
		"company_id": "acme",
	}, true)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body := readBody(t, resp)
	assert.Equal(t, "Internal server error", gjson.GetBytes(body, "error").String())

	stored, err := repo.Find(repository.CandidateFilter{})
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestListCandidates(t *testing.T) {
	app, _ := newTestApp(service.NewMockExtractorWithDelay(time.Millisecond))

	submit := func(jobTitle, companyID string) {
		req := newUploadRequest(t, map[string]string{
			"job_title":  jobTitle,
			"company_id": companyID,
		}, true)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	submit("software engineer", "acme")
	submit("data scientist", "acme")
	submit("software engineer", "globex")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/candidates", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := readBody(t, resp)
	all := gjson.GetBytes(body, "candidates")
	require.True(t, all.IsArray())
	assert.Len(t, all.Array(), 3)

	first := all.Array()[0]
	assert.NotEmpty(t, first.Get("id").String())
	assert.NotEmpty(t, first.Get("createdAt").String())
	assert.False(t, first.Get("resumeText").Exists())
	assert.False(t, first.Get("companyId").Exists())

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/candidates?status=qualified", nil))
	require.NoError(t, err)
	body = readBody(t, resp)
	for _, c := range gjson.GetBytes(body, "candidates").Array() {
		assert.Equal(t, "qualified", c.Get("status").String())
	}
	assert.Len(t, gjson.GetBytes(body, "candidates").Array(), 2)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/candidates?company_id=acme&job_title=SOFTWARE", nil))
	require.NoError(t, err)
	body = readBody(t, resp)
	assert.Len(t, gjson.GetBytes(body, "candidates").Array(), 1)
}
