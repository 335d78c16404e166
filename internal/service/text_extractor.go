package service

import (
	"context"
	"time"
)

// TextExtractorInterface turns an uploaded document into plain text. Implementations
// must respect ctx so a stuck extraction cannot block a request forever.
type TextExtractorInterface interface {
	ExtractText(ctx context.Context, data []byte, filename string) (string, error)
}

// mockResumeText is the canned resume body the mock extractor returns for
// every upload, mirroring the demo behavior of the reference system.
const mockResumeText = `
John Doe
Software Engineer

Experience:
- 5 years of JavaScript development
- Expert in React and Node.js
- Database design with SQL
- API development and integration
- Git version control

Education:
- Bachelor's in Computer Science

Skills:
JavaScript, Python, React, Node.js, SQL, Git, API development, Database design
`

// MockExtractor ignores the uploaded bytes and returns a fixed resume body
// after an artificial delay, simulating parser latency.
type MockExtractor struct {
	delay time.Duration
}

func NewMockExtractor() *MockExtractor {
	return &MockExtractor{delay: time.Second}
}

func NewMockExtractorWithDelay(delay time.Duration) *MockExtractor {
	return &MockExtractor{delay: delay}
}

func (m *MockExtractor) ExtractText(ctx context.Context, _ []byte, _ string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(m.delay):
	}
	return mockResumeText, nil
}
