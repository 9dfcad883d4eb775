package client

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// MunafaClient fetches the public MunafaSutra FII/DII page, the secondary
// deal source. Unauthenticated plain HTML.
type MunafaClient struct {
	client *resty.Client
}

func NewMunafaClient() *MunafaClient {
	c := resty.New().
		SetBaseURL("https://munafasutra.com").
		SetTimeout(20*time.Second).
		SetHeaders(map[string]string{
			"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36",
			"Accept":          "text/html,application/xhtml+xml,*/*;q=0.8",
			"Accept-Language": "en-US,en;q=0.9",
		})

	return &MunafaClient{client: c}
}

// GetFiiDiiPage returns the raw HTML of the FII/DII activity page.
func (m *MunafaClient) GetFiiDiiPage(ctx context.Context) ([]byte, error) {
	resp, err := m.client.R().SetContext(ctx).Get("/nse/FIIDII/")
	if err != nil {
		return nil, fmt.Errorf("munafasutra request failed: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("munafasutra http %d", resp.StatusCode())
	}
	return resp.Body(), nil
}
