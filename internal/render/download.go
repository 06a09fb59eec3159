package render

import (
	"bytes"
	"errors"
	"image"
	"io"
	"net/http"
	"time"

	"github.com/disintegration/imaging"
)

// FetchTemplate downloads and decodes a template image from url.
func FetchTemplate(url string) (image.Image, error) {
	client := http.Client{Timeout: 12 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("non-200 response")
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return imaging.Decode(bytes.NewReader(body))
}
