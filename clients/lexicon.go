package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// --- Lexicon (/lookup) ---
type LexiconReq struct {
	Words []string `json:"words"`
}
type LexiconEntry struct {
	PolarityValue float64  `json:"polarity_value"`
	MoodTags      []string `json:"moodtags"`
}
type LexiconResp struct {
	// words the service does not know are absent
	Entries map[string]LexiconEntry `json:"entries"`
}

func (h *HTTP) Lexicon(ctx context.Context, url string, words []string) (*LexiconResp, error) {
	b, err := json.Marshal(LexiconReq{Words: words})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(url, "/")+"/lookup", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("lexicon %s: %s", resp.Status, string(body))
	}

	var out LexiconResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("lexicon decode: %w", err)
	}
	return &out, nil
}
