package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func lexiconServer(t *testing.T, calls *int32) *httptest.Server {
	t.Helper()
	known := map[string]LexiconEntry{
		"hope":  {PolarityValue: 0.8, MoodTags: []string{"#joy"}},
		"war":   {PolarityValue: -0.9, MoodTags: []string{"#fear"}},
		"peace": {PolarityValue: 0.6, MoodTags: []string{"#serenity"}},
	}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		if r.Method != http.MethodPost || r.URL.Path != "/lookup" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		var req LexiconReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		out := LexiconResp{Entries: map[string]LexiconEntry{}}
		for _, word := range req.Words {
			if e, ok := known[word]; ok {
				out.Entries[word] = e
			}
		}
		_ = json.NewEncoder(w).Encode(out)
	}))
}

func TestLexicon_Lookup(t *testing.T) {
	t.Parallel()

	var calls int32
	srv := lexiconServer(t, &calls)
	defer srv.Close()

	resp, err := NewHTTP().Lexicon(context.Background(), srv.URL+"/", []string{"hope", "fails"})
	if err != nil {
		t.Fatalf("Lexicon: %v", err)
	}
	if len(resp.Entries) != 1 || resp.Entries["hope"].PolarityValue != 0.8 {
		t.Fatalf("Entries=%+v", resp.Entries)
	}
}

func TestLexicon_ErrorStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewHTTP().Lexicon(context.Background(), srv.URL, []string{"hope"})
	if err == nil || !strings.Contains(err.Error(), "overloaded") {
		t.Fatalf("err=%v", err)
	}
}

func TestSnapshot_BatchesAndMerges(t *testing.T) {
	t.Parallel()

	var calls int32
	srv := lexiconServer(t, &calls)
	defer srv.Close()

	words := []string{"war", "hope", "and", "peace", "hope", "", "the"}
	tab, err := NewHTTP().Snapshot(context.Background(), srv.URL, words, SnapshotOptions{BatchSize: 2, Concurrency: 2})
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if tab.Len() != 3 {
		t.Fatalf("Len=%d, want 3 (%v)", tab.Len(), tab.Words())
	}
	// 5 distinct non-empty words in batches of 2
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Fatalf("calls=%d, want 3", got)
	}
	e, err := tab.Lookup("war")
	if err != nil || e.MoodTags[0] != "#fear" {
		t.Fatalf("Lookup(war)=%+v, %v", e, err)
	}
}

func TestSnapshot_FailsOnBatchError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := NewHTTP().Snapshot(context.Background(), srv.URL, []string{"a", "b"}, SnapshotOptions{RPS: 100}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestSnapshot_EmptyVocabulary(t *testing.T) {
	t.Parallel()

	tab, err := NewHTTP().Snapshot(context.Background(), "http://127.0.0.1:0", nil, SnapshotOptions{})
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if tab.Len() != 0 {
		t.Fatalf("Len=%d", tab.Len())
	}
}
