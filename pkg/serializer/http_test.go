// Copyright (c) 2025, The usdarest Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package serializer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRespondJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	RespondJSON(w, http.StatusOK, map[string]string{"food_id": "01001"})

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	var got map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if got["food_id"] != "01001" {
		t.Errorf("unexpected body %v", got)
	}
}

func TestRespondJSON_EncodingError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondJSON(w, http.StatusOK, map[string]any{"bad": make(chan int)})

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}

func TestNewHttpReader_Defaults(t *testing.T) {
	r := NewHttpReader()
	if r.UserAgent != HttpReaderUserAgent {
		t.Errorf("UserAgent = %q", r.UserAgent)
	}
	if r.Client == nil || r.Client.Timeout <= 0 {
		t.Error("expected client with timeout")
	}
}

func TestNewHttpReader_WithOptions(t *testing.T) {
	custom := &http.Client{Timeout: time.Second}
	r := NewHttpReader(WithUserAgent("test/1.0"), WithClient(custom))
	if r.UserAgent != "test/1.0" {
		t.Errorf("UserAgent = %q", r.UserAgent)
	}
	if r.Client != custom {
		t.Error("custom client not used")
	}

	r = NewHttpReader(WithTotalTimeout(3 * time.Second))
	if r.Client.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v", r.Client.Timeout)
	}
}

func TestHttpReader_Read(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		if r.URL.Path == "/fail" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("payload"))
	}))
	defer srv.Close()

	r := NewHttpReader()
	data, err := r.Read(srv.URL + "/ok")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("data = %q", data)
	}
	if gotUA != HttpReaderUserAgent {
		t.Errorf("User-Agent = %q", gotUA)
	}

	if _, err := r.Read(srv.URL + "/fail"); err == nil {
		t.Error("expected error for 500 response")
	}
	if _, err := r.Read(""); err == nil {
		t.Error("expected error for empty url")
	}
}

func TestHttpReader_ReadWithContext_Canceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("late"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewHttpReader().ReadWithContext(ctx, srv.URL); err == nil {
		t.Error("expected error for canceled context")
	}
}

func TestHttpReader_DownloadWithContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"name":"dl"}`))
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "dl.json")
	if err := NewHttpReader().DownloadWithContext(context.Background(), srv.URL, path); err != nil {
		t.Fatalf("DownloadWithContext failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"name":"dl"}` {
		t.Errorf("file content = %q", data)
	}
}
