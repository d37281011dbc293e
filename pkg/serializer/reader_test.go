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
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type testConfig struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected Format
	}{
		{"json lowercase", "config.json", FormatJSON},
		{"json uppercase", "CONFIG.JSON", FormatJSON},
		{"yaml extension", "config.yaml", FormatYAML},
		{"yml extension", "config.yml", FormatYAML},
		{"table extension", "output.table", FormatTable},
		{"txt extension", "output.txt", FormatTable},
		{"unknown extension defaults to json", "file.unknown", FormatJSON},
		{"path with directories", "/path/to/config.yaml", FormatYAML},
		{"url with query", "https://example.com/sr28.yaml?sig=abc", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := FormatFromPath(tt.path); result != tt.expected {
				t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, result, tt.expected)
			}
		})
	}
}

func TestNewReader(t *testing.T) {
	t.Run("table format rejected", func(t *testing.T) {
		if _, err := NewReader(FormatTable, strings.NewReader("")); err == nil {
			t.Error("expected error for table format")
		}
	})

	t.Run("unknown format rejected", func(t *testing.T) {
		if _, err := NewReader(Format("xml"), strings.NewReader("")); err == nil {
			t.Error("expected error for unknown format")
		}
	})
}

func TestReader_Deserialize(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		input   string
		want    testConfig
		wantErr bool
	}{
		{"json", FormatJSON, `{"name":"butter","value":5}`, testConfig{"butter", 5}, false},
		{"yaml", FormatYAML, "name: butter\nvalue: 5\n", testConfig{"butter", 5}, false},
		{"invalid json", FormatJSON, `{"name":`, testConfig{}, true},
		{"invalid yaml", FormatYAML, "name: [", testConfig{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(tt.format, strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("NewReader failed: %v", err)
			}
			var got testConfig
			err = r.Deserialize(&got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Deserialize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Deserialize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestReader_DeserializeNilChecks(t *testing.T) {
	var r *Reader
	if err := r.Deserialize(&testConfig{}); err == nil {
		t.Error("expected error for nil reader")
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil reader returned %v", err)
	}
}

func TestFromFile_Local(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("name: local\nvalue: 1\n"), 0600); err != nil {
		t.Fatal(err)
	}

	got, err := FromFile[testConfig](context.Background(), path)
	if err != nil {
		t.Fatalf("FromFile failed: %v", err)
	}
	if got.Name != "local" || got.Value != 1 {
		t.Errorf("unexpected result %+v", got)
	}
}

func TestFromFile_Remote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data.json" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"name":"remote","value":2}`))
	}))
	defer srv.Close()

	got, err := FromFile[testConfig](context.Background(), srv.URL+"/data.json")
	if err != nil {
		t.Fatalf("FromFile failed: %v", err)
	}
	if got.Name != "remote" || got.Value != 2 {
		t.Errorf("unexpected result %+v", got)
	}

	if _, err := FromFile[testConfig](context.Background(), srv.URL+"/missing.json"); err == nil {
		t.Error("expected error for missing remote file")
	}
}

func TestFromFile_Errors(t *testing.T) {
	if _, err := FromFile[testConfig](context.Background(), "/nonexistent/config.json"); err == nil {
		t.Error("expected error for missing file")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "out.table")
	if err := os.WriteFile(path, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := FromFile[testConfig](context.Background(), path); err == nil {
		t.Error("expected error for table format")
	}
}

func TestReader_CloseRemovesDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	r, err := NewFileReader(context.Background(), FormatJSON, srv.URL+"/x.json")
	if err != nil {
		t.Fatalf("NewFileReader failed: %v", err)
	}
	tmp := r.tmpPath
	if tmp == "" {
		t.Fatal("expected temporary file for remote reader")
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if _, err := os.Stat(tmp); !os.IsNotExist(err) {
		t.Errorf("temporary file %s still exists", tmp)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close returned %v", err)
	}
}
