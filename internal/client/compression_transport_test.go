package client

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andybalholm/brotli"
)

func gzipped(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(data); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return buf.Bytes()
}

func brotlied(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	br := brotli.NewWriter(&buf)
	if _, err := br.Write(data); err != nil {
		t.Fatalf("brotli write: %v", err)
	}
	if err := br.Close(); err != nil {
		t.Fatalf("brotli close: %v", err)
	}
	return buf.Bytes()
}

func roundTrip(t *testing.T, serverURL string) *http.Response {
	t.Helper()
	httpClient := &http.Client{Transport: newCompressionTransport(nil)}
	resp, err := httpClient.Get(serverURL)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	return resp
}

func TestCompressionTransport_AdvertisesEncodings(t *testing.T) {
	var gotAcceptEncoding string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAcceptEncoding = r.Header.Get("Accept-Encoding")
	}))
	defer server.Close()

	resp := roundTrip(t, server.URL)
	defer resp.Body.Close()

	if gotAcceptEncoding != "gzip, br, zstd" {
		t.Errorf("Accept-Encoding = %q", gotAcceptEncoding)
	}
}

func TestCompressionTransport_DecodesGzip(t *testing.T) {
	body := []byte(`{"status":"tunnel"}`)
	encoded := gzipped(t, body)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "gzip")
		_, _ = w.Write(encoded)
	}))
	defer server.Close()

	resp := roundTrip(t, server.URL)
	defer resp.Body.Close()

	got, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !bytes.Equal(got, body) {
		t.Errorf("Body = %q, want %q", got, body)
	}
	if resp.Header.Get("Content-Encoding") != "" {
		t.Error("Expected Content-Encoding header to be removed after decoding")
	}
	if resp.ContentLength != -1 {
		t.Errorf("ContentLength = %d, want -1", resp.ContentLength)
	}
}

func TestCompressionTransport_DecodesBrotli(t *testing.T) {
	body := []byte(`{"status":"picker"}`)
	encoded := brotlied(t, body)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "br")
		_, _ = w.Write(encoded)
	}))
	defer server.Close()

	resp := roundTrip(t, server.URL)
	defer resp.Body.Close()

	got, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !bytes.Equal(got, body) {
		t.Errorf("Body = %q, want %q", got, body)
	}
}

func TestCompressionTransport_IdentityPassthrough(t *testing.T) {
	body := []byte("plain payload")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(body)
	}))
	defer server.Close()

	resp := roundTrip(t, server.URL)
	defer resp.Body.Close()

	got, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !bytes.Equal(got, body) {
		t.Errorf("Body = %q, want %q", got, body)
	}
}

func TestCompressionTransport_UnknownEncodingUntouched(t *testing.T) {
	body := []byte("opaque")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "snappy")
		_, _ = w.Write(body)
	}))
	defer server.Close()

	resp := roundTrip(t, server.URL)
	defer resp.Body.Close()

	got, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !bytes.Equal(got, body) {
		t.Errorf("Body = %q, want %q", got, body)
	}
	if resp.Header.Get("Content-Encoding") != "snappy" {
		t.Error("Expected unknown Content-Encoding header to be preserved")
	}
}

func TestFirstEncoding(t *testing.T) {
	tests := []struct {
		header   string
		expected string
	}{
		{"", ""},
		{"gzip", "gzip"},
		{" GZIP ", "gzip"},
		{"br, gzip", "br"},
		{"zstd,gzip", "zstd"},
	}
	for _, tt := range tests {
		if got := firstEncoding(tt.header); got != tt.expected {
			t.Errorf("firstEncoding(%q) = %q, want %q", tt.header, got, tt.expected)
		}
	}
}
