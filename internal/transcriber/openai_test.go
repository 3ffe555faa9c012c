package transcriber

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func writeAudio(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("RIFF....WAVEfmt "), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpenAI_Transcribe(t *testing.T) {
	audio := writeAudio(t, "sitzung.wav")

	tests := []struct {
		name       string
		language   string
		serverResp func(t *testing.T, w http.ResponseWriter, r *http.Request)
		want       string
		wantErr    bool
	}{
		{
			name:     "successful transcription is trimmed",
			language: "de",
			serverResp: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/v1/audio/transcriptions" {
					t.Errorf("path = %s", r.URL.Path)
				}
				if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
					t.Errorf("Authorization = %q", got)
				}
				if err := r.ParseMultipartForm(1 << 20); err != nil {
					t.Errorf("parse multipart: %v", err)
					return
				}
				if got := r.FormValue("model"); got != "whisper-1" {
					t.Errorf("model = %q", got)
				}
				if got := r.FormValue("language"); got != "de" {
					t.Errorf("language = %q", got)
				}
				if got := r.FormValue("response_format"); got != "text" {
					t.Errorf("response_format = %q", got)
				}
				file, header, err := r.FormFile("file")
				if err != nil {
					t.Errorf("form file: %v", err)
					return
				}
				defer file.Close()
				if header.Filename != "sitzung.wav" {
					t.Errorf("filename = %q", header.Filename)
				}
				data, _ := io.ReadAll(file)
				if string(data) != "RIFF....WAVEfmt " {
					t.Errorf("uploaded bytes = %q", data)
				}
				w.Header().Set("Content-Type", "text/plain; charset=utf-8")
				_, _ = w.Write([]byte("\n  Guten Morgen zusammen.  \n"))
			},
			want: "Guten Morgen zusammen.",
		},
		{
			name:     "empty language hint is omitted",
			language: "",
			serverResp: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				_ = r.ParseMultipartForm(1 << 20)
				if _, ok := r.MultipartForm.Value["language"]; ok {
					t.Error("language field should be omitted")
				}
				w.Header().Set("Content-Type", "text/plain; charset=utf-8")
				_, _ = w.Write([]byte("ok"))
			},
			want: "ok",
		},
		{
			name:     "service error",
			language: "de",
			serverResp: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":{"message":"invalid key","type":"invalid_request_error"}}`))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tt.serverResp(t, w, r)
			}))
			defer server.Close()

			tr := NewOpenAI(server.URL, "test-key", "whisper-1")
			got, err := tr.Transcribe(context.Background(), audio, tt.language)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Transcribe() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Transcribe() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Transcribe() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOpenAI_TranscribeServiceErrorNotRetried(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":{"message":"overloaded"}}`))
	}))
	defer server.Close()

	tr := NewOpenAI(server.URL+"/", "test-key", "whisper-1")
	if _, err := tr.Transcribe(context.Background(), writeAudio(t, "sitzung.mp3"), "de"); err == nil {
		t.Fatal("Transcribe() expected error")
	}
	if calls != 1 {
		t.Errorf("server saw %d requests, want 1", calls)
	}
}

func TestOpenAI_TranscribeMissingFile(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	tr := NewOpenAI(server.URL, "test-key", "whisper-1")
	_, err := tr.Transcribe(context.Background(), filepath.Join(t.TempDir(), "fehlt.mp3"), "de")
	if !errors.Is(err, ErrAudioNotFound) {
		t.Errorf("Transcribe() error = %v, want ErrAudioNotFound", err)
	}
	if called {
		t.Error("no request should be sent for a missing file")
	}
}

func TestCheckAudioDirectory(t *testing.T) {
	if err := checkAudio(t.TempDir()); !errors.Is(err, ErrAudioNotFound) {
		t.Errorf("checkAudio(dir) = %v, want ErrAudioNotFound", err)
	}
}

func TestIsAudioFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"sitzung.mp3", true},
		{"SITZUNG.M4A", true},
		{"aufnahme.webm", true},
		{"video.mp4", true},
		{"notizen.txt", false},
		{"ohne-endung", false},
	}
	for _, tt := range tests {
		if got := IsAudioFile(tt.path); got != tt.want {
			t.Errorf("IsAudioFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
