package transcriber

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/political-party-kit/partykit/internal/logger"
	"github.com/political-party-kit/partykit/internal/transcriber/mocks"
)

type fakeExecutor struct {
	calls [][]string
	err   error
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	// ffmpeg writes the last argument, even when it fails halfway
	out := args[len(args)-1]
	if err := os.WriteFile(out, []byte("ID3"), 0644); err != nil {
		return "", err
	}
	return "", f.err
}

func (f *fakeExecutor) Start(ctx context.Context, name string, args ...string) error {
	return nil
}

func (f *fakeExecutor) LookPath(name string) (string, error) {
	return "/usr/bin/" + name, nil
}

func TestWithConversion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	audio := writeAudio(t, "sitzung.mp4")
	tempDir := t.TempDir()
	exec := &fakeExecutor{}
	next := mocks.NewMockTranscriber(ctrl)

	var convertedPath string
	next.EXPECT().
		Transcribe(gomock.Any(), gomock.Any(), "de").
		DoAndReturn(func(ctx context.Context, path, language string) (string, error) {
			convertedPath = path
			if _, err := os.Stat(path); err != nil {
				t.Errorf("converted file should exist during transcription: %v", err)
			}
			return "Transkript", nil
		})

	tr := WithConversion(next, exec, logger.Nop(), "", tempDir)
	got, err := tr.Transcribe(context.Background(), audio, "de")
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if got != "Transkript" {
		t.Errorf("Transcribe() = %q", got)
	}

	if len(exec.calls) != 1 || exec.calls[0][0] != "ffmpeg" {
		t.Fatalf("executor calls = %v", exec.calls)
	}
	args := strings.Join(exec.calls[0], " ")
	for _, want := range []string{"-i " + audio, "-ar 16000", "-ac 1", "-vn", "-c:a libmp3lame", "-b:a 32k"} {
		if !strings.Contains(args, want) {
			t.Errorf("ffmpeg args %q missing %q", args, want)
		}
	}
	if strings.Contains(args, "pcm_s16le") {
		t.Errorf("ffmpeg args %q should not produce uncompressed audio", args)
	}
	if filepath.Dir(convertedPath) != tempDir || filepath.Ext(convertedPath) != ".mp3" {
		t.Errorf("converted path = %q", convertedPath)
	}
	if _, err := os.Stat(convertedPath); !os.IsNotExist(err) {
		t.Error("converted file should be removed afterwards")
	}
}

func TestWithConversionFfmpegFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	next := mocks.NewMockTranscriber(ctrl)
	exec := &fakeExecutor{err: errors.New("exit status 1")}

	tempDir := t.TempDir()
	tr := WithConversion(next, exec, logger.Nop(), "/opt/ffmpeg", tempDir)
	if _, err := tr.Transcribe(context.Background(), writeAudio(t, "a.mp3"), "de"); err == nil {
		t.Fatal("Transcribe() expected error when ffmpeg fails")
	}
	if exec.calls[0][0] != "/opt/ffmpeg" {
		t.Errorf("binary = %q, want /opt/ffmpeg", exec.calls[0][0])
	}

	leftovers, err := filepath.Glob(filepath.Join(tempDir, "partykit-*"))
	if err != nil {
		t.Fatal(err)
	}
	if len(leftovers) != 0 {
		t.Errorf("partial ffmpeg output left behind: %v", leftovers)
	}
}

func TestWithConversionMissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec := &fakeExecutor{}
	tr := WithConversion(mocks.NewMockTranscriber(ctrl), exec, logger.Nop(), "", t.TempDir())

	_, err := tr.Transcribe(context.Background(), filepath.Join(t.TempDir(), "fehlt.wav"), "de")
	if !errors.Is(err, ErrAudioNotFound) {
		t.Errorf("Transcribe() error = %v, want ErrAudioNotFound", err)
	}
	if len(exec.calls) != 0 {
		t.Error("ffmpeg should not run for a missing file")
	}
}
