package wavsink

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
)

func TestSinkWritesDecodableWav(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.wav")

	sink, err := New(path, 16000, 1)
	if err != nil {
		t.Fatal(err)
	}

	frames := make(chan []float32, 4)
	sink.Consume(frames)

	frames <- []float32{0, 0.5, -0.5, 1}
	frames <- []float32{0.25, -0.25}
	close(frames)
	sink.WaitForClose()

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatal(err)
	}
	if !dec.IsValidFile() {
		t.Fatal("expected a valid wav file")
	}
	if dec.SampleRate != 16000 {
		t.Errorf("expected sample rate 16000, got %d", dec.SampleRate)
	}
	if dec.NumChans != 1 {
		t.Errorf("expected 1 channel, got %d", dec.NumChans)
	}
	if len(buf.Data) != 6 {
		t.Fatalf("expected 6 samples, got %d", len(buf.Data))
	}
	if buf.Data[0] != 0 {
		t.Errorf("expected silence first, got %d", buf.Data[0])
	}
	if buf.Data[1] <= 0 || buf.Data[2] >= 0 {
		t.Errorf("expected signed samples preserved, got %d and %d", buf.Data[1], buf.Data[2])
	}
}

func TestSinkCreateFailure(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "missing", "capture.wav"), 48000, 2); err == nil {
		t.Fatal("expected an error for an uncreatable path")
	}
}
