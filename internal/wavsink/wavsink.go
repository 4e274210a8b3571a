// Package wavsink writes captured sample frames to a .WAV file.
package wavsink

import (
	"context"
	"log/slog"
	"math"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/google/uuid"
)

// Sink consumes interleaved float32 frames from a channel and writes them
// to a 16-bit PCM WAV file. Note the resulting file is only valid once the
// input channel is closed.
type Sink struct {
	ctx           context.Context
	ctxCancelFunc context.CancelFunc
	logger        *slog.Logger
	uuid          uuid.UUID
	encoder       *wav.Encoder
	fileHandle    *os.File
}

// New creates a Sink writing to the WAV file at the given path.
func New(path string, sampleRate int, numChannels int) (*Sink, error) {
	uuid := uuid.New()
	logger := slog.Default().With(
		"wav sink uuid", uuid,
	)

	f, err := os.Create(path)
	if err != nil {
		logger.Error(
			"could not create audio file",
			"audioFile", path,
			"err", err,
		)
		return nil, err
	}

	encoder := wav.NewEncoder(f, sampleRate, 16, numChannels, 1)

	ctx, ctxCancelFunc := context.WithCancel(context.Background())
	return &Sink{
		ctx:           ctx,
		ctxCancelFunc: ctxCancelFunc,
		logger:        logger,
		uuid:          uuid,
		encoder:       encoder,
		fileHandle:    f,
	}, nil
}

// Consume drains the source channel into the file. When the channel is
// closed the encoder is finalized and the file handle released.
func (s *Sink) Consume(sourceChannel <-chan []float32) {
	const maxInt16 = float32(math.MaxInt16)
	go func() {
		bufFormat := &goaudio.Format{
			SampleRate:  s.encoder.SampleRate,
			NumChannels: s.encoder.NumChans,
		}
		for frame := range sourceChannel {
			buf := &goaudio.IntBuffer{
				Format:         bufFormat,
				Data:           make([]int, len(frame)),
				SourceBitDepth: 16,
			}
			for i, sample := range frame {
				buf.Data[i] = int(sample * maxInt16)
			}

			if err := s.encoder.Write(buf); err != nil {
				s.logger.Error("error while writing frame to file", "err", err)
				continue
			}
		}
		s.close()
	}()
}

// WaitForClose blocks until the sink has finalized the file.
func (s *Sink) WaitForClose() {
	<-s.ctx.Done()
}

func (s *Sink) close() {
	s.encoder.Close()
	s.fileHandle.Sync()
	s.fileHandle.Close()
	s.ctxCancelFunc()
	s.logger.Debug("wav sink closed")
}
