package main

import (
	"flag"
	"log/slog"
	"math"
	"os"
	"sync"
	"time"

	"github.com/spf13/viper"

	"github.com/tonearm/aaudio/cmd/config"
	"github.com/tonearm/aaudio/internal/platform/miniaudio"
	"github.com/tonearm/aaudio/internal/utils"
	"github.com/tonearm/aaudio/internal/wavsink"
	"github.com/tonearm/aaudio/pkg/aaudio"
	"github.com/tonearm/aaudio/pkg/audio"
	"github.com/tonearm/aaudio/pkg/audio/convert"
)

// frameToFloat32 copies a callback buffer out into a float32 frame. The
// Data view is only valid inside the callback, so the copy is mandatory.
func frameToFloat32(data audio.Data) []float32 {
	frame := make([]float32, data.Len())
	switch data.SampleFormat() {
	case audio.SampleFormatI16:
		for i, s := range data.Int16() {
			frame[i] = float32(s) / float32(math.MaxInt16)
		}
	case audio.SampleFormatF32:
		copy(frame, data.Float32())
	}
	return frame
}

func main() {
	configFilePath := flag.String("configFilePath", "config.yaml", "Set the file path to the config file.")
	outPath := flag.String("out", "capture.wav", "Set the file path of the recorded WAV file.")
	flag.Parse()

	config.LoadConfig(*configFilePath)
	logFilePointer, err := utils.ConfigureDefaultLogger(
		viper.GetString("loglevel"),
		viper.GetString("logfile"),
		slog.HandlerOptions{},
	)
	if err != nil {
		slog.Error("error while configuring default logger", "err", err)
		panic(err)
	}
	if logFilePointer != nil {
		defer logFilePointer.Close()
	}

	// --------------------------------------------------------------------------------

	backend, err := miniaudio.New(slog.Default())
	if err != nil {
		slog.Error("failed to initialize native audio backend", "err", err)
		os.Exit(1)
	}
	defer backend.Close()

	host := aaudio.NewHost(backend, backend, backend)
	dev := host.DefaultInputDevice()
	if dev == nil {
		slog.Error("no capture device available")
		os.Exit(1)
	}

	supported, err := dev.DefaultInputConfig()
	if err != nil {
		slog.Error("no usable capture configuration", "device", dev.Name(), "err", err)
		os.Exit(1)
	}
	streamCfg := supported.Config()
	if frames := viper.GetUint32("bufferframes"); frames > 0 {
		streamCfg.BufferSize = audio.FixedBufferSize(frames)
	}

	slog.Info("recording",
		"device", dev.Name(),
		"sampleRate", streamCfg.SampleRate,
		"channels", streamCfg.Channels,
		"format", supported.Format,
	)

	frames := make(chan []float32, 16) // buffer a few callbacks
	deviceLost := make(chan struct{})
	var deviceLostOnce sync.Once

	stream, err := dev.BuildInputStream(streamCfg, supported.Format,
		func(data audio.Data, info audio.InputCallbackInfo) {
			select {
			case frames <- frameToFloat32(data):
			default:
				// Channel full - data is being dropped.
			}
		},
		func(err error) {
			slog.Error("stream fault", "err", err)
			deviceLostOnce.Do(func() { close(deviceLost) })
		},
	)
	if err != nil {
		slog.Error("failed to build capture stream", "err", err)
		os.Exit(1)
	}
	defer stream.Close()

	// --------------------------------------------------------------------------------

	sinkProps := convert.Properties{
		SampleRate:  viper.GetInt("samplerate"),
		NumChannels: viper.GetInt("channels"),
	}
	chain := convert.New(convert.Properties{
		SampleRate:  int(streamCfg.SampleRate),
		NumChannels: int(streamCfg.Channels),
	}, sinkProps)

	sink, err := wavsink.New(*outPath, sinkProps.SampleRate, sinkProps.NumChannels)
	if err != nil {
		slog.Error("failed to create wav sink", "out", *outPath, "err", err)
		os.Exit(1)
	}
	converted := make(chan []float32, 16)
	sink.Consume(converted)

	if err := stream.Play(); err != nil {
		slog.Error("failed to start capture stream", "err", err)
		os.Exit(1)
	}

	deadline := time.After(time.Duration(viper.GetInt("recordseconds")) * time.Second)
loop:
	for {
		select {
		case frame := <-frames:
			// The chain reuses scratch storage, so hand the sink a copy.
			processed := chain.Process(frame)
			out := make([]float32, len(processed))
			copy(out, processed)
			converted <- out
		case <-deadline:
			break loop
		case <-deviceLost:
			break loop
		}
	}

	if err := stream.Pause(); err != nil {
		slog.Warn("failed to pause capture stream", "err", err)
	}
	close(converted)
	sink.WaitForClose()
	slog.Info("recording finished", "out", *outPath)
}
