package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/viper"

	"github.com/tonearm/aaudio/cmd/config"
	"github.com/tonearm/aaudio/internal/platform/miniaudio"
	"github.com/tonearm/aaudio/internal/utils"
	"github.com/tonearm/aaudio/pkg/aaudio"
	"github.com/tonearm/aaudio/pkg/audio"
)

func printRanges(label string, ranges []audio.ConfigRange) {
	fmt.Printf("  %s configs: %d\n", label, len(ranges))
	for _, r := range ranges {
		bufSize := "unknown"
		if r.BufferSize.Known {
			bufSize = fmt.Sprintf("[%d, %d]", r.BufferSize.Min, r.BufferSize.Max)
		}
		fmt.Printf("    %d ch, %d-%d Hz, %s, buffer %s\n",
			r.Channels, r.MinSampleRate, r.MaxSampleRate, r.Format, bufSize)
	}
}

func printDefault(label string, cfg audio.SupportedConfig, err error) {
	if err != nil {
		fmt.Printf("  default %s config: none (%v)\n", label, err)
		return
	}
	fmt.Printf("  default %s config: %d ch, %d Hz, %s\n",
		label, cfg.Channels, cfg.SampleRate, cfg.Format)
}

func main() {
	configFilePath := flag.String("configFilePath", "config.yaml", "Set the file path to the config file.")
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
	for _, dev := range host.Devices() {
		fmt.Printf("device: %s\n", dev.Name())

		printRanges("input", dev.SupportedInputConfigs())
		inCfg, err := dev.DefaultInputConfig()
		printDefault("input", inCfg, err)

		printRanges("output", dev.SupportedOutputConfigs())
		outCfg, err := dev.DefaultOutputConfig()
		printDefault("output", outCfg, err)
	}
}
