package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/thelolagemann/gbcore/internal/gameboy"
	"github.com/thelolagemann/gbcore/pkg/log"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

func main() {
	var logger = log.New()

	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		logger.WithError(err).Fatal("invalid arguments")
	}
	if cfg.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	if err := run(cfg, logger); err != nil {
		logger.WithError(err).Fatal("emulation stopped")
	}
}

func run(cfg Config, logger *logrus.Logger) error {
	rom, err := utils.LoadFile(cfg.ROM)
	if err != nil {
		return err
	}

	opts := []gameboy.Opt{gameboy.WithLogger(logger)}
	if cfg.Boot != "" {
		image, err := utils.LoadFile(cfg.Boot)
		if err != nil {
			return err
		}
		opts = append(opts, gameboy.WithBootROM(image))
	}
	if cfg.Serial {
		opts = append(opts, gameboy.WithSerialOutput(os.Stdout))
	}

	gb, err := gameboy.NewGameBoy(rom, opts...)
	if err != nil {
		return err
	}
	defer func() {
		if err := gb.Close(); err != nil {
			logger.WithError(err).Error("unable to release the emulator")
		}
	}()

	runErr := gb.RunUntil(cfg.Cycles)
	logger.WithFields(logrus.Fields{
		"title":       gb.Cartridge.Title(),
		"fingerprint": gb.Cartridge.Fingerprint(),
		"boot":        gb.Boot.Model(),
		"cycles":      gb.Cycles(),
		"cpu":         gb.CPU.String(),
	}).Info("emulation finished")
	return runErr
}
