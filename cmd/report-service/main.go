package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ors/internal/app"
)

const (
	envDataFile  = "ORS_DATA_FILE"
	envServeAddr = "ORS_SERVE_ADDR"
	envOneShot   = "ORS_ONESHOT"
)

type envLookup func(key string) (string, bool)

// setupLogger настраивает формат и уровень логирования для сервиса.
func setupLogger() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.InfoLevel)
}

// readConfigFromEnv формирует конфигурацию приложения из переменных окружения.
// Некорректные значения не останавливают запуск: возвращаются предупреждения,
// а поле остаётся со значением по умолчанию.
func readConfigFromEnv(lookup envLookup) (app.Config, []string) {
	cfg := app.DefaultConfig()
	var warnings []string

	if v, ok := lookup(envDataFile); ok && strings.TrimSpace(v) != "" {
		cfg.DataFile = strings.TrimSpace(v)
	}
	if v, ok := lookup(envServeAddr); ok && strings.TrimSpace(v) != "" {
		cfg.ServeAddr = strings.TrimSpace(v)
	}
	if v, ok := lookup(envOneShot); ok {
		oneShot, err := parseBool(v)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", envOneShot, err))
		} else if oneShot {
			// Одноразовый режим: отчёт печатается в stdout, сервер не поднимается.
			cfg.ServeAddr = ""
		}
	}

	return cfg, warnings
}

func parseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid bool value %q", value)
}

func main() {
	setupLogger()

	// .env рядом с бинарём подхватывается автоматически, его отсутствие не ошибка.
	_ = godotenv.Load()

	cfg, warnings := readConfigFromEnv(os.LookupEnv)
	for _, warning := range warnings {
		log.Warn(warning)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(log.Fields{
		"data_file":  cfg.DataFile,
		"serve_addr": cfg.ServeAddr,
	}).Info("запускаем ReportService")

	if err := app.Run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Fatal("приложение завершилось с ошибкой")
	}

	log.Info("ReportService остановлен")
}
