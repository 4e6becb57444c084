// expensed-worker consumes expense.created events and keeps a running
// spending total per calendar month, logged as records arrive. It is the
// reference downstream consumer of the event stream.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/joho/godotenv"

	"expensed/internal/config"
	"expensed/internal/events"
)

type monthTotals struct {
	mu     sync.Mutex
	totals map[string]float64
}

func newMonthTotals() *monthTotals {
	return &monthTotals{totals: make(map[string]float64)}
}

func (m *monthTotals) add(msg *events.ExpenseCreatedMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := msg.CreatedAt.UTC().Format("2006-01")
	m.totals[key] += msg.Amount
	slog.Info("Expense recorded",
		"id", msg.ID,
		"type", msg.Type,
		"amount", fmt.Sprintf("%.2f", msg.Amount),
		"month", key,
		"month_total", fmt.Sprintf("%.2f", m.totals[key]))
	return nil
}

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()
	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the worker")
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	client, err := events.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to connect to AMQP", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Worker started", "queue", cfg.AMQPQueue)

	totals := newMonthTotals()
	if err := client.ConsumeExpenseCreated(ctx, totals.add); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Consumer error", "error", err)
		os.Exit(1)
	}
	logger.Info("Worker stopped gracefully")
}
