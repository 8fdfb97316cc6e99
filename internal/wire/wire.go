// Package wire provides dependency injection for the sitedesk application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"os"
	"sync"

	"github.com/example/sitedesk/internal/adapters/backend"
	cliadapter "github.com/example/sitedesk/internal/adapters/cli"
	"github.com/example/sitedesk/internal/adapters/sqlite"
	"github.com/example/sitedesk/internal/app"
	"github.com/example/sitedesk/internal/config"
	"github.com/example/sitedesk/internal/db"
	"github.com/example/sitedesk/internal/ports/primary"
	"github.com/example/sitedesk/internal/ports/secondary"
)

var (
	cfg              *config.Config
	workOrderService primary.WorkOrderService
	chatService      primary.ChatService
	queryBackend     secondary.QueryBackend
	once             sync.Once
)

// WorkOrderService returns the singleton WorkOrderService instance.
func WorkOrderService() primary.WorkOrderService {
	once.Do(initServices)
	return workOrderService
}

// ChatService returns the singleton ChatService instance.
func ChatService() primary.ChatService {
	once.Do(initServices)
	return chatService
}

// QueryBackend returns the singleton QueryBackend instance.
func QueryBackend() secondary.QueryBackend {
	once.Do(initServices)
	return queryBackend
}

// Config returns the loaded configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if cfg.DatabasePath != "" {
		db.SetPath(cfg.DatabasePath)
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Repository adapters (secondary ports) - sqlite adapters with injected DB
	workOrderRepo := sqlite.NewWorkOrderRepository(database)
	auditRepo := sqlite.NewAuditLogRepository(database)
	logWriter := sqlite.NewLogWriterAdapter(auditRepo)

	// Query backend selection is a config concern; call sites never branch
	if cfg.BackendMode == config.BackendModeCanned {
		queryBackend = backend.NewCannedBackend()
	} else {
		queryBackend = backend.NewHTTPBackend(cfg.BackendURL)
	}

	// Services (primary port implementations)
	workOrderService = app.NewWorkOrderService(workOrderRepo, logWriter)
	chatService = app.NewChatService(queryBackend)
}

// WorkOrderAdapter returns a new WorkOrderAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func WorkOrderAdapter() *cliadapter.WorkOrderAdapter {
	return WorkOrderAdapterWithOutput(os.Stdout)
}

// WorkOrderAdapterWithOutput returns a new WorkOrderAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func WorkOrderAdapterWithOutput(out io.Writer) *cliadapter.WorkOrderAdapter {
	once.Do(initServices)
	return cliadapter.NewWorkOrderAdapter(workOrderService, out)
}

// ChatAdapter returns a new ChatAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func ChatAdapter() *cliadapter.ChatAdapter {
	return ChatAdapterWithOutput(os.Stdout)
}

// ChatAdapterWithOutput returns a new ChatAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func ChatAdapterWithOutput(out io.Writer) *cliadapter.ChatAdapter {
	once.Do(initServices)
	return cliadapter.NewChatAdapter(chatService, out)
}
