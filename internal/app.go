package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	amap_adapter "rent-records-service/internal/adapters/amap"
	excel_adapter "rent-records-service/internal/adapters/excel"
	logger_adapter "rent-records-service/internal/adapters/logger"
	mediafs_adapter "rent-records-service/internal/adapters/mediafs"
	memstorage_adapter "rent-records-service/internal/adapters/memstorage"
	phoneinfo_adapter "rent-records-service/internal/adapters/phoneinfo"
	postgres_adapter "rent-records-service/internal/adapters/postgres"
	rabbitmq_adapter "rent-records-service/internal/adapters/rabbitmq"
	"rent-records-service/internal/adapters/rest"
	"rent-records-service/internal/configs"
	"rent-records-service/internal/constants"
	"rent-records-service/internal/contextkeys"
	"rent-records-service/internal/core/collection"
	"rent-records-service/internal/core/port"
	"rent-records-service/internal/core/usecase"

	fluentlogger "rent-records-service/pkg/fluent_logger"
	"rent-records-service/pkg/postgres"
	"rent-records-service/pkg/rabbitmq"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App – структура приложения
type App struct {
	config       *configs.AppConfig
	dbPool       *pgxpool.Pool
	apiServer    *rest.Server
	fluentClient *fluent.Fluent
	publisher    *rabbitmq.Publisher
	logger       port.LoggerPort

	loadCollectionUseCase *usecase.LoadCollectionUseCase
}

// NewApp создает новый экземпляр приложения.
// Это "Composition Root", где все зависимости создаются и связываются.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false, // текстовый формат
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	// Добавляем Fluent Bit логгер, если он включен в конфигурации
	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName, // Используем имя приложения как префикс
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	// Создаем наш композитный логгер
	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	// --- 2. СОЗДАЕМ БАЗОВЫЙ ЛОГГЕР ПРИЛОЖЕНИЯ С КОНТЕКСТОМ ---
	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 3. ИНИЦИАЛИЗАЦИЯ ХРАНИЛИЩА ---
	var dbPool *pgxpool.Pool
	var storageAdapter port.LandlordStoragePort

	switch appConfig.Database.Driver {
	case "postgres":
		dbPool, err = postgres.NewClient(context.Background(), postgres.Config{DatabaseURL: appConfig.Database.URL})
		if err != nil {
			appLogger.Error("Failed to connect to PostgreSQL", err, nil)
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

		pgAdapter, err := postgres_adapter.NewLandlordStorageAdapter(dbPool)
		if err != nil {
			appLogger.Error("Failed to create postgres storage adapter", err, nil)
			dbPool.Close()
			return nil, fmt.Errorf("failed to create postgres storage adapter: %w", err)
		}
		if err := pgAdapter.EnsureSchema(context.Background()); err != nil {
			appLogger.Error("Failed to ensure database schema", err, nil)
			dbPool.Close()
			return nil, fmt.Errorf("failed to ensure database schema: %w", err)
		}
		storageAdapter = pgAdapter

	case "memory":
		storageAdapter = memstorage_adapter.NewMemStorageAdapter()
		appLogger.Info("Using in-memory storage.", nil)
	}

	appLogger.Info("Storage adapter initialized.", port.Fields{"driver": appConfig.Database.Driver})

	// --- 4. ОПЦИОНАЛЬНЫЕ ИСХОДЯЩИЕ АДАПТЕРЫ ---
	var geocoder port.ReverseGeocoderPort
	if appConfig.Geocoder.AmapKey != "" {
		geocoder, err = amap_adapter.NewReverseGeocoderAdapter(appConfig.Geocoder.AmapKey)
		if err != nil {
			appLogger.Error("Failed to create AMap geocoder adapter", err, nil)
			closePool(dbPool)
			return nil, err
		}
		appLogger.Info("AMap reverse geocoder initialized.", nil)
	} else {
		appLogger.Warn("AMAP_KEY is not set, reverse geocoding disabled.", nil)
	}

	mediaVault, err := mediafs_adapter.NewMediaVaultAdapter(appConfig.Media.Root)
	if err != nil {
		appLogger.Error("Failed to create media vault adapter", err, nil)
		closePool(dbPool)
		return nil, fmt.Errorf("failed to create media vault adapter: %w", err)
	}

	var publisher *rabbitmq.Publisher
	var changeNotifier port.ChangeNotifierPort
	if appConfig.RabbitMQ.Enabled {
		publisherLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_publisher"})
		publisher, err = rabbitmq.NewPublisher(rabbitmq.PublisherConfig{
			URL:                      appConfig.RabbitMQ.URL,
			ExchangeName:             constants.RecordEventsExchange,
			ExchangeType:             constants.RecordEventsExchangeType,
			DurableExchange:          true,
			DeclareExchangeIfMissing: true,

			Logger: rabbitmq_adapter.NewPkgLoggerBridge(publisherLogger),
		})
		if err != nil {
			appLogger.Error("Failed to create event publisher", err, nil)
			closePool(dbPool)
			return nil, fmt.Errorf("failed to create event publisher: %w", err)
		}

		changeNotifier, err = rabbitmq_adapter.NewChangeNotifierAdapter(publisher)
		if err != nil {
			appLogger.Error("Failed to create change notifier adapter", err, nil)
			publisher.Close()
			closePool(dbPool)
			return nil, err
		}
		appLogger.Info("RabbitMQ change notifier initialized.", nil)
	}

	phoneDirectory := phoneinfo_adapter.NewPhoneDirectoryAdapter()
	workbookExporter := excel_adapter.NewWorkbookExporterAdapter()
	appLogger.Info("All outgoing adapters initialized.", nil)

	// --- 5. ЯДРО: КОЛЛЕКЦИЯ ЗАПИСЕЙ ---
	landlordCollection := collection.New(storageAdapter, geocoder, mediaVault, changeNotifier, baseLogger)

	// ИНИЦИАЛИЗАЦИЯ USE CASES (ядра бизнес-логики)
	loadCollectionUseCase := usecase.NewLoadCollectionUseCase(landlordCollection)
	createLandlordUseCase := usecase.NewCreateLandlordUseCase(landlordCollection)
	updateLandlordUseCase := usecase.NewUpdateLandlordUseCase(landlordCollection)
	removeLandlordUseCase := usecase.NewRemoveLandlordUseCase(landlordCollection)
	mergeLandlordsUseCase := usecase.NewMergeLandlordsUseCase(landlordCollection)
	selectLandlordUseCase := usecase.NewSelectLandlordUseCase(landlordCollection)
	clearCollectionUseCase := usecase.NewClearCollectionUseCase(landlordCollection)
	manageRoomsUseCase := usecase.NewManageRoomsUseCase(landlordCollection)

	getLandlordViewUseCase := usecase.NewGetLandlordViewUseCase(landlordCollection)
	getPropertyViewUseCase := usecase.NewGetPropertyViewUseCase(landlordCollection)
	getMapGroupsUseCase := usecase.NewGetMapGroupsUseCase(landlordCollection)
	getStatsUseCase := usecase.NewGetStatsUseCase(landlordCollection)

	checkPhoneUseCase := usecase.NewCheckPhoneUseCase(landlordCollection, phoneDirectory)
	exportRecordsUseCase := usecase.NewExportRecordsUseCase(landlordCollection, workbookExporter)
	importRecordsUseCase := usecase.NewImportRecordsUseCase(landlordCollection)

	appLogger.Info("All use cases initialized.", nil)

	// REST API Server
	landlordHandler := rest.NewLandlordHandler(
		getLandlordViewUseCase,
		createLandlordUseCase,
		updateLandlordUseCase,
		removeLandlordUseCase,
		mergeLandlordsUseCase,
		selectLandlordUseCase,
		clearCollectionUseCase,
		checkPhoneUseCase,
	)
	roomHandler := rest.NewRoomHandler(manageRoomsUseCase)
	viewHandler := rest.NewViewHandler(getPropertyViewUseCase, getMapGroupsUseCase, getStatsUseCase)
	transferHandler := rest.NewTransferHandler(exportRecordsUseCase, importRecordsUseCase)

	apiServer := rest.NewServer(appConfig.Rest.PORT, landlordHandler, roomHandler, viewHandler, transferHandler, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	// Собираем приложение
	application := &App{
		config:       appConfig,
		dbPool:       dbPool,
		apiServer:    apiServer,
		fluentClient: fluentClient,
		publisher:    publisher,
		logger:       appLogger,

		loadCollectionUseCase: loadCollectionUseCase,
	}

	return application, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	// Создаем единый контекст для всего приложения для управления graceful shutdown
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.publisher != nil {
			if err := a.publisher.Close(); err != nil {
				a.logger.Error("Error closing event publisher", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Логируем в stdout, так как fluent может быть уже недоступен
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	// Загружаем коллекцию из хранилища до приема запросов
	loadCtx := contextkeys.ContextWithLogger(appCtx, a.logger)
	if err := a.loadCollectionUseCase.Load(loadCtx); err != nil {
		a.logger.Error("Failed to load collection from storage", err, nil)
		cancelApp()
		return fmt.Errorf("failed to load collection: %w", err)
	}

	errorsCh := make(chan error, 1)

	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	// Ожидание сигнала на завершение или ошибки от одного из компонентов
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", err, nil)
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	}

	// Инициируем graceful shutdown, отменяя главный контекст
	cancelApp()

	return nil
}

func closePool(pool *pgxpool.Pool) {
	if pool != nil {
		pool.Close()
	}
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		// Возвращаем безопасное значение по умолчанию и логируем предупреждение
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
