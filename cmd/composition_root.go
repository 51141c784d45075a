package cmd

import (
	"log/slog"

	"orderflow/internal/adapters/out/classify"
	"orderflow/internal/adapters/out/filesink"
	"orderflow/internal/adapters/out/postgres/orderrepo"
	"orderflow/internal/adapters/out/xlsxsink"
	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/ports"
	"orderflow/internal/jobs"
	"orderflow/internal/observability/logging"
	"orderflow/internal/observability/metrics"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs  Config
	gormDB   *gorm.DB
	logger   *slog.Logger
	pipeline *metrics.PipelineMetrics
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		configs:  configs,
		gormDB:   gormDB,
		logger:   logging.NewJSONLogger("orderflow", configs.LogLevel),
		pipeline: metrics.NewPipelineMetrics(),
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) PipelineMetrics() *metrics.PipelineMetrics {
	return c.pipeline
}

func (c *CompositionRoot) CreateOrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(c.gormDB)
}

func (c *CompositionRoot) CreateClassifier() ports.Classifier {
	return classify.NewClient(c.configs.ClassifierBaseURL)
}

// CreateRowSink selects the export destination: CSV files by default,
// XLSX workbooks when configured.
func (c *CompositionRoot) CreateRowSink() ports.RowSink {
	if c.configs.ExportFormat == "xlsx" {
		return xlsxsink.NewXLSXSink(c.configs.ExportDir)
	}
	return filesink.NewCSVSink(c.configs.ExportDir)
}

func (c *CompositionRoot) CreateProcessUserOrdersCommandHandler() commands.ProcessUserOrdersCommandHandler {
	return commands.NewProcessUserOrdersCommandHandler(
		c.CreateOrderRepository(),
		c.CreateClassifier(),
		commands.NewOrderExporter(c.CreateRowSink()),
	)
}

func (c *CompositionRoot) CreateGetProcessedOrdersQueryHandler() queries.GetProcessedOrdersQueryHandler {
	return queries.NewGetProcessedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	processingJob := jobs.NewOrderProcessingJob(
		c.CreateProcessUserOrdersCommandHandler(),
		c.CreateOrderRepository(),
		c.pipeline,
		c.configs.ProcessSchedule,
		c.logger,
	)
	return jobs.NewJobManager(processingJob)
}
