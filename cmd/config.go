package cmd

type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	ClassifierBaseURL string
	ExportDir         string
	ExportFormat      string
	ProcessSchedule   string
	LogLevel          string
}
