package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvPrefix string = "ECO_"

	EnvKeyEcoDBType string = "ECO_DB_TYPE"
	EnvKeyEcoDbPath string = "ECO_DB_PATH"
	EnvKeyEcoDbDSN  string = "ECO_DB_DSN"

	EnvKeyEcoHttpHostPort string = "ECO_HTTP_HOST_PORT"
	EnvKeyEcoGrpcHostPort string = "ECO_GRPC_HOST_PORT"

	EnvKeyEcoDefaultRate  string = "ECO_DEFAULT_RATE"
	EnvKeyEcoDefaultBurst string = "ECO_DEFAULT_BURST"

	EnvKeyEcoJwtSecret string = "ECO_JWT_SECRET"
	EnvKeyEcoLogDir    string = "ECO_LOG_DIR"

	LoggerNameEcoCore       string = "eco_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameGrpcServer    string = "grpc_server"
	LoggerNameNotifier      string = "notifier"
	LoggerNameDb            string = "db"

	LoggerFieldEcoCategory        string = "category"
	LoggerCategoryEcoActivity     string = "activity"
	LoggerCategoryEcoRenewable    string = "renewable"
	LoggerCategoryEcoPlastic      string = "plastic"
	LoggerCategoryEcoNotification string = "notification"
	LoggerCategoryEcoWaste        string = "waste"
	LoggerCategoryEcoProfile      string = "profile"
	LoggerCategoryEcoStats        string = "stats"

	HeaderUserID    string = "X-User-ID"
	HeaderRequestID string = "X-Request-ID"
)
