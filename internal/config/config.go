package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/Freeeeeet/health_wallet/internal/model"
	"github.com/joho/godotenv"
)

// Драйверы локального хранилища
const (
	StorageLevelDB  = "leveldb"
	StoragePostgres = "postgres"
	StorageMongo    = "mongo"
)

type Config struct {
	Environment string

	StorageDriver  string
	StoragePath    string
	DBDSN          string
	MigrationsPath string
	MongoURI       string
	MongoDatabase  string

	ProviderURLs    []string
	Chain           model.Chain
	ContractAddress string
	TreasuryAddress string
	TxMaxAttempts   int

	TelegramToken  string
	TelegramChatID int64

	AnalysisBackendURL string
	DoctorBackendURL   string
	AnalysisPort       string
	DoctorPort         string
	UploadDir          string
}

// DefaultChain - Shardeum Atomium (Mezame) testnet
func DefaultChain() model.Chain {
	return model.Chain{
		ChainID:   "0x1FB7",
		ChainName: "Shardeum Atomium (Mezame)",
		RPCURLs: []string{
			"https://api-mezame.shardeum.org/",
			"https://atomium.shardeum.org/",
		},
		BlockExplorerURLs: []string{"https://explorer-mezame.shardeum.org/"},
		NativeCurrency: model.NativeCurrency{
			Name:     "SHARDEUM",
			Symbol:   "SHM",
			Decimals: 18,
		},
	}
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	chain := DefaultChain()
	chain.ChainID = getEnv("CHAIN_ID", chain.ChainID)
	chain.ChainName = getEnv("CHAIN_NAME", chain.ChainName)
	if urls := splitList(os.Getenv("CHAIN_RPC_URLS")); len(urls) > 0 {
		chain.RPCURLs = urls
	}
	if explorer := os.Getenv("CHAIN_EXPLORER_URL"); explorer != "" {
		chain.BlockExplorerURLs = []string{explorer}
	}
	chain.NativeCurrency.Symbol = getEnv("CHAIN_CURRENCY_SYMBOL", chain.NativeCurrency.Symbol)

	decimals, err := getEnvInt("CHAIN_CURRENCY_DECIMALS", chain.NativeCurrency.Decimals)
	if err != nil {
		return nil, err
	}
	chain.NativeCurrency.Decimals = decimals

	maxAttempts, err := getEnvInt("TX_MAX_ATTEMPTS", 3)
	if err != nil {
		return nil, err
	}

	var chatID int64
	if raw := os.Getenv("TELEGRAM_CHAT_ID"); raw != "" {
		chatID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("TELEGRAM_CHAT_ID must be an integer: %w", err)
		}
	}

	cfg := &Config{
		Environment:        getEnv("ENV", "development"),
		StorageDriver:      getEnv("STORAGE_DRIVER", StorageLevelDB),
		StoragePath:        getEnv("STORAGE_PATH", "data/wallet"),
		DBDSN:              os.Getenv("DB_DSN"),
		MigrationsPath:     getEnv("MIGRATIONS_PATH", "migrations"),
		MongoURI:           getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:      getEnv("MONGO_DATABASE", "dhrw"),
		ProviderURLs:       splitList(getEnv("WALLET_PROVIDER_URLS", "http://127.0.0.1:8545")),
		Chain:              chain,
		ContractAddress:    getEnv("CONTRACT_ADDRESS", "0x96af7aFA67A96f2Edff04032E74288ED8b472932"),
		TreasuryAddress:    getEnv("TREASURY_ADDRESS", "0x742d35Cc6634C0532925a3b844Bc454e4438f44e"),
		TxMaxAttempts:      maxAttempts,
		TelegramToken:      os.Getenv("TELEGRAM_TOKEN"),
		TelegramChatID:     chatID,
		AnalysisBackendURL: getEnv("ANALYSIS_BACKEND_URL", "http://localhost:3001"),
		DoctorBackendURL:   getEnv("DOCTOR_BACKEND_URL", "http://localhost:3002"),
		AnalysisPort:       getEnv("ANALYSIS_PORT", "3001"),
		DoctorPort:         getEnv("DOCTOR_PORT", "3002"),
		UploadDir:          getEnv("UPLOAD_DIR", "uploads"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Printf("Config loaded\n")

	return cfg, nil
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case StorageLevelDB, StorageMongo:
	case StoragePostgres:
		if c.DBDSN == "" {
			return fmt.Errorf("DB_DSN is required for %s storage but not set", StoragePostgres)
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}

	if len(c.ProviderURLs) == 0 {
		return fmt.Errorf("WALLET_PROVIDER_URLS is required but not set")
	}

	if c.TxMaxAttempts < 1 {
		return fmt.Errorf("TX_MAX_ATTEMPTS must be at least 1")
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
