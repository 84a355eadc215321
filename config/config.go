package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config 命令行未覆盖时使用的缺省值，来自环境变量
type Config struct {
	Alg         string
	QueueSize   int
	FlowCount   int
	SeqSize     int
	K           int
	Seed        uint64
	Repetitions int
	Dist        string
	ResultsPath string
	SummaryPath string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mustAtoi(s string, def int) int {
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

func mustParseUint(s string, def uint64) uint64 {
	if v, err := strconv.ParseUint(s, 10, 64); err == nil {
		return v
	}
	return def
}

// Load 先读 .env（如存在），再用环境变量填充缺省值
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("dotenv load error: %v", err)
	}
	return Config{
		Alg:         getenv("FLOWRANK_ALG", "none"),
		QueueSize:   mustAtoi(getenv("FLOWRANK_QUEUE", "50"), 50),
		FlowCount:   mustAtoi(getenv("FLOWRANK_FLOWS", "100"), 100),
		SeqSize:     mustAtoi(getenv("FLOWRANK_SEQSIZE", "10000"), 10000),
		K:           mustAtoi(getenv("FLOWRANK_K", "1"), 1),
		Seed:        mustParseUint(getenv("FLOWRANK_RNG", "1"), 1),
		Repetitions: mustAtoi(getenv("FLOWRANK_NUMEXEC", "1"), 1),
		Dist:        getenv("FLOWRANK_DIST", "uniform"),
		ResultsPath: getenv("FLOWRANK_RESULTS", ""),
		SummaryPath: getenv("FLOWRANK_SUMMARY", ""),
	}
}
