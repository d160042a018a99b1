package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port int

	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string
	OpenAITimeout int // seconds
}

func Load() *Config {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil || port <= 0 {
		port = 8080 // fallback
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini" // default model
	}

	baseURL := os.Getenv("OPENAI_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}

	timeout, err := strconv.Atoi(os.Getenv("OPENAI_TIMEOUT_SEC"))
	if err != nil || timeout <= 0 {
		timeout = 60
	}

	return &Config{
		Port: port,

		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   model,
		OpenAIBaseURL: baseURL,
		OpenAITimeout: timeout,
	}
}
