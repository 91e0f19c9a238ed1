package services

import (
	"log"

	"pitchmatch/internal/config"
	"pitchmatch/internal/interview"
)

type Services struct {
	InterviewClient *interview.Client
}

func New(cfg config.Config) *Services {
	interviewClient, err := interview.NewClient(cfg.OpenAIKey, cfg.OpenAIModel)
	if err != nil {
		log.Fatalf("Failed to initialize interview client: %v", err)
	}

	return &Services{
		InterviewClient: interviewClient,
	}
}
