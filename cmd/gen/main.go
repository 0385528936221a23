package main

import (
	"ContactBook/internal/repository"
	"ContactBook/pkg/logger"
)

func main() {
	logger.Init()
	defer logger.Sync()

	repository.RunGenerate()
}
