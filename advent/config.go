package main

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type config struct {
	inputDir    string // holds day1.txt, day2.txt, ...
	answersPath string
}

// loadConfig reads the environment, after first loading .env from the
// current directory if there is one.
func loadConfig() config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Println("Error loading .env:", err)
	}
	return configFromEnv(os.Getenv)
}

func configFromEnv(getenv func(string) string) config {
	cfg := config{
		inputDir:    getenv("ADVENT_INPUT_DIR"),
		answersPath: getenv("ADVENT_ANSWERS"),
	}
	if cfg.answersPath == "" {
		cfg.answersPath = filepath.Join(cfg.inputDir, "answers.yaml")
	}
	return cfg
}

func (c config) inputPath(day int) string {
	return filepath.Join(c.inputDir, "day"+strconv.Itoa(day)+".txt")
}
