package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// An answerKey maps solution names to their known answers, for example
//
//	1a: 2192892
//	1b: 22962826
type answerKey map[string]int

func loadAnswers(path string) (answerKey, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading answer key: %w", err)
	}
	var answers answerKey
	if err := yaml.Unmarshal(b, &answers); err != nil {
		return nil, fmt.Errorf("error parsing answer key %s: %w", path, err)
	}
	for name := range answers {
		if _, ok := solutions[name]; !ok {
			return nil, fmt.Errorf("answer key %s: unknown solution %q", path, name)
		}
	}
	return answers, nil
}
