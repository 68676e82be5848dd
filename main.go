package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/FlavioLombardi95/dist-gestionale/generator"
	"github.com/FlavioLombardi95/dist-gestionale/models"
	"github.com/FlavioLombardi95/dist-gestionale/service"
)

func main() {
	var (
		itemPath  = flag.String("item", "-", "Path to the item JSON file ('-' for stdin)")
		style     = flag.String("style", "professional", "Message style: elegant, emotional, friendly, professional, exclusive, outreach")
		seed      = flag.Int64("seed", 0, "Random seed (0 = time-based)")
		count     = flag.Int("n", 1, "Number of messages to generate")
		vocabPath = flag.String("vocab", os.Getenv("GENERATOR_VOCAB"), "Optional YAML vocabulary overlay")
	)
	flag.Parse()

	// Load .env in development (ignores error if file doesn't exist).
	// In production, variables should be set directly.
	if os.Getenv("ENV") != "production" {
		if err := godotenv.Overload(".env"); err == nil {
			log.Printf("Loaded environment variables from .env")
		}
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	item, err := readItem(*itemPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read item")
	}

	vocab := generator.DefaultVocabulary()
	if *vocabPath != "" {
		overlay, err := generator.LoadVocabOverlay(*vocabPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *vocabPath).Msg("Failed to load vocabulary overlay")
		}
		vocab.Apply(overlay)
		log.Info().Str("path", *vocabPath).Msg("✅ Vocabulary overlay applied")
	}

	engine, err := generator.NewEngine(generator.DefaultConfig(), vocab)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create generator engine")
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	messages := service.NewMessageService(engine, rand.New(rand.NewSource(*seed)))

	for i := 0; i < *count; i++ {
		result := messages.Generate(models.GenerateRequest{Item: item, Style: *style})
		fmt.Println(result.Message)
		if i < *count-1 {
			fmt.Println()
		}
	}
}

func readItem(path string) (models.Item, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return models.Item{}, fmt.Errorf("failed to read item input: %w", err)
	}

	var item models.Item
	if err := json.Unmarshal(data, &item); err != nil {
		return models.Item{}, fmt.Errorf("failed to parse item JSON: %w", err)
	}
	return item, nil
}
