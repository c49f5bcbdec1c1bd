package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/quizforge/quizforge-backend/internal/config"
	"github.com/quizforge/quizforge-backend/internal/database"
	"github.com/quizforge/quizforge-backend/internal/logger"
	"github.com/quizforge/quizforge-backend/internal/model"
	"github.com/quizforge/quizforge-backend/internal/repository"
)

const sampleTitle = "General Knowledge"

// seedQuestion mirrors the batch-add payload: option texts plus the index
// of the correct one.
type seedQuestion struct {
	text         string
	options      []string
	correctIndex int
}

var sampleQuestions = []seedQuestion{
	{"What is the capital of France?", []string{"Paris", "Lyon", "Marseille"}, 0},
	{"Which planet is known as the Red Planet?", []string{"Venus", "Mars", "Jupiter"}, 1},
	{"How many continents are there?", []string{"Five", "Six", "Seven"}, 2},
}

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	quizRepo := repository.NewQuizRepository(pool)
	questionRepo := repository.NewQuestionRepository(pool)

	fmt.Println("=== Seeding sample quiz ===")

	// Skip when a quiz with the sample title already exists.
	quizzes, err := quizRepo.GetAll(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to list quizzes")
	}
	for _, q := range quizzes {
		if q.Title == sampleTitle {
			fmt.Printf("Quiz %q already exists (%s), nothing to do\n", sampleTitle, q.ID)
			return
		}
	}

	quiz := &model.Quiz{
		ID:        uuid.New(),
		Title:     sampleTitle,
		TimeLimit: cfg.DefaultTimeLimit,
	}
	if err := quizRepo.Create(ctx, quiz); err != nil {
		log.Fatal().Err(err).Msg("Failed to create quiz")
	}

	entries := make([]repository.BatchEntry, 0, len(sampleQuestions))
	for _, sq := range sampleQuestions {
		questionID := uuid.New()
		entry := repository.BatchEntry{
			Question: model.Question{
				ID:     questionID,
				QuizID: quiz.ID,
				Text:   sq.text,
			},
		}
		for i, text := range sq.options {
			opt := model.Option{ID: uuid.New(), QuestionID: questionID, Text: text}
			if i == sq.correctIndex {
				entry.Question.CorrectOptionID = opt.ID
			}
			entry.Options = append(entry.Options, opt)
		}
		entries = append(entries, entry)
	}

	if err := questionRepo.CreateBatch(ctx, entries); err != nil {
		log.Fatal().Err(err).Msg("Failed to insert questions")
	}

	fmt.Printf("Seeded quiz %q (%s) with %d questions\n", sampleTitle, quiz.ID, len(entries))
}
