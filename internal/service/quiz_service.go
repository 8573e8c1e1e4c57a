package service

import (
	"fmt"
	"math"
	"time"

	"learntrack_backend/internal/model"
	"learntrack_backend/internal/repository"
	"learntrack_backend/internal/util"
)

type QuizService struct {
	QuizRepo     *repository.QuizRepository
	TopicRepo    *repository.TopicRepository
	Gamification *GamificationService
}

func NewQuizService(quizRepo *repository.QuizRepository, topicRepo *repository.TopicRepository, gamification *GamificationService) *QuizService {
	return &QuizService{
		QuizRepo:     quizRepo,
		TopicRepo:    topicRepo,
		Gamification: gamification,
	}
}

func (s *QuizService) GetQuizzesByTopic(topicID uint) ([]model.Quiz, error) {
	if _, err := s.TopicRepo.FindByID(topicID); err != nil {
		return nil, util.ErrTopicNotFound
	}
	return s.QuizRepo.FindByTopic(topicID)
}

// QuizWithQuestions is a quiz plus its question list, as returned by the
// generator and by the quiz detail endpoint.
type QuizWithQuestions struct {
	Quiz      model.Quiz           `json:"quiz"`
	Questions []model.QuizQuestion `json:"questions"`
}

func (s *QuizService) GetQuiz(quizID uint) (*QuizWithQuestions, error) {
	quiz, err := s.QuizRepo.FindByID(quizID)
	if err != nil {
		return nil, util.ErrQuizNotFound
	}
	questions, err := s.QuizRepo.FindQuestionsByQuiz(quizID)
	if err != nil {
		return nil, err
	}
	return &QuizWithQuestions{Quiz: *quiz, Questions: questions}, nil
}

// GenerateQuizForTopic creates and persists a five-question quiz from fixed
// templates parameterized by the topic title. Each call produces a new quiz.
func (s *QuizService) GenerateQuizForTopic(topicID uint) (*QuizWithQuestions, error) {
	topic, err := s.TopicRepo.FindByID(topicID)
	if err != nil {
		return nil, util.ErrTopicNotFound
	}

	quiz := &model.Quiz{
		TopicID:      topicID,
		Title:        fmt.Sprintf("Quiz on %s", topic.Title),
		Description:  fmt.Sprintf("Test your knowledge on %s", topic.Title),
		Difficulty:   1,
		PointsToEarn: 10,
	}
	if err := s.QuizRepo.Create(quiz); err != nil {
		return nil, err
	}

	templates := questionTemplates(topic.Title)
	questions := make([]model.QuizQuestion, 0, len(templates))
	for _, q := range templates {
		q.QuizID = quiz.ID
		if err := s.QuizRepo.CreateQuestion(&q); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return &QuizWithQuestions{Quiz: *quiz, Questions: questions}, nil
}

func questionTemplates(title string) []model.QuizQuestion {
	return []model.QuizQuestion{
		{
			QuestionText: fmt.Sprintf("What is the main purpose of %s?", title),
			QuestionType: model.MultipleChoice,
			Options: []string{
				"To improve application performance",
				"To enhance security features",
				"To simplify complex processes",
				"To standardize coding practices",
			},
			CorrectAnswer: "To simplify complex processes",
			Explanation:   fmt.Sprintf("The main purpose of %s is to simplify complex processes, making development more efficient.", title),
		},
		{
			QuestionText:  fmt.Sprintf("Is %s commonly used in modern web development?", title),
			QuestionType:  model.TrueFalse,
			Options:       []string{"True", "False"},
			CorrectAnswer: "True",
			Explanation:   fmt.Sprintf("Yes, %s is widely adopted in modern web development practices.", title),
		},
		{
			QuestionText: fmt.Sprintf("Which of the following is NOT associated with %s?", title),
			QuestionType: model.MultipleChoice,
			Options: []string{
				"Code reusability",
				"Automated testing",
				"Manual deployment processes",
				"Continuous integration",
			},
			CorrectAnswer: "Manual deployment processes",
			Explanation:   fmt.Sprintf("%s promotes automation and efficiency, so manual deployment processes are generally not associated with it.", title),
		},
		{
			QuestionText:  fmt.Sprintf("%s requires specialized hardware to implement.", title),
			QuestionType:  model.TrueFalse,
			Options:       []string{"True", "False"},
			CorrectAnswer: "False",
			Explanation:   fmt.Sprintf("%s is a software/methodological approach that doesn't typically require specialized hardware.", title),
		},
		{
			QuestionText: fmt.Sprintf("Which of these companies is known for pioneering %s?", title),
			QuestionType: model.MultipleChoice,
			Options: []string{
				"Google",
				"Amazon",
				"Microsoft",
				"All of the above",
			},
			CorrectAnswer: "All of the above",
			Explanation:   fmt.Sprintf("Google, Amazon, and Microsoft have all made significant contributions to the development and adoption of %s.", title),
		},
	}
}

// AnswerSubmission is one graded answer inside an attempt submission. Grading
// happens client-side; the server trusts the submitted score.
type AnswerSubmission struct {
	QuestionID uint   `json:"questionId" binding:"required"`
	UserAnswer string `json:"userAnswer"`
	IsCorrect  bool   `json:"isCorrect"`
}

// AttemptResult is a recorded attempt with its saved answers.
type AttemptResult struct {
	Attempt model.UserQuizAttempt  `json:"attempt"`
	Answers []model.UserQuizAnswer `json:"answers"`
}

// RecordAttempt saves an attempt and its answers, awards points proportional
// to the score, and runs the quiz achievement checks.
func (s *QuizService) RecordAttempt(userID, quizID uint, score, maxScore int, answers []AnswerSubmission) (*AttemptResult, error) {
	quiz, err := s.QuizRepo.FindByID(quizID)
	if err != nil {
		return nil, util.ErrQuizNotFound
	}

	attempt := &model.UserQuizAttempt{
		UserID:      userID,
		QuizID:      quizID,
		Score:       score,
		MaxScore:    maxScore,
		CompletedAt: time.Now(),
	}
	if err := s.QuizRepo.CreateAttempt(attempt); err != nil {
		return nil, err
	}

	saved := make([]model.UserQuizAnswer, 0, len(answers))
	for _, a := range answers {
		answer := model.UserQuizAnswer{
			AttemptID:  attempt.ID,
			QuestionID: a.QuestionID,
			UserAnswer: a.UserAnswer,
			IsCorrect:  a.IsCorrect,
		}
		if err := s.QuizRepo.CreateAnswer(&answer); err != nil {
			return nil, err
		}
		saved = append(saved, answer)
	}

	if maxScore > 0 {
		points := int(math.Round(float64(quiz.PointsToEarn) * float64(score) / float64(maxScore)))
		if points > 0 {
			if _, err := s.Gamification.AddPoints(userID, points); err != nil {
				return nil, err
			}
		}
	}

	perfectCount := 0
	if score == maxScore {
		if count, err := s.QuizRepo.CountPerfectAttemptsByUser(userID); err == nil {
			perfectCount = int(count)
		}
	}
	attemptCount := 0
	if count, err := s.QuizRepo.CountAttemptsByUser(userID); err == nil {
		attemptCount = int(count)
	}
	s.Gamification.CheckQuizAchievements(userID, perfectCount, attemptCount)

	return &AttemptResult{Attempt: *attempt, Answers: saved}, nil
}

// GetUserAttempts lists a user's attempts, optionally filtered to one quiz
// (quizID 0 means all).
func (s *QuizService) GetUserAttempts(userID, quizID uint) ([]model.UserQuizAttempt, error) {
	return s.QuizRepo.FindAttemptsByUser(userID, quizID)
}
