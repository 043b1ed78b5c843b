package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/mydiary/journal-insights/internal/domain"
	"gorm.io/gorm"
)

const seededDays = 60

// Run seeds the database with sample users and journal entries. Safe to call
// multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.Entry{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	users := []domain.User{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Timezone: "Europe/Amsterdam", DailyGoal: 1, WeeklyGoal: 7},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Timezone: "America/New_York", DailyGoal: 2, WeeklyGoal: 10},
		{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Timezone: "Asia/Tokyo", DailyGoal: 1, WeeklyGoal: 5},
	}

	for _, user := range users {
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, user := range users {
		if err := seedEntriesForUser(db, user, rng); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

var sampleMoods = []domain.Mood{
	domain.MoodHappy, domain.MoodExcited, domain.MoodCalm, domain.MoodNeutral,
	domain.MoodTired, domain.MoodAnxious, domain.MoodSad, domain.MoodAngry,
}

var sampleEntries = []struct {
	title   string
	content string
}{
	{"Morning pages", "Woke up early and went running before work. Feeling grateful for the peaceful morning and the energy it gave me."},
	{"Long day", "Work was exhausting today, back to back meetings and a looming deadline. Feeling tired and a little overwhelmed."},
	{"Family dinner", "Had dinner with my sister and her family. We talked about our childhood memories and laughed for hours. Wonderful evening."},
	{"Quiet evening", "Spent the evening reading and drinking tea. Nothing special happened, just a calm ordinary day."},
	{"Big win", "The presentation went great and my boss was really happy with the project. Proud of the progress we made as a team."},
	{"Rough patch", "Argued with my partner again. Feeling sad and frustrated, hard to focus on anything else."},
	{"Fresh start", "Started a new meditation habit this morning. Hopeful that mindfulness will help with the anxiety I have been carrying."},
	{"Weekend hike", "Went hiking with friends in the hills. Amazing views, sore legs, happy heart."},
	{"Late night thoughts", "Could not sleep, kept thinking about the interview next week. Worried but also excited about the possible change."},
	{"Creative spark", "Spent two hours painting after dinner. Lost track of time completely. Feeling accomplished and relaxed."},
}

func seedEntriesForUser(db *gorm.DB, user domain.User, rng *rand.Rand) error {
	now := time.Now().UTC()
	for i := 0; i < seededDays; i++ {
		// Skip some days so streaks and consistency have texture.
		if rng.Float32() < 0.25 {
			continue
		}

		date := now.AddDate(0, 0, -i)
		occurredAt := time.Date(date.Year(), date.Month(), date.Day(), 7+rng.Intn(16), rng.Intn(60), 0, 0, time.UTC)
		if occurredAt.After(now) {
			occurredAt = now.Add(-time.Duration(rng.Intn(120)) * time.Minute)
		}

		sample := sampleEntries[rng.Intn(len(sampleEntries))]
		var mood *domain.Mood
		if rng.Float32() < 0.8 {
			m := sampleMoods[rng.Intn(len(sampleMoods))]
			mood = &m
		}

		clientReqID := fmt.Sprintf("seed-entry-%s-%d", user.ID, i)
		entry := domain.Entry{
			UserID:          user.ID,
			Title:           sample.title,
			Content:         sample.content,
			Mood:            mood,
			WordCount:       domain.CountWords(sample.content),
			OccurredAt:      occurredAt,
			ClientRequestID: &clientReqID,
		}

		if err := db.Where("client_request_id = ?", clientReqID).FirstOrCreate(&entry).Error; err != nil {
			return fmt.Errorf("failed to create entry: %w", err)
		}
	}
	return nil
}
