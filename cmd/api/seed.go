package main

import (
	"context"
	"fmt"
	"time"

	"github.com/BruksfildServices01/gym-scheduler/internal/config"
	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

type trainerSeeder interface {
	SaveTrainer(ctx context.Context, trainer *models.Trainer) error
	ReplaceWeeklyAvailability(ctx context.Context, trainerID uint, weekly domain.WeeklyAvailability) error
}

func seedTrainers(ctx context.Context, dst trainerSeeder, seeds []config.SeedTrainer) error {
	for _, s := range seeds {
		weekly := make(domain.WeeklyAvailability, 0, len(s.Days))
		for _, d := range s.Days {
			hours := make([]domain.TimeSlot, 0, len(d.WorkingHours))
			for _, h := range d.WorkingHours {
				hours = append(hours, domain.TimeSlot{Start: h.Start, End: h.End})
			}
			weekly = append(weekly, domain.DayAvailability{
				Weekday:      time.Weekday(d.DayOfWeek),
				Available:    d.Available,
				WorkingHours: hours,
			})
		}
		if err := weekly.Validate(); err != nil {
			return fmt.Errorf("trainer %d: %w", s.ID, err)
		}

		trainer := &models.Trainer{ID: s.ID, Name: s.Name, Email: s.Email, Active: true}
		if err := dst.SaveTrainer(ctx, trainer); err != nil {
			return err
		}
		if err := dst.ReplaceWeeklyAvailability(ctx, s.ID, weekly); err != nil {
			return err
		}
	}
	return nil
}
