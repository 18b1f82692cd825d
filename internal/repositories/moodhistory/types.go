package moodhistory

import "github.com/phrazzle/phrazzle/internal/models"

type AddEntryInput struct {
	Entry *models.MoodHistoryEntry
}

type GetEntriesInput struct {
	PlayerID string
}

type GetEntriesOutput struct {
	Entries []*models.MoodHistoryEntry
}
