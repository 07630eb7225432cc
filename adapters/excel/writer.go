// Package excel renders wellness histories as spreadsheet downloads.
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"parmatma/domain/wellness"
	"parmatma/internal/errors"
)

const habitSheet = "Habit History"

// WriteHabitWorkbook builds an .xlsx workbook with one row per recorded day
// and, when a summary is available, a trailing summary block. The summary may
// be nil for histories too short to score.
func WriteHabitWorkbook(records []wellness.Record, summary *wellness.Summary) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(habitSheet)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create sheet")
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, errors.Wrap(err, "failed to drop default sheet")
	}

	headers := []interface{}{"Date", "Sleep (h)", "Exercise (min)", "Meal Quality", "Mood", "Sentiment"}
	if err := f.SetSheetRow(habitSheet, "A1", &headers); err != nil {
		return nil, errors.Wrap(err, "failed to write header row")
	}

	for i, r := range records {
		row := []interface{}{
			r.Date.Format("2006-01-02"),
			r.SleepHours,
			r.ExerciseMinutes,
			string(r.MealQuality),
			r.MoodText,
			r.Sentiment,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(habitSheet, cell, &row); err != nil {
			return nil, errors.Wrapf(err, "failed to write record row %d", i)
		}
	}

	if summary != nil {
		base := len(records) + 3
		block := [][]interface{}{
			{"Wellness Score", summary.WellnessScore},
			{"Sleep Average", summary.SleepAvg},
			{"Exercise Average", summary.ExerciseAvg},
			{"Meal Average", summary.MealAvg},
			{"Sentiment Average", summary.SentimentAvg},
			{"Prediction", summary.Prediction},
		}
		for i, row := range block {
			cell := fmt.Sprintf("A%d", base+i)
			if err := f.SetSheetRow(habitSheet, cell, &row); err != nil {
				return nil, errors.Wrap(err, "failed to write summary block")
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize workbook")
	}
	return buf, nil
}
