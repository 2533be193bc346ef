package summary

import "context"

type Fetcher interface {
	WeeklySummary(ctx context.Context, checkID string, r DateRange) ([]WeeklyRecord, error)
}
