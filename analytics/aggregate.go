package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/Intelligent-Systems-Design-Lab-SRM/attendance-backend/models"
)

// WeeklyOccupancy groups events by calendar date in loc and counts the
// distinct tags seen each day. Any event counts the tag as having visited;
// dates with no events produce no sample. Samples are sorted by date.
func WeeklyOccupancy(events []models.AttendanceEvent, loc *time.Location) []models.DailyOccupancySample {
	byDate := make(map[string]map[string]struct{})
	for _, ev := range events {
		date := ev.Timestamp.In(loc).Format("2006-01-02")
		tags, ok := byDate[date]
		if !ok {
			tags = make(map[string]struct{})
			byDate[date] = tags
		}
		tags[ev.RFIDUID] = struct{}{}
	}

	samples := make([]models.DailyOccupancySample, 0, len(byDate))
	for date, tags := range byDate {
		samples = append(samples, models.DailyOccupancySample{
			Date:           date,
			OccupancyCount: len(tags),
		})
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i].Date < samples[j].Date })
	return samples
}

// RushHours counts today's IN events per hour of day in loc and returns the
// non-empty buckets busiest-first. Ties break toward the earlier hour so the
// ordering is deterministic.
func RushHours(events []models.AttendanceEvent, loc *time.Location) []models.HourlyCheckInBucket {
	counts := make(map[int]int)
	for _, ev := range events {
		if ev.EventType != models.EventIn {
			continue
		}
		counts[ev.Timestamp.In(loc).Hour()]++
	}

	hours := make([]int, 0, len(counts))
	for h := range counts {
		hours = append(hours, h)
	}
	sort.Slice(hours, func(i, j int) bool {
		if counts[hours[i]] != counts[hours[j]] {
			return counts[hours[i]] > counts[hours[j]]
		}
		return hours[i] < hours[j]
	})

	buckets := make([]models.HourlyCheckInBucket, 0, len(hours))
	for _, h := range hours {
		buckets = append(buckets, models.HourlyCheckInBucket{
			Hour:     fmt.Sprintf("%d:00", h),
			CheckIns: counts[h],
		})
	}
	return buckets
}
