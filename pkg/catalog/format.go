package catalog

import "fmt"

// FormatViews renders a view count the way video platforms abbreviate them:
// "2.5M views", "1.5K views", or "999 views". Counts are floored by the
// division, not rounded up a tier.
func FormatViews(count int) string {
	switch {
	case count >= 1_000_000:
		return fmt.Sprintf("%.1fM views", float64(count)/1_000_000)
	case count >= 1_000:
		return fmt.Sprintf("%.1fK views", float64(count)/1_000)
	default:
		return fmt.Sprintf("%d views", count)
	}
}

// FormatAge renders an age in days as a coarse relative time. All divisions
// are integer divisions; 45 days is "1 months ago", 400 days "1 years ago".
func FormatAge(days int) string {
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "1 day ago"
	case days < 30:
		return fmt.Sprintf("%d days ago", days)
	}
	months := days / 30
	if months < 12 {
		return fmt.Sprintf("%d months ago", months)
	}
	return fmt.Sprintf("%d years ago", months/12)
}

// FormatMeta renders the single-line metadata shown under a video card:
// channel, formatted view count, and relative age separated by bullets.
func FormatMeta(v VideoRecord) string {
	return fmt.Sprintf("%s • %s • %s", v.Channel, FormatViews(v.Views), FormatAge(v.AgeDays))
}
