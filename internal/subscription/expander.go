package subscription

// GenerationTarget is one recipient the weekly batch must build a menu for.
type GenerationTarget struct {
	SubscriptionID int64
	UserID         int64
	MealsPerWeek   int
	IsGroupMember  bool
	GroupID        int64
}

// MealsPerDay is the weekly quota spread over 7 days, rounded up.
func (t GenerationTarget) MealsPerDay() int {
	if t.MealsPerWeek <= 0 {
		return 1
	}
	return (t.MealsPerWeek + 6) / 7
}

// Expand flattens subscriptions into one target per human recipient.
// Removed group members are skipped.
func Expand(subs []Subscription) []GenerationTarget {
	var targets []GenerationTarget
	for _, sub := range subs {
		weekly := normalizedMealsPerDay(sub.MealsPerDay) * 7

		if !sub.IsGroup() {
			targets = append(targets, GenerationTarget{
				SubscriptionID: sub.ID,
				UserID:         sub.UserID,
				MealsPerWeek:   weekly,
			})
			continue
		}

		for _, m := range sub.Members {
			if m.Removed {
				continue
			}
			quota := weekly
			if m.MealsPerWeek > 0 {
				quota = m.MealsPerWeek
			}
			targets = append(targets, GenerationTarget{
				SubscriptionID: sub.ID,
				UserID:         m.UserID,
				MealsPerWeek:   quota,
				IsGroupMember:  true,
				GroupID:        sub.GroupID,
			})
		}
	}
	return targets
}

func normalizedMealsPerDay(n int) int {
	if n <= 0 {
		return 1
	}
	return n
}
