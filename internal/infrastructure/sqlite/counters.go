package sqlite

import "context"

// Counters bundles the per-table count queries the report aggregations use.
type Counters struct {
	Users         *UserRepo
	Notifications *NotificationRepo
	Tasks         *TaskRepo
	Classes       *ClassRepo
	Students      *StudentRepo
}

func (c *Counters) CountUsers(ctx context.Context) (int, error) {
	return c.Users.Count(ctx)
}

func (c *Counters) CountNotifications(ctx context.Context) (int, error) {
	return c.Notifications.Count(ctx)
}

func (c *Counters) CountTasksByStatus(ctx context.Context, status string) (int, error) {
	return c.Tasks.CountByStatus(ctx, status)
}

func (c *Counters) CountClasses(ctx context.Context) (int, error) {
	return c.Classes.Count(ctx)
}

func (c *Counters) CountRecommendations(ctx context.Context) (int, error) {
	return c.Students.CountRecommendations(ctx)
}
