package stories

import "context"

// Sweeper expires old stories on a schedule so the stories rail stays
// ephemeral.
type Sweeper interface {
	ScheduleSweep(ctx context.Context) error
}
