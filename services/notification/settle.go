package notification

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Outcome is the settled result of one concurrent task.
type Outcome struct {
	Name string
	Err  error
}

type task struct {
	name string
	run  func(ctx context.Context) error
}

// settleAll runs every task concurrently and waits for all of them. A failing
// task never aborts its siblings; each outcome is collected so the caller can
// report partial failure instead of losing it.
func settleAll(ctx context.Context, tasks []task) []Outcome {
	outcomes := make([]Outcome, len(tasks))

	var wg sync.WaitGroup
	for i, t := range tasks {
		wg.Add(1)
		go func(i int, t task) {
			defer wg.Done()
			outcomes[i] = Outcome{Name: t.name, Err: t.run(ctx)}
		}(i, t)
	}
	wg.Wait()

	return outcomes
}

// joinOutcomes folds settled outcomes into a single error, nil when all
// tasks succeeded.
func joinOutcomes(outcomes []Outcome) error {
	var errs []error
	for _, o := range outcomes {
		if o.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", o.Name, o.Err))
		}
	}
	return errors.Join(errs...)
}
