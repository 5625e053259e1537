package scenefile

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// LoadAll loads several scene files concurrently. Results keep the order
// of paths. All files are attempted; the errors of failed ones are joined.
func LoadAll(paths []string, workers int) ([]*Scene, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, len(paths))

	var panicErr error
	var panicMu sync.Mutex
	pool, err := ants.NewPool(workers, ants.WithPanicHandler(func(p any) {
		panicMu.Lock()
		panicErr = fmt.Errorf("scenefile: loader panic: %v", p)
		panicMu.Unlock()
	}))
	if err != nil {
		return nil, fmt.Errorf("scenefile: cannot create worker pool: %w", err)
	}
	defer pool.Release()

	scenes := make([]*Scene, len(paths))
	errs := make([]error, len(paths))
	var wg sync.WaitGroup

	for i, p := range paths {
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			scenes[i], errs[i] = Load(p)
		})
		if submitErr != nil {
			wg.Done()
			errs[i] = fmt.Errorf("scenefile: cannot schedule %s: %w", p, submitErr)
		}
	}
	wg.Wait()

	errs = append(errs, panicErr)
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return scenes, nil
}
