package classify

import (
	"context"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// WarmReferences precomputes and caches the exemplar embeddings for every
// level ahead of the first classification. Levels are embedded
// concurrently on a worker pool; the first error encountered is returned
// after all workers finish.
func (c *ExperienceClassifier) WarmReferences(ctx context.Context) error {
	pool, err := ants.NewPool(len(Levels))
	if err != nil {
		return err
	}
	defer pool.Release()

	var wg sync.WaitGroup
	errs := make([]error, len(Levels))

	for i, level := range Levels {
		if len(c.references[level]) == 0 {
			continue
		}

		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			if _, err := c.referenceEmbeddings(ctx, level); err != nil {
				errs[i] = err
			}
		})
		if submitErr != nil {
			wg.Done()
			errs[i] = submitErr
		}
	}

	wg.Wait()

	for i, err := range errs {
		if err != nil {
			c.logger.Warn("reference warm-up failed", "level", Levels[i], "error", err)
			return err
		}
	}

	c.logger.Debug("reference embeddings warmed", "levels", len(Levels))
	return nil
}
