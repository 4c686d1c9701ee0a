package main

import (
	"github.com/go-kit/log"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/CPP-KT/socow-vector-task/pkg/socow"
)

// smallBuf is the workload vector's inline capacity. 8 is large enough
// that the early pushes exercise small mode before promotion.
type smallBuf = [8]int

type workloadConfig struct {
	logger   log.Logger
	reg      prometheus.Registerer
	elements int
	forks    int
}

type workloadResult struct {
	finalLen        int
	finalCap        int
	promotedToLarge bool
	forksTaken      int
}

// runWorkload pushes elements into a vector, periodically forking it with
// Clone to force copy-on-write detaches, and at each fork inserting into
// the middle and erasing the first element, exercising every growth and detach path a
// unit test wouldn't necessarily hit at this volume.
func runWorkload(cfg workloadConfig) (workloadResult, error) {
	v := socow.New[int, smallBuf](
		socow.WithLogger[int, smallBuf](cfg.logger),
		socow.WithMetrics[int, smallBuf](cfg.reg),
	)

	forkEvery := cfg.elements / max(cfg.forks, 1)
	if forkEvery == 0 {
		forkEvery = 1
	}

	var forks []*socow.Vector[int, smallBuf]
	forksTaken := 0

	for i := 0; i < cfg.elements; i++ {
		if err := v.PushBack(i); err != nil {
			return workloadResult{}, errors.Wrapf(err, "push back %d", i)
		}

		if i > 0 && i%forkEvery == 0 {
			fork, err := v.Clone()
			if err != nil {
				return workloadResult{}, errors.Wrap(err, "clone fork")
			}
			forks = append(forks, fork)
			forksTaken++

			if _, err := v.Insert(v.Len()/2, -i); err != nil {
				return workloadResult{}, errors.Wrap(err, "insert into middle")
			}
			if _, err := v.Erase(0); err != nil {
				return workloadResult{}, errors.Wrap(err, "erase first")
			}
		}
	}

	for _, fork := range forks {
		if err := fork.Close(); err != nil {
			return workloadResult{}, errors.Wrap(err, "close fork")
		}
	}

	result := workloadResult{
		finalLen:        v.Len(),
		finalCap:        v.Cap(),
		promotedToLarge: !v.IsSmall(),
		forksTaken:      forksTaken,
	}
	return result, v.Close()
}
