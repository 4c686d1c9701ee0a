package socow

import "github.com/pkg/errors"

// wrapf annotates err with the operation that triggered it, following the
// github.com/pkg/errors convention used across the frigg/tempo lineage
// (e.g. cmd/frigg/app/config.go) instead of bare fmt.Errorf chains.
func wrapf(err error, op string) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, "socow: %s", op)
}
