package check

import "context"

type Lister interface {
	List(ctx context.Context) ([]Check, error)
}
