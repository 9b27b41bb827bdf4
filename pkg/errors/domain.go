package custom_error

import "fmt"

// InvalidTransitionError reports a lifecycle precondition violation:
// the asset was not in the status the requested operation demands.
type InvalidTransitionError struct {
	AssetID int
	From    string
	To      string
	Message string
}

func (e *InvalidTransitionError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("asset %d cannot move from %s to %s", e.AssetID, e.From, e.To)
}

// ReferencedEntityError blocks a delete while dependent rows still exist.
type ReferencedEntityError struct {
	Message string
	Count   int
}

func (e *ReferencedEntityError) Error() string {
	return e.Message
}

type NotFoundError struct {
	Entity string
	ID     int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %d", e.Entity, e.ID)
}
