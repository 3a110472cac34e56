package records

// Messages is the per-entity message table used to fill envelopes.
type Messages struct {
	Succeeded string
	Created   string
	Updated   string
	Deleted   string
	NotFound  string
	Failure   string
}

// DefaultMessages returns the message table for the named entity.
func DefaultMessages(entity string) Messages {
	return Messages{
		Succeeded: "succeeded",
		Created:   "created",
		Updated:   "updated",
		Deleted:   "deleted",
		NotFound:  "no data found",
		Failure:   entity + " unknown failure",
	}
}
