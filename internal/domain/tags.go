package domain

// TagPlan is the outcome of reconciling an item's tag associations
// against a requested tag set.
type TagPlan struct {
	Keep   []TodoItemTag
	Remove []TodoItemTag
	Add    []TodoItemTag
}

// Changed reports whether applying the plan touches any association.
func (p TagPlan) Changed() bool {
	return len(p.Remove) > 0 || len(p.Add) > 0
}

// Result is the association set after the plan is applied.
func (p TagPlan) Result() []TodoItemTag {
	out := make([]TodoItemTag, 0, len(p.Keep)+len(p.Add))
	out = append(out, p.Keep...)
	return append(out, p.Add...)
}

// ReconcileTags computes the associations to keep, remove and add so that the
// item ends up linked to exactly the distinct tag ids in requested.
// Current associations for unrequested tags are removed, as are duplicate
// associations for the same tag (the first one is kept).
func ReconcileTags(itemID int64, current []TodoItemTag, requested []int64) TagPlan {
	var plan TagPlan
	if len(requested) == 0 && len(current) == 0 {
		return plan
	}

	wanted := make(map[int64]struct{}, len(requested))
	for _, id := range requested {
		wanted[id] = struct{}{}
	}

	linked := make(map[int64]struct{}, len(current))
	for _, assoc := range current {
		_, keep := wanted[assoc.TagID]
		_, seen := linked[assoc.TagID]
		if keep && !seen {
			linked[assoc.TagID] = struct{}{}
			plan.Keep = append(plan.Keep, assoc)
			continue
		}
		plan.Remove = append(plan.Remove, assoc)
	}

	for _, id := range requested {
		if _, ok := linked[id]; ok {
			continue
		}
		linked[id] = struct{}{}
		plan.Add = append(plan.Add, TodoItemTag{TodoItemID: itemID, TagID: id})
	}
	return plan
}
