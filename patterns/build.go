package patterns

import (
	"sort"
	"strings"

	"github.com/opendfg/ocpt/model"
)

// Build computes the full interaction-pattern result from a flat relation
// set (spec §4.2). rels need not be sorted.
func Build(rels []model.Relation) *model.Patterns {
	allActivities := map[string]struct{}{}
	allObjectTypes := map[string]struct{}{}
	eventActivity := map[string]string{}
	objectType := map[string]string{}
	eventObjectsSet := map[string]map[string]struct{}{}
	activityEvents := map[string]map[string]struct{}{}
	activityOtypeEvents := map[string]map[string]map[string]struct{}{}
	eventOtypeObjects := map[string]map[string]map[string]struct{}{}

	for _, r := range rels {
		allActivities[r.Activity] = struct{}{}
		allObjectTypes[r.ObjectType] = struct{}{}
		eventActivity[r.EventID] = r.Activity
		objectType[r.ObjectID] = r.ObjectType

		if eventObjectsSet[r.EventID] == nil {
			eventObjectsSet[r.EventID] = map[string]struct{}{}
		}
		eventObjectsSet[r.EventID][r.ObjectID] = struct{}{}

		if activityEvents[r.Activity] == nil {
			activityEvents[r.Activity] = map[string]struct{}{}
		}
		activityEvents[r.Activity][r.EventID] = struct{}{}

		if activityOtypeEvents[r.Activity] == nil {
			activityOtypeEvents[r.Activity] = map[string]map[string]struct{}{}
		}
		if activityOtypeEvents[r.Activity][r.ObjectType] == nil {
			activityOtypeEvents[r.Activity][r.ObjectType] = map[string]struct{}{}
		}
		activityOtypeEvents[r.Activity][r.ObjectType][r.EventID] = struct{}{}

		if eventOtypeObjects[r.EventID] == nil {
			eventOtypeObjects[r.EventID] = map[string]map[string]struct{}{}
		}
		if eventOtypeObjects[r.EventID][r.ObjectType] == nil {
			eventOtypeObjects[r.EventID][r.ObjectType] = map[string]struct{}{}
		}
		eventOtypeObjects[r.EventID][r.ObjectType][r.ObjectID] = struct{}{}
	}

	activities := sortedKeys(allActivities)
	objectTypes := sortedKeys(allObjectTypes)

	related := map[string]map[string]struct{}{}
	deficient := map[string]map[string]struct{}{}
	convergent := map[string]map[string]struct{}{}
	divergent := map[string]map[string]struct{}{}
	for _, a := range activities {
		related[a] = cloneSet(allObjectTypes)
		deficient[a] = map[string]struct{}{}
		convergent[a] = map[string]struct{}{}
		divergent[a] = map[string]struct{}{}
	}

	// related / deficient: compare, per activity, the number of distinct
	// events touching an object of each type against the activity's total
	// distinct event count.
	for _, a := range activities {
		total := len(activityEvents[a])
		for _, ot := range objectTypes {
			count := len(activityOtypeEvents[a][ot])
			if count == total {
				continue
			}
			if count > 0 {
				deficient[a][ot] = struct{}{}
			}
			delete(related[a], ot)
		}
	}

	// convergent / divergent: analyzed per (object type, activity) pair over
	// the events of that activity that touch at least one object of that
	// type.
	for _, ot := range objectTypes {
		eventsByActivity := map[string][]string{}
		for eid, otypes := range eventOtypeObjects {
			if len(otypes[ot]) == 0 {
				continue
			}
			a := eventActivity[eid]
			eventsByActivity[a] = append(eventsByActivity[a], eid)
		}

		for _, a := range activities {
			events := eventsByActivity[a]
			if len(events) == 0 {
				continue
			}

			hasConvergent := false
			for _, eid := range events {
				if len(eventOtypeObjects[eid][ot]) > 1 {
					hasConvergent = true
					break
				}
			}
			if hasConvergent {
				convergent[a][ot] = struct{}{}
			}

			eventsByObjectSet := map[string][]string{}
			for _, eid := range events {
				key := sortedJoin(eventOtypeObjects[eid][ot])
				eventsByObjectSet[key] = append(eventsByObjectSet[key], eid)
			}

			hasDivergent := false
			for _, eids := range eventsByObjectSet {
				uniqueAllSets := map[string]struct{}{}
				for _, eid := range eids {
					uniqueAllSets[sortedJoin(eventObjectsSet[eid])] = struct{}{}
				}
				if len(uniqueAllSets) > 1 {
					hasDivergent = true
					break
				}
			}
			if hasDivergent {
				divergent[a][ot] = struct{}{}
			}
		}
	}

	byActivity := make(map[string]model.ActivitySets, len(activities))
	for _, a := range activities {
		byActivity[a] = model.ActivitySets{
			Related:    sortedKeys(related[a]),
			Deficient:  sortedKeys(deficient[a]),
			Convergent: sortedKeys(convergent[a]),
			Divergent:  sortedKeys(divergent[a]),
		}
	}

	return &model.Patterns{
		ByActivity:  byActivity,
		Activities:  activities,
		ObjectTypes: objectTypes,
	}
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

func cloneSet(m map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(m))
	for k := range m {
		out[k] = struct{}{}
	}

	return out
}

func sortedJoin(m map[string]struct{}) string {
	keys := sortedKeys(m)

	return strings.Join(keys, "\x00")
}
