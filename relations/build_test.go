package relations_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/opendfg/ocpt/ocel"
	"github.com/opendfg/ocpt/relations"
)

func mkLog() *ocel.Log {
	t1 := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	return &ocel.Log{
		Objects: []ocel.Object{
			{ID: "o1", Type: "order"},
			{ID: "o2", Type: "item"},
		},
		Events: []ocel.Event{
			{ID: "e2", Type: "pack", Time: t1, Relationships: []ocel.Relationship{{ObjectID: "o1"}}},
			{ID: "e1", Type: "create", Time: t2, Relationships: []ocel.Relationship{{ObjectID: "o1"}, {ObjectID: "o2"}}},
		},
	}
}

func TestBuildOrdersByTimestampThenEventID(t *testing.T) {
	res, err := relations.Build(mkLog(), false)
	require.NoError(t, err)
	require.Len(t, res.Relations, 3)

	// e1 (09:00) precedes e2 (10:00) regardless of event-id sort order used
	// as the first pass.
	require.Equal(t, "e1", res.Relations[0].EventID)
	require.Equal(t, "e1", res.Relations[1].EventID)
	require.Equal(t, "e2", res.Relations[2].EventID)
}

func TestBuildMissingObjectStrict(t *testing.T) {
	log := mkLog()
	log.Events = append(log.Events, ocel.Event{
		ID: "e3", Type: "ship", Relationships: []ocel.Relationship{{ObjectID: "ghost"}},
	})

	_, err := relations.Build(log, false)
	require.ErrorIs(t, err, relations.ErrMissingObject)
}

func TestBuildMissingObjectPermissive(t *testing.T) {
	log := mkLog()
	log.Events = append(log.Events, ocel.Event{
		ID: "e3", Type: "ship", Relationships: []ocel.Relationship{{ObjectID: "ghost"}},
	})

	res, err := relations.Build(log, true)
	require.NoError(t, err)
	require.Len(t, res.Relations, 3)
	require.Len(t, res.Warnings, 1)
}
