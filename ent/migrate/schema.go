// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// GenerationEventsColumns holds the columns for the "generation_events" table.
	GenerationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "subject", Type: field.TypeString},
		{Name: "unit_name", Type: field.TypeString},
		{Name: "topics", Type: field.TypeJSON},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "requested_count", Type: field.TypeInt},
		{Name: "returned_count", Type: field.TypeInt, Default: 0},
		{Name: "model", Type: field.TypeString, Default: ""},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// GenerationEventsTable holds the schema information for the "generation_events" table.
	GenerationEventsTable = &schema.Table{
		Name:       "generation_events",
		Columns:    GenerationEventsColumns,
		PrimaryKey: []*schema.Column{GenerationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "generationevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{GenerationEventsColumns[1]},
			},
			{
				Name:    "generationevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{GenerationEventsColumns[2]},
			},
			{
				Name:    "generationevent_subject",
				Unique:  false,
				Columns: []*schema.Column{GenerationEventsColumns[3]},
			},
			{
				Name:    "generationevent_success",
				Unique:  false,
				Columns: []*schema.Column{GenerationEventsColumns[11]},
			},
		},
	}
	// StatsSnapshotsColumns holds the columns for the "stats_snapshots" table.
	StatsSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// StatsSnapshotsTable holds the schema information for the "stats_snapshots" table.
	StatsSnapshotsTable = &schema.Table{
		Name:       "stats_snapshots",
		Columns:    StatsSnapshotsColumns,
		PrimaryKey: []*schema.Column{StatsSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "statssnapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{StatsSnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		GenerationEventsTable,
		StatsSnapshotsTable,
	}
)

func init() {
}
