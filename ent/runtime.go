// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/ent/generationevent"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/ent/schema"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/ent/statssnapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	generationeventMixin := schema.GenerationEvent{}.Mixin()
	generationeventMixinFields0 := generationeventMixin[0].Fields()
	_ = generationeventMixinFields0
	generationeventFields := schema.GenerationEvent{}.Fields()
	_ = generationeventFields
	// generationeventDescTimestamp is the schema descriptor for timestamp field.
	generationeventDescTimestamp := generationeventMixinFields0[1].Descriptor()
	// generationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	generationevent.DefaultTimestamp = generationeventDescTimestamp.Default.(func() time.Time)
	// generationeventDescReturnedCount is the schema descriptor for returned_count field.
	generationeventDescReturnedCount := generationeventFields[5].Descriptor()
	// generationevent.DefaultReturnedCount holds the default value on creation for the returned_count field.
	generationevent.DefaultReturnedCount = generationeventDescReturnedCount.Default.(int)
	// generationeventDescModel is the schema descriptor for model field.
	generationeventDescModel := generationeventFields[6].Descriptor()
	// generationevent.DefaultModel holds the default value on creation for the model field.
	generationevent.DefaultModel = generationeventDescModel.Default.(string)
	// generationeventDescLatencyMs is the schema descriptor for latency_ms field.
	generationeventDescLatencyMs := generationeventFields[7].Descriptor()
	// generationevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	generationevent.DefaultLatencyMs = generationeventDescLatencyMs.Default.(int64)
	// generationeventDescErrorMessage is the schema descriptor for error_message field.
	generationeventDescErrorMessage := generationeventFields[9].Descriptor()
	// generationevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	generationevent.DefaultErrorMessage = generationeventDescErrorMessage.Default.(string)
	statssnapshotFields := schema.StatsSnapshot{}.Fields()
	_ = statssnapshotFields
	// statssnapshotDescTimestamp is the schema descriptor for timestamp field.
	statssnapshotDescTimestamp := statssnapshotFields[0].Descriptor()
	// statssnapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	statssnapshot.DefaultTimestamp = statssnapshotDescTimestamp.Default.(func() time.Time)
}
