package mongodb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizeRow_ConvertsDriverTypes(t *testing.T) {
	oid := primitive.NewObjectID()
	stamp := primitive.NewDateTimeFromTime(time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC))

	row := normalizeRow(bson.M{
		"_id":       oid,
		"id":        "m1",
		"specialty": primitive.A{"defi", "l2"},
		"meta":      bson.M{"count": int32(3), "nested": primitive.A{int64(7)}},
		"attendees": int32(80),
		"total":     int64(1200),
		"date":      stamp,
		"ref":       oid,
	})

	_, hasObjectID := row["_id"]
	assert.False(t, hasObjectID)
	assert.Equal(t, "m1", row["id"])
	assert.Equal(t, []interface{}{"defi", "l2"}, row["specialty"])

	meta, ok := row["meta"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(3), meta["count"])
	assert.Equal(t, []interface{}{float64(7)}, meta["nested"])

	assert.Equal(t, float64(80), row["attendees"])
	assert.Equal(t, float64(1200), row["total"])
	assert.Equal(t, time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC), row["date"])
	assert.Equal(t, oid.Hex(), row["ref"])
}

func TestNormalizeValue_PassesPlainValuesThrough(t *testing.T) {
	assert.Equal(t, "text", normalizeValue("text"))
	assert.Equal(t, true, normalizeValue(true))
	assert.Equal(t, 2.5, normalizeValue(2.5))
}
