package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_UnmarshalJSON(t *testing.T) {
	type payload struct {
		Title       Optional[string] `json:"title"`
		Description Optional[string] `json:"description"`
		Priority    Optional[string] `json:"priority"`
	}

	t.Run("absent field is not set", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))

		assert.False(t, p.Title.Set)
		assert.False(t, p.Description.Set)
	})

	t.Run("explicit null is set but not valid", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"description":null}`), &p))

		assert.True(t, p.Description.Set)
		assert.False(t, p.Description.Valid)
		assert.False(t, p.Title.Set)
	})

	t.Run("value is set and valid", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"title":"fix login","priority":"P1"}`), &p))

		assert.True(t, p.Title.Set)
		assert.True(t, p.Title.Valid)
		assert.Equal(t, "fix login", p.Title.Value)
		assert.Equal(t, "P1", p.Priority.Value)
	})

	t.Run("empty string is a value, not a null", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"title":""}`), &p))

		assert.True(t, p.Title.Set)
		assert.True(t, p.Title.Valid)
		assert.Equal(t, "", p.Title.Value)
	})
}

func TestOptional_Constructors(t *testing.T) {
	some := Some("x")
	assert.True(t, some.Set)
	assert.True(t, some.Valid)
	assert.Equal(t, "x", some.Value)

	null := Null[string]()
	assert.True(t, null.Set)
	assert.False(t, null.Valid)
}

func TestTaskUpdate_Empty(t *testing.T) {
	assert.True(t, TaskUpdate{}.Empty())
	assert.False(t, TaskUpdate{Status: Some(StatusBlocked)}.Empty())
	assert.False(t, TaskUpdate{AssigneeID: Null[string]()}.Empty())
}

func TestTaskPriority_Rank(t *testing.T) {
	assert.Less(t, PriorityP1.Rank(), PriorityP2.Rank())
	assert.Less(t, PriorityP2.Rank(), PriorityP3.Rank())
	assert.Greater(t, TaskPriority("bogus").Rank(), PriorityP3.Rank())
}

func TestEnums_Valid(t *testing.T) {
	for _, s := range []TaskStatus{StatusNotStarted, StatusInProgress, StatusBlocked, StatusCompleted} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, TaskStatus("done").Valid())

	for _, r := range []UserRole{RoleAdmin, RoleMember, RoleViewer} {
		assert.True(t, r.Valid(), r)
	}
	assert.False(t, UserRole("owner").Valid())
}
