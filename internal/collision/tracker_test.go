package collision

import (
	"testing"

	"github.com/arloliu/vecfield/errs"
	"github.com/stretchr/testify/require"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()

	require.NotNil(t, tracker)
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Empty(t, tracker.Names())
}

func TestTracker_Track_Success(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track("Array_entry_1"))
	require.NoError(t, tracker.Track("List_entry_1"))

	require.Equal(t, 2, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Equal(t, []string{"Array_entry_1", "List_entry_1"}, tracker.Names())
	require.True(t, tracker.Contains("Array_entry_1"))
	require.True(t, tracker.Contains("List_entry_1"))
	require.False(t, tracker.Contains("List_entry_2"))
}

func TestTracker_Track_EmptyName(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track(""))
	require.True(t, tracker.Contains(""))
	require.ErrorIs(t, tracker.Track(""), errs.ErrDuplicateName)
}

func TestTracker_Track_Duplicate(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track("Raptor"))
	err := tracker.Track("Raptor")

	require.ErrorIs(t, err, errs.ErrDuplicateName)
	require.Equal(t, 1, tracker.Count())
	require.False(t, tracker.HasCollision())
}

func TestTracker_TrackWithHash_Collision(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.TrackWithHash("Pigeon", 0x1234567890abcdef))
	require.False(t, tracker.HasCollision())

	// Different name, same hash: both are kept
	require.NoError(t, tracker.TrackWithHash("Cuco", 0x1234567890abcdef))
	require.True(t, tracker.HasCollision())
	require.Equal(t, 2, tracker.Count())

	require.True(t, tracker.containsWithHash("Pigeon", 0x1234567890abcdef))
	require.True(t, tracker.containsWithHash("Cuco", 0x1234567890abcdef))
	require.False(t, tracker.containsWithHash("Woodpecker", 0x1234567890abcdef))

	// Same name within a shared bucket is still a duplicate
	err := tracker.TrackWithHash("Cuco", 0x1234567890abcdef)
	require.ErrorIs(t, err, errs.ErrDuplicateName)
	require.Equal(t, 2, tracker.Count())
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker()
	require.NoError(t, tracker.TrackWithHash("a", 1))
	require.NoError(t, tracker.TrackWithHash("b", 1))
	require.True(t, tracker.HasCollision())

	tracker.Reset()

	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.False(t, tracker.Contains("a"))
	require.NoError(t, tracker.Track("a"))
}
