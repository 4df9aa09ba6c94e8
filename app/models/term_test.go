package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomDateJSON(t *testing.T) {
	t.Run("unmarshal date-only string", func(t *testing.T) {
		var cd CustomDate
		require.NoError(t, json.Unmarshal([]byte(`"2024-09-01"`), &cd))
		assert.Equal(t, 2024, cd.Year())
		assert.Equal(t, time.September, cd.Month())
		assert.Equal(t, 1, cd.Day())
	})

	t.Run("marshal back to date-only", func(t *testing.T) {
		cd := CustomDate{Time: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)}
		out, err := json.Marshal(cd)
		require.NoError(t, err)
		assert.Equal(t, `"2024-09-01"`, string(out))
	})

	t.Run("rejects timestamps and bad formats", func(t *testing.T) {
		var cd CustomDate
		assert.Error(t, json.Unmarshal([]byte(`"2024-09-01T10:00:00Z"`), &cd))
		assert.Error(t, json.Unmarshal([]byte(`"09/01/2024"`), &cd))
	})
}

func TestCustomDateScan(t *testing.T) {
	t.Run("from time.Time", func(t *testing.T) {
		var cd CustomDate
		require.NoError(t, cd.Scan(time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)))
		assert.Equal(t, 1, cd.Day())
	})

	t.Run("from string and bytes", func(t *testing.T) {
		var cd CustomDate
		require.NoError(t, cd.Scan("2024-09-01"))
		assert.Equal(t, time.September, cd.Month())

		require.NoError(t, cd.Scan([]byte("2024-12-15")))
		assert.Equal(t, 15, cd.Day())
	})

	t.Run("unsupported type", func(t *testing.T) {
		var cd CustomDate
		assert.Error(t, cd.Scan(42))
	})
}

func TestCustomDateValue(t *testing.T) {
	cd := CustomDate{Time: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)}
	v, err := cd.Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-09-01", v)
}

func TestTermIsCurrentByDate(t *testing.T) {
	now := time.Now()

	current := &Term{
		StartDate: CustomDate{Time: now.AddDate(0, -1, 0)},
		EndDate:   CustomDate{Time: now.AddDate(0, 1, 0)},
	}
	assert.True(t, current.IsCurrentByDate())

	past := &Term{
		StartDate: CustomDate{Time: now.AddDate(-1, 0, 0)},
		EndDate:   CustomDate{Time: now.AddDate(0, -6, 0)},
	}
	assert.False(t, past.IsCurrentByDate())

	future := &Term{
		StartDate: CustomDate{Time: now.AddDate(0, 6, 0)},
		EndDate:   CustomDate{Time: now.AddDate(1, 0, 0)},
	}
	assert.False(t, future.IsCurrentByDate())
}
