package store

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/focusquest/internal/models"
	"github.com/ayoisaiah/focusquest/internal/testutil"
)

type recordGoldenTest struct {
	Name       string
	GoldenFile string
	Record     models.Record
	Snapshot   []byte
}

func (r recordGoldenTest) Output() (out []byte, name string) {
	return r.Snapshot, r.GoldenFile
}

func newTestClient(t *testing.T) *Client {
	t.Helper()

	c, err := NewClient(filepath.Join(t.TempDir(), "data", "focusquest.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c
}

func rawRecord(t *testing.T, c *Client) []byte {
	t.Helper()

	var b []byte

	err := c.View(func(tx *bolt.Tx) error {
		b = append(b, tx.Bucket([]byte(stateBucket)).Get([]byte(StateKey))...)

		return nil
	})
	require.NoError(t, err)

	return b
}

func TestLoadRecordEmpty(t *testing.T) {
	c := newTestClient(t)

	r, err := c.LoadRecord()
	require.NoError(t, err)

	assert.Equal(t, models.DefaultRecord(), r)
}

func TestSaveRecordGolden(t *testing.T) {
	cases := []recordGoldenTest{
		{
			Name:       "default record",
			GoldenFile: "default_record",
			Record:     models.DefaultRecord(),
		},
		{
			Name:       "record with a paused long break",
			GoldenFile: "record_with_timer",
			Record: models.Record{
				Level:             5,
				Exp:               0,
				TotalSessions:     16,
				UnlockedLocations: []int{1, 2},
				TodaySessions:     4,
				TodayMinutes:      100,
				WeekSessions:      16,
				CurrentStreak:     3,
				Timer: &models.TimerRecord{
					Phase:             models.PhaseBreak,
					RemainingSeconds:  900,
					SessionsCompleted: 4,
				},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			c := newTestClient(t)

			require.NoError(t, c.SaveRecord(tc.Record))

			tc.Snapshot = rawRecord(t, c)

			testutil.CompareGoldenFile(t, tc)

			got, err := c.LoadRecord()
			require.NoError(t, err)
			assert.Equal(t, tc.Record, got)
		})
	}
}

func TestLoadCorruptRecord(t *testing.T) {
	c := newTestClient(t)

	err := c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(stateBucket)).Put(
			[]byte(StateKey),
			[]byte(`{"level": 3, "exp": "lots", "unlockedLocations": [1, 2`),
		)
	})
	require.NoError(t, err)

	r, err := c.LoadRecord()
	require.NoError(t, err)

	assert.Equal(t, models.DefaultRecord(), r)

	err = c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(stateBucket)).Put(
			[]byte(StateKey),
			[]byte(`{"level": 3, "exp": "lots"}`),
		)
	})
	require.NoError(t, err)

	r, err = c.LoadRecord()
	require.NoError(t, err)

	want := models.DefaultRecord()
	want.Level = 3

	assert.Equal(t, want, r)
}

func TestSessions(t *testing.T) {
	c := newTestClient(t)

	base := time.Date(2024, time.May, 6, 9, 0, 0, 0, time.UTC)

	for i := range 5 {
		start := base.Add(time.Duration(i) * 24 * time.Hour)

		err := c.AddSession(&models.Session{
			ID:        strings.Repeat("a", i+1),
			StartTime: start,
			EndTime:   start.Add(25 * time.Minute),
			Duration:  25 * time.Minute,
			Exp:       50,
			Level:     1,
		})
		require.NoError(t, err)
	}

	sessions, err := c.GetSessions(
		base.Add(24*time.Hour),
		base.Add(3*24*time.Hour),
	)
	require.NoError(t, err)

	require.Len(t, sessions, 3)
	assert.Equal(t, "aa", sessions[0].ID)
	assert.Equal(t, "aaaa", sessions[2].ID)
	assert.True(t, sessions[0].StartTime.Equal(base.Add(24*time.Hour)))
	assert.Equal(t, 25*time.Minute, sessions[1].Duration)

	all, err := c.GetSessions(time.Time{}, base.Add(365*24*time.Hour))
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestSingleInstance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "focusquest.db")

	c, err := NewClient(path)
	require.NoError(t, err)

	defer c.Close()

	_, err = NewClient(path)
	assert.ErrorIs(t, err, errFocusRunning)
}

func TestImportRecord(t *testing.T) {
	c := newTestClient(t)

	doc := `{"level":6,"exp":210,"totalSessions":22,"unlockedLocations":[1,2],` +
		`"todaySessions":1,"todayMinutes":25,"weekSessions":8,"currentStreak":4}`

	r, err := ImportRecord(c, strings.NewReader(doc))
	require.NoError(t, err)

	want := models.Record{
		Level:             6,
		Exp:               210,
		TotalSessions:     22,
		UnlockedLocations: []int{1, 2},
		TodaySessions:     1,
		TodayMinutes:      25,
		WeekSessions:      8,
		CurrentStreak:     4,
	}

	assert.Equal(t, want, r)

	saved, err := c.LoadRecord()
	require.NoError(t, err)
	assert.Equal(t, want, saved)

	_, err = ImportRecord(c, strings.NewReader("not json"))
	assert.ErrorIs(t, err, errImport)
}

func TestImportBrowserExport(t *testing.T) {
	c := newTestClient(t)

	doc := testutil.ReadFixture(t, "browser_export.json")

	r, err := ImportRecord(c, bytes.NewReader(doc))
	require.NoError(t, err)

	want := models.Record{
		Level:             12,
		Exp:               0,
		TotalSessions:     57,
		UnlockedLocations: []int{3, 1, 2},
		TodaySessions:     2,
		TodayMinutes:      50,
		WeekSessions:      0,
		CurrentStreak:     3,
	}

	assert.Equal(t, want, r)
}
