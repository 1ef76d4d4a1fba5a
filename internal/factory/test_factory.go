package factory

import (
	"time"

	"github.com/mcoot/battleship-go/internal/dependencies/mocks"
	"github.com/mcoot/battleship-go/internal/storage/memory"
	"github.com/mcoot/battleship-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// QueueRowLayout makes the mock random produce the fleet layout with one
// horizontal ship per even row starting at column 1, for each of n boards
func (t *TestApp) QueueRowLayout(n int) {
	for i := 0; i < n; i++ {
		t.MockRandom.QueueBool(true, true, true, true, true)
		t.MockRandom.QueueIntn(0, 0, 2, 0, 4, 0, 6, 0, 8, 0)
	}
}
