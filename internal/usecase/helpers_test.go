package usecase

import (
	"time"

	"github.com/sevencode7/tasks/internal/testutil"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newFixture() (*testutil.MockStore, *testutil.MockClock) {
	clock := &testutil.MockClock{NowTime: testNow}
	return testutil.NewMockStore(clock), clock
}

func ptr[T any](v T) *T {
	return &v
}

func clockAt(t time.Time) *testutil.MockClock {
	return &testutil.MockClock{NowTime: t}
}
