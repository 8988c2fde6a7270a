package service

import (
	"fmt"
	"testing"

	"github.com/MKhiriev/ptp-tester/internal/mock"
	"go.uber.org/mock/gomock"
)

// newSeqIDs возвращает мок генератора с предсказуемыми ID: id-1, id-2, ...
func newSeqIDs(ctrl *gomock.Controller) *mock.MockIDGenerator {
	ids := mock.NewMockIDGenerator(ctrl)
	n := 0
	ids.EXPECT().Generate().DoAndReturn(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}).AnyTimes()
	return ids
}

func must[T any](t *testing.T, v T, err error) T {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return v
}
